package models

import "time"

// Applicant is the user embedded in admin application listings.
type Applicant struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Application struct {
	ID        int64      `json:"id"`
	VacancyID int64      `json:"vacancyId"`
	UserID    int64      `json:"userId"`
	Status    string     `json:"status,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	Vacancy   *Vacancy   `json:"vacancy,omitempty"`
	User      *Applicant `json:"user,omitempty"`
}

// VacancyTitle returns the embedded vacancy title or a placeholder.
func (a Application) VacancyTitle() string {
	if a.Vacancy == nil || a.Vacancy.Title == "" {
		return "Vacancy unavailable"
	}
	return a.Vacancy.Title
}

// ApplyRequest is the body of POST /applications.
type ApplyRequest struct {
	VacancyID int64 `json:"vacancyId"`
}
