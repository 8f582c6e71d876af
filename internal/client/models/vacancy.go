// Package models defines the vacancy board records exchanged with the API
// and the validated input forms built from them.
package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Modality is the work arrangement of a vacancy.
type Modality string

const (
	ModalityRemote Modality = "remote"
	ModalityOnsite Modality = "onsite"
	ModalityHybrid Modality = "hybrid"
)

// Modalities lists the accepted values in display order.
var Modalities = []Modality{ModalityRemote, ModalityOnsite, ModalityHybrid}

type Vacancy struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	MaxApplicants int        `json:"maxApplicants"`
	IsActive      bool       `json:"isActive"`
	Company       string     `json:"company,omitempty"`
	Location      string     `json:"location,omitempty"`
	SalaryRange   string     `json:"salaryRange,omitempty"`
	Seniority     string     `json:"seniority,omitempty"`
	Technologies  string     `json:"technologies,omitempty"`
	SoftSkills    string     `json:"softSkills,omitempty"`
	Modality      Modality   `json:"modality,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
}

// Status is the badge shown next to a vacancy.
func (v Vacancy) Status() string {
	if v.IsActive {
		return "Active"
	}
	return "Closed"
}

// VacancyInput is the create/edit payload.
type VacancyInput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	SalaryRange   string   `json:"salaryRange"`
	Seniority     string   `json:"seniority"`
	Technologies  string   `json:"technologies"`
	SoftSkills    string   `json:"softSkills"`
	Modality      Modality `json:"modality"`
	MaxApplicants int      `json:"maxApplicants"`
}

// NewVacancyInput returns an empty form with defaults applied.
func NewVacancyInput() VacancyInput {
	return VacancyInput{Modality: ModalityRemote, MaxApplicants: 1}
}

// FromVacancy prefills the edit form. Missing optional fields become empty
// strings and a missing modality becomes remote.
func FromVacancy(v Vacancy) VacancyInput {
	in := VacancyInput{
		Title:         v.Title,
		Description:   v.Description,
		Company:       v.Company,
		Location:      v.Location,
		SalaryRange:   v.SalaryRange,
		Seniority:     v.Seniority,
		Technologies:  v.Technologies,
		SoftSkills:    v.SoftSkills,
		Modality:      v.Modality,
		MaxApplicants: v.MaxApplicants,
	}
	if in.Modality == "" {
		in.Modality = ModalityRemote
	}
	return in
}

func (in VacancyInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&in.Description, validation.Required),
		validation.Field(&in.MaxApplicants, validation.Required, validation.Min(1)),
		validation.Field(&in.Modality, validation.Required, validation.In(ModalityRemote, ModalityOnsite, ModalityHybrid)),
	)
}
