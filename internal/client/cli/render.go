package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobboard/internal/client/identity"
	"github.com/dmitrijs2005/jobboard/internal/client/models"
)

// renderVacancyCard is the one-vacancy block shown by list.
func renderVacancyCard(v models.Vacancy, id *identity.Identity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s [%s]\n", v.ID, v.Title, v.Status())
	if v.Description != "" {
		fmt.Fprintf(&b, "    %s\n", v.Description)
	}
	fmt.Fprintf(&b, "    Max: %d\n", v.MaxApplicants)
	if actions := vacancyActions(v, id); actions != "" {
		fmt.Fprintf(&b, "    %s\n", actions)
	}
	return strings.TrimRight(b.String(), "\n")
}

func vacancyActions(v models.Vacancy, id *identity.Identity) string {
	switch {
	case id == nil && !v.IsActive:
		return "Closed"
	case id == nil:
		return "Login to Apply"
	case id.CanManageVacancies():
		return fmt.Sprintf("toggle %[1]d | edit %[1]d | delete %[1]d", v.ID)
	case id.CanApply() && v.IsActive:
		return fmt.Sprintf("apply %d", v.ID)
	case id.CanApply():
		return "Closed"
	default:
		return ""
	}
}

func renderVacancyDetails(v models.Vacancy, id *identity.Identity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]\n", v.Title, v.Status())
	fmt.Fprintf(&b, "%s\n", v.Description)

	for _, f := range []struct{ label, value string }{
		{"Company", v.Company},
		{"Location", v.Location},
		{"Modality", string(v.Modality)},
		{"Salary Range", v.SalaryRange},
		{"Seniority", v.Seniority},
		{"Technologies", v.Technologies},
		{"Soft Skills", v.SoftSkills},
	} {
		if f.value != "" {
			fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
		}
	}
	fmt.Fprintf(&b, "Max Applicants: %d\n", v.MaxApplicants)
	if v.CreatedAt != nil {
		fmt.Fprintf(&b, "Posted: %s\n", v.CreatedAt.Format("2006-01-02"))
	}
	if actions := vacancyActions(v, id); actions != "" {
		fmt.Fprintf(&b, "%s\n", actions)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderApplication(app models.Application, withApplicant bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s [Applied]", app.ID, app.VacancyTitle())
	if app.Vacancy != nil && app.Vacancy.Description != "" && !withApplicant {
		fmt.Fprintf(&b, "\n    %s", app.Vacancy.Description)
	}
	if withApplicant && app.User != nil {
		fmt.Fprintf(&b, "\n    Applicant: %s (%s)", app.User.Name, app.User.Email)
	}
	if !app.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "\n    Applied on %s", app.CreatedAt.Format("2006-01-02"))
	}
	return b.String()
}
