package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/jobboard/internal/client/api"
	"github.com/dmitrijs2005/jobboard/internal/client/identity"
	"github.com/dmitrijs2005/jobboard/internal/client/models"
	validation "github.com/go-ozzo/ozzo-validation"
)

// List shows all vacancies, newest first, with the actions the current user
// may take on each.
func (a *App) List(ctx context.Context) error {
	a.nav.Push(routeHome)

	items, err := a.vacancies.List(ctx)
	if err != nil {
		a.log.Warn(ctx, "failed to load vacancies", "error", err)
		a.println("Failed to load vacancies.")
		return err
	}

	id := a.session.Identity()
	a.println("Open Vacancies")
	switch {
	case id == nil:
		a.println("  Register to apply: type 'register'")
	case id.CanManageVacancies():
		a.println("  Create Vacancy: type 'new'")
	}

	if len(items) == 0 {
		a.println("No vacancies available at the moment.")
		return nil
	}
	for _, v := range items {
		a.println(renderVacancyCard(v, id))
	}
	return nil
}

// Show prints the details of one vacancy.
func (a *App) Show(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		a.println(err.Error())
		return err
	}
	a.nav.Push(routeVacancy(id))

	v, err := a.vacancies.Get(ctx, id)
	if err != nil {
		a.println(api.MessageOr(err, "Failed to load vacancy details."))
		return err
	}
	a.println(renderVacancyDetails(*v, a.session.Identity()))
	return nil
}

// New asks for the fields of a vacancy and creates it.
func (a *App) New(ctx context.Context) error {
	if !a.enter(ctx, routeNewVacancy) || !a.allowRoles(ctx, managerRoles...) {
		return nil
	}

	a.println("Create New Vacancy")
	in, err := a.readVacancyInput(models.NewVacancyInput())
	if err != nil {
		return a.reportSaveError(ctx, err)
	}
	if err := a.vacancies.Create(ctx, in); err != nil {
		return a.reportSaveError(ctx, err)
	}

	a.println("Vacancy saved.")
	return a.List(ctx)
}

// Edit loads a vacancy into the form, lets the user change it and saves it.
func (a *App) Edit(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		a.println(err.Error())
		return err
	}
	if !a.enter(ctx, routeEditVacancy(id)) || !a.allowRoles(ctx, managerRoles...) {
		return nil
	}

	v, err := a.vacancies.Get(ctx, id)
	if err != nil {
		a.println("Failed to load vacancy details.")
		return err
	}

	a.println("Edit Vacancy (press Enter to keep the current value)")
	in, err := a.readVacancyInput(models.FromVacancy(*v))
	if err != nil {
		return a.reportSaveError(ctx, err)
	}
	if err := a.vacancies.Update(ctx, id, in); err != nil {
		return a.reportSaveError(ctx, err)
	}

	a.println("Vacancy saved.")
	return a.List(ctx)
}

func (a *App) reportSaveError(ctx context.Context, err error) error {
	var verrs validation.Errors
	if errors.As(err, &verrs) || errors.Is(err, errInvalidNumber) {
		a.println(err.Error())
		return err
	}
	a.log.Warn(ctx, "failed to save vacancy", "error", err)
	a.println(api.MessageOr(err, "Operation failed."))
	return err
}

// Toggle opens or closes a vacancy.
func (a *App) Toggle(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		a.println(err.Error())
		return err
	}
	if !a.enter(ctx, routeHome) || !a.allowRoles(ctx, managerRoles...) {
		return nil
	}

	if err := a.vacancies.Toggle(ctx, id); err != nil {
		a.log.Warn(ctx, "failed to toggle vacancy", "id", id, "error", err)
		a.println("Failed to update status")
		return err
	}
	return a.List(ctx)
}

// Delete removes a vacancy after confirmation.
func (a *App) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		a.println(err.Error())
		return err
	}
	if !a.enter(ctx, routeHome) || !a.allowRoles(ctx, managerRoles...) {
		return nil
	}

	ok, err := GetConfirmation(a.reader, "Are you sure you want to delete this vacancy?", a.out)
	if err != nil || !ok {
		return err
	}

	if err := a.vacancies.Delete(ctx, id); err != nil {
		a.log.Warn(ctx, "failed to delete vacancy", "id", id, "error", err)
		a.println("Failed to delete vacancy")
		return err
	}
	return a.List(ctx)
}

// Apply submits an application for an active vacancy.
func (a *App) Apply(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		a.println(err.Error())
		return err
	}
	if !a.enter(ctx, routeHome) || !a.allowRoles(ctx, identity.RoleCandidate) {
		return nil
	}

	v, err := a.vacancies.Get(ctx, id)
	if err != nil {
		a.println(api.MessageOr(err, "Failed to apply."))
		return err
	}
	if !v.IsActive {
		a.println("This vacancy is closed.")
		return nil
	}

	if err := a.applications.Apply(ctx, id); err != nil {
		a.log.Warn(ctx, "failed to apply", "vacancy", id, "error", err)
		a.println(api.MessageOr(err, "Failed to apply."))
		return err
	}
	a.println("Application submitted successfully!")
	return nil
}

var errInvalidNumber = errors.New("max applicants must be a number")

// readVacancyInput prompts for every field, showing the value from in as the
// default.
func (a *App) readVacancyInput(in models.VacancyInput) (models.VacancyInput, error) {
	fields := []struct {
		label string
		dst   *string
	}{
		{"Title", &in.Title},
		{"Company", &in.Company},
		{"Location", &in.Location},
		{"Salary Range", &in.SalaryRange},
		{"Seniority", &in.Seniority},
		{"Technologies (comma separated)", &in.Technologies},
		{"Soft Skills", &in.SoftSkills},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, withDefault(f.label, *f.dst), a.out)
		if err != nil {
			return in, err
		}
		if v != "" {
			*f.dst = v
		}
	}

	desc, err := getMultiline(a.reader, withDefault("Description", in.Description), a.out)
	if err != nil {
		return in, err
	}
	if desc != "" {
		in.Description = desc
	}

	mod, err := getSimpleText(a.reader, withDefault("Modality (remote, onsite, hybrid)", string(in.Modality)), a.out)
	if err != nil {
		return in, err
	}
	if mod != "" {
		in.Modality = models.Modality(strings.ToLower(mod))
	}

	maxApp, err := getSimpleText(a.reader, withDefault("Max Applicants", strconv.Itoa(in.MaxApplicants)), a.out)
	if err != nil {
		return in, err
	}
	if maxApp != "" {
		n, err := strconv.Atoi(maxApp)
		if err != nil {
			return in, errInvalidNumber
		}
		in.MaxApplicants = n
	}
	return in, nil
}

func withDefault(label, current string) string {
	if current == "" {
		return label
	}
	return fmt.Sprintf("%s [%s]", label, current)
}
