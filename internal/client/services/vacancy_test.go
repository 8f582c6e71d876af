package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/jobboard/internal/client/api"
	"github.com/dmitrijs2005/jobboard/internal/client/models"
	"github.com/dmitrijs2005/jobboard/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVacancyService_ListNewestFirst(t *testing.T) {
	stub := newStubAPI(t)
	stub.on(http.MethodGet, "/vacancies", 200, `{"success":true,"data":[
		{"id":1,"title":"first","isActive":true},
		{"id":2,"title":"second"},
		{"id":3,"title":"third","isActive":true}
	]}`)
	svc := NewVacancyService(stub.client(""))

	got, err := svc.List(context.Background())
	require.NoError(t, err)

	ids := make([]int64, 0, len(got))
	for _, v := range got {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []int64{3, 2, 1}, ids)
	assert.Empty(t, stub.last().Auth)
}

func TestVacancyService_ListNullData(t *testing.T) {
	stub := newStubAPI(t)
	stub.on(http.MethodGet, "/vacancies", 200, `{"success":true,"data":null}`)

	got, err := NewVacancyService(stub.client("")).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestVacancyService_Get(t *testing.T) {
	stub := newStubAPI(t)
	stub.on(http.MethodGet, "/vacancies/5", 200, `{"success":true,"data":{"id":5,"title":"Go dev","modality":"hybrid"}}`)
	svc := NewVacancyService(stub.client("tok"))

	v, err := svc.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Go dev", v.Title)
	assert.Equal(t, models.ModalityHybrid, v.Modality)
	assert.Equal(t, "Bearer tok", stub.last().Auth)

	_, err = svc.Get(context.Background(), 6)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestVacancyService_CreateAndUpdate(t *testing.T) {
	stub := newStubAPI(t)
	stub.on(http.MethodPost, "/vacancies", 201, `{"success":true,"data":{"id":9}}`)
	stub.on(http.MethodPut, "/vacancies/9", 200, `{"success":true}`)
	svc := NewVacancyService(stub.client("tok"))
	ctx := context.Background()

	in := models.NewVacancyInput()
	in.Title = "Go dev"
	in.Description = "Backend"

	require.NoError(t, svc.Create(ctx, in))
	got := stub.last()
	assert.Equal(t, "/vacancies", got.Path)
	assert.Equal(t, "Go dev", got.Body["title"])
	assert.Equal(t, "remote", got.Body["modality"])
	assert.EqualValues(t, 1, got.Body["maxApplicants"])

	in.MaxApplicants = 4
	require.NoError(t, svc.Update(ctx, 9, in))
	got = stub.last()
	assert.Equal(t, http.MethodPut, got.Method)
	assert.Equal(t, "/vacancies/9", got.Path)
	assert.EqualValues(t, 4, got.Body["maxApplicants"])
}

func TestVacancyService_InvalidInputIsNotSent(t *testing.T) {
	stub := newStubAPI(t)
	svc := NewVacancyService(stub.client("tok"))

	in := models.NewVacancyInput()
	require.Error(t, svc.Create(context.Background(), in))
	require.Error(t, svc.Update(context.Background(), 1, in))
	assert.Empty(t, stub.requests())
}

func TestVacancyService_ServerMessageSurvives(t *testing.T) {
	stub := newStubAPI(t)
	stub.on(http.MethodPost, "/vacancies", 403, `{"success":false,"message":"Forbidden resource"}`)
	svc := NewVacancyService(stub.client("tok"))

	in := models.NewVacancyInput()
	in.Title, in.Description = "T", "D"

	err := svc.Create(context.Background(), in)
	require.ErrorIs(t, err, common.ErrAccessDenied)
	assert.Equal(t, "Forbidden resource", api.MessageOr(err, "Operation failed."))
}

func TestVacancyService_ToggleAndDelete(t *testing.T) {
	stub := newStubAPI(t)
	stub.on(http.MethodPut, "/vacancies/4/toggle", 200, `{"success":true,"data":{"id":4,"isActive":false}}`)
	stub.on(http.MethodDelete, "/vacancies/4", 200, ``)
	svc := NewVacancyService(stub.client("tok"))
	ctx := context.Background()

	require.NoError(t, svc.Toggle(ctx, 4))
	assert.Equal(t, request{Method: http.MethodPut, Path: "/vacancies/4/toggle", Auth: "Bearer tok"}, stub.last())

	require.NoError(t, svc.Delete(ctx, 4))
	assert.Equal(t, http.MethodDelete, stub.last().Method)

	err := svc.Delete(ctx, 5)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestVacancyService_EnvelopeFailure(t *testing.T) {
	stub := newStubAPI(t)
	stub.on(http.MethodPut, "/vacancies/4/toggle", 200, `{"success":false,"message":"Vacancy locked"}`)

	err := NewVacancyService(stub.client("tok")).Toggle(context.Background(), 4)
	require.ErrorIs(t, err, common.ErrRejected)
	assert.Equal(t, "Vacancy locked", api.MessageOr(err, ""))
}
