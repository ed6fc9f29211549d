package impl

import (
	"context"
	"testing"
	"time"

	"praxis/internal/domain/entity"
	domainerrors "praxis/internal/domain/errors"
	"praxis/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type caseFixture struct {
	state    *memState
	service  usecase.CaseUsecase
	clientID uuid.UUID
	caseID   uuid.UUID
}

func newCaseFixture(t *testing.T) *caseFixture {
	t.Helper()

	state := newMemState()
	clientID := uuid.New()
	caseID := uuid.New()
	state.clients[clientID] = &entity.Client{ID: clientID, Name: "Cliente"}
	state.cases[caseID] = &entity.Case{
		ID:       caseID,
		ClientID: clientID,
		Number:   "0001234-55.2026.8.26.0100",
		Status:   entity.CaseStatusActive,
	}

	service := NewCaseService(CaseServiceParams{
		CaseRepo:   &fakeCases{s: state},
		ClientRepo: &fakeClients{s: state},
		Logger:     testLogger(),
	})

	return &caseFixture{state: state, service: service, clientID: clientID, caseID: caseID}
}

func TestCaseService_UpdateCase_OwnerIsImmutable(t *testing.T) {
	fx := newCaseFixture(t)
	ctx := context.Background()

	otherClient := uuid.New()
	_, err := fx.service.UpdateCase(ctx, adminSession(), fx.caseID, usecase.UpdateCaseInput{
		ClientID: &otherClient,
		Number:   "novo-numero",
	})
	assert.ErrorIs(t, err, domainerrors.ErrImmutableField)
	assert.Equal(t, fx.clientID, fx.state.cases[fx.caseID].ClientID)

	// The same owner in the payload is fine.
	updated, err := fx.service.UpdateCase(ctx, adminSession(), fx.caseID, usecase.UpdateCaseInput{
		ClientID: &fx.clientID,
		Number:   "0002222-33.2026.8.26.0100",
		Status:   entity.CaseStatusSuspended,
	})
	require.NoError(t, err)
	assert.Equal(t, "0002222-33.2026.8.26.0100", updated.Number)
	assert.Equal(t, entity.CaseStatusSuspended, updated.Status)
}

func TestCaseService_DeleteCase_IsLeafDelete(t *testing.T) {
	fx := newCaseFixture(t)
	ctx := context.Background()

	logID := uuid.New()
	fx.state.caseLogs[logID] = &entity.CaseLog{ID: logID, CaseID: fx.caseID, EntryType: "note", Content: "x", OccurredAt: time.Now()}

	require.NoError(t, fx.service.DeleteCase(ctx, systemSession(entity.RoleAdvogado), fx.caseID))

	// Case and its logs are gone; the owning client is untouched.
	assert.Empty(t, fx.state.cases)
	assert.Empty(t, fx.state.caseLogs)
	assert.Contains(t, fx.state.clients, fx.clientID)
}

func TestCaseService_AddCaseLog(t *testing.T) {
	fx := newCaseFixture(t)
	ctx := context.Background()

	occurred := time.Now().Add(-time.Hour)
	log, err := fx.service.AddCaseLog(ctx, systemSession(entity.RoleEstagiario), fx.caseID, usecase.AddCaseLogInput{
		EntryType:  "hearing",
		Content:    "Audiência de conciliação realizada",
		OccurredAt: occurred,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, log.ID)

	loaded, err := fx.service.GetCase(ctx, adminSession(), fx.caseID)
	require.NoError(t, err)
	require.Len(t, loaded.Logs, 1)
	assert.Equal(t, "hearing", loaded.Logs[0].EntryType)

	// Portal clients only read their case history.
	_, err = fx.service.AddCaseLog(ctx, portalSession(fx.clientID), fx.caseID, usecase.AddCaseLogInput{
		EntryType: "note", Content: "x", OccurredAt: occurred,
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCaseService_PortalReadScope(t *testing.T) {
	fx := newCaseFixture(t)
	ctx := context.Background()

	own, err := fx.service.GetCase(ctx, portalSession(fx.clientID), fx.caseID)
	require.NoError(t, err)
	assert.Equal(t, fx.caseID, own.ID)

	_, err = fx.service.GetCase(ctx, portalSession(uuid.New()), fx.caseID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.ListCasesByClient(ctx, portalSession(uuid.New()), fx.clientID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCaseService_CreateCase_RequiresExistingClient(t *testing.T) {
	fx := newCaseFixture(t)
	ctx := context.Background()

	_, err := fx.service.CreateCase(ctx, adminSession(), usecase.CreateCaseInput{
		ClientID: uuid.New(),
		Number:   "x",
	})
	require.Error(t, err)

	created, err := fx.service.CreateCase(ctx, systemSession(entity.RoleAdvogado), usecase.CreateCaseInput{
		ClientID: fx.clientID,
		Number:   "0005555-66.2026.8.26.0100",
		Court:    "1ª Vara Cível",
		Subject:  "Cobrança",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CaseStatusActive, created.Status)
}
