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

func newFinancialFixture(t *testing.T) (*memState, usecase.FinancialUsecase, uuid.UUID, uuid.UUID) {
	t.Helper()

	state := newMemState()
	clientID := uuid.New()
	txID := uuid.New()
	state.clients[clientID] = &entity.Client{ID: clientID, Name: "Cliente"}
	state.transactions[txID] = &entity.Transaction{
		ID:         txID,
		ClientID:   clientID,
		Kind:       entity.TransactionHonorario,
		Amount:     1200,
		OccurredAt: time.Now(),
	}

	service := NewFinancialService(FinancialServiceParams{
		FinancialRepo: &fakeFinancial{s: state},
		ClientRepo:    &fakeClients{s: state},
		Logger:        testLogger(),
	})

	return state, service, clientID, txID
}

// Deleting a financial record is the one staff operation besides client
// deletion that only admin may perform.
func TestFinancialService_DeleteIsAdminOnly(t *testing.T) {
	state, service, clientID, txID := newFinancialFixture(t)
	ctx := context.Background()

	err := service.DeleteTransaction(ctx, systemSession(entity.RoleAdvogado), txID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	err = service.DeleteTransaction(ctx, systemSession(entity.RoleEstagiario), txID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	err = service.DeleteTransaction(ctx, portalSession(clientID), txID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Contains(t, state.transactions, txID)

	require.NoError(t, service.DeleteTransaction(ctx, adminSession(), txID))
	assert.Empty(t, state.transactions)
}

func TestFinancialService_CreateValidatesKind(t *testing.T) {
	_, service, clientID, _ := newFinancialFixture(t)
	ctx := context.Background()

	_, err := service.CreateTransaction(ctx, adminSession(), usecase.CreateTransactionInput{
		ClientID:   clientID,
		Kind:       entity.TransactionKind("gorjeta"),
		Amount:     10,
		OccurredAt: time.Now(),
	})
	require.Error(t, err)

	tx, err := service.CreateTransaction(ctx, systemSession(entity.RoleAdvogado), usecase.CreateTransactionInput{
		ClientID:    clientID,
		Kind:        entity.TransactionDespesa,
		Amount:      89.90,
		Description: "Custas de protocolo",
		OccurredAt:  time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.TransactionDespesa, tx.Kind)
}

func TestFinancialService_UpdateOwnerIsImmutable(t *testing.T) {
	state, service, clientID, txID := newFinancialFixture(t)
	ctx := context.Background()

	otherClient := uuid.New()
	_, err := service.UpdateTransaction(ctx, adminSession(), txID, usecase.UpdateTransactionInput{
		ClientID:   &otherClient,
		Kind:       entity.TransactionHonorario,
		Amount:     999,
		OccurredAt: time.Now(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrImmutableField)
	assert.Equal(t, clientID, state.transactions[txID].ClientID)
	assert.Equal(t, float64(1200), state.transactions[txID].Amount)
}

func TestFinancialService_PortalReadsOwnLedgerOnly(t *testing.T) {
	_, service, clientID, txID := newFinancialFixture(t)
	ctx := context.Background()

	list, err := service.ListTransactionsByClient(ctx, portalSession(clientID), clientID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = service.GetTransaction(ctx, portalSession(uuid.New()), txID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	// Portal clients never write financial records.
	_, err = service.CreateTransaction(ctx, portalSession(clientID), usecase.CreateTransactionInput{
		ClientID:   clientID,
		Kind:       entity.TransactionReembolso,
		Amount:     5,
		OccurredAt: time.Now(),
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
