package usecase

import (
	"context"
	"time"

	"praxis/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCaseInput defines the data required to open a new case.
type CreateCaseInput struct {
	ClientID uuid.UUID
	Number   string
	Court    string
	Subject  string
}

// UpdateCaseInput carries the mutable fields of a case. A ClientID present in
// the payload that differs from the stored owner is rejected as immutable.
type UpdateCaseInput struct {
	ClientID *uuid.UUID // Optional payload owner, must match the record when set.
	Number   string
	Court    string
	Subject  string
	Status   entity.CaseStatus
}

// AddCaseLogInput defines the data for a new case history entry.
type AddCaseLogInput struct {
	EntryType  string
	Content    string
	OccurredAt time.Time
}

// CaseUsecase defines legal case operations.
type CaseUsecase interface {
	GetCase(ctx context.Context, sess *entity.Session, id uuid.UUID) (*entity.Case, error)
	ListCasesByClient(ctx context.Context, sess *entity.Session, clientID uuid.UUID) ([]*entity.Case, error)
	CreateCase(ctx context.Context, sess *entity.Session, input CreateCaseInput) (*entity.Case, error)
	UpdateCase(ctx context.Context, sess *entity.Session, id uuid.UUID, input UpdateCaseInput) (*entity.Case, error)

	// DeleteCase removes the case and its logs. The owning client and its
	// other records are untouched.
	DeleteCase(ctx context.Context, sess *entity.Session, id uuid.UUID) error

	AddCaseLog(ctx context.Context, sess *entity.Session, caseID uuid.UUID, input AddCaseLogInput) (*entity.CaseLog, error)
}
