package entity

import (
	"time"

	"github.com/google/uuid"
)

// CaseStatus is the lifecycle state of a legal case.
type CaseStatus string

const (
	CaseStatusActive    CaseStatus = "active"
	CaseStatusSuspended CaseStatus = "suspended"
	CaseStatusArchived  CaseStatus = "archived"
)

// IsValid checks if the CaseStatus is a valid value.
func (s CaseStatus) IsValid() bool {
	switch s {
	case CaseStatusActive, CaseStatusSuspended, CaseStatusArchived:
		return true
	default:
		return false
	}
}

// Case is a legal case owned by a Client. Deleting the client deletes its
// cases; deleting a case deletes its logs but never ascends to the client.
type Case struct {
	ID        uuid.UUID
	ClientID  uuid.UUID // Owning client. Immutable after creation.
	Number    string    // Court filing number.
	Court     string
	Subject   string
	Status    CaseStatus
	Logs      []*CaseLog // Sub-records owned by the case.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CaseLog is a dated entry in a case's history (note, hearing, filing).
type CaseLog struct {
	ID         uuid.UUID
	CaseID     uuid.UUID
	EntryType  string // note, hearing, filing, call.
	Content    string
	OccurredAt time.Time
	CreatedAt  time.Time
}
