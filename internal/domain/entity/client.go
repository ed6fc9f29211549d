package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client is the customer entity of the office. It owns cases, contracts,
// documents and transactions; events and tasks may reference it without
// being owned by it.
type Client struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Document  string // CPF or CNPJ.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CascadeSummary reports what a client cascade deletion removed or unlinked.
// It is only produced after the whole transaction committed.
type CascadeSummary struct {
	Cases          int64 `json:"cases"`
	CaseLogs       int64 `json:"caseLogs"`
	Contracts      int64 `json:"contracts"`
	Documents      int64 `json:"documents"`
	Transactions   int64 `json:"transactions"`
	EventsUnlinked int64 `json:"eventsUnlinked"`
	TasksUnlinked  int64 `json:"tasksUnlinked"`
}
