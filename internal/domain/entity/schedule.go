package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is a calendar entry. ClientID is a back-reference, not ownership:
// when the referenced client is deleted the reference is cleared and the
// event survives, preserving history independent of the client lifecycle.
type Event struct {
	ID        uuid.UUID
	ClientID  *uuid.UUID // Optional back-reference to a client.
	Title     string
	Location  string
	StartsAt  time.Time
	EndsAt    time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Task is a to-do item. Like Event, its client reference is optional and is
// nulled, not deleted, by a client cascade.
type Task struct {
	ID          uuid.UUID
	ClientID    *uuid.UUID // Optional back-reference to a client.
	Title       string
	Description string
	DueAt       *time.Time
	Done        bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
