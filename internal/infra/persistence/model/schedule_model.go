package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel mirrors the 'events' table. ClientID is a nullable back-reference;
// a client cascade sets it to NULL instead of deleting the row.
type EventModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	ClientID  *uuid.UUID `gorm:"type:uuid;index"`
	Title     string     `gorm:"type:varchar(255);not null"`
	Location  string     `gorm:"type:varchar(255)"`
	StartsAt  time.Time  `gorm:"not null;index"`
	EndsAt    time.Time  `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}

// TaskModel mirrors the 'tasks' table. Same nullable client reference as EventModel.
type TaskModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	ClientID    *uuid.UUID `gorm:"type:uuid;index"`
	Title       string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	DueAt       *time.Time `gorm:"index"`
	Done        bool       `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
