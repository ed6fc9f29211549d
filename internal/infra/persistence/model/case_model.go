package model

import (
	"time"

	"github.com/google/uuid"
)

// CaseModel mirrors the 'cases' table. ClientID carries no ON DELETE CASCADE;
// the cascade is orchestrated explicitly so file cleanup and unlinking stay
// inside one transaction boundary.
type CaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Number    string    `gorm:"type:varchar(60);not null"`
	Court     string    `gorm:"type:varchar(255)"`
	Subject   string    `gorm:"type:text"`
	Status    string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Logs []CaseLogModel `gorm:"foreignKey:CaseID"`
}

// TableName explicitly sets the table name for GORM.
func (CaseModel) TableName() string {
	return "cases"
}

// CaseLogModel mirrors the 'case_logs' table. CaseID references cases.id (UUID).
type CaseLogModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	CaseID     uuid.UUID `gorm:"type:uuid;not null;index"`
	EntryType  string    `gorm:"type:varchar(30);not null"`
	Content    string    `gorm:"type:text;not null"`
	OccurredAt time.Time `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CaseLogModel) TableName() string {
	return "case_logs"
}
