package model

import (
	"time"

	"github.com/google/uuid"
)

// ContractModel mirrors the 'contracts' table.
type ContractModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	ClientID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:text;not null"`
	Value       float64   `gorm:"type:numeric(14,2);not null"`
	SignedAt    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContractModel) TableName() string {
	return "contracts"
}
