package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionModel mirrors the 'transactions' table.
type TransactionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	ClientID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind        string    `gorm:"type:varchar(20);not null"`
	Amount      float64   `gorm:"type:numeric(14,2);not null"`
	Description string    `gorm:"type:text"`
	OccurredAt  time.Time `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}
