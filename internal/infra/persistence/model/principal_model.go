// Package model holds the GORM persistence models. They mirror the database
// tables and never leave the persistence layer; repositories map them to and
// from domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// PrincipalModel mirrors the 'principals' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type PrincipalModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	Kind         string     `gorm:"type:varchar(20);not null"`
	Role         string     `gorm:"type:varchar(20);not null"`
	Identifier   string     `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	ClientID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PrincipalModel) TableName() string {
	return "principals"
}
