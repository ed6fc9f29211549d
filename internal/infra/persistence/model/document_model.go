package model

import (
	"time"

	"github.com/google/uuid"
)

// DocumentModel mirrors the 'documents' table. StoragePath is stored relative
// to the storage root and re-validated by the storage boundary on every read.
type DocumentModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v7()"`
	ClientID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	CaseID      *uuid.UUID `gorm:"type:uuid;index"`
	FileName    string     `gorm:"type:varchar(255);not null"`
	StoragePath string     `gorm:"type:varchar(512);unique;not null"`
	ContentType string     `gorm:"type:varchar(120);not null"`
	Size        int64      `gorm:"not null"`
	UploadedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DocumentModel) TableName() string {
	return "documents"
}
