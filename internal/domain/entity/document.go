package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document is an uploaded file owned by a Client, optionally attached to a Case.
// StoragePath is always relative to the configured storage root; the recorded
// ContentType is what the gateway serves, never a re-sniffed value.
type Document struct {
	ID          uuid.UUID
	ClientID    uuid.UUID  // Owning client. Immutable after creation.
	CaseID      *uuid.UUID // Optional case attachment.
	FileName    string     // Original file name, used for the download disposition.
	StoragePath string     // Relative path below the storage root.
	ContentType string     // MIME type recorded at upload time.
	Size        int64
	UploadedAt  time.Time
}
