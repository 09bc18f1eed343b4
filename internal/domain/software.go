package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FileType labels how the download links of a software record should be
// presented: a single archive or a multi-part volume set.
const (
	FileTypeSingle   = "single"
	FileTypeMultiple = "multiple"
)

type Software struct {
	ID           uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key"`
	Name         string                      `json:"name" gorm:"not null"`
	FileType     string                      `json:"fileType" gorm:"not null"`
	DownloadURLs datatypes.JSONSlice[string] `json:"downloadUrls" gorm:"not null"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    *time.Time                  `json:"updatedAt,omitempty"`
}
