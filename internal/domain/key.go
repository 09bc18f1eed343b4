package domain

import (
	"time"

	"github.com/google/uuid"
)

// Key is a license code tied to a software record. ValidUntil is nil for
// keys that never expire.
type Key struct {
	ID         uuid.UUID  `json:"id" gorm:"type:uuid;primary_key"`
	Code       string     `json:"code" gorm:"index;not null"`
	SoftwareID uuid.UUID  `json:"softwareId" gorm:"type:uuid;index;not null"`
	Used       bool       `json:"used" gorm:"default:false"`
	CreatedAt  time.Time  `json:"createdAt"`
	ValidUntil *time.Time `json:"validUntil"`
}

// Expired reports whether the key's validity window has passed at now.
func (k *Key) Expired(now time.Time) bool {
	return k.ValidUntil != nil && k.ValidUntil.Before(now)
}

// KeyWithSoftware is a key joined with its software record for listing.
// Software is nil when the reference dangles.
type KeyWithSoftware struct {
	Key
	Software *Software `json:"software"`
}
