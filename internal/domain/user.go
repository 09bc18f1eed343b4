package domain

import "time"

// User is the singleton administrator record. PasswordHash holds the
// salted PBKDF2 digest as "salt:hash" (hex-encoded halves).
type User struct {
	Username     string    `json:"username" gorm:"primaryKey"`
	PasswordHash string    `json:"passwordHash" gorm:"not null"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
