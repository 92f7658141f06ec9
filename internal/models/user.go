package models

import "time"

// DefaultImageFile is the placeholder avatar assigned at registration.
const DefaultImageFile = "default.jpg"

type User struct {
	ID           uint      `gorm:"primaryKey"`
	Username     string    `gorm:"uniqueIndex;not null"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	ImageFile    string    `gorm:"not null;default:default.jpg"`
	CreatedAt    time.Time `gorm:"not null"`
}
