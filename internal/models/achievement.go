package models

import "time"

// Achievement rows mirror the completed state of their objective: the
// objective service creates one when an objective completes and removes it
// when the objective reverts or is deleted. UserID is denormalized from the
// owning objective so the achievements page needs no join to filter by owner.
type Achievement struct {
	ID           uint      `gorm:"primaryKey"`
	ObjectiveID  uint      `gorm:"not null;index"`
	DateAchieved time.Time `gorm:"not null"`
	UserID       uint      `gorm:"not null;index"`
}
