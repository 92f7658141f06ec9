package models

import "time"

type StudyObjective struct {
	ID              uint      `gorm:"primaryKey"`
	Title           string    `gorm:"size:100;not null"`
	Description     string
	TargetDate      time.Time `gorm:"not null"`
	CurrentProgress float64   `gorm:"not null;default:0"`
	Completed       bool      `gorm:"not null;default:false"`
	UserID          uint      `gorm:"not null;index"`
}
