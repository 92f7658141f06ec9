package models

import "time"

type CalendarEvent struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:100;not null"`
	Date        time.Time `gorm:"not null"`
	Description string
	UserID      uint `gorm:"not null;index"`
}
