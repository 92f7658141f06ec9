package db

import (
	"time"

	"github.com/avelory/studyhub/internal/models"
	"gorm.io/gorm"
)

type EventRepository struct {
	database *gorm.DB
}

func NewEventRepository(database *gorm.DB) *EventRepository {
	return &EventRepository{database: database}
}

func (repo *EventRepository) FindByID(eventID uint) (models.CalendarEvent, error) {
	var event models.CalendarEvent
	if err := repo.database.First(&event, eventID).Error; err != nil {
		return models.CalendarEvent{}, err
	}
	return event, nil
}

func (repo *EventRepository) ListByOwner(userID uint) ([]models.CalendarEvent, error) {
	events := make([]models.CalendarEvent, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ListUpcomingByOwner returns the owner's next events on or after the given
// day, soonest first.
func (repo *EventRepository) ListUpcomingByOwner(userID uint, from time.Time, limit int) ([]models.CalendarEvent, error) {
	events := make([]models.CalendarEvent, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ?", userID, from).
		Order("date ASC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *EventRepository) Create(event *models.CalendarEvent) error {
	return repo.database.Create(event).Error
}

func (repo *EventRepository) Save(event *models.CalendarEvent) error {
	return repo.database.Save(event).Error
}

func (repo *EventRepository) Delete(eventID uint) error {
	return repo.database.Delete(&models.CalendarEvent{}, eventID).Error
}
