package services

import (
	"errors"
	"time"

	"github.com/avelory/studyhub/internal/models"
	"gorm.io/gorm"
)

type EventRepository interface {
	FindByID(eventID uint) (models.CalendarEvent, error)
	ListByOwner(userID uint) ([]models.CalendarEvent, error)
	ListUpcomingByOwner(userID uint, from time.Time, limit int) ([]models.CalendarEvent, error)
	Create(event *models.CalendarEvent) error
	Save(event *models.CalendarEvent) error
	Delete(eventID uint) error
}

type EventService struct {
	events EventRepository
}

func NewEventService(events EventRepository) *EventService {
	return &EventService{events: events}
}

func (service *EventService) ListForUser(userID uint) ([]models.CalendarEvent, error) {
	return service.events.ListByOwner(userID)
}

func (service *EventService) ListUpcomingForUser(userID uint, from time.Time, limit int) ([]models.CalendarEvent, error) {
	return service.events.ListUpcomingByOwner(userID, from, limit)
}

func (service *EventService) Create(event *models.CalendarEvent) error {
	return service.events.Create(event)
}

// GetOwned resolves the event and enforces ownership. A missing row yields
// ErrNotFound before any ownership decision is made.
func (service *EventService) GetOwned(eventID uint, userID uint) (models.CalendarEvent, error) {
	event, err := service.events.FindByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CalendarEvent{}, ErrNotFound
		}
		return models.CalendarEvent{}, err
	}
	if event.UserID != userID {
		return models.CalendarEvent{}, ErrNotOwner
	}
	return event, nil
}

func (service *EventService) Update(event *models.CalendarEvent) error {
	return service.events.Save(event)
}

func (service *EventService) Delete(eventID uint) error {
	return service.events.Delete(eventID)
}
