package api

import (
	"github.com/avelory/studyhub/internal/db"
	"github.com/avelory/studyhub/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.eventService = services.NewEventService(handler.repositories.Events)
	handler.objectiveService = services.NewObjectiveService(handler.repositories.Objectives, handler.repositories.Achievements)
	return handler
}
