package services

import (
	"errors"
	"time"

	"github.com/avelory/studyhub/internal/db"
	"github.com/avelory/studyhub/internal/models"
	"gorm.io/gorm"
)

type ObjectiveRepository interface {
	FindByID(objectiveID uint) (models.StudyObjective, error)
	ListByOwner(userID uint) ([]models.StudyObjective, error)
	ListActiveByOwner(userID uint, limit int) ([]models.StudyObjective, error)
	CreateWithCompletionSync(objective *models.StudyObjective, now time.Time) error
	SaveWithCompletionSync(objective *models.StudyObjective, now time.Time) error
	DeleteWithAchievements(objectiveID uint) error
}

type AchievementLister interface {
	ListByOwner(userID uint) ([]db.AchievementEntry, error)
}

type ObjectiveService struct {
	objectives   ObjectiveRepository
	achievements AchievementLister
}

func NewObjectiveService(objectives ObjectiveRepository, achievements AchievementLister) *ObjectiveService {
	return &ObjectiveService{objectives: objectives, achievements: achievements}
}

func (service *ObjectiveService) ListForUser(userID uint) ([]models.StudyObjective, error) {
	return service.objectives.ListByOwner(userID)
}

func (service *ObjectiveService) ListActiveForUser(userID uint, limit int) ([]models.StudyObjective, error) {
	return service.objectives.ListActiveByOwner(userID, limit)
}

func (service *ObjectiveService) ListAchievementsForUser(userID uint) ([]db.AchievementEntry, error) {
	return service.achievements.ListByOwner(userID)
}

// Create persists a new objective and, when it is born already completed,
// records its achievement in the same transaction.
func (service *ObjectiveService) Create(objective *models.StudyObjective, now time.Time) error {
	return service.objectives.CreateWithCompletionSync(objective, now)
}

// GetOwned resolves the objective and enforces ownership. A missing row
// yields ErrNotFound before any ownership decision is made.
func (service *ObjectiveService) GetOwned(objectiveID uint, userID uint) (models.StudyObjective, error) {
	objective, err := service.objectives.FindByID(objectiveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.StudyObjective{}, ErrNotFound
		}
		return models.StudyObjective{}, err
	}
	if objective.UserID != userID {
		return models.StudyObjective{}, ErrNotOwner
	}
	return objective, nil
}

// Update persists field changes and syncs the derived achievement with the
// completed flag.
func (service *ObjectiveService) Update(objective *models.StudyObjective, now time.Time) error {
	return service.objectives.SaveWithCompletionSync(objective, now)
}

// SetCompleted flips the completed flag and syncs the achievement row.
func (service *ObjectiveService) SetCompleted(objective *models.StudyObjective, completed bool, now time.Time) error {
	objective.Completed = completed
	return service.objectives.SaveWithCompletionSync(objective, now)
}

// Delete removes the objective together with its achievement rows.
func (service *ObjectiveService) Delete(objectiveID uint) error {
	return service.objectives.DeleteWithAchievements(objectiveID)
}
