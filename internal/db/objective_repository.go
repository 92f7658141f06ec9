package db

import (
	"time"

	"github.com/avelory/studyhub/internal/models"
	"gorm.io/gorm"
)

type ObjectiveRepository struct {
	database *gorm.DB
}

func NewObjectiveRepository(database *gorm.DB) *ObjectiveRepository {
	return &ObjectiveRepository{database: database}
}

func (repo *ObjectiveRepository) FindByID(objectiveID uint) (models.StudyObjective, error) {
	var objective models.StudyObjective
	if err := repo.database.First(&objective, objectiveID).Error; err != nil {
		return models.StudyObjective{}, err
	}
	return objective, nil
}

func (repo *ObjectiveRepository) ListByOwner(userID uint) ([]models.StudyObjective, error) {
	objectives := make([]models.StudyObjective, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("target_date ASC").
		Find(&objectives).Error; err != nil {
		return nil, err
	}
	return objectives, nil
}

func (repo *ObjectiveRepository) ListActiveByOwner(userID uint, limit int) ([]models.StudyObjective, error) {
	objectives := make([]models.StudyObjective, 0)
	if err := repo.database.
		Where("user_id = ? AND completed = ?", userID, false).
		Order("target_date ASC").
		Limit(limit).
		Find(&objectives).Error; err != nil {
		return nil, err
	}
	return objectives, nil
}

// CreateWithCompletionSync inserts the objective and, when it is born already
// completed, its achievement row in the same transaction. A failed achievement
// insert rolls the objective back too.
func (repo *ObjectiveRepository) CreateWithCompletionSync(objective *models.StudyObjective, now time.Time) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(objective).Error; err != nil {
			return err
		}
		if !objective.Completed {
			return nil
		}

		achievement := models.Achievement{
			ObjectiveID:  objective.ID,
			DateAchieved: now,
			UserID:       objective.UserID,
		}
		return tx.Create(&achievement).Error
	})
}

// SaveWithCompletionSync persists the objective and keeps its achievement row
// aligned with the completed flag, all inside one transaction. Completing an
// already-completed objective is a no-op on the achievements table.
func (repo *ObjectiveRepository) SaveWithCompletionSync(objective *models.StudyObjective, now time.Time) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(objective).Error; err != nil {
			return err
		}

		if !objective.Completed {
			return tx.Where("objective_id = ?", objective.ID).Delete(&models.Achievement{}).Error
		}

		var existing int64
		if err := tx.Model(&models.Achievement{}).
			Where("objective_id = ?", objective.ID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		achievement := models.Achievement{
			ObjectiveID:  objective.ID,
			DateAchieved: now,
			UserID:       objective.UserID,
		}
		return tx.Create(&achievement).Error
	})
}

// DeleteWithAchievements removes the objective's achievement rows first, then
// the objective itself, so no orphaned achievements can survive the delete.
func (repo *ObjectiveRepository) DeleteWithAchievements(objectiveID uint) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("objective_id = ?", objectiveID).Delete(&models.Achievement{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.StudyObjective{}, objectiveID).Error
	})
}
