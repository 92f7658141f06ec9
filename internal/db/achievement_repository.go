package db

import (
	"github.com/avelory/studyhub/internal/models"
	"gorm.io/gorm"
)

type AchievementRepository struct {
	database *gorm.DB
}

func NewAchievementRepository(database *gorm.DB) *AchievementRepository {
	return &AchievementRepository{database: database}
}

// AchievementEntry is an achievement row joined with the title of the
// objective it was earned for, ready for the achievements page.
type AchievementEntry struct {
	models.Achievement
	ObjectiveTitle string
}

func (repo *AchievementRepository) ListByOwner(userID uint) ([]AchievementEntry, error) {
	entries := make([]AchievementEntry, 0)
	if err := repo.database.Model(&models.Achievement{}).
		Select("achievements.*, study_objectives.title AS objective_title").
		Joins("JOIN study_objectives ON study_objectives.id = achievements.objective_id").
		Where("achievements.user_id = ?", userID).
		Order("achievements.date_achieved DESC").
		Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *AchievementRepository) CountByObjective(objectiveID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Achievement{}).
		Where("objective_id = ?", objectiveID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
