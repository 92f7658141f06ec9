package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	Events       *EventRepository
	Objectives   *ObjectiveRepository
	Achievements *AchievementRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		Events:       NewEventRepository(database),
		Objectives:   NewObjectiveRepository(database),
		Achievements: NewAchievementRepository(database),
	}
}
