package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/avelory/studyhub/internal/models"
	"gorm.io/gorm"
)

func newTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(filepath.Join(t.TempDir(), "studyhub-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func createTestUser(t *testing.T, database *gorm.DB, username string, email string) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "digest",
		ImageFile:    models.DefaultImageFile,
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestObjective(t *testing.T, database *gorm.DB, userID uint) models.StudyObjective {
	t.Helper()

	objective := models.StudyObjective{
		Title:      "Read chapter five",
		TargetDate: time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC),
		UserID:     userID,
	}
	if err := database.Create(&objective).Error; err != nil {
		t.Fatalf("create objective: %v", err)
	}
	return objective
}

func countAchievements(t *testing.T, database *gorm.DB, objectiveID uint) int64 {
	t.Helper()

	count, err := NewAchievementRepository(database).CountByObjective(objectiveID)
	if err != nil {
		t.Fatalf("count achievements: %v", err)
	}
	return count
}

func TestCreateCompletedObjectiveRecordsAchievement(t *testing.T) {
	database := newTestDatabase(t)
	user := createTestUser(t, database, "alice", "alice@x.com")
	repo := NewObjectiveRepository(database)

	objective := models.StudyObjective{
		Title:      "Read chapter five",
		TargetDate: time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC),
		Completed:  true,
		UserID:     user.ID,
	}
	if err := repo.CreateWithCompletionSync(&objective, time.Now().UTC()); err != nil {
		t.Fatalf("create completed objective: %v", err)
	}
	if objective.ID == 0 {
		t.Fatal("expected the created objective to carry its id")
	}
	if count := countAchievements(t, database, objective.ID); count != 1 {
		t.Fatalf("expected 1 achievement, got %d", count)
	}
}

func TestCreateCompletedObjectiveRollsBackWholly(t *testing.T) {
	database := newTestDatabase(t)
	user := createTestUser(t, database, "alice", "alice@x.com")
	repo := NewObjectiveRepository(database)

	// Block the achievement insert so the second write in the transaction
	// fails after the objective insert succeeded.
	blockInserts := `CREATE TRIGGER block_achievement_inserts BEFORE INSERT ON achievements
BEGIN SELECT RAISE(ABORT, 'achievement inserts blocked'); END`
	if err := database.Exec(blockInserts).Error; err != nil {
		t.Fatalf("install blocking trigger: %v", err)
	}

	objective := models.StudyObjective{
		Title:      "Read chapter five",
		TargetDate: time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC),
		Completed:  true,
		UserID:     user.ID,
	}
	if err := repo.CreateWithCompletionSync(&objective, time.Now().UTC()); err == nil {
		t.Fatal("expected create to fail when the achievement insert fails")
	}

	var objectives int64
	if err := database.Model(&models.StudyObjective{}).Count(&objectives).Error; err != nil {
		t.Fatalf("count objectives: %v", err)
	}
	if objectives != 0 {
		t.Fatalf("expected the objective insert to roll back, found %d rows", objectives)
	}
	var achievements int64
	if err := database.Model(&models.Achievement{}).Count(&achievements).Error; err != nil {
		t.Fatalf("count achievements: %v", err)
	}
	if achievements != 0 {
		t.Fatalf("expected no achievement rows, found %d", achievements)
	}
}

func TestCompletionSyncCreatesSingleAchievement(t *testing.T) {
	database := newTestDatabase(t)
	user := createTestUser(t, database, "alice", "alice@x.com")
	objective := createTestObjective(t, database, user.ID)
	repo := NewObjectiveRepository(database)

	now := time.Now().UTC()
	objective.Completed = true
	if err := repo.SaveWithCompletionSync(&objective, now); err != nil {
		t.Fatalf("complete objective: %v", err)
	}
	if count := countAchievements(t, database, objective.ID); count != 1 {
		t.Fatalf("expected 1 achievement, got %d", count)
	}

	// Completing again must not duplicate the achievement.
	if err := repo.SaveWithCompletionSync(&objective, now.Add(time.Hour)); err != nil {
		t.Fatalf("re-complete objective: %v", err)
	}
	if count := countAchievements(t, database, objective.ID); count != 1 {
		t.Fatalf("expected 1 achievement after re-complete, got %d", count)
	}

	var achievement models.Achievement
	if err := database.Where("objective_id = ?", objective.ID).First(&achievement).Error; err != nil {
		t.Fatalf("load achievement: %v", err)
	}
	if achievement.UserID != user.ID {
		t.Fatalf("expected achievement owner %d, got %d", user.ID, achievement.UserID)
	}
}

func TestCompletionSyncRemovesAchievementOnRevert(t *testing.T) {
	database := newTestDatabase(t)
	user := createTestUser(t, database, "alice", "alice@x.com")
	objective := createTestObjective(t, database, user.ID)
	repo := NewObjectiveRepository(database)

	objective.Completed = true
	if err := repo.SaveWithCompletionSync(&objective, time.Now().UTC()); err != nil {
		t.Fatalf("complete objective: %v", err)
	}

	objective.Completed = false
	if err := repo.SaveWithCompletionSync(&objective, time.Now().UTC()); err != nil {
		t.Fatalf("revert objective: %v", err)
	}
	if count := countAchievements(t, database, objective.ID); count != 0 {
		t.Fatalf("expected 0 achievements after revert, got %d", count)
	}
}

func TestCompletionSyncRevertOnlyRemovesOwnAchievement(t *testing.T) {
	database := newTestDatabase(t)
	user := createTestUser(t, database, "alice", "alice@x.com")
	first := createTestObjective(t, database, user.ID)
	second := createTestObjective(t, database, user.ID)
	repo := NewObjectiveRepository(database)

	now := time.Now().UTC()
	first.Completed = true
	if err := repo.SaveWithCompletionSync(&first, now); err != nil {
		t.Fatalf("complete first objective: %v", err)
	}
	second.Completed = true
	if err := repo.SaveWithCompletionSync(&second, now); err != nil {
		t.Fatalf("complete second objective: %v", err)
	}

	first.Completed = false
	if err := repo.SaveWithCompletionSync(&first, now); err != nil {
		t.Fatalf("revert first objective: %v", err)
	}

	if count := countAchievements(t, database, first.ID); count != 0 {
		t.Fatalf("expected reverted objective to lose its achievement, got %d", count)
	}
	if count := countAchievements(t, database, second.ID); count != 1 {
		t.Fatalf("expected untouched objective to keep its achievement, got %d", count)
	}
}

func TestDeleteWithAchievementsLeavesNoOrphans(t *testing.T) {
	database := newTestDatabase(t)
	user := createTestUser(t, database, "alice", "alice@x.com")
	objective := createTestObjective(t, database, user.ID)
	repo := NewObjectiveRepository(database)

	objective.Completed = true
	if err := repo.SaveWithCompletionSync(&objective, time.Now().UTC()); err != nil {
		t.Fatalf("complete objective: %v", err)
	}

	if err := repo.DeleteWithAchievements(objective.ID); err != nil {
		t.Fatalf("delete objective: %v", err)
	}

	if count := countAchievements(t, database, objective.ID); count != 0 {
		t.Fatalf("expected no orphaned achievements, got %d", count)
	}
	var remaining int64
	if err := database.Model(&models.StudyObjective{}).Where("id = ?", objective.ID).Count(&remaining).Error; err != nil {
		t.Fatalf("count objectives: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("expected objective to be deleted, found %d rows", remaining)
	}
}

func TestAchievementListJoinsObjectiveTitles(t *testing.T) {
	database := newTestDatabase(t)
	user := createTestUser(t, database, "alice", "alice@x.com")
	objective := createTestObjective(t, database, user.ID)
	repo := NewObjectiveRepository(database)

	objective.Completed = true
	if err := repo.SaveWithCompletionSync(&objective, time.Now().UTC()); err != nil {
		t.Fatalf("complete objective: %v", err)
	}

	entries, err := NewAchievementRepository(database).ListByOwner(user.ID)
	if err != nil {
		t.Fatalf("list achievements: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 achievement entry, got %d", len(entries))
	}
	if entries[0].ObjectiveTitle != objective.Title {
		t.Fatalf("expected joined title %q, got %q", objective.Title, entries[0].ObjectiveTitle)
	}
}
