package database

import (
	"fmt"
	"testing"

	"github.com/melanieHachet/skills-integrate-mcp-with-copilot/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func TestSeed(t *testing.T) {
	db := newTestDB(t)
	log := zap.NewNop()

	if err := Seed(db, log); err != nil {
		t.Fatalf("seed: %v", err)
	}

	var activities, users, participants int64
	db.Model(&models.Activity{}).Count(&activities)
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Participant{}).Count(&participants)

	if activities != int64(len(initialActivities)) {
		t.Fatalf("activities = %d, want %d", activities, len(initialActivities))
	}
	if users != int64(len(initialUsers)) {
		t.Fatalf("users = %d, want %d", users, len(initialUsers))
	}
	if participants == 0 {
		t.Fatal("no participants seeded")
	}

	var chess models.Activity
	if err := db.Preload("Participants").Where("name = ?", "Chess Club").First(&chess).Error; err != nil {
		t.Fatalf("load Chess Club: %v", err)
	}
	if chess.MaxParticipants != 12 || len(chess.Participants) != 2 {
		t.Fatalf("Chess Club seeded wrong: max=%d participants=%d", chess.MaxParticipants, len(chess.Participants))
	}

	// second run must not duplicate anything
	if err := Seed(db, log); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	var again int64
	db.Model(&models.Activity{}).Count(&again)
	if again != activities {
		t.Fatalf("reseed duplicated activities: %d -> %d", activities, again)
	}
}
