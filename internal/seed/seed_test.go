package seed

import (
	"testing"

	"anondo/internal/database"
	"anondo/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSeedTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCategories_UpsertIsIdempotent(t *testing.T) {
	db := newSeedTestDB(t)

	if err := Categories(db); err != nil {
		t.Fatalf("Categories: %v", err)
	}
	if err := Categories(db); err != nil {
		t.Fatalf("Categories second run: %v", err)
	}

	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != int64(len(BuiltInCategories)) {
		t.Fatalf("expected %d categories, got %d", len(BuiltInCategories), count)
	}
}

func TestSeed_PopulatesAllTables(t *testing.T) {
	db := newSeedTestDB(t)

	err := Seed(db, Options{NumUsers: 8, NumEvents: 12, SkipBcrypt: true})
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}

	var users, events, categories int64
	if err := db.Model(&models.User{}).Count(&users).Error; err != nil {
		t.Fatalf("count users: %v", err)
	}
	if err := db.Model(&models.Event{}).Count(&events).Error; err != nil {
		t.Fatalf("count events: %v", err)
	}
	if err := db.Model(&models.Category{}).Count(&categories).Error; err != nil {
		t.Fatalf("count categories: %v", err)
	}
	if users != 8 {
		t.Fatalf("expected 8 users, got %d", users)
	}
	if events != 12 {
		t.Fatalf("expected 12 events, got %d", events)
	}
	if categories != int64(len(BuiltInCategories)) {
		t.Fatalf("expected %d categories, got %d", len(BuiltInCategories), categories)
	}
}

func TestSeed_ParticipationsRespectRules(t *testing.T) {
	db := newSeedTestDB(t)

	if err := Seed(db, Options{NumUsers: 10, NumEvents: 15, SkipBcrypt: true}); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	var events []models.Event
	if err := db.Find(&events).Error; err != nil {
		t.Fatalf("load events: %v", err)
	}

	for _, event := range events {
		var joined int64
		err := db.Model(&models.EventParticipant{}).
			Where("event_id = ? AND status = ?", event.ID, models.ParticipationJoined).
			Count(&joined).Error
		if err != nil {
			t.Fatalf("count participants: %v", err)
		}
		if event.MaxParticipants != nil && joined > int64(*event.MaxParticipants) {
			t.Fatalf("event %d over capacity: %d > %d", event.ID, joined, *event.MaxParticipants)
		}

		var creatorRows int64
		err = db.Model(&models.EventParticipant{}).
			Where("event_id = ? AND user_id = ?", event.ID, event.CreatorID).
			Count(&creatorRows).Error
		if err != nil {
			t.Fatalf("count creator rows: %v", err)
		}
		if creatorRows != 0 {
			t.Fatalf("event %d has its creator as a participant", event.ID)
		}
	}
}

func TestSeed_CommentsOnlyOnPublicEvents(t *testing.T) {
	db := newSeedTestDB(t)

	if err := Seed(db, Options{NumUsers: 10, NumEvents: 20, SkipBcrypt: true}); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	var comments []models.Comment
	if err := db.Find(&comments).Error; err != nil {
		t.Fatalf("load comments: %v", err)
	}
	for _, comment := range comments {
		var event models.Event
		if err := db.First(&event, comment.EventID).Error; err != nil {
			t.Fatalf("load event %d: %v", comment.EventID, err)
		}
		if !event.IsPublic {
			t.Fatalf("comment %d on private event %d", comment.ID, event.ID)
		}
	}
}
