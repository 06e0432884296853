package repository

import (
	"testing"
	"time"

	"anondo/internal/database"
	"anondo/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email, Password: "hashed"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createTestEvent(t *testing.T, db *gorm.DB, creatorID uint, mutate ...func(*models.Event)) *models.Event {
	t.Helper()
	e := &models.Event{
		Title:       "Weekend Picnic",
		Description: "Bring snacks",
		StartDate:   time.Now().Add(48 * time.Hour).UTC(),
		City:        "Dhaka",
		Status:      models.EventStatusActive,
		IsPublic:    true,
		CreatorID:   creatorID,
	}
	for _, m := range mutate {
		m(e)
	}
	require.NoError(t, db.Create(e).Error)
	return e
}
