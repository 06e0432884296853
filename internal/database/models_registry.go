package database

import "anondo/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Event{},
		&models.EventParticipant{},
		&models.Category{},
		&models.Tag{},
		&models.EventImage{},
		&models.Comment{},
		&models.CommentLike{},
		&models.Follow{},
	}
}
