// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a user in the Anondo application.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"unique;not null" json:"email"`
	Password     string `gorm:"not null" json:"-"`
	Bio          string `json:"bio"`
	Location     string `json:"location"`
	ProfileImage string `json:"profile_image"`
	// FollowersCount is not persisted; computed at query time
	FollowersCount int `gorm:"->" json:"followers_count"`
	// FollowingCount is not persisted; computed at query time
	FollowingCount int `gorm:"->" json:"following_count"`
	// CreatedEventsCount is not persisted; computed at query time
	CreatedEventsCount int `gorm:"->" json:"created_events_count"`
	// IsFollowing indicates whether the current requesting user follows this user (computed)
	IsFollowing bool           `gorm:"->" json:"is_following"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Events      []Event        `gorm:"foreignKey:CreatorID" json:"events,omitempty"`
}
