// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// EventStatus represents the lifecycle state of an event.
type EventStatus string

const (
	// EventStatusDraft indicates an event that is not yet published.
	EventStatusDraft EventStatus = "DRAFT"
	// EventStatusActive indicates a published event open for participation.
	EventStatusActive EventStatus = "ACTIVE"
	// EventStatusCancelled indicates a cancelled event.
	EventStatusCancelled EventStatus = "CANCELLED"
	// EventStatusCompleted indicates an event that has taken place.
	EventStatusCompleted EventStatus = "COMPLETED"
)

// Event represents an event in the Anondo application.
type Event struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	StartDate   time.Time  `gorm:"not null;index" json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	// Location is the free-text place description shown on the event page.
	// LocationName and LocationPlaceID come from the map picker when used.
	Location        string  `json:"location"`
	LocationName    *string `json:"location_name,omitempty"`
	LocationPlaceID *string `json:"location_place_id,omitempty"`
	Address         string  `json:"address"`
	City            string  `gorm:"index" json:"city"`
	Area            string  `json:"area"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	// MaxParticipants is nil when the event has no capacity limit.
	MaxParticipants *int `json:"max_participants,omitempty"`
	// Status and IsPublic carry no column defaults on purpose: GORM drops
	// zero-value fields with a default tag from the INSERT, which would
	// silently flip a private event to the column default.
	Status   EventStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	IsPublic bool        `gorm:"not null" json:"is_public"`
	CreatorID       uint        `gorm:"not null;index" json:"creator_id"`
	Creator         User        `gorm:"foreignKey:CreatorID" json:"creator"`
	// ParticipantCount is not persisted; counts JOINED participants (computed)
	ParticipantCount int                `gorm:"->" json:"participant_count"`
	Categories       []Category         `gorm:"many2many:event_categories" json:"categories,omitempty"`
	Tags             []Tag              `gorm:"many2many:event_tags" json:"tags,omitempty"`
	Images           []EventImage       `gorm:"foreignKey:EventID" json:"images,omitempty"`
	Participants     []EventParticipant `gorm:"foreignKey:EventID" json:"participants,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
	DeletedAt        gorm.DeletedAt     `gorm:"index" json:"-"`
}
