package models

import (
	"time"
)

// EventImage is an image attached to an event's gallery.
// Positions within an event are dense: 0..N-1 with no gaps or duplicates.
type EventImage struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	EventID  uint   `gorm:"not null;index" json:"event_id"`
	URL      string `gorm:"not null" json:"url"`
	AltText  string `json:"alt_text"`
	Caption  string `json:"caption"`
	Position int    `gorm:"not null" json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (EventImage) TableName() string {
	return "event_images"
}
