package models

import (
	"time"
)

// ParticipationStatus represents a user's participation state on an event.
type ParticipationStatus string

const (
	// ParticipationJoined indicates the user currently participates in the event.
	ParticipationJoined ParticipationStatus = "JOINED"
	// ParticipationLeft indicates the user joined at some point and then left.
	ParticipationLeft ParticipationStatus = "LEFT"
)

// EventParticipant records a user's participation in an event.
// At most one row exists per (EventID, UserID); rejoin reuses the row.
type EventParticipant struct {
	ID       uint                `gorm:"primaryKey" json:"id"`
	EventID  uint                `gorm:"not null;uniqueIndex:idx_event_user" json:"event_id"`
	UserID   uint                `gorm:"not null;uniqueIndex:idx_event_user" json:"user_id"`
	Status   ParticipationStatus `gorm:"type:varchar(20);not null;default:'JOINED';index" json:"status"`
	JoinedAt time.Time           `gorm:"not null" json:"joined_at"`
	LeftAt   *time.Time          `json:"left_at,omitempty"`

	// Relationships
	Event Event `gorm:"foreignKey:EventID" json:"event,omitempty"`
	User  User  `gorm:"foreignKey:UserID" json:"user"`
}

// TableName specifies the table name for GORM
func (EventParticipant) TableName() string {
	return "event_participants"
}
