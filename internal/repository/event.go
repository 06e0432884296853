// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"anondo/internal/cache"
	"anondo/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventFilter narrows event listings.
type EventFilter struct {
	CategoryID uint
	TagName    string
	Search     string
	City       string
	Status     models.EventStatus
	From       *time.Time
	To         *time.Time
	CreatorIDs []uint
}

// EventRepository defines the interface for event data operations
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Event, error)
	List(ctx context.Context, filter EventFilter, limit, offset int, currentUserID uint) ([]*models.Event, int64, error)
	ListByCreator(ctx context.Context, creatorID uint, limit, offset int, currentUserID uint) ([]*models.Event, error)
	ListByCreators(ctx context.Context, creatorIDs []uint, limit, offset int, currentUserID uint) ([]*models.Event, int64, error)
	ListJoinedByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id uint) error
	Join(ctx context.Context, eventID, userID uint) error
	Leave(ctx context.Context, eventID, userID uint) error
	Participants(ctx context.Context, eventID uint, limit, offset int) ([]models.EventParticipant, error)
	IsJoined(ctx context.Context, eventID, userID uint) (bool, error)
	ReplaceCategories(ctx context.Context, event *models.Event, categories []models.Category) error
	ReplaceTags(ctx context.Context, event *models.Event, tags []models.Tag) error
}

// eventRepository implements EventRepository
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// applyEventDetails adds a subquery to fetch the joined participant count in a single query.
func (r *eventRepository) applyEventDetails(db *gorm.DB) *gorm.DB {
	return db.Select("events.*, " +
		"(SELECT COUNT(*) FROM event_participants WHERE event_participants.event_id = events.id AND event_participants.status = 'JOINED') as participant_count")
}

func (r *eventRepository) GetByID(ctx context.Context, id uint, currentUserID uint) (*models.Event, error) {
	var event models.Event

	err := r.applyEventDetails(r.db.WithContext(ctx)).
		Preload("Creator").
		Preload("Categories").
		Preload("Tags").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Where("status = ?", models.ParticipationJoined).Order("joined_at ASC")
		}).
		Preload("Participants.User").
		First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Event", id)
		}
		return nil, models.NewInternalError(err)
	}

	return &event, nil
}

func (r *eventRepository) List(ctx context.Context, filter EventFilter, limit, offset int, currentUserID uint) ([]*models.Event, int64, error) {
	base := r.db.WithContext(ctx).Model(&models.Event{}).Where("is_public = ?", true)

	if filter.Status != "" {
		base = base.Where("status = ?", filter.Status)
	}
	if filter.City != "" {
		base = base.Where("city = ?", filter.City)
	}
	if filter.From != nil {
		base = base.Where("start_date >= ?", *filter.From)
	}
	if filter.To != nil {
		base = base.Where("start_date <= ?", *filter.To)
	}
	if filter.Search != "" {
		// LOWER+LIKE instead of ILIKE so the same query runs on sqlite in tests.
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		base = base.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ? OR LOWER(address) LIKE ? OR LOWER(city) LIKE ?",
			pattern, pattern, pattern, pattern, pattern)
	}
	if filter.CategoryID != 0 {
		base = base.Joins("JOIN event_categories ec ON ec.event_id = events.id").
			Where("ec.category_id = ?", filter.CategoryID)
	}
	if filter.TagName != "" {
		base = base.Joins("JOIN event_tags et ON et.event_id = events.id").
			Joins("JOIN tags t ON t.id = et.tag_id").
			Where("LOWER(t.name) = LOWER(?)", filter.TagName)
	}
	if len(filter.CreatorIDs) > 0 {
		base = base.Where("events.creator_id IN ?", filter.CreatorIDs)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var events []*models.Event
	err := r.applyEventDetails(base.Session(&gorm.Session{})).
		Preload("Creator").
		Preload("Categories").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("start_date ASC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	return events, total, nil
}

func (r *eventRepository) ListByCreator(ctx context.Context, creatorID uint, limit, offset int, currentUserID uint) ([]*models.Event, error) {
	var events []*models.Event
	err := r.applyEventDetails(r.db.WithContext(ctx)).
		Preload("Creator").
		Preload("Categories").
		Where("creator_id = ?", creatorID).
		Order("events.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return events, nil
}

func (r *eventRepository) ListByCreators(ctx context.Context, creatorIDs []uint, limit, offset int, currentUserID uint) ([]*models.Event, int64, error) {
	if len(creatorIDs) == 0 {
		return nil, 0, nil
	}

	base := r.db.WithContext(ctx).Model(&models.Event{}).
		Where("creator_id IN ? AND is_public = ?", creatorIDs, true)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var events []*models.Event
	err := r.applyEventDetails(base.Session(&gorm.Session{})).
		Preload("Creator").
		Preload("Categories").
		Order("start_date ASC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error
	if err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return events, total, nil
}

func (r *eventRepository) ListJoinedByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Event, error) {
	var events []*models.Event
	err := r.applyEventDetails(r.db.WithContext(ctx)).
		Preload("Creator").
		Joins("JOIN event_participants ep ON ep.event_id = events.id").
		Where("ep.user_id = ? AND ep.status = ?", userID, models.ParticipationJoined).
		Order("ep.joined_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, event *models.Event) error {
	if err := r.db.WithContext(ctx).Save(event).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateEvent(ctx, event.ID)
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Event{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateEvent(ctx, id)
	return nil
}

// Join adds the user to the event, enforcing status, ownership, capacity and
// duplicate rules inside one transaction. On PostgreSQL the event row is
// locked with SELECT ... FOR UPDATE so concurrent joins cannot exceed the
// capacity limit; SQLite serializes writers on its own.
func (r *eventRepository) Join(ctx context.Context, eventID, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var event models.Event
		if err := q.First(&event, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Event", eventID)
			}
			return models.NewInternalError(err)
		}

		if event.Status != models.EventStatusActive {
			return models.NewBusinessRuleError(models.CodeEventNotActive, "Event is not active")
		}
		if event.CreatorID == userID {
			return models.NewBusinessRuleError(models.CodeOwnEvent, "Cannot join your own event")
		}

		if event.MaxParticipants != nil {
			var joined int64
			if err := tx.Model(&models.EventParticipant{}).
				Where("event_id = ? AND status = ?", eventID, models.ParticipationJoined).
				Count(&joined).Error; err != nil {
				return models.NewInternalError(err)
			}
			if joined >= int64(*event.MaxParticipants) {
				return models.NewBusinessRuleError(models.CodeEventFull, "Event is at full capacity")
			}
		}

		var existing models.EventParticipant
		err := tx.Where("event_id = ? AND user_id = ?", eventID, userID).First(&existing).Error
		switch {
		case err == nil:
			if existing.Status == models.ParticipationJoined {
				return models.NewBusinessRuleError(models.CodeAlreadyJoined, "Already joined this event")
			}
			// Rejoin: reuse the existing row
			existing.Status = models.ParticipationJoined
			existing.JoinedAt = time.Now().UTC()
			existing.LeftAt = nil
			if err := tx.Save(&existing).Error; err != nil {
				return models.NewInternalError(err)
			}
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			// First join
		default:
			return models.NewInternalError(err)
		}

		participant := models.EventParticipant{
			EventID:  eventID,
			UserID:   userID,
			Status:   models.ParticipationJoined,
			JoinedAt: time.Now().UTC(),
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(&participant).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.NewBusinessRuleError(models.CodeAlreadyJoined, "Already joined this event")
			}
			return models.NewInternalError(err)
		}
		return nil
	})
}

// Leave marks the user's participation as LEFT. The row is kept so a rejoin
// reuses it instead of creating a second one.
func (r *eventRepository) Leave(ctx context.Context, eventID, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var participation models.EventParticipant
		err := tx.Where("event_id = ? AND user_id = ?", eventID, userID).First(&participation).Error
		if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && participation.Status != models.ParticipationJoined) {
			return models.NewBusinessRuleError(models.CodeNotJoined, "Not currently joined to this event")
		}
		if err != nil {
			return models.NewInternalError(err)
		}

		now := time.Now().UTC()
		participation.Status = models.ParticipationLeft
		participation.LeftAt = &now
		if err := tx.Save(&participation).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
}

func (r *eventRepository) Participants(ctx context.Context, eventID uint, limit, offset int) ([]models.EventParticipant, error) {
	var participants []models.EventParticipant
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("event_id = ? AND status = ?", eventID, models.ParticipationJoined).
		Order("joined_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&participants).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return participants, nil
}

func (r *eventRepository) IsJoined(ctx context.Context, eventID, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.EventParticipant{}).
		Where("event_id = ? AND user_id = ? AND status = ?", eventID, userID, models.ParticipationJoined).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *eventRepository) ReplaceCategories(ctx context.Context, event *models.Event, categories []models.Category) error {
	if err := r.db.WithContext(ctx).Model(event).Association("Categories").Replace(categories); err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateEvent(ctx, event.ID)
	return nil
}

func (r *eventRepository) ReplaceTags(ctx context.Context, event *models.Event, tags []models.Tag) error {
	if err := r.db.WithContext(ctx).Model(event).Association("Tags").Replace(tags); err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateEvent(ctx, event.ID)
	return nil
}
