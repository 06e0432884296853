package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"anondo/internal/models"
	"anondo/internal/observability"
	"anondo/internal/repository"
	"anondo/internal/validation"
)

// EventService provides event lifecycle and participation business logic.
type EventService struct {
	eventRepo    repository.EventRepository
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
}

type CreateEventInput struct {
	CreatorID       uint
	Title           string
	Description     string
	StartDate       time.Time
	EndDate         *time.Time
	Location        string
	LocationName    *string
	LocationPlaceID *string
	Address         string
	City            string
	Area            string
	Latitude        *float64
	Longitude       *float64
	MaxParticipants *int
	IsPublic        *bool
	CategoryIDs     []uint
	TagNames        []string
}

// UpdateEventInput carries a partial update; nil fields are left untouched.
type UpdateEventInput struct {
	UserID          uint
	EventID         uint
	Title           *string
	Description     *string
	StartDate       *time.Time
	EndDate         *time.Time
	Location        *string
	LocationName    *string
	LocationPlaceID *string
	Address         *string
	City            *string
	Area            *string
	Latitude        *float64
	Longitude       *float64
	MaxParticipants *int
	Status          *models.EventStatus
	IsPublic        *bool
	CategoryIDs     []uint
	TagNames        []string
}

// NewEventService returns a new EventService.
func NewEventService(
	eventRepo repository.EventRepository,
	categoryRepo repository.CategoryRepository,
	tagRepo repository.TagRepository,
) *EventService {
	return &EventService{
		eventRepo:    eventRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

// authorizeEventView enforces the event visibility rule: anyone can see a
// public event, while a private event is visible only to its creator and to
// users currently joined. Anonymous viewers of private events get
// AUTH_REQUIRED so clients know logging in might help.
func authorizeEventView(ctx context.Context, eventRepo repository.EventRepository, event *models.Event, currentUserID uint) error {
	if event.IsPublic || (currentUserID != 0 && event.CreatorID == currentUserID) {
		return nil
	}
	if currentUserID == 0 {
		return models.NewAuthRequiredError()
	}

	joined, err := eventRepo.IsJoined(ctx, event.ID, currentUserID)
	if err != nil {
		return err
	}
	if !joined {
		return models.NewUnauthorizedError("This event is private")
	}
	return nil
}

func (s *EventService) authorizeView(ctx context.Context, event *models.Event, currentUserID uint) error {
	return authorizeEventView(ctx, s.eventRepo, event, currentUserID)
}

func (s *EventService) CreateEvent(ctx context.Context, in CreateEventInput) (*models.Event, error) {
	if err := validation.ValidateEventTitle(in.Title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEventDates(in.StartDate, in.EndDate); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateMaxParticipants(in.MaxParticipants); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, models.NewValidationError("Description is required")
	}
	for _, name := range in.TagNames {
		if err := validation.ValidateTagName(name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
	}

	categories, err := s.categoryRepo.GetByIDs(ctx, in.CategoryIDs)
	if err != nil {
		return nil, err
	}
	tags, err := s.tagRepo.GetOrCreateByNames(ctx, in.TagNames)
	if err != nil {
		return nil, err
	}

	isPublic := true
	if in.IsPublic != nil {
		isPublic = *in.IsPublic
	}

	event := &models.Event{
		Title:           strings.TrimSpace(in.Title),
		Description:     in.Description,
		StartDate:       in.StartDate,
		EndDate:         in.EndDate,
		Location:        in.Location,
		LocationName:    in.LocationName,
		LocationPlaceID: in.LocationPlaceID,
		Address:         in.Address,
		City:            in.City,
		Area:            in.Area,
		Latitude:        in.Latitude,
		Longitude:       in.Longitude,
		MaxParticipants: in.MaxParticipants,
		Status:          models.EventStatusActive,
		IsPublic:        isPublic,
		CreatorID:       in.CreatorID,
		Categories:      categories,
		Tags:            tags,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	observability.EventsCreatedTotal.Inc()

	return s.eventRepo.GetByID(ctx, event.ID, in.CreatorID)
}

func (s *EventService) GetEvent(ctx context.Context, eventID, currentUserID uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID, currentUserID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeView(ctx, event, currentUserID); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context, filter repository.EventFilter, limit, offset int, currentUserID uint) ([]*models.Event, int64, error) {
	return s.eventRepo.List(ctx, filter, limit, offset, currentUserID)
}

// ListCreatedBy returns events created by the given user. Private events are
// included only when the creator themselves is asking.
func (s *EventService) ListCreatedBy(ctx context.Context, creatorID uint, limit, offset int, currentUserID uint) ([]*models.Event, error) {
	events, err := s.eventRepo.ListByCreator(ctx, creatorID, limit, offset, currentUserID)
	if err != nil {
		return nil, err
	}
	if creatorID == currentUserID {
		return events, nil
	}
	visible := make([]*models.Event, 0, len(events))
	for _, event := range events {
		if event.IsPublic {
			visible = append(visible, event)
		}
	}
	return visible, nil
}

func (s *EventService) ListJoined(ctx context.Context, userID uint, limit, offset int) ([]*models.Event, error) {
	return s.eventRepo.ListJoinedByUser(ctx, userID, limit, offset)
}

func (s *EventService) UpdateEvent(ctx context.Context, in UpdateEventInput) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, in.EventID, in.UserID)
	if err != nil {
		return nil, err
	}
	// Not-owned reads as not-found so the route does not reveal which
	// event ids exist to users who cannot edit them.
	if event.CreatorID != in.UserID {
		return nil, models.NewNotFoundError("Event", in.EventID)
	}

	if in.Title != nil {
		if err := validation.ValidateEventTitle(*in.Title); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		event.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return nil, models.NewValidationError("Description is required")
		}
		event.Description = *in.Description
	}
	if in.StartDate != nil {
		event.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		event.EndDate = in.EndDate
	}
	if err := validation.ValidateEventDates(event.StartDate, event.EndDate); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.MaxParticipants != nil {
		if err := validation.ValidateMaxParticipants(in.MaxParticipants); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		event.MaxParticipants = in.MaxParticipants
	}
	if in.Location != nil {
		event.Location = *in.Location
	}
	if in.LocationName != nil {
		event.LocationName = in.LocationName
	}
	if in.LocationPlaceID != nil {
		event.LocationPlaceID = in.LocationPlaceID
	}
	if in.Address != nil {
		event.Address = *in.Address
	}
	if in.City != nil {
		event.City = *in.City
	}
	if in.Area != nil {
		event.Area = *in.Area
	}
	if in.Latitude != nil {
		event.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		event.Longitude = in.Longitude
	}
	if in.Status != nil {
		switch *in.Status {
		case models.EventStatusDraft, models.EventStatusActive,
			models.EventStatusCancelled, models.EventStatusCompleted:
			event.Status = *in.Status
		default:
			return nil, models.NewValidationError("Invalid event status")
		}
	}
	if in.IsPublic != nil {
		event.IsPublic = *in.IsPublic
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	if in.CategoryIDs != nil {
		categories, err := s.categoryRepo.GetByIDs(ctx, in.CategoryIDs)
		if err != nil {
			return nil, err
		}
		if err := s.eventRepo.ReplaceCategories(ctx, event, categories); err != nil {
			return nil, err
		}
	}
	if in.TagNames != nil {
		for _, name := range in.TagNames {
			if err := validation.ValidateTagName(name); err != nil {
				return nil, models.NewValidationError(err.Error())
			}
		}
		tags, err := s.tagRepo.GetOrCreateByNames(ctx, in.TagNames)
		if err != nil {
			return nil, err
		}
		if err := s.eventRepo.ReplaceTags(ctx, event, tags); err != nil {
			return nil, err
		}
	}

	return s.eventRepo.GetByID(ctx, event.ID, in.UserID)
}

func (s *EventService) DeleteEvent(ctx context.Context, eventID, userID uint) error {
	event, err := s.eventRepo.GetByID(ctx, eventID, userID)
	if err != nil {
		return err
	}
	if event.CreatorID != userID {
		return models.NewNotFoundError("Event", eventID)
	}
	return s.eventRepo.Delete(ctx, eventID)
}

// JoinEvent enrolls the user in the event. Rule rejections come back as
// business rule errors; every attempt is counted by outcome.
func (s *EventService) JoinEvent(ctx context.Context, eventID, userID uint) error {
	err := s.eventRepo.Join(ctx, eventID, userID)
	observability.EventJoinOutcomes.WithLabelValues(joinOutcome(err)).Inc()
	return err
}

func (s *EventService) LeaveEvent(ctx context.Context, eventID, userID uint) error {
	return s.eventRepo.Leave(ctx, eventID, userID)
}

func (s *EventService) Participants(ctx context.Context, eventID uint, limit, offset int, currentUserID uint) ([]models.EventParticipant, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID, currentUserID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeView(ctx, event, currentUserID); err != nil {
		return nil, err
	}
	return s.eventRepo.Participants(ctx, eventID, limit, offset)
}

func joinOutcome(err error) string {
	if err == nil {
		return "joined"
	}
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeEventFull, models.CodeAlreadyJoined,
			models.CodeEventNotActive, models.CodeOwnEvent:
			return strings.ToLower(appErr.Code)
		case "NOT_FOUND":
			return "not_found"
		}
	}
	return "error"
}
