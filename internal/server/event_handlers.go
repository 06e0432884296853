package server

import (
	"strings"
	"time"

	"anondo/internal/models"
	"anondo/internal/repository"
	"anondo/internal/service"

	"github.com/gofiber/fiber/v2"
)

type eventPayload struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	Location        string     `json:"location"`
	LocationName    *string    `json:"location_name"`
	LocationPlaceID *string    `json:"location_place_id"`
	Address         string     `json:"address"`
	City            string     `json:"city"`
	Area            string     `json:"area"`
	Latitude        *float64   `json:"latitude"`
	Longitude       *float64   `json:"longitude"`
	MaxParticipants *int       `json:"max_participants"`
	IsPublic        *bool      `json:"is_public"`
	CategoryIDs     []uint     `json:"category_ids"`
	Tags            []string   `json:"tags"`
}

// CreateEvent handles POST /api/events
func (s *Server) CreateEvent(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req eventPayload
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	event, err := s.eventService.CreateEvent(c.Context(), service.CreateEventInput{
		CreatorID:       userID,
		Title:           req.Title,
		Description:     req.Description,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Location:        req.Location,
		LocationName:    req.LocationName,
		LocationPlaceID: req.LocationPlaceID,
		Address:         req.Address,
		City:            req.City,
		Area:            req.Area,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		MaxParticipants: req.MaxParticipants,
		IsPublic:        req.IsPublic,
		CategoryIDs:     req.CategoryIDs,
		TagNames:        req.Tags,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

// GetEvents handles GET /api/events with optional category, tag, search,
// city and date filters. Only public ACTIVE events appear in listings;
// feed=following narrows the result to creators the requester follows.
func (s *Server) GetEvents(c *fiber.Ctx) error {
	currentUserID, authed := s.optionalUserID(c)
	p := parsePagination(c, 20)

	filter := repository.EventFilter{
		TagName: c.Query("tag"),
		Search:  c.Query("search"),
		City:    c.Query("city"),
		Status:  models.EventStatus(c.Query("status", string(models.EventStatusActive))),
	}
	if categoryID := c.QueryInt("category_id", 0); categoryID > 0 {
		filter.CategoryID = uint(categoryID)
	}
	if fromRaw := c.Query("from"); fromRaw != "" {
		from, err := time.Parse(time.RFC3339, fromRaw)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid from date, expected RFC 3339"))
		}
		filter.From = &from
	}
	if toRaw := c.Query("to"); toRaw != "" {
		to, err := time.Parse(time.RFC3339, toRaw)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid to date, expected RFC 3339"))
		}
		filter.To = &to
	}
	if feed := c.Query("feed"); feed != "" {
		if feed != "following" {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Unknown feed, expected \"following\""))
		}
		if !authed {
			return respondServiceError(c, models.NewAuthRequiredError())
		}
		ids, err := s.followRepo.FollowingIDs(c.Context(), currentUserID)
		if err != nil {
			return respondServiceError(c, err)
		}
		// The requester's own events belong in their feed too.
		filter.CreatorIDs = append(ids, currentUserID)
	}

	events, total, err := s.eventService.ListEvents(c.Context(), filter, p.Limit, p.Offset, currentUserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"events": events,
		"total":  total,
		"limit":  p.Limit,
		"offset": p.Offset,
	})
}

// GetEvent handles GET /api/events/:id
func (s *Server) GetEvent(c *fiber.Ctx) error {
	eventID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	currentUserID, _ := s.optionalUserID(c)

	event, svcErr := s.eventService.GetEvent(c.Context(), eventID, currentUserID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(event)
}

// UpdateEvent handles PUT /api/events/:id
func (s *Server) UpdateEvent(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	eventID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title           *string             `json:"title"`
		Description     *string             `json:"description"`
		StartDate       *time.Time          `json:"start_date"`
		EndDate         *time.Time          `json:"end_date"`
		Location        *string             `json:"location"`
		LocationName    *string             `json:"location_name"`
		LocationPlaceID *string             `json:"location_place_id"`
		Address         *string             `json:"address"`
		City            *string             `json:"city"`
		Area            *string             `json:"area"`
		Latitude        *float64            `json:"latitude"`
		Longitude       *float64            `json:"longitude"`
		MaxParticipants *int                `json:"max_participants"`
		Status          *models.EventStatus `json:"status"`
		IsPublic        *bool               `json:"is_public"`
		CategoryIDs     []uint              `json:"category_ids"`
		Tags            []string            `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	event, svcErr := s.eventService.UpdateEvent(c.Context(), service.UpdateEventInput{
		UserID:          userID,
		EventID:         eventID,
		Title:           req.Title,
		Description:     req.Description,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Location:        req.Location,
		LocationName:    req.LocationName,
		LocationPlaceID: req.LocationPlaceID,
		Address:         req.Address,
		City:            req.City,
		Area:            req.Area,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		MaxParticipants: req.MaxParticipants,
		Status:          req.Status,
		IsPublic:        req.IsPublic,
		CategoryIDs:     req.CategoryIDs,
		TagNames:        req.Tags,
	})
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(event)
}

// DeleteEvent handles DELETE /api/events/:id
func (s *Server) DeleteEvent(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	eventID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.eventService.DeleteEvent(c.Context(), eventID, userID); svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"message": "Event deleted",
	})
}

// JoinEvent handles POST /api/events/:id/join
func (s *Server) JoinEvent(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	eventID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.eventService.JoinEvent(c.Context(), eventID, userID); svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	event, svcErr := s.eventService.GetEvent(c.Context(), eventID, userID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(event)
}

// LeaveEvent handles DELETE /api/events/:id/join
func (s *Server) LeaveEvent(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	eventID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if svcErr := s.eventService.LeaveEvent(c.Context(), eventID, userID); svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"message": "Left event",
	})
}

// GetParticipants handles GET /api/events/:id/participants
func (s *Server) GetParticipants(c *fiber.Ctx) error {
	eventID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	currentUserID, _ := s.optionalUserID(c)
	p := parsePagination(c, 50)

	participants, svcErr := s.eventService.Participants(c.Context(), eventID, p.Limit, p.Offset, currentUserID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"participants": participants,
		"limit":        p.Limit,
		"offset":       p.Offset,
	})
}

// GetMyEvents handles GET /api/users/me/events
func (s *Server) GetMyEvents(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	p := parsePagination(c, 20)

	events, err := s.eventService.ListCreatedBy(c.Context(), userID, p.Limit, p.Offset, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"events": events,
		"limit":  p.Limit,
		"offset": p.Offset,
	})
}

// GetMyJoinedEvents handles GET /api/users/me/joined
func (s *Server) GetMyJoinedEvents(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	p := parsePagination(c, 20)

	events, err := s.eventService.ListJoined(c.Context(), userID, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"events": events,
		"limit":  p.Limit,
		"offset": p.Offset,
	})
}

// GetFollowingFeed handles GET /api/users/me/feed
func (s *Server) GetFollowingFeed(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	p := parsePagination(c, 20)

	events, total, err := s.userService.FollowingFeed(c.Context(), userID, p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"events": events,
		"total":  total,
		"limit":  p.Limit,
		"offset": p.Offset,
	})
}

// GetCategories handles GET /api/categories
func (s *Server) GetCategories(c *fiber.Ctx) error {
	categories, err := s.categoryRepo.List(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"categories": categories,
	})
}

// CreateCategory handles POST /api/categories
func (s *Server) CreateCategory(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Category name is required"))
	}

	category := models.Category{Name: name}
	if err := s.categoryRepo.Create(c.Context(), &category); err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}
