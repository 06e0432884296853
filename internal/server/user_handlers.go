package server

import (
	"anondo/internal/models"
	"anondo/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetUserByID(c.Context(), userID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Name         *string `json:"name"`
		Bio          *string `json:"bio"`
		Location     *string `json:"location"`
		ProfileImage *string `json:"profile_image"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:       userID,
		Name:         req.Name,
		Bio:          req.Bio,
		Location:     req.Location,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	currentUserID, _ := s.optionalUserID(c)

	user, svcErr := s.userService.GetUserByID(c.Context(), targetID, currentUserID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(user)
}

// GetUserEvents handles GET /api/users/:id/events?type=created|joined.
// The joined list discloses attendance, so the whole route is restricted
// to the user themselves.
func (s *Server) GetUserEvents(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	currentUserID, ok := s.optionalUserID(c)
	if !ok {
		return respondServiceError(c, models.NewAuthRequiredError())
	}
	if currentUserID != targetID {
		return respondServiceError(c,
			models.NewUnauthorizedError("You can only list your own events"))
	}
	p := parsePagination(c, 20)

	switch c.Query("type") {
	case "created":
		events, svcErr := s.eventService.ListCreatedBy(c.Context(), targetID, p.Limit, p.Offset, currentUserID)
		if svcErr != nil {
			return respondServiceError(c, svcErr)
		}
		return c.JSON(fiber.Map{"events": events, "limit": p.Limit, "offset": p.Offset})
	case "joined":
		events, svcErr := s.eventService.ListJoined(c.Context(), targetID, p.Limit, p.Offset)
		if svcErr != nil {
			return respondServiceError(c, svcErr)
		}
		return c.JSON(fiber.Map{"events": events, "limit": p.Limit, "offset": p.Offset})
	case "":
		created, svcErr := s.eventService.ListCreatedBy(c.Context(), targetID, p.Limit, p.Offset, currentUserID)
		if svcErr != nil {
			return respondServiceError(c, svcErr)
		}
		joined, svcErr := s.eventService.ListJoined(c.Context(), targetID, p.Limit, p.Offset)
		if svcErr != nil {
			return respondServiceError(c, svcErr)
		}
		return c.JSON(fiber.Map{"created": created, "joined": joined, "limit": p.Limit, "offset": p.Offset})
	default:
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("type must be \"created\" or \"joined\""))
	}
}

// SearchUsers handles GET /api/users/search?q=
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	currentUserID := c.Locals("userID").(uint)
	p := parsePagination(c, 20)

	result, err := s.userService.SearchUsers(c.Context(), c.Query("q"), p.Limit, p.Offset, currentUserID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"users":    result.Users,
		"has_more": result.HasMore,
		"limit":    p.Limit,
		"offset":   p.Offset,
	})
}
