package server

import (
	"anondo/internal/models"
	"anondo/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AddEventImage handles POST /api/events/:id/images
func (s *Server) AddEventImage(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	eventID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		URL     string `json:"url"`
		AltText string `json:"alt_text"`
		Caption string `json:"caption"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	image, svcErr := s.imageService.AddImage(c.Context(), service.AddImageInput{
		UserID:  userID,
		EventID: eventID,
		URL:     req.URL,
		AltText: req.AltText,
		Caption: req.Caption,
	})
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.Status(fiber.StatusCreated).JSON(image)
}

// GetEventImages handles GET /api/events/:id/images
func (s *Server) GetEventImages(c *fiber.Ctx) error {
	eventID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	currentUserID, _ := s.optionalUserID(c)

	images, svcErr := s.imageService.ListImages(c.Context(), eventID, currentUserID)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"images": images,
	})
}

// UpdateEventImage handles PATCH /api/events/:id/images/:imageId
func (s *Server) UpdateEventImage(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	eventID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	imageID, err := s.parseID(c, "imageId")
	if err != nil {
		return nil
	}

	var req struct {
		AltText  *string `json:"alt_text"`
		Caption  *string `json:"caption"`
		Position *int    `json:"position"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	image, svcErr := s.imageService.UpdateImage(c.Context(), eventID, imageID, userID, service.UpdateImageInput{
		AltText:  req.AltText,
		Caption:  req.Caption,
		Position: req.Position,
	})
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(image)
}

// MoveEventImage handles PUT /api/events/:id/images/:imageId/position.
// The requested position is clamped to the gallery bounds and the full
// reordered gallery comes back.
func (s *Server) MoveEventImage(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	eventID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	imageID, err := s.parseID(c, "imageId")
	if err != nil {
		return nil
	}

	var req struct {
		Position *int `json:"position"`
	}
	if err := c.BodyParser(&req); err != nil || req.Position == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Position is required"))
	}

	images, svcErr := s.imageService.MoveImage(c.Context(), eventID, imageID, userID, *req.Position)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"images": images,
	})
}

// DeleteEventImage handles DELETE /api/events/:id/images/:imageId
func (s *Server) DeleteEventImage(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	eventID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	imageID, err := s.parseID(c, "imageId")
	if err != nil {
		return nil
	}

	if svcErr := s.imageService.DeleteImage(c.Context(), eventID, imageID, userID); svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"message": "Image deleted",
	})
}
