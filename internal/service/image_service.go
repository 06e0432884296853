package service

import (
	"context"
	"net/url"
	"strings"

	"anondo/internal/models"
	"anondo/internal/repository"
)

// ImageService provides event gallery business logic. Gallery mutations are
// restricted to the event creator; viewing follows event visibility.
type ImageService struct {
	imageRepo repository.ImageRepository
	eventRepo repository.EventRepository
}

type AddImageInput struct {
	UserID  uint
	EventID uint
	URL     string
	AltText string
	Caption string
}

// UpdateImageInput carries a partial image update; nil fields are untouched.
// Position is clamped to the gallery bounds like MoveImage.
type UpdateImageInput struct {
	AltText  *string
	Caption  *string
	Position *int
}

// NewImageService returns a new ImageService.
func NewImageService(imageRepo repository.ImageRepository, eventRepo repository.EventRepository) *ImageService {
	return &ImageService{
		imageRepo: imageRepo,
		eventRepo: eventRepo,
	}
}

// requireOwner loads the event and rejects anyone but its creator.
func (s *ImageService) requireOwner(ctx context.Context, eventID, userID uint) error {
	event, err := s.eventRepo.GetByID(ctx, eventID, userID)
	if err != nil {
		return err
	}
	if event.CreatorID != userID {
		return models.NewUnauthorizedError("Only the event creator can manage its images")
	}
	return nil
}

func (s *ImageService) AddImage(ctx context.Context, in AddImageInput) (*models.EventImage, error) {
	if err := s.requireOwner(ctx, in.EventID, in.UserID); err != nil {
		return nil, err
	}

	raw := strings.TrimSpace(in.URL)
	if raw == "" {
		return nil, models.NewValidationError("Image URL is required")
	}
	parsed, err := url.Parse(raw)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, models.NewValidationError("Image URL must be a valid http(s) URL")
	}

	image := &models.EventImage{
		EventID: in.EventID,
		URL:     raw,
		AltText: in.AltText,
		Caption: in.Caption,
	}
	if err := s.imageRepo.Add(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *ImageService) ListImages(ctx context.Context, eventID uint, currentUserID uint) ([]models.EventImage, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID, currentUserID)
	if err != nil {
		return nil, err
	}
	if err := authorizeEventView(ctx, s.eventRepo, event, currentUserID); err != nil {
		return nil, err
	}
	return s.imageRepo.ListByEvent(ctx, eventID)
}

func (s *ImageService) UpdateImage(ctx context.Context, eventID, imageID, userID uint, in UpdateImageInput) (*models.EventImage, error) {
	if err := s.requireOwner(ctx, eventID, userID); err != nil {
		return nil, err
	}
	image, err := s.imageFromEvent(ctx, eventID, imageID)
	if err != nil {
		return nil, err
	}
	if err := s.imageRepo.UpdateDetails(ctx, image.ID, in.AltText, in.Caption); err != nil {
		return nil, err
	}
	if in.Position != nil {
		if _, err := s.imageRepo.Move(ctx, image.ID, *in.Position); err != nil {
			return nil, err
		}
	}
	return s.imageRepo.GetByID(ctx, imageID)
}

// MoveImage repositions an image within its event gallery. The requested
// position is clamped to the gallery bounds; other images shift to keep
// positions dense.
func (s *ImageService) MoveImage(ctx context.Context, eventID, imageID, userID uint, newPosition int) ([]models.EventImage, error) {
	if err := s.requireOwner(ctx, eventID, userID); err != nil {
		return nil, err
	}
	image, err := s.imageFromEvent(ctx, eventID, imageID)
	if err != nil {
		return nil, err
	}
	if _, err := s.imageRepo.Move(ctx, image.ID, newPosition); err != nil {
		return nil, err
	}
	return s.imageRepo.ListByEvent(ctx, eventID)
}

func (s *ImageService) DeleteImage(ctx context.Context, eventID, imageID, userID uint) error {
	if err := s.requireOwner(ctx, eventID, userID); err != nil {
		return err
	}
	image, err := s.imageFromEvent(ctx, eventID, imageID)
	if err != nil {
		return err
	}
	return s.imageRepo.Delete(ctx, image.ID)
}

// imageFromEvent loads the image and verifies it belongs to the event from
// the URL path, so an image ID cannot be manipulated through another event.
func (s *ImageService) imageFromEvent(ctx context.Context, eventID, imageID uint) (*models.EventImage, error) {
	image, err := s.imageRepo.GetByID(ctx, imageID)
	if err != nil {
		return nil, err
	}
	if image.EventID != eventID {
		return nil, models.NewNotFoundError("Image", imageID)
	}
	return image, nil
}
