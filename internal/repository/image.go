package repository

import (
	"context"
	"errors"

	"anondo/internal/cache"
	"anondo/internal/models"

	"gorm.io/gorm"
)

// ImageRepository manages event gallery images. Positions per event stay
// dense (0..N-1): adds append, deletes close the gap, moves shift neighbors.
type ImageRepository interface {
	Add(ctx context.Context, image *models.EventImage) error
	GetByID(ctx context.Context, id uint) (*models.EventImage, error)
	ListByEvent(ctx context.Context, eventID uint) ([]models.EventImage, error)
	UpdateDetails(ctx context.Context, id uint, altText, caption *string) error
	Move(ctx context.Context, id uint, newPosition int) (*models.EventImage, error)
	Delete(ctx context.Context, id uint) error
}

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository creates a new ImageRepository
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

// Add appends the image at the end of the event's gallery.
func (r *imageRepository) Add(ctx context.Context, image *models.EventImage) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPos *int
		if err := tx.Model(&models.EventImage{}).
			Where("event_id = ?", image.EventID).
			Select("MAX(position)").
			Scan(&maxPos).Error; err != nil {
			return models.NewInternalError(err)
		}
		if maxPos == nil {
			image.Position = 0
		} else {
			image.Position = *maxPos + 1
		}
		if err := tx.Create(image).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err == nil {
		cache.Invalidate(ctx, cache.EventImagesKey(image.EventID))
	}
	return err
}

func (r *imageRepository) GetByID(ctx context.Context, id uint) (*models.EventImage, error) {
	var image models.EventImage
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Image", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &image, nil
}

func (r *imageRepository) ListByEvent(ctx context.Context, eventID uint) ([]models.EventImage, error) {
	var images []models.EventImage
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("position ASC").
		Find(&images).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return images, nil
}

func (r *imageRepository) UpdateDetails(ctx context.Context, id uint, altText, caption *string) error {
	updates := map[string]interface{}{}
	if altText != nil {
		updates["alt_text"] = *altText
	}
	if caption != nil {
		updates["caption"] = *caption
	}
	if len(updates) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).
		Model(&models.EventImage{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Image", id)
	}
	return nil
}

// Move places the image at newPosition, clamped to the gallery bounds, and
// shifts everything between the old and new slot by one.
func (r *imageRepository) Move(ctx context.Context, id uint, newPosition int) (*models.EventImage, error) {
	var moved models.EventImage
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var image models.EventImage
		if err := tx.First(&image, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Image", id)
			}
			return models.NewInternalError(err)
		}

		var count int64
		if err := tx.Model(&models.EventImage{}).
			Where("event_id = ?", image.EventID).
			Count(&count).Error; err != nil {
			return models.NewInternalError(err)
		}

		oldPos := image.Position
		newPos := newPosition
		if newPos < 0 {
			newPos = 0
		}
		if newPos > int(count)-1 {
			newPos = int(count) - 1
		}

		if newPos == oldPos {
			moved = image
			return nil
		}

		if oldPos < newPos {
			// Moving down: shift the ones in between up
			if err := tx.Model(&models.EventImage{}).
				Where("event_id = ? AND position > ? AND position <= ?", image.EventID, oldPos, newPos).
				UpdateColumn("position", gorm.Expr("position - 1")).Error; err != nil {
				return models.NewInternalError(err)
			}
		} else {
			// Moving up: shift the ones in between down
			if err := tx.Model(&models.EventImage{}).
				Where("event_id = ? AND position >= ? AND position < ?", image.EventID, newPos, oldPos).
				UpdateColumn("position", gorm.Expr("position + 1")).Error; err != nil {
				return models.NewInternalError(err)
			}
		}

		image.Position = newPos
		if err := tx.Save(&image).Error; err != nil {
			return models.NewInternalError(err)
		}
		moved = image
		return nil
	})
	if err != nil {
		return nil, err
	}
	cache.Invalidate(ctx, cache.EventImagesKey(moved.EventID))
	return &moved, nil
}

// Delete removes the image and closes the position gap it leaves behind.
func (r *imageRepository) Delete(ctx context.Context, id uint) error {
	var eventID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var image models.EventImage
		if err := tx.First(&image, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Image", id)
			}
			return models.NewInternalError(err)
		}
		eventID = image.EventID

		if err := tx.Delete(&image).Error; err != nil {
			return models.NewInternalError(err)
		}

		if err := tx.Model(&models.EventImage{}).
			Where("event_id = ? AND position > ?", image.EventID, image.Position).
			UpdateColumn("position", gorm.Expr("position - 1")).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err == nil {
		cache.Invalidate(ctx, cache.EventImagesKey(eventID))
	}
	return err
}
