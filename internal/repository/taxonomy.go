package repository

import (
	"context"
	"errors"
	"strings"

	"anondo/internal/cache"
	"anondo/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CategoryRepository defines operations over the seeded category list.
type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
}

// TagRepository resolves free-form tag names to rows, creating missing ones.
type TagRepository interface {
	GetOrCreateByNames(ctx context.Context, names []string) ([]models.Tag, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := cache.Aside(ctx, cache.CategoriesKey, &categories, cache.CategoriesTTL, func() error {
		if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []models.Category
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if len(categories) != len(ids) {
		return nil, models.NewValidationError("One or more categories do not exist")
	}
	return categories, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("A category with this name already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateCategories(ctx)
	return nil
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// GetOrCreateByNames inserts any missing tags and returns rows for all names.
// Names are trimmed and deduplicated exactly; "Go" and "go" are distinct tags.
func (r *tagRepository) GetOrCreateByNames(ctx context.Context, names []string) ([]models.Tag, error) {
	cleaned := make([]string, 0, len(names))
	seen := map[string]struct{}{}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		cleaned = append(cleaned, n)
	}
	if len(cleaned) == 0 {
		return nil, nil
	}

	rows := make([]models.Tag, len(cleaned))
	for i, n := range cleaned {
		rows[i] = models.Tag{Name: n}
	}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&rows).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		if !isUniqueConstraintError(err) {
			return nil, models.NewInternalError(err)
		}
	}

	var tags []models.Tag
	if err := r.db.WithContext(ctx).Where("name IN ?", cleaned).Find(&tags).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tags, nil
}
