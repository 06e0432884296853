package seed

import (
	"fmt"

	"anondo/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BuiltInCategory is a permanent curated event category.
type BuiltInCategory struct {
	Name string
}

// BuiltInCategories defines the curated categories events can belong to.
// Clients reference these by ID; they cannot create their own.
var BuiltInCategories = []BuiltInCategory{
	{Name: "Technology"},
	{Name: "Sports"},
	{Name: "Social"},
	{Name: "Education"},
	{Name: "Food & Drink"},
	{Name: "Arts & Culture"},
}

// Categories upserts the built-in categories. Safe to run on every boot.
func Categories(db *gorm.DB) error {
	for _, item := range BuiltInCategories {
		category := models.Category{Name: item.Name}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&category).Error
		if err != nil {
			return fmt.Errorf("seed built-in category %s: %w", item.Name, err)
		}
	}
	return nil
}
