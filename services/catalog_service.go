package services

import (
	"github.com/Akralan/NutriPlanner-sub000/models"

	"gorm.io/gorm"
)

// CatalogService is the DB-backed FoodCatalogLookup. The catalog itself
// is seeded outside this service (static seasonal data); at runtime it
// is read-only.
type CatalogService struct{ db *gorm.DB }

func NewCatalogService(db *gorm.DB) *CatalogService { return &CatalogService{db: db} }

func (s *CatalogService) Lookup(foodItemID uint) (*models.FoodItem, error) {
	var item models.FoodItem
	if err := s.db.First(&item, foodItemID).Error; err != nil {
		return nil, err // gorm.ErrRecordNotFound for unknown ids
	}
	return &item, nil
}

// InSeason filters the catalog to items available in the given month
// abbreviation ("jan".."dec"). An empty Season means year-round.
func (s *CatalogService) InSeason(month string) ([]models.FoodItem, error) {
	var items []models.FoodItem
	err := s.db.
		Where("season = '' OR season LIKE ?", "%"+month+"%").
		Order("name ASC").
		Find(&items).Error
	return items, err
}
