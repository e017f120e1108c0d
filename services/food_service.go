package services

import (
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

type FoodNutrientInput struct {
	Name     string   `json:"name"`
	Amount   *float64 `json:"amount"` // per 100g
	Unit     string   `json:"unit"`
	SourceID *int64   `json:"source_id"`
}

type FoodItemInput struct {
	Name         string              `json:"name" binding:"required"`
	Category     string              `json:"category"`
	PortionGrams float64             `json:"portion_grams"`
	Nutrients    []FoodNutrientInput `json:"nutrients"`
}

func (s *FoodService) CreateFood(input FoodItemInput) (*models.FoodItem, error) {
	item := &models.FoodItem{
		Name:         input.Name,
		Category:     input.Category,
		PortionGrams: input.PortionGrams,
	}
	for _, n := range input.Nutrients {
		item.Nutrients = append(item.Nutrients, models.FoodNutrient{
			Name:     n.Name,
			Amount:   n.Amount,
			Unit:     n.Unit,
			SourceID: n.SourceID,
		})
	}
	if err := s.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *FoodService) GetFood(id uint) (*models.FoodItem, error) {
	var item models.FoodItem
	err := s.db.Preload("Nutrients").First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (s *FoodService) Search(query string) ([]models.FoodItem, error) {
	var items []models.FoodItem
	q := s.db.Preload("Nutrients").Order("name ASC")
	if query != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%")
	}
	err := q.Find(&items).Error
	return items, err
}
