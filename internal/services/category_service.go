package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fkresna23/promptlabidv2/internal/models"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategorySlugTaken = errors.New("a category with this slug already exists")
	ErrCategoryInUse     = errors.New("category still has prompts")
)

// CategoryView is a category with its published-prompt count.
type CategoryView struct {
	models.Category
	PromptsCount int64 `json:"promptsCount"`
}

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// List returns all categories ordered by name, each with the number of
// published prompts it holds.
func (s *CategoryService) List(ctx context.Context) ([]CategoryView, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	type categoryCount struct {
		CategoryID uint
		N          int64
	}
	var rows []categoryCount
	err := s.db.WithContext(ctx).Model(&models.Prompt{}).
		Select("category_id AS category_id, COUNT(*) AS n").
		Where("is_published = ?", true).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.CategoryID] = r.N
	}

	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, CategoryView{Category: c, PromptsCount: counts[c.ID]})
	}
	return views, nil
}

// Create stores a new category; the slug is derived from the name when
// not supplied.
func (s *CategoryService) Create(ctx context.Context, category *models.Category) error {
	if category.Slug == "" {
		category.Slug = Slugify(category.Name)
	}

	var existing models.Category
	err := s.db.WithContext(ctx).Where("slug = ?", category.Slug).First(&existing).Error
	if err == nil {
		return ErrCategorySlugTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.db.WithContext(ctx).Create(category).Error
}

// CategoryUpdates holds admin-editable category fields.
type CategoryUpdates struct {
	Name        *string
	Description *string
	Icon        *string
	Color       *string
}

func (s *CategoryService) Update(ctx context.Context, id uint, updates CategoryUpdates) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	if updates.Name != nil {
		category.Name = *updates.Name
		category.Slug = Slugify(*updates.Name)
	}
	if updates.Description != nil {
		category.Description = *updates.Description
	}
	if updates.Icon != nil {
		category.Icon = *updates.Icon
	}
	if updates.Color != nil {
		category.Color = *updates.Color
	}

	if err := s.db.WithContext(ctx).Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes an empty category; a category that still has prompts
// is refused.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	var promptCount int64
	err := s.db.WithContext(ctx).Model(&models.Prompt{}).
		Where("category_id = ?", id).
		Count(&promptCount).Error
	if err != nil {
		return err
	}
	if promptCount > 0 {
		return ErrCategoryInUse
	}

	result := s.db.WithContext(ctx).Delete(&models.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
