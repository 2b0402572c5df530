package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fkresna23/promptlabidv2/internal/models"
)

// EngagementService records likes, uses and favorites against
// published prompts and keeps the denormalized counters in step.
type EngagementService struct {
	db *gorm.DB
}

func NewEngagementService(db *gorm.DB) *EngagementService {
	return &EngagementService{db: db}
}

func (s *EngagementService) publishedPromptBySlug(tx *gorm.DB, slug string) (*models.Prompt, error) {
	var prompt models.Prompt
	err := tx.Where("slug = ? AND is_published = ?", slug, true).First(&prompt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}
	return &prompt, nil
}

// ToggleLike likes the prompt for the user, or removes an existing
// like. Returns whether the prompt is liked after the call.
func (s *EngagementService) ToggleLike(ctx context.Context, slug string, userID uint) (bool, error) {
	liked := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		prompt, err := s.publishedPromptBySlug(tx, slug)
		if err != nil {
			return err
		}

		var existing models.Like
		err = tx.Where("user_id = ? AND prompt_id = ?", userID, prompt.ID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			return tx.Model(prompt).UpdateColumn("likes", gorm.Expr("likes - 1")).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			liked = true
			if err := tx.Create(&models.Like{UserID: userID, PromptID: prompt.ID}).Error; err != nil {
				return err
			}
			return tx.Model(prompt).UpdateColumn("likes", gorm.Expr("likes + 1")).Error
		default:
			return err
		}
	})
	return liked, err
}

// ToggleFavorite bookmarks the prompt for the user, or removes the
// bookmark. Returns whether the prompt is favorited after the call.
func (s *EngagementService) ToggleFavorite(ctx context.Context, slug string, userID uint) (bool, error) {
	favorited := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		prompt, err := s.publishedPromptBySlug(tx, slug)
		if err != nil {
			return err
		}

		var existing models.Favorite
		err = tx.Where("user_id = ? AND prompt_id = ?", userID, prompt.ID).First(&existing).Error
		switch {
		case err == nil:
			return tx.Delete(&existing).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			favorited = true
			return tx.Create(&models.Favorite{UserID: userID, PromptID: prompt.ID}).Error
		default:
			return err
		}
	})
	return favorited, err
}

// RecordUse stores one use of the prompt by the user and bumps the
// uses counter.
func (s *EngagementService) RecordUse(ctx context.Context, slug string, userID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		prompt, err := s.publishedPromptBySlug(tx, slug)
		if err != nil {
			return err
		}

		if err := tx.Create(&models.PromptUse{UserID: userID, PromptID: prompt.ID}).Error; err != nil {
			return err
		}
		return tx.Model(prompt).UpdateColumn("uses", gorm.Expr("uses + 1")).Error
	})
}

// FavoritesOf lists the user's favorited prompts, still published
// only, in their public shape.
func (s *EngagementService) FavoritesOf(ctx context.Context, userID uint) ([]PromptView, error) {
	var prompts []models.Prompt
	err := s.db.WithContext(ctx).Model(&models.Prompt{}).
		Joins("JOIN favorites ON favorites.prompt_id = prompts.id").
		Where("favorites.user_id = ? AND prompts.is_published = ?", userID, true).
		Preload("Category").
		Preload("Author", safeAuthorColumns).
		Order("favorites.created_at DESC").
		Find(&prompts).Error
	if err != nil {
		return nil, err
	}

	return projectPrompts(ctx, s.db, prompts)
}
