package services

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/fkresna23/promptlabidv2/internal/database"
	"github.com/fkresna23/promptlabidv2/internal/models"
)

const (
	PromptCacheKeyPrefix = "prompt:slug:"
	PromptCacheDuration  = 24 * time.Hour
)

var (
	ErrPromptNotFound = errors.New("prompt not found")
	ErrSlugTaken      = errors.New("a prompt with this title already exists")
)

var slugPattern = regexp.MustCompile("[^a-z0-9]+")

// Slugify derives the URL slug from a prompt title.
func Slugify(title string) string {
	s := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}

// PromptService owns single-prompt reads and the prompt write path.
type PromptService struct {
	db *gorm.DB
}

func NewPromptService(db *gorm.DB) *PromptService {
	return &PromptService{db: db}
}

// GetPublishedBySlug returns one published prompt in its public shape,
// using the Redis cache when possible. Every call bumps the views
// counter; the cached copy may lag behind it until expiry.
func (s *PromptService) GetPublishedBySlug(ctx context.Context, slug string) (*PromptView, error) {
	s.db.WithContext(ctx).Model(&models.Prompt{}).
		Where("slug = ? AND is_published = ?", slug, true).
		UpdateColumn("views", gorm.Expr("views + 1"))

	cacheKey := PromptCacheKeyPrefix + slug

	// Try cache
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var view PromptView
			if err := json.Unmarshal([]byte(val), &view); err == nil {
				return &view, nil
			}
		}
	}

	var prompt models.Prompt
	err := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Author", safeAuthorColumns).
		Where("slug = ? AND is_published = ?", slug, true).
		First(&prompt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}

	views, err := projectPrompts(ctx, s.db, []models.Prompt{prompt})
	if err != nil {
		return nil, err
	}
	view := views[0]

	// Set cache
	if database.RedisClient != nil {
		if data, err := json.Marshal(view); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, PromptCacheDuration)
		}
	}

	return &view, nil
}

// CreatePromptInput is the write-side shape of a prompt submission.
type CreatePromptInput struct {
	Title       string
	Description string
	Content     string
	CategoryID  uint
	Tags        []string
	IsPremium   bool
	Difficulty  string
	Type        string
}

// Create slugifies the title and stores the prompt. Prompts are
// published immediately only when the author is an admin; everyone
// else goes through admin review.
func (s *PromptService) Create(ctx context.Context, input CreatePromptInput, author models.User) (*PromptView, error) {
	slug := Slugify(input.Title)

	var existing models.Prompt
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&existing).Error
	if err == nil {
		return nil, ErrSlugTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	difficulty := models.DifficultyBeginner
	if d, ok := models.ParseDifficulty(input.Difficulty); ok {
		difficulty = d
	}
	promptType := models.TypeText
	if t, ok := models.ParsePromptType(input.Type); ok {
		promptType = t
	}

	prompt := &models.Prompt{
		Title:       input.Title,
		Slug:        slug,
		Description: input.Description,
		Content:     input.Content,
		CategoryID:  input.CategoryID,
		AuthorID:    author.ID,
		Tags:        models.StringList(input.Tags),
		IsPremium:   input.IsPremium,
		Difficulty:  difficulty,
		Type:        promptType,
		IsPublished: author.Role == models.RoleAdmin,
	}

	if err := s.db.WithContext(ctx).Create(prompt).Error; err != nil {
		return nil, err
	}

	// Reload with relations for the response shape
	if err := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Author", safeAuthorColumns).
		First(prompt, prompt.ID).Error; err != nil {
		return nil, err
	}

	view := NewPromptView(*prompt, 0, 0, 0)
	return &view, nil
}

// AdminList returns every prompt, unpublished included, newest first.
func (s *PromptService) AdminList(ctx context.Context) ([]PromptView, error) {
	var prompts []models.Prompt
	err := s.db.WithContext(ctx).
		Preload("Category").
		Preload("Author", safeAuthorColumns).
		Order("created_at DESC").
		Find(&prompts).Error
	if err != nil {
		return nil, err
	}

	return projectPrompts(ctx, s.db, prompts)
}

// PromptUpdates is the set of admin-editable prompt fields; nil
// pointers leave the stored value untouched.
type PromptUpdates struct {
	Title       *string
	Description *string
	Content     *string
	CategoryID  *uint
	Tags        []string
	IsPremium   *bool
	IsPublished *bool
	Difficulty  *string
	Type        *string
}

// Update applies admin edits and invalidates the cached copy.
func (s *PromptService) Update(ctx context.Context, id uint, updates PromptUpdates) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := s.db.WithContext(ctx).First(&prompt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}
	oldSlug := prompt.Slug

	if updates.Title != nil {
		prompt.Title = *updates.Title
		prompt.Slug = Slugify(*updates.Title)
	}
	if updates.Description != nil {
		prompt.Description = *updates.Description
	}
	if updates.Content != nil {
		prompt.Content = *updates.Content
	}
	if updates.CategoryID != nil {
		prompt.CategoryID = *updates.CategoryID
	}
	if updates.Tags != nil {
		prompt.Tags = models.StringList(updates.Tags)
	}
	if updates.IsPremium != nil {
		prompt.IsPremium = *updates.IsPremium
	}
	if updates.IsPublished != nil {
		prompt.IsPublished = *updates.IsPublished
	}
	if updates.Difficulty != nil {
		if d, ok := models.ParseDifficulty(*updates.Difficulty); ok {
			prompt.Difficulty = d
		}
	}
	if updates.Type != nil {
		if t, ok := models.ParsePromptType(*updates.Type); ok {
			prompt.Type = t
		}
	}

	if err := s.db.WithContext(ctx).Save(&prompt).Error; err != nil {
		return nil, err
	}

	// A title change moves the slug, so the entry under the old slug
	// has to go as well.
	s.invalidateCache(oldSlug)
	if prompt.Slug != oldSlug {
		s.invalidateCache(prompt.Slug)
	}
	return &prompt, nil
}

// SetPublished toggles a prompt's visibility.
func (s *PromptService) SetPublished(ctx context.Context, id uint, published bool) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := s.db.WithContext(ctx).First(&prompt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&prompt).
		Update("is_published", published).Error; err != nil {
		return nil, err
	}

	s.invalidateCache(prompt.Slug)
	return &prompt, nil
}

// Delete removes a prompt and its engagement rows.
func (s *PromptService) Delete(ctx context.Context, id uint) error {
	var prompt models.Prompt
	if err := s.db.WithContext(ctx).First(&prompt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPromptNotFound
		}
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("prompt_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("prompt_id = ?", id).Delete(&models.PromptUse{}).Error; err != nil {
			return err
		}
		if err := tx.Where("prompt_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Prompt{}, id).Error
	})
	if err != nil {
		return err
	}

	s.invalidateCache(prompt.Slug)
	return nil
}

func (s *PromptService) invalidateCache(slug string) {
	if database.RedisClient != nil {
		database.RedisClient.Del(database.Ctx, PromptCacheKeyPrefix+slug)
	}
}
