package services

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"

	"github.com/fkresna23/promptlabidv2/internal/database"
	"github.com/fkresna23/promptlabidv2/internal/models"
)

func setupTestRedis(t *testing.T) *miniredis.Miniredis {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	t.Cleanup(func() { database.RedisClient = nil })
	return mr
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Code Review Assistant", "code-review-assistant"},
		{"  SEO: Blog Outline!  ", "seo-blog-outline"},
		{"Already-Slugged", "already-slugged"},
		{"Ünïcode", "n-code"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in))
	}
}

func TestGetPublishedBySlug(t *testing.T) {
	db := setupCatalogDB(t)
	mr := setupTestRedis(t)
	author, coding, _ := seedCatalogFixtures(t, db)

	db.Create(&models.Prompt{
		Title: "Cached", Slug: "cached", Content: "body",
		CategoryID: coding.ID, AuthorID: author.ID, IsPublished: true,
	})

	svc := NewPromptService(db)
	ctx := context.Background()

	view, err := svc.GetPublishedBySlug(ctx, "cached")
	assert.NoError(t, err)
	assert.Equal(t, "Cached", view.Title)
	assert.Equal(t, "body", view.Content)

	// The view is cached after the first read
	assert.True(t, mr.Exists(PromptCacheKeyPrefix+"cached"))

	// Each read bumps the views counter even when served from cache
	_, err = svc.GetPublishedBySlug(ctx, "cached")
	assert.NoError(t, err)

	var reloaded models.Prompt
	db.Where("slug = ?", "cached").First(&reloaded)
	assert.Equal(t, 2, reloaded.Views)
}

func TestGetPublishedBySlugNotFound(t *testing.T) {
	db := setupCatalogDB(t)
	setupTestRedis(t)
	author, coding, _ := seedCatalogFixtures(t, db)

	db.Create(&models.Prompt{
		Title: "Draft", Slug: "draft", Content: "x",
		CategoryID: coding.ID, AuthorID: author.ID, IsPublished: false,
	})

	svc := NewPromptService(db)

	_, err := svc.GetPublishedBySlug(context.Background(), "draft")
	assert.ErrorIs(t, err, ErrPromptNotFound)

	_, err = svc.GetPublishedBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestCreatePrompt(t *testing.T) {
	db := setupCatalogDB(t)
	setupTestRedis(t)
	author, coding, _ := seedCatalogFixtures(t, db)

	svc := NewPromptService(db)
	ctx := context.Background()

	input := CreatePromptInput{
		Title:       "Code Review Assistant",
		Description: "Reviews diffs",
		Content:     "You are a reviewer...",
		CategoryID:  coding.ID,
		Tags:        []string{"code", "review"},
		Difficulty:  "ADVANCED",
		Type:        "CODING",
	}

	view, err := svc.Create(ctx, input, author)
	assert.NoError(t, err)
	assert.Equal(t, "code-review-assistant", view.Slug)
	assert.Equal(t, models.DifficultyAdvanced, view.Difficulty)
	assert.Equal(t, models.TypeCoding, view.Type)
	assert.Equal(t, []string{"code", "review"}, view.Tags)

	// Non-admin submissions wait for review
	assert.False(t, view.IsPublished)

	// Same title means same slug, which is refused
	_, err = svc.Create(ctx, input, author)
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestCreatePromptAdminAutoPublish(t *testing.T) {
	db := setupCatalogDB(t)
	setupTestRedis(t)
	_, coding, _ := seedCatalogFixtures(t, db)

	admin := models.User{
		Email: "admin@example.com", Password: "x",
		Role: models.RoleAdmin, Status: models.StatusActive,
	}
	db.Create(&admin)

	svc := NewPromptService(db)

	view, err := svc.Create(context.Background(), CreatePromptInput{
		Title:      "Admin Prompt",
		Content:    "x",
		CategoryID: coding.ID,
	}, admin)
	assert.NoError(t, err)
	assert.True(t, view.IsPublished)

	// Unknown enum values fall back to the defaults
	assert.Equal(t, models.DifficultyBeginner, view.Difficulty)
	assert.Equal(t, models.TypeText, view.Type)
}

func TestUpdatePromptInvalidatesCache(t *testing.T) {
	db := setupCatalogDB(t)
	mr := setupTestRedis(t)
	author, coding, _ := seedCatalogFixtures(t, db)

	prompt := models.Prompt{
		Title: "Stale", Slug: "stale", Content: "x",
		CategoryID: coding.ID, AuthorID: author.ID, IsPublished: true,
	}
	db.Create(&prompt)

	svc := NewPromptService(db)
	ctx := context.Background()

	_, err := svc.GetPublishedBySlug(ctx, "stale")
	assert.NoError(t, err)
	assert.True(t, mr.Exists(PromptCacheKeyPrefix+"stale"))

	newTitle := "Fresh"
	updated, err := svc.Update(ctx, prompt.ID, PromptUpdates{Title: &newTitle})
	assert.NoError(t, err)
	assert.Equal(t, "fresh", updated.Slug)

	// The old cache entry is dropped so readers never see stale data
	assert.False(t, mr.Exists(PromptCacheKeyPrefix+"stale"))
}

func TestSetPublishedAndDelete(t *testing.T) {
	db := setupCatalogDB(t)
	setupTestRedis(t)
	author, coding, _ := seedCatalogFixtures(t, db)

	prompt := models.Prompt{
		Title: "Lifecycle", Slug: "lifecycle", Content: "x",
		CategoryID: coding.ID, AuthorID: author.ID, IsPublished: true,
	}
	db.Create(&prompt)
	db.Create(&models.Like{UserID: author.ID, PromptID: prompt.ID})

	svc := NewPromptService(db)
	ctx := context.Background()

	updated, err := svc.SetPublished(ctx, prompt.ID, false)
	assert.NoError(t, err)
	assert.False(t, updated.IsPublished)

	assert.NoError(t, svc.Delete(ctx, prompt.ID))

	var promptCount, likeCount int64
	db.Model(&models.Prompt{}).Count(&promptCount)
	db.Model(&models.Like{}).Count(&likeCount)
	assert.Equal(t, int64(0), promptCount)
	assert.Equal(t, int64(0), likeCount)

	assert.ErrorIs(t, svc.Delete(ctx, prompt.ID), ErrPromptNotFound)
}
