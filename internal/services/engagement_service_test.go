package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkresna23/promptlabidv2/internal/models"
)

func TestToggleLike(t *testing.T) {
	db := setupCatalogDB(t)
	author, coding, _ := seedCatalogFixtures(t, db)

	prompt := models.Prompt{
		Title: "Likeable", Slug: "likeable", Content: "x",
		CategoryID: coding.ID, AuthorID: author.ID, IsPublished: true,
	}
	db.Create(&prompt)

	svc := NewEngagementService(db)
	ctx := context.Background()

	liked, err := svc.ToggleLike(ctx, "likeable", author.ID)
	assert.NoError(t, err)
	assert.True(t, liked)

	var reloaded models.Prompt
	db.First(&reloaded, prompt.ID)
	assert.Equal(t, 1, reloaded.Likes)

	// Toggling again removes the like and decrements the counter
	liked, err = svc.ToggleLike(ctx, "likeable", author.ID)
	assert.NoError(t, err)
	assert.False(t, liked)

	db.First(&reloaded, prompt.ID)
	assert.Equal(t, 0, reloaded.Likes)

	var likeCount int64
	db.Model(&models.Like{}).Count(&likeCount)
	assert.Equal(t, int64(0), likeCount)
}

func TestToggleLikeUnpublished(t *testing.T) {
	db := setupCatalogDB(t)
	author, coding, _ := seedCatalogFixtures(t, db)

	db.Create(&models.Prompt{
		Title: "Draft", Slug: "draft", Content: "x",
		CategoryID: coding.ID, AuthorID: author.ID, IsPublished: false,
	})

	svc := NewEngagementService(db)

	_, err := svc.ToggleLike(context.Background(), "draft", author.ID)
	assert.ErrorIs(t, err, ErrPromptNotFound)

	_, err = svc.ToggleLike(context.Background(), "missing", author.ID)
	assert.ErrorIs(t, err, ErrPromptNotFound)
}

func TestToggleFavoriteAndList(t *testing.T) {
	db := setupCatalogDB(t)
	author, coding, _ := seedCatalogFixtures(t, db)

	prompt := models.Prompt{
		Title: "Keeper", Slug: "keeper", Content: "x",
		CategoryID: coding.ID, AuthorID: author.ID, IsPublished: true,
	}
	db.Create(&prompt)

	svc := NewEngagementService(db)
	ctx := context.Background()

	favorited, err := svc.ToggleFavorite(ctx, "keeper", author.ID)
	assert.NoError(t, err)
	assert.True(t, favorited)

	favorites, err := svc.FavoritesOf(ctx, author.ID)
	assert.NoError(t, err)
	if assert.Len(t, favorites, 1) {
		assert.Equal(t, "keeper", favorites[0].Slug)
		assert.Equal(t, int64(1), favorites[0].FavoritesCount)
	}

	favorited, err = svc.ToggleFavorite(ctx, "keeper", author.ID)
	assert.NoError(t, err)
	assert.False(t, favorited)

	favorites, err = svc.FavoritesOf(ctx, author.ID)
	assert.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestRecordUse(t *testing.T) {
	db := setupCatalogDB(t)
	author, coding, _ := seedCatalogFixtures(t, db)

	prompt := models.Prompt{
		Title: "Useful", Slug: "useful", Content: "x",
		CategoryID: coding.ID, AuthorID: author.ID, IsPublished: true,
	}
	db.Create(&prompt)

	svc := NewEngagementService(db)
	ctx := context.Background()

	// Uses are events, not toggles: each call adds one
	assert.NoError(t, svc.RecordUse(ctx, "useful", author.ID))
	assert.NoError(t, svc.RecordUse(ctx, "useful", author.ID))

	var reloaded models.Prompt
	db.First(&reloaded, prompt.ID)
	assert.Equal(t, 2, reloaded.Uses)

	var useCount int64
	db.Model(&models.PromptUse{}).Count(&useCount)
	assert.Equal(t, int64(2), useCount)
}
