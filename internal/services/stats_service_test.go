package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkresna23/promptlabidv2/internal/models"
)

func TestPlatformStats(t *testing.T) {
	db := setupCatalogDB(t)
	author, coding, _ := seedCatalogFixtures(t, db)

	published := models.Prompt{
		Title: "Published", Slug: "stat-published", Content: "x",
		CategoryID: coding.ID, AuthorID: author.ID, IsPublished: true,
	}
	db.Create(&published)
	db.Create(&models.Prompt{
		Title: "Draft", Slug: "stat-draft", Content: "x",
		CategoryID: coding.ID, AuthorID: author.ID, IsPublished: false,
	})
	db.Create(&models.Like{UserID: author.ID, PromptID: published.ID})
	db.Create(&models.PromptUse{UserID: author.ID, PromptID: published.ID})
	db.Create(&models.PromptUse{UserID: author.ID, PromptID: published.ID})

	svc := NewStatsService(db)
	stats, err := svc.PlatformStats(context.Background())
	assert.NoError(t, err)

	// Only published prompts count in the public total
	assert.Equal(t, int64(1), stats.TotalPrompts)
	assert.Equal(t, int64(1), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.TotalUses)
	assert.Equal(t, int64(1), stats.TotalLikes)
}

func TestDashboard(t *testing.T) {
	db := setupCatalogDB(t)
	author, coding, _ := seedCatalogFixtures(t, db)

	db.Create(&models.Prompt{
		Title: "Published", Slug: "dash-published", Content: "x",
		CategoryID: coding.ID, AuthorID: author.ID, IsPublished: true,
	})
	db.Create(&models.Prompt{
		Title: "Premium Draft", Slug: "dash-premium", Content: "x", IsPremium: true,
		CategoryID: coding.ID, AuthorID: author.ID, IsPublished: false,
	})

	svc := NewStatsService(db)
	dashboard, err := svc.Dashboard(context.Background())
	assert.NoError(t, err)

	// Admin totals include drafts
	assert.Equal(t, int64(2), dashboard.Stats.TotalPrompts)
	assert.Equal(t, int64(1), dashboard.Stats.PublishedPrompts)
	assert.Equal(t, int64(1), dashboard.Stats.PremiumPrompts)
	assert.Equal(t, int64(1), dashboard.Stats.TotalUsers)

	assert.Len(t, dashboard.RecentPrompts, 2)
	if assert.Len(t, dashboard.RecentUsers, 1) {
		assert.Equal(t, "author@example.com", dashboard.RecentUsers[0].Email)
	}
}
