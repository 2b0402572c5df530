package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/fkresna23/promptlabidv2/internal/models"
)

// PlatformStats are the public homepage totals.
type PlatformStats struct {
	TotalPrompts int64 `json:"totalPrompts"`
	TotalUsers   int64 `json:"totalUsers"`
	TotalUses    int64 `json:"totalUses"`
	TotalLikes   int64 `json:"totalLikes"`
}

// AdminStats are the dashboard totals, unpublished content included.
type AdminStats struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalPrompts     int64 `json:"totalPrompts"`
	PublishedPrompts int64 `json:"publishedPrompts"`
	PremiumPrompts   int64 `json:"premiumPrompts"`
	TotalLikes       int64 `json:"totalLikes"`
	TotalUses        int64 `json:"totalUses"`
}

// RecentUser is the dashboard's recent-signup row. This is an admin
// surface, so email/status/subscription are deliberately present.
type RecentUser struct {
	ID           uint      `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	ImageURL     string    `json:"imageUrl"`
	Status       string    `json:"status"`
	Subscription string    `json:"subscription"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AdminDashboard combines the totals with recent activity.
type AdminDashboard struct {
	Stats         AdminStats   `json:"stats"`
	RecentUsers   []RecentUser `json:"recentUsers"`
	RecentPrompts []PromptView `json:"recentPrompts"`
}

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// PlatformStats gathers the homepage totals; the four counts are
// independent reads and run concurrently.
func (s *StatsService) PlatformStats(ctx context.Context) (*PlatformStats, error) {
	var stats PlatformStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.Prompt{}).
			Where("is_published = ?", true).Count(&stats.TotalPrompts).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.User{}).Count(&stats.TotalUsers).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.PromptUse{}).Count(&stats.TotalUses).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.Like{}).Count(&stats.TotalLikes).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}

// Dashboard gathers the admin totals plus the five most recent users
// and prompts.
func (s *StatsService) Dashboard(ctx context.Context) (*AdminDashboard, error) {
	var dashboard AdminDashboard
	var recentPrompts []models.Prompt

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.User{}).Count(&dashboard.Stats.TotalUsers).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.Prompt{}).Count(&dashboard.Stats.TotalPrompts).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.Prompt{}).
			Where("is_published = ?", true).Count(&dashboard.Stats.PublishedPrompts).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.Prompt{}).
			Where("is_premium = ?", true).Count(&dashboard.Stats.PremiumPrompts).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.Like{}).Count(&dashboard.Stats.TotalLikes).Error
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).Model(&models.PromptUse{}).Count(&dashboard.Stats.TotalUses).Error
	})
	g.Go(func() error {
		var users []models.User
		err := s.db.WithContext(gctx).Order("created_at DESC").Limit(5).Find(&users).Error
		if err != nil {
			return err
		}
		dashboard.RecentUsers = make([]RecentUser, 0, len(users))
		for _, u := range users {
			dashboard.RecentUsers = append(dashboard.RecentUsers, RecentUser{
				ID:           u.ID,
				FirstName:    u.FirstName,
				LastName:     u.LastName,
				Email:        u.Email,
				ImageURL:     u.ImageURL,
				Status:       u.Status,
				Subscription: u.Subscription,
				CreatedAt:    u.CreatedAt,
			})
		}
		return nil
	})
	g.Go(func() error {
		return s.db.WithContext(gctx).
			Preload("Category").
			Preload("Author", safeAuthorColumns).
			Order("created_at DESC").
			Limit(5).
			Find(&recentPrompts).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	views, err := projectPrompts(ctx, s.db, recentPrompts)
	if err != nil {
		return nil, err
	}
	dashboard.RecentPrompts = views

	return &dashboard, nil
}
