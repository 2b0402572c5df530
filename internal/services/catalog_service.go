package services

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/fkresna23/promptlabidv2/internal/models"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12
)

// RawListParams carries the listing query parameters exactly as
// received. IsPremium is nil when the parameter was absent; any
// supplied value (including the empty string) requests premium
// filtering.
type RawListParams struct {
	Category   string
	Search     string
	Difficulty string
	Type       string
	IsPremium  *string
	Page       string
	Limit      string
}

// PromptFilter is the normalized predicate over published prompts.
// The isPublished=true clause is implicit and unconditional.
type PromptFilter struct {
	Category   string
	Search     string
	Difficulty string
	Type       string
	IsPremium  *bool
	Page       int
	Limit      int

	// UnknownDifficulty/UnknownType tag values outside the enum
	// tables. The raw value is still applied and matches zero rows;
	// callers may log or reject, the builder itself never does.
	UnknownDifficulty bool
	UnknownType       bool
}

// BuildPromptFilter normalizes raw request parameters into a
// PromptFilter. It never fails: unusable values degrade to "no
// restriction" or to the default.
func BuildPromptFilter(raw RawListParams) PromptFilter {
	f := PromptFilter{
		Category:   raw.Category,
		Search:     raw.Search,
		Difficulty: raw.Difficulty,
		Type:       raw.Type,
		Page:       atoiOrDefault(raw.Page, DefaultPage),
		Limit:      atoiOrDefault(raw.Limit, DefaultLimit),
	}

	if raw.Difficulty != "" {
		if _, ok := models.ParseDifficulty(raw.Difficulty); !ok {
			f.UnknownDifficulty = true
		}
	}
	if raw.Type != "" {
		if _, ok := models.ParsePromptType(raw.Type); !ok {
			f.UnknownType = true
		}
	}
	if raw.IsPremium != nil {
		// Literal coercion: only the exact string "true" filters to
		// premium, every other supplied value filters to non-premium.
		premium := *raw.IsPremium == "true"
		f.IsPremium = &premium
	}

	return f
}

// Skip is the row offset of the requested page.
func (f PromptFilter) Skip() int {
	return (f.Page - 1) * f.Limit
}

// atoiOrDefault falls back to def when parsing fails or the value is
// below 1, not only when the parameter is absent.
func atoiOrDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// AuthorInfo is the externally safe author projection. Email, role,
// status and subscription never pass through here.
type AuthorInfo struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	ImageURL  string `json:"imageUrl"`
}

// PromptView is the public representation of one catalog prompt:
// decoded tags, full category, safe author, and the relation
// aggregates flattened next to the denormalized counters.
type PromptView struct {
	ID             uint                    `json:"id"`
	Title          string                  `json:"title"`
	Slug           string                  `json:"slug"`
	Description    string                  `json:"description"`
	Content        string                  `json:"content"`
	Tags           []string                `json:"tags"`
	IsPremium      bool                    `json:"isPremium"`
	IsPublished    bool                    `json:"isPublished"`
	Difficulty     models.PromptDifficulty `json:"difficulty"`
	Type           models.PromptType       `json:"type"`
	Likes          int                     `json:"likes"`
	Uses           int                     `json:"uses"`
	Views          int                     `json:"views"`
	CategoryID     uint                    `json:"categoryId"`
	Category       models.Category         `json:"category"`
	AuthorID       uint                    `json:"authorId"`
	Author         AuthorInfo              `json:"author"`
	LikesCount     int64                   `json:"likesCount"`
	UsesCount      int64                   `json:"usesCount"`
	FavoritesCount int64                   `json:"favoritesCount"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

// Pagination is the metadata half of a listing envelope.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// PromptPage is the combined listing envelope.
type PromptPage struct {
	Prompts    []PromptView `json:"prompts"`
	Pagination Pagination   `json:"pagination"`
}

// CatalogService answers the public prompt listing contract. The store
// handle is injected once at construction; the service holds no other
// state and is safe for concurrent use.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// scope applies the filter's predicate on a fresh query. Each caller
// gets its own chain, so the two reads of ListPrompts never share
// gorm state.
func (s *CatalogService) scope(ctx context.Context, f PromptFilter) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Prompt{}).
		Where("prompts.is_published = ?", true)

	if f.Category != "" {
		query = query.Joins("JOIN categories ON categories.id = prompts.category_id").
			Where("categories.slug = ?", f.Category)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where(
			"LOWER(prompts.title) LIKE ? OR LOWER(prompts.description) LIKE ? OR LOWER(prompts.content) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if f.Difficulty != "" {
		query = query.Where("prompts.difficulty = ?", f.Difficulty)
	}
	if f.Type != "" {
		query = query.Where("prompts.type = ?", f.Type)
	}
	if f.IsPremium != nil {
		query = query.Where("prompts.is_premium = ?", *f.IsPremium)
	}

	return query
}

// ListPrompts runs the filtered page fetch and the matching count as
// two independent reads under one cancelable context, then projects
// the rows. Either read failing fails the whole call; nothing is
// retried.
func (s *CatalogService) ListPrompts(ctx context.Context, f PromptFilter) (*PromptPage, error) {
	var (
		prompts []models.Prompt
		total   int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.scope(gctx, f).
			Preload("Category").
			Preload("Author", safeAuthorColumns).
			Order("prompts.is_premium DESC, prompts.likes DESC, prompts.created_at DESC").
			Offset(f.Skip()).
			Limit(f.Limit).
			Find(&prompts).Error
	})
	g.Go(func() error {
		return s.scope(gctx, f).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	views, err := projectPrompts(ctx, s.db, prompts)
	if err != nil {
		return nil, err
	}

	return &PromptPage{
		Prompts: views,
		Pagination: Pagination{
			Page:  f.Page,
			Limit: f.Limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(f.Limit))),
		},
	}, nil
}

// FeaturedPrompts returns the top published prompts for the homepage,
// most liked and used first.
func (s *CatalogService) FeaturedPrompts(ctx context.Context, limit int) ([]PromptView, error) {
	var prompts []models.Prompt
	err := s.db.WithContext(ctx).Model(&models.Prompt{}).
		Where("is_published = ?", true).
		Preload("Category").
		Preload("Author", safeAuthorColumns).
		Order("likes DESC, uses DESC, created_at DESC").
		Limit(limit).
		Find(&prompts).Error
	if err != nil {
		return nil, err
	}

	return projectPrompts(ctx, s.db, prompts)
}

// safeAuthorColumns restricts the author preload to displayable fields.
func safeAuthorColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "first_name", "last_name", "image_url")
}

type relationCount struct {
	PromptID uint
	N        int64
}

func countByPrompt(ctx context.Context, db *gorm.DB, model interface{}, ids []uint) (map[uint]int64, error) {
	var rows []relationCount
	err := db.WithContext(ctx).Model(model).
		Select("prompt_id AS prompt_id, COUNT(*) AS n").
		Where("prompt_id IN ?", ids).
		Group("prompt_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.PromptID] = r.N
	}
	return counts, nil
}

// projectPrompts maps raw rows into their public shape, attaching the
// aggregate like/use/favorite counts for the batch.
func projectPrompts(ctx context.Context, db *gorm.DB, prompts []models.Prompt) ([]PromptView, error) {
	views := make([]PromptView, 0, len(prompts))
	if len(prompts) == 0 {
		return views, nil
	}

	ids := make([]uint, len(prompts))
	for i, p := range prompts {
		ids[i] = p.ID
	}

	likeCounts, err := countByPrompt(ctx, db, &models.Like{}, ids)
	if err != nil {
		return nil, err
	}
	useCounts, err := countByPrompt(ctx, db, &models.PromptUse{}, ids)
	if err != nil {
		return nil, err
	}
	favoriteCounts, err := countByPrompt(ctx, db, &models.Favorite{}, ids)
	if err != nil {
		return nil, err
	}

	for _, p := range prompts {
		views = append(views, NewPromptView(p, likeCounts[p.ID], useCounts[p.ID], favoriteCounts[p.ID]))
	}
	return views, nil
}

// NewPromptView builds the public shape of a single prompt row.
func NewPromptView(p models.Prompt, likesCount, usesCount, favoritesCount int64) PromptView {
	tags := p.Tags
	if tags == nil {
		tags = models.StringList{}
	}

	return PromptView{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Content:     p.Content,
		Tags:        []string(tags),
		IsPremium:   p.IsPremium,
		IsPublished: p.IsPublished,
		Difficulty:  p.Difficulty,
		Type:        p.Type,
		Likes:       p.Likes,
		Uses:        p.Uses,
		Views:       p.Views,
		CategoryID:  p.CategoryID,
		Category:    p.Category,
		AuthorID:    p.AuthorID,
		Author: AuthorInfo{
			ID:        p.Author.ID,
			FirstName: p.Author.FirstName,
			LastName:  p.Author.LastName,
			ImageURL:  p.Author.ImageURL,
		},
		LikesCount:     likesCount,
		UsesCount:      usesCount,
		FavoritesCount: favoritesCount,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
