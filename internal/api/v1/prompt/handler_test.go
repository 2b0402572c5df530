package prompt_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/fkresna23/promptlabidv2/internal/api/v1/prompt"
	"github.com/fkresna23/promptlabidv2/internal/models"
	"github.com/fkresna23/promptlabidv2/internal/services"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	db.Migrator().DropTable(
		&models.User{},
		&models.Category{},
		&models.Prompt{},
		&models.Like{},
		&models.PromptUse{},
		&models.Favorite{},
	)
	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Prompt{},
		&models.Like{},
		&models.PromptUse{},
		&models.Favorite{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := &prompt.Handler{
		Catalog:    services.NewCatalogService(db),
		Prompts:    services.NewPromptService(db),
		Engagement: services.NewEngagementService(db),
	}

	r := gin.New()
	v1 := r.Group("/api/v1")
	prompt.RegisterRoutes(v1, h)
	return r
}

func seedPrompts(t *testing.T, db *gorm.DB) {
	author := models.User{
		Email: "author@example.com", Password: "x",
		FirstName: "Ada", LastName: "Lovelace",
		Role: models.RoleUser, Status: models.StatusActive,
	}
	if err := db.Create(&author).Error; err != nil {
		t.Fatalf("failed to seed author: %v", err)
	}

	category := models.Category{Name: "Programming & Code", Slug: "programming-code"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}

	prompts := []models.Prompt{
		{Title: "Code Review", Slug: "code-review", Content: "review this", Likes: 10,
			Tags: models.StringList{"code"}, CategoryID: category.ID, AuthorID: author.ID, IsPublished: true},
		{Title: "Premium Refactor", Slug: "premium-refactor", Content: "secret body", Likes: 5, IsPremium: true,
			CategoryID: category.ID, AuthorID: author.ID, IsPublished: true},
		{Title: "Hidden Draft", Slug: "hidden-draft", Content: "x",
			CategoryID: category.ID, AuthorID: author.ID, IsPublished: false},
	}
	for i := range prompts {
		if err := db.Create(&prompts[i]).Error; err != nil {
			t.Fatalf("failed to seed prompt: %v", err)
		}
	}
}

func TestListPromptsEndpoint(t *testing.T) {
	db := setupTestDB(t)
	seedPrompts(t, db)
	r := setupRouter(db)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/prompts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// The listing envelope is flat: prompts plus pagination, no wrapper
	var resp struct {
		Prompts    []services.PromptView `json:"prompts"`
		Pagination services.Pagination   `json:"pagination"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Prompts, 2)
	assert.Equal(t, services.Pagination{Page: 1, Limit: 12, Total: 2, Pages: 1}, resp.Pagination)

	// Premium first
	assert.Equal(t, "premium-refactor", resp.Prompts[0].Slug)
	assert.Equal(t, "code-review", resp.Prompts[1].Slug)

	// The author projection carries no email
	body := w.Body.String()
	assert.NotContains(t, body, "author@example.com")
}

func TestListPromptsEndpointFilters(t *testing.T) {
	db := setupTestDB(t)
	seedPrompts(t, db)
	r := setupRouter(db)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/prompts?isPremium=banana", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Prompts []services.PromptView `json:"prompts"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// Any isPremium value other than "true" selects the free tier
	if assert.Len(t, resp.Prompts, 1) {
		assert.Equal(t, "code-review", resp.Prompts[0].Slug)
	}

	// Unknown enum values match nothing instead of erroring
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/prompts?difficulty=IMPOSSIBLE", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Prompts)
}

func TestGetPromptEndpoint(t *testing.T) {
	db := setupTestDB(t)
	seedPrompts(t, db)
	r := setupRouter(db)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/prompts/code-review", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var view services.PromptView
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "Code Review", view.Title)
	assert.Equal(t, "review this", view.Content)

	req, _ = http.NewRequest(http.MethodGet, "/api/v1/prompts/hidden-draft", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Prompt not found"}`, w.Body.String())
}

func TestGetPremiumPromptRedactsContent(t *testing.T) {
	db := setupTestDB(t)
	seedPrompts(t, db)
	r := setupRouter(db)

	// Anonymous callers only get the teaser of a premium prompt
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/prompts/premium-refactor", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var view services.PromptView
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.True(t, view.IsPremium)
	assert.Empty(t, view.Content)
	assert.Equal(t, "Premium Refactor", view.Title)
}

func TestFeaturedEndpoint(t *testing.T) {
	db := setupTestDB(t)
	seedPrompts(t, db)
	r := setupRouter(db)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/prompts/featured", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Prompts []services.PromptView `json:"prompts"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	if assert.Len(t, resp.Prompts, 2) {
		assert.Equal(t, "code-review", resp.Prompts[0].Slug)
	}
}
