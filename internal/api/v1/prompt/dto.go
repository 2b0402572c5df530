package prompt

import "github.com/fkresna23/promptlabidv2/internal/services"

// ListPromptsResponse is the public listing envelope. Its shape is the
// API contract of the catalog: a page of prompts plus pagination
// metadata, nothing wrapped.
type ListPromptsResponse struct {
	Prompts    []services.PromptView `json:"prompts"`
	Pagination services.Pagination   `json:"pagination"`
}

// FeaturedResponse carries the homepage's featured prompts.
type FeaturedResponse struct {
	Prompts []services.PromptView `json:"prompts"`
}

type CreatePromptRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	CategoryID  uint     `json:"categoryId" binding:"required"`
	Tags        []string `json:"tags"`
	IsPremium   bool     `json:"isPremium"`
	Difficulty  string   `json:"difficulty" binding:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED EXPERT"`
	Type        string   `json:"type" binding:"omitempty,oneof=TEXT CREATIVE CODING BUSINESS ACADEMIC CONVERSATIONAL"`
}

// EngagementResponse reports the state after a like/favorite toggle.
type EngagementResponse struct {
	Active bool `json:"active"`
}
