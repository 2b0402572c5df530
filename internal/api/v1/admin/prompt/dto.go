package prompt

import "github.com/fkresna23/promptlabidv2/internal/services"

type AdminPromptListResponse struct {
	Prompts []services.PromptView `json:"prompts"`
	Total   int                   `json:"total"`
}

type UpdatePromptRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Content     *string  `json:"content"`
	CategoryID  *uint    `json:"categoryId"`
	Tags        []string `json:"tags"`
	IsPremium   *bool    `json:"isPremium"`
	IsPublished *bool    `json:"isPublished"`
	Difficulty  *string  `json:"difficulty" binding:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED EXPERT"`
	Type        *string  `json:"type" binding:"omitempty,oneof=TEXT CREATIVE CODING BUSINESS ACADEMIC CONVERSATIONAL"`
}

type PublishRequest struct {
	IsPublished *bool `json:"isPublished" binding:"required"`
}
