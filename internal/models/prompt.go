package models

import "time"

// PromptDifficulty is the difficulty grade a prompt is published under.
type PromptDifficulty string

const (
	DifficultyBeginner     PromptDifficulty = "BEGINNER"
	DifficultyIntermediate PromptDifficulty = "INTERMEDIATE"
	DifficultyAdvanced     PromptDifficulty = "ADVANCED"
	DifficultyExpert       PromptDifficulty = "EXPERT"
)

// ParseDifficulty reports whether s is a known difficulty value.
func ParseDifficulty(s string) (PromptDifficulty, bool) {
	switch PromptDifficulty(s) {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return PromptDifficulty(s), true
	}
	return "", false
}

// PromptType classifies what kind of output a prompt produces.
type PromptType string

const (
	TypeText           PromptType = "TEXT"
	TypeCreative       PromptType = "CREATIVE"
	TypeCoding         PromptType = "CODING"
	TypeBusiness       PromptType = "BUSINESS"
	TypeAcademic       PromptType = "ACADEMIC"
	TypeConversational PromptType = "CONVERSATIONAL"
)

// ParsePromptType reports whether s is a known prompt type value.
func ParsePromptType(s string) (PromptType, bool) {
	switch PromptType(s) {
	case TypeText, TypeCreative, TypeCoding, TypeBusiness, TypeAcademic, TypeConversational:
		return PromptType(s), true
	}
	return "", false
}

// Prompt is one reusable AI instruction template in the catalog.
// Likes, Uses and Views are denormalized counters maintained on the
// write path; the true aggregates are counted from the Like/PromptUse/
// Favorite relations and may drift from them.
type Prompt struct {
	ID          uint             `gorm:"primarykey" json:"id"`
	Title       string           `gorm:"not null" json:"title"`
	Slug        string           `gorm:"uniqueIndex;not null" json:"slug"`
	Description string           `gorm:"type:text;not null" json:"description"`
	Content     string           `gorm:"type:text;not null" json:"content"`
	Tags        StringList       `gorm:"type:text" json:"tags"`
	IsPremium   bool             `gorm:"not null;default:false" json:"isPremium"`
	IsPublished bool             `gorm:"not null;default:false" json:"isPublished"`
	Difficulty  PromptDifficulty `gorm:"size:32;not null;default:'BEGINNER'" json:"difficulty"`
	Type        PromptType       `gorm:"size:32;not null;default:'TEXT'" json:"type"`
	Likes       int              `gorm:"not null;default:0" json:"likes"`
	Uses        int              `gorm:"not null;default:0" json:"uses"`
	Views       int              `gorm:"not null;default:0" json:"views"`
	CategoryID  uint             `gorm:"not null;index" json:"categoryId"`
	Category    Category         `json:"category"`
	AuthorID    uint             `gorm:"not null;index" json:"authorId"`
	Author      User             `json:"-"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
