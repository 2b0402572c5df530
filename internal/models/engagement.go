package models

import "time"

// Like is one user's like of one prompt.
type Like struct {
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_likes_user_prompt"`
	PromptID  uint `gorm:"not null;uniqueIndex:idx_likes_user_prompt;index"`
	CreatedAt time.Time
}

// PromptUse records a single use of a prompt by a user.
type PromptUse struct {
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"not null;index"`
	PromptID  uint `gorm:"not null;index"`
	CreatedAt time.Time
}

// Favorite is one user's bookmark of one prompt.
type Favorite struct {
	ID        uint `gorm:"primarykey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_favorites_user_prompt"`
	PromptID  uint `gorm:"not null;uniqueIndex:idx_favorites_user_prompt;index"`
	CreatedAt time.Time
}
