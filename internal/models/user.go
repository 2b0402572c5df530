package models

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"

	StatusActive    = "ACTIVE"
	StatusSuspended = "SUSPENDED"

	SubscriptionFree    = "FREE"
	SubscriptionPremium = "PREMIUM"
)

type User struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Email        string `gorm:"uniqueIndex;not null"`
	Password     string `gorm:"not null"`
	FirstName    string
	LastName     string
	ImageURL     string
	Role         string `gorm:"not null;default:'USER'"`
	Status       string `gorm:"not null;default:'ACTIVE'"`
	Subscription string `gorm:"not null;default:'FREE'"`
	Version      int    `gorm:"default:1"`
}
