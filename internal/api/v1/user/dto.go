package user

import "github.com/fkresna23/promptlabidv2/internal/models"

// UserResponse defines the response structure for user information.
type UserResponse struct {
	ID           uint   `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	ImageURL     string `json:"imageUrl"`
	Role         string `json:"role"`
	Status       string `json:"status"`
	Subscription string `json:"subscription"`
	Token        string `json:"token,omitempty"`
}

func NewUserResponse(u models.User, token string) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		ImageURL:     u.ImageURL,
		Role:         u.Role,
		Status:       u.Status,
		Subscription: u.Subscription,
		Token:        token,
	}
}
