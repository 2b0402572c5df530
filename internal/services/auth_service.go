package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm" // Import gorm for ErrRecordNotFound

	"github.com/fkresna23/promptlabidv2/internal/database"
	"github.com/fkresna23/promptlabidv2/internal/models"
	"github.com/fkresna23/promptlabidv2/internal/utils"
)

var ErrUserAlreadyExists = errors.New("user with this email already exists")

func RegisterUser(email, password, firstName, lastName string) (*models.User, error) {
	// Check if user already exists
	var existingUser models.User
	result := database.DB.Where("email = ?", email).First(&existingUser)
	if result.Error == nil {
		return nil, ErrUserAlreadyExists // User already exists
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error // Other database error
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var userCount int64
	database.DB.Model(&models.User{}).Count(&userCount)

	role := models.RoleUser
	if userCount == 0 {
		role = models.RoleAdmin
	}

	user := &models.User{
		Email:        email,
		Password:     string(hashedPassword),
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
		Status:       models.StatusActive,
		Subscription: models.SubscriptionFree,
	}

	if err := database.DB.Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func LoginUser(email, password string) (string, *models.User, error) {
	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", nil, err
	}

	if user.Status != models.StatusActive {
		return "", nil, errors.New("account is suspended")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}
