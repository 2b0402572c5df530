package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/fkresna23/promptlabidv2/internal/database"
	"github.com/fkresna23/promptlabidv2/internal/models"
)

var ErrUserNotFound = errors.New("user not found")
var ErrOptimisticLock = errors.New("data has been modified by another user, please refresh and try again")

func FindUserByID(userID uint) (models.User, error) {
	// Try cache
	cacheKey := fmt.Sprintf("user:%d", userID)
	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result()
		if err == nil {
			var user models.User
			if err := json.Unmarshal([]byte(val), &user); err == nil {
				return user, nil
			}
		}
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return user, err
	}

	// Set cache
	if database.RedisClient != nil {
		if data, err := json.Marshal(user); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, time.Hour)
		}
	}

	return user, nil
}

// UserWithCounts is a user row plus their content/engagement totals,
// for the admin listing.
type UserWithCounts struct {
	models.User
	PromptsCount int64
	LikesCount   int64
	UsesCount    int64
}

// FindUsers retrieves a paginated list of users with per-user prompt,
// like and use counts.
func FindUsers(page, limit int) ([]UserWithCounts, int64, error) {
	var users []models.User
	var total int64

	offset := (page - 1) * limit

	if err := database.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := database.DB.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	if len(users) == 0 {
		return []UserWithCounts{}, total, nil
	}

	ids := make([]uint, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	promptCounts, err := countByUser(&models.Prompt{}, "author_id", ids)
	if err != nil {
		return nil, 0, err
	}
	likeCounts, err := countByUser(&models.Like{}, "user_id", ids)
	if err != nil {
		return nil, 0, err
	}
	useCounts, err := countByUser(&models.PromptUse{}, "user_id", ids)
	if err != nil {
		return nil, 0, err
	}

	result := make([]UserWithCounts, 0, len(users))
	for _, u := range users {
		result = append(result, UserWithCounts{
			User:         u,
			PromptsCount: promptCounts[u.ID],
			LikesCount:   likeCounts[u.ID],
			UsesCount:    useCounts[u.ID],
		})
	}
	return result, total, nil
}

func countByUser(model interface{}, column string, ids []uint) (map[uint]int64, error) {
	type userCount struct {
		UserID uint
		N      int64
	}
	var rows []userCount
	err := database.DB.Model(model).
		Select(column+" AS user_id, COUNT(*) AS n").
		Where(column+" IN ?", ids).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, r := range rows {
		counts[r.UserID] = r.N
	}
	return counts, nil
}

// UpdateUser updates a user with optimistic locking and selective fields.
func UpdateUser(id uint, updates map[string]interface{}, operator string) (*models.User, error) {
	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var user models.User
	if err := tx.First(&user, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// Password handling
	if password, ok := updates["password"].(string); ok && password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		updates["password"] = string(hashedPassword)
	}

	// Optimistic Lock Check
	currentVersion := user.Version
	updates["version"] = currentVersion + 1

	// Where("version = ?", currentVersion) makes the update atomic with
	// the version check
	result := tx.Model(&user).Where("version = ?", currentVersion).Updates(updates)
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrOptimisticLock
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	// Invalidate cache
	if database.RedisClient != nil {
		cacheKey := fmt.Sprintf("user:%d", id)
		database.RedisClient.Del(database.Ctx, cacheKey)
	}

	// Fetch updated user to return full object
	database.DB.First(&user, id)

	return &user, nil
}

// DeleteUser removes a user together with their prompts and
// engagement rows.
func DeleteUser(id uint) error {
	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.PromptUse{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Prompt{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
	if err != nil {
		return err
	}

	if database.RedisClient != nil {
		database.RedisClient.Del(database.Ctx, fmt.Sprintf("user:%d", id))
	}
	return nil
}
