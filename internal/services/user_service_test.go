package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fkresna23/promptlabidv2/internal/database"
	"github.com/fkresna23/promptlabidv2/internal/models"
)

func TestFindUsersWithCounts(t *testing.T) {
	database.DB = setupCatalogDB(t)
	author, coding, _ := seedCatalogFixtures(t, database.DB)

	prompt := models.Prompt{
		Title: "Counted", Slug: "counted", Content: "x",
		CategoryID: coding.ID, AuthorID: author.ID, IsPublished: true,
	}
	database.DB.Create(&prompt)
	database.DB.Create(&models.Like{UserID: author.ID, PromptID: prompt.ID})
	database.DB.Create(&models.PromptUse{UserID: author.ID, PromptID: prompt.ID})
	database.DB.Create(&models.PromptUse{UserID: author.ID, PromptID: prompt.ID})

	users, total, err := FindUsers(1, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	if assert.Len(t, users, 1) {
		assert.Equal(t, int64(1), users[0].PromptsCount)
		assert.Equal(t, int64(1), users[0].LikesCount)
		assert.Equal(t, int64(2), users[0].UsesCount)
	}

	users, total, err = FindUsers(2, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Empty(t, users)
}

func TestUpdateUserBumpsVersion(t *testing.T) {
	database.DB = setupCatalogDB(t)
	setupTestRedis(t)
	author, _, _ := seedCatalogFixtures(t, database.DB)

	updated, err := UpdateUser(author.ID, map[string]interface{}{
		"first_name": "Grace",
	}, "admin@example.com")
	assert.NoError(t, err)
	assert.Equal(t, "Grace", updated.FirstName)

	// Every successful write bumps the version
	assert.Equal(t, author.Version+1, updated.Version)

	_, err = UpdateUser(9999, map[string]interface{}{"first_name": "Ghost"}, "admin@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateUserHashesPassword(t *testing.T) {
	database.DB = setupCatalogDB(t)
	setupTestRedis(t)
	author, _, _ := seedCatalogFixtures(t, database.DB)

	updated, err := UpdateUser(author.ID, map[string]interface{}{
		"password": "newpassword123",
	}, "admin@example.com")
	assert.NoError(t, err)
	assert.NotEqual(t, "newpassword123", updated.Password)
	assert.NotEmpty(t, updated.Password)
}

func TestDeleteUserCascades(t *testing.T) {
	database.DB = setupCatalogDB(t)
	setupTestRedis(t)
	author, coding, _ := seedCatalogFixtures(t, database.DB)

	prompt := models.Prompt{
		Title: "Orphaned", Slug: "orphaned", Content: "x",
		CategoryID: coding.ID, AuthorID: author.ID, IsPublished: true,
	}
	database.DB.Create(&prompt)
	database.DB.Create(&models.Like{UserID: author.ID, PromptID: prompt.ID})
	database.DB.Create(&models.Favorite{UserID: author.ID, PromptID: prompt.ID})
	database.DB.Create(&models.PromptUse{UserID: author.ID, PromptID: prompt.ID})

	assert.NoError(t, DeleteUser(author.ID))

	var userCount, promptCount, likeCount, favoriteCount, useCount int64
	database.DB.Model(&models.User{}).Count(&userCount)
	database.DB.Model(&models.Prompt{}).Count(&promptCount)
	database.DB.Model(&models.Like{}).Count(&likeCount)
	database.DB.Model(&models.Favorite{}).Count(&favoriteCount)
	database.DB.Model(&models.PromptUse{}).Count(&useCount)
	assert.Equal(t, int64(0), userCount)
	assert.Equal(t, int64(0), promptCount)
	assert.Equal(t, int64(0), likeCount)
	assert.Equal(t, int64(0), favoriteCount)
	assert.Equal(t, int64(0), useCount)

	assert.ErrorIs(t, DeleteUser(author.ID), ErrUserNotFound)
}

func TestFindUserByIDUsesCache(t *testing.T) {
	database.DB = setupCatalogDB(t)
	mr := setupTestRedis(t)
	author, _, _ := seedCatalogFixtures(t, database.DB)

	found, err := FindUserByID(author.ID)
	assert.NoError(t, err)
	assert.Equal(t, author.Email, found.Email)

	// The row is cached; a second read survives the row being gone
	database.DB.Delete(&models.User{}, author.ID)

	cached, err := FindUserByID(author.ID)
	assert.NoError(t, err)
	assert.Equal(t, author.Email, cached.Email)

	mr.FlushAll()
	_, err = FindUserByID(author.ID)
	assert.Error(t, err)
}
