package seed

import (
	"testing"

	"postboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}))
	return db
}

func TestSeederRun(t *testing.T) {
	db := setupTestDB(t)
	s := NewSeeder(db)

	users, err := s.Run(Options{NumUsers: 5, PostsPerUser: 3})
	require.NoError(t, err)
	require.Len(t, users, 5)

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(5), userCount)

	// Every seeded account can be logged into with the shared password.
	err = bcrypt.CompareHashAndPassword([]byte(users[0].Password), []byte(DefaultPassword))
	assert.NoError(t, err)

	// Every post belongs to a seeded user.
	var posts []models.Post
	require.NoError(t, db.Find(&posts).Error)
	ids := make(map[uint]bool, len(users))
	for _, u := range users {
		ids[u.ID] = true
	}
	for _, p := range posts {
		assert.True(t, ids[p.UserID])
	}
}

func TestSeederClean(t *testing.T) {
	db := setupTestDB(t)
	s := NewSeeder(db)

	_, err := s.Run(Options{NumUsers: 3, PostsPerUser: 2})
	require.NoError(t, err)

	users, err := s.Run(Options{NumUsers: 2, ShouldClean: true})
	require.NoError(t, err)
	require.Len(t, users, 2)

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	assert.Equal(t, int64(2), userCount)

	var postCount int64
	require.NoError(t, db.Model(&models.Post{}).Count(&postCount).Error)
	assert.Equal(t, int64(0), postCount)
}
