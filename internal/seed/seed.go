// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"postboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the login password of every seeded user.
const DefaultPassword = "Password123!"

// Options configuration for the seeder
type Options struct {
	NumUsers     int
	PostsPerUser int
	ShouldClean  bool
}

// Seeder populates the database with fake users and posts.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded rows. Posts go first to satisfy the foreign key.
func (s *Seeder) ClearAll() error {
	if err := s.db.Unscoped().Where("1 = 1").Delete(&models.Post{}).Error; err != nil {
		return fmt.Errorf("failed to clear posts: %w", err)
	}
	if err := s.db.Unscoped().Where("1 = 1").Delete(&models.User{}).Error; err != nil {
		return fmt.Errorf("failed to clear users: %w", err)
	}
	log.Println("Cleared existing users and posts")
	return nil
}

// Run creates opts.NumUsers users, each with up to opts.PostsPerUser posts.
// All users share DefaultPassword so any seeded account can be logged into.
func (s *Seeder) Run(opts Options) ([]models.User, error) {
	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}

	users := make([]models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user := models.User{
			Email:    fmt.Sprintf("%d.%s", i, gofakeit.Email()),
			FullName: gofakeit.Name(),
			Password: string(hash),
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to create seed user: %w", err)
		}
		users = append(users, user)
	}

	totalPosts := 0
	for _, user := range users {
		n := 0
		if opts.PostsPerUser > 0 {
			n = s.rand.Intn(opts.PostsPerUser + 1)
		}
		for j := 0; j < n; j++ {
			post := models.Post{
				Title:   gofakeit.Sentence(4),
				Content: gofakeit.Paragraph(1, 2, 8, " "),
				UserID:  user.ID,
			}
			if err := s.db.Create(&post).Error; err != nil {
				return nil, fmt.Errorf("failed to create seed post: %w", err)
			}
			totalPosts++
		}
	}

	log.Printf("Seeded %d users and %d posts", len(users), totalPosts)
	return users, nil
}
