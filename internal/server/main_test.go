package server

import (
	"context"
	"testing"

	"postboard/internal/config"
	"postboard/internal/middleware"
	"postboard/internal/models"
	"postboard/internal/token"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockPostRepository is a mock of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Post, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) DeleteByID(ctx context.Context, postID, requesterID uint) (*models.Post, error) {
	args := m.Called(ctx, postID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func testConfig() *config.Config {
	return &config.Config{
		Port:         "8375",
		JWTSecret:    "test_secret",
		JWTAlgorithm: "HS256",
		PostsListing: config.PostsListingUser,
	}
}

// newTestServer builds a Server around mock repositories and wires the token
// service into the auth middleware so protected routes can be exercised.
func newTestServer(t *testing.T, cfg *config.Config, userRepo *MockUserRepository, postRepo *MockPostRepository) *Server {
	t.Helper()

	tokens, err := token.NewService(cfg)
	require.NoError(t, err)
	middleware.InitAuth(tokens)

	return &Server{
		config:   cfg,
		userRepo: userRepo,
		postRepo: postRepo,
		tokens:   tokens,
	}
}

// bearerFor issues a valid token for userID against the server's own service.
func bearerFor(t *testing.T, s *Server, userID uint) string {
	t.Helper()
	tok, err := s.tokens.Issue(userID)
	require.NoError(t, err)
	return "Bearer " + tok
}
