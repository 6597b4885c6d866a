package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"postboard/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestUserCreateAndLookup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	email := gofakeit.Email()
	user := &models.User{
		Email:    email,
		FullName: gofakeit.Name(),
		Password: hashPassword(t, "secret1"),
	}

	require.NoError(t, repo.Create(ctx, user))
	assert.NotZero(t, user.ID, "persistence assigns the ID")

	byEmail, err := repo.GetByEmail(ctx, email)
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, email, byID.Email)
}

func TestUserGetByEmailMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserGetByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), 9999)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	email := gofakeit.Email()
	first := &models.User{Email: email, FullName: "First", Password: hashPassword(t, "secret1")}
	require.NoError(t, repo.Create(ctx, first))

	second := &models.User{Email: email, FullName: "Second", Password: hashPassword(t, "secret2")}
	err := repo.Create(ctx, second)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)

	// No second row was persisted.
	var count int64
	db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	assert.EqualValues(t, 1, count)
}

// The Postgres driver reports the same conflict through SQLSTATE 23505;
// simulate that path with sqlmock since the sqlite tests can't produce it.
func TestUserCreateDuplicateEmailPostgres(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "uni_users_email" (SQLSTATE 23505)`))
	mock.ExpectRollback()

	repo := NewUserRepository(db)
	createErr := repo.Create(context.Background(), &models.User{
		Email:    "dup@example.com",
		FullName: "Dup",
		Password: "x",
	})

	var appErr *models.AppError
	require.ErrorAs(t, createErr, &appErr)
	assert.Equal(t, models.CodeConflict, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	email := gofakeit.Email()
	stored := &models.User{
		Email:    email,
		FullName: gofakeit.Name(),
		Password: hashPassword(t, "secret1"),
	}
	require.NoError(t, repo.Create(ctx, stored))

	// Passwords are stored hashed, never verbatim, and the correct
	// password still authenticates.
	assert.NotEqual(t, "secret1", stored.Password)

	user, err := repo.Authenticate(ctx, email, "secret1")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"Wrong password", email, "not-the-password"},
		{"Unknown email", "stranger@example.com", "secret1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repo.Authenticate(ctx, tt.email, tt.password)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, models.CodeUnauthorized, appErr.Code)
			assert.Equal(t, "Invalid credentials", appErr.Message)
		})
	}
}

func TestIsUniqueConstraintError(t *testing.T) {
	assert.False(t, isUniqueConstraintError(nil))
	assert.False(t, isUniqueConstraintError(errors.New("connection refused")))
	assert.True(t, isUniqueConstraintError(errors.New(`duplicate key value violates unique constraint "uni_users_email"`)))
	assert.True(t, isUniqueConstraintError(errors.New("UNIQUE constraint failed: users.email")))
	assert.True(t, isUniqueConstraintError(errors.New("SQLSTATE 23505")))
}
