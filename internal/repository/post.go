package repository

import (
	"context"
	"errors"

	"postboard/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts. Deletion rights
// are enforced here, not in the handlers, so no alternative handler wiring
// can bypass the ownership check.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	ListAll(ctx context.Context) ([]models.Post, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Post, error)
	DeleteByID(ctx context.Context, postID, requesterID uint) (*models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).Order("id").Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).Where("user_id = ?", ownerID).Order("id").Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// DeleteByID deletes a post on behalf of requesterID and returns the deleted
// record. A user may delete only posts they created.
func (r *postRepository) DeleteByID(ctx context.Context, postID, requesterID uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post not found")
		}
		return nil, models.NewInternalError(err)
	}

	if post.UserID != requesterID {
		return nil, models.NewForbiddenError("You can only delete your own posts")
	}

	if err := r.db.WithContext(ctx).Delete(&post).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	return &post, nil
}
