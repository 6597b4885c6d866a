package cache

import (
	"context"
	"encoding/json"

	"postboard/internal/models"
)

// postsKey is the single key of the listing cache. The value is the full post
// listing as of the last cache-miss read. There is no TTL and no invalidation
// on create/delete: the entry goes stale after any mutation and stays stale
// until the next miss overwrites it.
const postsKey = "posts"

// GetPostList returns the cached listing. The second return is false on a
// miss, on a disabled cache, or on any Redis/decode failure; callers fall
// back to the store.
func GetPostList(ctx context.Context) ([]models.Post, bool) {
	if client == nil {
		return nil, false
	}

	raw, err := client.Get(ctx, postsKey).Result()
	if err != nil {
		return nil, false
	}

	var posts []models.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		return nil, false
	}
	return posts, true
}

// SetPostList unconditionally overwrites the cached listing, with no expiry.
// Best-effort: a disabled cache or a Redis failure is not an error for the caller.
func SetPostList(ctx context.Context, posts []models.Post) {
	if client == nil {
		return
	}

	raw, err := json.Marshal(posts)
	if err != nil {
		return
	}
	client.Set(ctx, postsKey, raw, 0)
}
