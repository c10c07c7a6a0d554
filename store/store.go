package store

import (
	"context"
	"errors"

	"blog-backend/models"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique key already exists.
	ErrDuplicate = errors.New("duplicate record")
	// ErrMissingReference is returned when a foreign key points nowhere.
	ErrMissingReference = errors.New("referenced record does not exist")
)

// ListQuery selects a window of posts ordered by id ascending. Filter is a
// case-insensitive substring matched against title and body.
type ListQuery struct {
	Offset int
	Limit  int
	Filter string
}

type PostStore interface {
	UpsertPost(ctx context.Context, post *models.Post) error
	GetPost(ctx context.Context, id int) (*models.Post, error)
	// ListPosts returns the window and the number of posts matching the filter.
	ListPosts(ctx context.Context, q ListQuery) ([]models.Post, int64, error)
}

type LikeStore interface {
	CreateLike(ctx context.Context, like *models.LikedPost) error
	DeleteLike(ctx context.Context, userID string, postID int) (int64, error)
	DeleteAllLikes(ctx context.Context, userID string) (int64, error)
	// LikedPostIDs reports which of postIDs userID has liked.
	LikedPostIDs(ctx context.Context, userID string, postIDs []int) (map[int]bool, error)
	LikedPosts(ctx context.Context, userID string) ([]models.Post, error)
}

type UserStore interface {
	UpsertUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, externalID string) (*models.User, error)
}

type Store interface {
	PostStore
	LikeStore
	UserStore
	Ping(ctx context.Context) error
	Close() error
}
