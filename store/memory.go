package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"blog-backend/models"
)

type likeKey struct {
	userID string
	postID int
}

// MemoryStore keeps everything in maps. It enforces the same uniqueness
// and reference rules as the PostgreSQL schema.
type MemoryStore struct {
	mu    sync.RWMutex
	posts map[int]models.Post
	likes map[likeKey]models.LikedPost
	users map[string]models.User
	now   func() time.Time
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		posts: make(map[int]models.Post),
		likes: make(map[likeKey]models.LikedPost),
		users: make(map[string]models.User),
		now:   time.Now,
	}
}

func (s *MemoryStore) UpsertPost(ctx context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts[post.ID] = *post
	return nil
}

func (s *MemoryStore) GetPost(ctx context.Context, id int) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &post, nil
}

func (s *MemoryStore) ListPosts(ctx context.Context, q ListQuery) ([]models.Post, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(q.Filter)
	matched := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		if needle == "" ||
			strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Body), needle) {
			matched = append(matched, p)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	start := q.Offset
	if start < 0 {
		start = 0
	}
	if start > len(matched) {
		start = len(matched)
	}
	end := len(matched)
	if q.Limit > 0 && q.Limit < end-start {
		end = start + q.Limit
	}

	window := make([]models.Post, end-start)
	copy(window, matched[start:end])
	return window, total, nil
}

func (s *MemoryStore) CreateLike(ctx context.Context, like *models.LikedPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[like.PostID]; !ok {
		return ErrMissingReference
	}
	key := likeKey{userID: like.UserID, postID: like.PostID}
	if _, ok := s.likes[key]; ok {
		return ErrDuplicate
	}
	if like.CreatedAt.IsZero() {
		like.CreatedAt = s.now().UTC()
	}
	s.likes[key] = *like
	return nil
}

func (s *MemoryStore) DeleteLike(ctx context.Context, userID string, postID int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := likeKey{userID: userID, postID: postID}
	if _, ok := s.likes[key]; !ok {
		return 0, nil
	}
	delete(s.likes, key)
	return 1, nil
}

func (s *MemoryStore) DeleteAllLikes(ctx context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for key := range s.likes {
		if key.userID == userID {
			delete(s.likes, key)
			deleted++
		}
	}
	return deleted, nil
}

func (s *MemoryStore) LikedPostIDs(ctx context.Context, userID string, postIDs []int) (map[int]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	liked := make(map[int]bool, len(postIDs))
	for _, id := range postIDs {
		if _, ok := s.likes[likeKey{userID: userID, postID: id}]; ok {
			liked[id] = true
		}
	}
	return liked, nil
}

func (s *MemoryStore) LikedPosts(ctx context.Context, userID string) ([]models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := []models.Post{}
	for key := range s.likes {
		if key.userID != userID {
			continue
		}
		if p, ok := s.posts[key.postID]; ok {
			posts = append(posts, p)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

func (s *MemoryStore) UpsertUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	if existing, ok := s.users[user.ExternalID]; ok {
		user.CreatedAt = existing.CreatedAt
	} else {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	s.users[user.ExternalID] = *user
	return nil
}

func (s *MemoryStore) GetUser(ctx context.Context, externalID string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[externalID]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) Close() error {
	return nil
}
