package store

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"blog-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPosts(t *testing.T, s *MemoryStore, posts ...models.Post) {
	t.Helper()
	for i := range posts {
		require.NoError(t, s.UpsertPost(context.Background(), &posts[i]))
	}
}

func TestMemoryStore_UpsertAndGetPost(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	seedPosts(t, s, models.Post{ID: 1, UserID: 1, Title: "A", Body: "x"})

	post, err := s.GetPost(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.Post{ID: 1, UserID: 1, Title: "A", Body: "x"}, *post)

	seedPosts(t, s, models.Post{ID: 1, UserID: 2, Title: "B", Body: "y"})

	post, err = s.GetPost(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, models.Post{ID: 1, UserID: 2, Title: "B", Body: "y"}, *post)

	_, err = s.GetPost(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ListPosts(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	seedPosts(t, s,
		models.Post{ID: 3, Title: "third", Body: "Go is fun"},
		models.Post{ID: 1, Title: "First post", Body: "hello"},
		models.Post{ID: 2, Title: "second", Body: "GOLANG rocks"},
	)

	t.Run("ordered by id", func(t *testing.T) {
		posts, total, err := s.ListPosts(ctx, ListQuery{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Equal(t, []int{1, 2, 3}, ids(posts))
	})

	t.Run("window", func(t *testing.T) {
		posts, total, err := s.ListPosts(ctx, ListQuery{Offset: 1, Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Equal(t, []int{2}, ids(posts))
	})

	t.Run("offset past the end", func(t *testing.T) {
		posts, total, err := s.ListPosts(ctx, ListQuery{Offset: 10, Limit: 5})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Empty(t, posts)
	})

	t.Run("offset and limit at the int limit", func(t *testing.T) {
		posts, total, err := s.ListPosts(ctx, ListQuery{Offset: math.MaxInt, Limit: math.MaxInt})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Empty(t, posts)

		posts, _, err = s.ListPosts(ctx, ListQuery{Offset: 1, Limit: math.MaxInt})
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3}, ids(posts))
	})

	t.Run("filter ignores case", func(t *testing.T) {
		posts, total, err := s.ListPosts(ctx, ListQuery{Limit: 10, Filter: "go"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, []int{2, 3}, ids(posts))

		posts, _, err = s.ListPosts(ctx, ListQuery{Limit: 10, Filter: "FIRST"})
		require.NoError(t, err)
		assert.Equal(t, []int{1}, ids(posts))
	})
}

func TestMemoryStore_Likes(t *testing.T) {
	s := NewMemoryStore()
	s.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	seedPosts(t, s, models.Post{ID: 1}, models.Post{ID: 2}, models.Post{ID: 3})

	like := &models.LikedPost{UserID: "u1", PostID: 2}
	require.NoError(t, s.CreateLike(ctx, like))
	assert.Equal(t, s.now(), like.CreatedAt)

	assert.ErrorIs(t, s.CreateLike(ctx, &models.LikedPost{UserID: "u1", PostID: 2}), ErrDuplicate)
	assert.ErrorIs(t, s.CreateLike(ctx, &models.LikedPost{UserID: "u1", PostID: 99}), ErrMissingReference)
	require.NoError(t, s.CreateLike(ctx, &models.LikedPost{UserID: "u1", PostID: 1}))
	require.NoError(t, s.CreateLike(ctx, &models.LikedPost{UserID: "u2", PostID: 1}))

	liked, err := s.LikedPostIDs(ctx, "u1", []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 2: true}, liked)

	posts, err := s.LikedPosts(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids(posts))

	n, err := s.DeleteLike(ctx, "u1", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = s.DeleteLike(ctx, "u1", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = s.DeleteAllLikes(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	posts, err = s.LikedPosts(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, posts)

	posts, err = s.LikedPosts(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids(posts))
}

func TestMemoryStore_ConcurrentLikes(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	seedPosts(t, s, models.Post{ID: 1})

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.CreateLike(ctx, &models.LikedPost{UserID: "u1", PostID: 1})
		}()
	}
	wg.Wait()
	close(errs)

	var ok, dup int
	for err := range errs {
		switch err {
		case nil:
			ok++
		case ErrDuplicate:
			dup++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, dup)
}

func TestMemoryStore_Users(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return first }
	require.NoError(t, s.UpsertUser(ctx, &models.User{ExternalID: "user_1", Attributes: []byte(`{"a":1}`)}))

	second := first.Add(time.Hour)
	s.now = func() time.Time { return second }
	require.NoError(t, s.UpsertUser(ctx, &models.User{ExternalID: "user_1", Attributes: []byte(`{"a":2}`)}))

	user, err := s.GetUser(ctx, "user_1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2}`, string(user.Attributes))
	assert.Equal(t, first, user.CreatedAt)
	assert.Equal(t, second, user.UpdatedAt)

	_, err = s.GetUser(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func ids(posts []models.Post) []int {
	out := make([]int, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}
