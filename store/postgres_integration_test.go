package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"blog-backend/db"
	"blog-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestGormStore_Postgres runs the store against a real PostgreSQL. It is
// skipped with -short and when no Docker daemon is reachable.
func TestGormStore_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PostgreSQL container test in short mode")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "blog",
			"POSTGRES_PASSWORD": "blog",
			"POSTGRES_DB":       "blog",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("PostgreSQL container unavailable: %v", err)
	}
	defer pgC.Terminate(ctx)

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)
	dsn := "postgres://blog:blog@" + host + ":" + port.Port() + "/blog?sslmode=disable"

	conn, err := db.InitDB(dsn)
	require.NoError(t, err)
	s := NewGormStore(conn)
	defer s.Close()

	require.NoError(t, s.Ping(ctx))

	posts := []models.Post{
		{ID: 1, UserID: 1, Title: "A", Body: "x"},
		{ID: 2, UserID: 1, Title: "Learning Go", Body: "y"},
		{ID: 3, UserID: 2, Title: "C", Body: "all about GOLANG"},
	}

	t.Run("upsert is idempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			for j := range posts {
				p := posts[j]
				require.NoError(t, s.UpsertPost(ctx, &p))
			}
		}
		got, total, err := s.ListPosts(ctx, ListQuery{Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Equal(t, posts, got)

		updated := models.Post{ID: 1, UserID: 9, Title: "A2", Body: "x2"}
		require.NoError(t, s.UpsertPost(ctx, &updated))
		p, err := s.GetPost(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, updated, *p)
	})

	t.Run("pagination and filter", func(t *testing.T) {
		got, total, err := s.ListPosts(ctx, ListQuery{Offset: 1, Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Equal(t, []int{2}, ids(got))

		got, total, err = s.ListPosts(ctx, ListQuery{Limit: 10, Filter: "go"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, []int{2, 3}, ids(got))

		_, total, err = s.ListPosts(ctx, ListQuery{Limit: 10, Filter: "%"})
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("likes", func(t *testing.T) {
		require.NoError(t, s.CreateLike(ctx, &models.LikedPost{UserID: "u1", PostID: 2}))
		assert.ErrorIs(t, s.CreateLike(ctx, &models.LikedPost{UserID: "u1", PostID: 2}), ErrDuplicate)
		assert.ErrorIs(t, s.CreateLike(ctx, &models.LikedPost{UserID: "u1", PostID: 404}), ErrMissingReference)

		liked, err := s.LikedPostIDs(ctx, "u1", []int{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, map[int]bool{2: true}, liked)

		got, err := s.LikedPosts(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []int{2}, ids(got))

		n, err := s.DeleteLike(ctx, "u1", 2)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = s.DeleteLike(ctx, "u1", 2)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})

	t.Run("concurrent likes", func(t *testing.T) {
		const workers = 8
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- s.CreateLike(ctx, &models.LikedPost{UserID: "u2", PostID: 3})
			}()
		}
		wg.Wait()
		close(errs)

		var ok int
		for err := range errs {
			if err == nil {
				ok++
			} else {
				assert.ErrorIs(t, err, ErrDuplicate)
			}
		}
		assert.Equal(t, 1, ok)

		n, err := s.DeleteAllLikes(ctx, "u2")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("users", func(t *testing.T) {
		require.NoError(t, s.UpsertUser(ctx, &models.User{ExternalID: "user_1", Attributes: []byte(`{"first_name":"Ada"}`)}))
		require.NoError(t, s.UpsertUser(ctx, &models.User{ExternalID: "user_1", Attributes: []byte(`{"first_name":"Grace"}`)}))

		u, err := s.GetUser(ctx, "user_1")
		require.NoError(t, err)
		assert.JSONEq(t, `{"first_name":"Grace"}`, string(u.Attributes))
	})
}
