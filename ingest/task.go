package ingest

import (
	"context"
	"errors"
	"fmt"

	"blog-backend/models"
	"blog-backend/utils"
)

type PostUpserter interface {
	UpsertPost(ctx context.Context, post *models.Post) error
}

// Task pulls the upstream posts into the post store.
type Task struct {
	fetcher Fetcher
	store   PostUpserter
}

func NewTask(fetcher Fetcher, store PostUpserter) *Task {
	return &Task{fetcher: fetcher, store: store}
}

// Run fetches, validates, then upserts posts one at a time. Nothing is
// written when fetching or validation fails. A store failure stops the run
// midway; re-running converges since upserts are idempotent.
func (t *Task) Run(ctx context.Context) (int, error) {
	payload, err := t.fetcher.Fetch(ctx)
	if err != nil {
		var appErr *utils.AppError
		if !errors.As(err, &appErr) {
			err = utils.NewFetchError("Error fetching posts", err)
		}
		return 0, err
	}

	posts, err := ParsePosts(payload)
	if err != nil {
		return 0, err
	}

	for i := range posts {
		if err := t.store.UpsertPost(ctx, &posts[i]); err != nil {
			return i, utils.NewInternalError(fmt.Sprintf("Error storing post %d", posts[i].ID), err)
		}
	}

	utils.LogSuccess(fmt.Sprintf("Ingested %d posts", len(posts)))
	return len(posts), nil
}
