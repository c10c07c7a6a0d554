// Package posts holds the query and mutation operations on posts and
// likes. The caller identity is always passed in explicitly.
package posts

import (
	"context"

	"blog-backend/store"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 20
)

// Ingester runs one ingestion pass and reports how many posts it stored.
type Ingester interface {
	Run(ctx context.Context) (int, error)
}

type Service struct {
	store    store.Store
	ingester Ingester
}

func New(s store.Store, ingester Ingester) *Service {
	return &Service{store: s, ingester: ingester}
}
