package posts

import (
	"context"

	"blog-backend/models"
)

const ingestSuccessMessage = "Posts updated successfully"

// FetchAndStore runs the ingestion task. Fetch and validation errors are
// returned unchanged.
func (s *Service) FetchAndStore(ctx context.Context) (*models.MessageResult, error) {
	if _, err := s.ingester.Run(ctx); err != nil {
		return nil, err
	}
	return &models.MessageResult{Message: ingestSuccessMessage}, nil
}
