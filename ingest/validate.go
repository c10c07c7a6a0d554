package ingest

import (
	"encoding/json"
	"fmt"

	"blog-backend/models"
	"blog-backend/utils"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ParsePosts decodes and validates an upstream payload. A single bad
// record rejects the whole payload.
func ParsePosts(payload []byte) ([]models.Post, error) {
	var records []models.ExternalPost
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, utils.NewValidationError("Upstream payload is not an array of posts", err)
	}
	if records == nil {
		return nil, utils.NewValidationError("Upstream payload is not an array of posts", nil)
	}

	posts := make([]models.Post, 0, len(records))
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, utils.NewValidationError(fmt.Sprintf("Invalid post at index %d", i), err)
		}
		posts = append(posts, rec.ToPost())
	}
	return posts, nil
}
