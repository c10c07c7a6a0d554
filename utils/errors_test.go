package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusAndPublicFields(t *testing.T) {
	tests := map[string]struct {
		err     error
		status  int
		code    ErrorKind
		message string
	}{
		"validation":      {NewValidationError("page must be greater than or equal to 1", nil), http.StatusBadRequest, KindValidation, "page must be greater than or equal to 1"},
		"unauthenticated": {NewUnauthenticatedError("User not authenticated"), http.StatusUnauthorized, KindUnauthenticated, "User not authenticated"},
		"forbidden":       {&AppError{Kind: KindForbidden}, http.StatusForbidden, KindForbidden, "Forbidden"},
		"not found":       {NewNotFoundError("Post not found"), http.StatusNotFound, KindNotFound, "Post not found"},
		"conflict":        {NewConflictError("Post already liked", nil), http.StatusConflict, KindConflict, "Post already liked"},
		"fetch":           {NewFetchError("status=503", errors.New("down")), http.StatusInternalServerError, KindInternal, "Internal server error"},
		"internal":        {NewInternalError("Error retrieving posts", errors.New("db")), http.StatusInternalServerError, KindInternal, "Internal server error"},
		"plain error":     {errors.New("boom"), http.StatusInternalServerError, KindInternal, "Internal server error"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
			assert.Equal(t, tt.code, PublicCode(tt.err))
			assert.Equal(t, tt.message, PublicMessage(tt.err))
		})
	}
}

func TestAppErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", NewConflictError("Post already liked", nil))

	assert.ErrorIs(t, wrapped, ErrConflict)
	assert.NotErrorIs(t, wrapped, ErrNotFound)
	assert.Equal(t, KindConflict, KindOf(wrapped))
}
