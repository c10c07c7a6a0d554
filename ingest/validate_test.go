package ingest

import (
	"testing"

	"blog-backend/models"
	"blog-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosts_Valid(t *testing.T) {
	posts, err := ParsePosts([]byte(`[
		{"userId":1,"id":1,"title":"A","body":"x"},
		{"userId":2,"id":2,"title":"","body":""}
	]`))

	require.NoError(t, err)
	assert.Equal(t, []models.Post{
		{ID: 1, UserID: 1, Title: "A", Body: "x"},
		{ID: 2, UserID: 2, Title: "", Body: ""},
	}, posts)
}

func TestParsePosts_Empty(t *testing.T) {
	posts, err := ParsePosts([]byte(`[]`))

	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestParsePosts_Invalid(t *testing.T) {
	cases := map[string]string{
		"not json":        `<html>`,
		"object":          `{"not":"an array"}`,
		"null":            `null`,
		"missing id":      `[{"userId":1,"title":"A","body":"x"}]`,
		"missing userId":  `[{"id":1,"title":"A","body":"x"}]`,
		"missing title":   `[{"userId":1,"id":1,"body":"x"}]`,
		"missing body":    `[{"userId":1,"id":1,"title":"A"}]`,
		"string id":       `[{"userId":1,"id":"1","title":"A","body":"x"}]`,
		"fractional id":   `[{"userId":1,"id":1.5,"title":"A","body":"x"}]`,
		"numeric title":   `[{"userId":1,"id":1,"title":5,"body":"x"}]`,
		"null body":       `[{"userId":1,"id":1,"title":"A","body":null}]`,
		"one bad of many": `[{"userId":1,"id":1,"title":"A","body":"x"},{"userId":1,"id":2}]`,
	}

	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			posts, err := ParsePosts([]byte(payload))
			assert.Nil(t, posts)
			assert.ErrorIs(t, err, utils.ErrValidation)
		})
	}
}
