package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed(t *testing.T) {
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_, _ = w.Write([]byte(`{"message":"Posts updated successfully"}`))
	}))
	defer srv.Close()

	msg, err := seed(context.Background(), srv.Client(), srv.URL+"/")

	require.NoError(t, err)
	assert.Equal(t, "/api/posts/fetchAndStore", path)
	assert.Equal(t, "Posts updated successfully", msg)
}

func TestSeed_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"Internal server error","code":"INTERNAL_SERVER_ERROR"}`))
	}))
	defer srv.Close()

	_, err := seed(context.Background(), srv.Client(), srv.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=500")
	assert.Contains(t, err.Error(), "Internal server error")
}

func TestSeed_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := seed(context.Background(), http.DefaultClient, url)

	assert.Error(t, err)
}
