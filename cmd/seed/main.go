// Command seed triggers one ingestion run on a running server and exits
// non-zero when it fails.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"blog-backend/config"
	"blog-backend/models"
	"blog-backend/utils"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	utils.ConfigureLogger(cfg.LogLevel, cfg.LogFile)

	baseURL := os.Getenv("SEED_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Port
	}

	// the server bounds the run with IngestTimeout, leave it room to answer
	ctx, cancel := context.WithTimeout(context.Background(), cfg.IngestTimeout+5*time.Second)
	defer cancel()

	msg, err := seed(ctx, http.DefaultClient, baseURL)
	if err != nil {
		utils.Logger.WithError(err).WithField("base_url", baseURL).Error("Seeding failed")
		os.Exit(1)
	}
	utils.Logger.WithFields(logrus.Fields{"base_url": baseURL, "status": "success"}).Info(msg)
}

func seed(ctx context.Context, client *http.Client, baseURL string) (string, error) {
	url := strings.TrimRight(baseURL, "/") + "/api/posts/fetchAndStore"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		var failure utils.Response
		if json.Unmarshal(body, &failure) == nil && failure.Error != "" {
			return "", fmt.Errorf("status=%d: %s", resp.StatusCode, failure.Error)
		}
		return "", fmt.Errorf("status=%d, body=%s", resp.StatusCode, body)
	}

	var res models.MessageResult
	if err := json.Unmarshal(body, &res); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	return res.Message, nil
}
