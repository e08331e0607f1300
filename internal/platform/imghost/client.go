// Package imghost provides a client for the external image-hosting HTTP API.
// Uploads are submitted as form-encoded base64 payloads with a server-held
// API key; deletion follows the provider's convention of issuing a GET to
// the delete URL returned at upload time.
package imghost

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/eventboard/eventboard-api/internal/config"
	"github.com/eventboard/eventboard-api/internal/platform/logger"
)

// ErrMissingAPIKey indicates the image host API key is not configured.
var ErrMissingAPIKey = errors.New("image host API key is not configured")

// UploadResult holds the URLs returned by the provider for an upload.
type UploadResult struct {
	URL       string
	DeleteURL *string // nil when the provider did not return one
}

// Service defines the operations handlers need from the image host.
type Service interface {
	// Upload submits the raw image bytes to the provider and returns
	// the hosted URL plus an optional deletion URL.
	// Returns ErrMissingAPIKey if no API key is configured.
	Upload(ctx context.Context, data []byte) (*UploadResult, error)

	// Delete issues a retrieval request to the provider-supplied delete
	// URL. Success means the request completed without a transport error.
	Delete(ctx context.Context, deleteURL string) error
}

// Client implements Service against the provider's HTTP API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	uploadURL  string
	logger     *slog.Logger
}

// Ensure Client implements Service interface
var _ Service = (*Client)(nil)

// NewClient creates an image host client from configuration.
// If httpClient is nil, http.DefaultClient is used; no additional
// timeout or retry behavior is layered on top of it.
// If log is nil, a default logger will be used.
func NewClient(cfg config.ImageHostConfig, httpClient *http.Client, log *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = slog.Default()
	}

	return &Client{
		httpClient: httpClient,
		apiKey:     cfg.APIKey,
		uploadURL:  cfg.UploadURL,
		logger:     log.With(slog.String("component", "imghost_client")),
	}
}

// uploadResponse mirrors the provider's upload response envelope.
type uploadResponse struct {
	Data struct {
		URL       string `json:"url"`
		DeleteURL string `json:"delete_url"`
	} `json:"data"`
	Success bool `json:"success"`
}

// Upload implements Service.Upload.
func (c *Client) Upload(ctx context.Context, data []byte) (*UploadResult, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	form := url.Values{}
	form.Set("key", c.apiKey)
	form.Set("image", base64.StdEncoding.EncodeToString(data))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("image upload request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("image upload request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Error("failed to close response body", slog.String("error", err.Error()))
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("image host rejected upload",
			slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("image host returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed uploadResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse upload response: %w", err)
	}

	if parsed.Data.URL == "" {
		log.Error("image host response missing URL")
		return nil, errors.New("image host response did not include a URL")
	}

	result := &UploadResult{URL: parsed.Data.URL}
	if parsed.Data.DeleteURL != "" {
		result.DeleteURL = &parsed.Data.DeleteURL
	}

	log.Info("image uploaded successfully")
	return result, nil
}

// Delete implements Service.Delete.
func (c *Client) Delete(ctx context.Context, deleteURL string) error {
	log := logger.FromContextOrDefault(ctx, c.logger)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, deleteURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("image delete request failed", slog.String("error", err.Error()))
		return fmt.Errorf("image delete request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Error("failed to close response body", slog.String("error", err.Error()))
		}
	}()

	// The provider's deletion convention is a plain GET; the response
	// status is not inspected, only transport failures are surfaced.
	_, _ = io.Copy(io.Discard, resp.Body)

	log.Info("image delete request completed")
	return nil
}
