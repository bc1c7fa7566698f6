// Package scripture looks up verse text by reference. Best-effort and
// cache-free: failures are logged and yield no text, never a user-facing
// error.
package scripture

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kelseyhightower/envconfig"

	"github.com/selahapp/selah/internal/models"
)

// Lookup resolves a scripture reference to its text.
type Lookup interface {
	FetchVerseText(ctx context.Context, reference string) (models.Scripture, error)
}

// Config configures the verse lookup endpoint.
type Config struct {
	BaseURL     string `envconfig:"VERSE_URL" default:"https://bible-api.com"`
	Translation string `envconfig:"VERSE_TRANSLATION" default:"web"`
	TimeoutSec  int    `envconfig:"VERSE_TIMEOUT_SEC" default:"10"`
}

// LoadConfig reads the verse lookup configuration from SELAH_* environment
// variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("selah", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load verse lookup config: %w", err)
	}
	return cfg, nil
}

type Client struct {
	client      *resty.Client
	translation string
}

func NewClient(cfg Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.TimeoutSec) * time.Second)
	return &Client{
		client:      client,
		translation: cfg.Translation,
	}
}

type verseResponse struct {
	Reference       string `json:"reference"`
	Text            string `json:"text"`
	TranslationID   string `json:"translation_id"`
	TranslationName string `json:"translation_name"`
}

// FetchVerseText fetches the text for a reference like "Psalm 23:1". A
// non-2xx response or transport failure is an error for the caller to log
// and drop.
func (c *Client) FetchVerseText(ctx context.Context, reference string) (models.Scripture, error) {
	var result verseResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("translation", c.translation).
		SetResult(&result).
		Get("/" + url.PathEscape(reference))
	if err != nil {
		return models.Scripture{}, fmt.Errorf("verse lookup failed: %w", err)
	}
	if resp.IsError() {
		return models.Scripture{}, fmt.Errorf("verse lookup failed with status %d", resp.StatusCode())
	}

	ref := result.Reference
	if ref == "" {
		ref = reference
	}
	return models.Scripture{
		Reference:   ref,
		Text:        result.Text,
		Translation: c.translation,
	}, nil
}
