package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kelseyhightower/envconfig"

	"github.com/selahapp/selah/internal/models"
)

// RemoteConfig configures the hosted analysis service.
type RemoteConfig struct {
	Endpoint   string `envconfig:"ANALYSIS_URL"`
	TimeoutSec int    `envconfig:"ANALYSIS_TIMEOUT_SEC" default:"20"`
}

// LoadRemoteConfig reads the remote analyzer configuration from SELAH_*
// environment variables.
func LoadRemoteConfig() (RemoteConfig, error) {
	var cfg RemoteConfig
	if err := envconfig.Process("selah", &cfg); err != nil {
		return RemoteConfig{}, fmt.Errorf("failed to load analysis config: %w", err)
	}
	return cfg, nil
}

// Remote calls the hosted analysis service. Fire-once: no retries, failures
// are for the caller to absorb with Fallback().
type Remote struct {
	client   *resty.Client
	endpoint string
}

func NewRemote(cfg RemoteConfig, apiKey string) *Remote {
	client := resty.New().
		SetTimeout(time.Duration(cfg.TimeoutSec) * time.Second).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json")
	return &Remote{
		client:   client,
		endpoint: cfg.Endpoint,
	}
}

type analyzeRequest struct {
	Transcript string `json:"transcript"`
}

func (r *Remote) Analyze(ctx context.Context, transcript string) (models.Analysis, error) {
	var result models.Analysis
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(analyzeRequest{Transcript: transcript}).
		SetResult(&result).
		Post(r.endpoint)
	if err != nil {
		return models.Analysis{}, fmt.Errorf("analysis request failed: %w", err)
	}
	if resp.IsError() {
		return models.Analysis{}, fmt.Errorf("analysis request failed with status %d", resp.StatusCode())
	}
	if result.Summary == "" {
		// Partial data is allowed; an empty summary still gets the generic one
		result.Summary = Fallback().Summary
	}
	return result, nil
}
