// Package analysis turns a raw transcript into structured metadata. The
// remote service is opaque and may fail or return partial data; callers fall
// back to Fallback() rather than surfacing errors.
package analysis

import (
	"context"

	"github.com/selahapp/selah/internal/constants"
	"github.com/selahapp/selah/internal/keyring"
	"github.com/selahapp/selah/internal/logger"
	"github.com/selahapp/selah/internal/models"
)

type Analyzer interface {
	Analyze(ctx context.Context, transcript string) (models.Analysis, error)
}

// Fallback is the analysis applied when the analyzer fails: a generic
// summary and no derived metadata.
func Fallback() models.Analysis {
	return models.Analysis{
		Summary: constants.GenericSummary,
	}
}

// Default returns the remote analyzer when an endpoint and API key are
// configured, otherwise the local heuristic analyzer.
func Default() Analyzer {
	cfg, err := LoadRemoteConfig()
	if err != nil || cfg.Endpoint == "" {
		return NewHeuristic()
	}
	key, err := keyring.GetAnalysisKey()
	if err != nil {
		logger.Debug("No analysis API key in keyring, using local analyzer", "error", err)
		return NewHeuristic()
	}
	return NewRemote(cfg, key)
}
