// Package extractor derives a task description and a room number from a
// guest transcript.
package extractor

import (
	"context"
	"fmt"
	"net/http"

	"github.com/IsaacDSC/hotelhook/internal/cfg"
	"github.com/IsaacDSC/hotelhook/internal/domain"
)

type Extractor interface {
	// Name identifies the extraction path in logs and metrics.
	Name() string
	Extract(ctx context.Context, transcript string) (domain.TaskRecord, error)
}

// New returns the extractor selected by conf.ExtractorMode.
func New(conf cfg.Config, httpClient *http.Client) (Extractor, error) {
	switch conf.ExtractorMode {
	case cfg.ExtractorHeuristic:
		return NewHeuristic(), nil
	case cfg.ExtractorModel:
		return NewModel(conf.OpenAI, httpClient)
	default:
		return nil, fmt.Errorf("unknown extractor mode: %q", string(conf.ExtractorMode))
	}
}
