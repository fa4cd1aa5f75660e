package pathways

import (
	"context"

	"github.com/housinglink/pathways/pkg/common/models"
	"github.com/housinglink/pathways/pkg/pipeline"
	"github.com/housinglink/pathways/pkg/placements"
)

// TableSource supplies the derived placement table the analysis runs over.
// Implemented by the pipeline service; tests supply their own.
type TableSource interface {
	LatestTable(ctx context.Context) (placements.Table, error)
}

type Service struct {
	source TableSource
	runner *pipeline.Runner
	window WindowConfig
}

func NewService(source TableSource, runner *pipeline.Runner, window WindowConfig) *Service {
	return &Service{source: source, runner: runner, window: window}
}

// WindowTable returns the window slice of the latest table with routes
// reassigned and reclassified for the subset.
func (s *Service) WindowTable(ctx context.Context) (placements.Table, error) {
	full, err := s.source.LatestTable(ctx)
	if err != nil {
		return nil, err
	}
	return s.runner.RouteStages(Slice(full, s.window)), nil
}

// Routes summarises every route in the window.
func (s *Service) Routes(ctx context.Context) ([]models.RouteSummary, error) {
	t, err := s.WindowTable(ctx)
	if err != nil {
		return nil, err
	}

	var out []models.RouteSummary
	start := 0
	for i := 1; i <= len(t); i++ {
		if i < len(t) &&
			t[i].CanonicalID == t[start].CanonicalID &&
			t[i].RouteID == t[start].RouteID {
			continue
		}
		group := t[start:i]
		head, tail := group[0], group[len(group)-1]
		summary := models.RouteSummary{
			CanonicalID: head.CanonicalID,
			RouteID:     head.RouteID,
			Placements:  len(group),
			EndDt:       tail.EndDt,
			EndCategory: tail.RouteEndCategory,
			EndPlanned:  tail.RouteEndPlanned,
		}
		if head.StartDt != nil {
			summary.StartDt = *head.StartDt
		}
		out = append(out, summary)
		start = i
	}
	return out, nil
}

// Returns evaluates stable-move returns for every closed route in the window.
func (s *Service) Returns(ctx context.Context) ([]RouteReturn, error) {
	t, err := s.WindowTable(ctx)
	if err != nil {
		return nil, err
	}
	return StableReturns(t, s.window.End), nil
}

// Categories tallies route outcomes in the window.
func (s *Service) Categories(ctx context.Context) ([]models.CategoryCount, error) {
	t, err := s.WindowTable(ctx)
	if err != nil {
		return nil, err
	}
	return CategoryTallies(t), nil
}
