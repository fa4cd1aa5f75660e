package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/housinglink/pathways/pkg/cache"
	"github.com/housinglink/pathways/pkg/common/kafka"
	"github.com/housinglink/pathways/pkg/common/logger"
	"github.com/housinglink/pathways/pkg/common/models"
	"github.com/housinglink/pathways/pkg/placements"
	"github.com/housinglink/pathways/pkg/routes"
	"github.com/housinglink/pathways/pkg/vacancies"
)

// latestTag is the cache tag for the most recent run's derived table.
const latestTag = "latest"

type Service struct {
	repo     *Repository
	vacRepo  *vacancies.Repository
	runner   *Runner
	tables   *cache.TableCache
	producer *kafka.Producer
	dlq      *kafka.Producer
}

func NewService(repo *Repository, vacRepo *vacancies.Repository, runner *Runner, tables *cache.TableCache, producer *kafka.Producer, dlq *kafka.Producer) *Service {
	return &Service{
		repo:     repo,
		vacRepo:  vacRepo,
		runner:   runner,
		tables:   tables,
		producer: producer,
		dlq:      dlq,
	}
}

// Run executes the pipeline over the full vacancy store, persists the
// results and refreshes the table cache.
func (s *Service) Run(ctx context.Context, req models.RunRequest) (*models.RunSummary, error) {
	started := time.Now().UTC()

	vacs, err := s.vacRepo.FetchAll()
	if err != nil {
		return nil, fmt.Errorf("fetching vacancies: %w", err)
	}
	links, err := s.vacRepo.FetchLinks()
	if err != nil {
		return nil, fmt.Errorf("fetching duplicate links: %w", err)
	}
	table, err := vacancies.ToRecords(vacs, links)
	if err != nil {
		return nil, fmt.Errorf("converting vacancies: %w", err)
	}

	result := s.runner.Run(placements.Build(table), Options{
		IncludeCorrections: req.IncludeCorrections,
		IncludeAssumptions: req.IncludeAssumptions,
	})

	summary := summarize(result, req, started)
	if err := s.repo.SaveRun(ctx, summary, result.Placements, result.Relocated); err != nil {
		return nil, fmt.Errorf("persisting run: %w", err)
	}

	if err := s.tables.Put(ctx, latestTag, result.Placements); err != nil {
		logger.Log.WithError(err).Warn("Failed to cache derived table")
	}

	if s.producer != nil {
		if err := s.producer.PublishEvent(ctx, "pipeline-complete", "placement-service", map[string]interface{}{
			"run_id":  summary.RunID,
			"records": summary.Records,
			"routes":  summary.Routes,
		}); err != nil {
			logger.Log.WithError(err).Warn("Failed to publish run completion")
		}
	}

	logger.Log.WithFields(map[string]interface{}{
		"run_id":  summary.RunID,
		"records": summary.Records,
		"routes":  summary.Routes,
		"people":  summary.People,
	}).Info("Pipeline run complete")

	return summary, nil
}

// LatestSummary returns the most recent run summary.
func (s *Service) LatestSummary(ctx context.Context) (*models.RunSummary, error) {
	return s.repo.LatestRun(ctx)
}

// LatestTable returns the most recent derived table, preferring the cache
// and falling back to the persisted run.
func (s *Service) LatestTable(ctx context.Context) (placements.Table, error) {
	if t, ok := s.tables.Get(ctx, latestTag); ok {
		return t, nil
	}
	summary, err := s.repo.LatestRun(ctx)
	if err != nil {
		return nil, err
	}
	t, err := s.repo.FetchTable(ctx, summary.RunID)
	if err != nil {
		return nil, err
	}
	if err := s.tables.Put(ctx, latestTag, t); err != nil {
		logger.Log.WithError(err).Warn("Failed to cache derived table")
	}
	return t, nil
}

// HandleVacancyEvent ingests one vacancy from the event bus. Malformed
// payloads go to the DLQ and are committed; a storage failure is returned so
// the message is retried.
func (s *Service) HandleVacancyEvent(ctx context.Context, event models.Event) error {
	payload, err := json.Marshal(event.Data)
	if err != nil {
		return s.deadLetter(ctx, event, err)
	}
	var vac vacancies.Vacancy
	if err := json.Unmarshal(payload, &vac); err != nil || vac.VacID == 0 {
		if err == nil {
			err = fmt.Errorf("vacancy event without vac_id")
		}
		return s.deadLetter(ctx, event, err)
	}

	if err := s.vacRepo.Upsert(&vac); err != nil {
		return fmt.Errorf("storing vacancy %d: %w", vac.VacID, err)
	}

	if err := s.tables.Invalidate(ctx, latestTag); err != nil {
		logger.Log.WithError(err).Warn("Failed to invalidate table cache")
	}

	logger.Log.WithFields(map[string]interface{}{
		"vac_id": vac.VacID,
		"cli_id": vac.CliID,
	}).Info("Vacancy ingested")
	return nil
}

func (s *Service) deadLetter(ctx context.Context, event models.Event, cause error) error {
	logger.Log.WithError(cause).WithField("event_id", event.ID).Warn("Unprocessable vacancy event")
	if s.dlq == nil {
		return nil
	}
	if err := s.dlq.PublishEvent(ctx, "vacancy-dlq", event.Source, event.Data); err != nil {
		logger.Log.WithError(err).Error("Failed to push event to DLQ")
	}
	return nil
}

func summarize(result Result, req models.RunRequest, started time.Time) *models.RunSummary {
	people := make(map[int64]struct{})
	var unbackdated, overlapRemoved, gapRemoved int
	for _, r := range result.Placements {
		people[r.CanonicalID] = struct{}{}
		if r.Unbackdated {
			unbackdated++
		}
		if r.OverlapRemoved {
			overlapRemoved++
		}
		if r.GapRemoved {
			gapRemoved++
		}
	}
	return &models.RunSummary{
		RunID:                 uuid.New().String(),
		Records:               len(result.Placements),
		Relocated:             len(result.Relocated),
		Routes:                routes.Count(result.Placements),
		People:                len(people),
		UnmatchedCorrections:  result.Unmatched,
		UnbackdatedRecords:    unbackdated,
		OverlapRemovedRecords: overlapRemoved,
		GapRemovedRecords:     gapRemoved,
		IncludeCorrections:    req.IncludeCorrections,
		IncludeAssumptions:    req.IncludeAssumptions,
		StartedAt:             started,
		CompletedAt:           time.Now().UTC(),
	}
}
