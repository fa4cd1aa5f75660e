package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/housinglink/pathways/pkg/common/models"
	"github.com/housinglink/pathways/pkg/placements"
	"gorm.io/gorm"
)

var ErrNoRuns = errors.New("no pipeline runs recorded")

// Run is the persisted summary of one pipeline execution.
type Run struct {
	RunID                 string    `gorm:"primaryKey;column:run_id"`
	Records               int       `gorm:"column:records"`
	Relocated             int       `gorm:"column:relocated"`
	Routes                int       `gorm:"column:routes"`
	People                int       `gorm:"column:people"`
	UnmatchedCorrections  int       `gorm:"column:unmatched_corrections"`
	UnbackdatedRecords    int       `gorm:"column:unbackdated_records"`
	OverlapRemovedRecords int       `gorm:"column:overlap_removed_records"`
	GapRemovedRecords     int       `gorm:"column:gap_removed_records"`
	IncludeCorrections    bool      `gorm:"column:include_corrections"`
	IncludeAssumptions    bool      `gorm:"column:include_assumptions"`
	StartedAt             time.Time `gorm:"column:started_at"`
	CompletedAt           time.Time `gorm:"column:completed_at;index"`
}

func (Run) TableName() string {
	return "pipeline_runs"
}

// PlacementRow is one corrected placement as persisted for a run. Raw and
// working fields are both stored so the in-memory table can be rebuilt
// without touching the vacancy store; relocated records live in the same
// table behind the Relocated flag.
type PlacementRow struct {
	ID               uint       `gorm:"primaryKey"`
	RunID            string     `gorm:"column:run_id;index"`
	VacID            int64      `gorm:"column:vac_id"`
	RefID            int64      `gorm:"column:ref_id"`
	PersonID         int64      `gorm:"column:cli_id"`
	CanonicalID      int64      `gorm:"column:canonical_id;index"`
	ServiceID        int64      `gorm:"column:svc_id"`
	ServiceType      string     `gorm:"column:svc_type"`
	PathwayLevel     string     `gorm:"column:pathway_level"`
	FilledDt         *time.Time `gorm:"column:vac_filled_dt"`
	VacEndDt         *time.Time `gorm:"column:vac_end_dt"`
	MovedOutDt       *time.Time `gorm:"column:moved_out_dt"`
	NotificationDt   *time.Time `gorm:"column:notification_dt"`
	EndReason        string     `gorm:"column:end_reason"`
	StartDt          *time.Time `gorm:"column:start_dt"`
	EndDt            *time.Time `gorm:"column:end_dt"`
	RouteID          int64      `gorm:"column:route_id"`
	RouteEndCategory string     `gorm:"column:route_end_category"`
	RouteEndPlanned  string     `gorm:"column:route_end_planned"`
	Unbackdated      bool       `gorm:"column:unbackdated"`
	OverlapRemoved   bool       `gorm:"column:overlap_removed"`
	GapRemoved       bool       `gorm:"column:gap_removed"`
	Relocated        bool       `gorm:"column:relocated"`
}

func (PlacementRow) TableName() string {
	return "placements"
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) (*Repository, error) {
	if err := db.AutoMigrate(&Run{}, &PlacementRow{}); err != nil {
		return nil, err
	}
	return &Repository{db: db}, nil
}

// SaveRun persists a run summary and its tables atomically.
func (r *Repository) SaveRun(ctx context.Context, summary *models.RunSummary, corrected, relocated placements.Table) error {
	run := &Run{
		RunID:                 summary.RunID,
		Records:               summary.Records,
		Relocated:             summary.Relocated,
		Routes:                summary.Routes,
		People:                summary.People,
		UnmatchedCorrections:  summary.UnmatchedCorrections,
		UnbackdatedRecords:    summary.UnbackdatedRecords,
		OverlapRemovedRecords: summary.OverlapRemovedRecords,
		GapRemovedRecords:     summary.GapRemovedRecords,
		IncludeCorrections:    summary.IncludeCorrections,
		IncludeAssumptions:    summary.IncludeAssumptions,
		StartedAt:             summary.StartedAt,
		CompletedAt:           summary.CompletedAt,
	}

	rows := make([]PlacementRow, 0, len(corrected)+len(relocated))
	for _, rec := range corrected {
		rows = append(rows, toRow(summary.RunID, rec, false))
	}
	for _, rec := range relocated {
		rows = append(rows, toRow(summary.RunID, rec, true))
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(run).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 500).Error
	})
}

// LatestRun returns the most recently completed run summary.
func (r *Repository) LatestRun(ctx context.Context) (*models.RunSummary, error) {
	var run Run
	err := r.db.WithContext(ctx).Order("completed_at DESC").First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoRuns
	}
	if err != nil {
		return nil, err
	}
	return &models.RunSummary{
		RunID:                 run.RunID,
		Records:               run.Records,
		Relocated:             run.Relocated,
		Routes:                run.Routes,
		People:                run.People,
		UnmatchedCorrections:  run.UnmatchedCorrections,
		UnbackdatedRecords:    run.UnbackdatedRecords,
		OverlapRemovedRecords: run.OverlapRemovedRecords,
		GapRemovedRecords:     run.GapRemovedRecords,
		IncludeCorrections:    run.IncludeCorrections,
		IncludeAssumptions:    run.IncludeAssumptions,
		StartedAt:             run.StartedAt,
		CompletedAt:           run.CompletedAt,
	}, nil
}

// FetchTable rebuilds the in-memory placement table for a run (relocated
// rows excluded) and re-derives it, since derived fields are never persisted.
func (r *Repository) FetchTable(ctx context.Context, runID string) (placements.Table, error) {
	var rows []PlacementRow
	err := r.db.WithContext(ctx).
		Where("run_id = ? AND relocated = ?", runID, false).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(placements.Table, 0, len(rows))
	for i := range rows {
		out = append(out, toRecord(&rows[i]))
	}
	return placements.Derive(out), nil
}

func toRow(runID string, rec *placements.Record, relocated bool) PlacementRow {
	return PlacementRow{
		RunID:            runID,
		VacID:            rec.VacID,
		RefID:            rec.RefID,
		PersonID:         rec.PersonID,
		CanonicalID:      rec.CanonicalID,
		ServiceID:        rec.ServiceID,
		ServiceType:      rec.ServiceType,
		PathwayLevel:     rec.PathwayLevel,
		FilledDt:         rec.FilledDt,
		VacEndDt:         rec.VacEndDt,
		MovedOutDt:       rec.MovedOutDt,
		NotificationDt:   rec.NotificationDt,
		EndReason:        rec.EndReason,
		StartDt:          rec.StartDt,
		EndDt:            rec.EndDt,
		RouteID:          rec.RouteID,
		RouteEndCategory: rec.RouteEndCategory,
		RouteEndPlanned:  rec.RouteEndPlanned,
		Unbackdated:      rec.Unbackdated,
		OverlapRemoved:   rec.OverlapRemoved,
		GapRemoved:       rec.GapRemoved,
		Relocated:        relocated,
	}
}

func toRecord(row *PlacementRow) *placements.Record {
	return &placements.Record{
		VacID:            row.VacID,
		RefID:            row.RefID,
		PersonID:         row.PersonID,
		CanonicalID:      row.CanonicalID,
		ServiceID:        row.ServiceID,
		ServiceType:      row.ServiceType,
		PathwayLevel:     row.PathwayLevel,
		FilledDt:         row.FilledDt,
		VacEndDt:         row.VacEndDt,
		MovedOutDt:       row.MovedOutDt,
		NotificationDt:   row.NotificationDt,
		EndReason:        row.EndReason,
		StartDt:          row.StartDt,
		EndDt:            row.EndDt,
		RouteID:          row.RouteID,
		RouteEndCategory: row.RouteEndCategory,
		RouteEndPlanned:  row.RouteEndPlanned,
		Unbackdated:      row.Unbackdated,
		OverlapRemoved:   row.OverlapRemoved,
		GapRemoved:       row.GapRemoved,
	}
}
