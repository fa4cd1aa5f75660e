package models

import "time"

// Event Bus models
type Event struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"` // vacancy, pipeline-run, pipeline-complete
	Source    string                 `json:"source"`
	Data      map[string]interface{} `json:"data"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]string      `json:"metadata,omitempty"`
}

// Pipeline API models
type RunRequest struct {
	IncludeCorrections bool `json:"include_corrections"`
	IncludeAssumptions bool `json:"include_assumptions"`
}

type RunSummary struct {
	RunID                 string    `json:"run_id"`
	Records               int       `json:"records"`
	Relocated             int       `json:"relocated"`
	Routes                int       `json:"routes"`
	People                int       `json:"people"`
	UnmatchedCorrections  int       `json:"unmatched_corrections"`
	UnbackdatedRecords    int       `json:"unbackdated_records"`
	OverlapRemovedRecords int       `json:"overlap_removed_records"`
	GapRemovedRecords     int       `json:"gap_removed_records"`
	IncludeCorrections    bool      `json:"include_corrections"`
	IncludeAssumptions    bool      `json:"include_assumptions"`
	StartedAt             time.Time `json:"started_at"`
	CompletedAt           time.Time `json:"completed_at"`
}

type CategoryCount struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
}

type RouteSummary struct {
	CanonicalID int64      `json:"canonical_id"`
	RouteID     int64      `json:"route_id"`
	Placements  int        `json:"placements"`
	StartDt     time.Time  `json:"start_dt"`
	EndDt       *time.Time `json:"end_dt,omitempty"`
	EndCategory string     `json:"end_category"`
	EndPlanned  string     `json:"end_planned"`
}
