package vacancies

import (
	"time"

	"gorm.io/datatypes"
)

// Vacancy is the raw vacancy row as ingested. Date columns are kept as the
// source strings because the feed contains hand-typed values with known
// typos; parsing and repair happen on conversion, never on ingest, so the
// stored data stays faithful to the source.
type Vacancy struct {
	VacID          int64             `gorm:"primaryKey;column:vac_id" json:"vac_id"`
	RefID          int64             `gorm:"column:ref_id" json:"ref_id"`
	CliID          int64             `gorm:"column:cli_id;index" json:"cli_id"`
	SvcID          int64             `gorm:"column:svc_id;index" json:"svc_id"`
	SvcType        string            `gorm:"column:svc_type" json:"svc_type"`
	PathwayLevel   string            `gorm:"column:pathway_level" json:"pathway_level"`
	FilledDt       string            `gorm:"column:vac_filled_dt" json:"vac_filled_dt"`
	VacEndDt       string            `gorm:"column:vac_end_dt" json:"vac_end_dt"`
	MovedOutDt     string            `gorm:"column:moved_out_dt" json:"moved_out_dt"`
	NotificationDt string            `gorm:"column:notification_dt" json:"notification_dt"`
	EndReason      string            `gorm:"column:end_reason" json:"end_reason"`
	Attributes     datatypes.JSONMap `gorm:"column:attributes" json:"attributes,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (Vacancy) TableName() string {
	return "vacancies"
}

// DuplicateLink records that two client ids belong to the same person.
// CanonicalID is the id the person's placements are grouped under.
type DuplicateLink struct {
	CliID       int64 `gorm:"primaryKey;column:cli_id" json:"cli_id"`
	CanonicalID int64 `gorm:"column:canonical_id;index" json:"canonical_id"`
}

func (DuplicateLink) TableName() string {
	return "duplicate_links"
}
