package placements

import (
	"math"
	"sort"
	"time"
)

// Record is one stay-in-service event. Raw fields come straight from the
// vacancy data; StartDt/EndDt are working dates that corrections and the
// overlap passes are allowed to move. Derived fields (Duration, Gap, Moves,
// Prev) are recomputed by Derive and must never be trusted after a mutation
// until Derive has run again.
type Record struct {
	VacID          int64      `json:"vac_id"`
	RefID          int64      `json:"ref_id,omitempty"`
	PersonID       int64      `json:"cli_id"`
	CanonicalID    int64      `json:"o_cli_id"`
	ServiceID      int64      `json:"svc_id"`
	ServiceType    string     `json:"svc_type,omitempty"`
	PathwayLevel   string     `json:"pathway_level,omitempty"`
	FilledDt       *time.Time `json:"vac_filled_dt,omitempty"`
	VacEndDt       *time.Time `json:"vac_end_dt,omitempty"`
	MovedOutDt     *time.Time `json:"moved_out_dt,omitempty"`
	NotificationDt *time.Time `json:"notification_dt,omitempty"`
	EndReason      string     `json:"end_reason,omitempty"`

	StartDt *time.Time `json:"start_dt,omitempty"`
	EndDt   *time.Time `json:"end_dt,omitempty"` // nil means still open

	Duration *time.Duration `json:"duration,omitempty"`
	Gap      *time.Duration `json:"gap,omitempty"` // nil for a person's first record
	Moves    int            `json:"moves"`
	Prev     *Record        `json:"prev,omitempty"`

	RouteID          int64  `json:"route_id,omitempty"`
	RouteEndCategory string `json:"route_end_category,omitempty"`
	RouteEndPlanned  string `json:"route_end_planned,omitempty"`

	Unbackdated    bool `json:"unbackdated,omitempty"`
	OverlapRemoved bool `json:"overlap_removed,omitempty"`
	GapRemoved     bool `json:"gap_removed,omitempty"`
}

// Table is the in-memory placement table. Stages never mutate their input:
// they Clone first and return a fresh table.
type Table []*Record

func (t Table) Clone() Table {
	out := make(Table, len(t))
	for i, r := range t {
		c := *r
		out[i] = &c
	}
	return out
}

// snapshot copies the fields exposed to the following record as its
// "previous record" view. Derived fields and audit flags are excluded so the
// snapshot stays stable across re-derivations.
func (r *Record) snapshot() *Record {
	return &Record{
		VacID:          r.VacID,
		RefID:          r.RefID,
		PersonID:       r.PersonID,
		CanonicalID:    r.CanonicalID,
		ServiceID:      r.ServiceID,
		ServiceType:    r.ServiceType,
		PathwayLevel:   r.PathwayLevel,
		FilledDt:       r.FilledDt,
		VacEndDt:       r.VacEndDt,
		MovedOutDt:     r.MovedOutDt,
		NotificationDt: r.NotificationDt,
		EndReason:      r.EndReason,
		StartDt:        r.StartDt,
		EndDt:          r.EndDt,
	}
}

// Sort re-establishes the canonical order: person, end date (open stays
// last), start date, then the raw tie-break dates. Every stage depends on
// this order and must call Sort (or Derive) after moving any date.
func (t Table) Sort() {
	sort.SliceStable(t, func(i, j int) bool {
		a, b := t[i], t[j]
		if a.CanonicalID != b.CanonicalID {
			return a.CanonicalID < b.CanonicalID
		}
		if c := compareTime(a.EndDt, b.EndDt); c != 0 {
			return c < 0
		}
		if c := compareTime(a.StartDt, b.StartDt); c != 0 {
			return c < 0
		}
		if c := compareTime(a.FilledDt, b.FilledDt); c != 0 {
			return c < 0
		}
		if c := compareTime(a.VacEndDt, b.VacEndDt); c != 0 {
			return c < 0
		}
		return compareTime(a.NotificationDt, b.NotificationDt) < 0
	})
}

// compareTime orders nil (unknown/open) after any concrete time.
func compareTime(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.Before(*b):
		return -1
	case b.Before(*a):
		return 1
	}
	return 0
}

// durationDays floors to whole days, so -2h counts as -1 day. Gap and
// threshold comparisons all run on whole days.
func durationDays(d time.Duration) int {
	return int(math.Floor(d.Hours() / 24))
}

// GapDays returns the record's gap in whole days, or false when the gap is
// undefined (first record for the person, or an open previous record).
func (r *Record) GapDays() (int, bool) {
	if r.Gap == nil {
		return 0, false
	}
	return durationDays(*r.Gap), true
}
