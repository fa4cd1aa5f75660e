package corrections

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/housinglink/pathways/pkg/placements"
	"gopkg.in/yaml.v3"
)

// Kind identifies what a correction overrides.
type Kind string

const (
	KindStartDate Kind = "start-date"
	KindEndDate   Kind = "end-date"
	KindEndReason Kind = "end-reason"
	KindServiceID Kind = "service-id"
	KindDelete    Kind = "delete"
	KindRelocate  Kind = "relocate"
)

// applyOrder is fixed: field overrides first, deletions and relocations
// last, so an override on a record that is later removed is harmless.
var applyOrder = []Kind{
	KindStartDate,
	KindEndDate,
	KindEndReason,
	KindServiceID,
	KindDelete,
	KindRelocate,
}

// Correction is one manual point-fix, identified by the vacancy id it
// targets. Assumption marks fixes that could not be fully verified against
// the source database; Note records why the fix exists.
type Correction struct {
	Kind       Kind   `yaml:"kind" json:"kind"`
	VacID      int64  `yaml:"vac_id" json:"vac_id"`
	Value      string `yaml:"value,omitempty" json:"value,omitempty"`
	Assumption bool   `yaml:"assumption,omitempty" json:"assumption,omitempty"`
	Note       string `yaml:"note,omitempty" json:"note,omitempty"`
}

// Catalog is an ordered collection of corrections, applied kind by kind.
type Catalog struct {
	byKind map[Kind][]Correction
	total  int
}

// NewCatalog validates every entry up front: unknown kinds, unparseable
// dates and service ids are configuration bugs and refuse to load.
func NewCatalog(entries []Correction) (*Catalog, error) {
	byKind := make(map[Kind][]Correction)
	for i, e := range entries {
		switch e.Kind {
		case KindStartDate, KindEndDate:
			if _, err := parseDate(e.Value); err != nil {
				return nil, fmt.Errorf("correction %d (vac %d): bad date %q: %w", i, e.VacID, e.Value, err)
			}
		case KindEndReason:
			if e.Value == "" {
				return nil, fmt.Errorf("correction %d (vac %d): end reason override needs a value", i, e.VacID)
			}
		case KindServiceID:
			if _, err := strconv.ParseInt(e.Value, 10, 64); err != nil {
				return nil, fmt.Errorf("correction %d (vac %d): bad service id %q", i, e.VacID, e.Value)
			}
		case KindDelete, KindRelocate:
			if e.Value != "" {
				return nil, fmt.Errorf("correction %d (vac %d): %s takes no value", i, e.VacID, e.Kind)
			}
		default:
			return nil, fmt.Errorf("correction %d (vac %d): unknown kind %q", i, e.VacID, e.Kind)
		}
		byKind[e.Kind] = append(byKind[e.Kind], e)
	}
	return &Catalog{byKind: byKind, total: len(entries)}, nil
}

// Load reads a correction list from YAML, or returns the default catalog
// when no path is given.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return NewCatalog(DefaultCorrections())
	}
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	var entries []Correction
	if err := yaml.Unmarshal(content, &entries); err != nil {
		return nil, err
	}
	return NewCatalog(entries)
}

// Len returns the number of corrections in the catalog.
func (c *Catalog) Len() int {
	return c.total
}

// Result of applying a catalog. Relocated holds records moved to the side
// table, with their other corrections already applied; they are retained for
// audit, never discarded. Unmatched counts corrections whose target id was
// not present. Applying those is a silent no-op, but the count is surfaced so
// drift between catalog and data stays visible.
type Result struct {
	Corrected placements.Table
	Relocated placements.Table
	Unmatched int
}

// Apply runs the catalog against a table, copy-on-write. With
// includeAssumptions false, corrections flagged as assumptions are skipped.
func (c *Catalog) Apply(t placements.Table, includeAssumptions bool) Result {
	out := t.Clone()
	index := make(map[int64]*placements.Record, len(out))
	for _, r := range out {
		index[r.VacID] = r
	}

	res := Result{}
	removed := make(map[int64]bool)
	moved := make(map[int64]bool)

	for _, kind := range applyOrder {
		for _, e := range c.byKind[kind] {
			if e.Assumption && !includeAssumptions {
				continue
			}
			r, ok := index[e.VacID]
			if !ok || removed[r.VacID] {
				res.Unmatched++
				continue
			}
			switch kind {
			case KindStartDate:
				dt, _ := parseDate(e.Value)
				r.StartDt = &dt
				r.FilledDt = &dt
			case KindEndDate:
				dt, _ := parseDate(e.Value)
				r.EndDt = &dt
				r.MovedOutDt = &dt
			case KindEndReason:
				r.EndReason = e.Value
			case KindServiceID:
				id, _ := strconv.ParseInt(e.Value, 10, 64)
				r.ServiceID = id
			case KindDelete:
				removed[r.VacID] = true
			case KindRelocate:
				moved[r.VacID] = true
			}
		}
	}

	res.Corrected = make(placements.Table, 0, len(out))
	for _, r := range out {
		switch {
		case removed[r.VacID]:
			// dropped entirely
		case moved[r.VacID]:
			res.Relocated = append(res.Relocated, r)
		default:
			res.Corrected = append(res.Corrected, r)
		}
	}
	return res
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
