package placements

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GapThresholds maps the previous placement's end reason to the largest gap
// (in days) that still counts as a continuation of the same stay. The
// thresholds differ per reason because planned, unplanned and internal
// transitions have different expected processing delays.
type GapThresholds map[string]int

// DefaultGapThresholds is the operational threshold table.
func DefaultGapThresholds() GapThresholds {
	return GapThresholds{
		"Moved into Supported Housing (Planned)":                                8,
		"Moved within Supported Housing (Same Pathway)":                         31,
		"Other (Unplanned)":                                                     1,
		"Moved into HSR Accom _ Lower level (Planned)":                          8,
		"INTERNAL TRANSFER":                                                     8,
		"Other (Planned)":                                                       1,
		"Moved into HSR Accom _ High level (Planned)":                           8,
		"Moved within Supported Housing (Different Pathway)":                    20,
		"Moved into HSR Accom _ Same level (Planned)":                           14,
		"Moved to Substance Misuse Pathway (Planned)":                           31,
		"Moved into HSR Accom _ High level (Unplanned)":                         31,
		"(Pathway 4 Only) Moved to Level 1, 2 or 3 Supported Housing (Planned)": 31,
		"Moved into HSR Accom _ Same level (Unplanned)":                         31,
		"(Pathway 4 Only) Moved to Level 4 Supported Housing (Planned)":         31,
	}
}

// LoadGapThresholds reads a reason -> days table from YAML, or returns the
// defaults when no path is given.
func LoadGapThresholds(path string) (GapThresholds, error) {
	if path == "" {
		return DefaultGapThresholds(), nil
	}
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	var thresholds GapThresholds
	if err := yaml.Unmarshal(content, &thresholds); err != nil {
		return nil, err
	}
	if len(thresholds) == 0 {
		return nil, fmt.Errorf("gap threshold table empty")
	}
	for reason, days := range thresholds {
		if days <= 0 {
			return nil, fmt.Errorf("gap threshold for %q must be positive, got %d", reason, days)
		}
	}
	return thresholds, nil
}

// ReduceGaps closes short administrative gaps: where the previous placement
// ended for a reason in the threshold table and the gap is within that
// reason's threshold, the record's start date is pulled back to the previous
// end date.
func ReduceGaps(t Table, thresholds GapThresholds) Table {
	out := Derive(t)
	for _, r := range out {
		if r.Prev == nil {
			continue
		}
		limit, ok := thresholds[r.Prev.EndReason]
		if !ok {
			continue
		}
		days, ok := r.GapDays()
		if !ok || days <= 0 || days > limit {
			continue
		}
		r.StartDt = r.Prev.EndDt
		r.FilledDt = r.Prev.EndDt
		r.GapRemoved = true
	}
	return Derive(out)
}
