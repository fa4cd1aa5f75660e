package pathways

import (
	"fmt"
	"time"

	"github.com/housinglink/pathways/pkg/placements"
)

// WindowConfig bounds the analysis period. A placement is in the window when
// it started on or before the window end and had not ended before the window
// start; ServiceTypes, when set, restricts to those service types.
type WindowConfig struct {
	Start        time.Time
	End          time.Time
	ServiceTypes []string
}

func ParseWindow(start, end string, serviceTypes []string) (WindowConfig, error) {
	s, err := time.Parse("2006-01-02", start)
	if err != nil {
		return WindowConfig{}, fmt.Errorf("window start: %w", err)
	}
	e, err := time.Parse("2006-01-02", end)
	if err != nil {
		return WindowConfig{}, fmt.Errorf("window end: %w", err)
	}
	if e.Before(s) {
		return WindowConfig{}, fmt.Errorf("window end %s before start %s", end, start)
	}
	return WindowConfig{Start: s, End: e, ServiceTypes: serviceTypes}, nil
}

// Slice filters a table down to the window. The result is a raw subset;
// gaps and route ids from the full table do not describe it, so callers
// re-run the route stages on it before reading anything derived.
func Slice(t placements.Table, w WindowConfig) placements.Table {
	types := make(map[string]bool, len(w.ServiceTypes))
	for _, st := range w.ServiceTypes {
		types[st] = true
	}

	out := make(placements.Table, 0, len(t))
	for _, r := range t.Clone() {
		if r.StartDt == nil || r.StartDt.After(w.End) {
			continue
		}
		if r.EndDt != nil && r.EndDt.Before(w.Start) {
			continue
		}
		if len(types) > 0 && !types[r.ServiceType] {
			continue
		}
		out = append(out, r)
	}
	return out
}
