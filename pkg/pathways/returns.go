package pathways

import (
	"time"

	"github.com/housinglink/pathways/pkg/placements"
	"github.com/housinglink/pathways/pkg/routes"
)

// NotYetReached marks a horizon that falls after the analysis window, where
// whether the person returned cannot be known yet.
const NotYetReached = "Not yet reached"

// returnOffsets are the horizons a stable move is checked against, shortest
// first.
var returnOffsets = []struct {
	Label string
	Add   func(time.Time) time.Time
}{
	{"90 days", func(t time.Time) time.Time { return t.AddDate(0, 0, 90) }},
	{"6 months", func(t time.Time) time.Time { return t.AddDate(0, 6, 0) }},
	{"15 months", func(t time.Time) time.Time { return t.AddDate(0, 15, 0) }},
	{"18 months", func(t time.Time) time.Time { return t.AddDate(0, 18, 0) }},
	{"2 years", func(t time.Time) time.Time { return t.AddDate(2, 0, 0) }},
	{"5 years", func(t time.Time) time.Time { return t.AddDate(5, 0, 0) }},
}

// stableCategories are the route outcomes counted as moves to settled
// accommodation. Custody, abandonment, death and data errors are excluded.
var stableCategories = map[string]bool{
	"To friends/family":     true,
	"To private rented":     true,
	"To social housing":     true,
	"To care/hospital":      true,
	"To sheltered":          true,
	"To external supported": true,
}

// RouteReturn reports, for one closed route, whether the person was back in
// supported housing within each horizon of the route's end.
type RouteReturn struct {
	CanonicalID int64             `json:"canonical_id"`
	RouteID     int64             `json:"route_id"`
	VacID       int64             `json:"vac_id"`
	EndDt       time.Time         `json:"end_dt"`
	EndCategory string            `json:"end_category"`
	Stable      bool              `json:"stable"`
	Returns     map[string]string `json:"returns"`
}

// StableReturns evaluates every closed route in the table. A horizon reads
// "Yes" when the person's next route started within it, "No" when the
// horizon passed without a return, and NotYetReached when the horizon lies
// beyond the window end. Still-open routes have no move to evaluate and are
// skipped.
func StableReturns(t placements.Table, windowEnd time.Time) []RouteReturn {
	derived := placements.Derive(t)

	type group struct {
		canonical int64
		routeID   int64
		tail      *placements.Record
		start     *time.Time
	}
	var groups []group
	startIdx := 0
	for i := 1; i <= len(derived); i++ {
		if i < len(derived) &&
			derived[i].CanonicalID == derived[startIdx].CanonicalID &&
			derived[i].RouteID == derived[startIdx].RouteID {
			continue
		}
		g := derived[startIdx:i]
		groups = append(groups, group{
			canonical: g[0].CanonicalID,
			routeID:   g[0].RouteID,
			tail:      g[len(g)-1],
			start:     g[0].StartDt,
		})
		startIdx = i
	}

	var out []RouteReturn
	for i, g := range groups {
		if g.tail.EndDt == nil {
			continue
		}
		end := *g.tail.EndDt

		var nextStart *time.Time
		if i+1 < len(groups) && groups[i+1].canonical == g.canonical {
			nextStart = groups[i+1].start
		}

		returns := make(map[string]string, len(returnOffsets))
		for _, offset := range returnOffsets {
			horizon := offset.Add(end)
			switch {
			case nextStart != nil:
				if horizon.Before(*nextStart) {
					returns[offset.Label] = "No"
				} else {
					returns[offset.Label] = "Yes"
				}
			case horizon.Before(windowEnd):
				returns[offset.Label] = "No"
			default:
				returns[offset.Label] = NotYetReached
			}
		}

		category := g.tail.RouteEndCategory
		if category == "" {
			category = routes.Unclassified
		}
		out = append(out, RouteReturn{
			CanonicalID: g.canonical,
			RouteID:     g.routeID,
			VacID:       g.tail.VacID,
			EndDt:       end,
			EndCategory: category,
			Stable:      stableCategories[category],
			Returns:     returns,
		})
	}
	return out
}
