package routes

import "github.com/housinglink/pathways/pkg/placements"

// Classify stamps every placement with the outcome of the route it belongs
// to. The route's defining end record is its tail in canonical order; the
// tail's end reason is looked up in the vocabulary and the resulting
// (category, planned) pair is copied backward onto every earlier record in
// the same (person, route) group. Routes that are still open, have no end
// reason, or carry a reason outside the vocabulary are labelled Unclassified.
//
// The upstream sort order is authoritative for which record is the tail;
// Classify re-derives rather than re-deciding ties itself.
func (v *Vocabulary) Classify(t placements.Table) placements.Table {
	out := placements.Derive(t)
	start := 0
	for i := 1; i <= len(out); i++ {
		if i < len(out) &&
			out[i].CanonicalID == out[start].CanonicalID &&
			out[i].RouteID == out[start].RouteID {
			continue
		}
		v.classifyGroup(out[start:i])
		start = i
	}
	return out
}

func (v *Vocabulary) classifyGroup(group placements.Table) {
	tail := group[len(group)-1]
	outcome := Outcome{Category: Unclassified, Planned: Unknown}
	if tail.EndDt != nil && tail.EndReason != "" {
		if mapped, ok := v.Lookup(tail.EndReason); ok {
			outcome = mapped
		}
	}
	for i := len(group) - 1; i >= 0; i-- {
		group[i].RouteEndCategory = outcome.Category
		group[i].RouteEndPlanned = outcome.Planned
	}
}

// Count returns the number of distinct routes in the table.
func Count(t placements.Table) int {
	seen := make(map[int64]struct{})
	for _, r := range t {
		if r.RouteID != 0 {
			seen[r.RouteID] = struct{}{}
		}
	}
	return len(seen)
}
