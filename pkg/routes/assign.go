package routes

import "github.com/housinglink/pathways/pkg/placements"

// Assign gives every placement a route id: a dense integer, starting at 1,
// that increments at each record whose gap is undefined or non-zero and is
// inherited by the zero-gap records that follow. A person's first record
// always has an undefined gap, so routes never span people.
func Assign(t placements.Table) placements.Table {
	out := placements.Derive(t)
	var next int64 = 1
	var current int64
	for _, r := range out {
		if days, ok := r.GapDays(); !ok || days != 0 {
			current = next
			next++
		}
		r.RouteID = current
	}
	return out
}
