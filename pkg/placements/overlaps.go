package placements

import "time"

// InternalTransfer is the end reason services record when a person moves
// directly between two of their placements.
const InternalTransfer = "INTERNAL TRANSFER"

// ResolveOverlaps eliminates negative gaps between consecutive placements of
// the same person. The administrative rule is that a new placement starts
// when the old one ends; services frequently backdate the new placement
// instead. Three passes, each followed by a re-sort and gap re-derivation:
//
//  1. un-backdate moves following an internal transfer,
//  2. un-backdate moves within the same service,
//  3. truncate the older placement's end date to the newer one's start date.
//
// Passes 1 and 2 trust the newer record's stated reason or service to infer
// the boundary; pass 3 is the unconditional fallback. Any gap still negative
// after pass 3 is clamped to zero.
func ResolveOverlaps(t Table) Table {
	out := Derive(t)

	out = unbackdate(out, func(r *Record) bool {
		return r.Prev.EndReason == InternalTransfer
	})

	out = unbackdate(out, func(r *Record) bool {
		return r.Prev.ServiceID == r.ServiceID
	})

	// Remaining overlaps: pull the older record's end date back. Decisions
	// use the gaps derived before this pass so one truncation cannot cascade
	// into its neighbours within the same sweep.
	for i, r := range out {
		if i+1 >= len(out) {
			break
		}
		next := out[i+1]
		if next.CanonicalID != r.CanonicalID {
			continue
		}
		if days, ok := next.GapDays(); ok && days < 0 {
			r.EndDt = next.StartDt
			r.MovedOutDt = next.StartDt
			r.OverlapRemoved = true
		}
	}
	out = Derive(out)

	// Truncation closes every pairwise overlap it saw, but moving end dates
	// can reorder a person's chain and expose a new adjacent pair. Never
	// represent a negative gap: clamp and flag for audit.
	for _, r := range out {
		if days, ok := r.GapDays(); ok && days < 0 {
			zero := time.Duration(0)
			r.Gap = &zero
			r.OverlapRemoved = true
		}
	}
	return out
}

// unbackdate moves a record's start date up to its predecessor's end date
// wherever the predecessor matches and the gap is negative, then re-derives
// so the next pass sees fresh ordering and gaps.
func unbackdate(t Table, match func(*Record) bool) Table {
	for _, r := range t {
		if r.Prev == nil {
			continue
		}
		days, ok := r.GapDays()
		if !ok || days >= 0 {
			continue
		}
		if match(r) {
			r.StartDt = r.Prev.EndDt
			r.FilledDt = r.Prev.EndDt
			r.Unbackdated = true
		}
	}
	return Derive(t)
}
