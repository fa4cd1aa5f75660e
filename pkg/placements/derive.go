package placements

// Build projects raw vacancy fields into working placement dates and runs
// the first derivation. The start date is the date the vacancy was filled;
// the end date is the moved-out date, falling back to the vacancy end date
// when no move-out was recorded.
func Build(t Table) Table {
	out := t.Clone()
	for _, r := range out {
		r.StartDt = r.FilledDt
		if r.MovedOutDt != nil {
			r.EndDt = r.MovedOutDt
		} else {
			r.EndDt = r.VacEndDt
		}
	}
	return Derive(out)
}

// Derive sorts the table and recomputes every derived field: duration,
// per-person move count, the previous-record snapshot, and the gap since
// the previous record. It is a projection: deriving an already-derived
// table yields the same result as deriving the raw one.
func Derive(t Table) Table {
	out := t.Clone()
	out.Sort()

	counts := make(map[int64]int, len(out))
	for _, r := range out {
		counts[r.CanonicalID]++
	}

	var prev *Record
	for _, r := range out {
		r.Moves = counts[r.CanonicalID] - 1

		r.Duration = nil
		if r.StartDt != nil && r.EndDt != nil {
			d := r.EndDt.Sub(*r.StartDt)
			r.Duration = &d
		}

		r.Prev = nil
		r.Gap = nil
		if prev != nil && prev.CanonicalID == r.CanonicalID {
			r.Prev = prev.snapshot()
			if r.StartDt != nil && prev.EndDt != nil {
				g := r.StartDt.Sub(*prev.EndDt)
				r.Gap = &g
			}
		}
		prev = r
	}
	return out
}

// StripDerived clears everything Derive computes, returning the table to
// its pre-derivation shape. Used as the reset step before re-running the
// route stages on a filtered subset.
func StripDerived(t Table) Table {
	out := t.Clone()
	for _, r := range out {
		r.Duration = nil
		r.Gap = nil
		r.Moves = 0
		r.Prev = nil
	}
	return out
}
