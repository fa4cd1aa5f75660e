package placements

import "testing"

func TestResolveOverlapsUnbackdatesInternalTransfers(t *testing.T) {
	in := Build(Table{
		rec(1, 10, date(2020, 1, 1), date(2020, 2, 1), InternalTransfer),
		rec(2, 10, date(2020, 1, 25), date(2020, 3, 1), ""),
	})

	out := ResolveOverlaps(in)

	moved := out[1]
	if moved.VacID != 2 {
		t.Fatalf("unexpected order, got vac %d second", moved.VacID)
	}
	if !moved.StartDt.Equal(*date(2020, 2, 1)) {
		t.Fatalf("expected start pulled up to 2020-02-01, got %v", moved.StartDt)
	}
	if !moved.Unbackdated {
		t.Fatal("expected the un-backdated flag")
	}
	if days, ok := moved.GapDays(); !ok || days != 0 {
		t.Fatalf("expected zero gap after un-backdating, got %d", days)
	}
}

func TestResolveOverlapsUnbackdatesSameService(t *testing.T) {
	a := rec(1, 10, date(2020, 1, 1), date(2020, 2, 1), "Other (Planned)")
	b := rec(2, 10, date(2020, 1, 20), date(2020, 3, 1), "")
	a.ServiceID = 7
	b.ServiceID = 7

	out := ResolveOverlaps(Build(Table{a, b}))

	if !out[1].Unbackdated {
		t.Fatal("expected same-service overlap to be un-backdated")
	}
	if !out[1].StartDt.Equal(*date(2020, 2, 1)) {
		t.Fatalf("expected start 2020-02-01, got %v", out[1].StartDt)
	}
}

func TestResolveOverlapsTruncatesUnexplainedOverlap(t *testing.T) {
	a := rec(1, 10, date(2020, 1, 1), date(2020, 2, 10), "Evicted (Unplanned)")
	b := rec(2, 10, date(2020, 2, 1), date(2020, 3, 1), "")
	a.ServiceID = 1
	b.ServiceID = 2

	out := ResolveOverlaps(Build(Table{a, b}))

	byVac := make(map[int64]*Record)
	for _, r := range out {
		byVac[r.VacID] = r
	}
	if !byVac[1].EndDt.Equal(*date(2020, 2, 1)) {
		t.Fatalf("expected older placement truncated to 2020-02-01, got %v", byVac[1].EndDt)
	}
	if !byVac[1].OverlapRemoved {
		t.Fatal("expected the overlap-removed flag on the truncated record")
	}
	if byVac[2].Unbackdated {
		t.Fatal("the newer record's start must not move")
	}
}

func TestResolveOverlapsLeavesNoNegativeGaps(t *testing.T) {
	in := Build(Table{
		rec(1, 10, date(2020, 1, 1), date(2020, 3, 1), InternalTransfer),
		rec(2, 10, date(2020, 2, 1), date(2020, 4, 1), ""),
		rec(3, 10, date(2020, 3, 15), date(2020, 5, 1), "Other (Unplanned)"),
		rec(4, 11, date(2019, 1, 1), date(2019, 6, 1), ""),
		rec(5, 11, date(2019, 4, 1), nil, ""),
	})

	out := ResolveOverlaps(in)

	for _, r := range out {
		if days, ok := r.GapDays(); ok && days < 0 {
			t.Fatalf("vac %d still has a negative gap of %d days", r.VacID, days)
		}
	}
}
