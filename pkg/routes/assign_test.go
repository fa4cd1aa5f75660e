package routes

import (
	"testing"
	"time"

	"github.com/housinglink/pathways/pkg/placements"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func rec(vacID, person int64, start, end *time.Time, endReason string) *placements.Record {
	return &placements.Record{
		VacID:       vacID,
		PersonID:    person,
		CanonicalID: person,
		ServiceID:   1,
		FilledDt:    start,
		MovedOutDt:  end,
		EndReason:   endReason,
	}
}

func TestAssignSplitsRoutesAtGaps(t *testing.T) {
	in := placements.Build(placements.Table{
		rec(1, 10, date(2020, 1, 1), date(2020, 1, 10), "INTERNAL TRANSFER"),
		rec(2, 10, date(2020, 1, 10), date(2020, 1, 20), "Evicted (Unplanned)"),
		rec(3, 10, date(2020, 1, 25), date(2020, 1, 30), "INTERNAL TRANSFER"),
		rec(4, 10, date(2020, 1, 30), nil, ""),
	})

	out := Assign(in)

	got := make([]int64, len(out))
	for i, r := range out {
		got[i] = r.RouteID
	}
	want := []int64{1, 1, 2, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("route ids %v, want %v", got, want)
		}
	}
}

func TestAssignNeverSpansPeople(t *testing.T) {
	in := placements.Build(placements.Table{
		rec(1, 10, date(2020, 1, 1), date(2020, 1, 10), "Evicted (Unplanned)"),
		rec(2, 11, date(2020, 1, 10), date(2020, 1, 20), ""),
	})

	out := Assign(in)

	if out[0].RouteID == out[1].RouteID {
		t.Fatal("two people share a route id")
	}
	if Count(out) != 2 {
		t.Fatalf("expected 2 routes, got %d", Count(out))
	}
}
