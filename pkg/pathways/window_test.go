package pathways

import (
	"testing"
	"time"

	"github.com/housinglink/pathways/pkg/placements"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func rec(vacID, person int64, start, end *time.Time, svcType string) *placements.Record {
	return &placements.Record{
		VacID:       vacID,
		PersonID:    person,
		CanonicalID: person,
		ServiceID:   1,
		ServiceType: svcType,
		FilledDt:    start,
		MovedOutDt:  end,
	}
}

func mustWindow(t *testing.T, start, end string, types []string) WindowConfig {
	t.Helper()
	w, err := ParseWindow(start, end, types)
	if err != nil {
		t.Fatalf("failed to parse window: %v", err)
	}
	return w
}

func TestSliceKeepsPlacementsTouchingTheWindow(t *testing.T) {
	w := mustWindow(t, "2018-01-01", "2020-12-31", nil)

	in := placements.Build(placements.Table{
		rec(1, 10, date(2016, 1, 1), date(2017, 6, 1), ""),  // ended before
		rec(2, 10, date(2017, 6, 1), date(2018, 3, 1), ""),  // spans the start
		rec(3, 10, date(2019, 1, 1), nil, ""),               // open inside
		rec(4, 11, date(2021, 2, 1), date(2021, 6, 1), ""),  // starts after
		rec(5, 11, date(2020, 11, 1), date(2022, 1, 1), ""), // spans the end
	})

	out := Slice(in, w)

	kept := make(map[int64]bool)
	for _, r := range out {
		kept[r.VacID] = true
	}
	for _, want := range []int64{2, 3, 5} {
		if !kept[want] {
			t.Fatalf("vac %d should be in the window, kept %v", want, kept)
		}
	}
	if kept[1] || kept[4] {
		t.Fatalf("placements outside the window kept: %v", kept)
	}
}

func TestSliceFiltersServiceTypes(t *testing.T) {
	w := mustWindow(t, "2018-01-01", "2020-12-31", []string{"Accommodation"})

	in := placements.Build(placements.Table{
		rec(1, 10, date(2019, 1, 1), date(2019, 6, 1), "Accommodation"),
		rec(2, 10, date(2019, 6, 1), date(2019, 9, 1), "Floating Support"),
	})

	out := Slice(in, w)

	if len(out) != 1 || out[0].VacID != 1 {
		t.Fatalf("expected only the accommodation placement, got %d records", len(out))
	}
}

func TestParseWindowRejectsInvertedRange(t *testing.T) {
	if _, err := ParseWindow("2020-01-01", "2019-01-01", nil); err == nil {
		t.Fatal("expected inverted window to be rejected")
	}
}
