package pathways

import (
	"testing"
	"time"

	"github.com/housinglink/pathways/pkg/placements"
	"github.com/housinglink/pathways/pkg/routes"
)

func classified(t *testing.T, in placements.Table) placements.Table {
	t.Helper()
	vocab, err := routes.LoadVocabulary("")
	if err != nil {
		t.Fatalf("failed to load vocabulary: %v", err)
	}
	return vocab.Classify(routes.Assign(in))
}

func TestStableReturnsDetectsAReturn(t *testing.T) {
	end := func(vacID, person int64, start, endDt *time.Time, reason string) *placements.Record {
		r := rec(vacID, person, start, endDt, "")
		r.EndReason = reason
		return r
	}

	// Person 10 moves to social housing, then returns 4 months later.
	in := classified(t, placements.Build(placements.Table{
		end(1, 10, date(2019, 1, 1), date(2019, 6, 1), "Moved to RSL Tenancy (Planned)"),
		end(2, 10, date(2019, 10, 1), nil, ""),
	}))

	windowEnd := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)
	returns := StableReturns(in, windowEnd)

	if len(returns) != 1 {
		t.Fatalf("expected 1 closed route, got %d", len(returns))
	}
	rr := returns[0]
	if !rr.Stable {
		t.Fatal("a social housing move is a stable outcome")
	}
	if rr.Returns["90 days"] != "No" {
		t.Fatalf("return was after 90 days, got %q", rr.Returns["90 days"])
	}
	if rr.Returns["6 months"] != "Yes" {
		t.Fatalf("return was within 6 months, got %q", rr.Returns["6 months"])
	}
	if rr.Returns["5 years"] != "Yes" {
		t.Fatalf("a return stays a return at longer horizons, got %q", rr.Returns["5 years"])
	}
}

func TestStableReturnsMarksUnreachedHorizons(t *testing.T) {
	end := func(vacID, person int64, start, endDt *time.Time, reason string) *placements.Record {
		r := rec(vacID, person, start, endDt, "")
		r.EndReason = reason
		return r
	}

	// Person left 6 months before the window end and never came back.
	in := classified(t, placements.Build(placements.Table{
		end(1, 10, date(2024, 1, 1), date(2024, 10, 30), "Renting Privately (Planned)"),
	}))

	windowEnd := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)
	returns := StableReturns(in, windowEnd)

	if len(returns) != 1 {
		t.Fatalf("expected 1 closed route, got %d", len(returns))
	}
	rr := returns[0]
	if rr.Returns["90 days"] != "No" {
		t.Fatalf("90 day horizon passed without a return, got %q", rr.Returns["90 days"])
	}
	if rr.Returns["2 years"] != NotYetReached {
		t.Fatalf("2 year horizon lies past the window, got %q", rr.Returns["2 years"])
	}
}

func TestStableReturnsSkipsOpenRoutes(t *testing.T) {
	in := classified(t, placements.Build(placements.Table{
		rec(1, 10, date(2024, 1, 1), nil, ""),
	}))

	returns := StableReturns(in, time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC))
	if len(returns) != 0 {
		t.Fatalf("open routes have no move to evaluate, got %d", len(returns))
	}
}

func TestCategoryTalliesCountRoutesOnce(t *testing.T) {
	end := func(vacID, person int64, start, endDt *time.Time, reason string) *placements.Record {
		r := rec(vacID, person, start, endDt, "")
		r.EndReason = reason
		return r
	}

	in := classified(t, placements.Build(placements.Table{
		end(1, 10, date(2019, 1, 1), date(2019, 3, 1), "INTERNAL TRANSFER"),
		end(2, 10, date(2019, 3, 1), date(2019, 6, 1), "Evicted (Unplanned)"),
		end(3, 11, date(2019, 1, 1), date(2019, 6, 1), "Moved to RSL Tenancy (Planned)"),
	}))

	tallies := CategoryTallies(in)

	if len(tallies) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(tallies))
	}
	// Destination categories lead the report.
	if tallies[0].Category != "To social housing" {
		t.Fatalf("expected To social housing first, got %q", tallies[0].Category)
	}
	for _, c := range tallies {
		if c.Count != 1 || c.Percent != 50 {
			t.Fatalf("each route counts once: %+v", c)
		}
	}
}
