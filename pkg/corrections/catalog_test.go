package corrections

import (
	"testing"
	"time"

	"github.com/housinglink/pathways/pkg/placements"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func table(vacIDs ...int64) placements.Table {
	out := make(placements.Table, 0, len(vacIDs))
	for _, id := range vacIDs {
		out = append(out, &placements.Record{
			VacID:       id,
			PersonID:    100,
			CanonicalID: 100,
			FilledDt:    date(2020, 1, 1),
			StartDt:     date(2020, 1, 1),
		})
	}
	return out
}

func TestApplyOverridesDates(t *testing.T) {
	catalog, err := NewCatalog([]Correction{
		{Kind: KindStartDate, VacID: 1, Value: "2020-02-03"},
		{Kind: KindEndDate, VacID: 1, Value: "2020-06-07"},
		{Kind: KindEndReason, VacID: 1, Value: "INTERNAL TRANSFER"},
	})
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	res := catalog.Apply(table(1), true)

	r := res.Corrected[0]
	if !r.StartDt.Equal(*date(2020, 2, 3)) || !r.FilledDt.Equal(*date(2020, 2, 3)) {
		t.Fatalf("start override missed: start %v filled %v", r.StartDt, r.FilledDt)
	}
	if !r.EndDt.Equal(*date(2020, 6, 7)) || !r.MovedOutDt.Equal(*date(2020, 6, 7)) {
		t.Fatalf("end override missed: end %v moved out %v", r.EndDt, r.MovedOutDt)
	}
	if r.EndReason != "INTERNAL TRANSFER" {
		t.Fatalf("end reason override missed: %q", r.EndReason)
	}
}

func TestApplyDeletesAndRelocates(t *testing.T) {
	catalog, err := NewCatalog([]Correction{
		{Kind: KindEndDate, VacID: 2, Value: "2020-06-07"},
		{Kind: KindDelete, VacID: 1},
		{Kind: KindRelocate, VacID: 2},
	})
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	res := catalog.Apply(table(1, 2, 3), true)

	if len(res.Corrected) != 1 || res.Corrected[0].VacID != 3 {
		t.Fatalf("expected only vac 3 to remain, got %d records", len(res.Corrected))
	}
	if len(res.Relocated) != 1 || res.Relocated[0].VacID != 2 {
		t.Fatalf("expected vac 2 on the side table")
	}
	if !res.Relocated[0].EndDt.Equal(*date(2020, 6, 7)) {
		t.Fatal("relocated record must keep its other corrections")
	}
}

func TestApplyCountsUnmatchedCorrections(t *testing.T) {
	catalog, err := NewCatalog([]Correction{
		{Kind: KindStartDate, VacID: 99, Value: "2020-02-03"},
		{Kind: KindDelete, VacID: 1},
		{Kind: KindEndReason, VacID: 1, Value: "INTERNAL TRANSFER"},
	})
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	res := catalog.Apply(table(1), true)

	// vac 99 is absent; the end reason override applied before the delete.
	if res.Unmatched != 1 {
		t.Fatalf("expected 1 unmatched correction, got %d", res.Unmatched)
	}
	if len(res.Corrected) != 0 {
		t.Fatalf("vac 1 should be deleted, got %d records", len(res.Corrected))
	}
}

func TestApplySkipsAssumptionsWhenExcluded(t *testing.T) {
	catalog, err := NewCatalog([]Correction{
		{Kind: KindStartDate, VacID: 1, Value: "2020-02-03", Assumption: true},
		{Kind: KindDelete, VacID: 2, Assumption: true},
	})
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	res := catalog.Apply(table(1, 2), false)

	if len(res.Corrected) != 2 {
		t.Fatalf("assumption delete applied, got %d records", len(res.Corrected))
	}
	if !res.Corrected[0].StartDt.Equal(*date(2020, 1, 1)) {
		t.Fatal("assumption override applied with assumptions excluded")
	}
	if res.Unmatched != 0 {
		t.Fatalf("skipped assumptions must not count as unmatched, got %d", res.Unmatched)
	}
}

func TestApplyTwiceMatchesOnce(t *testing.T) {
	catalog, err := NewCatalog([]Correction{
		{Kind: KindStartDate, VacID: 1, Value: "2020-02-03"},
		{Kind: KindEndReason, VacID: 2, Value: "INTERNAL TRANSFER"},
		{Kind: KindRelocate, VacID: 3},
	})
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	once := catalog.Apply(table(1, 2, 3), false)
	twice := catalog.Apply(once.Corrected, false)

	if len(twice.Corrected) != len(once.Corrected) {
		t.Fatal("second application changed the table size")
	}
	for i := range once.Corrected {
		a, b := once.Corrected[i], twice.Corrected[i]
		if a.VacID != b.VacID || !a.StartDt.Equal(*b.StartDt) || a.EndReason != b.EndReason {
			t.Fatalf("second application changed vac %d", a.VacID)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	catalog, err := NewCatalog([]Correction{
		{Kind: KindStartDate, VacID: 1, Value: "2021-09-09"},
	})
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}

	in := table(1)
	catalog.Apply(in, true)

	if !in[0].StartDt.Equal(*date(2020, 1, 1)) {
		t.Fatal("input table was mutated")
	}
}

func TestNewCatalogRejectsBadEntries(t *testing.T) {
	cases := []Correction{
		{Kind: KindStartDate, VacID: 1, Value: "05/06/2017"},
		{Kind: KindServiceID, VacID: 1, Value: "abc"},
		{Kind: KindDelete, VacID: 1, Value: "2020-01-01"},
		{Kind: KindEndReason, VacID: 1},
		{Kind: Kind("rename"), VacID: 1, Value: "x"},
	}
	for _, c := range cases {
		if _, err := NewCatalog([]Correction{c}); err == nil {
			t.Fatalf("expected %s correction %+v to be rejected", c.Kind, c)
		}
	}
}

func TestDefaultCatalogLoads(t *testing.T) {
	catalog, err := Load("")
	if err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}
	if catalog.Len() < 100 {
		t.Fatalf("default catalog suspiciously small: %d entries", catalog.Len())
	}
}
