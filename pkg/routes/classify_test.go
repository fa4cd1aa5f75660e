package routes

import (
	"testing"

	"github.com/housinglink/pathways/pkg/placements"
)

func TestClassifyBackfillsRouteOutcome(t *testing.T) {
	vocab, err := LoadVocabulary("")
	if err != nil {
		t.Fatalf("failed to load vocabulary: %v", err)
	}

	in := Assign(placements.Build(placements.Table{
		rec(1, 10, date(2020, 1, 1), date(2020, 1, 10), "INTERNAL TRANSFER"),
		rec(2, 10, date(2020, 1, 10), date(2020, 2, 1), "Evicted (Unplanned)"),
	}))

	out := vocab.Classify(in)

	for _, r := range out {
		if r.RouteEndCategory != "Evicted" {
			t.Fatalf("vac %d: expected Evicted, got %q", r.VacID, r.RouteEndCategory)
		}
		if r.RouteEndPlanned != Unplanned {
			t.Fatalf("vac %d: expected Unplanned, got %q", r.VacID, r.RouteEndPlanned)
		}
	}
}

func TestClassifyLabelsOpenRoutesUnclassified(t *testing.T) {
	vocab, err := LoadVocabulary("")
	if err != nil {
		t.Fatalf("failed to load vocabulary: %v", err)
	}

	in := Assign(placements.Build(placements.Table{
		rec(1, 10, date(2020, 1, 1), date(2020, 1, 10), "INTERNAL TRANSFER"),
		rec(2, 10, date(2020, 1, 10), nil, ""),
	}))

	out := vocab.Classify(in)

	for _, r := range out {
		if r.RouteEndCategory != Unclassified {
			t.Fatalf("vac %d: expected %q, got %q", r.VacID, Unclassified, r.RouteEndCategory)
		}
		if r.RouteEndPlanned != Unknown {
			t.Fatalf("vac %d: expected Unknown, got %q", r.VacID, r.RouteEndPlanned)
		}
	}
}

func TestClassifyLabelsUnknownReasonsUnclassified(t *testing.T) {
	vocab, err := LoadVocabulary("")
	if err != nil {
		t.Fatalf("failed to load vocabulary: %v", err)
	}

	in := Assign(placements.Build(placements.Table{
		rec(1, 10, date(2020, 1, 1), date(2020, 2, 1), "Some brand new reason"),
	}))

	out := vocab.Classify(in)

	if out[0].RouteEndCategory != Unclassified {
		t.Fatalf("expected %q, got %q", Unclassified, out[0].RouteEndCategory)
	}
}

func TestNewVocabularyRejectsDuplicateReasons(t *testing.T) {
	_, err := NewVocabulary(Grouped{
		"Evicted":  {Unplanned: {"Evicted (Unplanned)"}},
		"Departed": {Unplanned: {"Evicted (Unplanned)"}},
	})
	if err == nil {
		t.Fatal("expected duplicate reason to be rejected")
	}
}

func TestDefaultVocabularyIsConsistent(t *testing.T) {
	vocab, err := NewVocabulary(DefaultGrouped())
	if err != nil {
		t.Fatalf("default vocabulary invalid: %v", err)
	}
	if len(vocab.Categories()) != 13 {
		t.Fatalf("expected 13 categories, got %d", len(vocab.Categories()))
	}

	outcome, ok := vocab.Lookup("Moved to RSL Tenancy (Planned)")
	if !ok {
		t.Fatal("expected RSL tenancy move in the vocabulary")
	}
	if outcome.Category != "To social housing" || outcome.Planned != Planned {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
}
