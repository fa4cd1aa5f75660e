package placements

import "testing"

func TestReduceGapsClosesShortAdministrativeGaps(t *testing.T) {
	in := Build(Table{
		rec(1, 10, date(2020, 1, 1), date(2020, 2, 1), InternalTransfer),
		rec(2, 10, date(2020, 2, 6), date(2020, 3, 1), ""),
	})

	out := ReduceGaps(in, DefaultGapThresholds())

	moved := out[1]
	if !moved.GapRemoved {
		t.Fatal("expected a 5 day gap after an internal transfer to be closed")
	}
	if !moved.StartDt.Equal(*date(2020, 2, 1)) {
		t.Fatalf("expected start pulled back to 2020-02-01, got %v", moved.StartDt)
	}
	if days, ok := moved.GapDays(); !ok || days != 0 {
		t.Fatalf("expected zero gap, got %d", days)
	}
}

func TestReduceGapsKeepsGapsOverThreshold(t *testing.T) {
	in := Build(Table{
		rec(1, 10, date(2020, 1, 1), date(2020, 2, 1), InternalTransfer),
		rec(2, 10, date(2020, 2, 15), date(2020, 3, 1), ""),
	})

	out := ReduceGaps(in, DefaultGapThresholds())

	if out[1].GapRemoved {
		t.Fatal("a 14 day gap exceeds the internal transfer threshold of 8")
	}
	if days, _ := out[1].GapDays(); days != 14 {
		t.Fatalf("gap must be untouched, got %d", days)
	}
}

func TestReduceGapsIgnoresReasonsOutsideTheTable(t *testing.T) {
	in := Build(Table{
		rec(1, 10, date(2020, 1, 1), date(2020, 2, 1), "Evicted (Unplanned)"),
		rec(2, 10, date(2020, 2, 3), date(2020, 3, 1), ""),
	})

	out := ReduceGaps(in, DefaultGapThresholds())

	if out[1].GapRemoved {
		t.Fatal("an eviction is a real break, not an administrative gap")
	}
}

func TestLoadGapThresholdsDefaults(t *testing.T) {
	thresholds, err := LoadGapThresholds("")
	if err != nil {
		t.Fatalf("failed to load defaults: %v", err)
	}
	if thresholds[InternalTransfer] != 8 {
		t.Fatalf("expected internal transfer threshold 8, got %d", thresholds[InternalTransfer])
	}
	if len(thresholds) != 14 {
		t.Fatalf("expected 14 reasons, got %d", len(thresholds))
	}
}
