package vacancies

import (
	"testing"
	"time"
)

func TestParseDateHandlesSourceFormats(t *testing.T) {
	cases := map[string]time.Time{
		"05/06/2017":       time.Date(2017, 6, 5, 0, 0, 0, 0, time.UTC),
		"2017-06-05":       time.Date(2017, 6, 5, 0, 0, 0, 0, time.UTC),
		"07/02/1018":       time.Date(2018, 2, 7, 0, 0, 0, 0, time.UTC),
		"29/01/0201":       time.Date(2016, 1, 29, 0, 0, 0, 0, time.UTC),
		"05/06/2017 14:30": time.Date(2017, 6, 5, 14, 30, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := ParseDate(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("%q: got %v, want %v", in, got, want)
		}
	}

	if got, err := ParseDate(""); err != nil || got != nil {
		t.Fatalf("empty string is a missing date, got %v, %v", got, err)
	}
	if _, err := ParseDate("not a date"); err == nil {
		t.Fatal("expected an error for garbage input")
	}
}

func TestCanonicalIDResolution(t *testing.T) {
	links := map[int64]int64{
		200: 100,
		321: 9999, // wrong link, overridden by hand-checking
	}

	if got := CanonicalID(200, links); got != 100 {
		t.Fatalf("linked duplicate: got %d, want 100", got)
	}
	if got := CanonicalID(300, links); got != 300 {
		t.Fatalf("unlinked client keeps own id: got %d", got)
	}
	if got := CanonicalID(321, links); got != 321 {
		t.Fatalf("override must beat the link table: got %d", got)
	}
}

func TestToRecordsConvertsAndResolvesIdentity(t *testing.T) {
	vacs := []Vacancy{
		{
			VacID:      1,
			CliID:      200,
			SvcID:      5,
			SvcType:    "Accommodation",
			FilledDt:   "01/02/2019",
			MovedOutDt: "01/08/2019",
			EndReason:  "Evicted (Unplanned) ",
		},
		{
			VacID:    2,
			CliID:    100,
			SvcID:    6,
			FilledDt: "2019-09-01",
		},
	}
	links := map[int64]int64{200: 100}

	table, err := ToRecords(vacs, links)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("expected 2 records, got %d", len(table))
	}

	if table[0].CanonicalID != 100 || table[1].CanonicalID != 100 {
		t.Fatal("duplicate identities must share a canonical id")
	}
	if table[0].PersonID != 200 {
		t.Fatal("the original client id must be preserved")
	}
	if !table[0].FilledDt.Equal(time.Date(2019, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("day-first parse failed: %v", table[0].FilledDt)
	}
	if table[0].EndReason != "Evicted (Unplanned)" {
		t.Fatalf("end reason not trimmed: %q", table[0].EndReason)
	}
	if table[1].MovedOutDt != nil {
		t.Fatal("missing dates must stay nil")
	}
}

func TestToRecordsFailsOnUnparseableDates(t *testing.T) {
	vacs := []Vacancy{{VacID: 1, CliID: 1, FilledDt: "junk"}}
	if _, err := ToRecords(vacs, nil); err == nil {
		t.Fatal("expected conversion to fail")
	}
}
