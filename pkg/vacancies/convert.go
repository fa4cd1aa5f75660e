package vacancies

import (
	"fmt"
	"strings"
	"time"

	"github.com/housinglink/pathways/pkg/placements"
)

// dateRepairs fixes hand-typed date values observed in the feed. The repair
// runs before parsing so the stored raw value is untouched.
var dateRepairs = map[string]string{
	"07/02/1018": "07/02/2018",
	"29/01/0201": "29/01/2016",
}

// dateLayouts in trial order. The feed is day-first; ISO forms appear when
// rows arrive through the event bus instead of the bulk extract.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04",
	"02/01/2006",
}

// ParseDate parses a source date string, repairing known typos first.
// An empty string is a missing date, not an error.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if fixed, ok := dateRepairs[s]; ok {
		s = fixed
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("unparseable date %q", s)
}

// identityOverrides lists client ids whose duplicate links are known to be
// wrong, found by hand-checking names and dates of birth. These clients keep
// their own id regardless of what the link table says.
var identityOverrides = map[int64]bool{
	321:   true,
	10445: true,
	932:   true,
	25304: true,
	5890:  true,
	29148: true,
}

// CanonicalID resolves a client id to the id the person's placements are
// grouped under: the override table wins, then the duplicate link, then the
// client id itself.
func CanonicalID(cliID int64, links map[int64]int64) int64 {
	if identityOverrides[cliID] {
		return cliID
	}
	if canonical, ok := links[cliID]; ok && canonical != 0 {
		return canonical
	}
	return cliID
}

// ToRecords converts raw vacancies into the placement table, parsing dates
// and resolving duplicate identities. A vacancy with an unparseable date
// fails the whole conversion; bad data must be corrected at the source or in
// the correction catalog, never dropped silently.
func ToRecords(vacs []Vacancy, links map[int64]int64) (placements.Table, error) {
	out := make(placements.Table, 0, len(vacs))
	for i := range vacs {
		v := &vacs[i]
		r := &placements.Record{
			VacID:        v.VacID,
			RefID:        v.RefID,
			PersonID:     v.CliID,
			CanonicalID:  CanonicalID(v.CliID, links),
			ServiceID:    v.SvcID,
			ServiceType:  v.SvcType,
			PathwayLevel: v.PathwayLevel,
			EndReason:    strings.TrimSpace(v.EndReason),
		}
		var err error
		if r.FilledDt, err = ParseDate(v.FilledDt); err != nil {
			return nil, fmt.Errorf("vacancy %d: filled date: %w", v.VacID, err)
		}
		if r.VacEndDt, err = ParseDate(v.VacEndDt); err != nil {
			return nil, fmt.Errorf("vacancy %d: end date: %w", v.VacID, err)
		}
		if r.MovedOutDt, err = ParseDate(v.MovedOutDt); err != nil {
			return nil, fmt.Errorf("vacancy %d: moved out date: %w", v.VacID, err)
		}
		if r.NotificationDt, err = ParseDate(v.NotificationDt); err != nil {
			return nil, fmt.Errorf("vacancy %d: notification date: %w", v.VacID, err)
		}
		out = append(out, r)
	}
	return out, nil
}
