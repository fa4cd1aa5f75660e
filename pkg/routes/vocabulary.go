package routes

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Unclassified marks routes with no end date, no end reason, or a reason the
// vocabulary does not know.
const Unclassified = "[Not ended or invalid end reason]"

const (
	Planned   = "Planned"
	Unplanned = "Unplanned"
	Unknown   = "Unknown"
)

// Outcome is the coarse classification of a raw end reason.
type Outcome struct {
	Category string `json:"category"`
	Planned  string `json:"planned"`
}

// Grouped is the vocabulary's source-of-truth shape:
// category -> planned flag -> raw end reasons. Grouping by category keeps the
// table auditable; NewVocabulary flattens it and proves it is a function.
type Grouped map[string]map[string][]string

// Vocabulary is the closed end-reason vocabulary. Every raw end reason maps
// to exactly one (category, planned) pair; construction fails on duplicates.
type Vocabulary struct {
	reasons    map[string]Outcome
	categories []string
}

func NewVocabulary(grouped Grouped) (*Vocabulary, error) {
	if len(grouped) == 0 {
		return nil, fmt.Errorf("end reason vocabulary empty")
	}
	reasons := make(map[string]Outcome)
	categories := make([]string, 0, len(grouped))
	for category, byPlanned := range grouped {
		categories = append(categories, category)
		for planned, list := range byPlanned {
			for _, reason := range list {
				if existing, ok := reasons[reason]; ok {
					return nil, fmt.Errorf(
						"end reason %q mapped to both %q and %q", reason, existing.Category, category)
				}
				reasons[reason] = Outcome{Category: category, Planned: planned}
			}
		}
	}
	sort.Strings(categories)
	return &Vocabulary{reasons: reasons, categories: categories}, nil
}

// LoadVocabulary reads a grouped vocabulary from YAML, or returns the
// default one when no path is given.
func LoadVocabulary(path string) (*Vocabulary, error) {
	if path == "" {
		return NewVocabulary(DefaultGrouped())
	}
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	var grouped Grouped
	if err := yaml.Unmarshal(content, &grouped); err != nil {
		return nil, err
	}
	return NewVocabulary(grouped)
}

// Lookup returns the outcome for a raw end reason.
func (v *Vocabulary) Lookup(reason string) (Outcome, bool) {
	outcome, ok := v.reasons[reason]
	return outcome, ok
}

// Categories returns the category set in sorted order.
func (v *Vocabulary) Categories() []string {
	return v.categories
}

// Len returns the number of raw end reasons in the vocabulary.
func (v *Vocabulary) Len() int {
	return len(v.reasons)
}

// DefaultGrouped is the operational end-reason vocabulary.
func DefaultGrouped() Grouped {
	return Grouped{
		"Abandoned": {
			Unplanned: {
				"Abandoned (Unplanned)",
				"(FS) Unknown / lost contact",
				"(FS) Abandoned tenancy",
			},
		},
		"Custody": {
			Unplanned: {
				"Custody - Current Offence (Unplanned)",
				"Taken into Custody (Unplanned)",
				"Custody - Breach of Prior Order (Unplanned)",
				"(FS) Taken into custody",
				"Custody - Court Hearing/Arrest Warrant for Prior Offence (Planned)",
			},
		},
		"Died": {
			Unplanned: {
				"Death (Unplanned)",
				"(FS) Died",
			},
		},
		"Evicted": {
			Unplanned: {
				"Evicted (Unplanned)",
				"(FS) Evicted",
			},
		},
		"Missing data/error": {
			Unknown: {
				"Moved within Supported Housing (Same Pathway)",
				"INTERNAL TRANSFER",
				"Moved within Supported Housing (Different Pathway)",
				"Moved into HSR Accom _ Lower level (Planned)",
				"Moved into HSR Accom _ High level (Planned)",
				"Moved into HSR Accom _ Same level (Planned)",
				"Moved to Substance Misuse Pathway (Planned)",
				"(Pathway 4 Only) Moved to Level 4 Supported Housing (Planned)",
				"(Pathway 4 Only) Moved to Level 1, 2 or 3 Supported Housing (Planned)",
				"Moved into HSR Accom _ High level (Unplanned)",
				"Moved into HSR Accom _ Same level (Unplanned)",
			},
		},
		"Other": {
			Unplanned: {
				"Other (Unplanned)",
				"Move into B&B (Unplanned)",
				"Sleeping Rough (Unplanned)",
				"(SSTS) BCC Emergency Accommodation (FOR SSTS USE ONLY)",
			},
			Planned: {
				"Other (Planned)",
				"Moved into Accomm as an Owner Occupier (Planned)",
				"Move into B&B (Planned)",
			},
		},
		"Returned to previous home": {
			Unplanned: {"Returned to Previous Home (Unplanned)"},
			Planned:   {"Returned to Previous Home (Planned)"},
		},
		"To care/hospital": {
			Unplanned: {
				"Hospital, Care Home or Hospice (Unplanned)",
				"Psychiatric Hospital (Unplanned)",
			},
			Planned: {
				"Hospital, Care Home or Hospice (Planned)",
				"Psychiatric Hospital (Planned)",
				"Moved into Care Home (Planned)",
				"(FS) Entered a long-stay hosp",
			},
		},
		"To external supported": {
			Unplanned: {
				"Non-HSR Supported Accommodation (Unplanned)",
				"Moved into Supported Housing (Unplanned)",
			},
			Planned: {
				"Moved into Supported Housing (Planned)",
				"Non-HSR Supported Accommodation (Planned)",
				"Non-HSR Substance Misuse Accommodation (Planned)",
			},
		},
		"To friends/family": {
			Unplanned: {
				"Staying with Friends or Family (Unplanned)",
				"Staying with Friends (Unplanned)",
			},
			Planned: {
				"Staying with Friends or Family (Planned)",
				"Staying with Friends (Planned)",
				"(FS) Moved in with family or relatives (planned)",
				"(FS) Moved in with friends (planned)",
				"(A&A) Moved in with Family & Friends (Long-term)",
			},
		},
		"To private rented": {
			Unplanned: {"Renting Privately (Unplanned)"},
			Planned: {
				"Renting Privately (Planned)",
				"(FS) Moved into Private Self Contained (planned)",
				"(FS) Moved into Private Shared Accom (planned)",
			},
		},
		"To sheltered": {
			Unplanned: {"Moved into Sheltered Housing (Unplanned)"},
			Planned:   {"Moved into Sheltered Housing (Planned)"},
		},
		"To social housing": {
			Unplanned: {
				"Moved to RSL Tenancy (Unplanned)",
				"Moved to Local Authority Tenancy (Unplanned)",
			},
			Planned: {
				"Moved to Local Authority Tenancy (Planned)",
				"BCC Social Tenancy via PMOS (Planned)",
				"Moved to RSL Tenancy (Planned)",
				"BCC Social Tenancy NOT via PMOS (Planned)",
				"RSL Social Tenancy via PMOS (Planned)",
				"RSL Social Tenancy NOT via PMOS (Planned)",
				"(FS) Moved into RSL (planned)",
			},
		},
	}
}
