package pathways

import (
	"sort"
	"strings"

	"github.com/housinglink/pathways/pkg/common/models"
	"github.com/housinglink/pathways/pkg/placements"
	"github.com/housinglink/pathways/pkg/routes"
)

// CategoryTallies counts routes per end category, one count per route, with
// each route's share of the total. Destination categories ("To ...") sort
// first so the accommodation outcomes lead the report, then the rest
// alphabetically.
func CategoryTallies(t placements.Table) []models.CategoryCount {
	derived := placements.Derive(t)

	type key struct {
		canonical int64
		routeID   int64
	}
	seen := make(map[key]bool)
	counts := make(map[string]int)
	total := 0
	for _, r := range derived {
		k := key{r.CanonicalID, r.RouteID}
		if seen[k] {
			continue
		}
		seen[k] = true
		category := r.RouteEndCategory
		if category == "" {
			category = routes.Unclassified
		}
		counts[category]++
		total++
	}

	out := make([]models.CategoryCount, 0, len(counts))
	for category, n := range counts {
		percent := 0.0
		if total > 0 {
			percent = float64(n) / float64(total) * 100
		}
		out = append(out, models.CategoryCount{Category: category, Count: n, Percent: percent})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Category, out[j].Category
		aTo := strings.HasPrefix(a, "To ")
		bTo := strings.HasPrefix(b, "To ")
		if aTo != bTo {
			return aTo
		}
		return a < b
	})
	return out
}
