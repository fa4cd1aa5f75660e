package pipeline

import (
	"github.com/housinglink/pathways/pkg/corrections"
	"github.com/housinglink/pathways/pkg/placements"
	"github.com/housinglink/pathways/pkg/routes"
)

// Runner holds the loaded catalogs and applies the correction and derivation
// stages in their fixed order. It is stateless across runs; every stage is
// copy-on-write, so a Runner is safe for concurrent use.
type Runner struct {
	catalog    *corrections.Catalog
	thresholds placements.GapThresholds
	vocab      *routes.Vocabulary
}

type Options struct {
	IncludeCorrections bool
	IncludeAssumptions bool
}

type Result struct {
	Placements placements.Table
	Relocated  placements.Table
	Unmatched  int
}

func NewRunner(catalog *corrections.Catalog, thresholds placements.GapThresholds, vocab *routes.Vocabulary) *Runner {
	return &Runner{catalog: catalog, thresholds: thresholds, vocab: vocab}
}

// Run executes the full pipeline on a built placement table: corrections,
// overlap resolution, gap reduction, route assignment and classification.
// Running the pipeline twice on the same input yields identical output.
func (r *Runner) Run(t placements.Table, opts Options) Result {
	res := Result{Placements: t}

	if opts.IncludeCorrections {
		applied := r.catalog.Apply(t, opts.IncludeAssumptions)
		res.Placements = applied.Corrected
		res.Relocated = applied.Relocated
		res.Unmatched = applied.Unmatched
	}

	out := placements.Derive(res.Placements)
	out = placements.ResolveOverlaps(out)
	out = placements.ReduceGaps(out, r.thresholds)
	out = routes.Assign(out)
	out = r.vocab.Classify(out)

	res.Placements = out
	return res
}

// RouteStages re-runs derivation, route assignment and classification from
// scratch. Used after filtering a derived table down to a subset, where the
// old gaps and route ids no longer describe the records that remain.
func (r *Runner) RouteStages(t placements.Table) placements.Table {
	out := placements.StripDerived(t)
	out = placements.Derive(out)
	out = routes.Assign(out)
	return r.vocab.Classify(out)
}
