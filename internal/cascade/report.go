package cascade

// Report is the outcome of a committed cascade: the root row as it was
// before deletion and the number of affected rows per category. Every
// category the cascade could touch is present, including zero counts.
type Report struct {
	Root        Entity           `json:"-"`
	DeletedRoot any              `json:"deleted_root"`
	Affected    map[string]int64 `json:"affected"`

	kinds map[string]StepKind
}

func newReport(plan *Plan) *Report {
	r := &Report{
		Root:        plan.Root,
		DeletedRoot: plan.Snapshot,
		Affected:    make(map[string]int64, len(plan.Categories)),
		kinds:       make(map[string]StepKind, len(plan.Categories)),
	}
	for _, category := range plan.Categories {
		r.Affected[category] = 0
	}
	for _, step := range plan.Steps {
		if step.Category != "" {
			r.kinds[step.Category] = step.Kind
		}
	}
	return r
}

// Count returns the tally for a category, zero when it is unknown.
func (r *Report) Count(category string) int64 {
	return r.Affected[category]
}

// DeletedRows is the number of dependent rows removed, the root excluded.
func (r *Report) DeletedRows() int64 {
	return r.sum(StepDelete)
}

// DetachedRows is the number of rows whose reference was set to NULL.
func (r *Report) DetachedRows() int64 {
	return r.sum(StepDetach)
}

func (r *Report) sum(kind StepKind) int64 {
	var total int64
	for category, n := range r.Affected {
		if r.kinds[category] == kind {
			total += n
		}
	}
	return total
}
