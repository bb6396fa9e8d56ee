package domain

// RunMeta contains metadata about a stored run
type RunMeta struct {
	RunID           string  `json:"run_id"`
	Executed        int     `json:"executed"`
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunRecord is the complete persisted form of a run
type RunRecord struct {
	Meta    RunMeta       `json:"meta"`
	Details []TestFailure `json:"details"`
}

// Unresolved returns the number of failures not yet marked as resolved
func (r *RunRecord) Unresolved() int {
	count := 0
	for _, f := range r.Details {
		if !f.Resolved {
			count++
		}
	}
	return count
}
