package domain

// Weights distributes the rule-based portion of the hybrid score across the
// match criteria. A valid table sums to 1.0.
type Weights struct {
	CutoffMatch      float64 `json:"cutoff_match" yaml:"cutoff_match"`
	LocationMatch    float64 `json:"location_match" yaml:"location_match"`
	BranchMatch      float64 `json:"branch_match" yaml:"branch_match"`
	CollegeTypeMatch float64 `json:"college_type_match" yaml:"college_type_match"`
	BudgetMatch      float64 `json:"budget_match" yaml:"budget_match"`
	Placement        float64 `json:"placement" yaml:"placement"`
}

// DefaultWeights returns the stock weight table.
func DefaultWeights() Weights {
	return Weights{
		CutoffMatch:      0.30,
		LocationMatch:    0.20,
		BranchMatch:      0.20,
		CollegeTypeMatch: 0.15,
		BudgetMatch:      0.10,
		Placement:        0.05,
	}
}

// IsZero reports whether no weight is set.
func (w Weights) IsZero() bool { return w == Weights{} }

func (w Weights) sum() float64 {
	return w.CutoffMatch + w.LocationMatch + w.BranchMatch +
		w.CollegeTypeMatch + w.BudgetMatch + w.Placement
}

// Normalized scales the table so it sums to 1.0. Negative entries or an
// all-zero table are rejected with ErrInvalidWeights.
func (w Weights) Normalized() (Weights, error) {
	if w.CutoffMatch < 0 || w.LocationMatch < 0 || w.BranchMatch < 0 ||
		w.CollegeTypeMatch < 0 || w.BudgetMatch < 0 || w.Placement < 0 {
		return Weights{}, ErrInvalidWeights
	}
	total := w.sum()
	if total <= 0 {
		return Weights{}, ErrInvalidWeights
	}
	return Weights{
		CutoffMatch:      w.CutoffMatch / total,
		LocationMatch:    w.LocationMatch / total,
		BranchMatch:      w.BranchMatch / total,
		CollegeTypeMatch: w.CollegeTypeMatch / total,
		BudgetMatch:      w.BudgetMatch / total,
		Placement:        w.Placement / total,
	}, nil
}
