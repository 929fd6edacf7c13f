package domain

// MatchDetails explains, per criterion, how a recommended record lined up
// with the user's preferences. An absent preference is vacuously satisfied.
// Budget is always "N/A" here: the explanation path never computes a budget
// verdict even though the scoring path does.
type MatchDetails struct {
	CutoffMatch      string `json:"cutoff_match"`
	LocationMatch    bool   `json:"location_match"`
	BranchMatch      bool   `json:"branch_match"`
	CollegeTypeMatch bool   `json:"college_type_match"`
	BudgetMatch      string `json:"budget_match"`
}

// Recommendation is one scored record in a ranked result list.
type Recommendation struct {
	Record       *ProgramRecord `json:"-"`
	Score        float64        `json:"score"`
	MatchDetails MatchDetails   `json:"match_details"`
}
