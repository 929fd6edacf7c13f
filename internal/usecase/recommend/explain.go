package recommend

import (
	"fmt"
	"strings"

	"github.com/YuvAgarwal/College-Recommendation-System/internal/domain"
)

// matchDetails derives the per-criterion explanation for a returned record.
// Independent of the scoring path: checks are one-directional, location uses
// the Location field only, and budget is never evaluated here.
func matchDetails(q domain.Query, rec *domain.ProgramRecord) domain.MatchDetails {
	details := domain.MatchDetails{
		CutoffMatch:      "N/A",
		LocationMatch:    true,
		BranchMatch:      true,
		CollegeTypeMatch: true,
		BudgetMatch:      "N/A",
	}

	if q.BoardPercentage > 0 {
		if _, _, avgRank := rec.Cutoff.Realized(); avgRank < domain.NoDataRank {
			details.CutoffMatch = fmt.Sprintf("Cutoff rank: %d", int(avgRank))
		}
	}

	if loc := q.Preferences.PreferredLocation; loc != "" {
		details.LocationMatch = strings.Contains(
			strings.ToLower(rec.Location), strings.ToLower(loc))
	}
	if spec := q.Preferences.Specialization; spec != "" {
		details.BranchMatch = strings.Contains(
			strings.ToLower(rec.Branch), strings.ToLower(spec))
	}
	if ctype := q.Preferences.CollegeType; ctype != "" {
		details.CollegeTypeMatch = string(rec.CollegeType) == ctype
	}

	return details
}
