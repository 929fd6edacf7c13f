package recommend

import (
	"math"
	"sort"
	"strings"

	"github.com/YuvAgarwal/College-Recommendation-System/internal/domain"
	"github.com/YuvAgarwal/College-Recommendation-System/internal/usecase/features"
)

// Hybrid score mix: 60% feature-space cosine similarity, 40% weighted rule
// matches.
const (
	cosineShare = 0.6
	ruleShare   = 0.4
)

// rankDiffScale flattens the cutoff proximity curve: a 10000-rank difference
// halves the cutoff score.
const rankDiffScale = 10000

// branchKeywords maps canonical branch stems to the synonyms accepted for a
// partial (0.7x) branch match. Lookup is keyed by the user's preference
// containing a stem.
var branchKeywords = map[string][]string{
	"computer":      {"computer", "cs", "cse", "it", "information"},
	"mechanical":    {"mechanical", "mech"},
	"electrical":    {"electrical", "eee"},
	"electronics":   {"electronics", "ece", "eec"},
	"civil":         {"civil"},
	"chemical":      {"chemical"},
	"aerospace":     {"aerospace", "aeronautical"},
	"biotechnology": {"biotechnology", "bio"},
}

// branchStems is the deterministic iteration order over branchKeywords.
var branchStems = func() []string {
	stems := make([]string, 0, len(branchKeywords))
	for stem := range branchKeywords {
		stems = append(stems, stem)
	}
	sort.Strings(stems)
	return stems
}()

// ruleContext carries the per-call pieces of a query that the rule scorer
// needs, computed once per recommend call.
type ruleContext struct {
	marks        float64
	expectedRank float64
	location     string // lowercased
	branch       string // lowercased
	collegeType  string
	budget       float64
	hasBudget    bool
}

func newRuleContext(q domain.Query) ruleContext {
	rc := ruleContext{
		marks:       q.BoardPercentage,
		location:    strings.ToLower(q.Preferences.PreferredLocation),
		branch:      strings.ToLower(q.Preferences.Specialization),
		collegeType: q.Preferences.CollegeType,
	}
	if rc.marks > 0 {
		rc.expectedRank = features.ExpectedRank(rc.marks)
	}
	if q.Preferences.BudgetRange != "" {
		rc.budget = features.ParseBudget(q.Preferences.BudgetRange)
		rc.hasBudget = rc.budget > 0
	}
	return rc
}

// ruleScore sums the weighted criterion matches for one record. fees and
// placement are the record's parsed values from training time.
func (rc ruleContext) ruleScore(rec *domain.ProgramRecord, w domain.Weights, fees, placement float64) float64 {
	var score float64

	// Cutoff: closeness of the record's average closing rank to the rank the
	// student's marks suggest they can reach.
	if rc.marks > 0 {
		if _, _, avgRank := rec.Cutoff.Realized(); avgRank < domain.NoDataRank {
			rankDiff := math.Abs(avgRank - rc.expectedRank)
			score += w.CutoffMatch * (1 / (1 + rankDiff/rankDiffScale))
		}
	}

	score += w.LocationMatch * locationMultiplier(rc.location, rec)
	score += w.BranchMatch * branchMultiplier(rc.branch, rec.Branch)

	if rc.collegeType != "" && string(rec.CollegeType) == rc.collegeType {
		score += w.CollegeTypeMatch
	}

	if rc.hasBudget && fees > 0 {
		switch {
		case fees <= rc.budget:
			score += w.BudgetMatch
		case fees <= rc.budget*1.2: // up to 20% over budget is acceptable
			score += w.BudgetMatch * 0.5
		}
	}

	if placement > 0 {
		score += w.Placement * placement
	}

	return score
}

// locationMultiplier returns the fraction of the location weight earned:
// substring containment in either the location or the state wins outright;
// no stated preference (or the literal "any") earns half.
func locationMultiplier(pref string, rec *domain.ProgramRecord) float64 {
	if pref != "" {
		if strings.Contains(strings.ToLower(rec.Location), pref) ||
			strings.Contains(strings.ToLower(rec.State), pref) {
			return 1
		}
	}
	if pref == "" || pref == "any" {
		return 0.5
	}
	return 0
}

// branchMultiplier returns the fraction of the branch weight earned:
// containment in either direction is a full match, a synonym-table hit is a
// 0.7 partial match.
func branchMultiplier(pref, recordBranch string) float64 {
	if pref == "" {
		return 0
	}
	branch := strings.ToLower(recordBranch)
	if strings.Contains(branch, pref) || strings.Contains(pref, branch) {
		return 1
	}
	for _, kw := range keywordsFor(pref) {
		if strings.Contains(branch, kw) {
			return 0.7
		}
	}
	return 0
}

// keywordsFor returns the synonym list of the first canonical stem contained
// in the user's preference, or nil when none matches.
func keywordsFor(pref string) []string {
	for _, stem := range branchStems {
		if strings.Contains(pref, stem) {
			return branchKeywords[stem]
		}
	}
	return nil
}

// cosine computes the cosine similarity of two equal-length vectors; a zero
// vector yields 0.
func cosine(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
