package domain

import (
	"math"
	"sort"

	json "github.com/goccy/go-json"
)

// NoDataRank is the finite stand-in for "no cutoff data". Cutoff fields hold
// +Inf internally when a program has no parseable ranks; every place that
// does arithmetic or serialization on them sees this value instead, so the
// absence of data stays orderable and is never confused with a rank of 0.
const NoDataRank = 999999

// CollegeType classifies a college as government-run or private.
type CollegeType string

const (
	// CollegeTypeGovernment marks a government college.
	CollegeTypeGovernment CollegeType = "Government"
	// CollegeTypePrivate marks a private college.
	CollegeTypePrivate CollegeType = "Private"
)

// CutoffStats aggregates the closing ranks extracted from one program's
// nested cutoff structure. Lower ranks are more competitive.
type CutoffStats struct {
	MinRank float64 `json:"min_rank"`
	MaxRank float64 `json:"max_rank"`
	AvgRank float64 `json:"avg_rank"`
	Ranks   []int   `json:"ranks"` // sorted ascending
}

// NewCutoffStats aggregates a flat list of ranks. An empty list yields the
// no-data sentinel: MinRank=+Inf, MaxRank=0, AvgRank=+Inf.
func NewCutoffStats(ranks []int) CutoffStats {
	if len(ranks) == 0 {
		return CutoffStats{MinRank: math.Inf(1), MaxRank: 0, AvgRank: math.Inf(1)}
	}

	sorted := make([]int, len(ranks))
	copy(sorted, ranks)
	sort.Ints(sorted)

	var sum int
	for _, r := range sorted {
		sum += r
	}

	return CutoffStats{
		MinRank: float64(sorted[0]),
		MaxRank: float64(sorted[len(sorted)-1]),
		AvgRank: float64(sum) / float64(len(sorted)),
		Ranks:   sorted,
	}
}

// HasData reports whether any rank was extracted for the program.
func (c CutoffStats) HasData() bool { return len(c.Ranks) > 0 }

// Realized returns the min/max/avg ranks with infinities collapsed to
// NoDataRank, keeping downstream arithmetic finite.
func (c CutoffStats) Realized() (minRank, maxRank, avgRank float64) {
	minRank, maxRank, avgRank = c.MinRank, c.MaxRank, c.AvgRank
	if math.IsInf(minRank, 1) {
		minRank = NoDataRank
	}
	if math.IsInf(avgRank, 1) {
		avgRank = NoDataRank
	}
	return minRank, maxRank, avgRank
}

// MarshalJSON serializes the stats with infinities collapsed to NoDataRank,
// since JSON has no representation for +Inf.
func (c CutoffStats) MarshalJSON() ([]byte, error) {
	type alias CutoffStats
	realized := alias(c)
	realized.MinRank, realized.MaxRank, realized.AvgRank = c.Realized()
	return json.Marshal(realized)
}

// ProgramRecord is one (college, program) pair — the atomic unit the
// recommender scores. Records are built once at load time and never mutated.
type ProgramRecord struct {
	CollegeName string      `json:"college_name"`
	Location    string      `json:"location"`
	State       string      `json:"state"`
	Branch      string      `json:"branch"`
	ProgramName string      `json:"program_name"`
	CollegeType CollegeType `json:"college_type"`
	Cutoff      CutoffStats `json:"cutoff"`
	SourceFile  string      `json:"source_file"`

	// Absent unless a future data source supplies them. The numeric fields
	// arrive as numbers or free text depending on the source, so they stay
	// untyped until the feature parsers coerce them.
	Fees      any     `json:"fees,omitempty"`
	Placement any     `json:"placement,omitempty"`
	Rating    any     `json:"rating,omitempty"`
	Website   *string `json:"website,omitempty"`
}
