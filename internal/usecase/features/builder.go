// Package features flattens program records into a fixed-order numeric
// feature space and maps ad-hoc user queries into that same space.
package features

import (
	"math"

	"github.com/YuvAgarwal/College-Recommendation-System/internal/domain"
)

// Dim is the feature space dimensionality.
const Dim = 10

// Feature vector layout. Order is part of the model contract: the query
// transform and every trained row must agree on it.
const (
	idxCutoffMin = iota
	idxCutoffMax
	idxCutoffAvg
	idxCutoffScore
	idxCollegeType
	idxState
	idxBranch
	idxFees
	idxPlacement
	idxRating
)

// Builder fits category encoders over the training corpus and converts
// records and queries into feature vectors. The encoders are the one piece
// of fitted state the model owns; after Fit they are never mutated.
type Builder struct {
	collegeType *Encoder
	state       *Encoder
	branch      *Encoder
	fitted      bool
}

// NewBuilder creates an unfitted builder.
func NewBuilder() *Builder { return &Builder{} }

// Fitted reports whether Fit has run.
func (b *Builder) Fitted() bool { return b.fitted }

// Fit fits the category encoders over all records and returns the feature
// matrix, one row per record in input order.
func (b *Builder) Fit(records []*domain.ProgramRecord) [][]float64 {
	types := make([]string, len(records))
	states := make([]string, len(records))
	branches := make([]string, len(records))
	for i, rec := range records {
		types[i] = string(rec.CollegeType)
		states[i] = rec.State
		branches[i] = rec.Branch
	}

	// Seeding guarantees both known labels always get a code (Government=0,
	// Private=1) even if one never appears in the data.
	b.collegeType = FitEncoder(types, string(domain.CollegeTypeGovernment), string(domain.CollegeTypePrivate))
	b.state = FitEncoder(states)
	b.branch = FitEncoder(branches)
	b.fitted = true

	matrix := make([][]float64, len(records))
	for i, rec := range records {
		matrix[i] = b.transformRecord(rec)
	}
	return matrix
}

func (b *Builder) transformRecord(rec *domain.ProgramRecord) []float64 {
	minRank, maxRank, avgRank := rec.Cutoff.Realized()

	v := make([]float64, Dim)
	v[idxCutoffMin] = minRank
	v[idxCutoffMax] = maxRank
	v[idxCutoffAvg] = avgRank
	v[idxCutoffScore] = 1 / (avgRank + 1)
	v[idxCollegeType] = float64(b.collegeType.Code(string(rec.CollegeType)))
	v[idxState] = float64(b.state.Code(rec.State))
	v[idxBranch] = float64(b.branch.Code(rec.Branch))
	v[idxFees] = parseFees(rec.Fees)
	v[idxPlacement] = parsePlacement(rec.Placement)
	v[idxRating] = parseRating(rec.Rating)
	return v
}

// RecordFees returns the parsed fee amount for a record, as used in the
// trained matrix.
func RecordFees(rec *domain.ProgramRecord) float64 { return parseFees(rec.Fees) }

// RecordPlacement returns the parsed placement fraction for a record.
func RecordPlacement(rec *domain.ProgramRecord) float64 { return parsePlacement(rec.Placement) }

// ExpectedRank maps a board percentage to the rank a student can aim for:
// higher marks imply a numerically lower (better) rank, on a fixed linear
// proxy scale. 90% -> 10000.
func ExpectedRank(marks float64) float64 {
	return math.Max(1, math.Round((100-marks)*1000))
}

// TransformQuery builds the user's feature vector with the already-fitted
// encoders. No refitting happens here.
func (b *Builder) TransformQuery(q domain.Query) ([]float64, error) {
	if !b.fitted {
		return nil, domain.ErrNotTrained
	}

	v := make([]float64, Dim)
	v[idxCutoffMin] = domain.NoDataRank
	v[idxCutoffMax] = 0
	v[idxCutoffAvg] = domain.NoDataRank
	v[idxCutoffScore] = 0
	v[idxPlacement] = neutralPlacement
	v[idxRating] = neutralRating

	if q.BoardPercentage > 0 {
		expected := ExpectedRank(q.BoardPercentage)
		v[idxCutoffAvg] = expected
		v[idxCutoffScore] = 1 / (expected + 1)
	}

	// Fixed Government=0 / Private=1 mapping, independent of the fitted
	// encoder's codes. Inherited contract; keep as is.
	switch q.Preferences.CollegeType {
	case string(domain.CollegeTypeGovernment):
		v[idxCollegeType] = 0
	case string(domain.CollegeTypePrivate):
		v[idxCollegeType] = 1
	}

	if loc := q.Preferences.PreferredLocation; loc != "" {
		v[idxState] = float64(b.state.Code(loc))
	}
	if spec := q.Preferences.Specialization; spec != "" {
		v[idxBranch] = float64(b.branch.Code(spec))
	}
	if budget := q.Preferences.BudgetRange; budget != "" {
		v[idxFees] = ParseBudget(budget)
	}

	return v, nil
}
