package recommend

import (
	"math"
	"testing"

	"github.com/YuvAgarwal/College-Recommendation-System/internal/domain"
)

func govRecord(name, state, branch string, ranks []int) *domain.ProgramRecord {
	return &domain.ProgramRecord{
		CollegeName: name,
		Location:    state,
		State:       state,
		Branch:      branch,
		CollegeType: domain.CollegeTypeGovernment,
		Cutoff:      domain.NewCutoffStats(ranks),
	}
}

func TestCosine(t *testing.T) {
	cases := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"zero vector", []float64{0, 0}, []float64{1, 1}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cosine(tc.a, tc.b); math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("cosine = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCosine_RescaleStaysInUnitInterval(t *testing.T) {
	for _, sim := range []float64{-1, 0, 1} {
		rescaled := (sim + 1) / 2
		if rescaled < 0 || rescaled > 1 {
			t.Errorf("rescaled(%v) = %v, out of [0,1]", sim, rescaled)
		}
	}
}

func TestLocationMultiplier(t *testing.T) {
	rec := govRecord("NIT Trichy", "Tamil Nadu", "CSE", nil)

	cases := []struct {
		name string
		pref string
		want float64
	}{
		{"state containment", "tamil", 1},
		{"full state", "tamil nadu", 1},
		{"any is half", "any", 0.5},
		{"empty is half", "", 0.5},
		{"no match", "kerala", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := locationMultiplier(tc.pref, rec); got != tc.want {
				t.Errorf("locationMultiplier(%q) = %v, want %v", tc.pref, got, tc.want)
			}
		})
	}
}

// A location that happens to contain the literal "any" is a real containment
// match, not the half-weight fallback.
func TestLocationMultiplier_AnyInsideLocationName(t *testing.T) {
	rec := govRecord("X", "Anytown", "CSE", nil)
	if got := locationMultiplier("any", rec); got != 1 {
		t.Errorf("locationMultiplier = %v, want 1", got)
	}
}

func TestBranchMultiplier(t *testing.T) {
	cases := []struct {
		name   string
		pref   string
		branch string
		want   float64
	}{
		{"containment", "computer science", "Computer Science and Engineering", 1},
		{"reverse containment", "computer science and engineering extras", "Computer Science", 1},
		{"synonym cse", "computer engineering", "CSE", 0.7},
		{"synonym mech", "mechanical", "Mech Engineering", 0.7},
		{"synonym ece", "electronics", "ECE", 0.7},
		{"no preference", "", "Civil Engineering", 0},
		{"no match", "biotechnology", "Civil Engineering", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := branchMultiplier(tc.pref, tc.branch); got != tc.want {
				t.Errorf("branchMultiplier(%q, %q) = %v, want %v", tc.pref, tc.branch, got, tc.want)
			}
		})
	}
}

func TestKeywordsFor(t *testing.T) {
	if kws := keywordsFor("computer science"); len(kws) != 5 {
		t.Errorf("got %d keywords for computer stem, want 5", len(kws))
	}
	if kws := keywordsFor("fine arts"); kws != nil {
		t.Errorf("got %v for unknown stem, want nil", kws)
	}
}

func TestRuleScore_BudgetContribution(t *testing.T) {
	w := domain.DefaultWeights()
	q := domain.Query{Preferences: domain.Preferences{BudgetRange: "2 lakh"}}
	rc := newRuleContext(q)
	rec := govRecord("X", "Tamil Nadu", "CSE", nil)

	within := rc.ruleScore(rec, w, 150000, 0)   // fees <= budget
	slightly := rc.ruleScore(rec, w, 230000, 0) // fees <= 1.2*budget
	over := rc.ruleScore(rec, w, 300000, 0)     // fees > 1.2*budget

	if !(within > slightly && slightly > over) {
		t.Errorf("budget contributions = (%v, %v, %v), want strictly decreasing", within, slightly, over)
	}
	if got, want := within-over, w.BudgetMatch; math.Abs(got-want) > 1e-12 {
		t.Errorf("full-vs-none delta = %v, want %v", got, want)
	}
	if got, want := slightly-over, w.BudgetMatch*0.5; math.Abs(got-want) > 1e-12 {
		t.Errorf("half-vs-none delta = %v, want %v", got, want)
	}
}

func TestRuleScore_BudgetNeedsFeesAndBudget(t *testing.T) {
	w := domain.DefaultWeights()
	rec := govRecord("X", "Tamil Nadu", "CSE", nil)
	// A non-matching location preference keeps the location criterion at zero
	// so the budget contribution is observed in isolation.
	offLocation := domain.Preferences{PreferredLocation: "kerala"}

	noBudget := newRuleContext(domain.Query{Preferences: offLocation})
	if got := noBudget.ruleScore(rec, w, 100000, 0); got != 0 {
		t.Errorf("score without budget preference = %v, want 0", got)
	}

	withBudget := newRuleContext(domain.Query{Preferences: domain.Preferences{
		PreferredLocation: "kerala",
		BudgetRange:       "5 lakh",
	}})
	if got := withBudget.ruleScore(rec, w, 0, 0); got != 0 {
		t.Errorf("score with zero fees = %v, want 0", got)
	}
}

func TestRuleScore_CutoffProximity(t *testing.T) {
	w := domain.DefaultWeights()
	q := domain.Query{ // marks of 90 put the expected rank at 10000
		BoardPercentage: 90,
		Preferences:     domain.Preferences{PreferredLocation: "kerala"},
	}
	rc := newRuleContext(q)

	near := rc.ruleScore(govRecord("A", "TN", "CSE", []int{10000}), w, 0, 0)
	far := rc.ruleScore(govRecord("B", "TN", "CSE", []int{90000}), w, 0, 0)
	none := rc.ruleScore(govRecord("C", "TN", "CSE", nil), w, 0, 0)

	if !(near > far) {
		t.Errorf("near = %v, far = %v, want near > far", near, far)
	}
	if none != 0 {
		t.Errorf("no-data cutoff contribution = %v, want 0", none)
	}
	// Exact rank match earns the full cutoff weight.
	if math.Abs(near-w.CutoffMatch) > 1e-12 {
		t.Errorf("exact match score = %v, want %v", near, w.CutoffMatch)
	}
}

func TestRuleScore_CutoffSkippedWithoutMarks(t *testing.T) {
	w := domain.DefaultWeights()
	rc := newRuleContext(domain.Query{Preferences: domain.Preferences{PreferredLocation: "kerala"}})
	if got := rc.ruleScore(govRecord("A", "TN", "CSE", []int{100}), w, 0, 0); got != 0 {
		t.Errorf("cutoff contribution without marks = %v, want 0", got)
	}
}

func TestRuleScore_CollegeTypeExactMatch(t *testing.T) {
	w := domain.DefaultWeights()
	rec := govRecord("A", "TN", "CSE", nil)

	match := newRuleContext(domain.Query{Preferences: domain.Preferences{
		PreferredLocation: "kerala",
		CollegeType:       "Government",
	}})
	if got := match.ruleScore(rec, w, 0, 0); math.Abs(got-w.CollegeTypeMatch) > 1e-12 {
		t.Errorf("matching type score = %v, want %v", got, w.CollegeTypeMatch)
	}

	miss := newRuleContext(domain.Query{Preferences: domain.Preferences{
		PreferredLocation: "kerala",
		CollegeType:       "Private",
	}})
	if got := miss.ruleScore(rec, w, 0, 0); got != 0 {
		t.Errorf("mismatched type score = %v, want 0", got)
	}
}

func TestRuleScore_PlacementAlwaysContributes(t *testing.T) {
	w := domain.DefaultWeights()
	rc := newRuleContext(domain.Query{Preferences: domain.Preferences{PreferredLocation: "kerala"}})
	rec := govRecord("A", "TN", "CSE", nil)

	if got, want := rc.ruleScore(rec, w, 0, 0.5), w.Placement*0.5; math.Abs(got-want) > 1e-12 {
		t.Errorf("neutral placement contribution = %v, want %v", got, want)
	}
}
