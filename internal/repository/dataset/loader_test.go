package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/YuvAgarwal/College-Recommendation-System/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

const sampleFile = `{
  "National Institute of Technology Tiruchirappalli": {
    "State": "Tamil Nadu",
    "Programs": {
      "Computer Science and Engineering (4 Years, Bachelor of Technology)": {
        "JEE Main": {
          "OPEN": {"Gender-Neutral": ["1200", "980"], "Female-only": [2100]},
          "OBC-NCL": {"Gender-Neutral": ["4300"]}
        }
      },
      "Civil Engineering (B.Tech)": {
        "JEE Main": {
          "OPEN": {"Gender-Neutral": ["not available"]}
        }
      }
    }
  },
  "SRM Institute of Science and Technology": {
    "State": "Tamil Nadu",
    "Programs": {
      "Mechanical Engineering (B.E.)": {
        "SRMJEEE": {"OPEN": {"Gender-Neutral": ["15000", "22000"]}}
      }
    }
  }
}`

func loadSample(t *testing.T) []*domain.ProgramRecord {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "colleges.json", sampleFile)

	records, err := NewLoader(dir, zap.NewNop()).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return records
}

func findRecord(t *testing.T, records []*domain.ProgramRecord, branch string) *domain.ProgramRecord {
	t.Helper()
	for _, r := range records {
		if r.Branch == branch {
			return r
		}
	}
	t.Fatalf("no record with branch %q", branch)
	return nil
}

func TestLoad_FlattensOneRecordPerProgram(t *testing.T) {
	records := loadSample(t)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
}

func TestLoad_BranchSuffixStripping(t *testing.T) {
	records := loadSample(t)
	for _, want := range []string{"Computer Science and Engineering", "Civil Engineering", "Mechanical Engineering"} {
		findRecord(t, records, want)
	}
}

func TestLoad_CutoffAggregation(t *testing.T) {
	records := loadSample(t)
	cse := findRecord(t, records, "Computer Science and Engineering")

	if cse.Cutoff.MinRank != 980 {
		t.Errorf("MinRank = %v, want 980", cse.Cutoff.MinRank)
	}
	if cse.Cutoff.MaxRank != 4300 {
		t.Errorf("MaxRank = %v, want 4300", cse.Cutoff.MaxRank)
	}
	if got := len(cse.Cutoff.Ranks); got != 4 {
		t.Errorf("len(Ranks) = %d, want 4", got)
	}
}

func TestLoad_NonNumericLeavesYieldSentinel(t *testing.T) {
	records := loadSample(t)
	civil := findRecord(t, records, "Civil Engineering")

	if civil.Cutoff.HasData() {
		t.Error("expected no cutoff data for all-malformed ranks")
	}
	_, _, avg := civil.Cutoff.Realized()
	if avg != domain.NoDataRank {
		t.Errorf("realized avg = %v, want %d", avg, domain.NoDataRank)
	}
}

func TestLoad_CollegeTypeInference(t *testing.T) {
	records := loadSample(t)

	nit := findRecord(t, records, "Computer Science and Engineering")
	if nit.CollegeType != domain.CollegeTypeGovernment {
		t.Errorf("NIT type = %q, want Government", nit.CollegeType)
	}
	srm := findRecord(t, records, "Mechanical Engineering")
	if srm.CollegeType != domain.CollegeTypePrivate {
		t.Errorf("SRM type = %q, want Private", srm.CollegeType)
	}
}

func TestLoad_GovtFilenameForcesGovernment(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "govt_colleges.json", `{
	  "Anna University Regional Campus": {
	    "State": "Tamil Nadu",
	    "Programs": {"Civil Engineering (B.Tech)": {}}
	  }
	}`)

	records, err := NewLoader(dir, zap.NewNop()).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if records[0].CollegeType != domain.CollegeTypeGovernment {
		t.Errorf("type = %q, want Government", records[0].CollegeType)
	}
}

func TestLoad_MalformedFileIsSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.json", `{not json`)
	writeFile(t, dir, "ok.json", sampleFile)

	records, err := NewLoader(dir, zap.NewNop()).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("got %d records, want 3 from the readable file", len(records))
	}
}

func TestLoad_EmptyDirReturnsErrNoData(t *testing.T) {
	_, err := NewLoader(t.TempDir(), zap.NewNop()).Load()
	if !errors.Is(err, domain.ErrNoData) {
		t.Errorf("err = %v, want ErrNoData", err)
	}
}

func TestLoad_MissingDirFails(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "absent"), zap.NewNop()).Load()
	if err == nil {
		t.Error("expected error for missing dataset dir")
	}
}

func TestInferCollegeType(t *testing.T) {
	cases := []struct {
		name    string
		college string
		file    string
		want    domain.CollegeType
	}{
		{"iit in name", "IIT Madras", "colleges.json", domain.CollegeTypeGovernment},
		{"keyword in filename", "Some College", "iiit_list.json", domain.CollegeTypeGovernment},
		{"central university", "Central University of Karnataka", "x.json", domain.CollegeTypeGovernment},
		{"plain private", "VIT Vellore", "private.json", domain.CollegeTypePrivate},
		{"lossy heuristic", "Sree Government Polytechnic Trust", "x.json", domain.CollegeTypeGovernment},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := inferCollegeType(tc.college, tc.file); got != tc.want {
				t.Errorf("inferCollegeType(%q, %q) = %q, want %q", tc.college, tc.file, got, tc.want)
			}
		})
	}
}

func TestCoerceRank(t *testing.T) {
	cases := []struct {
		leaf any
		want int
		ok   bool
	}{
		{"1200", 1200, true},
		{" 42 ", 42, true},
		{float64(880), 880, true},
		{"closed", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}
	for _, tc := range cases {
		got, ok := coerceRank(tc.leaf)
		if got != tc.want || ok != tc.ok {
			t.Errorf("coerceRank(%v) = (%d, %v), want (%d, %v)", tc.leaf, got, ok, tc.want, tc.ok)
		}
	}
}
