// Package dataset flattens raw nested college cutoff files into one
// ProgramRecord per (college, program) pair.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/YuvAgarwal/College-Recommendation-System/internal/domain"
	"github.com/YuvAgarwal/College-Recommendation-System/internal/metrics"
)

// governmentKeywords mark a college (or source file) as government-run.
// The heuristic is lossy: a private college named "... Government Polytechnic"
// misclassifies. Documented behavior, not fixed.
var governmentKeywords = []string{"government", "govt", "iit", "nit", "iiit", "central university"}

// degreeSuffixes are the program-name suffixes stripped to get a branch name.
// No other suffixes are recognized.
var degreeSuffixes = []string{"(4 Years, Bachelor of Technology)", "(B.Tech)", "(B.E.)"}

// rawCollege is the source-file entry for one college: a state plus a
// program-name → nested cutoff structure mapping (exam → category → gender →
// list of ranks).
type rawCollege struct {
	State    string         `json:"State"`
	Programs map[string]any `json:"Programs"`
}

// Loader reads every JSON file in a dataset directory.
type Loader struct {
	dir    string
	logger *zap.Logger
}

// NewLoader creates a dataset loader.
func NewLoader(dir string, logger *zap.Logger) *Loader {
	return &Loader{dir: dir, logger: logger}
}

// Load flattens all dataset files into program records. A malformed or
// unreadable file is logged and skipped; it never aborts the rest of the
// load. Returns domain.ErrNoData when nothing at all could be loaded.
func (l *Loader) Load() ([]*domain.ProgramRecord, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("read dataset dir %s: %w", l.dir, err)
	}

	var records []*domain.ProgramRecord
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		recs, err := l.loadFile(filepath.Join(l.dir, entry.Name()), entry.Name())
		if err != nil {
			l.logger.Warn("Skipping dataset file",
				zap.String("file", entry.Name()),
				zap.Error(err),
			)
			metrics.DatasetFilesTotal.WithLabelValues("skipped").Inc()
			continue
		}
		metrics.DatasetFilesTotal.WithLabelValues("loaded").Inc()
		records = append(records, recs...)
	}

	if len(records) == 0 {
		return nil, domain.ErrNoData
	}
	return records, nil
}

func (l *Loader) loadFile(path, sourceFile string) ([]*domain.ProgramRecord, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var colleges map[string]rawCollege
	if err := json.Unmarshal(data, &colleges); err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}

	// Map iteration order is random; sort so record order (and therefore
	// ranking tie-breaks) is reproducible across runs.
	names := make([]string, 0, len(colleges))
	for name := range colleges {
		names = append(names, name)
	}
	sort.Strings(names)

	var records []*domain.ProgramRecord
	for _, collegeName := range names {
		info := colleges[collegeName]
		collegeType := inferCollegeType(collegeName, sourceFile)

		programs := make([]string, 0, len(info.Programs))
		for p := range info.Programs {
			programs = append(programs, p)
		}
		sort.Strings(programs)

		for _, programName := range programs {
			records = append(records, &domain.ProgramRecord{
				CollegeName: collegeName,
				Location:    info.State,
				State:       info.State,
				Branch:      extractBranch(programName),
				ProgramName: programName,
				CollegeType: collegeType,
				Cutoff:      domain.NewCutoffStats(collectRanks(info.Programs[programName])),
				SourceFile:  sourceFile,
			})
		}
	}
	return records, nil
}

// inferCollegeType classifies from the college name and source file name.
func inferCollegeType(collegeName, sourceFile string) domain.CollegeType {
	nameLower := strings.ToLower(collegeName)
	fileLower := strings.ToLower(sourceFile)

	for _, kw := range governmentKeywords {
		if strings.Contains(nameLower, kw) || strings.Contains(fileLower, kw) {
			return domain.CollegeTypeGovernment
		}
	}
	if strings.Contains(fileLower, "govt") || strings.Contains(fileLower, "government") {
		return domain.CollegeTypeGovernment
	}
	return domain.CollegeTypePrivate
}

// extractBranch strips the known degree suffixes from a program name.
func extractBranch(programName string) string {
	branch := programName
	for _, suffix := range degreeSuffixes {
		branch = strings.TrimSpace(strings.ReplaceAll(branch, suffix, ""))
	}
	return strings.TrimSpace(branch)
}

// collectRanks walks the untyped exam → category → gender → list tree and
// gathers every leaf that coerces to an integer. Malformed branches and
// non-numeric leaves are skipped, never raised.
func collectRanks(node any) []int {
	var ranks []int
	walkRanks(node, &ranks)
	return ranks
}

func walkRanks(node any, out *[]int) {
	switch v := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			walkRanks(v[k], out)
		}
	case []any:
		for _, leaf := range v {
			if r, ok := coerceRank(leaf); ok {
				*out = append(*out, r)
			}
		}
	}
}

func coerceRank(leaf any) (int, bool) {
	switch v := leaf.(type) {
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
