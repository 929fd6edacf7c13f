package chi

import (
	"fmt"
	"strings"

	"github.com/YuvAgarwal/College-Recommendation-System/internal/domain"
)

// sectionCap limits how many colleges each section of the rendering shows.
const sectionCap = 10

// FormatRecommendations renders a ranked list into the free-text block the
// UI displays: a header, a government section and a private section, each
// entry with a justification line.
func FormatRecommendations(recs []domain.Recommendation, q domain.Query) string {
	if len(recs) == 0 {
		return "No colleges found matching your criteria. Please try adjusting your preferences."
	}

	specialization := q.Preferences.Specialization
	if specialization == "" {
		specialization = "Engineering"
	}
	collegeType := q.Preferences.CollegeType

	var govt, private []domain.Recommendation
	for _, rec := range recs {
		switch rec.Record.CollegeType {
		case domain.CollegeTypeGovernment:
			govt = append(govt, rec)
		case domain.CollegeTypePrivate:
			private = append(private, rec)
		}
	}
	if len(govt) > sectionCap {
		govt = govt[:sectionCap]
	}
	if len(private) > sectionCap {
		private = private[:sectionCap]
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		"Based on your profile, here are some recommended engineering colleges for %s:\n\n",
		specialization)
	b.WriteString("🎓 **Top Recommendations:**\n\n")

	if (collegeType == "Government" || collegeType == "") && len(govt) > 0 {
		b.WriteString("🏛️ **Government Engineering Colleges:**\n\n")
		for i, rec := range govt {
			writeGovtEntry(&b, i+1, rec.Record)
		}
	}

	if (collegeType == "Private" || collegeType == "") && len(private) > 0 {
		b.WriteString("🏢 **Private Engineering Colleges:**\n\n")
		for i, rec := range private {
			writePrivateEntry(&b, i+1, rec.Record)
		}
	}

	if len(govt) == 0 && len(private) == 0 {
		b.WriteString("No colleges found matching your criteria.\n")
		b.WriteString("Please try adjusting your preferences or contact support.")
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeGovtEntry(b *strings.Builder, n int, rec *domain.ProgramRecord) {
	fmt.Fprintf(b, "%d. **%s**\n", n, rec.CollegeName)
	writeContactLine(b, rec)

	justification := fmt.Sprintf("   - Excellent %s program", rec.Branch)
	if _, _, avgRank := rec.Cutoff.Realized(); avgRank < domain.NoDataRank {
		justification += fmt.Sprintf(" with cutoff rank around %d", int(avgRank))
	}
	if rec.Location != "" {
		justification += " in " + rec.Location
	}
	b.WriteString(justification + "\n\n")
}

func writePrivateEntry(b *strings.Builder, n int, rec *domain.ProgramRecord) {
	fmt.Fprintf(b, "%d. **%s**\n", n, rec.CollegeName)
	writeContactLine(b, rec)

	justification := fmt.Sprintf("   - Strong %s program", rec.Branch)
	if rec.Location != "" {
		justification += " located in " + rec.Location
	}
	if rec.Fees != nil {
		justification += fmt.Sprintf(" with fees around %v", rec.Fees)
	}
	b.WriteString(justification + "\n\n")
}

// writeContactLine prefers the website over the location, mirroring how the
// UI links entries.
func writeContactLine(b *strings.Builder, rec *domain.ProgramRecord) {
	switch {
	case rec.Website != nil && *rec.Website != "":
		fmt.Fprintf(b, "   - Website: %s\n", *rec.Website)
	case rec.Location != "":
		fmt.Fprintf(b, "   - Location: %s\n", rec.Location)
	}
}
