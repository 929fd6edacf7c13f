package features

import (
	"regexp"
	"strconv"
	"strings"
)

// Parse fallbacks: any unparseable numeric field resolves to its documented
// neutral or sentinel default instead of propagating an error. Deliberate
// policy, see the neutral constants below.
const (
	neutralPlacement = 0.5
	neutralRating    = 3.0
	lakh             = 100000
)

var (
	digitRun   = regexp.MustCompile(`\d+`)
	decimalRun = regexp.MustCompile(`[\d.]+`)
)

// firstNumber extracts the first decimal-looking run from text. Returns
// (0, false) when nothing parses.
func firstNumber(text string) (float64, bool) {
	m := decimalRun.FindString(text)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// firstDigits extracts the first run of digits after removing thousands
// separators.
func firstDigits(text string) (float64, bool) {
	m := digitRun.FindString(strings.ReplaceAll(text, ",", ""))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseFees coerces a raw fee field to a currency amount. Numbers pass
// through; text yields its first digit run ("Rs. 1,50,000" -> 150000);
// anything else is 0.
func parseFees(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		if n, ok := firstDigits(v); ok {
			return n
		}
	}
	return 0
}

// parsePlacement coerces a placement field to [0,1]. Values above 1 are read
// as percentages and divided by 100. Missing or unparseable is neutral 0.5.
func parsePlacement(value any) float64 {
	asFraction := func(v float64) float64 {
		if v > 1 {
			return v / 100
		}
		return v
	}
	switch v := value.(type) {
	case float64:
		return asFraction(v)
	case int:
		return asFraction(float64(v))
	case string:
		if n, ok := firstNumber(v); ok {
			return asFraction(n)
		}
	}
	return neutralPlacement
}

// parseRating coerces a rating field to the 0-5 scale. Missing or
// unparseable is neutral 3.0.
func parseRating(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		if n, ok := firstNumber(v); ok {
			return n
		}
	}
	return neutralRating
}

// ParseBudget converts free-text budget ranges to rupees. "15 lakh" and
// "2.5 lac" multiply by 100000; otherwise the first digit run (commas
// removed) is taken verbatim; unparseable is 0.
func ParseBudget(budgetRange string) float64 {
	if budgetRange == "" {
		return 0
	}
	lower := strings.ToLower(budgetRange)
	if strings.Contains(lower, "lakh") || strings.Contains(lower, "lac") {
		if n, ok := firstNumber(budgetRange); ok {
			return n * lakh
		}
	}
	if n, ok := firstDigits(budgetRange); ok {
		return n
	}
	return 0
}
