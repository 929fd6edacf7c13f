package domain

// Preferences is the user's stated preference bag. Every field is optional;
// an empty string means "no preference".
type Preferences struct {
	CollegeType       string `json:"college_type,omitempty"`
	PreferredLocation string `json:"preferred_location,omitempty"`
	Specialization    string `json:"specialization,omitempty"`
	BudgetRange       string `json:"budget_range,omitempty"` // free text, e.g. "15 lakh"
}

// Query is one recommendation request. It exists only for the duration of a
// single recommend call.
type Query struct {
	BoardPercentage float64     `json:"board_percentage"`
	Preferences     Preferences `json:"preferences"`
}
