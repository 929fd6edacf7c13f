package features

// Encoder is a fit-once mapping from category label to integer code. It is
// built during training and read-only afterwards; every query-time transform
// reuses the same table.
type Encoder struct {
	codes map[string]int
}

// NewEncoder creates an encoder pre-seeded with known labels, in order. A
// seeded label keeps its code even when it never appears in the data.
func NewEncoder(seed ...string) *Encoder {
	e := &Encoder{codes: make(map[string]int, len(seed))}
	for _, label := range seed {
		e.observe(label)
	}
	return e
}

func (e *Encoder) observe(label string) {
	if _, ok := e.codes[label]; !ok {
		e.codes[label] = len(e.codes)
	}
}

// FitEncoder assigns codes in first-seen order over a column's values.
func FitEncoder(values []string, seed ...string) *Encoder {
	e := NewEncoder(seed...)
	for _, v := range values {
		e.observe(v)
	}
	return e
}

// Code returns the label's code. An unseen label maps to 0, not an error.
func (e *Encoder) Code(label string) int {
	if e == nil {
		return 0
	}
	return e.codes[label]
}

// Len returns the number of distinct labels.
func (e *Encoder) Len() int {
	if e == nil {
		return 0
	}
	return len(e.codes)
}
