package model

// Confidence is the qualitative certainty tier attached to an extracted field.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Valid reports whether c is one of the three defined tiers.
func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	default:
		return false
	}
}

// Rank orders tiers so that higher confidence compares greater. Unknown
// tiers rank below low.
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	default:
		return 0
	}
}

// ExtractionField is one researched attribute: the value found, how sure the
// model is, and where the evidence came from. A nil Value means no evidence.
type ExtractionField struct {
	Value      *string    `json:"value"`
	Confidence Confidence `json:"confidence"`
	Source     string     `json:"source"`
}

// HasValue reports whether the field carries a non-empty value.
func (f *ExtractionField) HasValue() bool {
	return f != nil && f.Value != nil && *f.Value != ""
}

// Text returns the value or "" when absent.
func (f *ExtractionField) Text() string {
	if !f.HasValue() {
		return ""
	}
	return *f.Value
}

// Clone returns a deep copy of f.
func (f *ExtractionField) Clone() *ExtractionField {
	if f == nil {
		return nil
	}
	out := *f
	if f.Value != nil {
		v := *f.Value
		out.Value = &v
	}
	return &out
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}
