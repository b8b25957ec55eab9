package extract

import (
	"strings"

	"github.com/ammar944/AI-GOS-sub011/internal/model"
)

// Merge folds next into acc and reports whether acc changed. A field never
// reverts to null, a non-empty value replaces the previous one, and
// confidence never drops below the highest tier seen for the field.
func Merge(acc, next *model.CompanyResearchOutput) bool {
	if acc == nil || next == nil {
		return false
	}
	changed := false
	for _, f := range model.ResearchFields {
		if mergeField(acc.Slot(f.Key), next.Get(f.Key)) {
			changed = true
		}
	}
	return changed
}

func mergeField(slot **model.ExtractionField, next *model.ExtractionField) bool {
	if next == nil {
		return false
	}
	cur := *slot
	if cur == nil {
		f := next.Clone()
		if !f.Confidence.Valid() {
			f.Confidence = ""
		}
		*slot = f
		return true
	}

	merged := cur.Clone()
	if next.HasValue() {
		merged.Value = model.StringPtr(*next.Value)
	}
	if next.Source != "" {
		merged.Source = next.Source
	}
	if next.Confidence.Valid() && next.Confidence.Rank() > merged.Confidence.Rank() {
		merged.Confidence = next.Confidence
	}
	if fieldsEqual(cur, merged) {
		return false
	}
	*slot = merged
	return true
}

func fieldsEqual(a, b *model.ExtractionField) bool {
	return a.Text() == b.Text() && (a.Value == nil) == (b.Value == nil) &&
		a.Confidence == b.Confidence && a.Source == b.Source
}

// enforceSources nulls values that carry no source and empty-string values,
// so a finalized document only holds evidenced claims.
func enforceSources(out *model.CompanyResearchOutput) {
	for _, f := range model.ResearchFields {
		field := out.Get(f.Key)
		if field == nil || field.Value == nil {
			continue
		}
		if strings.TrimSpace(*field.Value) == "" || strings.TrimSpace(field.Source) == "" {
			field.Value = nil
		}
	}
}

// evidenced returns a copy of acc holding only the values enforceSources
// keeps. Merge never drops a value or a source, so successive views only
// grow.
func evidenced(acc *model.CompanyResearchOutput) *model.CompanyResearchOutput {
	out := acc.Clone()
	enforceSources(out)
	return out
}

func sameOutput(a, b *model.CompanyResearchOutput) bool {
	for _, f := range model.ResearchFields {
		x, y := a.Get(f.Key), b.Get(f.Key)
		if (x == nil) != (y == nil) {
			return false
		}
		if x != nil && !fieldsEqual(x, y) {
			return false
		}
	}
	return true
}
