package extract

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/ammar944/AI-GOS-sub011/internal/model"
)

// ParsePartial decodes a prefix of the model's JSON output. Fields whose
// shape is not yet recognizable are skipped; ok is false when the prefix
// holds no object yet.
func ParsePartial(raw string) (*model.CompanyResearchOutput, bool) {
	doc, ok := completePrefix(raw)
	if !ok || !gjson.Valid(doc) {
		return nil, false
	}
	root := gjson.Parse(doc)
	if !root.IsObject() {
		return nil, false
	}

	out := &model.CompanyResearchOutput{}
	for _, f := range model.ResearchFields {
		r := root.Get(f.Key)
		if !r.IsObject() {
			continue
		}
		field := &model.ExtractionField{}
		switch v := r.Get("value"); v.Type {
		case gjson.String:
			field.Value = model.StringPtr(v.Str)
		case gjson.Null:
		default:
			if v.Exists() {
				continue
			}
		}
		if c := model.Confidence(r.Get("confidence").Str); c.Valid() {
			field.Confidence = c
		}
		if s := r.Get("source"); s.Type == gjson.String {
			field.Source = s.Str
		}
		*out.Slot(f.Key) = field
	}
	return out, true
}

// parseFinal validates and decodes the complete model output. Keys missing
// from the document decode as null; anything present must match the
// schema.
func parseFinal(raw string) (*model.CompanyResearchOutput, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, &SchemaError{Reason: "empty completion"}
	}
	if !gjson.Valid(raw) {
		return nil, &SchemaError{Reason: "completion is not valid JSON"}
	}
	root := gjson.Parse(raw)
	if !root.IsObject() {
		return nil, &SchemaError{Reason: "completion is not a JSON object"}
	}

	out := &model.CompanyResearchOutput{}
	for _, f := range model.ResearchFields {
		field, reason := decodeField(root.Get(f.Key))
		if reason != "" {
			return nil, &SchemaError{Field: f.Key, Reason: reason}
		}
		*out.Slot(f.Key) = field
	}
	return out, nil
}

func decodeField(r gjson.Result) (*model.ExtractionField, string) {
	if !r.Exists() || r.Type == gjson.Null {
		return nil, ""
	}
	if !r.IsObject() {
		return nil, "expected an object or null"
	}

	field := &model.ExtractionField{}
	switch v := r.Get("value"); {
	case v.Type == gjson.String:
		field.Value = model.StringPtr(v.Str)
	case v.Type == gjson.Null && v.Exists():
	default:
		return nil, "value must be a string or null"
	}

	c := r.Get("confidence")
	if c.Type != gjson.String || !model.Confidence(c.Str).Valid() {
		return nil, "confidence must be one of high, medium, low"
	}
	field.Confidence = model.Confidence(c.Str)

	switch s := r.Get("source"); s.Type {
	case gjson.String:
		field.Source = s.Str
	case gjson.Null:
		if field.Value != nil {
			return nil, "source must be a string"
		}
	default:
		return nil, "source must be a string"
	}
	return field, ""
}
