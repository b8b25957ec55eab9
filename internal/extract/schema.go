package extract

import (
	"google.golang.org/genai"

	"github.com/ammar944/AI-GOS-sub011/internal/model"
)

// Schema is a provider-neutral subset of JSON Schema, rendered per
// provider by JSONSchema and GenaiSchema.
type Schema struct {
	Type        string
	Description string
	Nullable    bool
	Enum        []string
	Properties  map[string]*Schema
	Required    []string
	// Order lists property names in the order the model should emit them.
	Order []string
}

// ResearchSchema describes CompanyResearchOutput: every research field is
// required and is either null or an extraction object.
func ResearchSchema() *Schema {
	root := &Schema{
		Type:       "object",
		Properties: make(map[string]*Schema, len(model.ResearchFields)),
	}
	for _, f := range model.ResearchFields {
		root.Properties[f.Key] = fieldSchema(f.Description)
		root.Required = append(root.Required, f.Key)
		root.Order = append(root.Order, f.Key)
	}
	return root
}

func fieldSchema(desc string) *Schema {
	return &Schema{
		Type:        "object",
		Description: desc,
		Nullable:    true,
		Properties: map[string]*Schema{
			"value": {
				Type:        "string",
				Nullable:    true,
				Description: "The verified value, quoted from the source where possible, or null when no evidence exists.",
			},
			"confidence": {
				Type:        "string",
				Enum:        []string{string(model.ConfidenceHigh), string(model.ConfidenceMedium), string(model.ConfidenceLow)},
				Description: "high when stated explicitly, medium when clearly implied, low when inferred.",
			},
			"source": {
				Type:        "string",
				Description: "The URL the value was found on. Empty only when value is null.",
			},
		},
		Required: []string{"value", "confidence", "source"},
		Order:    []string{"value", "confidence", "source"},
	}
}

// JSONSchema renders s as a JSON Schema document.
func (s *Schema) JSONSchema() map[string]any {
	out := map[string]any{}
	if s.Nullable {
		out["type"] = []string{s.Type, "null"}
	} else {
		out["type"] = s.Type
	}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Enum) > 0 {
		out["enum"] = s.Enum
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = p.JSONSchema()
		}
		out["properties"] = props
		out["additionalProperties"] = false
	}
	if len(s.Required) > 0 {
		out["required"] = s.Required
	}
	return out
}

var genaiTypes = map[string]genai.Type{
	"object":  genai.TypeObject,
	"string":  genai.TypeString,
	"array":   genai.TypeArray,
	"number":  genai.TypeNumber,
	"integer": genai.TypeInteger,
	"boolean": genai.TypeBoolean,
}

// GenaiSchema renders s as a Gemini response schema.
func (s *Schema) GenaiSchema() *genai.Schema {
	out := &genai.Schema{
		Type:             genaiTypes[s.Type],
		Description:      s.Description,
		Enum:             s.Enum,
		Required:         s.Required,
		PropertyOrdering: s.Order,
	}
	if s.Nullable {
		out.Nullable = genai.Ptr(true)
	}
	if len(s.Enum) > 0 {
		out.Format = "enum"
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, p := range s.Properties {
			out.Properties[name] = p.GenaiSchema()
		}
	}
	return out
}
