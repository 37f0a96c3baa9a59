package gemini

import (
	"google.golang.org/genai"

	"github.com/dynamicweb/dynamicweb/internal/blueprint"
)

// toSchema translates the provider-neutral output schema into the GenAI
// representation used by responseSchema.
func toSchema(s *blueprint.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{Type: toType(s.Type)}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toSchema(prop)
		}
	}
	if s.Items != nil {
		out.Items = toSchema(s.Items)
	}
	if len(s.Required) > 0 {
		out.Required = append([]string(nil), s.Required...)
	}
	if len(s.Ordering) > 0 {
		out.PropertyOrdering = append([]string(nil), s.Ordering...)
	}
	return out
}

func toType(t blueprint.Type) genai.Type {
	switch t {
	case blueprint.TypeObject:
		return genai.TypeObject
	case blueprint.TypeArray:
		return genai.TypeArray
	default:
		return genai.TypeString
	}
}
