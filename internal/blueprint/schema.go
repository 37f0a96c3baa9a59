package blueprint

import (
	"fmt"
	"sort"
	"strconv"
)

// SchemaVersion identifies the revision of ResponseSchema sent to providers.
const SchemaVersion = "2025-01"

// Type is a JSON value type understood by the output schema.
type Type string

const (
	TypeString Type = "string"
	TypeArray  Type = "array"
	TypeObject Type = "object"
)

// Schema is a provider-neutral description of a structured output. It covers
// the subset of OpenAPI schema that providers accept for structured output.
type Schema struct {
	Type       Type
	Properties map[string]*Schema
	Items      *Schema
	Required   []string
	// Ordering lists object properties in the order providers should emit them.
	Ordering []string
}

// ResponseSchema is the output contract for blueprint generation. Field names
// and required-ness must match Blueprint exactly.
var ResponseSchema = &Schema{
	Type: TypeObject,
	Properties: map[string]*Schema{
		"title":         {Type: TypeString},
		"description":   {Type: TypeString},
		"architecture":  {Type: TypeString},
		"frontendStack": stringList(),
		"backendStack":  stringList(),
		"databaseSchema": {
			Type: TypeArray,
			Items: &Schema{
				Type: TypeObject,
				Properties: map[string]*Schema{
					"table":  {Type: TypeString},
					"fields": stringList(),
				},
				Required: []string{"table", "fields"},
				Ordering: []string{"table", "fields"},
			},
		},
		"keyFeatures": stringList(),
	},
	Required: []string{"title", "description", "architecture", "frontendStack", "backendStack", "databaseSchema", "keyFeatures"},
	Ordering: []string{"title", "description", "architecture", "frontendStack", "backendStack", "databaseSchema", "keyFeatures"},
}

func stringList() *Schema {
	return &Schema{Type: TypeArray, Items: &Schema{Type: TypeString}}
}

// FieldError describes the first place a decoded value violates a schema.
type FieldError struct {
	Path   string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

// Validate checks a value produced by json.Unmarshal into an `any` against
// the schema. Required properties must be present and non-null; properties
// not named by the schema are ignored.
func (s *Schema) Validate(v any) error {
	return s.validate("$", v)
}

func (s *Schema) validate(path string, v any) error {
	switch s.Type {
	case TypeString:
		if _, ok := v.(string); !ok {
			return &FieldError{Path: path, Reason: "expected string, got " + kindOf(v)}
		}
	case TypeArray:
		items, ok := v.([]any)
		if !ok {
			return &FieldError{Path: path, Reason: "expected array, got " + kindOf(v)}
		}
		if s.Items == nil {
			return nil
		}
		for i, item := range items {
			if err := s.Items.validate(path+"["+strconv.Itoa(i)+"]", item); err != nil {
				return err
			}
		}
	case TypeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return &FieldError{Path: path, Reason: "expected object, got " + kindOf(v)}
		}
		for _, name := range s.Required {
			val, present := obj[name]
			if !present {
				return &FieldError{Path: path + "." + name, Reason: "required field missing"}
			}
			if val == nil {
				return &FieldError{Path: path + "." + name, Reason: "required field is null"}
			}
		}
		for _, name := range s.propertyNames() {
			val, present := obj[name]
			if !present || val == nil {
				continue
			}
			if err := s.Properties[name].validate(path+"."+name, val); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("schema at %s: unsupported type %q", path, s.Type)
	}
	return nil
}

// propertyNames returns property names in declared order so the first
// reported violation is deterministic.
func (s *Schema) propertyNames() []string {
	if len(s.Ordering) == len(s.Properties) {
		return s.Ordering
	}
	names := make([]string, 0, len(s.Properties))
	seen := make(map[string]bool, len(s.Properties))
	for _, n := range s.Ordering {
		if _, ok := s.Properties[n]; ok {
			names = append(names, n)
			seen[n] = true
		}
	}
	var rest []string
	for n := range s.Properties {
		if !seen[n] {
			rest = append(rest, n)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
