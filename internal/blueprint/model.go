package blueprint

import "encoding/json"

// Blueprint is the structured architecture recommendation produced for a
// project idea. A Blueprint is built once from a decoded provider payload and
// never updated in place; a new generation replaces it wholesale.
type Blueprint struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Architecture   string   `json:"architecture"`
	FrontendStack  []string `json:"frontendStack"`
	BackendStack   []string `json:"backendStack"`
	DatabaseSchema []Table  `json:"databaseSchema"`
	KeyFeatures    []string `json:"keyFeatures"`
}

// Table is one entry of a blueprint's database schema.
type Table struct {
	Table  string   `json:"table"`
	Fields []string `json:"fields"`
}

// Encode returns the canonical JSON form of a blueprint. Nil lists are
// written as empty arrays so the output always satisfies ResponseSchema.
func Encode(bp *Blueprint) ([]byte, error) {
	out := *bp
	out.FrontendStack = nonNil(bp.FrontendStack)
	out.BackendStack = nonNil(bp.BackendStack)
	out.KeyFeatures = nonNil(bp.KeyFeatures)
	out.DatabaseSchema = make([]Table, len(bp.DatabaseSchema))
	for i, t := range bp.DatabaseSchema {
		out.DatabaseSchema[i] = Table{Table: t.Table, Fields: nonNil(t.Fields)}
	}
	return json.Marshal(out)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
