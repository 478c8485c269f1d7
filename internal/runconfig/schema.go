package runconfig

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildOverridesSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map, used to validate operator overrides before unmarshalling.
func BuildOverridesSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"fixed_date":          map[string]any{"type": "string"},
			"fixed_total_ballots": map[string]any{"type": "string", "pattern": `^\d*$`},
			"forced_party": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type":      "string",
					"minLength": 2,
				},
			},
			"pattern_parsing": map[string]any{"type": "boolean"},
			"duplicate_precinct": map[string]any{
				"type": "string",
				"enum": []any{DuplicateNewSegment, DuplicateMerge},
			},
		},
	}
}

// ValidateOverridesJSON validates raw overrides JSON against the schema.
func ValidateOverridesJSON(data []byte) error {
	b, err := json.Marshal(BuildOverridesSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("overrides.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("overrides.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal overrides: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("overrides do not match schema: %w", err)
	}
	return nil
}
