package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const stateSchemaURL = "schema://study_plan.json"

// stateSchema describes a well-formed persisted record. Fields may be
// absent (older records); present fields must have the right shape.
var stateSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"subjects": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":     "object",
				"required": []any{"credits", "portions"},
				"properties": map[string]any{
					"credits":  map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
					"portions": stringList,
				},
			},
		},
		"completed": map[string]any{"type": "object", "additionalProperties": stringList},
		"revision":  map[string]any{"type": "object", "additionalProperties": stringList},
		"streak": map[string]any{
			"type":     "object",
			"required": []any{"count", "last_date"},
			"properties": map[string]any{
				"count":     map[string]any{"type": "integer", "minimum": 0},
				"last_date": map[string]any{"type": "string"},
			},
		},
		"topic_progress": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "integer", "minimum": 0},
		},
		"weekly_stats": map[string]any{
			"type":     "object",
			"required": []any{"total", "done"},
			"properties": map[string]any{
				"total": map[string]any{"type": "integer", "minimum": 0},
				"done":  map[string]any{"type": "integer", "minimum": 0},
			},
		},
	},
}

var stringList = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func getStateSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a plain decoded JSON value.
		defBytes, err := json.Marshal(stateSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(stateSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(stateSchemaURL)
	})
	return compiledSchema, compileErr
}

// validateRecord checks raw JSON against the record schema.
func validateRecord(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := getStateSchema()
	if err != nil {
		return fmt.Errorf("compile record schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// decodeState validates and decodes a persisted record.
func decodeState(raw []byte) (*State, error) {
	if err := validateRecord(raw); err != nil {
		return nil, err
	}
	st := DefaultState()
	if err := json.Unmarshal(raw, st); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	st.Normalize()
	return st, nil
}

// encodeState renders the record for storage.
func encodeState(st *State) ([]byte, error) {
	st.Normalize()
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return b, nil
}
