// Package schema generates JSON Schemas for configuration structs.
package schema

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
)

// GenerateSchema creates a JSON schema from a Go struct.
// It uses the `invopop/jsonschema` library to reflect on the struct
// and generate a standard JSON Schema (Draft 2020-12).
//
// Nested structs are expanded inline. Property names follow the json tags;
// jsonschema tags add defaults, enums and bounds.
func GenerateSchema(v any, opts ...Option) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true, // Expand struct definitions inline
		DoNotReference: true,
	}
	for _, opt := range opts {
		opt(&reflector)
	}
	schema := reflector.Reflect(v)

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return jsonBytes, nil
}

// Option adjusts the reflector used by GenerateSchema.
type Option func(*jsonschema.Reflector)

// WithID sets the schema's $id.
func WithID(id string) Option {
	return func(r *jsonschema.Reflector) {
		r.BaseSchemaID = jsonschema.ID(id)
	}
}
