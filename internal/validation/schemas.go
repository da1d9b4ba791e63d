// Package validation checks inbound request payloads against JSON schemas
// before they reach the engine. Schemas are embedded so the binary is
// self-contained.
package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

const searchFiltersSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"query": {"type": "string", "maxLength": 256},
		"genres": {"type": "array", "items": {"type": "string"}},
		"languages": {"type": "array", "items": {"type": "string"}},
		"actors": {"type": "array", "items": {"type": "string"}},
		"tags": {"type": "array", "items": {"type": "string"}},
		"year": {"$ref": "#/definitions/range"},
		"duration": {"$ref": "#/definitions/range"},
		"rating": {"$ref": "#/definitions/range"},
		"type": {"type": "string", "enum": ["movie", "music", "all"]},
		"sort_by": {"type": "string"},
		"sort_order": {"type": "string", "enum": ["asc", "desc"]},
		"offset": {"type": "integer", "minimum": 0},
		"limit": {"type": "integer", "minimum": 1, "maximum": 100}
	},
	"additionalProperties": false,
	"definitions": {
		"range": {
			"type": "object",
			"properties": {
				"min": {"type": "number"},
				"max": {"type": "number"}
			},
			"additionalProperties": false
		}
	}
}`

// ValidationResult carries the outcome of one schema check.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// SchemaValidator validates API payloads against the embedded schemas.
type SchemaValidator struct {
	schemas map[string]*gojsonschema.Schema
}

func NewSchemaValidator() (*SchemaValidator, error) {
	sources := map[string]string{
		"search-filters": searchFiltersSchema,
	}

	sv := &SchemaValidator{schemas: make(map[string]*gojsonschema.Schema)}
	for name, source := range sources {
		schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
		}
		sv.schemas[name] = schema
	}
	return sv, nil
}

// ValidateSearchFilters checks a raw search request body.
func (sv *SchemaValidator) ValidateSearchFilters(body []byte) *ValidationResult {
	return sv.validate("search-filters", body)
}

func (sv *SchemaValidator) validate(schemaName string, body []byte) *ValidationResult {
	schema, exists := sv.schemas[schemaName]
	if !exists {
		return &ValidationResult{Valid: false, Errors: []string{fmt.Sprintf("unknown schema %s", schemaName)}}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return &ValidationResult{Valid: false, Errors: []string{err.Error()}}
	}
	if result.Valid() {
		return &ValidationResult{Valid: true}
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		errs = append(errs, e.String())
	}
	return &ValidationResult{Valid: false, Errors: errs}
}
