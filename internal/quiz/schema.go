package quiz

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a named JSON Schema definition for a definition document.
type Schema struct {
	Name       string
	Definition map[string]any
}

var levelEnum = []any{string(LevelHigh), string(LevelMedium), string(LevelLow)}

// QuizSchema describes a single quiz definition file.
var QuizSchema = &Schema{
	Name: "quiz",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"id", "name", "dimensions", "questions", "results"},
		"properties": map[string]any{
			"id":    map[string]any{"type": "string", "minLength": 1, "pattern": "^[a-z0-9_-]+$"},
			"name":  map[string]any{"type": "string", "minLength": 1},
			"emoji": map[string]any{"type": "string"},
			"desc":  map[string]any{"type": "string"},
			"dimensions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []any{"id", "name"},
					"properties": map[string]any{
						"id":    map[string]any{"type": "string", "minLength": 1},
						"name":  map[string]any{"type": "string"},
						"emoji": map[string]any{"type": "string"},
						"desc":  map[string]any{"type": "string"},
					},
				},
			},
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []any{"text", "dimension", "answers"},
					"properties": map[string]any{
						"text":      map[string]any{"type": "string", "minLength": 1},
						"dimension": map[string]any{"type": "string", "minLength": 1},
						"answers": map[string]any{
							"type":     "array",
							"minItems": 1,
							"items": map[string]any{
								"type":     "object",
								"required": []any{"text", "score"},
								"properties": map[string]any{
									"text":  map[string]any{"type": "string"},
									"score": map[string]any{"type": "integer"},
								},
							},
						},
					},
				},
			},
			"results": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []any{"name"},
					"properties": map[string]any{
						"name":  map[string]any{"type": "string", "minLength": 1},
						"emoji": map[string]any{"type": "string"},
						"desc":  map[string]any{"type": "string"},
						"condition": map[string]any{
							"type":                 []any{"object", "null"},
							"additionalProperties": map[string]any{"enum": levelEnum},
						},
						"interpretation": map[string]any{"type": "string"},
						"guidance":       map[string]any{"type": "string"},
					},
				},
			},
		},
	},
}

// CorrelationsSchema describes the correlations file.
var CorrelationsSchema = &Schema{
	Name: "correlations",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"tables"},
		"properties": map[string]any{
			"tables": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"source", "target", "weights"},
					"properties": map[string]any{
						"source": map[string]any{"type": "string", "minLength": 1},
						"target": map[string]any{"type": "string", "minLength": 1},
						"weights": map[string]any{
							"type": "object",
							"additionalProperties": map[string]any{
								"type": "object",
								"additionalProperties": map[string]any{
									"type":    "number",
									"minimum": -1,
									"maximum": 1,
								},
							},
						},
					},
				},
			},
		},
	},
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateDocument checks a decoded YAML document against schema.
func validateDocument(schema *Schema, doc any) error {
	// Normalize through JSON so numbers and maps have the shapes the
	// validator expects.
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}

	compiled, err := getCompiledSchema(schema)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", schema.Name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
