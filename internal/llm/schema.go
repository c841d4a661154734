package llm

// Schema definitions for structured output. Shapes mirror the persisted
// challenge payload and the feedback payload; additionalProperties is false
// so strict mode can be enabled.

type schemaDef struct {
	Name       string
	Definition map[string]any
}

var challengeSchema = schemaDef{
	Name: "challenge",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"challenge":               map[string]any{"type": "string"},
			"hints":                   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"is_code_challenge":       map[string]any{"type": "boolean"},
			"programming_language":    map[string]any{"type": "string"},
			"estimated_solution_time": map[string]any{"type": "integer"},
			"use_cases_input":         map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"use_cases_output":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required":             []string{"challenge", "hints", "is_code_challenge", "use_cases_input", "use_cases_output"},
		"additionalProperties": false,
	},
}

var feedbackSchema = schemaDef{
	Name: "feedback",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"feedback":              map[string]any{"type": "string"},
			"score_average":         map[string]any{"type": "number"},
			"class_recommendations": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"required":             []string{"feedback", "score_average", "class_recommendations"},
		"additionalProperties": false,
	},
}

// schemaFor maps a SchemaKind to its definition. SchemaMessage has none:
// the response is plain text.
func schemaFor(kind SchemaKind) *schemaDef {
	switch kind {
	case SchemaChallenge:
		return &challengeSchema
	case SchemaFeedback:
		return &feedbackSchema
	default:
		return nil
	}
}
