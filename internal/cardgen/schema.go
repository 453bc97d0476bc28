package cardgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// batchSchemaName identifies the card batch schema in provider requests
// that carry a named structured-output format.
const batchSchemaName = "card-batch"

// batchSchemaDef is the JSON schema every generated card batch must
// satisfy before drafts are handed back to the caller.
var batchSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"cards": map[string]any{
			"type":        "array",
			"minItems":    1,
			"description": "The generated flashcards",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"front": map[string]any{
						"type":        "string",
						"minLength":   1,
						"description": "The question or prompt side of the card",
					},
					"back": map[string]any{
						"type":        "string",
						"minLength":   1,
						"description": "The answer side of the card",
					},
					"difficulty": map[string]any{
						"type":        "string",
						"enum":        []any{"easy", "medium", "hard"},
						"description": "Estimated difficulty of the card",
					},
				},
				"required":             []any{"front", "back", "difficulty"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"cards"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// parseBatch validates raw model output against the card batch schema
// and decodes it. Returns *ErrInvalidBatch on any mismatch.
func parseBatch(raw string) ([]CardDraft, error) {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, &ErrInvalidBatch{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := batchSchema()
	if err != nil {
		return nil, &ErrInvalidBatch{Content: raw, Err: fmt.Errorf("compile schema: %w", err)}
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, &ErrInvalidBatch{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var batch struct {
		Cards []CardDraft `json:"cards"`
	}
	if err := json.Unmarshal([]byte(raw), &batch); err != nil {
		return nil, &ErrInvalidBatch{Content: raw, Err: err}
	}
	return batch.Cards, nil
}

func batchSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library wants a parsed JSON value, not Go maps
		// with arbitrary types. Round-trip through encoding/json.
		defBytes, err := json.Marshal(batchSchemaDef)
		if err != nil {
			compileErr = err
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = err
			return
		}

		c := jsonschema.NewCompiler()
		url := fmt.Sprintf("schema://%s.json", batchSchemaName)
		if err := c.AddResource(url, defParsed); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}
