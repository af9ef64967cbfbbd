package questionbank

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const bankSchemaURL = "schema://question-bank.json"

// bankSchemaDef describes a question bank file: an array of records with
// string question and answer, and optional choices and explanation.
var bankSchemaDef = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "object",
		"required": []any{"question", "answer"},
		"properties": map[string]any{
			"question": map[string]any{"type": "string", "minLength": 1},
			"answer":   map[string]any{"type": "string", "minLength": 1},
			"choices": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"explanation": map[string]any{"type": "string"},
		},
	},
}

var (
	bankSchemaOnce sync.Once
	bankSchema     *jsonschema.Schema
	bankSchemaErr  error
)

// compiledBankSchema compiles the bank schema once and reuses it.
func compiledBankSchema() (*jsonschema.Schema, error) {
	bankSchemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(bankSchemaURL, bankSchemaDef); err != nil {
			bankSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		bankSchema, bankSchemaErr = c.Compile(bankSchemaURL)
	})
	return bankSchema, bankSchemaErr
}
