package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/abhisek/quizday/internal/questionbank"
)

// ManifestPath is where an optional catalog manifest lives in a bank Source.
const ManifestPath = "catalog.json"

// SupportedMajor is the manifest major version this build understands.
const SupportedMajor = "v1"

var (
	ErrUnknownTheme    = errors.New("unknown theme")
	ErrInvalidManifest = errors.New("invalid catalog manifest")
)

// Theme is a named question bank.
type Theme struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Catalog is the ordered list of themes offered for practice.
type Catalog struct {
	Version string  `json:"version"`
	Themes  []Theme `json:"themes"`
}

var builtin = []Theme{
	{ID: "vocabulary", Name: "Vocabulary"},
	{ID: "tables", Name: "Table"},
	{ID: "indianRulers", Name: "Indian Rulers Timeline"},
	{ID: "atomicNumbers", Name: "Atomic Numbers"},
	{ID: "britishGovernors", Name: "Governor General and Viceroys"},
	{ID: "trignometricEquations", Name: "Trignometric Equations"},
}

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog {
	themes := make([]Theme, len(builtin))
	copy(themes, builtin)
	return &Catalog{Version: "v1.0.0", Themes: themes}
}

// Lookup returns the theme with id.
func (c *Catalog) Lookup(id string) (Theme, error) {
	for _, t := range c.Themes {
		if t.ID == id {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, id)
}

// Name returns the display name for id, or id itself when unknown.
func (c *Catalog) Name(id string) string {
	if t, err := c.Lookup(id); err == nil {
		return t.Name
	}
	return id
}

// Load reads the manifest from src. A source without a manifest yields
// the built-in catalog; any other failure is returned.
func Load(ctx context.Context, src questionbank.Source, logger *slog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	raw, err := src.Fetch(ctx, ManifestPath)
	if errors.Is(err, questionbank.ErrNotFound) {
		logger.Debug("no catalog manifest, using built-in themes")
		return Builtin(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch catalog manifest: %w", err)
	}

	cat, err := ParseManifest(raw)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog manifest loaded", "version", cat.Version, "themes", len(cat.Themes))
	return cat, nil
}

// ParseManifest validates and decodes a catalog manifest.
func ParseManifest(raw []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	sch, err := manifestSchema()
	if err != nil {
		return nil, fmt.Errorf("compile manifest schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	var cat Catalog
	if err := json.Unmarshal(raw, &cat); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	if !semver.IsValid(cat.Version) {
		return nil, fmt.Errorf("%w: version %q is not semver", ErrInvalidManifest, cat.Version)
	}
	if major := semver.Major(cat.Version); major != SupportedMajor {
		return nil, fmt.Errorf("%w: version %s is not supported (want %s.x)", ErrInvalidManifest, cat.Version, SupportedMajor)
	}

	seen := make(map[string]bool, len(cat.Themes))
	for _, t := range cat.Themes {
		if seen[t.ID] {
			return nil, fmt.Errorf("%w: duplicate theme %q", ErrInvalidManifest, t.ID)
		}
		seen[t.ID] = true
	}
	return &cat, nil
}

const manifestSchemaURL = "schema://catalog.json"

var manifestSchemaDef = map[string]any{
	"type":     "object",
	"required": []any{"version", "themes"},
	"properties": map[string]any{
		"version": map[string]any{"type": "string"},
		"themes": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "name"},
				"properties": map[string]any{
					"id":   map[string]any{"type": "string", "pattern": "^[A-Za-z0-9_-]+$"},
					"name": map[string]any{"type": "string", "minLength": 1},
				},
			},
		},
	},
}

var compiledManifest sync.Map // map[string]*jsonschema.Schema

func manifestSchema() (*jsonschema.Schema, error) {
	if cached, ok := compiledManifest.Load(manifestSchemaURL); ok {
		return cached.(*jsonschema.Schema), nil
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(manifestSchemaURL, manifestSchemaDef); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(manifestSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	compiledManifest.Store(manifestSchemaURL, compiled)
	return compiled, nil
}
