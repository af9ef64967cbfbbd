package catalog

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizday/internal/questionbank"
)

func TestBuiltin(t *testing.T) {
	cat := Builtin()
	require.Len(t, cat.Themes, 6)
	assert.Equal(t, "vocabulary", cat.Themes[0].ID)
	assert.Equal(t, "Indian Rulers Timeline", cat.Name("indianRulers"))
	assert.Equal(t, "mystery", cat.Name("mystery"))

	_, err := cat.Lookup("mystery")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestBuiltin_ReturnsCopy(t *testing.T) {
	a := Builtin()
	a.Themes[0].Name = "changed"
	assert.Equal(t, "Vocabulary", Builtin().Themes[0].Name)
}

func TestLoad_FallsBackToBuiltin(t *testing.T) {
	src := questionbank.NewFSSource(fstest.MapFS{})
	cat, err := Load(context.Background(), src, nil)
	require.NoError(t, err)
	assert.Equal(t, Builtin(), cat)
}

func TestLoad_Manifest(t *testing.T) {
	src := questionbank.NewFSSource(fstest.MapFS{
		ManifestPath: &fstest.MapFile{Data: []byte(`{
			"version": "v1.2.0",
			"themes": [{"id": "capitals", "name": "World Capitals"}]
		}`)},
	})
	cat, err := Load(context.Background(), src, nil)
	require.NoError(t, err)
	require.Len(t, cat.Themes, 1)
	assert.Equal(t, "World Capitals", cat.Name("capitals"))
}

func TestParseManifest_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `nope`},
		{"missing themes", `{"version": "v1.0.0"}`},
		{"empty themes", `{"version": "v1.0.0", "themes": []}`},
		{"bad id", `{"version": "v1.0.0", "themes": [{"id": "../etc", "name": "x"}]}`},
		{"not semver", `{"version": "1.0", "themes": [{"id": "a", "name": "A"}]}`},
		{"future major", `{"version": "v2.0.0", "themes": [{"id": "a", "name": "A"}]}`},
		{"duplicate", `{"version": "v1.0.0", "themes": [{"id": "a", "name": "A"}, {"id": "a", "name": "B"}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tc.raw))
			assert.ErrorIs(t, err, ErrInvalidManifest)
		})
	}
}
