package questionbank

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBank = `[
	{"question": "Capital of France?", "answer": "Paris", "choices": ["Paris", "Rome", "Oslo", "Bern"], "explanation": "Paris has been the capital since 508 AD."},
	{"question": "Symbol for Helium?", "answer": "He"}
]`

func TestParse_Valid(t *testing.T) {
	qs, err := Parse([]byte(sampleBank))
	require.NoError(t, err)
	require.Len(t, qs, 2)

	assert.Equal(t, "Capital of France?", qs[0].Prompt)
	assert.Equal(t, "Paris", qs[0].Answer)
	assert.Len(t, qs[0].Choices, 4)
	assert.True(t, qs[0].HasChoices())
	assert.False(t, qs[1].HasChoices())
	assert.Equal(t, DefaultExplanation, qs[1].ExplanationOrDefault())
	assert.Equal(t, "Paris has been the capital since 508 AD.", qs[0].ExplanationOrDefault())
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{{`},
		{"object payload", `{"question": "q", "answer": "a"}`},
		{"missing answer", `[{"question": "q"}]`},
		{"empty answer", `[{"question": "q", "answer": ""}]`},
		{"numeric answer", `[{"question": "q", "answer": 3}]`},
		{"non-string choice", `[{"question": "q", "answer": "a", "choices": ["a", 2]}]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.raw))
			assert.Error(t, err)
		})
	}
}

func TestParse_EmptyArray(t *testing.T) {
	_, err := Parse([]byte(`[]`))
	assert.ErrorIs(t, err, ErrEmptyBank)
}

func TestLoader_FSSource(t *testing.T) {
	fsys := fstest.MapFS{
		"themes/vocabulary.json": &fstest.MapFile{Data: []byte(sampleBank)},
		"themes/broken.json":     &fstest.MapFile{Data: []byte(`[]`)},
	}
	loader := NewLoader(NewFSSource(fsys), nil)
	ctx := context.Background()

	qs, err := loader.Load(ctx, "vocabulary")
	require.NoError(t, err)
	assert.Len(t, qs, 2)

	_, err = loader.Load(ctx, "missing")
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "missing", loadErr.Theme)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = loader.Load(ctx, "broken")
	assert.ErrorIs(t, err, ErrEmptyBank)
	assert.ErrorAs(t, err, &loadErr)
}

func TestFSSource_InvalidPath(t *testing.T) {
	src := NewFSSource(fstest.MapFS{})
	_, err := src.Fetch(context.Background(), "../etc/passwd")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/themes/vocabulary.json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(sampleBank))
		case "/themes/boom.json":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	loader := NewLoader(NewHTTPSource(srv.URL+"/", 0), nil)
	ctx := context.Background()

	qs, err := loader.Load(ctx, "vocabulary")
	require.NoError(t, err)
	assert.Len(t, qs, 2)

	_, err = loader.Load(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = loader.Load(ctx, "boom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestHTTPSource_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleBank))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPSource(srv.URL, 0).Fetch(ctx, ThemePath("vocabulary"))
	assert.ErrorIs(t, err, context.Canceled)
}
