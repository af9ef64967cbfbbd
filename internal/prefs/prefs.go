// Package prefs is the typed accessor for the last selection made in the
// theme, mode and day screens.
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/abhisek/quizday/internal/mode"
)

// Key names a stored preference.
type Key string

const (
	KeyTheme Key = "selectedTheme"
	KeyDay   Key = "selectedDay"
	KeyMode  Key = "quizMode"
)

// ErrNotSet is returned when a preference has no stored value.
var ErrNotSet = errors.New("preference not set")

// Store is a raw string key-value store.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Prefs reads and writes JSON-encoded preference values.
type Prefs struct {
	store Store
}

// New wraps store.
func New(store Store) *Prefs {
	return &Prefs{store: store}
}

// Get decodes the value at key into v.
func (p *Prefs) Get(ctx context.Context, key Key, v any) error {
	raw, ok, err := p.store.Get(ctx, string(key))
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return ErrNotSet
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// Set JSON-encodes v and stores it at key.
func (p *Prefs) Set(ctx context.Context, key Key, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := p.store.Set(ctx, string(key), string(raw)); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Remove deletes the value at key.
func (p *Prefs) Remove(ctx context.Context, key Key) error {
	if err := p.store.Remove(ctx, string(key)); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Theme returns the stored theme id, or "" when unset or unreadable.
func (p *Prefs) Theme(ctx context.Context) string {
	var s string
	if err := p.Get(ctx, KeyTheme, &s); err != nil {
		return ""
	}
	return s
}

// Mode returns the stored mode, or "" when unset or not a known mode.
func (p *Prefs) Mode(ctx context.Context) mode.Mode {
	var s string
	if err := p.Get(ctx, KeyMode, &s); err != nil {
		return ""
	}
	m, err := mode.Parse(s)
	if err != nil {
		return ""
	}
	return m
}

// Day returns the stored day, or 0 when unset or not a number. Both an
// encoded number and an encoded numeric string are accepted.
func (p *Prefs) Day(ctx context.Context) int {
	var v any
	if err := p.Get(ctx, KeyDay, &v); err != nil {
		return 0
	}
	switch d := v.(type) {
	case float64:
		return int(d)
	case string:
		n, err := strconv.Atoi(d)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

func (p *Prefs) SetTheme(ctx context.Context, theme string) error {
	return p.Set(ctx, KeyTheme, theme)
}

func (p *Prefs) SetMode(ctx context.Context, m mode.Mode) error {
	return p.Set(ctx, KeyMode, string(m))
}

func (p *Prefs) SetDay(ctx context.Context, day int) error {
	return p.Set(ctx, KeyDay, day)
}

// Clear removes every known preference.
func (p *Prefs) Clear(ctx context.Context) error {
	for _, k := range []Key{KeyTheme, KeyDay, KeyMode} {
		if err := p.Remove(ctx, k); err != nil {
			return err
		}
	}
	return nil
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu   sync.Mutex
	vals map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{vals: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vals[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vals[key] = value
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.vals, key)
	return nil
}
