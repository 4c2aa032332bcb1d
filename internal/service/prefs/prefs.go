// Package prefs persists small UI preferences shared across runs.
package prefs

import (
	"fmt"

	"github.com/seojinpark/talktemplate/client/internal/store"
)

// Recognized theme values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Manager owns the theme entry of the durable store.
type Manager struct {
	store store.Store
}

// NewManager wraps the given store.
func NewManager(st store.Store) *Manager {
	return &Manager{store: st}
}

// Theme returns the stored theme; absent or unrecognized values fall back
// to light.
func (m *Manager) Theme() string {
	value, ok, err := m.store.Get(store.KeyTheme)
	if err != nil || !ok {
		return ThemeLight
	}
	if value != ThemeLight && value != ThemeDark {
		return ThemeLight
	}
	return value
}

// SetTheme persists a theme choice.
func (m *Manager) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("unknown theme %q", theme)
	}
	return m.store.Set(store.KeyTheme, theme)
}
