package config

import (
	"fyne.io/fyne/v2"

	"github.com/MihkelHunter/tasklist/internal/todo"
)

// Settings keys for Fyne preferences
const (
	KeyLastPriority = "last_priority"
)

// Settings remembers UI choices between runs through Fyne preferences.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLastPriority returns the priority last picked in the selector
func (s *Settings) GetLastPriority() todo.Priority {
	label := s.app.Preferences().StringWithFallback(KeyLastPriority, todo.DefaultPriority.String())
	p, _ := todo.ParsePriority(label)
	return p
}

// SetLastPriority stores the priority picked in the selector
func (s *Settings) SetLastPriority(p todo.Priority) {
	if !p.Valid() {
		p = todo.DefaultPriority
	}
	s.app.Preferences().SetString(KeyLastPriority, p.String())
}
