package store

import (
	"fmt"

	"github.com/MihkelHunter/tasklist/internal/todo"
)

// Backend names accepted by New.
const (
	BackendText   = "text"
	BackendSQLite = "sqlite"
)

// New returns the repository registered under name.
func New(name string) (todo.Repository, error) {
	switch name {
	case "", BackendText:
		return NewTextFile(), nil
	case BackendSQLite:
		return NewSQLite(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", name)
	}
}
