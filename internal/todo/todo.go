// Package todo defines the task model, its display-string encoding and the
// in-memory task store the UI drives.
// The Repository interface lets the store persist through either the flat
// text file or the SQLite backend without the UI knowing which one is in use.
package todo

// Priority levels for a task.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
)

// DefaultPriority is used when none is chosen or none can be recovered.
const DefaultPriority = PriorityMedium

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityLow:
		return "Low"
	default:
		return "Medium"
	}
}

// Valid reports whether p is one of the three known levels.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// ParsePriority maps a selector label back to a Priority. Unknown labels
// yield DefaultPriority and false.
func ParsePriority(s string) (Priority, bool) {
	switch s {
	case "High":
		return PriorityHigh, true
	case "Medium":
		return PriorityMedium, true
	case "Low":
		return PriorityLow, true
	default:
		return DefaultPriority, false
	}
}

// Priorities returns the levels in selector order.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// PriorityLabels returns the selector labels in the same order as Priorities.
func PriorityLabels() []string {
	ps := Priorities()
	labels := make([]string, len(ps))
	for i, p := range ps {
		labels[i] = p.String()
	}
	return labels
}

// Task is the central domain object. It is a plain value: two tasks with the
// same fields are indistinguishable.
type Task struct {
	Text     string
	Priority Priority
	Done     bool
}

// Repository is the storage contract. A backend persists the display strings
// of a task list under a path and reads them back in order.
type Repository interface {
	// SaveLines overwrites whatever is stored at path with lines.
	SaveLines(path string, lines []string) error
	// LoadLines returns the stored lines in order, or ErrNotFound when
	// nothing exists at path.
	LoadLines(path string) ([]string, error)
	Close() error
}
