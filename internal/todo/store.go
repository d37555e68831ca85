package todo

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

const noEdit = -1

// lineBreaks would split a task across two lines of the save file.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// Store is the ordered, in-memory task list. It is owned by the UI goroutine
// and is not safe for concurrent use.
type Store struct {
	repo     Repository
	log      *log.Logger
	tasks    []Task
	editing  int
	onChange func()
}

// NewStore returns an empty store persisting through repo. A nil logger
// discards output.
func NewStore(repo Repository, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{repo: repo, log: logger, editing: noEdit}
}

// OnChange registers fn to run after every successful mutation.
func (s *Store) OnChange(fn func()) {
	s.onChange = fn
}

func (s *Store) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

func normalizeText(text string) string {
	return strings.TrimSpace(lineBreaks.Replace(text))
}

// Add appends a new, not-done task.
func (s *Store) Add(text string, priority Priority) error {
	text = normalizeText(text)
	if text == "" {
		return ErrEmptyText
	}
	s.tasks = append(s.tasks, Task{Text: text, Priority: priority})
	s.log.Debug("task added", "index", len(s.tasks)-1, "priority", priority)
	s.changed()
	return nil
}

// BeginEdit returns the task at i and makes i the target of the next
// CommitEdit.
func (s *Store) BeginEdit(i int) (Task, error) {
	if err := s.checkIndex("edit", i); err != nil {
		return Task{}, err
	}
	s.editing = i
	s.log.Debug("edit started", "index", i)
	return s.tasks[i], nil
}

// Editing reports the pending edit target, if any.
func (s *Store) Editing() (int, bool) {
	return s.editing, s.editing != noEdit
}

// CancelEdit drops the pending edit target.
func (s *Store) CancelEdit() {
	s.editing = noEdit
}

// CommitEdit replaces the pending edit target with the new text and
// priority, keeping its done flag. Without a pending target it behaves as
// Add. Blank text is rejected and the target stays pending.
func (s *Store) CommitEdit(text string, priority Priority) error {
	if s.editing == noEdit {
		return s.Add(text, priority)
	}
	text = normalizeText(text)
	if text == "" {
		return ErrEmptyText
	}
	i := s.editing
	if i >= len(s.tasks) {
		s.editing = noEdit
		return &IndexError{Op: "update", Index: i, Len: len(s.tasks)}
	}
	s.tasks[i] = Task{Text: text, Priority: priority, Done: s.tasks[i].Done}
	s.editing = noEdit
	s.log.Debug("task updated", "index", i, "priority", priority)
	s.changed()
	return nil
}

// ToggleDone flips the done flag of the task at i.
func (s *Store) ToggleDone(i int) error {
	if err := s.checkIndex("toggle", i); err != nil {
		return err
	}
	s.tasks[i].Done = !s.tasks[i].Done
	s.log.Debug("task toggled", "index", i, "done", s.tasks[i].Done)
	s.changed()
	return nil
}

// ClearAll empties the list without asking.
func (s *Store) ClearAll() {
	s.tasks = nil
	s.editing = noEdit
	s.log.Debug("tasks cleared")
	s.changed()
}

// Save writes every task's display string to path, replacing what was there.
// The in-memory list is never modified.
func (s *Store) Save(path string) error {
	lines := EncodeAll(s.tasks)
	if err := s.repo.SaveLines(path, lines); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	s.log.Info("tasks saved", "path", path, "count", len(lines))
	return nil
}

// Load replaces the list with the tasks stored at path. A missing path
// returns ErrNotFound and leaves the list alone. The list is only replaced
// once every line has been read, so a failed read leaves it unchanged too.
func (s *Store) Load(path string) error {
	lines, err := s.repo.LoadLines(path)
	if errors.Is(err, ErrNotFound) {
		s.log.Info("no task file", "path", path)
		return ErrNotFound
	}
	if err != nil {
		return &IOError{Op: "load", Path: path, Err: err}
	}

	tasks := make([]Task, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		tasks = append(tasks, Decode(line))
	}
	s.tasks = tasks
	s.editing = noEdit
	s.log.Info("tasks loaded", "path", path, "count", len(tasks))
	s.changed()
	return nil
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// At returns the task at i.
func (s *Store) At(i int) (Task, error) {
	if err := s.checkIndex("get", i); err != nil {
		return Task{}, err
	}
	return s.tasks[i], nil
}

// Tasks returns a copy of the list.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Lines returns the display strings to render, one per task.
func (s *Store) Lines() []string {
	return EncodeAll(s.tasks)
}

// Stats returns how many tasks are done out of the total.
func (s *Store) Stats() (done, total int) {
	for _, t := range s.tasks {
		if t.Done {
			done++
		}
	}
	return done, len(s.tasks)
}

// Close releases the repository.
func (s *Store) Close() error {
	return s.repo.Close()
}

func (s *Store) checkIndex(op string, i int) error {
	if i < 0 || i >= len(s.tasks) {
		return &IndexError{Op: op, Index: i, Len: len(s.tasks)}
	}
	return nil
}
