// Package tui is a terminal front end over the same task store the desktop
// window drives.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/MihkelHunter/tasklist/internal/todo"
)

type keyMap struct {
	Submit   key.Binding
	Priority key.Binding
	Up       key.Binding
	Down     key.Binding
	Edit     key.Binding
	Toggle   key.Binding
	Clear    key.Binding
	Save     key.Binding
	Load     key.Binding
	Cancel   key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add/update")),
	Priority: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "priority")),
	Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "select")),
	Down:     key.NewBinding(key.WithKeys("down")),
	Edit:     key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "edit")),
	Toggle:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle")),
	Clear:    key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear all")),
	Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	Load:     key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "load")),
	Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel edit")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	priorityStyle = map[todo.Priority]lipgloss.Style{
		todo.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		todo.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		todo.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("103")),
	}
)

// Model is the bubbletea model for the task list.
type Model struct {
	store    *todo.Store
	log      *log.Logger
	path     string
	input    textinput.Model
	priority int // index into todo.Priorities()
	cursor   int
	status   string
	isErr    bool
}

// New returns a model over store that saves to and loads from path.
func New(store *todo.Store, path string, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	ti := textinput.New()
	ti.Placeholder = "Task…"
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()

	m := Model{store: store, log: logger, path: path, input: ti}
	m.setPriority(todo.DefaultPriority)
	return m
}

func (m *Model) setPriority(p todo.Priority) {
	for i, candidate := range todo.Priorities() {
		if candidate == p {
			m.priority = i
			return
		}
	}
}

func (m Model) selectedPriority() todo.Priority {
	return todo.Priorities()[m.priority]
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(kmsg, keys.Quit):
		return m, tea.Quit
	case key.Matches(kmsg, keys.Submit):
		m.submit()
	case key.Matches(kmsg, keys.Priority):
		m.priority = (m.priority + 1) % len(todo.Priorities())
	case key.Matches(kmsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(kmsg, keys.Down):
		if m.cursor < m.store.Len()-1 {
			m.cursor++
		}
	case key.Matches(kmsg, keys.Edit):
		m.edit()
	case key.Matches(kmsg, keys.Toggle):
		if err := m.store.ToggleDone(m.cursor); err != nil {
			m.fail(err)
		} else {
			m.notice("Task toggled")
		}
	case key.Matches(kmsg, keys.Clear):
		m.store.ClearAll()
		m.cursor = 0
		m.input.SetValue("")
		m.notice("All tasks cleared")
	case key.Matches(kmsg, keys.Save):
		if err := m.store.Save(m.path); err != nil {
			m.fail(err)
		} else {
			m.notice(fmt.Sprintf("Saved %d tasks to %s", m.store.Len(), m.path))
		}
	case key.Matches(kmsg, keys.Load):
		m.load()
	case key.Matches(kmsg, keys.Cancel):
		if _, editing := m.store.Editing(); editing {
			m.store.CancelEdit()
			m.input.SetValue("")
			m.notice("Edit cancelled")
		}
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) submit() {
	_, wasEditing := m.store.Editing()
	if err := m.store.CommitEdit(m.input.Value(), m.selectedPriority()); err != nil {
		m.fail(err)
		return
	}
	m.input.SetValue("")
	if wasEditing {
		m.notice("Task updated")
		return
	}
	m.cursor = m.store.Len() - 1
	m.notice("Task added")
}

func (m *Model) edit() {
	task, err := m.store.BeginEdit(m.cursor)
	if err != nil {
		m.fail(err)
		return
	}
	m.input.SetValue(task.Text)
	m.input.CursorEnd()
	m.setPriority(task.Priority)
	m.notice("Editing task, enter to apply")
}

func (m *Model) load() {
	err := m.store.Load(m.path)
	if errors.Is(err, todo.ErrNotFound) {
		m.notice("No saved tasks at " + m.path)
		return
	}
	if err != nil {
		m.fail(err)
		return
	}
	m.cursor = 0
	m.input.SetValue("")
	m.notice(fmt.Sprintf("Loaded %d tasks from %s", m.store.Len(), m.path))
}

func (m *Model) notice(msg string) {
	m.status, m.isErr = msg, false
}

func (m *Model) fail(err error) {
	if errors.Is(err, todo.ErrNoSelection) {
		m.log.Warn("no task selected", "err", err)
		err = errors.New("select a task first")
	} else {
		m.log.Warn("operation failed", "err", err)
	}
	m.status, m.isErr = "Error: "+err.Error(), true
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("✓ Todo List"))
	b.WriteString("\n\n")

	label := "add"
	if _, editing := m.store.Editing(); editing {
		label = "update"
	}
	p := m.selectedPriority()
	fmt.Fprintf(&b, "%s [%s] (%s)\n\n", m.input.View(), priorityStyle[p].Render(p.String()), label)

	tasks := m.store.Tasks()
	if len(tasks) == 0 {
		b.WriteString(statusStyle.Render("  No tasks yet."))
		b.WriteString("\n")
	}
	for i, t := range tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		line := todo.Encode(t)
		if t.Done {
			line = doneStyle.Render(line)
		} else {
			line = priorityStyle[t.Priority].Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	done, total := m.store.Stats()
	fmt.Fprintf(&b, "\n%s\n", statusStyle.Render(fmt.Sprintf("%d / %d completed", done, total)))
	if m.status != "" {
		style := statusStyle
		if m.isErr {
			style = errorStyle
		}
		b.WriteString(style.Render(m.status) + "\n")
	}
	b.WriteString(helpStyle.Render(helpLine()))
	b.WriteString("\n")
	return b.String()
}

func helpLine() string {
	bindings := []key.Binding{
		keys.Submit, keys.Priority, keys.Up, keys.Edit, keys.Toggle,
		keys.Clear, keys.Save, keys.Load, keys.Cancel, keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
