// Package ui is the Fyne front end. It renders the store's display strings
// and forwards button presses to the store; it holds no task state of its own
// beyond the current selection.
package ui

import (
	"errors"
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"github.com/MihkelHunter/tasklist/internal/config"
	"github.com/MihkelHunter/tasklist/internal/todo"
)

// Window title and button captions.
const (
	Title = "Todo List"

	LabelAdd    = "Add Task"
	LabelUpdate = "Update Task"
	LabelEdit   = "Edit Selected"
	LabelToggle = "Toggle Complete"
	LabelClear  = "Clear All"
	LabelSave   = "Save"
	LabelLoad   = "Load"
)

const noSelection = -1

// App is the task list window.
type App struct {
	store    *todo.Store
	settings *config.Settings
	log      *log.Logger
	win      fyne.Window
	path     string

	entry     *widget.Entry
	priority  *widget.Select
	addBtn    *widget.Button
	editBtn   *widget.Button
	toggleBtn *widget.Button
	clearBtn  *widget.Button
	saveBtn   *widget.Button
	loadBtn   *widget.Button
	taskList  *widget.List
	status    *widget.Label
	stats     *widget.Label

	selected int
}

// New builds the task list UI into win. path is the file Save and Load use.
func New(win fyne.Window, store *todo.Store, settings *config.Settings, path string, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &App{
		store:    store,
		settings: settings,
		log:      logger,
		win:      win,
		path:     path,
		selected: noSelection,
	}
	win.SetContent(s.buildUI())
	win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			s.cancelEdit()
		}
	})
	store.OnChange(s.refresh)
	s.refresh()
	return s
}

// LoadOnStart reads the task file if one exists. A missing file is silent.
func (s *App) LoadOnStart() {
	err := s.store.Load(s.path)
	switch {
	case err == nil:
		s.setStatus(fmt.Sprintf("Loaded %d tasks from %s", s.store.Len(), s.path))
	case errors.Is(err, todo.ErrNotFound):
	default:
		s.reportError(err)
	}
}

// ── Build UI ─────────────────────────────────────────────────────────────────

func (s *App) buildUI() fyne.CanvasObject {
	title := canvas.NewText("  ✓  "+Title, colAccent)
	title.TextSize = 20
	title.TextStyle = fyne.TextStyle{Bold: true}

	s.entry = widget.NewEntry()
	s.entry.SetPlaceHolder("Task…")
	s.entry.OnSubmitted = func(string) { s.submit() }

	s.priority = widget.NewSelect(todo.PriorityLabels(), func(label string) {
		if p, ok := todo.ParsePriority(label); ok {
			s.settings.SetLastPriority(p)
		}
	})
	s.priority.SetSelected(s.settings.GetLastPriority().String())

	s.addBtn = widget.NewButton(LabelAdd, s.submit)
	s.addBtn.Importance = widget.HighImportance
	s.editBtn = widget.NewButton(LabelEdit, s.editSelected)
	s.toggleBtn = widget.NewButton(LabelToggle, s.toggleSelected)
	s.clearBtn = widget.NewButton(LabelClear, s.clearAll)
	s.clearBtn.Importance = widget.DangerImportance
	s.saveBtn = widget.NewButton(LabelSave, s.save)
	s.loadBtn = widget.NewButton(LabelLoad, s.load)

	inputRow := container.NewBorder(nil, nil, nil, container.NewHBox(s.priority, s.addBtn), s.entry)
	buttonRow := container.NewHBox(
		s.editBtn, s.toggleBtn, s.clearBtn,
		layout.NewSpacer(),
		s.saveBtn, s.loadBtn,
	)

	s.taskList = widget.NewList(
		func() int { return s.store.Len() },
		makeTaskRow,
		s.updateTaskRow,
	)
	s.taskList.OnSelected = func(id widget.ListItemID) { s.selected = id }
	s.taskList.OnUnselected = func(id widget.ListItemID) {
		if s.selected == id {
			s.selected = noSelection
		}
	}

	s.status = widget.NewLabel("")
	s.status.Truncation = fyne.TextTruncateEllipsis
	s.stats = widget.NewLabel("")
	footer := container.NewBorder(nil, nil, nil, s.stats, s.status)

	return container.NewBorder(
		container.NewVBox(container.NewPadded(title), inputRow, buttonRow),
		footer,
		nil, nil,
		s.taskList,
	)
}

// ── Task row template ─────────────────────────────────────────────────────────

func makeTaskRow() fyne.CanvasObject {
	priDot := canvas.NewCircle(colMedPri)
	label := widget.NewLabel("[Medium] template")
	rowBG := canvas.NewRectangle(colSurface)
	rowBG.CornerRadius = 6

	row := container.NewBorder(nil, nil,
		container.NewCenter(container.NewGridWrap(fyne.NewSize(10, 10), priDot)),
		nil, label)
	return container.NewStack(rowBG, row)
}

func (s *App) updateTaskRow(i widget.ListItemID, obj fyne.CanvasObject) {
	t, err := s.store.At(i)
	if err != nil {
		return
	}

	stack := obj.(*fyne.Container)
	rowBG := stack.Objects[0].(*canvas.Rectangle)
	row := stack.Objects[1].(*fyne.Container)
	// container.NewBorder keeps its centre object first, then the set edges.
	label := row.Objects[0].(*widget.Label)
	dotBox := row.Objects[1].(*fyne.Container)
	priDot := dotBox.Objects[0].(*fyne.Container).Objects[0].(*canvas.Circle)

	priDot.FillColor = priorityColor(t.Priority)
	priDot.Refresh()

	if t.Done {
		label.TextStyle = fyne.TextStyle{Italic: true}
		rowBG.FillColor = colDoneRow
	} else {
		label.TextStyle = fyne.TextStyle{}
		rowBG.FillColor = colSurface
	}
	rowBG.Refresh()
	label.SetText(todo.Encode(t))
}

// ── Actions ───────────────────────────────────────────────────────────────────

func (s *App) refresh() {
	s.taskList.Refresh()
	done, total := s.store.Stats()
	s.stats.SetText(fmt.Sprintf("%d / %d completed", done, total))
	if _, editing := s.store.Editing(); editing {
		s.addBtn.SetText(LabelUpdate)
	} else {
		s.addBtn.SetText(LabelAdd)
	}
}

func (s *App) selectedPriority() todo.Priority {
	p, _ := todo.ParsePriority(s.priority.Selected)
	return p
}

// submit adds a task, or updates the one being edited.
func (s *App) submit() {
	_, wasEditing := s.store.Editing()
	if err := s.store.CommitEdit(s.entry.Text, s.selectedPriority()); err != nil {
		s.reportError(err)
		return
	}
	s.entry.SetText("")
	if wasEditing {
		s.setStatus("Task updated")
	} else {
		s.setStatus("Task added")
		s.taskList.ScrollToBottom()
	}
}

func (s *App) editSelected() {
	task, err := s.store.BeginEdit(s.selected)
	if err != nil {
		s.reportError(err)
		return
	}
	s.entry.SetText(task.Text)
	s.priority.SetSelected(task.Priority.String())
	s.setStatus("Editing task, press " + LabelUpdate + " to apply")
	s.refresh()
	s.win.Canvas().Focus(s.entry)
}

func (s *App) cancelEdit() {
	if _, editing := s.store.Editing(); !editing {
		return
	}
	s.store.CancelEdit()
	s.entry.SetText("")
	s.setStatus("Edit cancelled")
	s.refresh()
}

func (s *App) toggleSelected() {
	if err := s.store.ToggleDone(s.selected); err != nil {
		s.reportError(err)
		return
	}
	// The list keeps its selection across refreshes.
	s.setStatus("Task toggled")
}

func (s *App) clearAll() {
	s.store.ClearAll()
	s.taskList.UnselectAll()
	s.selected = noSelection
	s.entry.SetText("")
	s.setStatus("All tasks cleared")
}

func (s *App) save() {
	if err := s.store.Save(s.path); err != nil {
		s.reportError(err)
		return
	}
	s.setStatus(fmt.Sprintf("Saved %d tasks to %s", s.store.Len(), s.path))
}

func (s *App) load() {
	err := s.store.Load(s.path)
	if errors.Is(err, todo.ErrNotFound) {
		s.setStatus("No saved tasks at " + s.path)
		return
	}
	if err != nil {
		s.reportError(err)
		return
	}
	s.taskList.UnselectAll()
	s.selected = noSelection
	s.entry.SetText("")
	s.setStatus(fmt.Sprintf("Loaded %d tasks from %s", s.store.Len(), s.path))
}

func (s *App) setStatus(msg string) {
	s.status.SetText(msg)
}

// reportError shows err in the status line. File errors also get a dialog.
func (s *App) reportError(err error) {
	var ioErr *todo.IOError
	switch {
	case errors.As(err, &ioErr):
		s.log.Error("file operation failed", "op", ioErr.Op, "path", ioErr.Path, "err", ioErr.Err)
		dialog.ShowError(err, s.win)
	case errors.Is(err, todo.ErrNoSelection):
		s.log.Warn("no task selected", "err", err)
		err = errors.New("select a task first")
	default:
		s.log.Warn("rejected input", "err", err)
	}
	s.setStatus("Error: " + err.Error())
}
