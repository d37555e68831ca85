package ui

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/MihkelHunter/tasklist/internal/config"
	"github.com/MihkelHunter/tasklist/internal/store"
	"github.com/MihkelHunter/tasklist/internal/todo"
)

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()
	a := test.NewTempApp(t)
	win := a.NewWindow(Title)
	t.Cleanup(win.Close)

	path := filepath.Join(t.TempDir(), store.DefaultFileName)
	st := todo.NewStore(store.NewTextFile(), nil)
	return New(win, st, config.NewSettings(a), path, nil), path
}

func addTask(t *testing.T, app *App, text, priority string) {
	t.Helper()
	app.entry.SetText(text)
	app.priority.SetSelected(priority)
	test.Tap(app.addBtn)
}

func TestAddTask(t *testing.T) {
	app, _ := newTestApp(t)

	addTask(t, app, "Buy milk", "High")

	if got := app.store.Lines(); !reflect.DeepEqual(got, []string{"[High] Buy milk"}) {
		t.Errorf("Lines() = %q", got)
	}
	if app.entry.Text != "" {
		t.Errorf("entry should be cleared, got %q", app.entry.Text)
	}
	if app.stats.Text != "0 / 1 completed" {
		t.Errorf("stats = %q", app.stats.Text)
	}
}

func TestAddBlankTaskReportsError(t *testing.T) {
	app, _ := newTestApp(t)

	addTask(t, app, "   ", "Low")

	if app.store.Len() != 0 {
		t.Errorf("blank task was added")
	}
	if !strings.HasPrefix(app.status.Text, "Error:") {
		t.Errorf("status = %q, expected an error notice", app.status.Text)
	}
}

func TestEditSelected(t *testing.T) {
	app, _ := newTestApp(t)
	addTask(t, app, "first", "Low")
	addTask(t, app, "second", "Low")

	app.taskList.Select(1)
	test.Tap(app.toggleBtn)
	test.Tap(app.editBtn)

	if app.entry.Text != "second" {
		t.Errorf("entry = %q, expected the selected task's text", app.entry.Text)
	}
	if app.addBtn.Text != LabelUpdate {
		t.Errorf("add button = %q, expected %q", app.addBtn.Text, LabelUpdate)
	}

	app.entry.SetText("second, revised")
	app.priority.SetSelected("High")
	test.Tap(app.addBtn)

	expected := []string{"[Low] first", "[DONE] [High] second, revised"}
	if got := app.store.Lines(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Lines() = %q, expected %q", got, expected)
	}
	if app.addBtn.Text != LabelAdd {
		t.Errorf("add button = %q after update", app.addBtn.Text)
	}
}

func TestActionsWithoutSelection(t *testing.T) {
	app, _ := newTestApp(t)
	addTask(t, app, "a", "Medium")

	test.Tap(app.toggleBtn)
	if app.status.Text != "Error: select a task first" {
		t.Errorf("status = %q", app.status.Text)
	}
	test.Tap(app.editBtn)
	if app.status.Text != "Error: select a task first" {
		t.Errorf("status = %q", app.status.Text)
	}
	if got := app.store.Lines()[0]; got != "[Medium] a" {
		t.Errorf("task changed to %q", got)
	}
}

func TestToggleKeepsSelection(t *testing.T) {
	app, _ := newTestApp(t)
	addTask(t, app, "a", "Medium")
	app.taskList.Select(0)

	test.Tap(app.toggleBtn)
	if app.stats.Text != "1 / 1 completed" {
		t.Errorf("stats = %q", app.stats.Text)
	}
	test.Tap(app.toggleBtn)
	if got := app.store.Lines()[0]; got != "[Medium] a" {
		t.Errorf("two toggles gave %q", got)
	}
	if app.selected != 0 {
		t.Errorf("selected = %d, expected 0", app.selected)
	}
}

func TestClearAll(t *testing.T) {
	app, _ := newTestApp(t)
	addTask(t, app, "a", "Medium")
	addTask(t, app, "b", "Medium")
	app.taskList.Select(1)

	test.Tap(app.clearBtn)

	if app.store.Len() != 0 {
		t.Errorf("Len() = %d after clear", app.store.Len())
	}
	if app.selected != noSelection {
		t.Errorf("selection should be dropped, got %d", app.selected)
	}
	if app.stats.Text != "0 / 0 completed" {
		t.Errorf("stats = %q", app.stats.Text)
	}
}

func TestSaveAndLoad(t *testing.T) {
	app, path := newTestApp(t)
	addTask(t, app, "Buy milk", "High")
	addTask(t, app, "Walk dog", "Low")
	app.taskList.Select(1)
	test.Tap(app.toggleBtn)

	test.Tap(app.saveBtn)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("task file not written: %v", err)
	}
	if string(data) != "[High] Buy milk\n[DONE] [Low] Walk dog\n" {
		t.Errorf("file = %q", data)
	}

	test.Tap(app.clearBtn)
	test.Tap(app.loadBtn)

	expected := []string{"[High] Buy milk", "[DONE] [Low] Walk dog"}
	if got := app.store.Lines(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Lines() = %q, expected %q", got, expected)
	}
}

func TestLoadMissingFile(t *testing.T) {
	app, path := newTestApp(t)
	addTask(t, app, "keep", "High")

	test.Tap(app.loadBtn)

	if app.store.Len() != 1 {
		t.Errorf("store changed on missing file")
	}
	if app.status.Text != "No saved tasks at "+path {
		t.Errorf("status = %q", app.status.Text)
	}
}

func TestLoadOnStart(t *testing.T) {
	a := test.NewTempApp(t)
	path := filepath.Join(t.TempDir(), store.DefaultFileName)
	if err := os.WriteFile(path, []byte("[Low] from disk\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	win := a.NewWindow(Title)
	defer win.Close()

	app := New(win, todo.NewStore(store.NewTextFile(), nil), config.NewSettings(a), path, nil)
	app.LoadOnStart()

	if got := app.store.Lines(); !reflect.DeepEqual(got, []string{"[Low] from disk"}) {
		t.Errorf("Lines() = %q", got)
	}
}

func TestPriorityRemembered(t *testing.T) {
	a := test.NewTempApp(t)
	settings := config.NewSettings(a)
	settings.SetLastPriority(todo.PriorityLow)
	win := a.NewWindow(Title)
	defer win.Close()

	app := New(win, todo.NewStore(store.NewTextFile(), nil), settings, "unused.txt", nil)
	if app.priority.Selected != "Low" {
		t.Errorf("selector = %q, expected the remembered Low", app.priority.Selected)
	}

	app.priority.SetSelected("High")
	if settings.GetLastPriority() != todo.PriorityHigh {
		t.Error("selector change should be remembered")
	}
}

func TestCancelEdit(t *testing.T) {
	app, _ := newTestApp(t)
	addTask(t, app, "a", "Medium")
	app.taskList.Select(0)
	test.Tap(app.editBtn)

	app.cancelEdit()

	if _, editing := app.store.Editing(); editing {
		t.Error("edit should be cancelled")
	}
	if app.addBtn.Text != LabelAdd {
		t.Errorf("add button = %q", app.addBtn.Text)
	}
}
