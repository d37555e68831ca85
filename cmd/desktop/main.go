package main

import (
	"flag"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/MihkelHunter/tasklist/internal/config"
	"github.com/MihkelHunter/tasklist/internal/logging"
	"github.com/MihkelHunter/tasklist/internal/store"
	"github.com/MihkelHunter/tasklist/internal/todo"
	"github.com/MihkelHunter/tasklist/internal/ui"
)

const AppID = "com.mihkelhunter.tasklist"

func main() {
	configPath := flag.String("config", config.DefaultConfigFile, "path to the TOML config file")
	flag.Parse()

	logger := logging.New(logging.DefaultOptions())

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("config", "err", err)
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warn("falling back to info", "err", err)
	}
	logger.SetLevel(level)

	repo, err := store.New(cfg.Storage)
	if err != nil {
		logger.Fatal("store", "err", err)
	}
	st := todo.NewStore(repo, logger)
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error("close store", "err", err)
		}
	}()

	a := app.NewWithID(AppID)
	a.Settings().SetTheme(ui.NewDarkTheme())

	win := a.NewWindow(ui.Title)
	win.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	win.CenterOnScreen()

	w := ui.New(win, st, config.NewSettings(a), cfg.TasksFile, logger)
	w.LoadOnStart()

	logger.Info("starting", "tasks_file", cfg.TasksFile, "storage", cfg.Storage, "pid", os.Getpid())
	win.ShowAndRun()
}
