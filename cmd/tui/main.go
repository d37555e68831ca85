package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MihkelHunter/tasklist/internal/config"
	"github.com/MihkelHunter/tasklist/internal/logging"
	"github.com/MihkelHunter/tasklist/internal/store"
	"github.com/MihkelHunter/tasklist/internal/todo"
	"github.com/MihkelHunter/tasklist/internal/tui"
)

const logFileName = "tasklist.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", config.DefaultConfigFile, "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	// The terminal belongs to the view, so log lines go to a file instead.
	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	opts := logging.DefaultOptions()
	opts.Level = level
	opts.Output = logFile
	logger := logging.New(opts)

	repo, err := store.New(cfg.Storage)
	if err != nil {
		return err
	}
	st := todo.NewStore(repo, logger)
	defer st.Close()

	m := tui.New(st, cfg.TasksFile, logger)
	if err := st.Load(cfg.TasksFile); err != nil && !errors.Is(err, todo.ErrNotFound) {
		logger.Warn("initial load failed", "err", err)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
