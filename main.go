// Package main is the entry point for navshell, a terminal navigation shell
// with a responsive destination pane.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	urfavecli "github.com/urfave/cli/v2"

	"github.com/llehouerou/navshell/internal/app"
	"github.com/llehouerou/navshell/internal/config"
	"github.com/llehouerou/navshell/internal/contract"
	"github.com/llehouerou/navshell/internal/displaymode"
	"github.com/llehouerou/navshell/internal/errmsg"
	"github.com/llehouerou/navshell/internal/icons"
	"github.com/llehouerou/navshell/internal/logging"
	"github.com/llehouerou/navshell/internal/state"
)

var version = "dev"

func main() {
	cliApp := &urfavecli.App{
		Name:    "navshell",
		Usage:   "A responsive navigation shell for the terminal",
		Version: version,
		Flags:   globalFlags(),
		Commands: []*urfavecli.Command{
			initConfigCommand(),
			printConfigCommand(),
		},
		Action: runTUI,
	}

	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// runTUI is the default action that launches the TUI when no subcommand is given.
func runTUI(c *urfavecli.Context) error {
	configPath := c.String("config-file")
	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpConfigLoad, configPath, err))
	}

	logPath, level := cfg.LogFile, cfg.LogLevel
	if debugLog := c.String("debug-log"); debugLog != "" {
		logPath, level = debugLog, "debug"
	}
	if err := logging.Setup(logPath, level); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.FormatWith(errmsg.OpLogSetup, logPath, err))
	}
	defer logging.Close()

	icons.Init(cfg.Icons)

	var override *displaymode.Mode
	if raw := c.String("mode"); raw != "" {
		mode, err := displaymode.ParseMode(raw)
		if err != nil {
			return err
		}
		override = &mode
	}

	var stateMgr state.Interface
	if !c.Bool("no-state") && cfg.ShouldPersist() {
		mgr, err := state.Open()
		if err != nil {
			fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpStateOpen, err))
		} else {
			defer mgr.Close()
			stateMgr = mgr
		}
	}

	var watcher *config.Watcher
	if configPath != "" {
		watcher, err = config.Watch(configPath)
	} else {
		watcher, err = config.WatchDefault()
	}
	if err != nil {
		slog.Warn("config watch disabled", "err", err)
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigWatch, err))
	} else {
		defer watcher.Close()
	}

	m := app.New(cfg, stateMgr, app.Options{
		ConfigPath:   configPath,
		ModeOverride: override,
		RTL:          c.Bool("rtl"),
		Watcher:      watcher,
	})
	defer m.Shell.Dispose()

	slog.Info("starting",
		"version", version,
		"mode", m.Shell.DisplayMode(),
		"selection", cfg.GetSelectionMode(),
		"strict_contracts", contract.Strict())
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
