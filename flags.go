package main

import (
	"errors"
	"fmt"
	"os"

	urfavecli "github.com/urfave/cli/v2"

	"github.com/llehouerou/navshell/internal/config"
	"github.com/llehouerou/navshell/internal/errmsg"
)

// globalFlags returns all global flags for the application.
func globalFlags() []urfavecli.Flag {
	return []urfavecli.Flag{
		&urfavecli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&urfavecli.StringFlag{
			Name:  "debug-log",
			Usage: "Write debug logs to this file",
		},
		&urfavecli.StringFlag{
			Name:    "mode",
			Aliases: []string{"m"},
			Usage:   "Force a display mode: minimal, medium or expanded",
		},
		&urfavecli.BoolFlag{
			Name:  "rtl",
			Usage: "Lay the shell out right to left",
		},
		&urfavecli.BoolFlag{
			Name:  "no-state",
			Usage: "Do not restore or save the selection",
		},
	}
}

func initConfigCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "init-config",
		Usage: "Write the default configuration to the user config file",
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:  "path",
				Usage: "Write to this file instead",
				Value: config.UserConfigPath(),
			},
		},
		Action: func(c *urfavecli.Context) error {
			path := c.String("path")
			if err := config.WriteDefault(path); err != nil {
				if errors.Is(err, os.ErrExist) {
					return fmt.Errorf("%s already exists", path)
				}
				return errors.New(errmsg.FormatWith(errmsg.OpConfigWrite, path, err))
			}
			fmt.Println(path)
			return nil
		},
	}
}

func printConfigCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "print-config",
		Usage: "Print the effective configuration as TOML",
		Action: func(c *urfavecli.Context) error {
			path := c.String("config-file")
			cfg, err := config.Load(path)
			if err != nil {
				return errors.New(errmsg.FormatWith(errmsg.OpConfigLoad, path, err))
			}
			return config.Encode(os.Stdout, cfg)
		},
	}
}
