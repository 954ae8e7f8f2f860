// Package cli wires the zenmon command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/zenmetrics/zenmon/internal/config"
	"github.com/zenmetrics/zenmon/internal/export"
	"github.com/zenmetrics/zenmon/internal/render"
	"github.com/zenmetrics/zenmon/internal/sampler"
	"github.com/zenmetrics/zenmon/internal/smu"
	"github.com/zenmetrics/zenmon/internal/ui"
)

var version = "dev" // overridden during build with ldflags

// New builds the root command. With no subcommand it prints a one-shot
// sensor dump, or loops with --watch.
func New() *cli.Command {
	return &cli.Command{
		Name:    "zenmon",
		Usage:   "AMD Ryzen sensor readings via the ryzen_smu kernel module",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "sysfs",
				Usage:   "ryzen_smu sysfs directory",
				Sources: cli.EnvVars("ZENMON_SYSFS"),
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "config file (default is ~/.config/zenmon/config.yaml)",
				Sources: cli.EnvVars("ZENMON_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "output a machine-readable JSON reading",
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "continuously update readings",
			},
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "update interval for watch mode",
				Value:   time.Second,
			},
			&cli.BoolFlag{Name: "temps", Usage: "show only temperature readings"},
			&cli.BoolFlag{Name: "power", Usage: "show only power readings"},
			&cli.BoolFlag{Name: "freq", Usage: "show only frequency readings"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			slog.SetDefault(newLogger(cmd))
			return ctx, nil
		},
		Action: runRead,
		Commands: []*cli.Command{
			monitorCmd(),
			exportCmd(),
		},
	}
}

func monitorCmd() *cli.Command {
	return &cli.Command{
		Name:  "monitor",
		Usage: "Launch the terminal dashboard",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "refresh interval",
				Value:   time.Second,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, reader, err := setup(cmd)
			if err != nil {
				return err
			}
			return ui.Run(reader, cfg)
		},
	}
}

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Serve readings as Prometheus metrics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "listen",
				Usage:   "listen address for the metrics endpoint",
				Sources: cli.EnvVars("ZENMON_LISTEN"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, reader, err := setup(cmd)
			if err != nil {
				return err
			}
			if cmd.IsSet("listen") {
				cfg.Listen = cmd.String("listen")
			}
			return export.Serve(ctx, cfg.Listen, reader, slog.Default())
		},
	}
}

func runRead(ctx context.Context, cmd *cli.Command) error {
	cfg, reader, err := setup(cmd)
	if err != nil {
		return err
	}

	smuVersion, err := reader.Version()
	if err != nil {
		smuVersion = "Unknown"
	}
	opts := render.Options{
		TempsOnly: cmd.Bool("temps"),
		PowerOnly: cmd.Bool("power"),
		FreqOnly:  cmd.Bool("freq"),
	}

	printOnce := func() error {
		reading, err := reader.Read()
		if err != nil {
			return err
		}
		if cmd.Bool("json") {
			out, err := render.JSON(reading)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		}
		fmt.Print(render.Text(reading, smuVersion, opts))
		return nil
	}

	if !cmd.Bool("watch") {
		return printOnce()
	}

	events := sampler.New(reader, cfg.Interval).Stream(ctx)
	for ev := range events {
		fmt.Print("\x1B[2J\x1B[1;1H") // clear screen, home cursor
		if ev.Err != nil {
			fmt.Fprintf(os.Stderr, "Error reading PM table: %v\n", ev.Err)
			continue
		}
		if cmd.Bool("json") {
			if out, err := render.JSON(ev.Reading); err == nil {
				fmt.Println(out)
			}
		} else {
			fmt.Print(render.Text(ev.Reading, smuVersion, opts))
		}
	}
	return nil
}

// setup loads configuration (flags > env > file > defaults) and opens
// the SMU reader.
func setup(cmd *cli.Command) (config.Config, *smu.Reader, error) {
	path := cmd.String("config")
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}
	if cmd.IsSet("sysfs") {
		cfg.SysfsPath = cmd.String("sysfs")
	}
	if cmd.IsSet("interval") {
		cfg.Interval = cmd.Duration("interval")
	}

	reader, err := smu.NewAtPath(cfg.SysfsPath)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, reader, nil
}

// defaultConfigPath returns the user config file, or "" when absent so
// Load falls through to defaults.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".config", "zenmon", "config.yaml")
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return ""
	}
	return path
}

func newLogger(cmd *cli.Command) *slog.Logger {
	level := slog.LevelInfo
	if cmd.Bool("debug") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
