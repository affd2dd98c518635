// Package cli provides the command-line interface for taskgen.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/klauern/taskgen/internal/config"
	"github.com/klauern/taskgen/internal/logging"
	"github.com/klauern/taskgen/internal/ui"
)

var (
	// Version is the current version of the application.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// BuildDate is the date and time of the build.
	BuildDate = "unknown"
)

// Run executes the CLI application with the given context and arguments.
func Run(ctx context.Context, args []string) error {
	return newApp(os.Stdin, os.Stdout, os.Stderr).Run(ctx, args)
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "taskgen",
		Usage:     "Generate scheduled task files from stubs",
		Version:   Version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to a YAML or TOML configuration file",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output (info level logging)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug output (debug level logging, implies verbose)",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored output",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return ctx, err
			}
			configureColors(cmd, cfg)
			logger := configureLogging(cmd, cfg)
			return withConfig(logging.NewContext(ctx, logger), cfg), nil
		},
		Commands: []*cli.Command{
			makeTaskCommand(),
			stubsCommand(),
			configCommand(),
			versionCommand(),
		},
	}
}

// loadConfig reads --config when given, otherwise the default config file.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	if path := cmd.String("config"); path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// configureColors sets up color output based on CLI flags and config.
func configureColors(cmd *cli.Command, cfg *config.Config) {
	if cmd.Bool("no-color") {
		ui.DisableColors()
		return
	}
	out, _ := cmd.Root().Writer.(*os.File)
	ui.ConfigureColors(cfg.Output.Color, out)
}

// configureLogging sets up the logging level based on CLI flags and config.
func configureLogging(cmd *cli.Command, cfg *config.Config) *slog.Logger {
	opts := logging.DefaultOptions()
	opts.Output = cmd.Root().ErrWriter
	opts.Level = logging.LevelFor(cmd.Bool("verbose") || cfg.Output.Verbose, cmd.Bool("debug"))
	opts.AddSource = cmd.Bool("debug")

	logger := logging.New(opts)
	logging.SetDefault(logger)

	logging.Debug("logging configured", slog.String("level", opts.Level.String()))

	return logger
}

type configKey struct{}

func withConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFrom returns the configuration loaded by the root command, or the
// defaults when a command runs without it.
func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}
