package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/klauern/taskgen/internal/config"
	"github.com/klauern/taskgen/internal/logging"
	"github.com/klauern/taskgen/internal/ui"
)

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Display or initialize configuration",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the effective configuration as YAML",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					data, err := yaml.Marshal(configFrom(ctx))
					if err != nil {
						return fmt.Errorf("failed to encode configuration: %w", err)
					}
					_, err = cmd.Root().Writer.Write(data)
					return err
				},
			},
			{
				Name:  "path",
				Usage: "Print the default configuration file path",
				Action: func(_ context.Context, cmd *cli.Command) error {
					fmt.Fprintln(cmd.Root().Writer, config.FilePath())
					return nil
				},
			},
			{
				Name:  "init",
				Usage: "Write the default configuration file",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Overwrite an existing configuration file",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					if config.Exists() && !cmd.Bool("force") {
						return errors.New("configuration file already exists (use --force to overwrite)")
					}
					if err := config.Default().Save(); err != nil {
						return fmt.Errorf("failed to write configuration: %w", err)
					}
					logging.Info("configuration written", logging.Path(config.FilePath()))
					fmt.Fprintln(cmd.Root().Writer, ui.StatusSuccess("Wrote "+config.FilePath()))
					return nil
				},
			},
		},
	}
}
