package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/klauern/taskgen/internal/generator"
	"github.com/klauern/taskgen/internal/logging"
	"github.com/klauern/taskgen/internal/schedule"
	"github.com/klauern/taskgen/internal/stub"
	"github.com/klauern/taskgen/internal/ui"
)

const (
	msgGenerated = "The task file generated successfully"
	msgFailed    = "There was a problem when generating the file. Please check your command."
)

func makeTaskCommand() *cli.Command {
	return &cli.Command{
		Name:      "make:task",
		Aliases:   []string{"make-task"},
		Usage:     "Generates a task file with one task.",
		ArgsUsage: "<taskfile>",
		UsageText: `taskgen make:task <taskfile> [options]
   taskgen make:task --run "php backup.php" --frequency daily Backup
   taskgen make:task --type closure --output ./tasks Report`,
		Description: `This command makes a task file skeleton.

   The stub src/Stubs/<Type>Task.php below the configured project root is
   used when present, otherwise the built-in stub for the type.
   You are asked where to save the file; press enter to use the configured
   source path.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "frequency",
				Aliases: []string{"f"},
				Value:   generator.Defaults[generator.OptFrequency],
				Usage:   "The task's frequency",
			},
			&cli.StringFlag{
				Name:    "constraint",
				Aliases: []string{"c"},
				Value:   generator.Defaults[generator.OptConstraint],
				Usage:   "The task's constraint",
			},
			&cli.StringFlag{
				Name:    "in",
				Aliases: []string{"i"},
				Value:   generator.Defaults[generator.OptIn],
				Usage:   "The command's path",
			},
			&cli.StringFlag{
				Name:    "run",
				Aliases: []string{"r"},
				Value:   generator.Defaults[generator.OptRun],
				Usage:   "The task's command",
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Value:   generator.Defaults[generator.OptDescription],
				Usage:   "The task's description",
			},
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Value:   generator.Defaults[generator.OptType],
				Usage:   "The task type",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Save into this directory without asking",
			},
			&cli.BoolFlag{
				Name:  "no-input",
				Usage: "Never prompt; save into the configured source path",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Preview generated content without creating files",
			},
		},
		Action: runMakeTask,
	}
}

func runMakeTask(ctx context.Context, cmd *cli.Command) error {
	out := cmd.Root().Writer
	cfg := configFrom(ctx)
	logger := logging.WithContext(ctx).With(logging.Operation("make:task"))

	options := map[string]any{
		generator.OptFrequency:   cmd.String("frequency"),
		generator.OptConstraint:  cmd.String("constraint"),
		generator.OptIn:          cmd.String("in"),
		generator.OptRun:         cmd.String("run"),
		generator.OptDescription: cmd.String("description"),
		generator.OptType:        cmd.String("type"),
	}

	req, err := generator.NewRequest(cmd.Args().First(), options)
	if err != nil {
		return reportFailure(out, err)
	}

	wd, err := os.Getwd()
	if err != nil {
		return reportFailure(out, fmt.Errorf("failed to determine working directory: %w", err))
	}

	opts := generator.Options{
		SourcePath: cfg.SourceDir(wd),
		Suffix:     cfg.Source.Suffix,
		DryRun:     cmd.Bool("dry-run"),
	}
	switch {
	case cmd.String("output") != "":
		opts.SourcePath = cmd.String("output")
	case !cmd.Bool("no-input"):
		opts.Prompt = newPrompter(cmd.Root().Reader, out, opts.SourcePath)
	}

	projectRoot := cfg.ProjectRoot(wd)
	logger.Debug("generating task file",
		logging.Task(req.TaskName),
		logging.Type(req.Type),
		logging.Path(projectRoot),
	)

	gen := generator.New(stub.New(projectRoot), opts)
	res, err := gen.Run(logging.NewContext(ctx, logger), req)
	if err != nil {
		return reportFailure(out, err)
	}

	if opts.DryRun {
		fmt.Fprintln(out, ui.Info("Generated content preview: "+res.Output.Filename))
		fmt.Fprintln(out, strings.Repeat("-", 80))
		fmt.Fprintln(out, res.Output.Content)
		fmt.Fprintln(out, strings.Repeat("-", 80))
	} else {
		fmt.Fprintln(out, ui.StatusSuccess(ui.Info(msgGenerated)))
		fmt.Fprintf(out, "  %s\n", res.Path)
	}

	printSchedule(out, req, time.Now())
	return nil
}

// reportFailure prints the failure notice and hands err back so the process
// exits non-zero.
func reportFailure(out io.Writer, err error) error {
	fmt.Fprintln(out, ui.StatusWarning(ui.Warning(msgFailed)))
	if errors.Is(err, stub.ErrTemplateNotFound) {
		fmt.Fprintf(out, "  %s %s\n", ui.Dim("Available types:"), strings.Join(stub.New(".").Types(), ", "))
	}
	return err
}

// printSchedule shows when the new task would first run, if its frequency
// and constraint are known names.
func printSchedule(out io.Writer, req generator.Request, now time.Time) {
	preview, err := schedule.Describe(req.Frequency, req.Constraint, now)
	if err != nil {
		logging.Debug("no schedule preview", logging.Err(err))
		return
	}
	fmt.Fprintf(out, "  %s %s (next run %s)\n",
		ui.Dim("Schedule:"), preview.Expression, preview.Next.Format("Mon, 02 Jan 2006 15:04"))
}
