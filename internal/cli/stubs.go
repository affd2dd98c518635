package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/urfave/cli/v3"

	"github.com/klauern/taskgen/internal/schedule"
	"github.com/klauern/taskgen/internal/stub"
	"github.com/klauern/taskgen/internal/ui"
)

func stubsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stubs",
		Usage: "List task types and the schedule names taskgen can preview",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out := cmd.Root().Writer
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to determine working directory: %w", err)
			}
			store := stub.New(configFrom(ctx).ProjectRoot(wd))

			types := store.Types()
			width := 0
			for _, typ := range types {
				width = max(width, runewidth.StringWidth(typ))
			}

			fmt.Fprintln(out, ui.Bold("Task types:"))
			for _, typ := range types {
				path, err := store.Path(typ)
				if err != nil {
					return err
				}
				source := stub.BuiltinSource
				if _, err := os.Stat(path); err == nil {
					source = path
				}
				fmt.Fprintf(out, "  %s  %s\n", runewidth.FillRight(typ, width), ui.Dim(source))
			}

			fmt.Fprintln(out, ui.Bold("Frequencies:"))
			fmt.Fprintf(out, "  %s\n", strings.Join(schedule.Frequencies(), ", "))
			fmt.Fprintln(out, ui.Bold("Constraints:"))
			fmt.Fprintf(out, "  %s\n", strings.Join(schedule.Constraints(), ", "))
			return nil
		},
	}
}
