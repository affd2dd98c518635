package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauern/taskgen/internal/generator"
	"github.com/klauern/taskgen/internal/ui"
	"github.com/klauern/taskgen/internal/ui/tui"
)

// newPrompter picks the prompt for the destination question. A terminal on
// stdin gets the interactive text input, anything else is read line by line.
func newPrompter(in io.Reader, out io.Writer, def string) generator.PromptFunc {
	if f, ok := in.(*os.File); ok && ui.IsTerminal(f) {
		return func(question string) (string, error) {
			return tui.RunTextPrompt(question, def)
		}
	}
	return newLinePrompter(in, out)
}

// newLinePrompter asks on out and reads one line from in. End of input is
// an empty answer.
func newLinePrompter(in io.Reader, out io.Writer) generator.PromptFunc {
	reader := bufio.NewReader(in)
	return func(question string) (string, error) {
		fmt.Fprintf(out, "%s ", ui.Info(question))

		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
		}
		return strings.TrimSpace(line), nil
	}
}
