package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cupstack/pkg/canvas"
	"github.com/matzehuels/cupstack/pkg/command"
	"github.com/matzehuels/cupstack/pkg/diff"
	"github.com/matzehuels/cupstack/pkg/errors"
	"github.com/matzehuels/cupstack/pkg/sink"
	"github.com/matzehuels/cupstack/pkg/tower"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	trace  bool   // print a diff of the tower state after every mutation
	table  bool   // print the final cups as a table
	strict bool   // fail when any command failed
	svg    string // write the final scene to this SVG file
}

// runCommand creates the run command which executes a command script.
func (c *CLI) runCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Execute a command script against a fresh tower",
		Long: `Execute a command script against a fresh tower.

Each line holds one command, for example "pushCup 3" or "swap cup 1 cup 2".
Blank lines and lines starting with # are ignored. Use - to read from stdin.`,
		Example: `  cupstack run lesson.cups
  cupstack run lesson.cups --trace
  echo "pushCup 3; height" | tr ';' '\n' | cupstack run -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runScript(ctx, args[0], cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.trace, "trace", false, "print a state diff after each mutating command")
	cmd.Flags().BoolVar(&opts.table, "table", false, "print the final cups as a table")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit with an error when any command failed")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "write the final scene as SVG to this file")

	return cmd
}

func (c *CLI) runScript(ctx context.Context, path string, w io.Writer, opts runOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	data, name, err := readScript(path)
	if err != nil {
		return err
	}
	cmds, err := command.ParseScript(bytes.NewReader(data))
	if err != nil {
		return err
	}
	logger.Debug("Parsed script", "script", name, "commands", len(cmds))

	scene := canvas.NewScene()
	t := c.newTower(cfg, scene, nil)

	step := scriptPrinter(w, t, opts.trace)
	sum, err := command.Run(ctx, name, t, cmds, step)
	if err != nil {
		return err
	}

	printSummary(sum, t.Height(), t.MaxHeight())
	if opts.table && t.Len() > 0 {
		fmt.Fprintln(w, cupTable(t.Cups()))
	}
	if opts.svg != "" {
		if err := writeSceneSVG(t, scene, opts.svg); err != nil {
			return err
		}
		printFile(opts.svg)
	}
	if opts.strict && sum.Failed > 0 {
		return fmt.Errorf("%d of %d commands failed", sum.Failed, sum.Executed)
	}
	return nil
}

// scriptPrinter returns a step function that writes query answers and
// failures to w. With trace set, every mutation is followed by a unified
// diff of the textual tower state.
func scriptPrinter(w io.Writer, t *tower.Tower, trace bool) command.StepFunc {
	prev := sink.RenderText(sink.NewSnapshot(t, ""))
	return func(cmd command.Command, res command.Result) error {
		switch {
		case res.Err != nil:
			fmt.Fprintf(w, "%s %s: %s\n", styleIconError.Render(iconError), cmd, errors.UserMessage(res.Err))
		case res.Output != "":
			fmt.Fprintln(w, res.Output)
		}
		if !trace || cmd.Op.IsQuery() {
			return nil
		}
		cur := sink.RenderText(sink.NewSnapshot(t, ""))
		d, err := diff.Unified("before", cmd.String(), prev, cur, diff.DefaultContext)
		if err != nil {
			return err
		}
		for _, line := range strings.Split(strings.TrimSuffix(d, "\n"), "\n") {
			if line != "" {
				fmt.Fprintln(w, StyleDim.Render(line))
			}
		}
		prev = cur
		return nil
	}
}

// readScript reads a script file, or stdin when path is "-".
func readScript(path string) (data []byte, name string, err error) {
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
		return data, "stdin", nil
	}
	if err := errors.ValidatePath(path); err != nil {
		return nil, "", err
	}
	data, err = os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, "", errors.New(errors.ErrCodeFileNotFound, "script not found: %s", path)
	}
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return data, path, nil
}

// writeSceneSVG shows the tower if needed and writes the scene to path.
func writeSceneSVG(t *tower.Tower, scene *canvas.Scene, path string) error {
	if !t.Visible() {
		if err := t.MakeVisible(); err != nil {
			return err
		}
	}
	svg := sink.RenderSVG(scene.Rects(), sink.WithMargin(10))
	if err := os.WriteFile(path, svg, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
