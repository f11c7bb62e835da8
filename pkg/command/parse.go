package command

import (
	"bufio"
	"io"
	"strings"

	"github.com/matzehuels/cupstack/pkg/errors"
	"github.com/matzehuels/cupstack/pkg/tower"
)

// Parse parses a single line. Blank and comment-only lines yield ok == false
// with a nil error.
func Parse(line string) (cmd Command, ok bool, err error) {
	fields := strings.Fields(stripComment(line))
	if len(fields) == 0 {
		return Command{}, false, nil
	}

	op, found := Lookup(fields[0])
	if !found {
		return Command{}, false, invalid("unknown command %q", fields[0])
	}
	cmd = Command{Op: op}
	args := fields[1:]

	switch op {
	case OpPushCup:
		if err := arity(op, args, 1, 4); err != nil {
			return Command{}, false, err
		}
		if cmd.ID, err = atoi(op, "cup number", args[0]); err != nil {
			return Command{}, false, err
		}
		if len(args) == 4 {
			if cmd.Height, err = atoi(op, "height", args[1]); err != nil {
				return Command{}, false, err
			}
			if cmd.Width, err = atoi(op, "width", args[2]); err != nil {
				return Command{}, false, err
			}
			if cmd.Height <= 0 || cmd.Width <= 0 {
				return Command{}, false, invalid("%s: height and width must be positive", op)
			}
			if err := errors.ValidateColor(args[3]); err != nil {
				return Command{}, false, err
			}
			cmd.Color = args[3]
		}

	case OpPushLid:
		if err := arity(op, args, 1, 2); err != nil {
			return Command{}, false, err
		}
		if cmd.ID, err = atoi(op, "cup number", args[0]); err != nil {
			return Command{}, false, err
		}
		if len(args) == 2 {
			if err := errors.ValidateColor(args[1]); err != nil {
				return Command{}, false, err
			}
			cmd.Color = args[1]
		}

	case OpRemoveCup, OpRemoveLid:
		if err := arity(op, args, 1); err != nil {
			return Command{}, false, err
		}
		if cmd.ID, err = atoi(op, "cup number", args[0]); err != nil {
			return Command{}, false, err
		}

	case OpSwap:
		if err := arity(op, args, 4); err != nil {
			return Command{}, false, err
		}
		if cmd.A, err = tower.ParseItem(args[0], args[1]); err != nil {
			return Command{}, false, err
		}
		if cmd.B, err = tower.ParseItem(args[2], args[3]); err != nil {
			return Command{}, false, err
		}

	default:
		if err := arity(op, args, 0); err != nil {
			return Command{}, false, err
		}
	}
	return cmd, true, nil
}

// stripComment cuts the line at the first '#' that opens a word and is
// followed by a blank or the end of line, or that starts the line. A word
// such as "#ff8800" is a hex color, not a comment.
func stripComment(line string) string {
	for i := 0; i < len(line); i++ {
		if line[i] != '#' {
			continue
		}
		if strings.TrimSpace(line[:i]) == "" {
			return ""
		}
		opensWord := line[i-1] == ' ' || line[i-1] == '\t'
		endsWord := i+1 == len(line) || line[i+1] == ' ' || line[i+1] == '\t'
		if opensWord && endsWord {
			return line[:i]
		}
	}
	return line
}

// ParseScript parses every line of r. It stops at the first malformed line
// and reports its line number.
func ParseScript(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		cmd, ok, err := Parse(sc.Text())
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d", n)
		}
		if !ok {
			continue
		}
		cmd.Line = n
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read script")
	}
	return cmds, nil
}
