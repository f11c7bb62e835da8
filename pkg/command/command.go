package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/cupstack/pkg/errors"
	"github.com/matzehuels/cupstack/pkg/tower"
)

// Op is the canonical camelCase name of a command.
type Op string

const (
	OpPushCup       Op = "pushCup"
	OpPopCup        Op = "popCup"
	OpRemoveCup     Op = "removeCup"
	OpPushLid       Op = "pushLid"
	OpPopLid        Op = "popLid"
	OpRemoveLid     Op = "removeLid"
	OpOrderTower    Op = "orderTower"
	OpReverseTower  Op = "reverseTower"
	OpSwap          Op = "swap"
	OpCover         Op = "cover"
	OpSwapToReduce  Op = "swapToReduce"
	OpHeight        Op = "height"
	OpLidedCups     Op = "lidedCups"
	OpStackingItems Op = "stackingItems"
	OpMakeVisible   Op = "makeVisible"
	OpMakeInvisible Op = "makeInvisible"
	OpOk            Op = "ok"
	OpExit          Op = "exit"
)

// Ops lists every command in the order they are documented.
var Ops = []Op{
	OpPushCup, OpPopCup, OpRemoveCup,
	OpPushLid, OpPopLid, OpRemoveLid,
	OpOrderTower, OpReverseTower, OpSwap, OpCover, OpSwapToReduce,
	OpHeight, OpLidedCups, OpStackingItems,
	OpMakeVisible, OpMakeInvisible, OpOk, OpExit,
}

var opsByKey = func() map[string]Op {
	m := make(map[string]Op, len(Ops))
	for _, op := range Ops {
		m[normalize(string(op))] = op
	}
	return m
}()

// normalize folds case and drops word separators so that "push-cup",
// "push_cup" and "PushCup" all map to the same key.
func normalize(name string) string {
	name = strings.ToLower(name)
	return strings.NewReplacer("-", "", "_", "").Replace(name)
}

// Lookup resolves a command name in any supported spelling.
func Lookup(name string) (Op, bool) {
	op, ok := opsByKey[normalize(name)]
	return op, ok
}

// IsQuery reports whether the command only reads tower state.
func (o Op) IsQuery() bool {
	switch o {
	case OpSwapToReduce, OpHeight, OpLidedCups, OpStackingItems, OpOk:
		return true
	}
	return false
}

// Command is one parsed instruction.
type Command struct {
	Op Op

	// ID is the cup number for pushCup, removeCup, pushLid and removeLid.
	ID int

	// Explicit cup dimensions; zero Height means the conventional cup.
	Height int
	Width  int
	Color  string

	// A and B are the swap operands.
	A, B tower.Item

	// Line is the 1-based script line, zero when parsed from a single line.
	Line int
}

// String formats the command in canonical form; parsing the result yields
// an equal command (Line aside).
func (c Command) String() string {
	parts := []string{string(c.Op)}
	switch c.Op {
	case OpPushCup:
		parts = append(parts, strconv.Itoa(c.ID))
		if c.Height != 0 {
			parts = append(parts, strconv.Itoa(c.Height), strconv.Itoa(c.Width), c.Color)
		}
	case OpPushLid:
		parts = append(parts, strconv.Itoa(c.ID))
		if c.Color != "" {
			parts = append(parts, c.Color)
		}
	case OpRemoveCup, OpRemoveLid:
		parts = append(parts, strconv.Itoa(c.ID))
	case OpSwap:
		parts = append(parts, c.A.String(), c.B.String())
	}
	return strings.Join(parts, " ")
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidInput, format, args...)
}

func atoi(op Op, what, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s: %s must be a number, got %q", op, what, s)
	}
	return n, nil
}

// arity checks the argument count against the accepted counts.
func arity(op Op, args []string, accepted ...int) error {
	for _, n := range accepted {
		if len(args) == n {
			return nil
		}
	}
	want := make([]string, len(accepted))
	for i, n := range accepted {
		want[i] = strconv.Itoa(n)
	}
	return invalid("%s takes %s argument(s), got %d", op, strings.Join(want, " or "), len(args))
}

// Usage returns a one-line synopsis for the command.
func (o Op) Usage() string {
	switch o {
	case OpPushCup:
		return "pushCup <id> [<height> <width> <color>]"
	case OpPushLid:
		return "pushLid <id> [<color>]"
	case OpRemoveCup, OpRemoveLid:
		return fmt.Sprintf("%s <id>", o)
	case OpSwap:
		return "swap cup <a> cup <b>"
	}
	return string(o)
}
