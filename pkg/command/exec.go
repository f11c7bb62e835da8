package command

import (
	"strconv"
	"strings"

	"github.com/matzehuels/cupstack/pkg/tower"
)

// Result is the outcome of one command.
type Result struct {
	// Output is the answer of a query, empty for mutations.
	Output string
	// OK mirrors [tower.Tower.Ok] after the command ran.
	OK bool
	// Err is the failure of a mutating command, nil on success.
	Err error
	// Exit is set by the exit command.
	Exit bool
}

// Exec applies cmd to t.
func Exec(t *tower.Tower, cmd Command) Result {
	var err error
	switch cmd.Op {
	case OpPushCup:
		if cmd.Height != 0 {
			err = t.AddCup(cmd.ID, cmd.Height, cmd.Width, cmd.Color)
		} else {
			err = t.PushCup(cmd.ID)
		}
	case OpPopCup:
		err = t.PopCup()
	case OpRemoveCup:
		err = t.RemoveCup(cmd.ID)
	case OpPushLid:
		if cmd.Color != "" {
			err = t.PushLidColor(cmd.ID, cmd.Color)
		} else {
			err = t.PushLid(cmd.ID)
		}
	case OpPopLid:
		err = t.PopLid()
	case OpRemoveLid:
		err = t.RemoveLid(cmd.ID)
	case OpOrderTower:
		err = t.OrderTower()
	case OpReverseTower:
		err = t.ReverseTower()
	case OpSwap:
		err = t.Swap(cmd.A, cmd.B)
	case OpCover:
		err = t.Cover()
	case OpMakeVisible:
		err = t.MakeVisible()
	case OpMakeInvisible:
		err = t.MakeInvisible()

	case OpSwapToReduce:
		a, b, found := t.SwapToReduce()
		out := "none"
		if found {
			out = a.String() + " " + b.String()
		}
		return Result{Output: out, OK: t.Ok()}
	case OpHeight:
		return Result{Output: strconv.Itoa(t.Height()), OK: t.Ok()}
	case OpLidedCups:
		return Result{Output: formatInts(t.LidedCups()), OK: t.Ok()}
	case OpStackingItems:
		return Result{Output: strings.TrimSuffix(tower.FormatItems(t.StackingItems()), "\n"), OK: t.Ok()}
	case OpOk:
		return Result{Output: strconv.FormatBool(t.Ok()), OK: t.Ok()}
	case OpExit:
		return Result{OK: t.Ok(), Exit: true}

	default:
		return Result{OK: t.Ok(), Err: invalid("unknown command %q", cmd.Op)}
	}
	return Result{OK: t.Ok(), Err: err}
}

func formatInts(ids []int) string {
	if len(ids) == 0 {
		return "none"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " ")
}
