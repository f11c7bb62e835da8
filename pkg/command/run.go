package command

import (
	"context"
	"time"

	"github.com/matzehuels/cupstack/pkg/observability"
	"github.com/matzehuels/cupstack/pkg/tower"
)

// Summary counts what [Run] did.
type Summary struct {
	Executed int
	Failed   int
	Exited   bool
	Duration time.Duration
}

// StepFunc observes each executed command. Returning an error stops the run.
type StepFunc func(cmd Command, res Result) error

// Run executes cmds against t in order. Failed tower operations are counted
// and do not stop the run; the context, an exit command, or an error from
// step do. The name identifies the script to observability hooks.
func Run(ctx context.Context, name string, t *tower.Tower, cmds []Command, step StepFunc) (Summary, error) {
	hooks := observability.Script()
	hooks.OnScriptStart(ctx, name, len(cmds))

	var (
		sum   Summary
		err   error
		start = time.Now()
	)
	for _, cmd := range cmds {
		if err = ctx.Err(); err != nil {
			break
		}
		res := Exec(t, cmd)
		sum.Executed++
		if res.Err != nil {
			sum.Failed++
		}
		if step != nil {
			if err = step(cmd, res); err != nil {
				break
			}
		}
		if res.Exit {
			sum.Exited = true
			break
		}
	}
	sum.Duration = time.Since(start)
	hooks.OnScriptComplete(ctx, name, sum.Executed, sum.Failed, sum.Duration, err)
	return sum, err
}
