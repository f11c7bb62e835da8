package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cupstack/pkg/errors"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Rendered 3 files (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() when
// none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Tower Adapters
// =============================================================================

// logNotifier shows tower failure messages as warnings.
type logNotifier struct {
	logger *log.Logger
}

func (n logNotifier) NotifyError(msg string) {
	n.logger.Warn(msg)
}

// logHooks traces tower and script events at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnOperation(op string, height int, err error) {
	if err != nil {
		h.logger.Debug("Tower operation failed", "op", op, "height", height, "code", errors.GetCode(err))
		return
	}
	h.logger.Debug("Tower operation", "op", op, "height", height)
}

func (h *logHooks) OnRedraw(cups int) {
	h.logger.Debug("Redrawn", "cups", cups)
}

func (h *logHooks) OnScriptStart(_ context.Context, name string, commands int) {
	h.logger.Debug("Script started", "script", name, "commands", commands)
}

func (h *logHooks) OnScriptComplete(_ context.Context, name string, executed, failed int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Script stopped", "script", name, "executed", executed, "failed", failed, "err", err)
		return
	}
	h.logger.Debug("Script finished", "script", name, "executed", executed, "failed", failed, "took", d.Round(time.Millisecond))
}
