package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks reports pipeline and render events at debug level.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnParseStart(_ context.Context, source string) {
	h.logger.Debug("reading notes", "source", source)
}

func (h *logHooks) OnParseComplete(_ context.Context, source string, positions int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("reading notes failed", "source", source, "err", err)
		return
	}
	h.logger.Debug("read notes", "source", source, "positions", positions, "duration", d)
}

func (h *logHooks) OnSolveStart(_ context.Context, op string, chords int) {
	h.logger.Debug("solving", "op", op, "chords", chords)
}

func (h *logHooks) OnSolveComplete(_ context.Context, op string, result int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("solve failed", "op", op, "err", err)
		return
	}
	h.logger.Debug("solve finished", "op", op, "result", result, "duration", d)
}

func (h *logHooks) OnRenderStart(_ context.Context, format string) {
	h.logger.Debug("rendering", "format", format)
}

func (h *logHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("render finished", "format", format, "bytes", size, "duration", d)
}
