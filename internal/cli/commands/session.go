package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/leapstack-labs/leapbasic/internal/cli/output"
	"github.com/leapstack-labs/leapbasic/pkg/interp"
)

// Session is one interpreter lifetime: its stores plus the reporter that
// shows failures to the user.
type Session struct {
	ID     string
	Interp *interp.Interpreter

	reporter *output.Reporter
	logger   *slog.Logger
}

// Stats summarises a read loop.
type Stats struct {
	Lines    int
	Failures int
}

// NewSession creates a session with fresh stores. Command output goes to
// the reporter's output writer.
func NewSession(reporter *output.Reporter, logger *slog.Logger) *Session {
	id := uuid.NewString()
	logger = logger.With("session", id)
	return &Session{
		ID:       id,
		Interp:   interp.New(reporter.Out(), interp.WithLogger(logger)),
		reporter: reporter,
		logger:   logger,
	}
}

// Exec parses and executes one newline-terminated line. A failure is
// reported and false is returned; the session stays usable.
func (s *Session) Exec(line string) bool {
	if err := s.Interp.ExecLine(line); err != nil {
		s.reporter.Report(err)
		return false
	}
	return true
}

// RunLines feeds r to the interpreter one line at a time until EOF.
// A last line without a newline gets one. Statement failures are reported
// and never stop the loop; only read errors and ctx cancellation do.
func (s *Session) RunLines(ctx context.Context, r io.Reader) (Stats, error) {
	var stats Stats
	br := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return stats, fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" && err != nil {
			break
		}
		if !strings.HasSuffix(line, "\n") {
			line += "\n"
		}

		stats.Lines++
		if !s.Exec(line) {
			stats.Failures++
		}
		if err != nil {
			break
		}
	}

	s.logger.Debug("input finished", "lines", stats.Lines, "failures", stats.Failures)
	return stats, nil
}
