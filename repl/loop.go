// Package repl drives the interactive session: it reads one line at a time,
// hands commands to the dispatcher and waits for them to finish before
// reading again.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"kiki-chat/contract"
	"kiki-chat/ui"
	"log/slog"
)

const maxLineSize = 1024 * 1024

type Loop struct {
	log        *slog.Logger
	reader     *bufio.Reader
	console    *ui.Console
	dispatcher contract.IDispatcher
}

func NewLoop(log *slog.Logger, in io.Reader, console *ui.Console, dispatcher contract.IDispatcher) *Loop {
	return &Loop{
		log:        log,
		reader:     bufio.NewReader(in),
		console:    console,
		dispatcher: dispatcher,
	}
}

// Run prints the greeting and processes lines until "&", the end of input or
// the cancellation of ctx. Command failures are printed and never stop the
// loop. Only a read error other than the end of input is returned.
func (l *Loop) Run(ctx context.Context) error {
	l.console.Println(ui.Greeting)

	for {
		if err := ctx.Err(); err != nil {
			l.log.Info("Input loop stopped", "reason", err)
			return nil
		}

		text, tooLong, err := l.readLine()
		if errors.Is(err, io.EOF) {
			l.log.Info("End of input, leaving")
			l.console.Println(ui.EndOfInput)
			return nil
		}
		if err != nil {
			l.console.Error("Reading input failed: %v", err)
			return fmt.Errorf("read input: %w", err)
		}
		if tooLong {
			l.log.Debug("Line dropped", "limit", maxLineSize)
			l.console.Warn(ui.LineTooLong, maxLineSize)
			continue
		}

		line := ParseLine(text)
		l.log.Debug("Line read", "kind", line.Kind)

		switch line.Kind {
		case LineQuit:
			l.log.Info("Quit requested")
			return nil
		case LineBlank:
			l.console.Warn(ui.EmptyLine)
		case LineInvalid:
			l.console.Warn(ui.CmdWarn)
		case LineCommand:
			if err := l.dispatcher.Dispatch(ctx, line.Invocation); err != nil {
				l.log.Debug("Command failed", "name", line.Invocation.Name, "error", err)
				l.console.Error("%v", err)
			}
		}
	}
}

// readLine returns the next line without its line ending. A line longer than
// maxLineSize is consumed up to its end and reported as too long, so the next
// call starts on the following line.
func (l *Loop) readLine() (string, bool, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, isPrefix, err := l.reader.ReadLine()
		if err != nil {
			// a last line without line ending that filled the buffer exactly
			if len(buf) > 0 || tooLong {
				return string(buf), tooLong, nil
			}
			return "", false, err
		}
		if !tooLong {
			if len(buf)+len(chunk) > maxLineSize {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}
