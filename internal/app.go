package internal

import (
	"fmt"
	"io"
	"kiki-chat/client"
	"kiki-chat/commands"
	"kiki-chat/domain"
	"kiki-chat/moderation"
	"kiki-chat/repl"
	"kiki-chat/ui"
	"log/slog"
)

// NewApp wires the client: one session, one wire client and the registered
// commands behind an input loop reading in and printing to out.
func NewApp(log *slog.Logger, config Config, in io.Reader, out io.Writer) (*repl.Loop, error) {
	replacement, err := CharacterRune(config.CensorCharacter)
	if err != nil {
		return nil, err
	}
	censor, err := moderation.NewCensor(config.CensoredWordList(), replacement)
	if err != nil {
		return nil, fmt.Errorf("censor: %w", err)
	}

	console := ui.NewConsole(out, config.Colours)
	wire := client.NewHTTPClient(log, config.ServerHost, config.HTTPTimeout)
	session := domain.NewSession()

	registry, err := commands.NewDefaultRegistry(log, console, censor)
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	dispatcher := commands.NewDispatcher(log, registry, wire, session, console)

	return repl.NewLoop(log, in, console, dispatcher), nil
}
