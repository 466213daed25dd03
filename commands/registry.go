// Package commands holds the slash-commands of the client, the registry
// mapping their names to handlers, and the dispatcher driving them.
package commands

import (
	"fmt"
	"kiki-chat/contract"
	"kiki-chat/errors"
	"kiki-chat/moderation"
	"kiki-chat/ui"
	"log/slog"
)

// Entry is one registered command.
type Entry struct {
	Name    string
	Command contract.ICommand
}

// Registry maps command names to handlers and remembers registration order
// so listings are deterministic. It is built once at startup and only read
// afterward.
type Registry struct {
	names    []string
	commands map[string]contract.ICommand
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]contract.ICommand)}
}

// NewDefaultRegistry registers the client commands in listing order.
// censor may be nil.
func NewDefaultRegistry(log *slog.Logger, console *ui.Console, censor *moderation.Censor) (*Registry, error) {
	registry := NewRegistry()
	for _, entry := range []Entry{
		{Name: "login", Command: NewLogin(log, console)},
		{Name: "send", Command: NewSend(log, console, censor)},
		{Name: "rooms", Command: NewRooms(console)},
		{Name: "help", Command: NewHelp(registry, console)},
	} {
		if err := registry.Register(entry.Name, entry.Command); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

func (r *Registry) Register(name string, command contract.ICommand) error {
	if name == "" || command == nil {
		return fmt.Errorf("%w: empty name or nil command", errors.ErrInvalidCommand)
	}
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("%w: %s", errors.ErrDuplicateCommand, name)
	}
	r.names = append(r.names, name)
	r.commands[name] = command
	return nil
}

// Lookup is an exact, case-sensitive match.
func (r *Registry) Lookup(name string) (contract.ICommand, bool) {
	command, ok := r.commands[name]
	return command, ok
}

// Commands returns every entry in registration order.
func (r *Registry) Commands() []Entry {
	entries := make([]Entry, 0, len(r.names))
	for _, name := range r.names {
		entries = append(entries, Entry{Name: name, Command: r.commands[name]})
	}
	return entries
}
