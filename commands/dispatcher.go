package commands

import (
	"context"
	"kiki-chat/contract"
	"kiki-chat/domain"
	"kiki-chat/ui"
	"log/slog"
)

// Dispatcher runs the command named by an invocation against the shared
// wire client and session. Unknown names fall back to the help listing.
type Dispatcher struct {
	log      *slog.Logger
	registry *Registry
	wire     contract.IWireClient
	session  *domain.Session
	console  *ui.Console
	fallback contract.ICommand
}

func NewDispatcher(log *slog.Logger, registry *Registry, wire contract.IWireClient,
	session *domain.Session, console *ui.Console) *Dispatcher {
	return &Dispatcher{
		log:      log,
		registry: registry,
		wire:     wire,
		session:  session,
		console:  console,
		fallback: NewHelp(registry, console),
	}
}

// Dispatch returns the error of the executed command. An unknown command is
// not an error: the notice and the help listing are printed instead.
func (d *Dispatcher) Dispatch(ctx context.Context, inv domain.Invocation) error {
	if err := inv.Validate(); err != nil {
		return err
	}

	command, ok := d.registry.Lookup(inv.Name)
	if !ok {
		d.log.Debug("Unknown command", "name", inv.Name)
		d.console.Warn(ui.CmdNotExist, inv.Name)
		return d.fallback.Execute(ctx, inv, d.wire, d.session)
	}

	d.log.Debug("Dispatching command", "name", inv.Name, "parameters", len(inv.Parameters))
	return command.Execute(ctx, inv, d.wire, d.session)
}
