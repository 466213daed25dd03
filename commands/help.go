package commands

import (
	"context"
	"kiki-chat/contract"
	"kiki-chat/domain"
	"kiki-chat/ui"
	"strings"

	"github.com/samber/lo"
)

type Help struct {
	registry *Registry
	console  *ui.Console
}

func NewHelp(registry *Registry, console *ui.Console) *Help {
	return &Help{registry: registry, console: console}
}

func (h *Help) Describe() string {
	return "list all commands the kiki's service provides."
}

// Execute prints the names on one line, then one description per command,
// both in registration order.
func (h *Help) Execute(_ context.Context, _ domain.Invocation, _ contract.IWireClient, _ *domain.Session) error {
	entries := h.registry.Commands()

	h.console.Println(ui.HelpHeader)
	h.console.Println(strings.Join(lo.Map(entries, func(e Entry, _ int) string {
		return "/" + e.Name
	}), " | "))

	h.console.Println(ui.HelpDetailsHeader)
	for _, e := range entries {
		h.console.Printf("  %s: %s", e.Name, e.Command.Describe())
	}
	return nil
}
