package commands

import (
	"bytes"
	"kiki-chat/ui"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
)

func newTestConsole(t *testing.T) (*ui.Console, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return ui.NewConsole(&out, false), &out
}

func newTestLogger() *slog.Logger {
	return logs.GetLoggerFromLevel(slog.LevelDebug)
}

func newTestRegistry(t *testing.T, console *ui.Console) *Registry {
	t.Helper()
	registry, err := NewDefaultRegistry(newTestLogger(), console, nil)
	if err != nil {
		t.Fatalf("default registry: %v", err)
	}
	return registry
}

func entryNames(registry *Registry) []string {
	return lo.Map(registry.Commands(), func(entry Entry, _ int) string {
		return entry.Name
	})
}
