package repl

import (
	"kiki-chat/domain"
	"strings"
)

const (
	QuitSentinel  = "&"
	CommandPrefix = "/"
)

type LineKind int

const (
	LineBlank LineKind = iota
	LineQuit
	LineCommand
	LineInvalid
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineQuit:
		return "quit"
	case LineCommand:
		return "command"
	default:
		return "invalid"
	}
}

// Line is one classified input line. Invocation is only set for LineCommand.
type Line struct {
	Kind       LineKind
	Invocation domain.Invocation
}

// ParseLine tokenizes on whitespace and classifies the line. Only a first
// token equal to "&" quits; a first token starting with "/" followed by a
// name is a command, the remaining tokens being its parameters.
func ParseLine(text string) Line {
	words := strings.Fields(text)
	if len(words) == 0 {
		return Line{Kind: LineBlank}
	}
	if words[0] == QuitSentinel {
		return Line{Kind: LineQuit}
	}
	name, ok := strings.CutPrefix(words[0], CommandPrefix)
	if !ok || name == "" {
		return Line{Kind: LineInvalid}
	}
	return Line{Kind: LineCommand, Invocation: domain.NewInvocation(name, words[1:])}
}
