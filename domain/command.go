package domain

import (
	"fmt"
	"kiki-chat/errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxParameters is the number of positional parameters an invocation keeps.
const MaxParameters = 4

var validate = validator.New()

// Invocation is one parsed input line: the command name without its '/'
// prefix and the positional parameters that followed it.
type Invocation struct {
	Name       string   `validate:"required"`
	Parameters []string `validate:"max=4"`
}

// NewInvocation builds an invocation from the words following the command
// name. Words beyond MaxParameters are folded into the last parameter so
// free text such as a message body survives the bound.
func NewInvocation(name string, words []string) Invocation {
	params := make([]string, 0, MaxParameters)
	for i, word := range words {
		if i == MaxParameters-1 {
			params = append(params, strings.Join(words[i:], " "))
			break
		}
		params = append(params, word)
	}
	return Invocation{Name: name, Parameters: params}
}

func (i Invocation) Validate() error {
	if err := validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidCommand, err)
	}
	return nil
}

// Param returns the parameter at index, or ErrMissingParameter naming what
// was expected.
func (i Invocation) Param(index int, name string) (string, error) {
	if index < 0 || index >= len(i.Parameters) {
		return "", fmt.Errorf("%w: %s", errors.ErrMissingParameter, name)
	}
	return i.Parameters[index], nil
}

// Rest joins the parameters from index on.
func (i Invocation) Rest(index int) string {
	if index >= len(i.Parameters) {
		return ""
	}
	return strings.Join(i.Parameters[index:], " ")
}
