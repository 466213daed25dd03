package errors

import "fmt"

var (
	ErrTransport        = fmt.Errorf("transport failure")
	ErrDecode           = fmt.Errorf("malformed response")
	ErrMissingParameter = fmt.Errorf("missing parameter")
	ErrInvalidParameter = fmt.Errorf("invalid parameter")
	ErrNotLoggedIn      = fmt.Errorf("not logged in")
	ErrDuplicateCommand = fmt.Errorf("command already registered")
	ErrInvalidCommand   = fmt.Errorf("invalid command")
)
