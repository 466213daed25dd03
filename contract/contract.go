//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"kiki-chat/domain"
)

// IWireClient reaches the remote chat service. Every call is one blocking
// POST and returns the raw JSON body. Transport failures come back as an
// error wrapping errors.ErrTransport.
type IWireClient interface {
	Post(ctx context.Context, path string, payload any) ([]byte, error)
	Login(ctx context.Context, username string) ([]byte, error)
	SendMessage(ctx context.Context, senderID domain.UserID, receiverID domain.RoomID, message string) ([]byte, error)
}

// ICommand is one slash-command of the client.
type ICommand interface {
	Describe() string
	Execute(ctx context.Context, inv domain.Invocation, wire IWireClient, session *domain.Session) error
}

type IDispatcher interface {
	Dispatch(ctx context.Context, inv domain.Invocation) error
}
