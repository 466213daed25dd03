package commands

import (
	"context"
	"fmt"
	"kiki-chat/contract"
	"kiki-chat/domain"
	"kiki-chat/protocol"
	"kiki-chat/ui"
	"log/slog"

	"github.com/samber/lo"
)

type Login struct {
	log     *slog.Logger
	console *ui.Console
}

func NewLogin(log *slog.Logger, console *ui.Console) *Login {
	return &Login{log: log, console: console}
}

func (l *Login) Describe() string {
	return "log the user in and list the chatrooms they joined. Needs one parameter: <username>."
}

// Execute replaces the session identity and rooms only when the server
// accepted the login. Any failure leaves the session as it was.
func (l *Login) Execute(ctx context.Context, inv domain.Invocation, wire contract.IWireClient, session *domain.Session) error {
	username, err := inv.Param(0, "username")
	if err != nil {
		return fmt.Errorf("%w (usage: /login <username>)", err)
	}

	body, err := wire.Login(ctx, username)
	if err != nil {
		return fmt.Errorf("login %s: %w", username, err)
	}

	resp, err := protocol.DecodeLoginResponse(body)
	if err != nil {
		return err
	}
	l.log.Debug("Login response", "success", resp.Success, "uid", resp.Uid.Id)

	if !resp.Success {
		l.console.Error(ui.LoginFail)
		return nil
	}

	rooms := resp.Rooms()
	session.Login(
		domain.UserIdentity{ID: resp.UserID(), Name: username},
		lo.Map(rooms, func(room domain.ChatRoom, _ int) domain.ChatRoomRef { return room.Ref() }),
	)

	if len(rooms) == 0 {
		l.console.Success("You are now logged in as %s.", username)
		l.console.Println(ui.EmptyChatrooms)
		return nil
	}
	l.console.Success(ui.LoginSuccess, username)
	l.console.Rooms(rooms)
	return nil
}
