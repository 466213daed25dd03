package commands

import (
	"context"
	"fmt"
	"kiki-chat/contract"
	"kiki-chat/domain"
	"kiki-chat/errors"
	"kiki-chat/ui"
)

// Rooms lists the rooms recorded at the last login. It reads the session
// only and never reaches the server.
type Rooms struct {
	console *ui.Console
}

func NewRooms(console *ui.Console) *Rooms {
	return &Rooms{console: console}
}

func (r *Rooms) Describe() string {
	return "show the chatrooms recorded at your last successful login."
}

func (r *Rooms) Execute(_ context.Context, _ domain.Invocation, _ contract.IWireClient, session *domain.Session) error {
	if !session.IsLoggedIn() {
		return fmt.Errorf("%w: %s", errors.ErrNotLoggedIn, ui.NotLoggedIn)
	}
	refs := session.JoinedRooms()
	if len(refs) == 0 {
		r.console.Println(ui.EmptyChatrooms)
		return nil
	}
	r.console.RoomRefs(refs)
	return nil
}
