package commands

import (
	"context"
	"fmt"
	"kiki-chat/contract"
	"kiki-chat/domain"
	"kiki-chat/errors"
	"kiki-chat/moderation"
	"kiki-chat/protocol"
	"kiki-chat/ui"
	"log/slog"
	"strconv"
	"time"
)

// Send posts a message to a room on behalf of the logged-in user.
type Send struct {
	log     *slog.Logger
	console *ui.Console
	censor  *moderation.Censor
}

// NewSend accepts a nil censor.
func NewSend(log *slog.Logger, console *ui.Console, censor *moderation.Censor) *Send {
	return &Send{log: log, console: console, censor: censor}
}

func (s *Send) Describe() string {
	return "post a message to one of your chatrooms. Needs two parameters: <roomId> <message>."
}

func (s *Send) Execute(ctx context.Context, inv domain.Invocation, wire contract.IWireClient, session *domain.Session) error {
	rawRoom, err := inv.Param(0, "room id")
	if err != nil {
		return fmt.Errorf("%w (usage: /send <roomId> <message>)", err)
	}
	if _, err = inv.Param(1, "message"); err != nil {
		return fmt.Errorf("%w (usage: /send <roomId> <message>)", err)
	}
	roomID, err := strconv.Atoi(rawRoom)
	if err != nil {
		return fmt.Errorf("%w: room id %q is not a number", errors.ErrInvalidParameter, rawRoom)
	}

	user, ok := session.User()
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrNotLoggedIn, ui.NotLoggedIn)
	}

	if !session.HasJoined(domain.RoomID(roomID)) {
		s.console.Warn(ui.NotJoined, roomID)
	}

	message := inv.Rest(1)
	if censored, words := s.censor.Apply(message); len(words) > 0 {
		s.log.Debug("Outgoing message censored", "room", roomID, "words", len(words))
		message = censored
	}

	body, err := wire.SendMessage(ctx, user.ID, domain.RoomID(roomID), message)
	if err != nil {
		return fmt.Errorf("send to room %d: %w", roomID, err)
	}

	resp, err := protocol.DecodeSendMessageResponse(body)
	if err != nil {
		return err
	}

	if !resp.Success {
		s.console.Error(ui.SendFail, message, rawRoom)
		return nil
	}
	sentAt := time.Unix(resp.SentTime, 0).Format(time.DateTime)
	s.console.Success(ui.SendSuccess, roomID, sentAt)
	return nil
}
