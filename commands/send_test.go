package commands

import (
	"context"
	"fmt"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"kiki-chat/domain"
	"kiki-chat/errors"
	"kiki-chat/mocks"
	"kiki-chat/moderation"
	"kiki-chat/ui"
	"testing"
)

func loggedInSession() *domain.Session {
	session := domain.NewSession()
	session.Login(domain.UserIdentity{ID: 7, Name: "alice"}, []domain.ChatRoomRef{{ID: 3}})
	return session
}

func TestSend_Success(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	console, out := newTestConsole(t)
	wire := mocks.NewMockIWireClient(ctrl)

	// Then the logged-in user id is the sender and the room id the receiver
	wire.EXPECT().
		SendMessage(gomock.Any(), domain.UserID(7), domain.RoomID(3), "hello there").
		Return([]byte(`{"Success":true,"SentTime":1700000000}`), nil).
		Times(1)

	err := NewSend(newTestLogger(), console, nil).
		Execute(context.Background(), domain.NewInvocation("send", []string{"3", "hello", "there"}), wire, loggedInSession())

	req.NoError(err)
	req.Contains(out.String(), "Message sent to room 3")
}

func TestSend_Rejected_Echoes_Parameters(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	console, out := newTestConsole(t)
	wire := mocks.NewMockIWireClient(ctrl)

	wire.EXPECT().
		SendMessage(gomock.Any(), domain.UserID(7), domain.RoomID(4), "hello").
		Return([]byte(`{"Success":false,"SentTime":0}`), nil)

	err := NewSend(newTestLogger(), console, nil).
		Execute(context.Background(), domain.NewInvocation("send", []string{"4", "hello"}), wire, loggedInSession())

	req.NoError(err)
	req.Contains(out.String(), `"hello"`)
	req.Contains(out.String(), "room 4")
}

func TestSend_Warns_About_Unjoined_Room(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	console, out := newTestConsole(t)
	wire := mocks.NewMockIWireClient(ctrl)

	// Given a session that only joined room 3
	session := loggedInSession()

	// Then the message still goes out to room 9
	wire.EXPECT().
		SendMessage(gomock.Any(), domain.UserID(7), domain.RoomID(9), "hi").
		Return([]byte(`{"Success":true,"SentTime":1700000000}`), nil).
		Times(1)

	err := NewSend(newTestLogger(), console, nil).
		Execute(context.Background(), domain.NewInvocation("send", []string{"9", "hi"}), wire, session)

	// And the user is told the room is not one of theirs
	req.NoError(err)
	req.Contains(out.String(), fmt.Sprintf(ui.NotJoined, 9))
	req.Contains(out.String(), "Message sent to room 9")
}

func TestSend_Joined_Room_Has_No_Warning(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	console, out := newTestConsole(t)
	wire := mocks.NewMockIWireClient(ctrl)

	wire.EXPECT().
		SendMessage(gomock.Any(), domain.UserID(7), domain.RoomID(3), "hi").
		Return([]byte(`{"Success":true,"SentTime":1700000000}`), nil)

	err := NewSend(newTestLogger(), console, nil).
		Execute(context.Background(), domain.NewInvocation("send", []string{"3", "hi"}), wire, loggedInSession())

	req.NoError(err)
	req.NotContains(out.String(), "not in your joined chatrooms")
}

func TestSend_Missing_Parameters(t *testing.T) {
	tests := []struct {
		name  string
		words []string
	}{
		{name: "No parameter", words: nil},
		{name: "Room id only", words: []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			console, _ := newTestConsole(t)

			// The wire client is never called
			wire := mocks.NewMockIWireClient(ctrl)

			err := NewSend(newTestLogger(), console, nil).
				Execute(context.Background(), domain.NewInvocation("send", tt.words), wire, loggedInSession())

			req.ErrorIs(err, errors.ErrMissingParameter)
			req.Contains(err.Error(), "/send <roomId> <message>")
		})
	}
}

func TestSend_Invalid_Room_ID(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	console, _ := newTestConsole(t)
	wire := mocks.NewMockIWireClient(ctrl)

	err := NewSend(newTestLogger(), console, nil).
		Execute(context.Background(), domain.NewInvocation("send", []string{"general", "hello"}), wire, loggedInSession())

	req.ErrorIs(err, errors.ErrInvalidParameter)
}

func TestSend_Requires_Login(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	console, _ := newTestConsole(t)
	wire := mocks.NewMockIWireClient(ctrl)

	err := NewSend(newTestLogger(), console, nil).
		Execute(context.Background(), domain.NewInvocation("send", []string{"3", "hello"}), wire, domain.NewSession())

	req.ErrorIs(err, errors.ErrNotLoggedIn)
}

func TestSend_Transport_And_Decode_Failures(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	console, _ := newTestConsole(t)
	wire := mocks.NewMockIWireClient(ctrl)
	send := NewSend(newTestLogger(), console, nil)
	inv := domain.NewInvocation("send", []string{"3", "hello"})

	gomock.InOrder(
		wire.EXPECT().
			SendMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: timeout", errors.ErrTransport)),
		wire.EXPECT().
			SendMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]byte("not json"), nil),
	)

	req.ErrorIs(send.Execute(context.Background(), inv, wire, loggedInSession()), errors.ErrTransport)
	req.ErrorIs(send.Execute(context.Background(), inv, wire, loggedInSession()), errors.ErrDecode)
}

func TestSend_Censors_Outgoing_Message(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	console, _ := newTestConsole(t)
	wire := mocks.NewMockIWireClient(ctrl)
	censor, err := moderation.NewCensor([]string{"badger"}, '*')
	req.NoError(err)

	wire.EXPECT().
		SendMessage(gomock.Any(), domain.UserID(7), domain.RoomID(3), "the ****** is here").
		Return([]byte(`{"Success":true,"SentTime":1700000000}`), nil)

	err = NewSend(newTestLogger(), console, censor).
		Execute(context.Background(), domain.NewInvocation("send", []string{"3", "the", "badger", "is", "here"}), wire, loggedInSession())

	req.NoError(err)
}
