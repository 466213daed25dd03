package domain

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestSession_Empty_Before_Login(t *testing.T) {
	req := require.New(t)
	session := NewSession()

	// Given nobody logged in
	user, ok := session.User()

	// Then the identity is absent
	req.False(ok)
	req.Equal(UserIdentity{}, user)
	req.False(session.IsLoggedIn())

	// And no joined rooms are known yet
	req.Nil(session.JoinedRooms())
	req.False(session.HasJoined(RoomID(1)))
}

func TestSession_Login_Without_Rooms(t *testing.T) {
	req := require.New(t)
	session := NewSession()

	// When a user logs in without any room
	session.Login(UserIdentity{ID: 7, Name: "alice"}, nil)

	// Then the identity is stored
	user, ok := session.User()
	req.True(ok)
	req.Equal(UserIdentity{ID: 7, Name: "alice"}, user)

	// And the joined rooms are empty but known
	req.NotNil(session.JoinedRooms())
	req.Empty(session.JoinedRooms())
}

func TestSession_Login_Sorts_And_Deduplicates_Rooms(t *testing.T) {
	req := require.New(t)
	session := NewSession()

	// When a user logs in with rooms in any order
	session.Login(UserIdentity{ID: 1, Name: "bob"}, []ChatRoomRef{{ID: 5}, {ID: 2}, {ID: 5}, {ID: 3}})

	// Then the rooms are listed once each, by id
	req.Equal([]ChatRoomRef{{ID: 2}, {ID: 3}, {ID: 5}}, session.JoinedRooms())
	req.True(session.HasJoined(RoomID(3)))
	req.False(session.HasJoined(RoomID(4)))
}

func TestSession_Login_Overwrites_Previous_Identity(t *testing.T) {
	req := require.New(t)
	session := NewSession()
	session.Login(UserIdentity{ID: 1, Name: "bob"}, []ChatRoomRef{{ID: 9}})

	// When another login succeeds
	session.Login(UserIdentity{ID: 2, Name: "clara"}, []ChatRoomRef{{ID: 4}})

	// Then nothing of the previous login is left
	user, _ := session.User()
	req.Equal(UserIdentity{ID: 2, Name: "clara"}, user)
	req.Equal([]ChatRoomRef{{ID: 4}}, session.JoinedRooms())
	req.False(session.HasJoined(RoomID(9)))
}
