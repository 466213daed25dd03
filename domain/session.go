package domain

import (
	"slices"

	"github.com/samber/lo"
)

// Session is the client-local state of one process run: who is logged in and
// which rooms they joined. It is owned by the input loop goroutine and only
// the login command mutates it.
type Session struct {
	user        *UserIdentity
	joinedRooms map[RoomID]struct{} // nil until the first successful login
}

func NewSession() *Session {
	return &Session{}
}

// Login overwrites the identity and the joined rooms.
// An empty rooms list still leaves joinedRooms non-nil.
func (s *Session) Login(user UserIdentity, rooms []ChatRoomRef) {
	s.user = &user
	s.joinedRooms = make(map[RoomID]struct{}, len(rooms))
	for _, room := range rooms {
		s.joinedRooms[room.ID] = struct{}{}
	}
}

// User returns the current identity and false when nobody logged in yet.
func (s *Session) User() (UserIdentity, bool) {
	if s.user == nil {
		return UserIdentity{}, false
	}
	return *s.user, true
}

func (s *Session) IsLoggedIn() bool {
	return s.user != nil
}

// JoinedRooms returns the joined rooms sorted by id, or nil before any login.
func (s *Session) JoinedRooms() []ChatRoomRef {
	if s.joinedRooms == nil {
		return nil
	}
	ids := lo.Keys(s.joinedRooms)
	slices.Sort(ids)
	return lo.Map(ids, func(id RoomID, _ int) ChatRoomRef {
		return ChatRoomRef{ID: id}
	})
}

func (s *Session) HasJoined(roomID RoomID) bool {
	_, ok := s.joinedRooms[roomID]
	return ok
}
