package domain

type RoomID int

// ChatRoomRef points at a room owned by the server. Only the id is kept
// client-side.
type ChatRoomRef struct {
	ID RoomID
}

// ChatRoom is the room as described by a login response. It is only used for
// display and is never stored in the session.
type ChatRoom struct {
	ID              RoomID
	Name            string
	HistoryMessages []string
}

func (r ChatRoom) Ref() ChatRoomRef {
	return ChatRoomRef{ID: r.ID}
}
