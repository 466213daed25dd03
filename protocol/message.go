// Package protocol defines the JSON messages exchanged with the chat service.
// Field names follow the server's wire format.
package protocol

import (
	"encoding/json"
	"fmt"
	"kiki-chat/domain"
	"kiki-chat/errors"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const (
	PathLogin = "/login"
	PathSend  = "/send"
)

var validate = validator.New()

type UserID struct {
	Id int `json:"Id"`
}

type ChatRoomID struct {
	Id int `json:"Id"`
}

type ChatRoom struct {
	Cid             ChatRoomID `json:"Cid"`
	Cname           string     `json:"Cname"`
	HistoryMessages []string   `json:"HistoryMessages"`
}

type LoginRequest struct {
	UserName string `json:"UserName" validate:"required"`
}

type LoginResponse struct {
	Success        bool       `json:"Success"`
	Uid            UserID     `json:"Uid"`
	JoinedChatRoom []ChatRoom `json:"JoinedChatRoom"`
}

type SendMessageRequest struct {
	SenderId   int    `json:"SenderId"`
	ReceiverId int    `json:"ReceiverId"`
	Message    string `json:"Message" validate:"required"`
}

type SendMessageResponse struct {
	Success  bool  `json:"Success"`
	SentTime int64 `json:"SentTime"`
}

// Validate checks an outgoing request before it is put on the wire.
func Validate(request any) error {
	return validate.Struct(request)
}

func DecodeLoginResponse(body []byte) (LoginResponse, error) {
	var resp LoginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return LoginResponse{}, fmt.Errorf("%w: login: %v", errors.ErrDecode, err)
	}
	return resp, nil
}

func DecodeSendMessageResponse(body []byte) (SendMessageResponse, error) {
	var resp SendMessageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return SendMessageResponse{}, fmt.Errorf("%w: send: %v", errors.ErrDecode, err)
	}
	return resp, nil
}

// Rooms converts the joined rooms of a login response to domain rooms.
// A null list gives an empty, non-nil slice.
func (r LoginResponse) Rooms() []domain.ChatRoom {
	return lo.Map(r.JoinedChatRoom, func(room ChatRoom, _ int) domain.ChatRoom {
		return domain.ChatRoom{
			ID:              domain.RoomID(room.Cid.Id),
			Name:            room.Cname,
			HistoryMessages: room.HistoryMessages,
		}
	})
}

func (r LoginResponse) UserID() domain.UserID {
	return domain.UserID(r.Uid.Id)
}
