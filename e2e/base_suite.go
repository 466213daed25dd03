package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"kiki-chat/internal"
	"kiki-chat/protocol"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

// RejectedUser is refused by the fake service.
const RejectedUser = "mallory"

// Exchange is one request seen by the fake service.
type Exchange struct {
	Path     string
	Request  string
	Response string
}

type BaseClientSuite struct {
	suite.Suite
	Config Config

	server    *httptest.Server
	mu        sync.Mutex
	exchanges []Exchange
}

// SetupSuite loads the environment configuration and starts the fake service
// when no real one is targeted.
func (s *BaseClientSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)

	if s.Config.ServerHost == "" {
		s.server = httptest.NewServer(http.HandlerFunc(s.serve))
		s.Config.ServerHost = s.server.URL
	}
}

func (s *BaseClientSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *BaseClientSuite) SetupTest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exchanges = nil
}

// Session types input into a fresh client and returns what it printed.
func (s *BaseClientSuite) Session(name string, input ...string) string {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)

	config := internal.Config{
		ServerHost:      s.Config.ServerHost,
		HTTPTimeout:     5 * time.Second,
		LogLevel:        "DEBUG",
		CensorCharacter: "*",
	}
	var out bytes.Buffer
	loop, err := internal.NewApp(logs.GetLoggerFromLevel(slog.LevelDebug), config,
		strings.NewReader(strings.Join(input, "\n")+"\n"), &out)
	s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	s.Require().NoError(loop.Run(ctx))

	s.T().Log(out.String())
	if s.Config.DebugJSON {
		for _, e := range s.Exchanges() {
			s.T().Logf("POST %s\nREQUEST: %s\nRESPONSE: %s", e.Path, e.Request, e.Response)
		}
	}
	return out.String()
}

// Exchanges returns what the fake service received so far in this test.
func (s *BaseClientSuite) Exchanges() []Exchange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Exchange(nil), s.exchanges...)
}

func (s *BaseClientSuite) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	var response any
	switch r.URL.Path {
	case protocol.PathLogin:
		var login protocol.LoginRequest
		if err := json.Unmarshal(body, &login); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		response = fakeLogin(login)
	case protocol.PathSend:
		var send protocol.SendMessageRequest
		if err := json.Unmarshal(body, &send); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		response = protocol.SendMessageResponse{Success: send.ReceiverId != 0, SentTime: time.Now().Unix()}
	default:
		http.NotFound(w, r)
		return
	}

	encoded, _ := json.Marshal(response)
	s.mu.Lock()
	s.exchanges = append(s.exchanges, Exchange{Path: r.URL.Path, Request: string(body), Response: string(encoded)})
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(encoded)
}

func fakeLogin(req protocol.LoginRequest) protocol.LoginResponse {
	switch req.UserName {
	case RejectedUser:
		return protocol.LoginResponse{Success: false}
	case "alice":
		return protocol.LoginResponse{
			Success: true,
			Uid:     protocol.UserID{Id: 7},
			JoinedChatRoom: []protocol.ChatRoom{
				{Cid: protocol.ChatRoomID{Id: 3}, Cname: "general", HistoryMessages: []string{"welcome"}},
			},
		}
	default:
		return protocol.LoginResponse{Success: true, Uid: protocol.UserID{Id: len(req.UserName)}}
	}
}
