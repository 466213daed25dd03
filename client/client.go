// Package client is the HTTP transport to the chat service.
// Requests are JSON bodies POSTed to a fixed host; responses are handed back
// as raw bytes for the commands to decode.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"kiki-chat/domain"
	"kiki-chat/errors"
	"kiki-chat/protocol"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type HTTPClient struct {
	host       string
	httpClient *http.Client
	log        *slog.Logger
}

func NewHTTPClient(log *slog.Logger, host string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		host:       strings.TrimRight(host, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Post encodes payload as JSON and sends it to host+path.
// Any failure between encoding the request and reading the full response
// body is reported as ErrTransport, so callers never decode a partial body.
func (c *HTTPClient) Post(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: encode %s request: %v", errors.ErrTransport, path, err)
	}

	requestID := uuid.NewString()
	url := c.host + path

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build %s request: %v", errors.ErrTransport, path, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(requestIDHeader, requestID)

	start := time.Now()
	c.log.Debug("POST", "url", url, "request_id", requestID, "body", string(body))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("Request failed", "url", url, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: %v", errors.ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("Reading response failed", "url", url, "request_id", requestID, "error", err)
		return nil, fmt.Errorf("%w: read response: %v", errors.ErrTransport, err)
	}

	c.log.Debug("Response received",
		"url", url,
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"body", string(respBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error("Unexpected status", "url", url, "request_id", requestID, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: %s returned %s", errors.ErrTransport, path, resp.Status)
	}
	return respBody, nil
}

func (c *HTTPClient) Login(ctx context.Context, username string) ([]byte, error) {
	request := protocol.LoginRequest{UserName: username}
	if err := protocol.Validate(request); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidParameter, err)
	}
	return c.Post(ctx, protocol.PathLogin, request)
}

func (c *HTTPClient) SendMessage(ctx context.Context, senderID domain.UserID, receiverID domain.RoomID, message string) ([]byte, error) {
	request := protocol.SendMessageRequest{
		SenderId:   int(senderID),
		ReceiverId: int(receiverID),
		Message:    message,
	}
	if err := protocol.Validate(request); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrInvalidParameter, err)
	}
	return c.Post(ctx, protocol.PathSend, request)
}
