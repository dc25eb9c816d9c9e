package websocket

import (
	"context"
	"encoding/json"
	"time"

	"pasaratsiri/pkg/logger"
)

// Inbound message types.
const (
	MessageTypePing        = "ping"
	MessageTypeOpenDetail  = "open_detail"
	MessageTypeCloseDetail = "close_detail"
)

// Outbound message types.
const (
	MessageTypePong  = "pong"
	MessageTypeError = "error"
)

// WSMessage is the envelope of every frame in both directions.
type WSMessage struct {
	Type      string      `json:"type"`
	ID        string      `json:"id,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// CommandHandler acts on the commands a browser sends for its list view.
type CommandHandler interface {
	OpenDetail(ctx context.Context, parentID string) error
	CloseDetail()
}

func NewMessage(messageType string, data interface{}) WSMessage {
	return WSMessage{
		Type:      messageType,
		Data:      data,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// HandleClientMessage decodes one inbound frame and dispatches it.
func (m *Manager) HandleClientMessage(ctx context.Context, client *Client, messageBytes []byte, handler CommandHandler) {
	var wsMessage WSMessage
	if err := json.Unmarshal(messageBytes, &wsMessage); err != nil {
		logger.Warn("websocket client %s sent malformed frame: %v", client.ID, err)
		m.sendErrorToClient(client, "Invalid message format")
		return
	}

	switch wsMessage.Type {
	case MessageTypePing:
		m.SendToClient(client, NewMessage(MessageTypePong, map[string]string{"status": "alive"}))

	case MessageTypeOpenDetail:
		if wsMessage.ID == "" {
			m.sendErrorToClient(client, "Missing id")
			return
		}
		if err := handler.OpenDetail(ctx, wsMessage.ID); err != nil {
			logger.Debug("websocket client %s open_detail %s: %v", client.ID, wsMessage.ID, err)
		}

	case MessageTypeCloseDetail:
		handler.CloseDetail()

	default:
		logger.Warn("websocket client %s sent unknown type %q", client.ID, wsMessage.Type)
		m.sendErrorToClient(client, "Unknown message type")
	}
}

// SendToClient marshals message onto the client's send buffer.
func (m *Manager) SendToClient(client *Client, message WSMessage) {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		logger.Err(err, "marshalling websocket message for %s", client.ID)
		return
	}
	client.Enqueue(messageBytes)
}

func (m *Manager) sendErrorToClient(client *Client, errorMsg string) {
	m.SendToClient(client, NewMessage(MessageTypeError, map[string]string{"message": errorMsg}))
}
