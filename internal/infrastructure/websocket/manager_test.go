package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandler struct {
	opened []string
	closed int
}

func (f *fakeHandler) OpenDetail(_ context.Context, parentID string) error {
	f.opened = append(f.opened, parentID)
	return nil
}

func (f *fakeHandler) CloseDetail() {
	f.closed++
}

func readMessage(t *testing.T, c *Client) WSMessage {
	t.Helper()
	select {
	case raw := <-c.Send:
		var msg WSMessage
		require.NoError(t, json.Unmarshal(raw, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("nothing queued")
		return WSMessage{}
	}
}

func TestHandleClientMessageDispatchesCommands(t *testing.T) {
	m := NewManager()
	c := NewClient(nil, "admin-1", "products")
	h := &fakeHandler{}
	ctx := context.Background()

	m.HandleClientMessage(ctx, c, []byte(`{"type":"open_detail","id":"p1"}`), h)
	m.HandleClientMessage(ctx, c, []byte(`{"type":"open_detail","id":"p2"}`), h)
	m.HandleClientMessage(ctx, c, []byte(`{"type":"close_detail"}`), h)

	assert.Equal(t, []string{"p1", "p2"}, h.opened)
	assert.Equal(t, 1, h.closed)
}

func TestHandleClientMessageRepliesToPingAndErrors(t *testing.T) {
	m := NewManager()
	c := NewClient(nil, "admin-1", "orders")
	h := &fakeHandler{}
	ctx := context.Background()

	m.HandleClientMessage(ctx, c, []byte(`{"type":"ping"}`), h)
	assert.Equal(t, MessageTypePong, readMessage(t, c).Type)

	m.HandleClientMessage(ctx, c, []byte(`not json`), h)
	assert.Equal(t, MessageTypeError, readMessage(t, c).Type)

	m.HandleClientMessage(ctx, c, []byte(`{"type":"open_detail"}`), h)
	assert.Equal(t, MessageTypeError, readMessage(t, c).Type)
	assert.Empty(t, h.opened)
}

func TestEnqueueAfterCloseIsDropped(t *testing.T) {
	c := NewClient(nil, "admin-1", "users")
	c.close()
	c.close()

	assert.False(t, c.Enqueue([]byte(`{}`)))
}

func TestEnqueueClosesSlowClient(t *testing.T) {
	c := NewClient(nil, "admin-1", "users")
	for i := 0; i < sendBuffer; i++ {
		require.True(t, c.Enqueue([]byte(`{}`)))
	}

	assert.False(t, c.Enqueue([]byte(`{}`)))
	assert.False(t, c.Enqueue([]byte(`{}`)))
}

func TestManagerTracksClients(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m := NewManager()
	m.Start(ctx)

	c := NewClient(nil, "admin-1", "posts")
	m.Register <- c
	assert.Eventually(t, func() bool { return m.Count() == 1 }, time.Second, 10*time.Millisecond)

	m.Unregister <- c
	assert.Eventually(t, func() bool { return m.Count() == 0 }, time.Second, 10*time.Millisecond)
	assert.False(t, c.Enqueue([]byte(`{}`)))
}

func TestAddAfterStopIsRefused(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := NewManager()
	m.Start(ctx)

	assert.True(t, m.Add(NewClient(nil, "admin-1", "users")))
	cancel()

	assert.Eventually(t, func() bool { return !m.Add(NewClient(nil, "admin-1", "users")) }, time.Second, 10*time.Millisecond)
	assert.Eventually(t, func() bool { return m.Count() == 0 }, time.Second, 10*time.Millisecond)
}
