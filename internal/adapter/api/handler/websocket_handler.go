package handler

import (
	"context"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"pasaratsiri/internal/adapter/api/middleware"
	"pasaratsiri/internal/adapter/api/view"
	"pasaratsiri/internal/domain/repository"
	ws "pasaratsiri/internal/infrastructure/websocket"
	"pasaratsiri/internal/usecase"
	"pasaratsiri/pkg/errors"
	"pasaratsiri/pkg/logger"
	"pasaratsiri/pkg/response"
)

// FragmentRenderer renders the partials pushed to the browser.
type FragmentRenderer interface {
	Fragment(name string, data interface{}) (string, error)
}

type WebSocketHandler struct {
	wsManager *ws.Manager
	store     repository.DocumentStore
	presenter *view.Presenter
	renderer  FragmentRenderer
}

var webSocketHandler *WebSocketHandler

// The default CheckOrigin only accepts same-host origins.
var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func NewWebSocketHandler(wsManager *ws.Manager, store repository.DocumentStore, presenter *view.Presenter, renderer FragmentRenderer) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager: wsManager,
		store:     store,
		presenter: presenter,
		renderer:  renderer,
	}
}

func SetupWebSocketHandler(wsManager *ws.Manager, store repository.DocumentStore, presenter *view.Presenter, renderer FragmentRenderer) {
	webSocketHandler = NewWebSocketHandler(wsManager, store, presenter, renderer)
}

func GetWebSocketHandler() *WebSocketHandler {
	return webSocketHandler
}

// HandleWebSocket attaches one browser tab to a live list view. The view
// and every subscription it holds live exactly as long as the connection.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	resource, ok := usecase.LookupResource(c.Param("resource"))
	if !ok {
		return response.Error(c, errors.NotFound("Resource "+c.Param("resource"), nil))
	}

	session := middleware.SessionFrom(c)
	if !session.IsAdmin() {
		return response.Error(c, errors.Unauthorized("Authentication required", nil))
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already answered the request.
		logger.Warn("websocket upgrade for %s failed: %v", resource.Key, err)
		return nil
	}

	client := ws.NewClient(conn, session.Admin.UID, resource.Key)
	if !h.wsManager.Add(client) {
		conn.Close()
		return nil
	}

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	liveView := usecase.NewLiveView(h.store, resource, h.sink(ctx, client, resource))
	defer liveView.Close()

	go client.WritePump()
	liveView.Open(ctx)
	client.ReadPump(ctx, h.wsManager, liveView)
	return nil
}

func (h *WebSocketHandler) sink(ctx context.Context, client *ws.Client, resource *usecase.Resource) usecase.Sink {
	return func(event usecase.Event) {
		message, err := h.message(ctx, resource, event)
		if err != nil {
			logger.Err(err, "rendering %s event for client %s", event.Type, client.ID)
			return
		}
		h.wsManager.SendToClient(client, message)
	}
}

func (h *WebSocketHandler) message(ctx context.Context, resource *usecase.Resource, event usecase.Event) (ws.WSMessage, error) {
	switch event.Type {
	case usecase.EventSnapshot:
		rows := h.presenter.Rows(resource, event.Records)
		html, err := h.renderer.Fragment("rows", view.Rows{
			Key:     resource.Key,
			Columns: len(h.presenter.Columns(resource)),
			Rows:    rows,
		})
		if err != nil {
			return ws.WSMessage{}, err
		}
		return ws.NewMessage(string(event.Type), map[string]interface{}{"html": html, "count": len(rows)}), nil

	case usecase.EventDetailLoading, usecase.EventDetail:
		detail := h.presenter.Detail(ctx, resource, event.Parent, event.Items, event.Type == usecase.EventDetailLoading)
		html, err := h.renderer.Fragment("detail", detail)
		if err != nil {
			return ws.WSMessage{}, err
		}
		message := ws.NewMessage(string(event.Type), map[string]string{"html": html})
		message.ID = event.ParentID
		return message, nil

	case usecase.EventDetailClosed:
		return ws.NewMessage(string(event.Type), nil), nil
	}

	message := ws.NewMessage(string(event.Type), map[string]string{"message": event.Message})
	message.ID = event.ParentID
	return message, nil
}
