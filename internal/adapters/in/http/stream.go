package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// inboundEnvelope is one client→server message posted to a session.
type inboundEnvelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// StreamEvents handles GET /api/v1/rt/stream - attaches the client to the
// realtime hub over server-sent events. Shipper clients identify themselves
// via shipperId/shipperName/shipperPhone query parameters; the identity is
// what accept_order acts on. The first frame carries the session id the
// client posts inbound events to.
func (s *Server) StreamEvents(ctx echo.Context) error {
	shipper, err := shipperFromQuery(ctx)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	response := ctx.Response()
	response.Header().Set(echo.HeaderContentType, "text/event-stream")
	response.Header().Set(echo.HeaderCacheControl, "no-cache")
	response.Header().Set(echo.HeaderConnection, "keep-alive")
	response.WriteHeader(http.StatusOK)

	session := s.hub.Register(shipper)
	defer s.hub.Unregister(session.ID())

	if err = writeSSE(response, "session", map[string]string{"sessionId": session.ID()}); err != nil {
		return nil
	}
	response.Flush()

	done := ctx.Request().Context().Done()
	for {
		select {
		case <-done:
			return nil
		case envelope, ok := <-session.Events():
			if !ok {
				return nil
			}
			if err = writeSSE(response, envelope.Event, envelope.Payload); err != nil {
				return nil
			}
			response.Flush()
		}
	}
}

// PublishEvent handles POST /api/v1/rt/sessions/:id/events - routes one
// inbound wire event to the hub.
func (s *Server) PublishEvent(ctx echo.Context) error {
	var envelope inboundEnvelope
	if err := ctx.Bind(&envelope); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	err := s.hub.HandleInbound(ctx.Request().Context(), ctx.Param("id"), envelope.Event, envelope.Payload)
	if err != nil {
		return writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusAccepted)
}

func writeSSE(response *echo.Response, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(response, "event: %s\ndata: %s\n\n", event, data)
	return err
}

func shipperFromQuery(ctx echo.Context) (*order.ShipperSnapshot, error) {
	rawID := ctx.QueryParam("shipperId")
	if rawID == "" {
		return nil, nil
	}

	shipperID, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return nil, err
	}

	snapshot, err := order.NewShipperSnapshot(
		shipperID,
		ctx.QueryParam("shipperName"),
		ctx.QueryParam("shipperPhone"),
	)
	if err != nil {
		return nil, err
	}

	return &snapshot, nil
}
