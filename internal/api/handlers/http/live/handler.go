// Package live upgrades map clients to a websocket and keeps each one
// a reconciling view of the visible reports and alerts: a snapshot on
// connect, then one delta per change event.
package live

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
	"github.com/ryanfaricy/wherearethey-sub001/internal/events"
	liveproj "github.com/ryanfaricy/wherearethey-sub001/internal/live"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type snapshotMessage struct {
	Type    string          `json:"type"`
	Reports []domain.Report `json:"reports"`
	Alerts  []domain.Alert  `json:"alerts"`
}

type changeMessage struct {
	Type   string             `json:"type"`
	Event  domain.ChangeEvent `json:"event"`
	Nearby bool               `json:"nearby,omitempty"`
}

// positionMessage is what clients send upstream: their current map
// position and how far away a new report still counts as "nearby".
type positionMessage struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	RadiusKM float64 `json:"radius_km"`
}

type Handler struct {
	logger   *slog.Logger
	loader   liveproj.Loader
	bus      *events.Bus
	adminKey string
}

func NewHandler(logger *slog.Logger, loader liveproj.Loader, bus *events.Bus, adminKey string) *Handler {
	return &Handler{
		logger:   logger,
		loader:   loader,
		bus:      bus,
		adminKey: adminKey,
	}
}

// Serve upgrades the connection and runs it until the client goes away.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	identifier := r.URL.Query().Get("identifier")
	isAdmin := h.adminKey != "" &&
		subtle.ConstantTimeCompare([]byte(r.Header.Get("X-API-Key")), []byte(h.adminKey)) == 1

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	c := &client{
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
		logger:    h.logger.With(slog.String("remote", r.RemoteAddr)),
		projector: liveproj.NewProjector(identifier, isAdmin, h.logger),
	}

	if err := c.projector.Initialize(r.Context(), h.loader, h.bus, c.onChange); err != nil {
		c.logger.Error("live view load failed", slog.Any("error", err))
		_ = conn.Close()
		return
	}

	c.enqueueSnapshot()

	go c.writePump()
	c.readPump()
}

type client struct {
	conn      *websocket.Conn
	send      chan []byte
	logger    *slog.Logger
	projector *liveproj.Projector

	// mu guards position and the closed flag. An event can still be in
	// flight when the reader tears the connection down, so enqueue and
	// close must not race on the send channel.
	mu       sync.Mutex
	closed   bool
	position *positionMessage
}

func (c *client) enqueueSnapshot() {
	msg := snapshotMessage{
		Type:    "snapshot",
		Reports: c.projector.Reports.Items(),
		Alerts:  c.projector.Alerts.Items(),
	}
	c.enqueue(msg)
}

// onChange runs on the bus goroutine after the projector has applied the
// event. The delta is queued, never written inline, so one slow client
// cannot stall publishing.
func (c *client) onChange(ev domain.ChangeEvent) {
	msg := changeMessage{Type: "change", Event: ev}

	if ev.Entity == domain.EntityReport && ev.Change == domain.ChangeAdded && ev.Report != nil {
		c.mu.Lock()
		pos := c.position
		c.mu.Unlock()
		if pos != nil && pos.RadiusKM > 0 {
			for _, near := range c.projector.FindNearbyReports(pos.Lat, pos.Lng, pos.RadiusKM) {
				if near.ID == ev.Report.ID {
					msg.Nearby = true
					break
				}
			}
		}
	}

	c.enqueue(msg)
}

func (c *client) enqueue(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		c.logger.Error("marshal live message failed", slog.Any("error", err))
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- data:
	default:
		// Buffer full. Drop the delta; the client will resync on
		// reconnect.
		c.logger.Warn("live send buffer full, dropping message")
	}
}

func (c *client) readPump() {
	defer func() {
		c.projector.Close()
		c.mu.Lock()
		c.closed = true
		close(c.send)
		c.mu.Unlock()
		_ = c.conn.Close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("websocket read error", slog.Any("error", err))
			}
			return
		}

		var pos positionMessage
		if err := json.Unmarshal(data, &pos); err != nil {
			c.logger.Debug("ignoring malformed client message", slog.Any("error", err))
			continue
		}

		c.mu.Lock()
		c.position = &pos
		c.mu.Unlock()
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
