package realtime

import (
	"net/http"
	"time"

	"vaquinha/internal/domain/entities"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const pingInterval = 30 * time.Second

var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Serve subscribes conn to poolID, sends the snapshot returned by load and
// blocks until the peer goes away. The subscription starts before load, so a
// write that lands in between is still delivered; frames older than the last
// one sent are skipped.
func (h *PoolHub) Serve(conn *websocket.Conn, poolID string, load func() (entities.Pool, error)) {
	client := h.Register(poolID)
	defer client.Close()

	initial, err := load()
	if err != nil {
		h.log.Error("pool snapshot load failed", zap.String("pool_id", poolID), zap.Error(err))
		return
	}
	data, err := h.Encode(initial)
	if err != nil {
		h.log.Error("pool snapshot encode failed", zap.String("pool_id", poolID), zap.Error(err))
		return
	}
	select {
	case client.Send <- Frame{Version: initial.Version, Data: data}:
	default:
		h.log.Warn("pool snapshot dropped for slow subscriber", zap.String("pool_id", poolID))
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer conn.Close()
		writePump(client, conn)
	}()
	readPump(conn)
	client.Close()
	<-done
}

// writePump copies frames from client.Send to the connection in version order.
func writePump(c *Client, conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	var last int64
	for {
		select {
		case frame, ok := <-c.Send:
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if frame.Version < last {
				continue
			}
			last = frame.Version
			if err := conn.WriteMessage(websocket.TextMessage, frame.Data); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func readPump(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
