package realtime

import (
	"encoding/json"
	"sync"

	"vaquinha/internal/domain/entities"
	"vaquinha/internal/usecase/interfaces"
	"vaquinha/pkg/logger"

	"go.uber.org/zap"
)

const (
	MessageTypePool = "pool"
	sendBufferSize  = 16
)

// Message is the frame pushed to pool subscribers.
type Message struct {
	Type string      `json:"type"`
	Pool interface{} `json:"pool"`
}

// Frame is an encoded snapshot and the pool version it was taken at.
type Frame struct {
	Version int64
	Data    []byte
}

// Client is one WebSocket subscription to a single pool.
type Client struct {
	PoolID string
	Send   chan Frame
	hub    *PoolHub
	mu     sync.Mutex
	closed bool
}

// Close unregisters the client before closing Send, so no broadcast can
// write to a closed channel.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.hub.unregister(c)
	close(c.Send)
}

// PoolHub fans pool snapshots out to the subscribers of each pool.
type PoolHub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Client]struct{}
	encode func(entities.Pool) interface{}
	log    *zap.Logger
}

var _ interfaces.IPoolNotifier = (*PoolHub)(nil)

// NewPoolHub builds a hub; encode turns a pool into its wire representation.
// A nil encode sends the entity as-is.
func NewPoolHub(encode func(entities.Pool) interface{}, log *zap.Logger) *PoolHub {
	if encode == nil {
		encode = func(p entities.Pool) interface{} { return p }
	}
	return &PoolHub{
		rooms:  make(map[string]map[*Client]struct{}),
		encode: encode,
		log:    logger.OrNop(log).Named("realtime"),
	}
}

func (h *PoolHub) Register(poolID string) *Client {
	c := &Client{
		PoolID: poolID,
		Send:   make(chan Frame, sendBufferSize),
		hub:    h,
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[poolID] == nil {
		h.rooms[poolID] = make(map[*Client]struct{})
	}
	h.rooms[poolID][c] = struct{}{}
	return c
}

func (h *PoolHub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if m := h.rooms[c.PoolID]; m != nil {
		delete(m, c)
		if len(m) == 0 {
			delete(h.rooms, c.PoolID)
		}
	}
}

// Encode renders the frame sent for pool.
func (h *PoolHub) Encode(pool entities.Pool) ([]byte, error) {
	return json.Marshal(Message{Type: MessageTypePool, Pool: h.encode(pool)})
}

// PublishPool sends the snapshot to every subscriber of the pool. Slow
// subscribers with a full buffer miss the frame.
func (h *PoolHub) PublishPool(pool entities.Pool) {
	data, err := h.Encode(pool)
	if err != nil {
		h.log.Error("pool snapshot encode failed", zap.String("pool_id", pool.ID), zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	frame := Frame{Version: pool.Version, Data: data}
	dropped := 0
	for c := range h.rooms[pool.ID] {
		select {
		case c.Send <- frame:
		default:
			dropped++
		}
	}
	if dropped > 0 {
		h.log.Warn("pool snapshot dropped for slow subscribers", zap.String("pool_id", pool.ID), zap.Int("dropped", dropped))
	}
}

func (h *PoolHub) ClientCount(poolID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[poolID])
}
