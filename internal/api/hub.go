package api

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledger/internal/model"
)

// DefaultWriteWait bounds each websocket write. A client that cannot take a
// message within it is dropped.
const DefaultWriteWait = 10 * time.Second

// Hub fans posted transactions out to connected websocket clients. A single
// goroutine owns every connection, so writes never overlap.
type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	closeOnce  sync.Once
	writeWait  time.Duration
	logger     *zap.Logger
}

// NewHub creates a hub. Call Start before registering clients.
func NewHub(logger *zap.Logger, writeWait time.Duration) *Hub {
	if writeWait <= 0 {
		writeWait = DefaultWriteWait
	}
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		writeWait:  writeWait,
		logger:     logger,
	}
}

// hello is sent to each client once it is registered; anything broadcast
// after a client has read it will reach that client.
type hello struct {
	Type         string `json:"type"`
	Transactions int    `json:"transactions"`
}

// Start runs the hub loop until Close. count reports the number of recorded
// transactions for the hello message.
func (h *Hub) Start(count func() int) {
	go func() {
		for {
			select {
			case conn := <-h.register:
				msg, _ := json.Marshal(hello{Type: "hello", Transactions: count()})
				if err := h.write(conn, msg); err != nil {
					conn.Close()
					continue
				}
				h.clients[conn] = true
				h.logger.Info("websocket client connected", zap.Int("clients", len(h.clients)))
			case conn := <-h.unregister:
				if _, ok := h.clients[conn]; ok {
					delete(h.clients, conn)
					conn.Close()
					h.logger.Info("websocket client disconnected", zap.Int("clients", len(h.clients)))
				}
			case msg := <-h.broadcast:
				for conn := range h.clients {
					if err := h.write(conn, msg); err != nil {
						h.logger.Warn("dropping websocket client", zap.Error(err))
						conn.Close()
						delete(h.clients, conn)
					}
				}
			case <-h.done:
				for conn := range h.clients {
					conn.Close()
					delete(h.clients, conn)
				}
				return
			}
		}
	}()
}

func (h *Hub) write(conn *websocket.Conn, msg []byte) error {
	if err := conn.SetWriteDeadline(time.Now().Add(h.writeWait)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, msg)
}

// Close stops the hub and disconnects every client.
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

type transactionEvent struct {
	Type        string          `json:"type"`
	Transaction transactionJSON `json:"transaction"`
}

// BroadcastTransaction sends a posted transaction to every client. It gives
// up when ctx ends or the hub is closed; the transaction stays recorded.
func (h *Hub) BroadcastTransaction(ctx context.Context, tx model.Transaction) {
	msg, err := json.Marshal(transactionEvent{Type: "transaction", Transaction: toTransactionJSON(tx)})
	if err != nil {
		h.logger.Error("marshaling transaction event", zap.Error(err))
		return
	}
	select {
	case h.broadcast <- msg:
	case <-ctx.Done():
		h.logger.Warn("transaction not broadcast", zap.String("ref", tx.Ref), zap.Error(ctx.Err()))
	case <-h.done:
	}
}

// Register hands a connection to the hub.
func (h *Hub) Register(conn *websocket.Conn) bool {
	select {
	case h.register <- conn:
		return true
	case <-h.done:
		conn.Close()
		return false
	}
}

// Unregister removes and closes a connection.
func (h *Hub) Unregister(conn *websocket.Conn) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}
