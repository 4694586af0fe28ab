// Package api exposes a ledger engine over HTTP: JSON (or markdown) reports,
// transaction posting, and a websocket stream of posted transactions.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/cleared-dev/ledger/internal/ledger"
	"github.com/cleared-dev/ledger/internal/render"
)

// Server routes HTTP requests to a single ledger engine.
type Server struct {
	engine   *ledger.Engine
	renderer *render.Renderer
	logger   *zap.Logger
	hub      *Hub
	upgrader websocket.Upgrader
	router   chi.Router

	writeWait time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithWriteWait sets how long a websocket client may take to accept one
// message before it is dropped. Defaults to DefaultWriteWait.
func WithWriteWait(d time.Duration) Option {
	return func(s *Server) { s.writeWait = d }
}

// NewServer builds the router and starts the websocket hub. Call Close to
// stop the hub.
func NewServer(engine *ledger.Engine, renderer *render.Renderer, logger *zap.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		engine:   engine,
		renderer: renderer,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hub = NewHub(logger, s.writeWait)
	s.hub.Start(func() int { return len(engine.Transactions()) })

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/accounts", s.listAccounts)
		r.Get("/accounts/{name}/ledger", s.accountLedger)
		r.Get("/transactions", s.listTransactions)
		r.Post("/transactions", s.createTransaction)
		r.Get("/journal", s.listJournal)
		r.Get("/journal.csv", s.exportJournal)
		r.Get("/balance-sheet", s.balanceSheet)
		r.Get("/trial-balance", s.trialBalance)
	})
	r.Get("/ws", s.serveWS)

	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close disconnects websocket clients and stops the hub.
func (s *Server) Close() {
	s.hub.Close()
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response.
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	if !s.hub.Register(conn) {
		return
	}

	// Clients only listen; reading detects the disconnect.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.hub.Unregister(conn)
				return
			}
		}
	}()
}
