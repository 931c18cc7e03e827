package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/lazharichir/handscore/config"
	"github.com/lazharichir/handscore/events"
	"github.com/lazharichir/handscore/hands"
	"github.com/lazharichir/handscore/logging"
	"github.com/lazharichir/handscore/server/connection"
	serverevents "github.com/lazharichir/handscore/server/events"
	"github.com/lazharichir/handscore/server/handlers"
	"github.com/rs/zerolog/log"
)

const (
	defaultPingInterval = 10 * time.Second
	defaultSendBuffer   = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: restrict origins once a browser client is deployed
	},
}

// Server serves hand classification over HTTP and websockets
type Server struct {
	cfg        config.ServerConfig
	connMgr    *connection.Manager
	store      *events.InMemoryEventStore
	cmdRouter  *handlers.CommandRouter
	dispatcher *serverevents.Dispatcher
}

// ClassifyRequest is the body of POST /api/classify
type ClassifyRequest struct {
	Cards []string `json:"cards"`
}

// ErrorResponse is returned with every non-2xx API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// corsMiddleware adds CORS headers to all responses
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// NewServer creates a new classification server
func NewServer(cfg config.ServerConfig) *Server {
	connMgr := connection.NewManager()
	store := events.NewInMemoryEventStore()
	dispatcher := serverevents.NewDispatcher(connMgr, store)
	cmdRouter := handlers.NewCommandRouter(dispatcher, rand.New(rand.NewSource(time.Now().UnixNano())))

	return &Server{
		cfg:        cfg,
		connMgr:    connMgr,
		store:      store,
		cmdRouter:  cmdRouter,
		dispatcher: dispatcher,
	}
}

// Router builds the HTTP routes of the server
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(requestLogger())

	r.Get("/ws", s.handleWebSocket)
	r.Route("/api", func(r chi.Router) {
		r.Use(corsMiddleware)
		r.Get("/categories", s.handleGetCategories)
		r.Post("/classify", s.handleClassify)
		r.Get("/clients/{clientID}/events", s.handleGetClientEvents)
	})
	return r
}

// Start serves HTTP until ctx is done, then shuts down and disconnects every client
func (s *Server) Start(ctx context.Context) error {
	defer s.connMgr.CloseAll()

	httpServer := &http.Server{
		Addr:              s.cfg.HTTPAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.cfg.HTTPAddr).Msg("starting server")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

func requestLogger() func(http.Handler) http.Handler {
	return httplog.RequestLogger(
		slog.New(slog.NewJSONHandler(logging.Writer(), &slog.HandlerOptions{})),
		&httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.Schema{ResponseStatus: "status", ResponseDuration: "duration_ms"},
			LogExtraAttrs: func(req *http.Request, _ string, _ int) []slog.Attr {
				return []slog.Attr{
					slog.String("request_id", chimw.GetReqID(req.Context())),
				}
			},
		},
	)
}

// handleWebSocket handles incoming WebSocket connections
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("error upgrading to websocket")
		return
	}

	sendBuffer := s.cfg.SendBuffer
	if sendBuffer <= 0 {
		sendBuffer = defaultSendBuffer
	}

	client := &connection.Client{
		ID:   uuid.NewString(),
		Conn: conn,
		Send: make(chan []byte, sendBuffer),
	}
	log.Info().Str("remote_addr", r.RemoteAddr).Str("client_id", client.ID).Msg("client connected")

	s.connMgr.Register(client)
	s.dispatcher.SendToClient(client.ID, events.ClientConnected{ClientID: client.ID})

	go s.readPump(client)
	go s.writePump(client)
}

// readPump reads commands from the websocket connection
func (s *Server) readPump(client *connection.Client) {
	defer func() {
		s.connMgr.Unregister(client)
		s.store.Forget(client.ID)
		client.Conn.Close()
	}()

	for {
		_, message, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Str("client_id", client.ID).Msg("unexpected close")
			}
			return
		}

		if err := s.cmdRouter.HandleCommand(client.ID, message); err != nil {
			log.Info().Err(err).Str("client_id", client.ID).Msg("command rejected")
		}
	}
}

// writePump sends queued messages and periodic pings to the websocket connection
func (s *Server) writePump(client *connection.Client) {
	interval := s.cfg.PingInterval
	if interval <= 0 {
		interval = defaultPingInterval
	}
	ticker := time.NewTicker(interval)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Warn().Err(err).Str("client_id", client.ID).Msg("error writing message")
				return
			}
		case <-ticker.C:
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Debug().Err(err).Str("client_id", client.ID).Msg("error sending ping")
				return
			}
		}
	}
}

// handleGetCategories returns the category table, strongest first
func (s *Server) handleGetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, events.CategoryTable("").Categories)
}

// handleClassify classifies the five cards in the request body
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	h, err := hands.ParseHand(req.Cards...)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, events.Classified(chimw.GetReqID(r.Context()), h))
}

// handleGetClientEvents returns the events sent to a connected websocket client
func (s *Server) handleGetClientEvents(w http.ResponseWriter, r *http.Request) {
	clientID := chi.URLParam(r, "clientID")
	if !s.connMgr.IsConnected(clientID) {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "unknown client"})
		return
	}

	stored, err := s.store.LoadEvents(clientID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	envelopes := make([]json.RawMessage, 0, len(stored))
	for _, e := range stored {
		data, err := serverevents.Encode(e)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		envelopes = append(envelopes, data)
	}
	writeJSON(w, http.StatusOK, envelopes)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("error encoding response")
	}
}
