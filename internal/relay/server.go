package relay

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/rosterkeeper/internal/common"
	"github.com/dmitrijs2005/rosterkeeper/internal/logging"
	"github.com/dmitrijs2005/rosterkeeper/internal/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	SendEmailPath = "/send-employee-email"
	HealthPath    = "/health"

	allowHeaders    = "authorization, x-client-info, apikey, content-type"
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

type forwarder interface {
	Forward(ctx context.Context, p models.EmailPayload) error
}

// Server is the HTTP face of the relay.
type Server struct {
	address   string
	origin    string
	validator *PayloadValidator
	forwarder forwarder
	logger    logging.Logger
}

func NewServer(a, origin string, v *PayloadValidator, f forwarder, l logging.Logger) *Server {
	return &Server{
		address:   a,
		origin:    origin,
		validator: v,
		forwarder: f,
		logger:    l.With("module", "http_server"),
	}
}

// Handler returns the routed handler with CORS and request-id middleware.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.requestID, s.cors)

	r.HandleFunc(SendEmailPath, s.handleSend).Methods(http.MethodPost)
	r.HandleFunc(SendEmailPath, s.handlePreflight).Methods(http.MethodOptions)
	r.HandleFunc(HealthPath, s.handleHealth).Methods(http.MethodGet)

	return r
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve serves on an existing listener until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	err := srv.Serve(listen)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(common.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(common.RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), id)))
	})
}

func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.origin)
		w.Header().Set("Access-Control-Allow-Headers", allowHeaders)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handlePreflight(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := s.logger.With("request_id", requestIDFrom(ctx))

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	p, err := s.validator.Decode(body)
	if err != nil {
		log.Warn(ctx, "Rejected payload", "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	if err := s.forwarder.Forward(ctx, p); err != nil {
		log.Error(ctx, "Forward failed", "email", p.Email, "employee_id", p.EmployeeID, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Info(ctx, "Email forwarded", "email", p.Email, "employee_id", p.EmployeeID, "duration", time.Since(start))
	writeJSON(w, http.StatusOK, sendResponse{Success: true, Message: "Email sent successfully"})
}

type sendResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

type requestIDKey struct{}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
