package handlers

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/xelth-com/eckshop/internal/buildinfo"
	"github.com/xelth-com/eckshop/internal/middleware"
	"github.com/xelth-com/eckshop/internal/models"
	"github.com/xelth-com/eckshop/internal/services/classifier"
	"github.com/xelth-com/eckshop/internal/services/labels"
	"github.com/xelth-com/eckshop/internal/websocket"
)

// RuleStore persists keyword rule changes
type RuleStore interface {
	SaveRule(ctx context.Context, category classifier.Category, keyword string) error
	DeleteRule(ctx context.Context, category classifier.Category, keyword string) error
}

// WorkOrderStore loads work order contents
type WorkOrderStore interface {
	Parts(ctx context.Context, workOrderID string) ([]models.Part, error)
	Hardware(ctx context.Context, workOrderID string) ([]models.HardwareItem, error)
	Racks(ctx context.Context, rackType classifier.RackType) ([]models.Rack, error)
}

// Options wires the router's collaborators. Rules, Orders and Hub may be nil:
// rule changes then stay in memory, work order routes are not mounted and no
// events are pushed.
type Options struct {
	Logger     *zap.Logger
	Classifier *classifier.Classifier
	Extractor  *labels.Extractor
	Rules      RuleStore
	Orders     WorkOrderStore
	Hub        *websocket.Hub
	JWTSecret  string
}

// Router wraps the mux router and the pipeline services
type Router struct {
	*mux.Router
	log *zap.Logger

	// mu serializes keyword mutations against classification;
	// the classifier itself does no locking.
	mu         sync.RWMutex
	classifier *classifier.Classifier

	extractor *labels.Extractor
	rules     RuleStore
	orders    WorkOrderStore
	hub       *websocket.Hub
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(opts Options) *Router {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Classifier == nil {
		opts.Classifier = classifier.New(nil)
	}
	if opts.Extractor == nil {
		opts.Extractor = labels.NewExtractor(labels.Options{})
	}

	r := &Router{
		Router:     mux.NewRouter(),
		log:        opts.Logger,
		classifier: opts.Classifier,
		extractor:  opts.Extractor,
		rules:      opts.Rules,
		orders:     opts.Orders,
		hub:        opts.Hub,
	}
	r.Use(r.requestLogger)

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/status", r.getStatus).Methods("GET")

	// Classification
	api.HandleFunc("/classify", r.classifyParts).Methods("POST")
	api.HandleFunc("/classifier/keywords", r.listKeywords).Methods("GET")

	auth := middleware.AuthMiddleware(opts.JWTSecret)
	api.Handle("/classifier/keywords", auth(http.HandlerFunc(r.addKeyword))).Methods("POST")
	api.Handle("/classifier/keywords/{category}/{keyword}", auth(http.HandlerFunc(r.removeKeyword))).Methods("DELETE")

	// Hardware
	api.HandleFunc("/hardware/group", r.groupHardware).Methods("POST")
	api.HandleFunc("/hardware/scan-sheet", r.hardwareScanSheet).Methods("POST")

	// Labels
	api.HandleFunc("/labels/parse", r.parseLabels).Methods("POST")

	// Work orders
	if r.orders != nil {
		orders := api.PathPrefix("/work-orders/{id}").Subrouter()
		orders.HandleFunc("/routing", r.getWorkOrderRouting).Methods("GET")
		orders.HandleFunc("/hardware", r.getWorkOrderHardware).Methods("GET")
	}

	// Station event feed
	if r.hub != nil {
		r.HandleFunc("/ws", func(w http.ResponseWriter, req *http.Request) {
			websocket.ServeWs(r.hub, w, req)
		})
	}

	return r
}

// notify pushes an event to connected stations when a hub is configured
func (r *Router) notify(eventType string, payload interface{}) {
	if r.hub != nil {
		r.hub.Broadcast(eventType, payload)
	}
}

// Handler returns the root handler with path normalization applied
func (r *Router) Handler() http.Handler {
	return middleware.CaseInsensitiveMiddleware(r.Router)
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// getStatus returns the current status
func (r *Router) getStatus(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "running",
		"work_orders": r.orders != nil,
		"stations":    r.stations(),
		"build":       buildinfo.Get(),
	})
}

func (r *Router) stations() int {
	if r.hub == nil {
		return 0
	}
	return r.hub.Connected()
}

// statusRecorder captures the response code for request logging
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Hijack lets the station feed upgrade through the logging wrapper
func (s *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := s.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	s.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

// requestLogger tags every request with an ID and logs its outcome
func (r *Router) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		requestID := req.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)

		r.log.Debug("request",
			zap.String("request_id", requestID),
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
