// Package http is the presentation boundary of the demo: a JSON API over
// chi serving the page catalog, guarded action invocations, progress
// streaming over SSE and websocket, share-link snapshots, and the embedded
// demo page.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	hodos "github.com/quez2777/hodos-360-website"
	"github.com/quez2777/hodos-360-website/api"
	"github.com/quez2777/hodos-360-website/internal/adapters"
	"github.com/quez2777/hodos-360-website/internal/config"
	"github.com/quez2777/hodos-360-website/pkg/action"
	"github.com/quez2777/hodos-360-website/pkg/domain"
)

// Server carries the engine and the optional collaborators of the HTTP
// surface.
type Server struct {
	demo    *hodos.Demo
	store   adapters.SnapshotStore
	baseURL string
	theme   config.Theme
	logger  *slog.Logger

	upgrader websocket.Upgrader
}

// Option configures the HTTP surface.
type Option func(*Server)

// WithSnapshotStore enables the share-link endpoints.
func WithSnapshotStore(store adapters.SnapshotStore) Option {
	return func(s *Server) { s.store = store }
}

// WithBaseURL sets the public base URL used in share links.
func WithBaseURL(u string) Option {
	return func(s *Server) { s.baseURL = u }
}

// WithTheme overrides the page palette.
func WithTheme(t config.Theme) Option {
	return func(s *Server) { s.theme = t }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewHandler builds the full route tree.
func NewHandler(demo *hodos.Demo, opts ...Option) http.Handler {
	s := &Server{
		demo:   demo,
		theme:  config.Default().Theme,
		logger: slog.Default(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.getHealth)
	r.Get("/", s.getPage)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Get("/openapi.yaml", s.getOpenAPI)
	r.Get("/swagger", s.getSwagger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", s.getCatalog)
		r.Get("/actions", s.listActions)
		r.Post("/actions/{name}", s.invokeAction)
		r.Get("/actions/{name}/events", s.streamActionSSE)
		r.Get("/actions/{name}/ws", s.streamActionWS)
		r.Post("/share", s.createShare)
	})
	r.Get("/share/{token}", s.getShare)

	return r
}

// requestID attaches a correlation ID to every request, honoring an
// incoming X-Request-Id header.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(action.WithRequestID(r.Context(), id)))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

func (s *Server) getHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": hodos.Version})
}

func (s *Server) getCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.demo.Catalog())
}

func (s *Server) listActions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.demo.Actions())
}

func (s *Server) getOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/yaml")
	w.Write(api.Document())
}

func (s *Server) getSwagger(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	w.Write([]byte(swaggerHTML))
}

type invokeRequest struct {
	Params map[string]any `json:"params"`
}

type invokeResponse struct {
	RequestID string        `json:"request_id"`
	Outputs   domain.Result `json:"outputs"`
}

// invokeAction handles POST /api/actions/{name}.
func (s *Server) invokeAction(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var body invokeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := s.demo.Invoke(r.Context(), domain.Request{Action: name, Params: body.Params}, nil)
	if err != nil {
		writeInvokeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, invokeResponse{
		RequestID: w.Header().Get("X-Request-Id"),
		Outputs:   result,
	})
}

// streamEvent is one SSE or websocket frame.
type streamEvent struct {
	Type      string        `json:"type"`
	RequestID string        `json:"request_id,omitempty"`
	Progress  string        `json:"progress,omitempty"`
	Outputs   domain.Result `json:"outputs,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// streamActionSSE handles GET /api/actions/{name}/events. Parameters arrive
// JSON-encoded in the params query parameter; progress events stream until
// the terminal result or error event. Client disconnect cancels the handler
// through the request context.
func (s *Server) streamActionSSE(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	params, err := bindStreamQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	requestID := w.Header().Get("X-Request-Id")
	sink := action.NewChanSink()
	done := make(chan streamEvent, 1)

	go func() {
		result, err := s.demo.Invoke(r.Context(), domain.Request{Action: name, Params: params}, sink)
		sink.Close()
		if err != nil {
			done <- streamEvent{Type: "error", RequestID: requestID, Error: err.Error()}
			return
		}
		done <- streamEvent{Type: "result", RequestID: requestID, Outputs: result}
	}()

	writeSSE(w, streamEvent{Type: "ping", RequestID: requestID})
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case line, ok := <-sink.C:
			if !ok {
				terminal := <-done
				writeSSE(w, terminal)
				flusher.Flush()
				return
			}
			writeSSE(w, streamEvent{Type: "progress", RequestID: requestID, Progress: line})
			flusher.Flush()
		}
	}
}

func bindStreamQuery(r *http.Request) (map[string]any, error) {
	var encoded string
	if err := runtime.BindQueryParameter("form", true, false, "params", r.URL.Query(), &encoded); err != nil {
		return nil, fmt.Errorf("invalid params query parameter: %w", err)
	}
	if encoded == "" {
		return nil, nil
	}
	var params map[string]any
	if err := json.Unmarshal([]byte(encoded), &params); err != nil {
		return nil, fmt.Errorf("params is not valid JSON: %w", err)
	}
	return params, nil
}

// streamActionWS handles GET /api/actions/{name}/ws. The client sends one
// JSON message with the parameters; the server streams progress frames and
// a terminal result or error frame, then closes.
func (s *Server) streamActionWS(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	var body invokeRequest
	if err := conn.ReadJSON(&body); err != nil {
		conn.WriteJSON(streamEvent{Type: "error", Error: "invalid request message"})
		return
	}

	requestID := w.Header().Get("X-Request-Id")
	sink := action.NewChanSink()
	done := make(chan streamEvent, 1)

	go func() {
		result, err := s.demo.Invoke(r.Context(), domain.Request{Action: name, Params: body.Params}, sink)
		sink.Close()
		if err != nil {
			done <- streamEvent{Type: "error", RequestID: requestID, Error: err.Error()}
			return
		}
		done <- streamEvent{Type: "result", RequestID: requestID, Outputs: result}
	}()

	for line := range sink.C {
		if err := conn.WriteJSON(streamEvent{Type: "progress", RequestID: requestID, Progress: line}); err != nil {
			return
		}
	}
	terminal := <-done
	conn.WriteJSON(terminal)
	conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

type shareRequest struct {
	Action string         `json:"action"`
	Params map[string]any `json:"params"`
}

type shareResponse struct {
	Token string `json:"token"`
	URL   string `json:"url"`
}

// createShare handles POST /api/share: it runs the invocation and stores
// the outputs behind a fresh token.
func (s *Server) createShare(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "sharing is not enabled", http.StatusNotImplemented)
		return
	}

	var body shareRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := s.demo.Invoke(r.Context(), domain.Request{Action: body.Action, Params: body.Params}, nil)
	if err != nil {
		writeInvokeError(w, err)
		return
	}

	snap := &adapters.Snapshot{
		Token:     uuid.NewString(),
		Action:    body.Action,
		Params:    body.Params,
		Result:    result,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Save(r.Context(), snap); err != nil {
		s.logger.Error("saving snapshot failed", "err", err)
		http.Error(w, "failed to save snapshot", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, shareResponse{
		Token: snap.Token,
		URL:   fmt.Sprintf("%s/share/%s", s.baseURL, snap.Token),
	})
}

// getShare handles GET /share/{token}.
func (s *Server) getShare(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "sharing is not enabled", http.StatusNotImplemented)
		return
	}

	token := chi.URLParam(r, "token")
	snap, err := s.store.Load(r.Context(), token)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			http.Error(w, "unknown or expired share token", http.StatusNotFound)
			return
		}
		s.logger.Error("loading snapshot failed", "err", err)
		http.Error(w, "failed to load snapshot", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func writeInvokeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrActionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidParams):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "err", err)
	}
}

func writeSSE(w http.ResponseWriter, ev streamEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Type, data)
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>HODOS 360 Demo API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`
