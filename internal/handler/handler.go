// Package handler exposes the single collaborator-facing endpoint,
// POST /send, and maps the dispatch error taxonomy onto HTTP outcomes.
package handler

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/courier/pkg/mailer"
)

// Dispatcher is the single operation the HTTP surface needs from the core.
// *mailer.Mailer satisfies it.
type Dispatcher interface {
	Send(ctx context.Context, p mailer.SendParams) (string, error)
}

// SendRequest is the JSON payload of POST /send.
type SendRequest struct {
	To       string         `json:"to"`       // comma-separated recipients
	Subject  string         `json:"subject"`  // message subject
	Template string         `json:"template"` // template name without extension
	Vars     map[string]any `json:"vars"`     // optional, defaults to empty
}

// Routes builds the service router. An empty apiKey disables authentication
// (development convenience).
func Routes(d Dispatcher, apiKey string, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	r.Post("/send", send(d, apiKey))
	return r
}

func send(d Dispatcher, apiKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !authorized(r, apiKey) {
			respond(w, http.StatusUnauthorized, errorBody{Error: "unauthorized"})
			return
		}

		var req SendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respond(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
			return
		}

		deliveryID, err := d.Send(r.Context(), mailer.SendParams{
			To:       req.To,
			Subject:  req.Subject,
			Template: req.Template,
			Vars:     req.Vars,
		})
		if err != nil {
			respond(w, statusFor(err), errorBody{Error: err.Error()})
			return
		}

		respond(w, http.StatusOK, okBody{Status: "ok", ID: deliveryID})
	}
}

// authorized compares the bearer token from the Authorization header against
// the configured key in constant time.
func authorized(r *http.Request, apiKey string) bool {
	if apiKey == "" {
		return true
	}
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) == 1
}

// statusFor maps the closed error taxonomy onto status codes. Transport and
// configuration failures both answer 500; the detail string tells them apart.
func statusFor(err error) int {
	switch {
	case errors.Is(err, mailer.ErrTemplateNotFound):
		return http.StatusNotFound
	case errors.Is(err, mailer.ErrRender):
		return http.StatusUnprocessableEntity
	default: // mailer.ErrSMTP, mailer.ErrConfig
		return http.StatusInternalServerError
	}
}

type okBody struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

type errorBody struct {
	Error string `json:"error"`
}

func respond(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// requestLogger logs one line per request with method, path, status, and
// duration.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
