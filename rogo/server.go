package rogo

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// NewHandler wires Store's two endpoints behind CORS and request logging,
// the way a long-running service (rather than the teacher's one-shot
// smoketest CLI) structures its transport layer.
func NewHandler(store *Store, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /send-vocab", store.handleSendVocab)
	mux.HandleFunc("POST /session", store.handleSession)

	wrapped := cors.Default().Handler(mux)
	return withLogging(logger, wrapped)
}

func withLogging(logger zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", sw.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// clientIdentity is the host part of the remote address (the whole
// RemoteAddr if it has no port), or the caller-supplied X-Session-Id when
// it parses as a UUID (minted client-side via google/uuid by a test harness that
// wants a stable identity across otherwise-indistinguishable connections).
func clientIdentity(r *http.Request) string {
	if id := r.Header.Get("X-Session-Id"); id != "" {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (s *Store) handleSendVocab(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, &InvalidSettingsError{Reason: "could not read request body"})
		return
	}

	if err := s.SetVocab(clientIdentity(r), body); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "Vocab list received.")
}

func (s *Store) handleSession(w http.ResponseWriter, r *http.Request) {
	var raw map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, &InvalidSettingsError{Reason: "request body is not valid JSON"})
		return
	}

	questions, err := s.GenerateQuestions(clientIdentity(r), raw)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(questions)
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(StatusCode(err))
	fmt.Fprintf(w, "Bad request: 400 Bad Request: %s: %s", ErrorKind(err), err.Error())
}
