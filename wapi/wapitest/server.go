// Package wapitest provides an in-process fake of the Wynncraft API for tests.
package wapitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
)

// Server is a fake Wynncraft API. Routes registered with Handle respond with
// canned bodies; everything else is a 404 in the API's error format.
type Server struct {
	*httptest.Server

	router   chi.Router
	mu       sync.RWMutex
	headers  http.Header
	requests atomic.Int64
	last     atomic.Pointer[http.Request]
}

// NewServer starts a fake server. Call Close when done.
func NewServer() *Server {
	s := &Server{
		router:  chi.NewRouter(),
		headers: make(http.Header),
	}

	s.router.Use(s.track)
	s.router.Use(s.rateLimitHeaders)
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusNotFound, map[string]string{"Error": "Not found"})
	})

	s.Server = httptest.NewServer(s.router)
	return s
}

// Handle registers a handler for GET pattern (chi syntax, e.g. /v3/player/{name}).
func (s *Server) Handle(pattern string, h http.HandlerFunc) {
	s.router.Get(pattern, h)
}

// HandleJSON registers a route that always answers 200 with body encoded as JSON.
func (s *Server) HandleJSON(pattern string, body any) {
	s.Handle(pattern, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, body)
	})
}

// HandleStatus registers a route that always answers with status and a raw body.
func (s *Server) HandleStatus(pattern string, status int, body string) {
	s.Handle(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// SetRateLimit makes every response carry the given RateLimit-* headers.
func (s *Server) SetRateLimit(remaining, resetSeconds, limit int) {
	s.SetHeader("RateLimit-Remaining", strconv.Itoa(remaining))
	s.SetHeader("RateLimit-Reset", strconv.Itoa(resetSeconds))
	s.SetHeader("RateLimit-Limit", strconv.Itoa(limit))
}

// SetHeader adds a header to every response; an empty value removes it.
func (s *Server) SetHeader(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if value == "" {
		s.headers.Del(key)
		return
	}
	s.headers.Set(key, value)
}

// Requests returns the number of requests served
func (s *Server) Requests() int {
	return int(s.requests.Load())
}

// LastRequest returns the most recent request, or nil
func (s *Server) LastRequest() *http.Request {
	return s.last.Load()
}

// Param returns a chi URL parameter, for use inside handlers
func Param(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

// WriteJSON writes body as JSON with the given status
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		s.last.Store(r.Clone(r.Context()))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) rateLimitHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.RLock()
		for key, values := range s.headers {
			for _, v := range values {
				w.Header().Add(key, v)
			}
		}
		s.mu.RUnlock()
		next.ServeHTTP(w, r)
	})
}
