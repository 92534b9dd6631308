package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader is the HTTP header name for request ID
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey is the context key for request ID
	RequestIDContextKey = "request_id"
)

// RequestIDStore stores processed request IDs for idempotency
type RequestIDStore interface {
	// Store stores a request ID with its response
	Store(ctx context.Context, requestID string, response []byte, ttl time.Duration) error
	// Get retrieves a stored response by request ID
	Get(ctx context.Context, requestID string) ([]byte, error)
	// Exists checks if a request ID exists
	Exists(ctx context.Context, requestID string) (bool, error)
}

// InMemoryRequestIDStore is an in-memory implementation of RequestIDStore
type InMemoryRequestIDStore struct {
	mu      sync.RWMutex
	store   map[string]requestIDEntry
	cleanup *time.Ticker
}

type requestIDEntry struct {
	response  []byte
	expiresAt time.Time
}

// NewInMemoryRequestIDStore creates a new in-memory request ID store
func NewInMemoryRequestIDStore() *InMemoryRequestIDStore {
	store := &InMemoryRequestIDStore{
		store:   make(map[string]requestIDEntry),
		cleanup: time.NewTicker(1 * time.Minute),
	}

	go store.cleanupExpired()

	return store
}

func (s *InMemoryRequestIDStore) Store(ctx context.Context, requestID string, response []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store[requestID] = requestIDEntry{
		response:  response,
		expiresAt: time.Now().Add(ttl),
	}

	return nil
}

func (s *InMemoryRequestIDStore) Get(ctx context.Context, requestID string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.store[requestID]
	if !exists {
		return nil, ErrRequestIDNotFound
	}
	if time.Now().After(entry.expiresAt) {
		return nil, ErrRequestIDNotFound
	}

	return entry.response, nil
}

func (s *InMemoryRequestIDStore) Exists(ctx context.Context, requestID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.store[requestID]
	if !exists {
		return false, nil
	}
	if time.Now().After(entry.expiresAt) {
		return false, nil
	}

	return true, nil
}

func (s *InMemoryRequestIDStore) cleanupExpired() {
	for range s.cleanup.C {
		s.mu.Lock()
		now := time.Now()
		for id, entry := range s.store {
			if now.After(entry.expiresAt) {
				delete(s.store, id)
			}
		}
		s.mu.Unlock()
	}
}

var ErrRequestIDNotFound = &RequestIDError{Message: "request ID not found"}

type RequestIDError struct {
	Message string
}

func (e *RequestIDError) Error() string {
	return e.Message
}

// RequestIDMiddleware extracts or generates the X-Request-ID header
func RequestIDMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
			logger.Debug("Generated new request ID",
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
			)
		}

		c.Set(RequestIDContextKey, requestID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), RequestIDContextKey, requestID))
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID retrieves the request ID from the Gin context
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDContextKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

// IdempotencyMiddleware returns the cached response for a write request
// whose X-Request-ID was already processed
func IdempotencyMiddleware(store RequestIDStore, logger *zap.Logger, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" || c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}

		requestID := GetRequestID(c)
		if requestID == "" {
			c.Next()
			return
		}

		exists, err := store.Exists(c.Request.Context(), requestID)
		if err != nil {
			logger.Warn("Error checking request ID existence",
				zap.String("request_id", requestID),
				zap.Error(err),
			)
			// Fail open
			c.Next()
			return
		}

		if exists {
			cachedResponse, err := store.Get(c.Request.Context(), requestID)
			if err == nil && len(cachedResponse) > 0 {
				logger.Info("Duplicate request detected, returning cached response",
					zap.String("request_id", requestID),
					zap.String("path", c.Request.URL.Path),
				)
				c.Data(200, "application/json", cachedResponse)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// StoreResponseMiddleware stores successful write responses for idempotency
func StoreResponseMiddleware(store RequestIDStore, logger *zap.Logger, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" || c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}

		requestID := GetRequestID(c)
		if requestID == "" {
			c.Next()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           make([]byte, 0),
		}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 && len(writer.body) > 0 {
			if err := store.Store(c.Request.Context(), requestID, writer.body, ttl); err != nil {
				logger.Warn("Failed to store response for idempotency",
					zap.String("request_id", requestID),
					zap.Error(err),
				)
			}
		}
	}
}

// responseWriter captures the response body
type responseWriter struct {
	gin.ResponseWriter
	body []byte
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body = append(w.body, []byte(s)...)
	return w.ResponseWriter.WriteString(s)
}
