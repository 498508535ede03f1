// Package stubapi is an in-memory stand-in for the remote order service. It
// implements the wire contract the client consumes and exposes knobs to
// script failure modes, so tests and local runs need no real backend.
package stubapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"jerseyform/internal/domain"
)

type Server struct {
	mu     sync.Mutex
	nextID int
	orders []domain.OrderRecord

	failEmailOnce   bool
	rateLimitOnce   bool
	serverErrorOnce bool
}

func New() *Server {
	return &Server{nextID: 1}
}

// FailEmailOnce makes the next create-order call store the order but answer
// with the email-delivery failure the pipeline treats as partial success.
func (s *Server) FailEmailOnce() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failEmailOnce = true
}

// RateLimitOnce makes the next create-order call answer 429.
func (s *Server) RateLimitOnce() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rateLimitOnce = true
}

// ServerErrorOnce makes the next create-order call answer 500.
func (s *Server) ServerErrorOnce() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.serverErrorOnce = true
}

// Orders returns a snapshot of the stored orders.
func (s *Server) Orders() []domain.OrderRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.OrderRecord, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", s.health)
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", s.createOrder)
		r.Get("/", s.listOrders)
		r.Get("/check-jersey", s.checkJersey)
		r.Get("/check-name", s.checkName)
		r.Get("/{orderId}", s.getOrder)
		r.Patch("/{orderId}/status", s.updateStatus)
	})

	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rateLimitOnce {
		s.rateLimitOnce = false
		writeError(w, http.StatusTooManyRequests, "Too many requests")
		return
	}
	if s.serverErrorOnce {
		s.serverErrorOnce = false
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var payload domain.OrderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	if payload.Name == "" || payload.JerseyNumber == "" {
		writeError(w, http.StatusBadRequest, "name and jerseyNumber are required")
		return
	}

	for _, existing := range s.orders {
		if existing.JerseyNumber == payload.JerseyNumber && batchKey(existing.Batch) == batchKey(payload.Batch) {
			writeError(w, http.StatusConflict, "Jersey number already taken for this batch.")
			return
		}
	}

	record := domain.OrderRecord{
		OrderID:      fmt.Sprintf("ORD-%06d", s.nextID),
		Status:       domain.OrderStatusPending,
		OrderPayload: payload,
	}
	s.nextID++
	s.orders = append(s.orders, record)

	if s.failEmailOnce {
		s.failEmailOnce = false
		writeError(w, http.StatusInternalServerError, "Order created but the confirmation email could not be sent")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"orderId": record.OrderID})
}

func (s *Server) checkJersey(w http.ResponseWriter, r *http.Request) {
	number := r.URL.Query().Get("number")
	if number == "" {
		writeError(w, http.StatusBadRequest, "number is required")
		return
	}
	batch := r.URL.Query().Get("batch")

	s.mu.Lock()
	defer s.mu.Unlock()

	available := true
	for _, existing := range s.orders {
		if existing.JerseyNumber != number {
			continue
		}
		if batch == "" || batchKey(existing.Batch) == batch {
			available = false
			break
		}
	}

	writeJSON(w, http.StatusOK, map[string]bool{"available": available})
}

func (s *Server) checkName(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exists := false
	for _, existing := range s.orders {
		if strings.EqualFold(existing.Name, name) {
			exists = true
			break
		}
	}

	writeJSON(w, http.StatusOK, map[string]bool{"exists": exists})
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Orders())
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.orders {
		if existing.OrderID == orderID {
			writeJSON(w, http.StatusOK, existing)
			return
		}
	}
	writeError(w, http.StatusNotFound, "order not found")
}

func (s *Server) updateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	status := domain.OrderStatus(body.Status)
	if !status.IsValid() {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%q is not a valid order status", body.Status))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].OrderID == orderID {
			s.orders[i].Status = status
			writeJSON(w, http.StatusOK, s.orders[i])
			return
		}
	}
	writeError(w, http.StatusNotFound, "order not found")
}

func batchKey(batch *string) string {
	if batch == nil {
		return ""
	}
	return *batch
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
