package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chainpay-labs/paybot/internal/payroll"
	"github.com/chainpay-labs/paybot/internal/store"
)

// registerRoutes mounts the paybot API.
func (s *Server) registerRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", s.handleChat)
		r.Get("/chat/ws", s.handleWebSocket)

		r.Get("/analytics", s.handleAnalytics)

		r.Get("/employees", s.handleListEmployees)
		r.Post("/employees", s.handleSaveEmployee)
		r.Delete("/employees/{id}", s.handleDeleteEmployee)

		r.Get("/payments", s.handleListPayments)
		r.Post("/payments", s.handleSavePayment)

		r.Get("/sessions/{id}/turns", s.handleGetTurns)
	})
}

type chatRequest struct {
	SessionID string `json:"session_id"` // empty for new sessions
	Message   string `json:"message"`
}

type chatReply struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
	Kind      string `json:"kind"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := s.chat(r, req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, reply)
}

// chat runs one conversation turn: resolve the session, load a fresh payroll
// snapshot, produce the reply and persist the exchange.
func (s *Server) chat(r *http.Request, req chatRequest) (*chatReply, error) {
	ctx := r.Context()

	sessionID := req.SessionID
	if sessionID == "" {
		sess, err := s.store.CreateSession(ctx)
		if err != nil {
			return nil, err
		}
		sessionID = sess.ID
	} else if err := s.store.EnsureSession(ctx, sessionID); err != nil {
		return nil, err
	}

	snap, err := s.store.Snapshot(ctx, s.cfg.CompanyName)
	if err != nil {
		return nil, err
	}

	entry := s.session(sessionID)
	entry.mu.Lock()
	reply := s.engine.Respond(ctx, entry.sess, req.Message, snap)
	entry.mu.Unlock()

	// Transcript persistence is best effort: the reply is already final and
	// the session state already advanced.
	if _, err := s.store.AddTurn(ctx, store.ChatTurn{
		SessionID: sessionID,
		Message:   req.Message,
		Response:  reply.Text,
		Kind:      reply.Kind,
	}); err != nil {
		log.Printf("server: persisting turn for session %s: %v", sessionID, err)
	}

	return &chatReply{SessionID: sessionID, Text: reply.Text, Kind: reply.Kind}, nil
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.Snapshot(r.Context(), s.cfg.CompanyName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, payroll.BuildAnalytics(snap))
}

func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := s.store.ListEmployees(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if employees == nil {
		employees = []payroll.Employee{}
	}
	writeJSON(w, employees)
}

func (s *Server) handleSaveEmployee(w http.ResponseWriter, r *http.Request) {
	var e payroll.Employee
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if e.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	saved, err := s.store.SaveEmployee(r.Context(), e)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, saved)
}

func (s *Server) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.DeleteEmployee(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := s.store.ListPayments(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if payments == nil {
		payments = []payroll.Payment{}
	}
	writeJSON(w, payments)
}

func (s *Server) handleSavePayment(w http.ResponseWriter, r *http.Request) {
	var p payroll.Payment
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if p.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	saved, err := s.store.SavePayment(r.Context(), p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, saved)
}

func (s *Server) handleGetTurns(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	sess, err := s.store.GetSession(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if sess == nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	turns, err := s.store.GetTurns(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if turns == nil {
		turns = []store.ChatTurn{}
	}
	writeJSON(w, turns)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
