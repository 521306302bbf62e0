package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/julienschmidt/httprouter"

	"github.com/pavankalyan767/wundrsight-assignment/internal/middleware"
	"github.com/pavankalyan767/wundrsight-assignment/internal/model"
	"github.com/pavankalyan767/wundrsight-assignment/internal/store"
)

type Handler struct {
	store    *store.Store
	secret   string
	validate *validator.Validate
	log      *slog.Logger
}

func New(st *store.Store, secret string, log *slog.Logger) *Handler {
	return &Handler{
		store:    st,
		secret:   secret,
		validate: validator.New(),
		log:      log,
	}
}

// Routes wires the full API surface, auth guards included.
func (h *Handler) Routes() http.Handler {
	r := httprouter.New()
	r.POST("/api/register", h.Register)
	r.POST("/api/login", h.Login)
	r.GET("/api/slots", h.Slots)
	r.POST("/api/book", middleware.RequireRole(h.secret, model.RolePatient, h.Book))
	r.GET("/api/my-bookings", middleware.RequireRole(h.secret, model.RolePatient, h.MyBookings))
	r.GET("/api/all-bookings", middleware.RequireRole(h.secret, model.RoleAdmin, h.AllBookings))
	return middleware.CORS(r)
}

// decode parses and validates a JSON body, answering 400 itself on failure.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
