package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"

	"github.com/pavankalyan767/wundrsight-assignment/internal/middleware"
	"github.com/pavankalyan767/wundrsight-assignment/internal/model"
	"github.com/pavankalyan767/wundrsight-assignment/internal/store"
)

type bookRequest struct {
	SlotID string `json:"slotId" validate:"required,uuid"`
}

type bookingView struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	Slot      model.Slot `json:"slot"`
}

type userView struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

type adminBookingView struct {
	bookingView
	User userView `json:"user"`
}

func (h *Handler) Slots(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	slots, err := h.store.AvailableSlots(r.Context())
	if err != nil {
		h.log.Error("list slots", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if slots == nil {
		slots = []model.Slot{}
	}
	writeJSON(w, http.StatusOK, slots)
}

func (h *Handler) Book(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req bookRequest
	if !h.decode(w, r, &req) {
		return
	}

	b := &model.Booking{
		ID:     uuid.New().String(),
		UserID: middleware.UserID(r.Context()),
		SlotID: req.SlotID,
	}

	// the insert itself is the conflict check; losing the race is the one
	// failure a healthy system produces under load
	if err := h.store.CreateBooking(r.Context(), b); err != nil {
		if errors.Is(err, store.ErrSlotTaken) {
			writeError(w, http.StatusConflict, "This slot is already booked.")
			return
		}
		h.log.Error("create booking", "slot_id", req.SlotID, "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": b.ID, "message": "Booking successful"})
}

func (h *Handler) MyBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	rows, err := h.store.BookingsByUser(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		h.log.Error("list my bookings", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]bookingView, len(rows))
	for i, row := range rows {
		out[i] = bookingView{
			ID:        row.Booking.ID,
			CreatedAt: row.Booking.CreatedAt,
			Slot:      row.Slot,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) AllBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	rows, err := h.store.AllBookings(r.Context())
	if err != nil {
		h.log.Error("list all bookings", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]adminBookingView, len(rows))
	for i, row := range rows {
		out[i] = adminBookingView{
			bookingView: bookingView{
				ID:        row.Booking.ID,
				CreatedAt: row.Booking.CreatedAt,
				Slot:      row.Slot,
			},
			User: userView{
				ID:    row.User.ID,
				Name:  row.User.Name,
				Email: row.User.Email,
				Role:  row.User.Role,
			},
		}
	}
	writeJSON(w, http.StatusOK, out)
}
