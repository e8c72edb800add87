package handlers

import (
	"net/http"

	"github.com/draftea/booking-system/booking-service/application"
	"github.com/go-chi/chi/v5"
)

// BookingHandlers exposes the booking saga over HTTP
type BookingHandlers struct {
	saga *application.BookingSaga
}

// NewBookingHandlers creates new booking handlers
func NewBookingHandlers(saga *application.BookingSaga) *BookingHandlers {
	return &BookingHandlers{saga: saga}
}

// CreateBooking books and pays in one request
func (h *BookingHandlers) CreateBooking(w http.ResponseWriter, r *http.Request) {
	cmd, ok := decodeCommand(w, r)
	if !ok {
		return
	}

	result, err := h.saga.CreateAndConfirm(r.Context(), cmd)
	if err != nil {
		writeError(w, r, err, result)
		return
	}

	writeJSON(w, r, http.StatusCreated, newBookingResponse(result))
}

// CreatePendingBooking books without paying and returns where to confirm
func (h *BookingHandlers) CreatePendingBooking(w http.ResponseWriter, r *http.Request) {
	cmd, ok := decodeCommand(w, r)
	if !ok {
		return
	}

	result, err := h.saga.CreatePending(r.Context(), cmd)
	if err != nil {
		writeError(w, r, err, result)
		return
	}

	resp := newBookingResponse(result)
	resp.PaymentURL = "/api/bookings/" + resp.ID + "/confirm"

	writeJSON(w, r, http.StatusCreated, resp)
}

// ConfirmBooking pays for a pending booking
func (h *BookingHandlers) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	result, err := h.saga.Confirm(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, result)
		return
	}

	writeJSON(w, r, http.StatusOK, newBookingResponse(result))
}

// CancelBooking cancels a booking in any state but CANCELLED
func (h *BookingHandlers) CancelBooking(w http.ResponseWriter, r *http.Request) {
	result, err := h.saga.Cancel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, result)
		return
	}

	writeJSON(w, r, http.StatusOK, newBookingResponse(result))
}

// GetBooking handles booking retrieval requests
func (h *BookingHandlers) GetBooking(w http.ResponseWriter, r *http.Request) {
	result, err := h.saga.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	writeJSON(w, r, http.StatusOK, newBookingResponse(result))
}

// GetUserBookings lists a user's bookings, newest first
func (h *BookingHandlers) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	results, err := h.saga.GetForUser(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	resp := make([]*BookingResponse, 0, len(results))
	for _, result := range results {
		resp = append(resp, newBookingResponse(result))
	}

	writeJSON(w, r, http.StatusOK, resp)
}

// RegisterRoutes registers booking routes
func (h *BookingHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Post("/", h.CreateBooking)
		r.Post("/pending", h.CreatePendingBooking)
		r.Get("/user/{userID}", h.GetUserBookings)
		r.Get("/{id}", h.GetBooking)
		r.Put("/{id}/confirm", h.ConfirmBooking)
		r.Put("/{id}/cancel", h.CancelBooking)
	})
}
