package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/draftea/booking-system/booking-service/application"
	"github.com/draftea/booking-system/booking-service/domain"
	"github.com/draftea/booking-system/shared/logger"
	"github.com/pkg/errors"
)

// BookingResponse is the JSON view of a booking and its payment
type BookingResponse struct {
	ID         string           `json:"id"`
	UserID     string           `json:"user_id"`
	EventID    string           `json:"event_id"`
	Tickets    int              `json:"tickets"`
	TotalPrice float64          `json:"total_price"`
	Currency   string           `json:"currency"`
	Status     string           `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	Payment    *PaymentResponse `json:"payment,omitempty"`
	PaymentURL string           `json:"payment_url,omitempty"`
}

type PaymentResponse struct {
	ID            string    `json:"id"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"payment_method"`
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   ErrorBody        `json:"error"`
	Booking *BookingResponse `json:"booking,omitempty"`
}

func newBookingResponse(result *application.BookingResult) *BookingResponse {
	if result == nil || result.Booking == nil {
		return nil
	}

	b := result.Booking
	resp := &BookingResponse{
		ID:         b.ID.String(),
		UserID:     b.UserID.String(),
		EventID:    b.EventID.String(),
		Tickets:    b.TicketCount,
		TotalPrice: b.TotalPrice.Decimal(),
		Currency:   b.TotalPrice.Currency,
		Status:     b.Status.String(),
		CreatedAt:  b.Timestamps.CreatedAt,
		UpdatedAt:  b.Timestamps.UpdatedAt,
	}

	if p := result.Payment; p != nil {
		resp.Payment = &PaymentResponse{
			ID:            p.ID.String(),
			Amount:        p.Amount.Decimal(),
			Currency:      p.Amount.Currency,
			PaymentMethod: p.PaymentMethod,
			TransactionID: p.TransactionID,
			Status:        string(p.Status),
			CreatedAt:     p.CreatedAt,
		}
	}

	return resp
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithContext(r.Context()).Error("failed to write response", "error", err)
	}
}

// writeError maps a saga error to its status code. A result that came back with
// the error, such as a declined booking, is included in the body.
func writeError(w http.ResponseWriter, r *http.Request, err error, result *application.BookingResult) {
	kind := domain.KindOf(err)
	status := statusFor(kind)

	message := "internal server error"
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		message = domainErr.Message
	}

	if status >= http.StatusInternalServerError {
		logger.WithContext(r.Context()).Error("booking request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"kind", kind,
			"error", err,
		)
	}

	if kind == "" {
		kind = "INTERNAL"
	}

	writeJSON(w, r, status, ErrorResponse{
		Error:   ErrorBody{Kind: string(kind), Message: message},
		Booking: newBookingResponse(result),
	})
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindCapacity:
		return http.StatusUnprocessableEntity
	case domain.KindPaymentDeclined:
		return http.StatusPaymentRequired
	case domain.KindUpstreamFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
