package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/draftea/booking-system/booking-service/application"
	"github.com/draftea/booking-system/booking-service/domain"
	"github.com/pkg/errors"
)

// flexibleID accepts an identifier sent either as a JSON string or a number
type flexibleID string

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = flexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Errorf("identifier must be a string or a number, got %s", data)
	}
	*id = flexibleID(n.String())
	return nil
}

// CreateBookingRequest is the body of both create routes
type CreateBookingRequest struct {
	UserID  flexibleID `json:"user_id"`
	EventID flexibleID `json:"event_id"`
	Tickets int        `json:"tickets"`
}

func (r CreateBookingRequest) command() *application.CreateBookingCommand {
	return &application.CreateBookingCommand{
		UserID:  string(r.UserID),
		EventID: string(r.EventID),
		Tickets: r.Tickets,
	}
}

func decodeCommand(w http.ResponseWriter, r *http.Request) (*application.CreateBookingCommand, bool) {
	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, domain.ValidationError("invalid request body"), nil)
		return nil, false
	}
	return req.command(), true
}
