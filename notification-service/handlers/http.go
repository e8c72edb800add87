package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/draftea/booking-system/notification-service/application"
	"github.com/draftea/booking-system/notification-service/domain"
	"github.com/draftea/booking-system/shared/logger"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

// NotificationResponse is the JSON view of a stored notification
type NotificationResponse struct {
	ID               string     `json:"id"`
	BookingID        string     `json:"booking_id"`
	UserID           string     `json:"user_id"`
	UserEmail        string     `json:"user_email"`
	EventID          string     `json:"event_id"`
	EventName        string     `json:"event_name"`
	Tickets          int        `json:"tickets"`
	TotalPrice       float64    `json:"total_price"`
	Status           string     `json:"status"`
	NotificationType string     `json:"notification_type"`
	Sent             bool       `json:"sent"`
	SentAt           *time.Time `json:"sent_at"`
	Timestamp        string     `json:"timestamp"`
	CreatedAt        time.Time  `json:"created_at"`
}

type StatusListResponse struct {
	Status        string                  `json:"status"`
	Count         int                     `json:"count"`
	StatusType    string                  `json:"status_type"`
	Notifications []*NotificationResponse `json:"notifications"`
	Timestamp     time.Time               `json:"timestamp"`
}

type PendingListResponse struct {
	Status        string                  `json:"status"`
	Count         int                     `json:"count"`
	TotalPending  int64                   `json:"total_pending"`
	Limit         int64                   `json:"limit"`
	Notifications []*NotificationResponse `json:"notifications"`
	Timestamp     time.Time               `json:"timestamp"`
}

type ResendResponse struct {
	Status string `json:"status"`
	*application.ResendSummary
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NotificationHTTPHandlers serves stored notifications for support tooling
type NotificationHTTPHandlers struct {
	list   *application.ListNotifications
	resend *application.ResendUnsent
	now    func() time.Time
}

// NewNotificationHTTPHandlers creates new notification HTTP handlers
func NewNotificationHTTPHandlers(list *application.ListNotifications, resend *application.ResendUnsent) *NotificationHTTPHandlers {
	return &NotificationHTTPHandlers{
		list:   list,
		resend: resend,
		now:    time.Now,
	}
}

func (h *NotificationHTTPHandlers) GetAll(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.list.All(r.Context())
	h.writeList(w, r, notifications, err)
}

func (h *NotificationHTTPHandlers) GetByUser(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.list.ForUser(r.Context(), chi.URLParam(r, "userID"))
	h.writeList(w, r, notifications, err)
}

func (h *NotificationHTTPHandlers) GetByBooking(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.list.ForBooking(r.Context(), chi.URLParam(r, "bookingID"))
	h.writeList(w, r, notifications, err)
}

func (h *NotificationHTTPHandlers) GetByStatus(w http.ResponseWriter, r *http.Request) {
	status, notifications, err := h.list.ByStatus(r.Context(), chi.URLParam(r, "status"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := toResponses(notifications)
	writeJSON(w, r, http.StatusOK, StatusListResponse{
		Status:        "success",
		Count:         len(resp),
		StatusType:    status,
		Notifications: resp,
		Timestamp:     h.now().UTC(),
	})
}

// GetPending lists the newest PENDING notifications, ?limit= defaulting to 10
func (h *NotificationHTTPHandlers) GetPending(w http.ResponseWriter, r *http.Request) {
	page, err := h.list.Pending(r.Context(), queryLimit(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := toResponses(page.Notifications)
	writeJSON(w, r, http.StatusOK, PendingListResponse{
		Status:        "success",
		Count:         len(resp),
		TotalPending:  page.Total,
		Limit:         page.Limit,
		Notifications: resp,
		Timestamp:     h.now().UTC(),
	})
}

// Resend retries unsent confirmations and cancellations, ?limit= per pass
func (h *NotificationHTTPHandlers) Resend(w http.ResponseWriter, r *http.Request) {
	summary, err := h.resend.Execute(r.Context(), queryLimit(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, ResendResponse{Status: "success", ResendSummary: summary})
}

// RegisterRoutes registers notification routes
func (h *NotificationHTTPHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/api/notifications", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Get("/user/{userID}", h.GetByUser)
		r.Get("/booking/{bookingID}", h.GetByBooking)
		r.Get("/status/{status}", h.GetByStatus)
		r.Get("/pending", h.GetPending)
		r.Post("/resend", h.Resend)
	})
}

func (h *NotificationHTTPHandlers) writeList(w http.ResponseWriter, r *http.Request, notifications []*domain.Notification, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toResponses(notifications))
}

// queryLimit returns 0 for a missing or unparsable limit so the use case default applies
func queryLimit(r *http.Request) int64 {
	limit, err := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)
	if err != nil {
		return 0
	}
	return limit
}

func toResponses(notifications []*domain.Notification) []*NotificationResponse {
	resp := make([]*NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, &NotificationResponse{
			ID:               n.ID,
			BookingID:        n.BookingID,
			UserID:           n.UserID,
			UserEmail:        n.UserEmail,
			EventID:          n.EventID,
			EventName:        n.EventName,
			Tickets:          n.Tickets,
			TotalPrice:       n.TotalPrice,
			Status:           n.Status,
			NotificationType: string(n.Type),
			Sent:             n.Sent,
			SentAt:           n.SentAt,
			Timestamp:        n.Timestamp,
			CreatedAt:        n.CreatedAt,
		})
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

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidStatus) {
		writeJSON(w, r, http.StatusBadRequest, ErrorResponse{Status: "error", Message: "Invalid status"})
		return
	}

	logger.WithContext(r.Context()).Error("notification request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeJSON(w, r, http.StatusInternalServerError, ErrorResponse{Status: "error", Message: "Server error"})
}
