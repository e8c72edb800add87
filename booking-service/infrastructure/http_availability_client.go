package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/draftea/booking-system/booking-service/domain"
	"github.com/draftea/booking-system/shared/models"
	"github.com/pkg/errors"
)

var _ domain.AvailabilityClient = (*HTTPAvailabilityClient)(nil)

// ErrInsufficientTickets is returned by Reserve when the event service refuses the decrement
var ErrInsufficientTickets = errors.New("event service rejected ticket decrement")

type HTTPAvailabilityConfig struct {
	BaseURL  string
	Timeout  time.Duration
	Currency string
}

// HTTPAvailabilityClient talks to the event service REST API
type HTTPAvailabilityClient struct {
	baseURL    string
	currency   string
	httpClient *http.Client
}

func NewHTTPAvailabilityClient(cfg HTTPAvailabilityConfig) *HTTPAvailabilityClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Currency == "" {
		cfg.Currency = "USD"
	}

	return &HTTPAvailabilityClient{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		currency: cfg.Currency,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type eventResponse struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Price            float64 `json:"price"`
	AvailableTickets int     `json:"availableTickets"`
}

type availabilityResponse struct {
	Available bool `json:"available"`
}

type bookTicketsResponse struct {
	Success bool `json:"success"`
}

// GetEvent returns (nil, nil) when the event service answers 404
func (c *HTTPAvailabilityClient) GetEvent(ctx context.Context, eventID models.ID) (*domain.EventInfo, error) {
	var event eventResponse
	found, err := c.do(ctx, http.MethodGet, c.eventURL(eventID, "", nil), nil, &event)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get event %s", eventID)
	}
	if !found {
		return nil, nil
	}

	id := models.ID(event.ID)
	if id.IsEmpty() {
		id = eventID
	}

	return &domain.EventInfo{
		ID:               id,
		Name:             event.Title,
		UnitPrice:        models.MoneyFromDecimal(event.Price, c.currency),
		AvailableTickets: event.AvailableTickets,
	}, nil
}

func (c *HTTPAvailabilityClient) CheckAvailability(ctx context.Context, eventID models.ID, count int) (bool, error) {
	var res availabilityResponse
	found, err := c.do(ctx, http.MethodGet, c.eventURL(eventID, "/availability", ticketsQuery(count)), nil, &res)
	if err != nil {
		return false, errors.Wrapf(err, "failed to check availability for event %s", eventID)
	}
	if !found {
		return false, nil
	}

	return res.Available, nil
}

// Reserve decrements the event's available tickets
func (c *HTTPAvailabilityClient) Reserve(ctx context.Context, eventID models.ID, count int) error {
	req, err := c.newRequest(ctx, http.MethodPut, c.eventURL(eventID, "/book", ticketsQuery(count)), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to book tickets for event %s", eventID)
	}
	defer resp.Body.Close()

	var res bookTicketsResponse
	_ = json.NewDecoder(resp.Body).Decode(&res)

	switch {
	case resp.StatusCode == http.StatusOK && res.Success:
		return nil
	case resp.StatusCode == http.StatusBadRequest || (resp.StatusCode == http.StatusOK && !res.Success):
		return errors.Wrapf(ErrInsufficientTickets, "event %s, tickets %d", eventID, count)
	default:
		return errors.Errorf("event service returned status %d booking tickets for event %s", resp.StatusCode, eventID)
	}
}

// Release returns tickets to an event. The event service has no increment
// endpoint, so the event is read and written back with the new count.
func (c *HTTPAvailabilityClient) Release(ctx context.Context, eventID models.ID, count int) error {
	var event map[string]interface{}
	found, err := c.do(ctx, http.MethodGet, c.eventURL(eventID, "", nil), nil, &event)
	if err != nil {
		return errors.Wrapf(err, "failed to get event %s", eventID)
	}
	if !found {
		return errors.Errorf("event %s not found", eventID)
	}

	current, _ := event["availableTickets"].(float64)
	event["availableTickets"] = int(current) + count

	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal event")
	}

	found, err = c.do(ctx, http.MethodPut, c.eventURL(eventID, "", nil), body, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to release tickets for event %s", eventID)
	}
	if !found {
		return errors.Errorf("event %s not found", eventID)
	}

	return nil
}

func (c *HTTPAvailabilityClient) eventURL(eventID models.ID, suffix string, query url.Values) string {
	u := fmt.Sprintf("%s/api/events/%s%s", c.baseURL, url.PathEscape(eventID.String()), suffix)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func ticketsQuery(count int) url.Values {
	return url.Values{"tickets": []string{strconv.Itoa(count)}}
}

func (c *HTTPAvailabilityClient) newRequest(ctx context.Context, method, u string, body []byte) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// do sends a request and decodes a 2xx body into out. A 404 is reported as found=false.
func (c *HTTPAvailabilityClient) do(ctx context.Context, method, u string, body []byte, out interface{}) (bool, error) {
	req, err := c.newRequest(ctx, method, u, body)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, errors.Wrap(err, "failed to send request")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, errors.Errorf("event service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, errors.Wrap(err, "failed to decode response")
		}
	}

	return true, nil
}
