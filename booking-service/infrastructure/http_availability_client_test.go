package infrastructure

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/draftea/booking-system/booking-service/domain"
	"github.com/draftea/booking-system/shared/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventService mimics the event service REST API for one event
type fakeEventService struct {
	mu         sync.Mutex
	available  int
	failStatus int
}

func (f *fakeEventService) tickets() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.available
}

func (f *fakeEventService) router() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if f.failStatus != 0 {
				http.Error(w, "boom", f.failStatus)
				return
			}
			f.mu.Lock()
			defer f.mu.Unlock()
			next.ServeHTTP(w, req)
		})
	})

	r.Get("/api/events/{id}", func(w http.ResponseWriter, req *http.Request) {
		if chi.URLParam(req, "id") != "E1" {
			http.NotFound(w, req)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id": "E1", "title": "Jazz Night", "price": 50.5, "availableTickets": f.available, "venue": "Blue Note",
		})
	})

	r.Get("/api/events/{id}/availability", func(w http.ResponseWriter, req *http.Request) {
		n, _ := strconv.Atoi(req.URL.Query().Get("tickets"))
		_ = json.NewEncoder(w).Encode(map[string]bool{"available": n > 0 && n <= f.available})
	})

	r.Put("/api/events/{id}/book", func(w http.ResponseWriter, req *http.Request) {
		n, _ := strconv.Atoi(req.URL.Query().Get("tickets"))
		if n > f.available {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]bool{"success": false})
			return
		}
		f.available -= n
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})

	r.Put("/api/events/{id}", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]interface{}
		_ = json.NewDecoder(req.Body).Decode(&body)
		if body["venue"] != "Blue Note" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.available = int(body["availableTickets"].(float64))
		_ = json.NewEncoder(w).Encode(body)
	})

	return r
}

func newAvailabilityClient(t *testing.T, svc *fakeEventService) *HTTPAvailabilityClient {
	server := httptest.NewServer(svc.router())
	t.Cleanup(server.Close)
	return NewHTTPAvailabilityClient(HTTPAvailabilityConfig{BaseURL: server.URL + "/"})
}

func TestHTTPAvailabilityClient_GetEvent(t *testing.T) {
	client := newAvailabilityClient(t, &fakeEventService{available: 5})

	event, err := client.GetEvent(context.Background(), "E1")
	require.NoError(t, err)
	assert.Equal(t, &domain.EventInfo{
		ID:               "E1",
		Name:             "Jazz Night",
		UnitPrice:        models.NewMoney(5050, "USD"),
		AvailableTickets: 5,
	}, event)

	missing, err := client.GetEvent(context.Background(), "E404")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestHTTPAvailabilityClient_CheckAvailability(t *testing.T) {
	client := newAvailabilityClient(t, &fakeEventService{available: 3})

	ok, err := client.CheckAvailability(context.Background(), "E1", 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = client.CheckAvailability(context.Background(), "E1", 4)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHTTPAvailabilityClient_ReserveAndRelease(t *testing.T) {
	svc := &fakeEventService{available: 3}
	client := newAvailabilityClient(t, svc)
	ctx := context.Background()

	require.NoError(t, client.Reserve(ctx, "E1", 2))
	assert.Equal(t, 1, svc.tickets())

	err := client.Reserve(ctx, "E1", 2)
	assert.ErrorIs(t, err, ErrInsufficientTickets)

	require.NoError(t, client.Release(ctx, "E1", 2))
	assert.Equal(t, 3, svc.tickets())

	assert.Error(t, client.Release(ctx, "E404", 1))
}

func TestHTTPAvailabilityClient_ServerError(t *testing.T) {
	client := newAvailabilityClient(t, &fakeEventService{failStatus: http.StatusInternalServerError})

	_, err := client.GetEvent(context.Background(), "E1")
	assert.ErrorContains(t, err, "status 500")

	_, err = client.CheckAvailability(context.Background(), "E1", 1)
	assert.Error(t, err)

	err = client.Reserve(context.Background(), "E1", 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInsufficientTickets)
}
