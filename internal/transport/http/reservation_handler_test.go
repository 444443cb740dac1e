package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrianburcea94/tennis-courts-v1/internal/domain"
	"github.com/adrianburcea94/tennis-courts-v1/internal/pkg/apperr"
	"github.com/adrianburcea94/tennis-courts-v1/internal/repository"
	"github.com/adrianburcea94/tennis-courts-v1/internal/service"
)

type memStore struct {
	reservations map[string]*domain.Reservation
	seq          int
}

func (m *memStore) CreateIfSlotFree(_ context.Context, r *domain.Reservation) error {
	for _, existing := range m.reservations {
		if existing.ScheduleID == r.ScheduleID && existing.Status == domain.StatusReadyToPlay {
			return repository.ErrSlotTaken
		}
	}
	m.seq++
	r.ID = fmt.Sprintf("res-%d", m.seq)
	clone := *r
	m.reservations[r.ID] = &clone
	return nil
}

func (m *memStore) ByID(_ context.Context, id string) (*domain.Reservation, error) {
	r, ok := m.reservations[id]
	if !ok {
		return nil, apperr.NotFound("Reservation not found.")
	}
	clone := *r
	return &clone, nil
}

func (m *memStore) Save(_ context.Context, r *domain.Reservation) error {
	clone := *r
	m.reservations[r.ID] = &clone
	return nil
}

func (m *memStore) AllStartingAtOrBefore(_ context.Context, _ time.Time) ([]domain.Reservation, error) {
	return nil, nil
}

type memGuests map[string]*domain.Guest

func (m memGuests) ByID(_ context.Context, id string) (*domain.Guest, error) {
	if g, ok := m[id]; ok {
		return g, nil
	}
	return nil, apperr.NotFound("Guest not found.")
}

type memSchedules map[string]*domain.Schedule

func (m memSchedules) ByID(_ context.Context, id string) (*domain.Schedule, error) {
	if s, ok := m[id]; ok {
		return s, nil
	}
	return nil, apperr.NotFound("Schedule not found.")
}

type memCourts map[string]*domain.TennisCourt

func (m memCourts) ByID(_ context.Context, id string) (*domain.TennisCourt, error) {
	if c, ok := m[id]; ok {
		return c, nil
	}
	return nil, apperr.NotFound("Tennis Court not found.")
}

type memPublisher struct{}

func (memPublisher) PublishJSON(context.Context, string, any) error { return nil }

// newTestRouter mounts the reservation routes over an engine backed by
// in-memory collaborators: one guest and one slot 25h out.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	start := time.Now().Add(25 * time.Hour)
	svc := service.NewReservationSvc(
		&memStore{reservations: map[string]*domain.Reservation{}},
		memGuests{"guest-1": {ID: "guest-1", Name: "Serena"}},
		memSchedules{"sched-1": {
			ID:            "sched-1",
			CourtID:       "court-1",
			StartDateTime: start,
			EndDateTime:   start.Add(domain.PlayTime),
		}},
		memCourts{"court-1": {ID: "court-1", Name: "Court One"}},
		memPublisher{},
		zerolog.Nop(),
	)

	h := NewReservationHandler(svc)
	r := gin.New()
	r.POST("/reservations", h.Book)
	r.GET("/reservations/history", h.History)
	r.GET("/reservations/:id", h.Find)
	r.PUT("/reservations/:id/cancel", h.Cancel)
	r.PUT("/reservations/:id", h.Reschedule)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookEndpoint_Created(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/reservations", `{"guestId":"guest-1","scheduleId":"sched-1"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var body domain.Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, domain.StatusReadyToPlay, body.Status)
	assert.Equal(t, "/reservations/"+body.ID, w.Header().Get("Location"))
}

func TestBookEndpoint_MissingField(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/reservations", `{"guestId":"guest-1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookEndpoint_Conflict(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/reservations", `{"guestId":"guest-1","scheduleId":"sched-1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/reservations", `{"guestId":"guest-1","scheduleId":"sched-1"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Court One")
}

func TestBookEndpoint_UnknownGuest(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/reservations", `{"guestId":"nobody","scheduleId":"sched-1"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFindEndpoint_NotFound(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/reservations/res-404", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelEndpoint_RefundsDeposit(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/reservations", `{"guestId":"guest-1","scheduleId":"sched-1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var booked domain.Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booked))

	w = doJSON(r, http.MethodPut, "/reservations/"+booked.ID+"/cancel", "")
	require.Equal(t, http.StatusOK, w.Code)

	var cancelled domain.Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cancelled))
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	assert.True(t, cancelled.RefundValue.Equal(service.Deposit))
	assert.True(t, cancelled.Value.IsZero())
}

func TestRescheduleEndpoint_EmptyTarget(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/reservations", `{"guestId":"guest-1","scheduleId":"sched-1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var booked domain.Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booked))

	w = doJSON(r, http.MethodPut, "/reservations/"+booked.ID, `{"scheduleId":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cannot be null")
}

func TestHistoryEndpoint_OK(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/reservations/history", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
