package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-reservation/internal/model"
	"github.com/iliyamo/restaurant-reservation/internal/queue"
	"github.com/iliyamo/restaurant-reservation/internal/validate"
)

// createStub records the single insert the submission flow is
// allowed to make.
type createStub struct {
	calls int
	got   validate.CreateReservationData
	rec   model.Reservation
	err   error
}

func (s *createStub) Create(ctx context.Context, data validate.CreateReservationData) (model.Reservation, error) {
	s.calls++
	s.got = data
	if s.err != nil {
		return model.Reservation{}, s.err
	}
	return s.rec, nil
}

func postReservation(t *testing.T, h *ReservationHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

const aliceBody = `{"name":"Alice","email":"alice@example.com","phone":"0102030405","date":"2099-01-01","time":"19:00","guests":"2","special_requests":""}`

func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 18, 30, 0, 0, time.Local)
}

func TestReservationCreateSuccess(t *testing.T) {
	stub := &createStub{rec: model.Reservation{
		ID:     10,
		Name:   "Alice",
		Email:  "alice@example.com",
		Phone:  "0102030405",
		Date:   time.Date(2099, 1, 1, 0, 0, 0, 0, time.Local),
		Time:   "19:00:00",
		Guests: 2,
		Status: model.StatusConfirmed,
	}}
	h := NewReservationHandler(stub, nil)
	h.Now = fixedNow

	rec := postReservation(t, h, aliceBody)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	if stub.calls != 1 {
		t.Fatalf("store called %d times, want exactly 1", stub.calls)
	}

	// Exactly the validated fields reach the store: no id, status or
	// timestamps exist on the payload type at all.
	want := validate.CreateReservationData{
		Name:   "Alice",
		Email:  "alice@example.com",
		Phone:  "0102030405",
		Date:   time.Date(2099, 1, 1, 0, 0, 0, 0, time.Local),
		Time:   "19:00:00",
		Guests: 2,
	}
	if stub.got != want {
		t.Errorf("store received %+v, want %+v", stub.got, want)
	}

	var resp struct {
		Reservation model.Reservation `json:"reservation"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Reservation.ID != 10 || resp.Reservation.Status != model.StatusConfirmed {
		t.Errorf("response reservation = %+v, want persisted row with id and default status", resp.Reservation)
	}
}

func TestReservationCreateInvalidEmail(t *testing.T) {
	stub := &createStub{}
	h := NewReservationHandler(stub, nil)
	h.Now = fixedNow

	body := strings.Replace(aliceBody, "alice@example.com", "not-an-email", 1)
	rec := postReservation(t, h, body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if stub.calls != 0 {
		t.Errorf("store called %d times on invalid form, want 0", stub.calls)
	}
	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Errors["email"] == "" {
		t.Errorf("errors = %v, want an email entry", resp.Errors)
	}
}

func TestReservationCreateEmptyForm(t *testing.T) {
	stub := &createStub{}
	h := NewReservationHandler(stub, nil)
	h.Now = fixedNow

	rec := postReservation(t, h, `{}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if stub.calls != 0 {
		t.Errorf("store called %d times on empty form, want 0", stub.calls)
	}
	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	for _, field := range []string{"name", "email", "phone", "date", "time", "guests"} {
		if resp.Errors[field] == "" {
			t.Errorf("missing %q in error map %v", field, resp.Errors)
		}
	}
}

// A database failure is logged server-side; the guest sees only the
// generic message, never the raw error.
func TestReservationCreateStoreFailure(t *testing.T) {
	stub := &createStub{err: errors.New("dial tcp 10.0.0.5:3306: connection refused")}
	h := NewReservationHandler(stub, nil)
	h.Now = fixedNow

	rec := postReservation(t, h, aliceBody)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "connection refused") {
		t.Errorf("internal error leaked to the client: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "something went wrong") {
		t.Errorf("missing generic message in %s", rec.Body.String())
	}
}

func TestReservationCreatePublishesEvent(t *testing.T) {
	stub := &createStub{rec: model.Reservation{ID: 11, Name: "Alice", Guests: 2}}
	published := make(chan queue.ReservationCreatedEvent, 1)
	h := NewReservationHandler(stub, func(ctx context.Context, ev queue.ReservationCreatedEvent) error {
		published <- ev
		return nil
	})
	h.Now = fixedNow

	if rec := postReservation(t, h, aliceBody); rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	select {
	case ev := <-published:
		if ev.ReservationID != 11 {
			t.Errorf("event reservation id = %d, want 11", ev.ReservationID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event published within 2s")
	}
}

// The broker being down must never fail a booking.
func TestReservationCreatePublishErrorIgnored(t *testing.T) {
	stub := &createStub{rec: model.Reservation{ID: 12}}
	h := NewReservationHandler(stub, func(ctx context.Context, ev queue.ReservationCreatedEvent) error {
		return errors.New("broker unreachable")
	})
	h.Now = fixedNow

	if rec := postReservation(t, h, aliceBody); rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201 despite publish failure", rec.Code)
	}
}
