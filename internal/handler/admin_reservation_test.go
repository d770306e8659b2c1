package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-reservation/internal/model"
	"github.com/iliyamo/restaurant-reservation/internal/repository"
)

// reservationStoreStub backs the admin handler tests with canned
// rows keyed by id.
type reservationStoreStub struct {
	rows        map[uint64]model.Reservation
	updateCalls int
	listStatus  string
	listDate    string
}

func (s *reservationStoreStub) GetByID(ctx context.Context, id uint64) (model.Reservation, error) {
	r, ok := s.rows[id]
	if !ok {
		return model.Reservation{}, repository.ErrNotFound
	}
	return r, nil
}

func (s *reservationStoreStub) List(ctx context.Context, status, date string) ([]model.Reservation, error) {
	s.listStatus, s.listDate = status, date
	out := make([]model.Reservation, 0, len(s.rows))
	for _, r := range s.rows {
		out = append(out, r)
	}
	return out, nil
}

func (s *reservationStoreStub) UpdateStatus(ctx context.Context, id uint64, status string) (model.Reservation, error) {
	s.updateCalls++
	r, ok := s.rows[id]
	if !ok {
		return model.Reservation{}, repository.ErrNotFound
	}
	r.Status = status
	s.rows[id] = r
	return r, nil
}

func (s *reservationStoreStub) Delete(ctx context.Context, id uint64) error {
	if _, ok := s.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func adminRequest(t *testing.T, h func(echo.Context) error, method, target, body string, pathParam string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if pathParam != "" {
		c.SetParamNames("id")
		c.SetParamValues(pathParam)
	}
	if err := h(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func seededStub() *reservationStoreStub {
	return &reservationStoreStub{rows: map[uint64]model.Reservation{
		1: {ID: 1, Name: "Alice", Status: model.StatusConfirmed, Date: time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)},
		2: {ID: 2, Name: "Bob", Status: model.StatusCancelled, Date: time.Date(2099, 1, 2, 0, 0, 0, 0, time.UTC)},
	}}
}

func TestAdminListReservations(t *testing.T) {
	stub := seededStub()
	h := NewAdminReservationHandler(stub)

	rec := adminRequest(t, h.List, http.MethodGet, "/v1/admin/reservations?status=confirmed&date=2099-01-01", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if stub.listStatus != "confirmed" || stub.listDate != "2099-01-01" {
		t.Errorf("filters passed = (%q, %q), want (confirmed, 2099-01-01)", stub.listStatus, stub.listDate)
	}
}

func TestAdminListReservationsBadFilters(t *testing.T) {
	h := NewAdminReservationHandler(seededStub())

	rec := adminRequest(t, h.List, http.MethodGet, "/v1/admin/reservations?status=parked", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown status filter: status = %d, want 400", rec.Code)
	}
	rec = adminRequest(t, h.List, http.MethodGet, "/v1/admin/reservations?date=tomorrow", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad date filter: status = %d, want 400", rec.Code)
	}
}

func TestAdminGetReservation(t *testing.T) {
	h := NewAdminReservationHandler(seededStub())

	rec := adminRequest(t, h.Get, http.MethodGet, "/v1/admin/reservations/1", "", "1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Reservation model.Reservation `json:"reservation"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Reservation.Name != "Alice" {
		t.Errorf("name = %q, want Alice", resp.Reservation.Name)
	}

	rec = adminRequest(t, h.Get, http.MethodGet, "/v1/admin/reservations/99", "", "99")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing id: status = %d, want 404", rec.Code)
	}
	rec = adminRequest(t, h.Get, http.MethodGet, "/v1/admin/reservations/abc", "", "abc")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad id: status = %d, want 400", rec.Code)
	}
}

func TestAdminUpdateStatus(t *testing.T) {
	stub := seededStub()
	h := NewAdminReservationHandler(stub)

	rec := adminRequest(t, h.UpdateStatus, http.MethodPatch, "/v1/admin/reservations/1/status", `{"status":"completed"}`, "1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	if stub.rows[1].Status != model.StatusCompleted {
		t.Errorf("row status = %q, want completed", stub.rows[1].Status)
	}
}

// An unknown status value is a validation error and the row stays
// untouched.
func TestAdminUpdateStatusUnknownValue(t *testing.T) {
	stub := seededStub()
	h := NewAdminReservationHandler(stub)

	rec := adminRequest(t, h.UpdateStatus, http.MethodPatch, "/v1/admin/reservations/1/status", `{"status":"waiting"}`, "1")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if stub.updateCalls != 0 {
		t.Errorf("store updated %d times for invalid status, want 0", stub.updateCalls)
	}
	if stub.rows[1].Status != model.StatusConfirmed {
		t.Errorf("row status = %q, want unchanged confirmed", stub.rows[1].Status)
	}
}

func TestAdminDeleteReservation(t *testing.T) {
	stub := seededStub()
	h := NewAdminReservationHandler(stub)

	rec := adminRequest(t, h.Delete, http.MethodDelete, "/v1/admin/reservations/2", "", "2")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if _, ok := stub.rows[2]; ok {
		t.Error("row 2 still present after delete")
	}

	rec = adminRequest(t, h.Delete, http.MethodDelete, "/v1/admin/reservations/2", "", "2")
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want 404", rec.Code)
	}
}
