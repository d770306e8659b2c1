package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-reservation/internal/utils"
)

const (
	testSecret = "gate-test-secret"
	loginPath  = "/admin/login"
)

// runGate sends one request through SessionGate and reports whether
// the protected handler ran.
func runGate(t *testing.T, authHeader string, check SessionCheck) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/reservations", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	h := SessionGate(testSecret, loginPath, check)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("gate handler returned error: %v", err)
	}
	return rec, reached
}

func bearer(t *testing.T, secret, role string, userID uint64) string {
	t.Helper()
	at, err := utils.NewAccessToken(secret, userID, role, 5)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return "Bearer " + at.Token
}

func TestSessionGateMissingToken(t *testing.T) {
	rec, reached := runGate(t, "", nil)
	if reached {
		t.Error("protected handler ran without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != loginPath {
		t.Errorf("Location = %q, want %q", got, loginPath)
	}
}

func TestSessionGateGarbageToken(t *testing.T) {
	rec, reached := runGate(t, "Bearer not.a.jwt", nil)
	if reached {
		t.Error("protected handler ran with a garbage token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSessionGateWrongSecret(t *testing.T) {
	rec, reached := runGate(t, bearer(t, "other-secret", "ADMIN", 1), nil)
	if reached {
		t.Error("protected handler ran with a foreign-signed token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSessionGateValidToken(t *testing.T) {
	rec, reached := runGate(t, bearer(t, testSecret, "ADMIN", 7), nil)
	if !reached {
		t.Fatal("protected handler did not run with a valid token")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestSessionGateCheckRejects(t *testing.T) {
	check := func(ctx context.Context, userID uint64) error {
		return errors.New("account disabled")
	}
	rec, reached := runGate(t, bearer(t, testSecret, "ADMIN", 7), check)
	if reached {
		t.Error("protected handler ran for a rejected session")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

// A session check that never resolves within its deadline must read
// as unauthenticated, not as an open gate.
func TestSessionGateCheckStalls(t *testing.T) {
	check := func(ctx context.Context, userID uint64) error {
		return context.DeadlineExceeded
	}
	rec, reached := runGate(t, bearer(t, testSecret, "ADMIN", 7), check)
	if reached {
		t.Error("protected handler ran despite a stalled session check")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSessionGateCheckReceivesSubject(t *testing.T) {
	var got uint64
	check := func(ctx context.Context, userID uint64) error {
		got = userID
		return nil
	}
	if _, reached := runGate(t, bearer(t, testSecret, "ADMIN", 99), check); !reached {
		t.Fatal("protected handler did not run")
	}
	if got != 99 {
		t.Errorf("session check saw user %d, want 99", got)
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	cases := []struct {
		role any
		want int
	}{
		{"ADMIN", http.StatusOK},
		{"CUSTOMER", http.StatusForbidden},
		{nil, http.StatusForbidden},
		{42, http.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if tc.role != nil {
			c.Set("role", tc.role)
		}
		h := RequireRole("ADMIN")(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		if err := h(c); err != nil {
			t.Fatalf("role middleware error: %v", err)
		}
		if rec.Code != tc.want {
			t.Errorf("role %v: status = %d, want %d", tc.role, rec.Code, tc.want)
		}
	}
}
