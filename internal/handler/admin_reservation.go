package handler

import (
    "context"
    "errors"
    "log"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/restaurant-reservation/internal/model"
    "github.com/iliyamo/restaurant-reservation/internal/repository"
)

// ReservationStore is the full reservation surface the admin panel
// manages.  The public flow gets only the Create slice; mutation
// after creation is admin territory.
type ReservationStore interface {
    GetByID(ctx context.Context, id uint64) (model.Reservation, error)
    List(ctx context.Context, status, date string) ([]model.Reservation, error)
    UpdateStatus(ctx context.Context, id uint64, status string) (model.Reservation, error)
    Delete(ctx context.Context, id uint64) error
}

// AdminReservationHandler bundles the store behind the gated
// reservation-management endpoints.  SessionGate and RequireRole
// have already run by the time any method executes.
type AdminReservationHandler struct {
    Store ReservationStore
}

func NewAdminReservationHandler(store ReservationStore) *AdminReservationHandler {
    if store == nil {
        panic("nil store passed to NewAdminReservationHandler")
    }
    return &AdminReservationHandler{Store: store}
}

// List handles GET /v1/admin/reservations.  Optional query filters:
// ?status=confirmed|cancelled|completed and ?date=YYYY-MM-DD.
func (h *AdminReservationHandler) List(c echo.Context) error {
    status := strings.TrimSpace(c.QueryParam("status"))
    if status != "" && !model.ValidStatus(status) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status filter"})
    }
    date := strings.TrimSpace(c.QueryParam("date"))
    if date != "" {
        if _, err := time.Parse("2006-01-02", date); err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "date filter must be YYYY-MM-DD"})
        }
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    items, err := h.Store.List(ctx, status, date)
    if err != nil {
        log.Printf("admin: list reservations failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservations"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/admin/reservations/:id.
func (h *AdminReservationHandler) Get(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    rec, err := h.Store.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        }
        log.Printf("admin: get reservation %d failed: %v", id, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load reservation"})
    }
    return c.JSON(http.StatusOK, echo.Map{"reservation": rec})
}

// UpdateStatus handles PATCH /v1/admin/reservations/:id/status with
// a JSON body {"status": "confirmed|cancelled|completed"}.  Any
// other value is a validation error; transitions between the three
// states are otherwise unrestricted.
func (h *AdminReservationHandler) UpdateStatus(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    var body struct {
        Status string `json:"status"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    status := strings.ToLower(strings.TrimSpace(body.Status))
    if !model.ValidStatus(status) {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be confirmed, cancelled or completed"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    rec, err := h.Store.UpdateStatus(ctx, id, status)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        }
        log.Printf("admin: update reservation %d status failed: %v", id, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update reservation"})
    }
    return c.JSON(http.StatusOK, echo.Map{"reservation": rec})
}

// Delete handles DELETE /v1/admin/reservations/:id.
func (h *AdminReservationHandler) Delete(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Store.Delete(ctx, id); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        }
        log.Printf("admin: delete reservation %d failed: %v", id, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to delete reservation"})
    }
    return c.NoContent(http.StatusNoContent)
}
