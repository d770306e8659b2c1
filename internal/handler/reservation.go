package handler

import (
    "context"
    "log"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/restaurant-reservation/internal/model"
    "github.com/iliyamo/restaurant-reservation/internal/queue"
    "github.com/iliyamo/restaurant-reservation/internal/validate"
)

// ReservationCreator is the slice of the reservation store the
// public submission flow needs: one insert per validated form.
type ReservationCreator interface {
    Create(ctx context.Context, data validate.CreateReservationData) (model.Reservation, error)
}

// EventPublisher sends a reservation.created event to the broker.
// Publishing is best effort; a broker outage must never fail the
// guest's booking.
type EventPublisher func(ctx context.Context, ev queue.ReservationCreatedEvent) error

// ReservationHandler serves the public table-booking endpoint.  No
// authentication is involved: guests book without an account.
type ReservationHandler struct {
    Store   ReservationCreator
    Publish EventPublisher // may be nil when no broker is configured
    Now     func() time.Time
}

// NewReservationHandler constructs the public reservation handler.
func NewReservationHandler(store ReservationCreator, publish EventPublisher) *ReservationHandler {
    if store == nil {
        panic("nil store passed to NewReservationHandler")
    }
    return &ReservationHandler{Store: store, Publish: publish, Now: time.Now}
}

// Create handles POST /v1/reservations.  The flow is strict:
// validate first and, on any field error, reply 422 with the full
// error map before any database work happens.  A valid form results
// in exactly one insert; the row comes back with the id, default
// status and timestamps the database assigned.  Database failures
// are logged with detail but the guest only ever sees a generic
// message.
func (h *ReservationHandler) Create(c echo.Context) error {
    var form validate.ReservationForm
    if err := c.Bind(&form); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }

    data, fieldErrs := validate.Reservation(form, h.Now())
    if fieldErrs != nil {
        return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": fieldErrs})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    rec, err := h.Store.Create(ctx, data)
    if err != nil {
        log.Printf("reservation: create failed: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "something went wrong, please try again"})
    }

    if h.Publish != nil {
        ev := queue.ReservationCreatedEvent{
            ReservationID:   rec.ID,
            Name:            rec.Name,
            Email:           rec.Email,
            Phone:           rec.Phone,
            Date:            rec.Date.Format("2006-01-02"),
            Time:            rec.Time,
            Guests:          rec.Guests,
            SpecialRequests: rec.SpecialRequests,
            CreatedAt:       rec.CreatedAt.UTC().Format(time.RFC3339),
        }
        // Detached from the request: the response must not wait on
        // the broker, and the publisher logs its own failures.
        go func() {
            ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
            defer cancel()
            _ = h.Publish(ctx, ev)
        }()
    }

    return c.JSON(http.StatusCreated, echo.Map{"reservation": rec})
}
