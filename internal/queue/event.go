// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationCreatedEvent is published when a table booking is
// successfully persisted.  It carries enough for downstream
// consumers (notification log, front-of-house tooling) to act
// without querying the primary database.
type ReservationCreatedEvent struct {
    ReservationID   uint64 `json:"reservation_id"`
    Name            string `json:"name"`
    Email           string `json:"email"`
    Phone           string `json:"phone"`
    Date            string `json:"date"`  // YYYY-MM-DD
    Time            string `json:"time"`  // HH:MM:SS
    Guests          int    `json:"guests"`
    SpecialRequests string `json:"special_requests,omitempty"`
    CreatedAt       string `json:"created_at"` // RFC3339
}
