package model

import "time"

// Reservation status values as stored in the `reservations.status`
// column.  New rows default to StatusConfirmed; the admin panel may
// later move a reservation to cancelled or completed.
const (
    StatusConfirmed = "confirmed" // booking is active
    StatusCancelled = "cancelled" // booking was withdrawn
    StatusCompleted = "completed" // party was seated and served
)

// ValidStatus reports whether s is one of the three allowed
// reservation statuses.
func ValidStatus(s string) bool {
    switch s {
    case StatusConfirmed, StatusCancelled, StatusCompleted:
        return true
    }
    return false
}

// Reservation records one table-booking request as stored in the
// `reservations` table.  The identifier, status and timestamps are
// assigned by the database; the public submission flow only ever
// provides the guest-entered fields.
//
// Fields:
//  ID              – primary key identifier.
//  Name            – name the booking is under.
//  Email           – contact email address.
//  Phone           – contact phone number.
//  Date            – calendar date of the booking (DATE column).
//  Time            – time of day in "HH:MM:SS" form (TIME column).
//  Guests          – party size, always >= 1.
//  SpecialRequests – optional free-text guest notes.
//  Status          – one of confirmed, cancelled, completed.
//  CreatedAt       – creation timestamp.
//  UpdatedAt       – last update timestamp.
type Reservation struct {
    ID              uint64    `json:"id"`               // reservations.id
    Name            string    `json:"name"`             // reservations.name
    Email           string    `json:"email"`            // reservations.email
    Phone           string    `json:"phone"`            // reservations.phone
    Date            time.Time `json:"date"`             // reservations.reservation_date
    Time            string    `json:"time"`             // reservations.reservation_time
    Guests          int       `json:"guests"`           // reservations.guests
    SpecialRequests string    `json:"special_requests"` // reservations.special_requests
    Status          string    `json:"status"`           // reservations.status
    CreatedAt       time.Time `json:"created_at"`       // reservations.created_at
    UpdatedAt       time.Time `json:"updated_at"`       // reservations.updated_at
}
