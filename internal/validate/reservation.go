// Package validate holds the pure form-validation layer for the
// public reservation flow.  Nothing in here touches the database or
// the network: a raw form either becomes a CreateReservationData
// value or a complete map of field errors, so the caller can light
// up every invalid field at once instead of only the first one.
package validate

import (
    "regexp"
    "strconv"
    "strings"
    "time"
)

// MaxGuests caps the party size accepted through the public form.
// Larger parties have to call the restaurant so staff can plan
// seating; the admin panel has no table-assignment model to absorb
// unbounded groups.
const MaxGuests = 20

// emailRe matches local@domain with at least one dot in the domain.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ReservationForm is the raw user input exactly as it arrives from
// the website: every field is a string, nothing is trusted.
type ReservationForm struct {
    Name            string `json:"name" form:"name"`
    Email           string `json:"email" form:"email"`
    Phone           string `json:"phone" form:"phone"`
    Date            string `json:"date" form:"date"`   // YYYY-MM-DD
    Time            string `json:"time" form:"time"`   // HH:MM
    Guests          string `json:"guests" form:"guests"`
    SpecialRequests string `json:"special_requests" form:"special_requests"`
}

// CreateReservationData is a reservation payload that passed every
// field check and is safe to persist.  It deliberately has no id,
// status or timestamp fields: those are assigned by the database and
// can never be set from the submission path.
type CreateReservationData struct {
    Name            string
    Email           string
    Phone           string
    Date            time.Time // calendar date, midnight local
    Time            string    // normalized "HH:MM:SS"
    Guests          int
    SpecialRequests string
}

// FieldErrors maps a form field name to a human-readable message.
type FieldErrors map[string]string

// Reservation validates a raw form against the booking rules.  It is
// a pure function: the same input always yields the same output.  On
// success it returns the typed record and a nil error map; on any
// failure the record is the zero value and the map contains an entry
// for every invalid field.  The now parameter supplies "today" for
// the date check so callers and tests control the clock.
func Reservation(f ReservationForm, now time.Time) (CreateReservationData, FieldErrors) {
    errs := FieldErrors{}

    name := strings.TrimSpace(f.Name)
    if name == "" {
        errs["name"] = "name is required"
    }

    email := strings.ToLower(strings.TrimSpace(f.Email))
    if email == "" {
        errs["email"] = "email is required"
    } else if !emailRe.MatchString(email) {
        errs["email"] = "email is not a valid address"
    }

    phone := strings.TrimSpace(f.Phone)
    if phone == "" {
        errs["phone"] = "phone is required"
    }

    var date time.Time
    if s := strings.TrimSpace(f.Date); s == "" {
        errs["date"] = "date is required"
    } else if d, err := time.ParseInLocation("2006-01-02", s, now.Location()); err != nil {
        errs["date"] = "date must be in YYYY-MM-DD form"
    } else {
        // Compare calendar dates, not instants: a booking for today
        // is valid no matter the current wall-clock time.
        today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
        if d.Before(today) {
            errs["date"] = "date must not be in the past"
        } else {
            date = d
        }
    }

    var clock string
    if s := strings.TrimSpace(f.Time); s == "" {
        errs["time"] = "time is required"
    } else if t, err := time.Parse("15:04", s); err != nil {
        errs["time"] = "time must be in HH:MM form"
    } else {
        clock = t.Format("15:04:05")
    }

    var guests int
    if s := strings.TrimSpace(f.Guests); s == "" {
        errs["guests"] = "guest count is required"
    } else if n, err := strconv.Atoi(s); err != nil || n < 1 {
        errs["guests"] = "guest count must be a number of at least 1"
    } else if n > MaxGuests {
        errs["guests"] = "guest count must be at most " + strconv.Itoa(MaxGuests)
    } else {
        guests = n
    }

    if len(errs) > 0 {
        return CreateReservationData{}, errs
    }
    return CreateReservationData{
        Name:            name,
        Email:           email,
        Phone:           phone,
        Date:            date,
        Time:            clock,
        Guests:          guests,
        SpecialRequests: strings.TrimSpace(f.SpecialRequests),
    }, nil
}
