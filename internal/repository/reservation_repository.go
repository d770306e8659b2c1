package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/restaurant-reservation/internal/model"
	"github.com/iliyamo/restaurant-reservation/internal/validate"
)

// reservationCols lists the selected columns in scan order.
const reservationCols = "id, name, email, phone, reservation_date, reservation_time, guests, special_requests, status, created_at, updated_at"

// ReservationRepo persists table bookings in the `reservations`
// table.  The insert path deliberately never mentions the status or
// timestamp columns; the database defaults apply (`confirmed`, NOW).
type ReservationRepo struct{ DB *sql.DB }

func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{DB: db} }

// scanReservation reads one row into a model.Reservation.  The TIME
// column arrives as text ("19:00:00"); DATE becomes time.Time via
// parseTime on the DSN.
func scanReservation(scanner interface{ Scan(...any) error }) (model.Reservation, error) {
	var r model.Reservation
	var special sql.NullString
	err := scanner.Scan(
		&r.ID, &r.Name, &r.Email, &r.Phone, &r.Date, &r.Time,
		&r.Guests, &special, &r.Status, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return model.Reservation{}, err
	}
	r.SpecialRequests = special.String
	return r, nil
}

// Create inserts a validated booking and returns the persisted row,
// now carrying the id, default status and timestamps assigned by the
// database.  Exactly the validated fields are written.
func (r *ReservationRepo) Create(ctx context.Context, data validate.CreateReservationData) (model.Reservation, error) {
	var special any
	if data.SpecialRequests != "" {
		special = data.SpecialRequests
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO reservations (name, email, phone, reservation_date, reservation_time, guests, special_requests) VALUES (?,?,?,?,?,?,?)",
		data.Name, data.Email, data.Phone, data.Date.Format("2006-01-02"), data.Time, data.Guests, special)
	if err != nil {
		return model.Reservation{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Reservation{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

// GetByID fetches one reservation or ErrNotFound.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (model.Reservation, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+reservationCols+" FROM reservations WHERE id=? LIMIT 1", id)
	rec, err := scanReservation(row)
	if err == sql.ErrNoRows {
		return model.Reservation{}, ErrNotFound
	}
	return rec, err
}

// List returns reservations newest first.  status and date are
// optional filters; empty strings mean "all".  date is a calendar
// day in YYYY-MM-DD form.
func (r *ReservationRepo) List(ctx context.Context, status, date string) ([]model.Reservation, error) {
	q := "SELECT " + reservationCols + " FROM reservations"
	var conds []string
	var args []any
	if status != "" {
		conds = append(conds, "status=?")
		args = append(args, status)
	}
	if date != "" {
		conds = append(conds, "reservation_date=?")
		args = append(args, date)
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at DESC, id DESC"

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Reservation, 0)
	for rows.Next() {
		rec, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// UpdateStatus sets the status of one reservation and returns the
// updated row.  The caller is responsible for passing one of the
// enumerated status values.
func (r *ReservationRepo) UpdateStatus(ctx context.Context, id uint64, status string) (model.Reservation, error) {
	if _, err := r.DB.ExecContext(ctx,
		"UPDATE reservations SET status=? WHERE id=?", status, id); err != nil {
		return model.Reservation{}, err
	}
	// RowsAffected is 0 both for a missing id and a no-op update,
	// so the lookup decides between the row and ErrNotFound.
	return r.GetByID(ctx, id)
}

// Delete removes a reservation, returning ErrNotFound when the id
// matched nothing.
func (r *ReservationRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM reservations WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
