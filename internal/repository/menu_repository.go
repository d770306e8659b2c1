package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/restaurant-reservation/internal/model"
)

const menuItemCols = "id, name, description, price_cents, category, image_path, is_available, created_at, updated_at"
const addOnCols = "id, name, price_cents, image_path, created_at, updated_at"

// MenuRepo persists menu items and add-ons.  Both tables are simple
// admin-maintained content; the public site only ever reads them.
type MenuRepo struct{ DB *sql.DB }

func NewMenuRepo(db *sql.DB) *MenuRepo { return &MenuRepo{DB: db} }

func scanMenuItem(scanner interface{ Scan(...any) error }) (model.MenuItem, error) {
	var m model.MenuItem
	var desc, img sql.NullString
	err := scanner.Scan(&m.ID, &m.Name, &desc, &m.PriceCents, &m.Category,
		&img, &m.IsAvailable, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return model.MenuItem{}, err
	}
	m.Description = desc.String
	m.ImagePath = img.String
	return m, nil
}

// CreateItem inserts a menu item and returns the persisted row.
func (r *MenuRepo) CreateItem(ctx context.Context, m model.MenuItem) (model.MenuItem, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO menu_items (name, description, price_cents, category, image_path, is_available) VALUES (?,?,?,?,?,?)",
		m.Name, m.Description, m.PriceCents, m.Category, m.ImagePath, m.IsAvailable)
	if err != nil {
		return model.MenuItem{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.MenuItem{}, err
	}
	return r.GetItem(ctx, uint64(id))
}

// GetItem fetches one menu item or ErrNotFound.
func (r *MenuRepo) GetItem(ctx context.Context, id uint64) (model.MenuItem, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+menuItemCols+" FROM menu_items WHERE id=? LIMIT 1", id)
	m, err := scanMenuItem(row)
	if err == sql.ErrNoRows {
		return model.MenuItem{}, ErrNotFound
	}
	return m, err
}

// ListItems returns menu items ordered by category then name.  When
// availableOnly is set, unavailable dishes are filtered out (the
// public menu); the admin panel lists everything.
func (r *MenuRepo) ListItems(ctx context.Context, availableOnly bool) ([]model.MenuItem, error) {
	q := "SELECT " + menuItemCols + " FROM menu_items"
	if availableOnly {
		q += " WHERE is_available=1"
	}
	q += " ORDER BY category, name"
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.MenuItem, 0)
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// UpdateItem overwrites the editable fields of a menu item and
// returns the updated row.
func (r *MenuRepo) UpdateItem(ctx context.Context, m model.MenuItem) (model.MenuItem, error) {
	if _, err := r.DB.ExecContext(ctx,
		"UPDATE menu_items SET name=?, description=?, price_cents=?, category=?, image_path=?, is_available=? WHERE id=?",
		m.Name, m.Description, m.PriceCents, m.Category, m.ImagePath, m.IsAvailable, m.ID); err != nil {
		return model.MenuItem{}, err
	}
	// RowsAffected is 0 both for a missing row and a no-op update;
	// the lookup settles it.
	return r.GetItem(ctx, m.ID)
}

// DeleteItem removes a menu item.
func (r *MenuRepo) DeleteItem(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM menu_items WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanAddOn(scanner interface{ Scan(...any) error }) (model.AddOn, error) {
	var a model.AddOn
	var img sql.NullString
	err := scanner.Scan(&a.ID, &a.Name, &a.PriceCents, &img, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return model.AddOn{}, err
	}
	a.ImagePath = img.String
	return a, nil
}

// CreateAddOn inserts an add-on and returns the persisted row.
func (r *MenuRepo) CreateAddOn(ctx context.Context, a model.AddOn) (model.AddOn, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO add_ons (name, price_cents, image_path) VALUES (?,?,?)",
		a.Name, a.PriceCents, a.ImagePath)
	if err != nil {
		return model.AddOn{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.AddOn{}, err
	}
	return r.GetAddOn(ctx, uint64(id))
}

// GetAddOn fetches one add-on or ErrNotFound.
func (r *MenuRepo) GetAddOn(ctx context.Context, id uint64) (model.AddOn, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+addOnCols+" FROM add_ons WHERE id=? LIMIT 1", id)
	a, err := scanAddOn(row)
	if err == sql.ErrNoRows {
		return model.AddOn{}, ErrNotFound
	}
	return a, err
}

// ListAddOns returns every add-on ordered by name.
func (r *MenuRepo) ListAddOns(ctx context.Context) ([]model.AddOn, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+addOnCols+" FROM add_ons ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.AddOn, 0)
	for rows.Next() {
		a, err := scanAddOn(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// UpdateAddOn overwrites the editable fields of an add-on.
func (r *MenuRepo) UpdateAddOn(ctx context.Context, a model.AddOn) (model.AddOn, error) {
	if _, err := r.DB.ExecContext(ctx,
		"UPDATE add_ons SET name=?, price_cents=?, image_path=? WHERE id=?",
		a.Name, a.PriceCents, a.ImagePath, a.ID); err != nil {
		return model.AddOn{}, err
	}
	return r.GetAddOn(ctx, a.ID)
}

// DeleteAddOn removes an add-on.
func (r *MenuRepo) DeleteAddOn(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM add_ons WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return ErrNotFound
	}
	return nil
}
