package repository

// This file defines the Equipment repository backed by the 'equipment'
// table.  Equipment rows are edited only by admins and are never linked to
// bookings by foreign key; bookings carry equipment names instead.

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used for sentinel comparisons
	"strings"

	"github.com/iliyamo/studio-booking/internal/model"
)

// EquipmentRepo encapsulates all database queries related to equipment.
type EquipmentRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewEquipmentRepo constructs an EquipmentRepo with the provided DB handle.
func NewEquipmentRepo(db *sql.DB) *EquipmentRepo {
	return &EquipmentRepo{db: db}
}

// List returns every equipment row ordered by id.
func (r *EquipmentRepo) List(ctx context.Context) ([]*model.Equipment, error) {
	const q = `SELECT id, name, quantity, available FROM equipment ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Equipment{}
	for rows.Next() {
		e := new(model.Equipment)
		if err := rows.Scan(&e.ID, &e.Name, &e.Quantity, &e.Available); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches a single equipment row.  It returns ErrNotFound if no row
// matches.
func (r *EquipmentRepo) GetByID(ctx context.Context, id uint64) (*model.Equipment, error) {
	const q = "SELECT id, name, quantity, available FROM equipment WHERE id = ?"
	var e model.Equipment
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&e.ID, &e.Name, &e.Quantity, &e.Available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Create inserts a new equipment row and populates its ID.
func (r *EquipmentRepo) Create(ctx context.Context, e *model.Equipment) error {
	const q = "INSERT INTO equipment (name, quantity, available) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, e.Name, e.Quantity, e.Available)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	return nil
}

// Update applies the non-nil fields of p and returns the updated row.  Only
// the provided columns appear in the SET clause.
func (r *EquipmentRepo) Update(ctx context.Context, id uint64, p model.EquipmentPatch) (*model.Equipment, error) {
	sets := []string{}
	args := []any{}
	if p.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *p.Name)
	}
	if p.Quantity != nil {
		sets = append(sets, "quantity = ?")
		args = append(args, *p.Quantity)
	}
	if p.Available != nil {
		sets = append(sets, "available = ?")
		args = append(args, *p.Available)
	}
	if len(sets) > 0 {
		q := "UPDATE equipment SET " + strings.Join(sets, ", ") + " WHERE id = ?"
		args = append(args, id)
		if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
			return nil, err
		}
	}
	// MySQL reports zero affected rows when values are unchanged, so the
	// follow-up SELECT decides whether the row exists.
	return r.GetByID(ctx, id)
}

// Delete removes an equipment row.  It returns ErrNotFound when no row was
// deleted.
func (r *EquipmentRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM equipment WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
