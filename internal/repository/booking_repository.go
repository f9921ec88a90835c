package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iliyamo/studio-booking/internal/model"
)

// BookingRepo provides persistence for booking requests.  The equipment
// list is stored as a JSON array in a text column.  All timestamps are
// stored in UTC.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, reference, name, email, id_number, phone, department, booking_date, booking_time,
       duration, equipment_list, notes, status, created_at`

// Create inserts a booking and populates its ID.  A reference collision is
// reported as ErrReferenceExists.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	equipment, err := json.Marshal(nonNil(b.EquipmentList))
	if err != nil {
		return fmt.Errorf("encode equipment list: %w", err)
	}
	var notes sql.NullString
	if b.Notes != nil {
		notes = sql.NullString{String: *b.Notes, Valid: true}
	}
	const q = `INSERT INTO bookings
        (reference, name, email, id_number, phone, department, booking_date, booking_time, duration, equipment_list, notes, status, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		b.Reference, b.Name, b.Email, b.IDNumber, b.Phone, b.Department, b.Date, b.Time,
		b.Duration, string(equipment), notes, string(b.Status), b.CreatedAt.UTC())
	if err != nil {
		if isDuplicate(err) {
			return ErrReferenceExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// GetByID returns a booking by id or ErrNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE id = ?", id)
	return scanBooking(row)
}

// GetByReference returns a booking by its reference or ErrNotFound.
func (r *BookingRepo) GetByReference(ctx context.Context, reference string) (*model.Booking, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE reference = ?", reference)
	return scanBooking(row)
}

// List returns bookings matching f ordered newest first.
func (r *BookingRepo) List(ctx context.Context, f model.BookingFilter) ([]*model.Booking, error) {
	where := []string{}
	args := []any{}
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(f.Status))
	}
	if f.Date != "" {
		where = append(where, "booking_date = ?")
		args = append(args, f.Date)
	}
	if f.Search != "" {
		like := "%" + escapeLike(strings.ToLower(f.Search)) + "%"
		where = append(where, "(LOWER(name) LIKE ? ESCAPE '!' OR LOWER(reference) LIKE ? ESCAPE '!' OR LOWER(department) LIKE ? ESCAPE '!')")
		args = append(args, like, like, like)
	}
	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}
	q := "SELECT " + bookingColumns + " FROM bookings WHERE " + cond + " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus moves a pending booking to status.  The conditional UPDATE
// keeps terminal bookings untouched; when nothing changed a lookup decides
// between ErrNotFound and ErrInvalidTransition.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id uint64, status model.BookingStatus) (*model.Booking, error) {
	if !model.StatusPending.CanTransition(status) {
		return nil, ErrInvalidTransition
	}
	res, err := r.db.ExecContext(ctx,
		"UPDATE bookings SET status = ? WHERE id = ? AND status = ?",
		string(status), id, string(model.StatusPending))
	if err != nil {
		return nil, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrInvalidTransition
	}
	return r.GetByID(ctx, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(s rowScanner) (*model.Booking, error) {
	var (
		b         model.Booking
		equipment string
		notes     sql.NullString
		status    string
		createdAt time.Time
	)
	err := s.Scan(&b.ID, &b.Reference, &b.Name, &b.Email, &b.IDNumber, &b.Phone, &b.Department,
		&b.Date, &b.Time, &b.Duration, &equipment, &notes, &status, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(equipment), &b.EquipmentList); err != nil {
		return nil, fmt.Errorf("decode equipment list for booking %d: %w", b.ID, err)
	}
	b.EquipmentList = nonNil(b.EquipmentList)
	if notes.Valid {
		n := notes.String
		b.Notes = &n
	}
	b.Status = model.BookingStatus(status)
	b.CreatedAt = createdAt.UTC()
	return &b, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// likeEscaper makes %, _ and the escape character itself match literally.
// '!' is used because MySQL and SQLite disagree on how '\\' is quoted.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string { return likeEscaper.Replace(s) }
