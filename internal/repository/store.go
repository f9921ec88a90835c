package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/studio-booking/internal/model"
)

// UserStore reads and seeds user accounts.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id uint64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	HasAdmin(ctx context.Context) (bool, error)
}

// EquipmentStore persists the equipment inventory.
type EquipmentStore interface {
	List(ctx context.Context) ([]*model.Equipment, error)
	GetByID(ctx context.Context, id uint64) (*model.Equipment, error)
	Create(ctx context.Context, e *model.Equipment) error
	Update(ctx context.Context, id uint64, p model.EquipmentPatch) (*model.Equipment, error)
	Delete(ctx context.Context, id uint64) error
}

// BookingStore persists booking requests.  Bookings are never deleted.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id uint64) (*model.Booking, error)
	GetByReference(ctx context.Context, reference string) (*model.Booking, error)
	List(ctx context.Context, f model.BookingFilter) ([]*model.Booking, error)
	UpdateStatus(ctx context.Context, id uint64, status model.BookingStatus) (*model.Booking, error)
}

// Stores groups the three stores backing the API.
type Stores struct {
	Users     UserStore
	Equipment EquipmentStore
	Bookings  BookingStore
}

// NewSQLStores returns the MySQL-backed stores sharing db.
func NewSQLStores(db *sql.DB) Stores {
	return Stores{
		Users:     NewUserRepo(db),
		Equipment: NewEquipmentRepo(db),
		Bookings:  NewBookingRepo(db),
	}
}
