package repository

// This file holds the in-memory stores used when STORAGE_DRIVER=memory.
// Each store guards its map with a RWMutex so every method is atomic.  Values
// are copied on the way in and out so callers never share a record with the
// store.

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/iliyamo/studio-booking/internal/model"
)

// NewMemoryStores returns empty in-memory user, equipment and booking stores.
func NewMemoryStores() Stores {
	return Stores{
		Users:     NewMemoryUserRepo(),
		Equipment: NewMemoryEquipmentRepo(),
		Bookings:  NewMemoryBookingRepo(),
	}
}

// MemoryUserRepo keeps users in a map keyed by id.
type MemoryUserRepo struct {
	mu     sync.RWMutex
	nextID uint64
	items  map[uint64]model.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{nextID: 1, items: map[uint64]model.User{}}
}

func (r *MemoryUserRepo) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Username == u.Username {
			return ErrUsernameExists
		}
	}
	u.ID = r.nextID
	r.nextID++
	r.items[u.ID] = *u
	return nil
}

func (r *MemoryUserRepo) GetByID(_ context.Context, id uint64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepo) HasAdmin(_ context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.items {
		if u.IsAdmin {
			return true, nil
		}
	}
	return false, nil
}

// MemoryEquipmentRepo keeps equipment in a map keyed by id.
type MemoryEquipmentRepo struct {
	mu     sync.RWMutex
	nextID uint64
	items  map[uint64]model.Equipment
}

func NewMemoryEquipmentRepo() *MemoryEquipmentRepo {
	return &MemoryEquipmentRepo{nextID: 1, items: map[uint64]model.Equipment{}}
}

// List returns all equipment ordered by id.
func (r *MemoryEquipmentRepo) List(_ context.Context) ([]*model.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Equipment, 0, len(r.items))
	for _, e := range r.items {
		e := e
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryEquipmentRepo) GetByID(_ context.Context, id uint64) (*model.Equipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &e, nil
}

func (r *MemoryEquipmentRepo) Create(_ context.Context, e *model.Equipment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.nextID
	r.nextID++
	r.items[e.ID] = *e
	return nil
}

func (r *MemoryEquipmentRepo) Update(_ context.Context, id uint64, p model.EquipmentPatch) (*model.Equipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	p.Apply(&e)
	r.items[id] = e
	return &e, nil
}

func (r *MemoryEquipmentRepo) Delete(_ context.Context, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

// MemoryBookingRepo keeps bookings in a map keyed by id with a secondary
// index on reference.
type MemoryBookingRepo struct {
	mu     sync.RWMutex
	nextID uint64
	items  map[uint64]model.Booking
	byRef  map[string]uint64
}

func NewMemoryBookingRepo() *MemoryBookingRepo {
	return &MemoryBookingRepo{nextID: 1, items: map[uint64]model.Booking{}, byRef: map[string]uint64{}}
}

func (r *MemoryBookingRepo) Create(_ context.Context, b *model.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byRef[b.Reference]; taken {
		return ErrReferenceExists
	}
	b.ID = r.nextID
	r.nextID++
	r.items[b.ID] = cloneBooking(*b)
	r.byRef[b.Reference] = b.ID
	return nil
}

func (r *MemoryBookingRepo) GetByID(_ context.Context, id uint64) (*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := cloneBooking(b)
	return &out, nil
}

func (r *MemoryBookingRepo) GetByReference(_ context.Context, reference string) (*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byRef[reference]
	if !ok {
		return nil, ErrNotFound
	}
	out := cloneBooking(r.items[id])
	return &out, nil
}

// List returns bookings matching f, newest first.  Bookings created at the
// same instant are ordered by descending id.
func (r *MemoryBookingRepo) List(_ context.Context, f model.BookingFilter) ([]*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Booking, 0, len(r.items))
	for _, b := range r.items {
		if !matchesFilter(b, f) {
			continue
		}
		c := cloneBooking(b)
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *MemoryBookingRepo) UpdateStatus(_ context.Context, id uint64, status model.BookingStatus) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	if !b.Status.CanTransition(status) {
		return nil, ErrInvalidTransition
	}
	b.Status = status
	r.items[id] = b
	out := cloneBooking(b)
	return &out, nil
}

func matchesFilter(b model.Booking, f model.BookingFilter) bool {
	if f.Status != "" && b.Status != f.Status {
		return false
	}
	if f.Date != "" && b.Date != f.Date {
		return false
	}
	if q := strings.ToLower(f.Search); q != "" {
		if !strings.Contains(strings.ToLower(b.Name), q) &&
			!strings.Contains(strings.ToLower(b.Reference), q) &&
			!strings.Contains(strings.ToLower(b.Department), q) {
			return false
		}
	}
	return true
}

// cloneBooking copies the slice and pointer fields of b.
func cloneBooking(b model.Booking) model.Booking {
	b.EquipmentList = append([]string{}, b.EquipmentList...)
	if b.Notes != nil {
		n := *b.Notes
		b.Notes = &n
	}
	return b
}
