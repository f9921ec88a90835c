package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/studio-booking/internal/model"
)

// runStoreSuite exercises the behavior every Stores implementation shares.
func runStoreSuite(t *testing.T, newStores func(t *testing.T) Stores) {
	t.Run("seed creates admin and equipment once", func(t *testing.T) {
		s := newStores(t)
		ctx := context.Background()
		inventory := []model.Equipment{{Name: "DSLR Camera", Quantity: 3, Available: 3}, {Name: "Green Screen", Quantity: 1, Available: 1}}

		created, err := Seed(ctx, s, model.User{Username: "admin", Password: "admin123"}, inventory)
		require.NoError(t, err)
		assert.True(t, created)

		created, err = Seed(ctx, s, model.User{Username: "admin", Password: "admin123"}, inventory)
		require.NoError(t, err)
		assert.False(t, created)

		u, err := s.Users.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		assert.True(t, u.IsAdmin)
		assert.Equal(t, "admin123", u.Password)

		items, err := s.Equipment.List(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "DSLR Camera", items[0].Name)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		s := newStores(t)
		_, err := s.Users.GetByUsername(context.Background(), "nobody")
		assert.True(t, errors.Is(err, ErrNotFound))
		_, err = s.Users.GetByID(context.Background(), 42)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("equipment crud allows available above quantity", func(t *testing.T) {
		s := newStores(t)
		ctx := context.Background()
		e := &model.Equipment{Name: "Tripod", Quantity: 2, Available: 2}
		require.NoError(t, s.Equipment.Create(ctx, e))
		require.NotZero(t, e.ID)

		avail := 7
		updated, err := s.Equipment.Update(ctx, e.ID, model.EquipmentPatch{Available: &avail})
		require.NoError(t, err)
		assert.Equal(t, 2, updated.Quantity)
		assert.Equal(t, 7, updated.Available)
		assert.Equal(t, "Tripod", updated.Name)

		got, err := s.Equipment.GetByID(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, *updated, *got)

		_, err = s.Equipment.Update(ctx, e.ID+100, model.EquipmentPatch{Available: &avail})
		assert.True(t, errors.Is(err, ErrNotFound))

		require.NoError(t, s.Equipment.Delete(ctx, e.ID))
		assert.True(t, errors.Is(s.Equipment.Delete(ctx, e.ID), ErrNotFound))
		_, err = s.Equipment.GetByID(ctx, e.ID)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("booking create get and duplicate reference", func(t *testing.T) {
		s := newStores(t)
		ctx := context.Background()
		notes := "bring adapters"
		b := sampleBooking("ISH-20240101-1234", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC))
		b.Notes = &notes
		require.NoError(t, s.Bookings.Create(ctx, b))
		require.NotZero(t, b.ID)

		got, err := s.Bookings.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.Reference, got.Reference)
		assert.Equal(t, []string{"DSLR Camera", "Tripod"}, got.EquipmentList)
		require.NotNil(t, got.Notes)
		assert.Equal(t, "bring adapters", *got.Notes)
		assert.Equal(t, model.StatusPending, got.Status)
		assert.True(t, b.CreatedAt.Equal(got.CreatedAt))

		byRef, err := s.Bookings.GetByReference(ctx, "ISH-20240101-1234")
		require.NoError(t, err)
		assert.Equal(t, b.ID, byRef.ID)

		dup := sampleBooking("ISH-20240101-1234", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
		assert.True(t, errors.Is(s.Bookings.Create(ctx, dup), ErrReferenceExists))

		_, err = s.Bookings.GetByReference(ctx, "ISH-20240101-0000")
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("booking list filters and orders newest first", func(t *testing.T) {
		s := newStores(t)
		ctx := context.Background()
		base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
		first := sampleBooking("ISH-20240301-1111", base)
		second := sampleBooking("ISH-20240301-2222", base.Add(time.Hour))
		second.Name = "Bilal Ahmad"
		second.Department = "MTA"
		second.Date = "2024-03-09"
		third := sampleBooking("ISH-20240301-3333", base.Add(2*time.Hour))
		for _, b := range []*model.Booking{first, second, third} {
			require.NoError(t, s.Bookings.Create(ctx, b))
		}
		_, err := s.Bookings.UpdateStatus(ctx, third.ID, model.StatusApproved)
		require.NoError(t, err)

		all, err := s.Bookings.List(ctx, model.BookingFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"ISH-20240301-3333", "ISH-20240301-2222", "ISH-20240301-1111"}, references(all))

		pending, err := s.Bookings.List(ctx, model.BookingFilter{Status: model.StatusPending})
		require.NoError(t, err)
		assert.Equal(t, []string{"ISH-20240301-2222", "ISH-20240301-1111"}, references(pending))

		search, err := s.Bookings.List(ctx, model.BookingFilter{Search: "bilal"})
		require.NoError(t, err)
		assert.Equal(t, []string{"ISH-20240301-2222"}, references(search))

		byDept, err := s.Bookings.List(ctx, model.BookingFilter{Search: "mta"})
		require.NoError(t, err)
		assert.Equal(t, []string{"ISH-20240301-2222"}, references(byDept))

		byRef, err := s.Bookings.List(ctx, model.BookingFilter{Search: "3333"})
		require.NoError(t, err)
		assert.Equal(t, []string{"ISH-20240301-3333"}, references(byRef))

		byDate, err := s.Bookings.List(ctx, model.BookingFilter{Date: "2024-03-09"})
		require.NoError(t, err)
		assert.Equal(t, []string{"ISH-20240301-2222"}, references(byDate))

		none, err := s.Bookings.List(ctx, model.BookingFilter{Status: model.StatusRejected})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("booking search matches wildcards literally", func(t *testing.T) {
		s := newStores(t)
		ctx := context.Background()
		base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
		promo := sampleBooking("ISH-20240301-1111", base)
		promo.Name = "50%_Off Crew"
		plain := sampleBooking("ISH-20240301-2222", base.Add(time.Hour))
		plain.Name = "Amina"
		for _, b := range []*model.Booking{promo, plain} {
			require.NoError(t, s.Bookings.Create(ctx, b))
		}

		for _, q := range []string{"%", "_", "%_", "50%"} {
			got, err := s.Bookings.List(ctx, model.BookingFilter{Search: q})
			require.NoError(t, err)
			assert.Equal(t, []string{"ISH-20240301-1111"}, references(got), q)
		}
		for _, q := range []string{"A_ina", "Am%a", "!"} {
			got, err := s.Bookings.List(ctx, model.BookingFilter{Search: q})
			require.NoError(t, err)
			assert.Empty(t, got, q)
		}
	})

	t.Run("booking status transitions", func(t *testing.T) {
		s := newStores(t)
		ctx := context.Background()
		b := sampleBooking("ISH-20240401-4444", time.Date(2024, 4, 1, 8, 0, 0, 0, time.UTC))
		require.NoError(t, s.Bookings.Create(ctx, b))

		updated, err := s.Bookings.UpdateStatus(ctx, b.ID, model.StatusRejected)
		require.NoError(t, err)
		assert.Equal(t, model.StatusRejected, updated.Status)

		got, err := s.Bookings.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusRejected, got.Status)

		_, err = s.Bookings.UpdateStatus(ctx, b.ID, model.StatusApproved)
		assert.True(t, errors.Is(err, ErrInvalidTransition))

		_, err = s.Bookings.UpdateStatus(ctx, b.ID+99, model.StatusApproved)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func sampleBooking(ref string, at time.Time) *model.Booking {
	return &model.Booking{
		Reference:     ref,
		Name:          "Amina Yusuf",
		Email:         "amina@example.com",
		IDNumber:      "ID-1001",
		Phone:         "0712345678",
		Department:    "Isha'at",
		Date:          "2024-03-08",
		Time:          "14:00",
		Duration:      2,
		EquipmentList: []string{"DSLR Camera", "Tripod"},
		Status:        model.StatusPending,
		CreatedAt:     at,
	}
}

func references(bs []*model.Booking) []string {
	out := make([]string, 0, len(bs))
	for _, b := range bs {
		out = append(out, b.Reference)
	}
	return out
}
