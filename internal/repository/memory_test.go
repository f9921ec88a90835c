package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStores(t *testing.T) {
	runStoreSuite(t, func(t *testing.T) Stores { return NewMemoryStores() })
}

func TestMemoryBookingRepoReturnsCopies(t *testing.T) {
	r := NewMemoryBookingRepo()
	ctx := context.Background()
	b := sampleBooking("ISH-20240501-5555", sampleTime)
	require.NoError(t, r.Create(ctx, b))

	b.EquipmentList[0] = "changed by caller"
	got, err := r.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "DSLR Camera", got.EquipmentList[0])

	got.EquipmentList[0] = "changed again"
	again, err := r.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "DSLR Camera", again.EquipmentList[0])
}
