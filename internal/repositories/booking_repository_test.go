package repositories

import (
	"testing"

	"wedding_hall_backend/internal/models"
	"wedding_hall_backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_ReturnsIsolatedCopies(t *testing.T) {
	repo := NewBookingRepository(store.NewSeeded())

	first, err := repo.GetBookingByID("W-101")
	require.NoError(t, err)

	// Mutating the returned record must not leak into the store.
	first.ClientName = "Tampered"
	first.Addons = append(first.Addons, "Injected")

	second, err := repo.GetBookingByID("W-101")
	require.NoError(t, err)
	assert.Equal(t, "Sarah & James", second.ClientName)
	assert.NotContains(t, second.Addons, "Injected")
}

func TestBookingRepository_SaveUpsertsByIdentity(t *testing.T) {
	repo := NewBookingRepository(store.NewSeeded())

	stored := repo.SaveBooking(models.WeddingBooking{
		ID:         "W-101",
		ClientName: "Sarah & James",
		Slot:       models.SlotNight,
		Status:     models.BookingStatusApproved,
		Notes:      "Replaced wholesale",
	})

	assert.Equal(t, "Replaced wholesale", stored.Notes)
	assert.Len(t, repo.GetBookings(), 2)

	repo.SaveBooking(models.WeddingBooking{ID: "W-103", ClientName: "New"})
	assert.Len(t, repo.GetBookings(), 3)
}

func TestBookingRepository_UpdateStatusTouchesOnlyStatus(t *testing.T) {
	repo := NewBookingRepository(store.NewSeeded())

	updated, err := repo.UpdateStatus("W-102", models.BookingStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusRejected, updated.Status)
	assert.Equal(t, "Michael & Lin", updated.ClientName)
	assert.Equal(t, "M2", updated.MenuPackageID)

	_, err = repo.UpdateStatus("W-999", models.BookingStatusApproved)
	assert.ErrorIs(t, err, ErrNotFound)
}
