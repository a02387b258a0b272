package services

import (
	"testing"

	"wedding_hall_backend/internal/models"
	"wedding_hall_backend/internal/repositories"
	"wedding_hall_backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededViewingService() (ViewingService, repositories.ViewingRepository) {
	s := store.NewSeeded()
	vr := repositories.NewViewingRepository(s)
	return NewViewingService(vr), vr
}

func TestCreateViewing_StartsPendingWithGeneratedIdentity(t *testing.T) {
	svc, repo := newSeededViewingService()

	created, err := svc.CreateViewing(CreateViewingRequest{
		ClientName: "Aina & Farid",
		Contact:    "aina@example.com",
		Date:       "2024-07-20",
		Time:       "10:30",
	})

	require.NoError(t, err)
	assert.Regexp(t, `^V-\d+$`, created.ID)
	assert.Equal(t, models.BookingStatusPending, created.Status)
	assert.Len(t, repo.GetViewings(), 2)
}

func TestCreateViewing_RequiresNameAndDate(t *testing.T) {
	svc, repo := newSeededViewingService()

	_, err := svc.CreateViewing(CreateViewingRequest{Date: "2024-07-20"})
	assert.ErrorIs(t, err, ErrViewingValidation)

	_, err = svc.CreateViewing(CreateViewingRequest{ClientName: "Aina"})
	assert.ErrorIs(t, err, ErrViewingValidation)

	assert.Len(t, repo.GetViewings(), 1)
}

func TestUpdateViewingStatus_DecidesPendingRecord(t *testing.T) {
	svc, _ := newSeededViewingService()

	updated, err := svc.UpdateViewingStatus("V-201", "APPROVED")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.BookingStatusApproved, updated.Status)

	_, err = svc.UpdateViewingStatus("V-201", "REJECTED")
	assert.ErrorIs(t, err, ErrStatusDecision)
}

func TestUpdateViewingStatus_UnknownIdentityIsSilentNoOp(t *testing.T) {
	svc, repo := newSeededViewingService()
	before := repo.GetViewings()

	updated, err := svc.UpdateViewingStatus("V-999", "REJECTED")

	assert.NoError(t, err)
	assert.Nil(t, updated)
	assert.Equal(t, before, repo.GetViewings())
}

func TestUpdateViewingStatus_RejectsUndecidableTargets(t *testing.T) {
	svc, _ := newSeededViewingService()

	_, err := svc.UpdateViewingStatus("V-201", "CANCELLED")
	assert.ErrorIs(t, err, ErrStatusDecision)
}
