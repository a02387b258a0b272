package services

import (
	"testing"

	"wedding_hall_backend/internal/repositories"
	"wedding_hall_backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededAvailabilityService() (AvailabilityService, repositories.AvailabilityRepository) {
	s := store.NewSeeded()
	ar := repositories.NewAvailabilityRepository(s)
	return NewAvailabilityService(ar), ar
}

func TestGetSlotState_UnknownDateIsVirtuallyOpen(t *testing.T) {
	svc, repo := newSeededAvailabilityService()

	slot, err := svc.GetSlotState("2024-07-01")
	require.NoError(t, err)
	assert.True(t, slot.DaySlot)
	assert.True(t, slot.NightSlot)

	// Reading must never materialize a record.
	_, err = repo.GetSlot("2024-07-01")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGetSlotState_ReturnsStoredRecord(t *testing.T) {
	svc, _ := newSeededAvailabilityService()

	slot, err := svc.GetSlotState("2024-06-15")
	require.NoError(t, err)
	assert.True(t, slot.DaySlot)
	assert.False(t, slot.NightSlot)
}

func TestGetSlotState_RejectsMalformedDate(t *testing.T) {
	svc, _ := newSeededAvailabilityService()

	for _, date := range []string{"2024-13-01", "15/06/2024", "tomorrow", ""} {
		_, err := svc.GetSlotState(date)
		assert.ErrorIs(t, err, ErrAvailabilityValidation)
	}
}

func TestToggleSlot_FirstToggleMaterializesFromOpenDefault(t *testing.T) {
	svc, repo := newSeededAvailabilityService()

	slot, err := svc.ToggleSlot("2024-08-10", "day")
	require.NoError(t, err)
	assert.False(t, slot.DaySlot)
	assert.True(t, slot.NightSlot)

	stored, err := repo.GetSlot("2024-08-10")
	require.NoError(t, err)
	assert.Equal(t, *slot, *stored)
}

func TestToggleSlot_DoubleToggleRestoresOpenState(t *testing.T) {
	svc, _ := newSeededAvailabilityService()

	_, err := svc.ToggleSlot("2024-08-11", "night")
	require.NoError(t, err)

	slot, err := svc.ToggleSlot("2024-08-11", "night")
	require.NoError(t, err)
	assert.True(t, slot.DaySlot)
	assert.True(t, slot.NightSlot)
}

func TestToggleSlot_FlipsOnlyTheNamedPeriod(t *testing.T) {
	svc, _ := newSeededAvailabilityService()

	// Seeded 2024-06-15 is day-open, night-closed.
	slot, err := svc.ToggleSlot("2024-06-15", "night")
	require.NoError(t, err)
	assert.True(t, slot.DaySlot)
	assert.True(t, slot.NightSlot)
}

func TestToggleSlot_RejectsBadInput(t *testing.T) {
	svc, _ := newSeededAvailabilityService()

	_, err := svc.ToggleSlot("not-a-date", "day")
	assert.ErrorIs(t, err, ErrAvailabilityValidation)

	_, err = svc.ToggleSlot("2024-08-10", "evening")
	assert.ErrorIs(t, err, ErrAvailabilityValidation)
}

func TestMonthSchedule_CoversEveryDayWithDefaultsFilledIn(t *testing.T) {
	svc, _ := newSeededAvailabilityService()

	schedule, err := svc.MonthSchedule(2024, 6)
	require.NoError(t, err)
	require.Len(t, schedule, 30)

	assert.Equal(t, "2024-06-01", schedule[0].Date)
	assert.Equal(t, "2024-06-30", schedule[29].Date)

	// Stored records surface as-is; everything else defaults open.
	assert.False(t, schedule[14].NightSlot) // 2024-06-15
	assert.True(t, schedule[14].DaySlot)
	assert.True(t, schedule[0].DaySlot)
	assert.True(t, schedule[0].NightSlot)
}

func TestMonthSchedule_HandlesLeapFebruary(t *testing.T) {
	svc, _ := newSeededAvailabilityService()

	schedule, err := svc.MonthSchedule(2024, 2)
	require.NoError(t, err)
	assert.Len(t, schedule, 29)
}

func TestMonthSchedule_RejectsInvalidMonth(t *testing.T) {
	svc, _ := newSeededAvailabilityService()

	_, err := svc.MonthSchedule(2024, 0)
	assert.ErrorIs(t, err, ErrAvailabilityValidation)

	_, err = svc.MonthSchedule(2024, 13)
	assert.ErrorIs(t, err, ErrAvailabilityValidation)
}
