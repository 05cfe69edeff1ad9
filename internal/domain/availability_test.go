package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newcase/agendamento-service/pkg/ptr"
	"github.com/newcase/agendamento-service/pkg/types"
)

// Fixed reference clock: Monday 2025-12-01.
var now = time.Date(2025, 12, 1, 10, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsDateBookable_Sundays(t *testing.T) {
	// Every Sunday for the next year must be rejected regardless of blocklist.
	sunday := day(2025, 12, 7)
	for i := 0; i < 52; i++ {
		d := sunday.AddDate(0, 0, 7*i)
		require.Equal(t, time.Sunday, d.Weekday())
		assert.False(t, IsDateBookable(d, now, nil), "sunday %s must not be bookable", d)
		assert.False(t, IsDateBookable(d, now, []BlockedDate{{Date: d}}), "blocklisted sunday %s must not be bookable", d)
	}
}

func TestIsDateBookable_PastDates(t *testing.T) {
	for _, d := range []time.Time{
		day(2025, 11, 30),
		day(2025, 11, 1),
		day(2024, 12, 1),
	} {
		assert.False(t, IsDateBookable(d, now, nil), "past date %s must not be bookable", d)
	}

	// Same day as "now" is not in the past.
	assert.True(t, IsDateBookable(day(2025, 12, 1), now, nil))
}

func TestIsDateInPast_ZoneIndependent(t *testing.T) {
	// Request dates are UTC midnights; the clock runs in the server zone.
	// West of UTC the local midnight is a later instant than the UTC one,
	// so an instant comparison would call today past. Only the calendar
	// day may decide.
	saoPaulo := time.FixedZone("America/Sao_Paulo", -3*60*60)
	localNow := time.Date(2025, 12, 1, 10, 30, 0, 0, saoPaulo)

	assert.False(t, IsDateInPast(day(2025, 12, 1), localNow), "today must not be past")
	assert.True(t, IsDateInPast(day(2025, 11, 30), localNow))
	assert.False(t, IsDateInPast(day(2025, 12, 2), localNow))

	assert.True(t, IsDateBookable(day(2025, 12, 1), localNow, nil), "same-day booking with a west-of-UTC clock")

	// Around local midnight the local day is already ahead of the UTC day.
	lateEvening := time.Date(2025, 12, 1, 23, 30, 0, 0, saoPaulo)
	assert.False(t, IsDateInPast(day(2025, 12, 1), lateEvening))
	assert.True(t, IsDateInPast(day(2025, 11, 30), lateEvening))
}

func TestIsDateBookable_Blocklist(t *testing.T) {
	// 2025-12-25 is a Thursday.
	christmas := day(2025, 12, 25)
	require.Equal(t, time.Thursday, christmas.Weekday())

	blocked := []BlockedDate{{Date: christmas, Reason: ptr.Ptr("Feriado")}}

	assert.False(t, IsDateBookable(christmas, now, blocked))
	assert.True(t, IsDateBookable(day(2025, 12, 26), now, blocked))

	// Calendar-day equality ignores the time component on either side.
	withClock := time.Date(2025, 12, 25, 14, 45, 12, 0, time.UTC)
	assert.False(t, IsDateBookable(withClock, now, blocked))
}

func TestIsDateBookable_OpenWeekday(t *testing.T) {
	// Non-Sunday, non-past, not blocked.
	tuesday := day(2025, 12, 2)
	require.Equal(t, time.Tuesday, tuesday.Weekday())
	assert.True(t, IsDateBookable(tuesday, now, []BlockedDate{{Date: day(2025, 12, 25)}}))
}

func TestBuildDaySlots_Shape(t *testing.T) {
	tests := []struct {
		name   string
		booked []types.TimeString
	}{
		{"empty", nil},
		{"partially booked", []types.TimeString{"09:00", "13:30"}},
		{"fully booked", append([]types.TimeString(nil), DailySlots...)},
		{"unknown times ignored", []types.TimeString{"08:00", "12:00", "23:59"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := BuildDaySlots(tt.booked)
			require.Len(t, slots, 16)
			for i, s := range slots {
				assert.Equal(t, DailySlots[i], s.StartTime, "chronological order must be preserved")
			}
		})
	}
}

func TestBuildDaySlots_MarksOccupied(t *testing.T) {
	slots := BuildDaySlots([]types.TimeString{"09:00", "13:30"})

	occupied := 0
	for _, s := range slots {
		if s.Occupied {
			occupied++
			assert.Contains(t, []types.TimeString{"09:00", "13:30"}, s.StartTime)
		}
	}
	assert.Equal(t, 2, occupied)
}

func TestBuildDaySlots_SecondsIgnoredByScan(t *testing.T) {
	// Stored TIME values carry seconds; TimeString keeps the HH:MM prefix.
	ts, err := types.NewTimeStringFromString("09:00:00")
	require.NoError(t, err)

	slots := BuildDaySlots([]types.TimeString{ts})
	assert.True(t, slots[0].Occupied)
}

func TestIsValidSlot(t *testing.T) {
	for _, s := range DailySlots {
		assert.True(t, IsValidSlot(s))
	}
	for _, s := range []types.TimeString{"08:30", "12:00", "12:30", "18:00", "09:15", ""} {
		assert.False(t, IsValidSlot(s), "%s is not in the enumeration", s)
	}
}

func TestIsSlotBookable(t *testing.T) {
	tuesday := day(2025, 12, 2)
	booked := []types.TimeString{"10:00"}

	assert.True(t, IsSlotBookable(tuesday, now, "09:00", nil, booked))
	assert.False(t, IsSlotBookable(tuesday, now, "10:00", nil, booked), "occupied slot")
	assert.False(t, IsSlotBookable(tuesday, now, "12:00", nil, booked), "lunch break is not a slot")
	assert.False(t, IsSlotBookable(day(2025, 12, 7), now, "09:00", nil, nil), "sunday")
	assert.False(t, IsSlotBookable(tuesday, now, "09:00", []BlockedDate{{Date: tuesday}}, nil), "blocked date")
	assert.False(t, IsSlotBookable(day(2025, 11, 28), now, "09:00", nil, nil), "past date")
}

func TestIsSlotBookable_Pure(t *testing.T) {
	tuesday := day(2025, 12, 2)
	blocked := []BlockedDate{{Date: day(2025, 12, 25)}}
	booked := []types.TimeString{"10:00", "15:30"}

	first := IsSlotBookable(tuesday, now, "11:00", blocked, booked)
	second := IsSlotBookable(tuesday, now, "11:00", blocked, booked)
	assert.Equal(t, first, second)
	assert.True(t, first)
}

func TestEstimateDelivery(t *testing.T) {
	assert.Equal(t, day(2025, 12, 4), EstimateDelivery(day(2025, 12, 1)))
	// Month rollover.
	assert.Equal(t, day(2026, 1, 2), EstimateDelivery(day(2025, 12, 30)))
}
