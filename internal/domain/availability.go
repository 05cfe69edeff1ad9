package domain

import (
	"time"

	"github.com/newcase/agendamento-service/pkg/types"
)

// The availability rules are pure functions over the blocklist and the booked
// times of a single day. The Sunday exclusion and the explicit blocklist stay
// separate predicates so that Sundays never need storage.

// IsDateInPast reports whether date falls on a calendar day before now's day.
// The comparison is on (year, month, day) tuples: request dates arrive as UTC
// midnights while now carries the server zone, so comparing instants would
// shift the day boundary by the UTC offset.
func IsDateInPast(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 < d2
}

// IsSunday reports whether date falls on a Sunday, the shop's weekly closure.
func IsSunday(date time.Time) bool {
	return date.Weekday() == time.Sunday
}

// IsDateBlocked reports whether date matches a blocklist entry by calendar
// day, ignoring any time component on either side.
func IsDateBlocked(date time.Time, blocked []BlockedDate) bool {
	for _, b := range blocked {
		if isSameDay(date, b.Date) {
			return true
		}
	}
	return false
}

// IsDateBookable is the authoritative date gate: not in the past, not a
// Sunday and not administratively blocked.
func IsDateBookable(date, now time.Time, blocked []BlockedDate) bool {
	return !IsDateInPast(date, now) && !IsSunday(date) && !IsDateBlocked(date, blocked)
}

// IsValidSlot reports whether t is a member of the fixed daily enumeration.
func IsValidSlot(t types.TimeString) bool {
	for _, slot := range DailySlots {
		if slot == t {
			return true
		}
	}
	return false
}

// BuildDaySlots annotates the full daily enumeration with occupancy. The
// result always has exactly len(DailySlots) entries in chronological order;
// bookedTimes are matched on the HH:MM value (TimeString drops seconds).
func BuildDaySlots(bookedTimes []types.TimeString) []DaySlot {
	occupied := make(map[types.TimeString]struct{}, len(bookedTimes))
	for _, t := range bookedTimes {
		occupied[t] = struct{}{}
	}

	slots := make([]DaySlot, len(DailySlots))
	for i, t := range DailySlots {
		_, taken := occupied[t]
		slots[i] = DaySlot{StartTime: t, Occupied: taken}
	}
	return slots
}

// IsSlotBookable is the gate evaluated right before an insert: the date must
// be bookable, the time must come from the enumeration and must not already
// be taken. UI-level slot disabling is advisory only; this check is the one
// that counts.
func IsSlotBookable(date, now time.Time, t types.TimeString, blocked []BlockedDate, bookedTimes []types.TimeString) bool {
	if !IsDateBookable(date, now, blocked) {
		return false
	}
	if !IsValidSlot(t) {
		return false
	}
	for _, b := range bookedTimes {
		if b == t {
			return false
		}
	}
	return true
}

// EstimateDelivery computes the estimated delivery date for a booking day.
func EstimateDelivery(date time.Time) time.Time {
	return date.AddDate(0, 0, DeliveryEstimateDays)
}

func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
