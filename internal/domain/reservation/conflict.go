package reservation

import "campus-booking/internal/domain/slot"

// Pure availability and conflict math over the occupied set of a single
// (venue, date). The occupied set is the union of slots held by all binding
// reservations for that pair; callers fetch it from the store, these
// functions never do I/O.

// AvailableSlots returns the catalog minus the occupied set, in catalog order.
func AvailableSlots(occupied slot.Set) []slot.Slot {
	return slot.Available(occupied)
}

// HasConflict reports whether any requested slot is already occupied.
// Equivalent to: requested is not a subset of AvailableSlots(occupied).
func HasConflict(requested, occupied slot.Set) bool {
	return requested.Intersects(occupied)
}
