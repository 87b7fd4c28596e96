package domain

import (
	"fmt"
	"time"

	"github.com/helenacolabronze/booking-service/pkg/types"
)

// Reservation represents one committed booking for a date+slot.
// Records are appended on a successful submission and removed by the admin;
// they are never mutated in place.
type Reservation struct {
	ID          string           `json:"id"`
	Slot        types.TimeString `json:"slot"`
	ClientName  string           `json:"clientName"`
	ClientPhone string           `json:"clientPhone"` // normalized, digits only, with country code
	ClientEmail string           `json:"clientEmail,omitempty"`
	Service     string           `json:"service"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// Display renders the reservation the way the admin panel lists it,
// e.g. `14:00 - Maria Silva (5522998562940) - Banho de Lua`.
func (r Reservation) Display() string {
	return fmt.Sprintf("%s - %s (%s) - %s", r.Slot, r.ClientName, r.ClientPhone, r.Service)
}

// ReservationsDocument maps ISO dates to the insertion-ordered list of
// reservations for that date. The order carries no meaning beyond the
// numbering shown to the admin. The document is always loaded and persisted
// as a whole.
type ReservationsDocument map[string][]Reservation

// SlotTaken reports whether the date already has a committed reservation
// for the slot. This is the check the booking critical section relies on.
func (d ReservationsDocument) SlotTaken(date string, slot types.TimeString) bool {
	for _, r := range d[date] {
		if r.Slot == slot {
			return true
		}
	}
	return false
}

// ReservedSlots returns the set of slots already committed for a date
func (d ReservationsDocument) ReservedSlots(date string) map[types.TimeString]struct{} {
	taken := make(map[types.TimeString]struct{}, len(d[date]))
	for _, r := range d[date] {
		taken[r.Slot] = struct{}{}
	}
	return taken
}
