package domain

import "github.com/helenacolabronze/booking-service/pkg/types"

// SlotCatalog is the fixed set of bookable appointment start times.
// A day's available slots are always a subset of this list.
var SlotCatalog = []types.TimeString{
	"08:00", "09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
	"18:00", "19:00", "20:00", "21:00",
}

// IsCatalogSlot returns true if the slot is one of the fixed catalog values
func IsCatalogSlot(slot types.TimeString) bool {
	for _, s := range SlotCatalog {
		if s == slot {
			return true
		}
	}
	return false
}
