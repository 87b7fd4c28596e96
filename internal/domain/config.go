package domain

import "github.com/helenacolabronze/booking-service/pkg/types"

// DayConfig is the admin-controlled configuration of one calendar date:
// whether the date is blocked and which catalog slots are offered.
// It is always created or overwritten wholesale, never patched.
type DayConfig struct {
	Blocked        bool               `json:"blocked"`
	AvailableSlots []types.TimeString `json:"availableSlots"`
}

// HasSlot returns true if the slot is currently offered on this day
func (c DayConfig) HasSlot(slot types.TimeString) bool {
	for _, s := range c.AvailableSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// WithoutSlot returns a copy of the config with the slot removed from the
// offered list. The original slot order is preserved.
func (c DayConfig) WithoutSlot(slot types.TimeString) DayConfig {
	kept := make([]types.TimeString, 0, len(c.AvailableSlots))
	for _, s := range c.AvailableSlots {
		if s != slot {
			kept = append(kept, s)
		}
	}
	c.AvailableSlots = kept
	return c
}

// ScheduleDocument maps ISO dates ("2006-01-02") to their configuration.
// The document is always loaded and persisted as a whole.
type ScheduleDocument map[string]DayConfig

// DayConfigFor returns the configuration for a date. An unconfigured date
// reads as an open day with no offered slots.
func (d ScheduleDocument) DayConfigFor(date string) (DayConfig, bool) {
	cfg, ok := d[date]
	if !ok {
		return DayConfig{AvailableSlots: []types.TimeString{}}, false
	}
	return cfg, true
}
