package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helenacolabronze/booking-service/internal/domain"
	"github.com/helenacolabronze/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubReservationStore struct{ doc domain.ReservationsDocument }

func (s stubReservationStore) Load(context.Context) (domain.ReservationsDocument, error) {
	return s.doc, nil
}

type stubScheduleStore struct{ doc domain.ScheduleDocument }

func (s stubScheduleStore) Load(context.Context) (domain.ScheduleDocument, error) {
	return s.doc, nil
}

func newUC(schedule domain.ScheduleDocument, reservations domain.ReservationsDocument) *UseCase {
	return NewUseCase(stubReservationStore{doc: reservations}, stubScheduleStore{doc: schedule}, nopLogger{})
}

func req(date string) *Request {
	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		panic(err)
	}
	return &Request{Date: parsed}
}

func TestExecute_ConfiguredMinusReserved(t *testing.T) {
	schedule := domain.ScheduleDocument{
		"2025-06-01": {AvailableSlots: []types.TimeString{"14:00", "15:00", "16:00"}},
	}
	reservations := domain.ReservationsDocument{
		"2025-06-01": {{ID: "r1", Slot: "15:00"}},
	}

	resp, err := newUC(schedule, reservations).Execute(context.Background(), req("2025-06-01"))
	require.NoError(t, err)

	assert.False(t, resp.Blocked)
	assert.Equal(t, []types.TimeString{"14:00", "16:00"}, resp.Slots)
}

func TestExecute_BlockedDate(t *testing.T) {
	schedule := domain.ScheduleDocument{
		"2025-06-01": {Blocked: true, AvailableSlots: []types.TimeString{"14:00"}},
	}

	resp, err := newUC(schedule, domain.ReservationsDocument{}).Execute(context.Background(), req("2025-06-01"))
	require.NoError(t, err)

	assert.True(t, resp.Blocked)
	assert.Empty(t, resp.Slots)
}

func TestExecute_UnconfiguredDate(t *testing.T) {
	resp, err := newUC(domain.ScheduleDocument{}, domain.ReservationsDocument{}).
		Execute(context.Background(), req("2025-06-01"))
	require.NoError(t, err)

	assert.False(t, resp.Blocked)
	assert.Empty(t, resp.Slots)
}

func TestExecute_AllSlotsTaken(t *testing.T) {
	schedule := domain.ScheduleDocument{
		"2025-06-01": {AvailableSlots: []types.TimeString{"14:00"}},
	}
	reservations := domain.ReservationsDocument{
		"2025-06-01": {{ID: "r1", Slot: "14:00"}},
	}

	resp, err := newUC(schedule, reservations).Execute(context.Background(), req("2025-06-01"))
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}
