package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helenacolabronze/booking-service/internal/domain"
	"github.com/helenacolabronze/booking-service/internal/service/schedule/models"
	"github.com/helenacolabronze/booking-service/pkg/types"
)

type stubScheduleStore struct {
	doc      domain.ScheduleDocument
	loadErr  error
	storeErr error
	stored   domain.ScheduleDocument
}

func (s *stubScheduleStore) Load(_ context.Context) (domain.ScheduleDocument, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.doc == nil {
		return domain.ScheduleDocument{}, nil
	}
	return s.doc, nil
}

func (s *stubScheduleStore) Store(_ context.Context, doc domain.ScheduleDocument) error {
	if s.storeErr != nil {
		return s.storeErr
	}
	s.stored = doc
	return nil
}

type stubReservationStore struct {
	doc domain.ReservationsDocument
}

func (s *stubReservationStore) Load(_ context.Context) (domain.ReservationsDocument, error) {
	if s.doc == nil {
		return domain.ReservationsDocument{}, nil
	}
	return s.doc, nil
}

type stubSnapshotter struct {
	calls int
	err   error
}

func (s *stubSnapshotter) SnapshotAll(_ context.Context) error {
	s.calls++
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_Get_ConfiguredDay(t *testing.T) {
	store := &stubScheduleStore{doc: domain.ScheduleDocument{
		"2026-09-10": {
			Blocked:        false,
			AvailableSlots: []types.TimeString{"10:00", "14:00"},
		},
	}}
	reservations := &stubReservationStore{doc: domain.ReservationsDocument{
		"2026-09-10": {{Slot: "09:00", ClientName: "Maria Silva"}},
	}}

	svc := NewService(store, reservations, &stubSnapshotter{}, nopLogger{})

	resp, err := svc.Get(context.Background(), "2026-09-10")
	require.NoError(t, err)

	assert.True(t, resp.Configured)
	assert.False(t, resp.Blocked)
	assert.Equal(t, []string{"10:00", "14:00"}, resp.AvailableSlots)
	assert.Equal(t, []string{"09:00"}, resp.ReservedSlots)
}

func TestService_Get_UnconfiguredDay(t *testing.T) {
	svc := NewService(&stubScheduleStore{}, &stubReservationStore{}, &stubSnapshotter{}, nopLogger{})

	resp, err := svc.Get(context.Background(), "2026-09-10")
	require.NoError(t, err)

	assert.False(t, resp.Configured)
	assert.False(t, resp.Blocked)
	assert.Empty(t, resp.AvailableSlots)
	assert.Empty(t, resp.ReservedSlots)
}

func TestService_Get_InvalidDate(t *testing.T) {
	svc := NewService(&stubScheduleStore{}, &stubReservationStore{}, &stubSnapshotter{}, nopLogger{})

	_, err := svc.Get(context.Background(), "10/09/2026")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestService_Update_StoresWholeDay(t *testing.T) {
	store := &stubScheduleStore{doc: domain.ScheduleDocument{
		"2026-09-10": {AvailableSlots: []types.TimeString{"08:00"}},
	}}
	snapshots := &stubSnapshotter{}

	svc := NewService(store, &stubReservationStore{}, snapshots, nopLogger{})

	resp, err := svc.Update(context.Background(), "2026-09-10", &models.UpdateDayScheduleRequest{
		AvailableSlots: []string{"14:00", "15:00", "14:00"},
	})
	require.NoError(t, err)

	assert.True(t, resp.Configured)
	assert.Equal(t, []string{"14:00", "15:00"}, resp.AvailableSlots)

	stored := store.stored["2026-09-10"]
	assert.Equal(t, []types.TimeString{"14:00", "15:00"}, stored.AvailableSlots)
	assert.Equal(t, 1, snapshots.calls)
}

func TestService_Update_BlockedClearsSlots(t *testing.T) {
	store := &stubScheduleStore{}
	svc := NewService(store, &stubReservationStore{}, &stubSnapshotter{}, nopLogger{})

	resp, err := svc.Update(context.Background(), "2026-09-10", &models.UpdateDayScheduleRequest{
		Blocked:        true,
		AvailableSlots: []string{"14:00"},
	})
	require.NoError(t, err)

	assert.True(t, resp.Blocked)
	assert.Empty(t, resp.AvailableSlots)
	assert.Empty(t, store.stored["2026-09-10"].AvailableSlots)
}

func TestService_Update_RejectsSlotOutsideCatalog(t *testing.T) {
	svc := NewService(&stubScheduleStore{}, &stubReservationStore{}, &stubSnapshotter{}, nopLogger{})

	_, err := svc.Update(context.Background(), "2026-09-10", &models.UpdateDayScheduleRequest{
		AvailableSlots: []string{"14:30"},
	})
	assert.ErrorIs(t, err, ErrInvalidSlot)
}

func TestService_Update_SnapshotFailureDoesNotFail(t *testing.T) {
	store := &stubScheduleStore{}
	snapshots := &stubSnapshotter{err: errors.New("disk full")}

	svc := NewService(store, &stubReservationStore{}, snapshots, nopLogger{})

	_, err := svc.Update(context.Background(), "2026-09-10", &models.UpdateDayScheduleRequest{
		AvailableSlots: []string{"08:00"},
	})
	require.NoError(t, err)
	assert.NotNil(t, store.stored)
}

func TestService_Update_StoreFailure(t *testing.T) {
	store := &stubScheduleStore{storeErr: errors.New("boom")}
	snapshots := &stubSnapshotter{}

	svc := NewService(store, &stubReservationStore{}, snapshots, nopLogger{})

	_, err := svc.Update(context.Background(), "2026-09-10", &models.UpdateDayScheduleRequest{
		AvailableSlots: []string{"08:00"},
	})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 0, snapshots.calls)
}
