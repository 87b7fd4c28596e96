package backups

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helenacolabronze/booking-service/internal/domain"
	"github.com/helenacolabronze/booking-service/internal/infra/storage/backup"
	"github.com/helenacolabronze/booking-service/pkg/types"
)

type stubScheduleStore struct {
	doc    domain.ScheduleDocument
	stored domain.ScheduleDocument
}

func (s *stubScheduleStore) Load(_ context.Context) (domain.ScheduleDocument, error) {
	if s.doc == nil {
		return domain.ScheduleDocument{}, nil
	}
	return s.doc, nil
}

func (s *stubScheduleStore) Store(_ context.Context, doc domain.ScheduleDocument) error {
	s.stored = doc
	return nil
}

type stubReservationStore struct {
	doc    domain.ReservationsDocument
	stored domain.ReservationsDocument
}

func (s *stubReservationStore) Load(_ context.Context) (domain.ReservationsDocument, error) {
	if s.doc == nil {
		return domain.ReservationsDocument{}, nil
	}
	return s.doc, nil
}

func (s *stubReservationStore) Store(_ context.Context, doc domain.ReservationsDocument) error {
	s.stored = doc
	return nil
}

type stubManager struct {
	snapshots map[string][]byte // name -> body
	taken     []string          // labels in order taken
	listed    []backup.Snapshot
	readErr   error
}

func (m *stubManager) Snapshot(label string, doc interface{}) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	name := "2026-09-01_12-00-00_" + label + ".json"
	if m.snapshots == nil {
		m.snapshots = map[string][]byte{}
	}
	m.snapshots[name] = data
	m.taken = append(m.taken, label)
	return name, nil
}

func (m *stubManager) List() ([]backup.Snapshot, error) {
	return m.listed, nil
}

func (m *stubManager) Read(name string) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	data, ok := m.snapshots[name]
	if !ok {
		return nil, backup.ErrSnapshotNotFound
	}
	return data, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_SnapshotAll(t *testing.T) {
	manager := &stubManager{}
	svc := NewService(&stubScheduleStore{}, &stubReservationStore{}, manager, nopLogger{})

	err := svc.SnapshotAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"schedule", "reservations"}, manager.taken)
}

func TestService_Restore_Schedule(t *testing.T) {
	doc := domain.ScheduleDocument{
		"2026-09-10": {AvailableSlots: []types.TimeString{"08:00", "14:00"}},
	}
	manager := &stubManager{}
	_, err := manager.Snapshot("schedule", doc)
	require.NoError(t, err)

	schedule := &stubScheduleStore{}
	svc := NewService(schedule, &stubReservationStore{}, manager, nopLogger{})

	err = svc.Restore(context.Background(), "2026-09-01_12-00-00_schedule.json")
	require.NoError(t, err)

	require.Contains(t, schedule.stored, "2026-09-10")
	assert.Equal(t, []types.TimeString{"08:00", "14:00"}, schedule.stored["2026-09-10"].AvailableSlots)
}

func TestService_Restore_Reservations(t *testing.T) {
	doc := domain.ReservationsDocument{
		"2026-09-10": {{ID: "a", Slot: "08:00", ClientName: "Maria Silva"}},
	}
	manager := &stubManager{}
	_, err := manager.Snapshot("reservations", doc)
	require.NoError(t, err)

	reservations := &stubReservationStore{}
	svc := NewService(&stubScheduleStore{}, reservations, manager, nopLogger{})

	err = svc.Restore(context.Background(), "2026-09-01_12-00-00_reservations.json")
	require.NoError(t, err)

	require.Len(t, reservations.stored["2026-09-10"], 1)
	assert.Equal(t, "Maria Silva", reservations.stored["2026-09-10"][0].ClientName)
}

func TestService_Restore_NotFound(t *testing.T) {
	svc := NewService(&stubScheduleStore{}, &stubReservationStore{}, &stubManager{}, nopLogger{})

	err := svc.Restore(context.Background(), "2026-09-01_12-00-00_schedule.json")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestService_Restore_UnknownLabel(t *testing.T) {
	manager := &stubManager{snapshots: map[string][]byte{
		"2026-09-01_12-00-00_notes.json": []byte("{}"),
	}}
	svc := NewService(&stubScheduleStore{}, &stubReservationStore{}, manager, nopLogger{})

	err := svc.Restore(context.Background(), "2026-09-01_12-00-00_notes.json")
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
}

func TestService_List(t *testing.T) {
	manager := &stubManager{listed: []backup.Snapshot{
		{Name: "2026-09-01_12-00-00_schedule.json", Label: "schedule"},
	}}
	svc := NewService(&stubScheduleStore{}, &stubReservationStore{}, manager, nopLogger{})

	snapshots, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, "schedule", snapshots[0].Label)
}
