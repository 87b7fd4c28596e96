package reservations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helenacolabronze/booking-service/internal/domain"
)

type stubStore struct {
	doc      domain.ReservationsDocument
	loadErr  error
	storeErr error
	stored   domain.ReservationsDocument
}

func (s *stubStore) Load(_ context.Context) (domain.ReservationsDocument, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	if s.doc == nil {
		return domain.ReservationsDocument{}, nil
	}
	return s.doc, nil
}

func (s *stubStore) Store(_ context.Context, doc domain.ReservationsDocument) error {
	if s.storeErr != nil {
		return s.storeErr
	}
	s.stored = doc
	return nil
}

type stubNotifier struct {
	sent    []string
	failFor map[string]error
}

func (n *stubNotifier) SendReminder(_ context.Context, phone, _, _ string, _ string) (string, error) {
	if err := n.failFor[phone]; err != nil {
		return "", err
	}
	n.sent = append(n.sent, phone)
	return "SM" + phone, nil
}

type stubSnapshotter struct {
	calls int
}

func (s *stubSnapshotter) SnapshotAll(_ context.Context) error {
	s.calls++
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleDoc() domain.ReservationsDocument {
	return domain.ReservationsDocument{
		"2026-09-10": {
			{ID: "a", Slot: "08:00", ClientName: "Maria Silva", ClientPhone: "5522998562940"},
			{ID: "b", Slot: "10:00", ClientName: "Joana Souza", ClientPhone: "5521987654321"},
			{ID: "c", Slot: "14:00", ClientName: "Ana Lima", ClientPhone: "5531912345678"},
		},
		"2026-09-12": {
			{ID: "d", Slot: "09:00", ClientName: "Clara Nunes", ClientPhone: "5511955554444"},
		},
	}
}

func TestService_ListByDate(t *testing.T) {
	svc := NewService(&stubStore{doc: sampleDoc()}, nil, &stubSnapshotter{}, nopLogger{})

	resp, err := svc.ListByDate(context.Background(), "2026-09-10")
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 3)
	assert.Equal(t, "Maria Silva", resp.Reservations[0].ClientName)
}

func TestService_ListByDate_EmptyDay(t *testing.T) {
	svc := NewService(&stubStore{}, nil, &stubSnapshotter{}, nopLogger{})

	resp, err := svc.ListByDate(context.Background(), "2026-09-10")
	require.NoError(t, err)
	assert.NotNil(t, resp.Reservations)
	assert.Empty(t, resp.Reservations)
}

func TestService_Report(t *testing.T) {
	svc := NewService(&stubStore{doc: sampleDoc()}, nil, &stubSnapshotter{}, nopLogger{})

	report, err := svc.Report(context.Background(), "2026-09-01", "2026-09-11")
	require.NoError(t, err)

	require.Len(t, report.Days, 1)
	assert.Equal(t, "2026-09-10", report.Days[0].Date)
	assert.Equal(t, 3, report.Days[0].Count)
	assert.Equal(t, 3, report.Total)
}

func TestService_Report_InclusiveBounds(t *testing.T) {
	svc := NewService(&stubStore{doc: sampleDoc()}, nil, &stubSnapshotter{}, nopLogger{})

	report, err := svc.Report(context.Background(), "2026-09-10", "2026-09-12")
	require.NoError(t, err)

	require.Len(t, report.Days, 2)
	assert.Equal(t, 4, report.Total)
}

func TestService_Report_ReversedRange(t *testing.T) {
	svc := NewService(&stubStore{}, nil, &stubSnapshotter{}, nopLogger{})

	_, err := svc.Report(context.Background(), "2026-09-12", "2026-09-10")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestService_CancelByPosition(t *testing.T) {
	store := &stubStore{doc: sampleDoc()}
	snapshots := &stubSnapshotter{}
	svc := NewService(store, nil, snapshots, nopLogger{})

	cancelled, err := svc.CancelByPosition(context.Background(), "2026-09-10", 2)
	require.NoError(t, err)

	assert.Equal(t, "Joana Souza", cancelled.ClientName)
	require.Len(t, store.stored["2026-09-10"], 2)
	assert.Equal(t, "Maria Silva", store.stored["2026-09-10"][0].ClientName)
	assert.Equal(t, "Ana Lima", store.stored["2026-09-10"][1].ClientName)
	assert.Equal(t, 1, snapshots.calls)
}

func TestService_CancelByPosition_OutOfRange(t *testing.T) {
	svc := NewService(&stubStore{doc: sampleDoc()}, nil, &stubSnapshotter{}, nopLogger{})

	for _, position := range []int{0, -1, 4} {
		_, err := svc.CancelByPosition(context.Background(), "2026-09-10", position)
		assert.ErrorIs(t, err, ErrPositionOutOfRange)
	}
}

func TestService_CancelByPosition_StoreFailure(t *testing.T) {
	store := &stubStore{doc: sampleDoc(), storeErr: errors.New("boom")}
	snapshots := &stubSnapshotter{}
	svc := NewService(store, nil, snapshots, nopLogger{})

	_, err := svc.CancelByPosition(context.Background(), "2026-09-10", 1)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 0, snapshots.calls)
}

func TestService_ClearDay(t *testing.T) {
	store := &stubStore{doc: sampleDoc()}
	snapshots := &stubSnapshotter{}
	svc := NewService(store, nil, snapshots, nopLogger{})

	removed, err := svc.ClearDay(context.Background(), "2026-09-10")
	require.NoError(t, err)

	assert.Equal(t, 3, removed)
	assert.NotNil(t, store.stored["2026-09-10"])
	assert.Empty(t, store.stored["2026-09-10"])
	assert.Equal(t, 1, snapshots.calls)
}

func TestService_SendReminders(t *testing.T) {
	notifier := &stubNotifier{failFor: map[string]error{
		"5521987654321": errors.New("delivery failed"),
	}}
	svc := NewService(&stubStore{doc: sampleDoc()}, notifier, &stubSnapshotter{}, nopLogger{})

	resp, err := svc.SendReminders(context.Background(), "2026-09-10")
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Sent)
	assert.Equal(t, 1, resp.Failed)
	assert.Equal(t, []string{"5522998562940", "5531912345678"}, notifier.sent)
}

func TestService_SendReminders_NotifierDisabled(t *testing.T) {
	svc := NewService(&stubStore{doc: sampleDoc()}, nil, &stubSnapshotter{}, nopLogger{})

	_, err := svc.SendReminders(context.Background(), "2026-09-10")
	assert.ErrorIs(t, err, ErrNotifierDisabled)
}

func TestService_InvalidDate(t *testing.T) {
	svc := NewService(&stubStore{}, nil, &stubSnapshotter{}, nopLogger{})

	_, err := svc.ListByDate(context.Background(), "not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.CancelByPosition(context.Background(), "2026-13-40", 1)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
