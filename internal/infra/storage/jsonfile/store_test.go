package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helenacolabronze/booking-service/internal/domain"
	"github.com/helenacolabronze/booking-service/pkg/types"
)

func TestScheduleStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	store := NewScheduleStore(path)
	ctx := context.Background()

	doc := domain.ScheduleDocument{
		"2025-06-01": {Blocked: false, AvailableSlots: []types.TimeString{"14:00", "15:00"}},
		"2025-06-02": {Blocked: true, AvailableSlots: []types.TimeString{}},
	}

	require.NoError(t, store.Store(ctx, doc))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestReservationStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reservations.json")
	store := NewReservationStore(path)
	ctx := context.Background()

	doc := domain.ReservationsDocument{
		"2025-06-01": {
			{
				ID:          "b6196c23-6a02-4a35-8a3c-1d4b9ffcb204",
				Slot:        "14:00",
				ClientName:  "Maria Silva",
				ClientPhone: "5522998562940",
				ClientEmail: "maria@example.com",
				Service:     "Banho de Lua",
				CreatedAt:   time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC),
			},
		},
	}

	require.NoError(t, store.Store(ctx, doc))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestLoad_MissingFile(t *testing.T) {
	store := NewScheduleStore(filepath.Join(t.TempDir(), "does-not-exist.json"))

	doc, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o644))

	doc, err := NewScheduleStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestLoad_FileWithBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.json")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"2025-06-01":{"blocked":true,"availableSlots":[]}}`)...)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	doc, err := NewScheduleStore(path).Load(context.Background())
	require.NoError(t, err)
	assert.True(t, doc["2025-06-01"].Blocked)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reservations.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewReservationStore(path).Load(context.Background())
	assert.ErrorIs(t, err, ErrDecodeDocument)
}
