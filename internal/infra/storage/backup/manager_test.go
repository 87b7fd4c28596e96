package backup

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helenacolabronze/booking-service/internal/domain"
	"github.com/helenacolabronze/booking-service/pkg/types"
)

func TestManager_SnapshotAndRead(t *testing.T) {
	m := NewManager(t.TempDir())

	doc := domain.ScheduleDocument{
		"2025-06-01": {Blocked: false, AvailableSlots: []types.TimeString{"14:00", "15:00"}},
	}

	name, err := m.Snapshot("schedule", doc)
	require.NoError(t, err)
	assert.Contains(t, name, "_schedule.json")

	data, err := m.Read(name)
	require.NoError(t, err)

	restored := domain.ScheduleDocument{}
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, doc, restored)
}

func TestManager_ListNewestFirst(t *testing.T) {
	m := NewManager(t.TempDir())
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		ts := base.Add(time.Duration(i) * time.Minute)
		m.now = func() time.Time { return ts }
		_, err := m.Snapshot("reservations", domain.ReservationsDocument{})
		require.NoError(t, err)
	}

	snapshots, err := m.List()
	require.NoError(t, err)
	require.Len(t, snapshots, 3)

	assert.Equal(t, "2025-06-01_10-02-00_reservations.json", snapshots[0].Name)
	assert.Equal(t, "reservations", snapshots[0].Label)
	assert.Equal(t, base.Add(2*time.Minute), snapshots[0].CreatedAt)
	assert.Equal(t, "2025-06-01_10-00-00_reservations.json", snapshots[2].Name)
}

func TestManager_ListEmptyDir(t *testing.T) {
	m := NewManager(t.TempDir() + "/missing")

	snapshots, err := m.List()
	require.NoError(t, err)
	assert.Empty(t, snapshots)
}

func TestManager_ReadRejectsBadNames(t *testing.T) {
	m := NewManager(t.TempDir())

	_, err := m.Read("../../etc/passwd")
	assert.ErrorIs(t, err, ErrInvalidSnapshotName)

	_, err = m.Read("nope.json")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}
