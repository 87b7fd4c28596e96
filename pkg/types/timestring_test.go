package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "08:00", want: "08:00"},
		{name: "valid evening", input: "21:00", want: "21:00"},
		{name: "missing minutes", input: "8", wantErr: true},
		{name: "out of range hour", input: "25:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "noon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("15:30").IsAfter("15:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err, "crossing midnight is not a valid slot time")
}

func TestNewTimeString(t *testing.T) {
	now := time.Date(2025, 6, 1, 14, 7, 33, 0, time.UTC)
	assert.Equal(t, TimeString("14:07"), NewTimeString(now))
}
