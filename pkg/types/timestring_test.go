package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, time.March, 10, 9, 5, 42, 0, time.UTC))
	assert.Equal(t, TimeString("09:05"), ts)
}

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ts, err := NewTimeStringFromString("10:30")
		require.NoError(t, err)
		assert.Equal(t, "10:30", ts.String())
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"25:00", "10:61", "abc", "9:00:00", ""} {
			_, err := NewTimeStringFromString(s)
			assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", s)
		}
	})
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:30"))
	assert.False(t, TimeString("10:30").IsBefore("09:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))

	assert.True(t, TimeString("10:30").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))

	// Hour ordering wins over lexicographic quirks of single digits.
	assert.True(t, TimeString("02:00").IsBefore("10:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		start   TimeString
		minutes int
		want    TimeString
	}{
		{"09:00", 30, "09:30"},
		{"09:45", 30, "10:15"},
		{"23:45", 30, "00:15"}, // wraps around midnight
		{"10:00", 0, "10:00"},
	}

	for _, tt := range tests {
		got, err := tt.start.AddMinutes(tt.minutes)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s + %d min", tt.start, tt.minutes)
	}

	_, err := TimeString("nope").AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Format(t *testing.T) {
	got, err := TimeString("14:05").Format("3:04 PM")
	require.NoError(t, err)
	assert.Equal(t, "2:05 PM", got)
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", v)

	v, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = TimeString("99:99").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres TIME columns come back with seconds.
	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:15:42")))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, time.March, 10, 8, 45, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("08:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.ErrorIs(t, ts.Scan(42), ErrUnsupportedScanType)
}
