package timezone_test

import (
	"testing"
	"time"

	"bookspace/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withLocation(t *testing.T, name string) {
	t.Helper()

	loc, err := time.LoadLocation(name)
	require.NoError(t, err)

	previous := timezone.GetLocation()
	timezone.SetLocation(loc)
	t.Cleanup(func() { timezone.SetLocation(previous) })
}

func TestTimezoneInit(t *testing.T) {
	if timezone.GetLocation() == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestToISO(t *testing.T) {
	t.Run("utc wall time", func(t *testing.T) {
		withLocation(t, "UTC")

		iso, err := timezone.ToISO("2024-01-01T10:00")
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01T10:00:00.000Z", iso)
	})

	t.Run("wall time converted from application timezone", func(t *testing.T) {
		withLocation(t, "Asia/Jakarta")

		iso, err := timezone.ToISO("2024-01-01T10:00")
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01T03:00:00.000Z", iso)
	})

	t.Run("with seconds", func(t *testing.T) {
		withLocation(t, "UTC")

		iso, err := timezone.ToISO("2024-01-01T10:00:30")
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01T10:00:30.000Z", iso)
	})

	t.Run("with milliseconds", func(t *testing.T) {
		withLocation(t, "Asia/Jakarta")

		iso, err := timezone.ToISO("2024-01-01T10:00:30.250")
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01T03:00:30.250Z", iso)
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := timezone.ToISO("tomorrow")
		assert.Error(t, err)
	})
}

func TestParseAPI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "rfc3339 with zulu",
			input:    "2024-01-01T10:00:00Z",
			expected: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "milliseconds",
			input:    "2024-01-01T10:00:00.000Z",
			expected: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "offset",
			input:    "2024-01-01T17:00:00+07:00",
			expected: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "no offset is utc",
			input:    "2024-01-01T10:00:00",
			expected: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:     "dotnet ticks precision",
			input:    "2024-01-01T10:00:00.1234567",
			expected: time.Date(2024, 1, 1, 10, 0, 0, 123456700, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.ParseAPI(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}

	_, err := timezone.ParseAPI("not a time")
	assert.Error(t, err)
}

func TestToDateTimeLocal(t *testing.T) {
	withLocation(t, "Asia/Jakarta")

	assert.Equal(t, "2024-01-01T17:00", timezone.ToDateTimeLocal("2024-01-01T10:00:00Z"))
	assert.Equal(t, "garbage-value-xx", timezone.ToDateTimeLocal("garbage-value-xxxxxx"))
	assert.Equal(t, "short", timezone.ToDateTimeLocal("short"))
}

func TestRoundTrip(t *testing.T) {
	withLocation(t, "America/New_York")

	local := timezone.ToDateTimeLocal("2024-06-01T14:30:00.000Z")
	iso, err := timezone.ToISO(local)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01T14:30:00.000Z", iso)
}

func TestDisplay(t *testing.T) {
	withLocation(t, "UTC")

	assert.Equal(t, "1 Jan 2024, 10:00", timezone.Display("2024-01-01T10:00:00Z"))
	assert.Equal(t, "-", timezone.Display(""))
	assert.Equal(t, "soon", timezone.Display("soon"))
}
