package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-14")

	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 14, d.Day())
}

func TestParseDateRejectsBadFormat(t *testing.T) {
	for _, in := range []string{"14-03-2025", "2025/03/14", "hoy", ""} {
		_, err := ParseDate(in)
		assert.Error(t, err, "input %q", in)
	}

	_, err := ParseDate("no-es-fecha")
	assert.Contains(t, err.Error(), "fecha inválida")
	assert.Contains(t, err.Error(), DateLayout)
}

func TestDateMarshalsAsCalendarDay(t *testing.T) {
	d := NewDate(time.Date(2025, 3, 14, 17, 45, 12, 0, time.Local))

	body, err := json.Marshal(d)

	require.NoError(t, err)
	assert.Equal(t, `"2025-03-14"`, string(body))
}

func TestDateUnmarshalRoundTrip(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-12-31"`), &d))

	body, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-12-31"`, string(body))
}

func TestDateUnmarshalNullLeavesZero(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestDateScanTruncatesTimeOfDay(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)))

	assert.Equal(t, "2025-06-01", d.Format(DateLayout))
	assert.Equal(t, 0, d.Hour())
}

func TestDateScanRejectsUnsupportedType(t *testing.T) {
	var d Date
	assert.Error(t, d.Scan("2025-06-01"))
}
