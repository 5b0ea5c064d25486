package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15", d.String())

	_, err = ParseDate("15/09/2026")
	assert.Error(t, err)

	_, err = ParseDate("2026-13-01")
	assert.Error(t, err)
}

func TestParseTime(t *testing.T) {
	tm, err := ParseTime("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30:00", tm.String())

	_, err = ParseTime("9:30 AM")
	assert.Error(t, err)

	_, err = ParseTime("25:00")
	assert.Error(t, err)
}

func TestDateOnlyJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-09-15")
	require.NoError(t, err)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-09-15"`, string(out))

	var back DateOnly
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, d.String(), back.String())
}

func TestTimeOfDaySerializesWithSeconds(t *testing.T) {
	tm, err := ParseTime("14:05")
	require.NoError(t, err)

	out, err := json.Marshal(tm)
	require.NoError(t, err)
	assert.Equal(t, `"14:05:00"`, string(out))
}

func TestDateOnlyScan(t *testing.T) {
	var d DateOnly
	require.NoError(t, d.Scan(time.Date(2026, 9, 15, 13, 45, 0, 0, time.UTC)))
	assert.Equal(t, "2026-09-15", d.String())

	require.NoError(t, d.Scan("2026-10-01"))
	assert.Equal(t, "2026-10-01", d.String())
}

func TestTimeOfDayScan(t *testing.T) {
	var tm TimeOfDay
	require.NoError(t, tm.Scan("09:30:00"))
	assert.Equal(t, "09:30:00", tm.String())

	require.NoError(t, tm.Scan("09:30"))
	assert.Equal(t, "09:30:00", tm.String())
}

func TestIsValidAppointmentStatus(t *testing.T) {
	for _, status := range ValidAppointmentStatuses {
		assert.True(t, IsValidAppointmentStatus(status))
	}
	assert.False(t, IsValidAppointmentStatus("confirmed"))
	assert.False(t, IsValidAppointmentStatus(""))
}
