package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("IST", 5*60*60+30*60)
	in := time.Date(2024, time.March, 9, 17, 45, 12, 999, loc)

	got := StartOfDay(in)

	assert.Equal(t, time.Date(2024, time.March, 9, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestIsExpired(t *testing.T) {
	assert.True(t, IsExpired(UTCNow().Add(-time.Minute)))
	assert.False(t, IsExpired(UTCNow().Add(time.Minute)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("1999-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1999, time.June, 15, 0, 0, 0, 0, time.UTC), d)

	ts, err := ParseDate("1999-06-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, ts.Hour())

	_, err = ParseDate("15/06/1999")
	assert.Error(t, err)
}
