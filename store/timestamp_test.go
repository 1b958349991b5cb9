// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampScan(t *testing.T) {
	want := time.Date(2025, 6, 1, 12, 30, 45, 123000000, time.UTC)

	testCases := []struct {
		name string
		src  any
		want time.Time
	}{
		{"time.Time in another zone", want.In(time.FixedZone("CET", 3600)), want},
		{"sqlite default format", "2025-06-01T12:30:45.123Z", want},
		{"sqlite CURRENT_TIMESTAMP", "2025-06-01 12:30:45", want.Truncate(time.Second)},
		{"bytes", []byte("2025-06-01T12:30:45.123Z"), want},
		{"offset", "2025-06-01 14:30:45.123+02:00", want},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got time.Time
			require.NoError(t, timestamp{&got}.Scan(tc.src))
			assert.True(t, got.Equal(tc.want), "got %v, want %v", got, tc.want)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestTimestampScan_Invalid(t *testing.T) {
	var got time.Time
	assert.Error(t, timestamp{&got}.Scan("yesterday"))
	assert.Error(t, timestamp{&got}.Scan(int64(12)))
	assert.Error(t, timestamp{&got}.Scan(nil))
}

func TestRebind(t *testing.T) {
	q := "UPDATE ideas SET votes = votes + 1 WHERE id = $1 AND text = $12"

	assert.Equal(t, q, rebind("postgres", q))
	assert.Equal(t, "UPDATE ideas SET votes = votes + 1 WHERE id = ?1 AND text = ?12", rebind("sqlite", q))
}
