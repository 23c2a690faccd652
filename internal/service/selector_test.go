package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrdinalDay(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{"jan 1 is day zero", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{"jan 4", time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), 3},
		{"jan 5", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), 4},
		{"time of day ignored", time.Date(2024, 1, 5, 23, 59, 59, 0, time.UTC), 4},
		{"dec 31 leap year", time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC), 365},
		{"dec 31 common year", time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC), 364},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrdinalDay(tt.at))
		})
	}
}

func TestOrdinalDayUsesUTCFields(t *testing.T) {
	kabul := time.FixedZone("AFT", int(4*time.Hour+30*time.Minute)/int(time.Second))

	// 2024-01-06 02:00 in Kabul is still 2024-01-05 in UTC.
	local := time.Date(2024, 1, 6, 2, 0, 0, 0, kabul)
	assert.Equal(t, 4, OrdinalDay(local))

	// Two moments on the same UTC day agree no matter where they were
	// observed from.
	utc := time.Date(2024, 1, 5, 21, 30, 0, 0, time.UTC)
	assert.Equal(t, OrdinalDay(utc), OrdinalDay(local))
}

func TestDailyIndex(t *testing.T) {
	// Spec worked example: three records, days 0/3/4 map to 0/0/1.
	assert.Equal(t, 0, DailyIndex(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 3))
	assert.Equal(t, 0, DailyIndex(time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), 3))
	assert.Equal(t, 1, DailyIndex(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), 3))
}

func TestDailyIndexConsecutiveDays(t *testing.T) {
	const n = 7

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for day.Year() == 2024 {
		next := day.AddDate(0, 0, 1)
		if next.Year() != 2024 {
			break
		}
		assert.Equal(t, (DailyIndex(day, n)+1)%n, DailyIndex(next, n))
		day = next
	}
}
