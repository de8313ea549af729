package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"elegant-hotel/models"
)

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "three full nights",
			checkIn:  day("2024-06-01"),
			checkOut: day("2024-06-04"),
			want:     3,
		},
		{
			name:     "single night",
			checkIn:  day("2024-06-01"),
			checkOut: day("2024-06-02"),
			want:     1,
		},
		{
			name:     "partial day rounds up",
			checkIn:  day("2024-06-01").Add(14 * time.Hour),
			checkOut: day("2024-06-03").Add(11 * time.Hour),
			want:     2,
		},
		{
			name:     "few hours still count as one night",
			checkIn:  day("2024-06-01"),
			checkOut: day("2024-06-01").Add(6 * time.Hour),
			want:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NightsBetween(tt.checkIn, tt.checkOut))
		})
	}
}

func TestTotalPriceScenario(t *testing.T) {
	// room at 100/night, 2024-06-01 → 2024-06-04 must cost 300
	nights := NightsBetween(day("2024-06-01"), day("2024-06-04"))
	assert.Equal(t, 3, nights)
	assert.Equal(t, 300.0, 100.0*float64(nights))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{"partial overlap", "2024-06-01", "2024-06-05", "2024-06-03", "2024-06-07", true},
		{"contained", "2024-06-01", "2024-06-10", "2024-06-03", "2024-06-05", true},
		{"identical", "2024-06-01", "2024-06-05", "2024-06-01", "2024-06-05", true},
		{"back to back, checkout day reused", "2024-06-01", "2024-06-05", "2024-06-05", "2024-06-08", false},
		{"disjoint", "2024-06-01", "2024-06-03", "2024-06-10", "2024-06-12", false},
		{"before", "2024-06-10", "2024-06-12", "2024-06-01", "2024-06-03", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(day(tt.aStart), day(tt.aEnd), day(tt.bStart), day(tt.bEnd))
			assert.Equal(t, tt.want, got)
			// overlap is symmetric
			assert.Equal(t, tt.want, Overlaps(day(tt.bStart), day(tt.bEnd), day(tt.aStart), day(tt.aEnd)))
		})
	}
}

func TestCanTransition(t *testing.T) {
	allowed := map[[2]string]bool{
		{models.BookingPending, models.BookingConfirmed}:   true,
		{models.BookingPending, models.BookingCancelled}:   true,
		{models.BookingConfirmed, models.BookingCompleted}: true,
		{models.BookingConfirmed, models.BookingCancelled}: true,
		{models.BookingCancelled, models.BookingPending}:   true,
		{models.BookingCompleted, models.BookingPending}:   true,
	}

	statuses := []string{
		models.BookingPending,
		models.BookingConfirmed,
		models.BookingCancelled,
		models.BookingCompleted,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]string{from, to}]
			assert.Equalf(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestReopenTransition(t *testing.T) {
	assert.True(t, ReopenTransition(models.BookingCancelled, models.BookingPending))
	assert.True(t, ReopenTransition(models.BookingCompleted, models.BookingPending))
	assert.False(t, ReopenTransition(models.BookingPending, models.BookingConfirmed))
	assert.False(t, ReopenTransition(models.BookingConfirmed, models.BookingCancelled))
}

func TestNewReferenceCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code := newReferenceCode()
		assert.Len(t, code, 11)
		assert.Equal(t, "BK-", code[:3])
		assert.False(t, seen[code], "reference codes must not repeat")
		seen[code] = true
	}
}
