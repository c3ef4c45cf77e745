package countdown_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connecthq/registrar/internal/countdown"
)

func TestParse_Invalid(t *testing.T) {
	_, err := countdown.Parse("25:99", "UTC")
	assert.Error(t, err)

	_, err = countdown.Parse("22:30", "Mars/Olympus_Mons")
	assert.Error(t, err)
}

func TestNext(t *testing.T) {
	clock, err := countdown.Parse("22:30", "UTC")
	require.NoError(t, err)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "before target",
			now:  time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC),
			want: time.Date(2025, 3, 1, 22, 30, 0, 0, time.UTC),
		},
		{
			name: "exactly at target",
			now:  time.Date(2025, 3, 1, 22, 30, 0, 0, time.UTC),
			want: time.Date(2025, 3, 1, 22, 30, 0, 0, time.UTC),
		},
		{
			name: "after target rolls to tomorrow",
			now:  time.Date(2025, 3, 1, 23, 0, 0, 0, time.UTC),
			want: time.Date(2025, 3, 2, 22, 30, 0, 0, time.UTC),
		},
		{
			name: "end of month",
			now:  time.Date(2025, 1, 31, 23, 59, 0, 0, time.UTC),
			want: time.Date(2025, 2, 1, 22, 30, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(clock.Next(tt.now)), "got %v", clock.Next(tt.now))
		})
	}
}

func TestRemaining(t *testing.T) {
	clock, err := countdown.Parse("22:30", "UTC")
	require.NoError(t, err)

	r := clock.Remaining(time.Date(2025, 3, 1, 20, 14, 45, 0, time.UTC))
	assert.Equal(t, 2, r.Hours)
	assert.Equal(t, 15, r.Minutes)
	assert.Equal(t, 15, r.Seconds)
}

func TestRemaining_OtherLocation(t *testing.T) {
	clock, err := countdown.Parse("09:00", "Europe/Berlin")
	require.NoError(t, err)

	// 07:00 UTC on a winter day is 08:00 in Berlin.
	r := clock.Remaining(time.Date(2025, 1, 15, 7, 0, 0, 0, time.UTC))
	assert.Equal(t, 1, r.Hours)
	assert.Equal(t, 0, r.Minutes)
}
