package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysSinceTruncates(t *testing.T) {
	c := NewClock(10 * time.Second)

	assert.Equal(t, 3, c.DaysSince(time.Now().Add(-35*time.Second)))
	assert.Equal(t, 0, c.DaysSince(time.Now().Add(-9*time.Second)))
	assert.Equal(t, 4, c.DaysSince(time.Now().Add(-40*time.Second-time.Millisecond)))
}

func TestDayLength(t *testing.T) {
	c := NewClock(time.Hour)
	assert.Equal(t, time.Hour, c.DayLength())
}
