package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTakeAndReturn(t *testing.T) {
	b := NewBook("Dune", "Frank Herbert", "Sci-Fi", 1)
	require.True(t, b.Available())
	require.True(t, b.TakenAt().IsZero())

	b.Take()
	assert.False(t, b.Available())
	assert.False(t, b.TakenAt().IsZero())

	b.Return()
	assert.True(t, b.Available())
	assert.True(t, b.TakenAt().IsZero())
}

func TestBookOrdering(t *testing.T) {
	a := NewBook("A", "x", "g", 1)
	b := NewBook("B", "y", "g", 2)

	// Never-taken books tie on the zero stamp and fall back to id.
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))

	// The zero stamp sorts before any real borrow time.
	b.Take()
	assert.True(t, a.Less(b))

	// A later stamp sorts after, regardless of id order.
	a.Take()
	a.takenTime = b.takenTime.Add(time.Second)
	assert.True(t, b.Less(a))
	assert.False(t, a.Less(b))
}

func TestBookEqualByID(t *testing.T) {
	a := NewBook("Same", "x", "g", 7)
	b := NewBook("Other", "y", "h", 7)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(NewBook("Same", "x", "g", 8)))
}
