package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyConstants(t *testing.T) {
	cases := []struct {
		kind              Kind
		limit, days, fine int
	}{
		{Student, 5, 3, 10},
		{Faculty, 10, 10, 5},
		{Guest, 2, 1, 20},
	}
	for _, tc := range cases {
		u := NewUser("n", "n@example.com", 0, tc.kind)
		assert.Equal(t, tc.limit, u.MaxBorrowLimit(), tc.kind.String())
		assert.Equal(t, tc.days, u.MaxBorrowedDays(), tc.kind.String())
		assert.Equal(t, tc.fine, u.FinePerDay(), tc.kind.String())
	}
}

func TestBorrowLimit(t *testing.T) {
	u := NewUser("guest", "g@example.com", 0, Guest)
	b1 := NewBook("One", "a", "g", 1)
	b2 := NewBook("Two", "a", "g", 2)
	b3 := NewBook("Three", "a", "g", 3)

	require.NoError(t, u.BorrowBook(&b1))
	require.NoError(t, u.BorrowBook(&b2))
	assert.False(t, u.CanBorrow())

	err := u.BorrowBook(&b3)
	assert.ErrorIs(t, err, ErrBorrowLimitExceeded)
	assert.True(t, b3.Available())
	assert.Len(t, u.BorrowedBooks(), 2)
}

func TestBorrowUnavailableBook(t *testing.T) {
	u := NewUser("student", "s@example.com", 0, Student)
	b := NewBook("Taken", "a", "g", 1)
	b.Take()

	assert.ErrorIs(t, u.BorrowBook(&b), ErrBookUnavailable)
	assert.Empty(t, u.BorrowedBooks())
}

func TestBorrowRecordsSnapshot(t *testing.T) {
	u := NewUser("student", "s@example.com", 0, Student)
	b := NewBook("Dune", "Frank Herbert", "Sci-Fi", 1)

	require.NoError(t, u.BorrowBook(&b))
	assert.False(t, b.Available())

	borrowed := u.BorrowedBooks()
	require.Len(t, borrowed, 1)
	assert.Equal(t, 1, borrowed[0].ID)
	assert.False(t, borrowed[0].Available())
}

func TestAddPenalty(t *testing.T) {
	u := NewUser("student", "s@example.com", 0, Student)

	require.NoError(t, u.AddPenalty(10))
	require.NoError(t, u.AddPenalty(5))
	assert.Equal(t, 15, u.Penalty())

	assert.ErrorIs(t, u.AddPenalty(-1), ErrInvalidArgument)
	assert.Equal(t, 15, u.Penalty())
}
