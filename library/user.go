package library

import "fmt"

// Kind classifies a user. Each kind carries fixed circulation policy
// constants; there is no behavior difference beyond the table below.
type Kind int

const (
	Student Kind = iota
	Faculty
	Guest
)

func (k Kind) String() string {
	switch k {
	case Student:
		return "student"
	case Faculty:
		return "faculty"
	case Guest:
		return "guest"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// policy bundles the per-kind circulation constants.
type policy struct {
	borrowLimit     int
	maxBorrowedDays int
	finePerDay      int
}

var policies = map[Kind]policy{
	Student: {borrowLimit: 5, maxBorrowedDays: 3, finePerDay: 10},
	Faculty: {borrowLimit: 10, maxBorrowedDays: 10, finePerDay: 5},
	Guest:   {borrowLimit: 2, maxBorrowedDays: 1, finePerDay: 20},
}

// User is a registered patron. The Library owns the record; callers get
// a handle from UserByID and should re-fetch rather than cache it.
type User struct {
	ID    int
	Name  string
	Email string
	Kind  Kind

	penalty  int
	borrowed []Book
}

// NewUser creates a user of the given kind with no checkouts and no
// outstanding penalty.
func NewUser(name, email string, id int, kind Kind) *User {
	return &User{ID: id, Name: name, Email: email, Kind: kind}
}

// MaxBorrowLimit returns how many books the user may hold at once.
func (u *User) MaxBorrowLimit() int { return policies[u.Kind].borrowLimit }

// MaxBorrowedDays returns how many simulated days a checkout may last
// before fines accrue.
func (u *User) MaxBorrowedDays() int { return policies[u.Kind].maxBorrowedDays }

// FinePerDay returns the fine charged per simulated day past the limit.
func (u *User) FinePerDay() int { return policies[u.Kind].finePerDay }

// Penalty returns the accumulated unpaid fine.
func (u *User) Penalty() int { return u.penalty }

// AddPenalty adds amount to the user's running fine total.
func (u *User) AddPenalty(amount int) error {
	if amount < 0 {
		return fmt.Errorf("penalty amount %d: %w", amount, ErrInvalidArgument)
	}
	u.penalty += amount
	return nil
}

// BorrowedBooks returns a copy of the user's current checkouts.
func (u *User) BorrowedBooks() []Book {
	out := make([]Book, len(u.borrowed))
	copy(out, u.borrowed)
	return out
}

// CanBorrow reports whether the user is under their borrow limit.
func (u *User) CanBorrow() bool { return len(u.borrowed) < u.MaxBorrowLimit() }

// BorrowBook checks the user's limit and the book's availability, in
// that order, then takes the book and records a snapshot of it on the
// user.
func (u *User) BorrowBook(b *Book) error {
	if !u.CanBorrow() {
		return fmt.Errorf("user %d: %w", u.ID, ErrBorrowLimitExceeded)
	}
	if !b.Available() {
		return fmt.Errorf("book %d: %w", b.ID, ErrBookUnavailable)
	}
	b.Take()
	u.borrowed = append(u.borrowed, *b)
	return nil
}

// dropBorrowed removes the snapshot for bookID, if present.
func (u *User) dropBorrowed(bookID int) {
	for i, b := range u.borrowed {
		if b.ID == bookID {
			u.borrowed = append(u.borrowed[:i], u.borrowed[i+1:]...)
			return
		}
	}
}
