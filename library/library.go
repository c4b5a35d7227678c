// Package library implements an in-memory library catalog and its
// circulation rules: books, users with per-kind borrow policies, the
// borrow/return state machine, overdue fines, and search indices over
// name, author and genre.
package library

import (
	"fmt"
	"sort"
	"time"
)

// Operation tags a history record.
type Operation int

const (
	OpBorrow Operation = iota
	OpReturn
)

func (op Operation) String() string {
	if op == OpBorrow {
		return "BORROW"
	}
	return "RETURN"
}

// HistoryRecord is one circulation event.
type HistoryRecord struct {
	UserID int
	BookID int
	Op     Operation
}

// IDGenerator hands out process-wide ids. Books and users draw from the
// one counter, so their ids interleave in a single namespace and are
// never reused.
type IDGenerator struct {
	next int
}

// NextID returns the next unused id.
func (g *IDGenerator) NextID() int {
	id := g.next
	g.next++
	return id
}

// Library is the aggregate root. It owns every book and user record,
// the ownership map that decides availability, the search indices and
// the circulation history. Operations are multi-step and not atomic, so
// a single goroutine must drive the aggregate.
type Library struct {
	clock Clock
	idGen IDGenerator

	books     map[int]*Book
	users     map[int]*User
	ownership map[int]int // book id -> borrowing user id

	byName   map[string]map[int]struct{}
	byAuthor map[string]map[int]struct{}
	byGenre  map[string]map[int]struct{}

	// Borrow events are pushed to the front, returns appended to the
	// back, matching the ledger convention the console shell displays.
	history []HistoryRecord
}

// New builds an empty library whose overdue accounting runs on the
// given day length.
func New(dayDuration time.Duration) (*Library, error) {
	if dayDuration <= 0 {
		return nil, fmt.Errorf("day duration %v: %w", dayDuration, ErrInvalidArgument)
	}
	return &Library{
		clock:     NewClock(dayDuration),
		books:     make(map[int]*Book),
		users:     make(map[int]*User),
		ownership: make(map[int]int),
		byName:    make(map[string]map[int]struct{}),
		byAuthor:  make(map[string]map[int]struct{}),
		byGenre:   make(map[string]map[int]struct{}),
	}, nil
}

// Clock returns the library's day clock.
func (l *Library) Clock() Clock { return l.clock }

// NextBookID reserves an id for a new book.
func (l *Library) NextBookID() int { return l.idGen.NextID() }

// NextUserID reserves an id for a new user.
func (l *Library) NextUserID() int { return l.idGen.NextID() }

// AddBook inserts the book into the catalog and all search indices.
func (l *Library) AddBook(b Book) error {
	if _, ok := l.books[b.ID]; ok {
		return fmt.Errorf("book %d: %w", b.ID, ErrDuplicateID)
	}
	stored := b
	l.books[b.ID] = &stored
	indexInto(l.byName, b.Name, b.ID)
	indexInto(l.byAuthor, b.Author, b.ID)
	indexInto(l.byGenre, b.Genre, b.ID)
	return nil
}

// RemoveBook deletes an available book from the catalog, pruning any
// index key left empty.
func (l *Library) RemoveBook(id int) error {
	b, ok := l.books[id]
	if !ok {
		return fmt.Errorf("book %d: %w", id, ErrNotFound)
	}
	if !b.Available() {
		return fmt.Errorf("book %d: %w", id, ErrBookBorrowed)
	}
	unindexFrom(l.byName, b.Name, id)
	unindexFrom(l.byAuthor, b.Author, id)
	unindexFrom(l.byGenre, b.Genre, id)
	delete(l.books, id)
	return nil
}

// AddUser registers the user record under its id.
func (l *Library) AddUser(u *User) error {
	if _, ok := l.users[u.ID]; ok {
		return fmt.Errorf("user %d: %w", u.ID, ErrDuplicateID)
	}
	l.users[u.ID] = u
	return nil
}

// RemoveUser deletes a user that holds no books and owes nothing. The
// borrowed-books check runs before the penalty check.
func (l *Library) RemoveUser(id int) error {
	u, ok := l.users[id]
	if !ok {
		return fmt.Errorf("user %d: %w", id, ErrNotFound)
	}
	if len(u.borrowed) > 0 {
		return fmt.Errorf("user %d: %w", id, ErrUserHasBorrowedBooks)
	}
	if u.penalty > 0 {
		return fmt.Errorf("user %d: %w", id, ErrUnpaidPenalty)
	}
	delete(l.users, id)
	return nil
}

// BorrowBook checks the book out to the user: the book is stamped
// taken, ownership recorded, and a borrow event pushed to the front of
// the history.
func (l *Library) BorrowBook(userID, bookID int) error {
	u, ok := l.users[userID]
	if !ok {
		return fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}
	b, ok := l.books[bookID]
	if !ok {
		return fmt.Errorf("book %d: %w", bookID, ErrNotFound)
	}
	if err := u.BorrowBook(b); err != nil {
		return err
	}
	l.ownership[bookID] = userID
	l.history = append([]HistoryRecord{{UserID: userID, BookID: bookID, Op: OpBorrow}}, l.history...)
	return nil
}

// ReturnBook checks the book back in and returns the late penalty, zero
// when the checkout stayed within the borrower's allowance. A return
// event goes to the back of the history.
func (l *Library) ReturnBook(bookID int) (int, error) {
	b, ok := l.books[bookID]
	if !ok {
		return 0, fmt.Errorf("book %d: %w", bookID, ErrNotFound)
	}
	userID, ok := l.ownership[bookID]
	if !ok {
		return 0, fmt.Errorf("book %d: %w", bookID, ErrNotBorrowed)
	}
	u, ok := l.users[userID]
	if !ok {
		return 0, fmt.Errorf("borrower %d: %w", userID, ErrNotFound)
	}

	daysBorrowed := l.clock.DaysSince(b.TakenAt())
	delete(l.ownership, bookID)
	b.Return()
	u.dropBorrowed(bookID)
	l.history = append(l.history, HistoryRecord{UserID: userID, BookID: bookID, Op: OpReturn})

	if daysBorrowed <= u.MaxBorrowedDays() {
		return 0, nil
	}
	penalty := (daysBorrowed - u.MaxBorrowedDays()) * u.FinePerDay()
	if err := u.AddPenalty(penalty); err != nil {
		return 0, err
	}
	return penalty, nil
}

// BookByID returns a copy of the catalog record.
func (l *Library) BookByID(id int) (Book, bool) {
	b, ok := l.books[id]
	if !ok {
		return Book{}, false
	}
	return *b, true
}

// UserByID returns the live user record owned by the library.
func (l *Library) UserByID(id int) (*User, bool) {
	u, ok := l.users[id]
	return u, ok
}

// BooksByName returns every book with the exact name, ordered by id.
// Unknown names yield an empty result, not an error.
func (l *Library) BooksByName(name string) []Book {
	return l.booksFromIndex(l.byName, name)
}

// BooksByAuthor returns every book by the author, ordered by id.
func (l *Library) BooksByAuthor(author string) []Book {
	return l.booksFromIndex(l.byAuthor, author)
}

// BooksByGenre returns every book in the genre, ordered by id.
func (l *Library) BooksByGenre(genre string) []Book {
	return l.booksFromIndex(l.byGenre, genre)
}

// Books returns the whole catalog ordered by id.
func (l *Library) Books() []Book {
	out := make([]Book, 0, len(l.books))
	for _, b := range l.books {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Users returns handles to every registered user ordered by id.
func (l *Library) Users() []*User {
	out := make([]*User, 0, len(l.users))
	for _, u := range l.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Genres returns the distinct genres currently in the catalog, sorted.
func (l *Library) Genres() []string { return sortedKeys(l.byGenre) }

// Authors returns the distinct authors currently in the catalog, sorted.
func (l *Library) Authors() []string { return sortedKeys(l.byAuthor) }

// BorrowedBooks returns every checked-out book, ordered by borrow time
// then id.
func (l *Library) BorrowedBooks() []Book {
	out := make([]Book, 0, len(l.ownership))
	for bookID := range l.ownership {
		out = append(out, *l.books[bookID])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// OverdueBooks returns the checked-out books held longer than their
// borrower's allowance, ordered like BorrowedBooks.
func (l *Library) OverdueBooks() []Book {
	var out []Book
	for bookID, userID := range l.ownership {
		b := l.books[bookID]
		u := l.users[userID]
		if l.clock.DaysSince(b.TakenAt()) > u.MaxBorrowedDays() {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// History returns a copy of the circulation log in insertion order:
// newest borrows first, returns trailing in the order they happened.
func (l *Library) History() []HistoryRecord {
	out := make([]HistoryRecord, len(l.history))
	copy(out, l.history)
	return out
}

func (l *Library) booksFromIndex(idx map[string]map[int]struct{}, key string) []Book {
	set, ok := idx[key]
	if !ok {
		return nil
	}
	out := make([]Book, 0, len(set))
	for id := range set {
		out = append(out, *l.books[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func indexInto(idx map[string]map[int]struct{}, key string, id int) {
	set, ok := idx[key]
	if !ok {
		set = make(map[int]struct{})
		idx[key] = set
	}
	set[id] = struct{}{}
}

func unindexFrom(idx map[string]map[int]struct{}, key string, id int) {
	set, ok := idx[key]
	if !ok {
		return
	}
	delete(set, id)
	if len(set) == 0 {
		delete(idx, key)
	}
}

func sortedKeys(idx map[string]map[int]struct{}) []string {
	out := make([]string, 0, len(idx))
	for k := range idx {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
