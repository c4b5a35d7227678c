package library

import "time"

// Book is a single catalog item. Availability and the borrow stamp move
// together: takenTime is non-zero exactly while the book is checked out.
type Book struct {
	ID     int
	Name   string
	Author string
	Genre  string

	available bool
	takenTime time.Time
}

// NewBook creates an available book with the given metadata.
func NewBook(name, author, genre string, id int) Book {
	return Book{ID: id, Name: name, Author: author, Genre: genre, available: true}
}

// Available reports whether the book can be borrowed right now.
func (b *Book) Available() bool { return b.available }

// TakenAt returns the time the book was taken. The zero time means the
// book is on the shelf.
func (b *Book) TakenAt() time.Time { return b.takenTime }

// Take marks the book as borrowed and stamps the current time. It does
// not check availability; callers guard with Available first. Taking an
// already-taken book restamps the borrow time.
func (b *Book) Take() {
	b.available = false
	b.takenTime = time.Now()
}

// Return marks the book available again and clears the borrow stamp.
func (b *Book) Return() {
	b.available = true
	b.takenTime = time.Time{}
}

// Less orders books by borrow time, oldest first; never-taken books
// (zero stamp) sort before all taken ones. Ties break on ID.
func (b Book) Less(other Book) bool {
	if !b.takenTime.Equal(other.takenTime) {
		return b.takenTime.Before(other.takenTime)
	}
	return b.ID < other.ID
}

// Equal compares books by identity only.
func (b Book) Equal(other Book) bool { return b.ID == other.ID }
