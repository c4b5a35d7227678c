package library

import "errors"

// Sentinel failures returned by Library, Book and User operations.
// Callers match with errors.Is; the offending ids are attached via
// fmt.Errorf wrapping at the call site. Every operation validates all
// of its preconditions before mutating anything, so a returned error
// always means the aggregate is unchanged.
var (
	ErrDuplicateID          = errors.New("id already exists")
	ErrNotFound             = errors.New("not found")
	ErrBookUnavailable      = errors.New("book is not available")
	ErrBookBorrowed         = errors.New("book is borrowed")
	ErrBorrowLimitExceeded  = errors.New("borrow limit exceeded")
	ErrUserHasBorrowedBooks = errors.New("user has borrowed books")
	ErrUnpaidPenalty        = errors.New("user has unpaid penalties")
	ErrNotBorrowed          = errors.New("book was not borrowed")
	ErrInvalidArgument      = errors.New("invalid argument")
)
