package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"librarium/library"

	"github.com/jedib0t/go-pretty/v6/table"
)

// shell drives the interactive menus. All input validation lives here;
// the library package assumes well-typed, pre-validated arguments.
type shell struct {
	lib *library.Library
	in  *bufio.Scanner
	out io.Writer
}

func newShell(lib *library.Library, in io.Reader, out io.Writer) *shell {
	return &shell{lib: lib, in: bufio.NewScanner(in), out: out}
}

func (s *shell) run() {
	for {
		fmt.Fprintln(s.out, "=== Library Management ===")
		fmt.Fprintln(s.out, "1. Book Management")
		fmt.Fprintln(s.out, "2. User Management")
		fmt.Fprintln(s.out, "3. Borrowing Operations")
		fmt.Fprintln(s.out, "4. Exit")
		choice, ok := s.promptInt("Enter your choice: ")
		if !ok {
			return
		}
		switch choice {
		case 1:
			if !s.bookMenu() {
				return
			}
		case 2:
			if !s.userMenu() {
				return
			}
		case 3:
			if !s.borrowMenu() {
				return
			}
		case 4:
			fmt.Fprintln(s.out, "Exiting...")
			return
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

// promptInt keeps asking until the input parses as an integer. ok is
// false once input is exhausted.
func (s *shell) promptInt(prompt string) (int, bool) {
	for {
		fmt.Fprint(s.out, prompt)
		if !s.in.Scan() {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(s.in.Text()))
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter a number.")
			continue
		}
		return n, true
	}
}

// promptString keeps asking until a non-empty trimmed line arrives.
func (s *shell) promptString(prompt string) (string, bool) {
	for {
		fmt.Fprint(s.out, prompt)
		if !s.in.Scan() {
			return "", false
		}
		text := strings.TrimSpace(s.in.Text())
		if text == "" {
			fmt.Fprintln(s.out, "Input cannot be empty. Please try again.")
			continue
		}
		return text, true
	}
}

// ---------------------------------------------------------------------------
// Book management
// ---------------------------------------------------------------------------

// bookMenu returns false once input is exhausted.
func (s *shell) bookMenu() bool {
	for {
		fmt.Fprintln(s.out, "=== Book Management ===")
		fmt.Fprintln(s.out, "1. Add Book")
		fmt.Fprintln(s.out, "2. Remove Book")
		fmt.Fprintln(s.out, "3. View All Books")
		fmt.Fprintln(s.out, "4. Search Book by ID")
		fmt.Fprintln(s.out, "5. Search Book by Name")
		fmt.Fprintln(s.out, "6. View Books by Author")
		fmt.Fprintln(s.out, "7. View Books by Genre")
		fmt.Fprintln(s.out, "8. View All Genres")
		fmt.Fprintln(s.out, "9. View All Authors")
		fmt.Fprintln(s.out, "10. Back to Main Menu")
		choice, ok := s.promptInt("Enter your choice: ")
		if !ok {
			return false
		}
		switch choice {
		case 1:
			s.addBook()
		case 2:
			s.removeBook()
		case 3:
			s.renderBooks(s.lib.Books())
		case 4:
			s.searchBookByID()
		case 5:
			if name, ok := s.promptString("Enter book name to search: "); ok {
				s.renderBooks(s.lib.BooksByName(name))
			}
		case 6:
			if author, ok := s.promptString("Enter author name to search: "); ok {
				s.renderBooks(s.lib.BooksByAuthor(author))
			}
		case 7:
			if genre, ok := s.promptString("Enter genre to search: "); ok {
				s.renderBooks(s.lib.BooksByGenre(genre))
			}
		case 8:
			s.renderValues("All Genres", s.lib.Genres())
		case 9:
			s.renderValues("All Authors", s.lib.Authors())
		case 10:
			return true
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *shell) addBook() {
	name, ok := s.promptString("Enter book name: ")
	if !ok {
		return
	}
	author, ok := s.promptString("Enter book author: ")
	if !ok {
		return
	}
	genre, ok := s.promptString("Enter book genre: ")
	if !ok {
		return
	}

	id := s.lib.NextBookID()
	if err := s.lib.AddBook(library.NewBook(name, author, genre, id)); err != nil {
		fmt.Fprintf(s.out, "Error adding book: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Book added successfully with ID: %d\n", id)
}

func (s *shell) removeBook() {
	id, ok := s.promptInt("Enter book ID to remove: ")
	if !ok {
		return
	}
	if err := s.lib.RemoveBook(id); err != nil {
		fmt.Fprintf(s.out, "Error removing book: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Book removed successfully.")
}

func (s *shell) searchBookByID() {
	id, ok := s.promptInt("Enter book ID to search: ")
	if !ok {
		return
	}
	book, found := s.lib.BookByID(id)
	if !found {
		fmt.Fprintf(s.out, "Book not found with ID: %d\n", id)
		return
	}
	s.renderBooks([]library.Book{book})
}

func (s *shell) renderBooks(books []library.Book) {
	if len(books) == 0 {
		fmt.Fprintln(s.out, "No books found.")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(s.out)
	t.AppendHeader(table.Row{"ID", "Name", "Author", "Genre", "Available"})
	for _, b := range books {
		avail := "yes"
		if !b.Available() {
			avail = "no"
		}
		t.AppendRow(table.Row{b.ID, b.Name, b.Author, b.Genre, avail})
	}
	t.Render()
}

func (s *shell) renderValues(title string, values []string) {
	fmt.Fprintf(s.out, "=== %s ===\n", title)
	if len(values) == 0 {
		fmt.Fprintln(s.out, "(none)")
		return
	}
	for _, v := range values {
		fmt.Fprintln(s.out, v)
	}
}

// ---------------------------------------------------------------------------
// User management
// ---------------------------------------------------------------------------

func (s *shell) userMenu() bool {
	for {
		fmt.Fprintln(s.out, "=== User Management ===")
		fmt.Fprintln(s.out, "1. Add User")
		fmt.Fprintln(s.out, "2. Remove User")
		fmt.Fprintln(s.out, "3. View All Users")
		fmt.Fprintln(s.out, "4. Search User by ID")
		fmt.Fprintln(s.out, "5. Back to Main Menu")
		choice, ok := s.promptInt("Enter your choice: ")
		if !ok {
			return false
		}
		switch choice {
		case 1:
			s.addUser()
		case 2:
			s.removeUser()
		case 3:
			s.renderUsers(s.lib.Users())
		case 4:
			s.searchUserByID()
		case 5:
			return true
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *shell) addUser() {
	name, ok := s.promptString("Enter user name: ")
	if !ok {
		return
	}
	email, ok := s.promptString("Enter user email: ")
	if !ok {
		return
	}
	kind, ok := s.promptKind()
	if !ok {
		return
	}

	id := s.lib.NextUserID()
	if err := s.lib.AddUser(library.NewUser(name, email, id, kind)); err != nil {
		fmt.Fprintf(s.out, "Error adding user: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "User (%s) added successfully with ID: %d\n", kind, id)
}

func (s *shell) promptKind() (library.Kind, bool) {
	for {
		fmt.Fprintln(s.out, "=== User Type ===")
		fmt.Fprintln(s.out, "1. Student")
		fmt.Fprintln(s.out, "2. Faculty")
		fmt.Fprintln(s.out, "3. Guest")
		choice, ok := s.promptInt("Enter your choice: ")
		if !ok {
			return 0, false
		}
		switch choice {
		case 1:
			return library.Student, true
		case 2:
			return library.Faculty, true
		case 3:
			return library.Guest, true
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *shell) removeUser() {
	id, ok := s.promptInt("Enter user ID to remove: ")
	if !ok {
		return
	}
	if err := s.lib.RemoveUser(id); err != nil {
		fmt.Fprintf(s.out, "Error removing user: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "User removed successfully.")
}

func (s *shell) searchUserByID() {
	id, ok := s.promptInt("Enter user ID to search: ")
	if !ok {
		return
	}
	user, found := s.lib.UserByID(id)
	if !found {
		fmt.Fprintln(s.out, "User not found.")
		return
	}
	s.renderUsers([]*library.User{user})
}

func (s *shell) renderUsers(users []*library.User) {
	if len(users) == 0 {
		fmt.Fprintln(s.out, "No users registered.")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(s.out)
	t.AppendHeader(table.Row{"ID", "Name", "Email", "Type", "Borrowed", "Penalty"})
	for _, u := range users {
		t.AppendRow(table.Row{u.ID, u.Name, u.Email, u.Kind.String(), len(u.BorrowedBooks()), u.Penalty()})
	}
	t.Render()
}

// ---------------------------------------------------------------------------
// Borrowing operations
// ---------------------------------------------------------------------------

func (s *shell) borrowMenu() bool {
	for {
		fmt.Fprintln(s.out, "=== Borrowing Operations ===")
		fmt.Fprintln(s.out, "1. Borrow Book")
		fmt.Fprintln(s.out, "2. Return Book")
		fmt.Fprintln(s.out, "3. View Borrow History")
		fmt.Fprintln(s.out, "4. View Borrowed Books")
		fmt.Fprintln(s.out, "5. View Overdue Books")
		fmt.Fprintln(s.out, "6. Back to Main Menu")
		choice, ok := s.promptInt("Enter your choice: ")
		if !ok {
			return false
		}
		switch choice {
		case 1:
			s.borrowBook()
		case 2:
			s.returnBook()
		case 3:
			s.renderHistory()
		case 4:
			s.renderBooks(s.lib.BorrowedBooks())
		case 5:
			s.renderBooks(s.lib.OverdueBooks())
		case 6:
			return true
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *shell) borrowBook() {
	userID, ok := s.promptInt("Enter user ID: ")
	if !ok {
		return
	}
	bookID, ok := s.promptInt("Enter book ID: ")
	if !ok {
		return
	}
	if err := s.lib.BorrowBook(userID, bookID); err != nil {
		fmt.Fprintf(s.out, "Error borrowing book: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, "Book borrowed successfully.")
}

func (s *shell) returnBook() {
	bookID, ok := s.promptInt("Enter book ID to return: ")
	if !ok {
		return
	}
	penalty, err := s.lib.ReturnBook(bookID)
	if err != nil {
		fmt.Fprintf(s.out, "Error returning book: %v\n", err)
		return
	}
	if penalty > 0 {
		fmt.Fprintf(s.out, "Book returned with a penalty of: %d\n", penalty)
		return
	}
	fmt.Fprintln(s.out, "Book returned successfully with no penalty.")
}

func (s *shell) renderHistory() {
	history := s.lib.History()
	fmt.Fprintln(s.out, "=== Borrow Operations (newest borrows first) ===")
	if len(history) == 0 {
		fmt.Fprintln(s.out, "No operations recorded.")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(s.out)
	t.AppendHeader(table.Row{"User ID", "Book ID", "Operation"})
	for _, rec := range history {
		t.AppendRow(table.Row{rec.UserID, rec.BookID, rec.Op.String()})
	}
	t.Render()
}
