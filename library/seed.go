package library

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// SeedBook is one catalog row in a seed database. Seed files stock the
// in-memory catalog at startup; circulation state never touches disk.
type SeedBook struct {
	Name   string
	Author string
	Genre  string
}

const seedSchema = `CREATE TABLE IF NOT EXISTS books (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    author TEXT NOT NULL,
    genre TEXT NOT NULL
);`

func openSeed(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open seed db: %w", err)
	}
	return db, nil
}

// WriteSeed creates (or replaces) a seed database at path holding the
// given books.
func WriteSeed(path string, books []SeedBook) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create seed dir: %w", err)
		}
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("replace seed db: %w", err)
	}

	db, err := openSeed(path)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(seedSchema); err != nil {
		return fmt.Errorf("apply seed schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO books(name,author,genre) VALUES(?,?,?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, b := range books {
		if _, err := stmt.Exec(b.Name, b.Author, b.Genre); err != nil {
			return fmt.Errorf("insert %q: %w", b.Name, err)
		}
	}
	return tx.Commit()
}

// ReadSeed loads every book row from the seed database in insertion
// order.
func ReadSeed(path string) ([]SeedBook, error) {
	// sql.Open would silently create an empty database for a bad path.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("seed db: %w", err)
	}

	db, err := openSeed(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`SELECT name, author, genre FROM books ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("read seed db: %w", err)
	}
	defer rows.Close()

	var books []SeedBook
	for rows.Next() {
		var b SeedBook
		if err := rows.Scan(&b.Name, &b.Author, &b.Genre); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// ImportSeed stocks the catalog from the seed database at path,
// assigning fresh ids. It returns the number of books added.
func (l *Library) ImportSeed(path string) (int, error) {
	books, err := ReadSeed(path)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, sb := range books {
		b := NewBook(sb.Name, sb.Author, sb.Genre, l.NextBookID())
		if err := l.AddBook(b); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}
