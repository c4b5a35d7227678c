// Command make_seed writes a sample SQLite seed catalog that the main
// shell can import at startup via --seed.
package main

import (
	"fmt"
	"os"

	"librarium/library"
)

func main() {
	out := "seed.db"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	books := []library.SeedBook{
		{Name: "1984", Author: "George Orwell", Genre: "Dystopia"},
		{Name: "Animal Farm", Author: "George Orwell", Genre: "Satire"},
		{Name: "The Fellowship of the Ring", Author: "J.R.R. Tolkien", Genre: "Fantasy"},
		{Name: "The Two Towers", Author: "J.R.R. Tolkien", Genre: "Fantasy"},
		{Name: "The Return of the King", Author: "J.R.R. Tolkien", Genre: "Fantasy"},
		{Name: "The Art of War", Author: "Sun Tzu", Genre: "Philosophy"},
		{Name: "Romeo and Juliet", Author: "William Shakespeare", Genre: "Tragedy"},
		{Name: "The Three Musketeers", Author: "Alexandre Dumas", Genre: "Adventure"},
		{Name: "The Diary of a Young Girl", Author: "Anne Frank", Genre: "Biography"},
	}

	if err := library.WriteSeed(out, books); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing seed database: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d books to %s\n", len(books), out)
}
