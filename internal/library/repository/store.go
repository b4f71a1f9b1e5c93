package repository

import (
	"errors"
	"sync"

	"libraryhub/internal/library/models"
)

// Refusals surfaced by the atomic borrow bookkeeping. The services map
// these onto their own sentinels.
var (
	ErrBookMissing    = errors.New("book not found")
	ErrStudentMissing = errors.New("student not found")
	ErrNoCopies       = errors.New("no copies on shelf")
)

// Store holds the whole application state: the three collections behind a
// single lock, so every mutation is atomic and cross-collection
// bookkeeping (borrow/return) can never be observed half-applied.
// Insertion order is preserved; reads copy out.
type Store struct {
	mu       sync.RWMutex
	books    []models.Book
	students []models.Student
	records  []models.BorrowingRecord
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

func cloneBook(b models.Book) models.Book {
	out := b
	out.BorrowedBy = append([]string(nil), b.BorrowedBy...)
	return out
}
