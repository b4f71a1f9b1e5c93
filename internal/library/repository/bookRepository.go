package repository

import "libraryhub/internal/library/models"

// BookRepository is the book-collection surface the services depend on.
type BookRepository interface {
	ListBooks() []models.Book
	FindBook(id string) (models.Book, bool)
	InsertBook(book models.Book)
	InsertBooks(books []models.Book)
	ReplaceBook(book models.Book) bool
	DeleteBook(id string) bool
	BookReferenced(id string) bool
}

func (s *Store) ListBooks() []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, cloneBook(b))
	}
	return out
}

func (s *Store) FindBook(id string) (models.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.books {
		if b.ID == id {
			return cloneBook(b), true
		}
	}
	return models.Book{}, false
}

func (s *Store) InsertBook(book models.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = append(s.books, cloneBook(book))
}

// InsertBooks appends a whole import batch in order.
func (s *Store) InsertBooks(books []models.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range books {
		s.books = append(s.books, cloneBook(b))
	}
}

// ReplaceBook swaps the stored book with the same id. Returns false when
// the id is unknown and nothing was changed.
func (s *Store) ReplaceBook(book models.Book) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.books {
		if b.ID == book.ID {
			s.books[i] = cloneBook(book)
			return true
		}
	}
	return false
}

func (s *Store) DeleteBook(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.books {
		if b.ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			return true
		}
	}
	return false
}

// BookReferenced reports whether any borrowing record points at the book.
func (s *Store) BookReferenced(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.BookID == id {
			return true
		}
	}
	return false
}
