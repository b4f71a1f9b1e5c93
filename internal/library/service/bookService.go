package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"libraryhub/internal/library/models"
	"libraryhub/internal/library/repository"
)

var ErrBookOnLoan = errors.New("book has open borrowing records")

// BookDraft carries the caller-editable fields of a book; ids and the
// borrower list are owned by the service.
type BookDraft struct {
	Title       string
	Author      string
	ISBN        string
	Genre       string
	Description string
	Quantity    int
	CoverImage  string
}

type BookService interface {
	List(query string) []models.Book
	Get(id string) (models.Book, bool)
	Add(draft BookDraft) models.Book
	Import(drafts []BookDraft) []models.Book
	Update(id string, draft BookDraft)
	CanDelete(id string) bool
	Delete(id string) error
}

type bookService struct {
	repo repository.BookRepository
}

func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{repo: repo}
}

// List returns the catalogue, optionally narrowed to books whose title,
// author or ISBN contains the query (case-insensitive).
func (s *bookService) List(query string) []models.Book {
	books := s.repo.ListBooks()
	if query == "" {
		return books
	}

	q := strings.ToLower(query)
	out := make([]models.Book, 0, len(books))
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) ||
			strings.Contains(strings.ToLower(b.ISBN), q) {
			out = append(out, b)
		}
	}
	return out
}

func (s *bookService) Get(id string) (models.Book, bool) {
	return s.repo.FindBook(id)
}

func (s *bookService) Add(draft BookDraft) models.Book {
	book := models.Book{
		ID:          uuid.NewString(),
		Title:       draft.Title,
		Author:      draft.Author,
		ISBN:        draft.ISBN,
		Genre:       draft.Genre,
		Description: draft.Description,
		Quantity:    draft.Quantity,
		CoverImage:  draft.CoverImage,
		BorrowedBy:  []string{},
	}
	s.repo.InsertBook(book)
	return book
}

// Import appends one book per draft, in order. Duplicate ISBNs are kept
// as independent books. Drafts without a cover get a placeholder image
// keyed by ISBN when present.
func (s *bookService) Import(drafts []BookDraft) []models.Book {
	books := make([]models.Book, 0, len(drafts))
	for _, d := range drafts {
		cover := d.CoverImage
		if cover == "" {
			cover = placeholderCover(d.ISBN)
		}
		books = append(books, models.Book{
			ID:          uuid.NewString(),
			Title:       d.Title,
			Author:      d.Author,
			ISBN:        d.ISBN,
			Genre:       d.Genre,
			Description: d.Description,
			Quantity:    d.Quantity,
			CoverImage:  cover,
			BorrowedBy:  []string{},
		})
	}
	s.repo.InsertBooks(books)
	return books
}

// Update replaces the editable fields of the book with the given id and
// keeps its borrower list untouched. Unknown ids are a silent no-op.
func (s *bookService) Update(id string, draft BookDraft) {
	stored, ok := s.repo.FindBook(id)
	if !ok {
		return
	}

	stored.Title = draft.Title
	stored.Author = draft.Author
	stored.ISBN = draft.ISBN
	stored.Genre = draft.Genre
	stored.Description = draft.Description
	stored.Quantity = draft.Quantity
	stored.CoverImage = draft.CoverImage
	s.repo.ReplaceBook(stored)
}

// CanDelete reports whether the book has no open borrowing records.
func (s *bookService) CanDelete(id string) bool {
	return !s.repo.BookReferenced(id)
}

// Delete removes the book unless a borrowing record still references it,
// in which case it refuses with ErrBookOnLoan. Unknown ids are a silent
// no-op.
func (s *bookService) Delete(id string) error {
	if s.repo.BookReferenced(id) {
		return ErrBookOnLoan
	}
	s.repo.DeleteBook(id)
	return nil
}

func placeholderCover(isbn string) string {
	seed := isbn
	if seed == "" {
		seed = uuid.NewString()
	}
	return fmt.Sprintf("https://picsum.photos/seed/%s/400/600", seed)
}
