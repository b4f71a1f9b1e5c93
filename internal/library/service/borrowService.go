package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"libraryhub/internal/library/models"
	"libraryhub/internal/library/repository"
)

// Borrow duration bounds in days.
const (
	MinBorrowDays = 1
	MaxBorrowDays = 730
)

var (
	ErrInvalidDuration   = errors.New("borrow duration must be between 1 and 730 days")
	ErrBookNotFound      = errors.New("book not found")
	ErrStudentNotFound   = errors.New("student not found")
	ErrNoCopiesAvailable = errors.New("no copies available")
)

// Loan is an active borrowing record joined with the names the borrow
// workspace displays. Overdue is derived at read time.
type Loan struct {
	Record      models.BorrowingRecord `json:"record"`
	BookTitle   string                 `json:"book_title"`
	StudentName string                 `json:"student_name"`
	Overdue     bool                   `json:"overdue"`
}

type BorrowService interface {
	Borrow(bookID, studentID string, durationDays int) (models.BorrowingRecord, error)
	Return(recordID string)
	Loans() []Loan
	AvailableBooks() []models.Book
}

type borrowService struct {
	books    repository.BookRepository
	students repository.StudentRepository
	records  repository.BorrowRepository
	now      func() time.Time
}

func NewBorrowService(books repository.BookRepository, students repository.StudentRepository, records repository.BorrowRepository) BorrowService {
	return &borrowService{
		books:    books,
		students: students,
		records:  records,
		now:      time.Now,
	}
}

// Borrow hands one copy of the book to the student for durationDays.
// It refuses before touching state when the duration is out of bounds,
// either id is unknown, or no copy is on the shelf; otherwise the new
// record and the book's bookkeeping are applied atomically.
func (s *borrowService) Borrow(bookID, studentID string, durationDays int) (models.BorrowingRecord, error) {
	if durationDays < MinBorrowDays || durationDays > MaxBorrowDays {
		return models.BorrowingRecord{}, ErrInvalidDuration
	}

	now := s.now()
	record := models.BorrowingRecord{
		ID:         uuid.NewString(),
		BookID:     bookID,
		StudentID:  studentID,
		BorrowDate: now,
		DueDate:    now.AddDate(0, 0, durationDays),
	}

	if err := s.records.Borrow(record); err != nil {
		switch {
		case errors.Is(err, repository.ErrBookMissing):
			return models.BorrowingRecord{}, ErrBookNotFound
		case errors.Is(err, repository.ErrStudentMissing):
			return models.BorrowingRecord{}, ErrStudentNotFound
		case errors.Is(err, repository.ErrNoCopies):
			return models.BorrowingRecord{}, ErrNoCopiesAvailable
		default:
			return models.BorrowingRecord{}, err
		}
	}
	return record, nil
}

// Return closes the record and puts the copy back on the shelf. Unknown
// record ids are a silent no-op.
func (s *borrowService) Return(recordID string) {
	s.records.Return(recordID)
}

// Loans returns every open record joined with book title and student
// name, in borrow order.
func (s *borrowService) Loans() []Loan {
	now := s.now()
	records := s.records.ListRecords()

	loans := make([]Loan, 0, len(records))
	for _, r := range records {
		loan := Loan{Record: r, Overdue: r.Overdue(now)}
		if b, ok := s.books.FindBook(r.BookID); ok {
			loan.BookTitle = b.Title
		}
		if st, ok := s.students.FindStudent(r.StudentID); ok {
			loan.StudentName = st.Name
		}
		loans = append(loans, loan)
	}
	return loans
}

// AvailableBooks returns the books with at least one copy on the shelf;
// only these are offered for borrowing.
func (s *borrowService) AvailableBooks() []models.Book {
	books := s.books.ListBooks()
	out := make([]models.Book, 0, len(books))
	for _, b := range books {
		if b.Quantity > 0 {
			out = append(out, b)
		}
	}
	return out
}
