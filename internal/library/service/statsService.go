package service

import (
	"time"

	"libraryhub/internal/library/repository"
)

// GenreCount is one bar of the dashboard's per-genre copy histogram.
type GenreCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RecentLoan is one row of the dashboard's recent-borrows panel.
type RecentLoan struct {
	RecordID    string    `json:"record_id"`
	BookTitle   string    `json:"book_title"`
	StudentName string    `json:"student_name"`
	BorrowDate  time.Time `json:"borrow_date"`
}

// Summary aggregates everything the dashboard shows. All counts are
// derived from the live collections; nothing here is stored.
type Summary struct {
	TotalBooks    int          `json:"total_books"`
	BorrowedBooks int          `json:"borrowed_books"`
	OverdueBooks  int          `json:"overdue_books"`
	TotalStudents int          `json:"total_students"`
	Genres        []GenreCount `json:"genres"`
	RecentLoans   []RecentLoan `json:"recent_loans"`
}

type StatsService interface {
	Summary() Summary
}

type statsService struct {
	books    repository.BookRepository
	students repository.StudentRepository
	records  repository.BorrowRepository
	now      func() time.Time
}

func NewStatsService(books repository.BookRepository, students repository.StudentRepository, records repository.BorrowRepository) StatsService {
	return &statsService{
		books:    books,
		students: students,
		records:  records,
		now:      time.Now,
	}
}

func (s *statsService) Summary() Summary {
	now := s.now()
	books := s.books.ListBooks()
	records := s.records.ListRecords()

	sum := Summary{
		BorrowedBooks: len(records),
		TotalStudents: len(s.students.ListStudents()),
		Genres:        []GenreCount{},
		RecentLoans:   []RecentLoan{},
	}

	// Genre buckets count owned copies and keep first-seen order.
	genreIdx := map[string]int{}
	for _, b := range books {
		sum.TotalBooks += b.TotalCopies()
		if i, ok := genreIdx[b.Genre]; ok {
			sum.Genres[i].Count += b.TotalCopies()
		} else {
			genreIdx[b.Genre] = len(sum.Genres)
			sum.Genres = append(sum.Genres, GenreCount{Name: b.Genre, Count: b.TotalCopies()})
		}
	}

	for _, r := range records {
		if r.Overdue(now) {
			sum.OverdueBooks++
		}
	}

	// Last five borrows, most recent first.
	for i := len(records) - 1; i >= 0 && len(sum.RecentLoans) < 5; i-- {
		r := records[i]
		loan := RecentLoan{RecordID: r.ID, BorrowDate: r.BorrowDate}
		if b, ok := s.books.FindBook(r.BookID); ok {
			loan.BookTitle = b.Title
		}
		if st, ok := s.students.FindStudent(r.StudentID); ok {
			loan.StudentName = st.Name
		}
		sum.RecentLoans = append(sum.RecentLoans, loan)
	}

	return sum
}
