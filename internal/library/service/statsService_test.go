package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryhub/internal/library/models"
	"libraryhub/internal/library/repository"
)

func TestSummary_CountsAndGenreBuckets(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	store := repository.NewStore()
	store.InsertBook(models.Book{ID: "b1", Title: "Dune", Genre: "Sci-Fi", Quantity: 3, BorrowedBy: []string{}})
	store.InsertBook(models.Book{ID: "b2", Title: "Emma", Genre: "Classic", Quantity: 2, BorrowedBy: []string{}})
	store.InsertBook(models.Book{ID: "b3", Title: "Foundation", Genre: "Sci-Fi", Quantity: 1, BorrowedBy: []string{}})
	store.InsertStudent(models.Student{ID: "s1", Name: "An"})
	store.InsertStudent(models.Student{ID: "s2", Name: "Binh"})

	// One loan on time, one overdue.
	require.NoError(t, store.Borrow(models.BorrowingRecord{ID: "r1", BookID: "b1", StudentID: "s1", BorrowDate: at.AddDate(0, 0, -2), DueDate: at.AddDate(0, 0, 5)}))
	require.NoError(t, store.Borrow(models.BorrowingRecord{ID: "r2", BookID: "b2", StudentID: "s2", BorrowDate: at.AddDate(0, 0, -10), DueDate: at.AddDate(0, 0, -3)}))

	svc := &statsService{books: store, students: store, records: store, now: func() time.Time { return at }}
	sum := svc.Summary()

	// Borrowed copies still count towards owned totals.
	assert.Equal(t, 6, sum.TotalBooks)
	assert.Equal(t, 2, sum.BorrowedBooks)
	assert.Equal(t, 1, sum.OverdueBooks)
	assert.Equal(t, 2, sum.TotalStudents)

	require.Len(t, sum.Genres, 2)
	assert.Equal(t, GenreCount{Name: "Sci-Fi", Count: 4}, sum.Genres[0])
	assert.Equal(t, GenreCount{Name: "Classic", Count: 2}, sum.Genres[1])
}

func TestSummary_RecentLoansMostRecentFirstCappedAtFive(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	store := repository.NewStore()
	store.InsertBook(models.Book{ID: "b1", Title: "Dune", Genre: "Sci-Fi", Quantity: 10, BorrowedBy: []string{}})
	store.InsertStudent(models.Student{ID: "s1", Name: "An"})

	ids := []string{"r1", "r2", "r3", "r4", "r5", "r6", "r7"}
	for i, id := range ids {
		require.NoError(t, store.Borrow(models.BorrowingRecord{
			ID: id, BookID: "b1", StudentID: "s1",
			BorrowDate: at.AddDate(0, 0, i), DueDate: at.AddDate(0, 0, i+14),
		}))
	}

	svc := &statsService{books: store, students: store, records: store, now: func() time.Time { return at }}
	sum := svc.Summary()

	require.Len(t, sum.RecentLoans, 5)
	assert.Equal(t, "r7", sum.RecentLoans[0].RecordID)
	assert.Equal(t, "r3", sum.RecentLoans[4].RecordID)
	assert.Equal(t, "Dune", sum.RecentLoans[0].BookTitle)
	assert.Equal(t, "An", sum.RecentLoans[0].StudentName)
}

func TestSummary_EmptyStore(t *testing.T) {
	store := repository.NewStore()
	svc := NewStatsService(store, store, store)

	sum := svc.Summary()

	assert.Zero(t, sum.TotalBooks)
	assert.Zero(t, sum.BorrowedBooks)
	assert.Zero(t, sum.OverdueBooks)
	assert.Zero(t, sum.TotalStudents)
	assert.NotNil(t, sum.Genres)
	assert.NotNil(t, sum.RecentLoans)
}
