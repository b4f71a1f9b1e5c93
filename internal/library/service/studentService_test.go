package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryhub/internal/library/models"
	"libraryhub/internal/library/repository"
)

func newStudentFixture(at time.Time) (*repository.Store, *studentService) {
	store := repository.NewStore()
	store.InsertStudent(models.Student{ID: "s1", Name: "Nguyen Van An", Email: "an@example.com", ClassName: "10A1", JoinDate: at.AddDate(-1, 0, 0)})
	store.InsertStudent(models.Student{ID: "s2", Name: "Tran Thi Binh", ClassName: "11B2", JoinDate: at.AddDate(-1, 0, 0)})
	return store, &studentService{repo: store, now: func() time.Time { return at }}
}

func TestStudentList_QueryMatchesNameEmailClass(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	_, svc := newStudentFixture(at)

	assert.Len(t, svc.List(""), 2)

	for _, q := range []string{"an@", "nguyen", "10a1"} {
		got := svc.List(q)
		require.Len(t, got, 1, "query %q", q)
		assert.Equal(t, "s1", got[0].ID)
	}
}

func TestStudentAdd_AssignsIDAndJoinDate(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	_, svc := newStudentFixture(at)

	student := svc.Add(StudentDraft{Name: "Le Van Cuong", Email: "cuong@example.com", Phone: "0901", Grade: "12"})

	assert.NotEmpty(t, student.ID)
	assert.Equal(t, at, student.JoinDate)
	assert.Equal(t, "cuong@example.com", student.Email)

	stored, ok := svc.Get(student.ID)
	require.True(t, ok)
	assert.Equal(t, student, stored)
}

func TestStudentImport_ClearsContactDetails(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	_, svc := newStudentFixture(at)

	imported := svc.Import([]StudentDraft{
		{Name: "Pham Thi Dao", Email: "should-be-dropped@example.com", Phone: "0999", BirthDate: "15/04/2010", Grade: "9", ClassName: "9C"},
		{Name: "Hoang Van Em", Gender: "Nam", Ethnicity: "Kinh", Address: "Ha Noi"},
	})

	require.Len(t, imported, 2)
	for _, s := range imported {
		assert.NotEmpty(t, s.ID)
		assert.Empty(t, s.Email)
		assert.Empty(t, s.Phone)
		assert.Equal(t, at, s.JoinDate)
	}
	assert.Equal(t, "15/04/2010", imported[0].BirthDate)
	assert.Equal(t, "Kinh", imported[1].Ethnicity)
}

func TestStudentUpdate_KeepsJoinDate(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	_, svc := newStudentFixture(at)

	svc.Update("s1", StudentDraft{Name: "Nguyen Van An", Email: "new@example.com", ClassName: "10A2"})

	student, ok := svc.Get("s1")
	require.True(t, ok)
	assert.Equal(t, "new@example.com", student.Email)
	assert.Equal(t, "10A2", student.ClassName)
	assert.Equal(t, at.AddDate(-1, 0, 0), student.JoinDate)
}

func TestStudentDelete_RefusesWhileHoldingLoans(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	store, svc := newStudentFixture(at)
	store.InsertBook(models.Book{ID: "b1", Title: "Dune", Quantity: 1, BorrowedBy: []string{}})
	require.NoError(t, store.Borrow(models.BorrowingRecord{ID: "r1", BookID: "b1", StudentID: "s1", BorrowDate: at, DueDate: at.AddDate(0, 0, 7)}))

	assert.False(t, svc.CanDelete("s1"))
	assert.ErrorIs(t, svc.Delete("s1"), ErrStudentHasLoans)
	_, ok := svc.Get("s1")
	assert.True(t, ok)

	store.Return("r1")
	assert.True(t, svc.CanDelete("s1"))
	require.NoError(t, svc.Delete("s1"))
	_, ok = svc.Get("s1")
	assert.False(t, ok)
}
