package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryhub/internal/library/models"
	"libraryhub/internal/library/repository"
)

func TestStudentPrompt_WithHistory(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	store := repository.NewStore()
	store.InsertBook(models.Book{ID: "b1", Title: "Dune", Quantity: 1, BorrowedBy: []string{}})
	store.InsertBook(models.Book{ID: "b2", Title: "Emma", Quantity: 1, BorrowedBy: []string{}})
	store.InsertStudent(models.Student{ID: "s1", Name: "Nguyen Van An"})
	require.NoError(t, store.Borrow(models.BorrowingRecord{ID: "r1", BookID: "b1", StudentID: "s1", BorrowDate: at, DueDate: at.AddDate(0, 0, 7)}))
	require.NoError(t, store.Borrow(models.BorrowingRecord{ID: "r2", BookID: "b2", StudentID: "s1", BorrowDate: at, DueDate: at.AddDate(0, 0, 7)}))

	svc := NewAssistantService(store, store, store)

	prompt, err := svc.StudentPrompt("s1")
	require.NoError(t, err)
	assert.Contains(t, prompt, "Nguyen Van An")
	assert.Contains(t, prompt, "Dune, Emma")
	assert.Contains(t, prompt, "previously borrowed")
}

func TestStudentPrompt_FreshReader(t *testing.T) {
	store := repository.NewStore()
	store.InsertStudent(models.Student{ID: "s1", Name: "Tran Thi Binh"})

	svc := NewAssistantService(store, store, store)

	prompt, err := svc.StudentPrompt("s1")
	require.NoError(t, err)
	assert.Contains(t, prompt, "Tran Thi Binh")
	assert.Contains(t, prompt, "new reader")
}

func TestStudentPrompt_UnknownStudent(t *testing.T) {
	store := repository.NewStore()
	svc := NewAssistantService(store, store, store)

	_, err := svc.StudentPrompt("missing")
	assert.ErrorIs(t, err, ErrStudentNotFound)
}
