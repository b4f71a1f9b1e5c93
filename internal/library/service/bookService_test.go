package service

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryhub/internal/library/models"
	"libraryhub/internal/library/repository"
)

func newBookFixture() (*repository.Store, BookService) {
	store := repository.NewStore()
	store.InsertBook(models.Book{ID: "b1", Title: "Dune", Author: "Frank Herbert", ISBN: "9780441013593", Genre: "Sci-Fi", Quantity: 3, BorrowedBy: []string{}})
	store.InsertBook(models.Book{ID: "b2", Title: "Emma", Author: "Jane Austen", ISBN: "9780141439587", Genre: "Classic", Quantity: 2, BorrowedBy: []string{}})
	return store, NewBookService(store)
}

func TestBookList_QueryMatchesTitleAuthorISBN(t *testing.T) {
	_, svc := newBookFixture()

	assert.Len(t, svc.List(""), 2)

	for _, q := range []string{"dune", "DUNE", "herbert", "9780441013593"} {
		got := svc.List(q)
		require.Len(t, got, 1, "query %q", q)
		assert.Equal(t, "b1", got[0].ID)
	}

	assert.Empty(t, svc.List("no such book"))
}

func TestBookAdd_AssignsIDAndEmptyBorrowerList(t *testing.T) {
	_, svc := newBookFixture()

	book := svc.Add(BookDraft{Title: "Hobbit", Author: "Tolkien", Quantity: 5})

	assert.NotEmpty(t, book.ID)
	assert.NotNil(t, book.BorrowedBy)
	assert.Empty(t, book.BorrowedBy)
	assert.Equal(t, 5, book.Quantity)

	stored, ok := svc.Get(book.ID)
	require.True(t, ok)
	assert.Equal(t, book, stored)
}

func TestBookImport_KeepsOrderAndDuplicates(t *testing.T) {
	_, svc := newBookFixture()

	imported := svc.Import([]BookDraft{
		{Title: "Twin", ISBN: "123", Quantity: 1},
		{Title: "Twin", ISBN: "123", Quantity: 1},
		{Title: "Other", ISBN: "456", Quantity: 2},
	})

	require.Len(t, imported, 3)
	assert.Equal(t, "Twin", imported[0].Title)
	assert.Equal(t, "Twin", imported[1].Title)
	assert.Equal(t, "Other", imported[2].Title)
	assert.NotEqual(t, imported[0].ID, imported[1].ID)

	books := svc.List("")
	assert.Len(t, books, 5)
}

func TestBookImport_PlaceholderCover(t *testing.T) {
	_, svc := newBookFixture()

	imported := svc.Import([]BookDraft{
		{Title: "With ISBN", ISBN: "9781234567897"},
		{Title: "No ISBN"},
		{Title: "Has Cover", ISBN: "999", CoverImage: "https://example.com/cover.jpg"},
	})

	require.Len(t, imported, 3)
	assert.Equal(t, "https://picsum.photos/seed/9781234567897/400/600", imported[0].CoverImage)
	assert.True(t, strings.HasPrefix(imported[1].CoverImage, "https://picsum.photos/seed/"))
	assert.Equal(t, "https://example.com/cover.jpg", imported[2].CoverImage)
}

func TestBookUpdate_PreservesBorrowerList(t *testing.T) {
	store, svc := newBookFixture()
	store.InsertStudent(models.Student{ID: "s1", Name: "An"})
	require.NoError(t, store.Borrow(models.BorrowingRecord{ID: "r1", BookID: "b1", StudentID: "s1", BorrowDate: time.Now(), DueDate: time.Now().AddDate(0, 0, 7)}))

	svc.Update("b1", BookDraft{Title: "Dune Messiah", Author: "Frank Herbert", Quantity: 10})

	book, ok := svc.Get("b1")
	require.True(t, ok)
	assert.Equal(t, "Dune Messiah", book.Title)
	assert.Equal(t, 10, book.Quantity)
	assert.Equal(t, []string{"s1"}, book.BorrowedBy)
}

func TestBookUpdate_UnknownIDIsNoOp(t *testing.T) {
	_, svc := newBookFixture()

	svc.Update("missing", BookDraft{Title: "Ghost"})

	assert.Len(t, svc.List(""), 2)
	_, ok := svc.Get("missing")
	assert.False(t, ok)
}

func TestBookDelete_RefusesWhileOnLoan(t *testing.T) {
	store, svc := newBookFixture()
	store.InsertStudent(models.Student{ID: "s1", Name: "An"})
	require.NoError(t, store.Borrow(models.BorrowingRecord{ID: "r1", BookID: "b1", StudentID: "s1", BorrowDate: time.Now(), DueDate: time.Now().AddDate(0, 0, 7)}))

	assert.False(t, svc.CanDelete("b1"))
	assert.ErrorIs(t, svc.Delete("b1"), ErrBookOnLoan)
	_, ok := svc.Get("b1")
	assert.True(t, ok)

	// After the copy comes back, deletion goes through.
	store.Return("r1")
	assert.True(t, svc.CanDelete("b1"))
	require.NoError(t, svc.Delete("b1"))
	_, ok = svc.Get("b1")
	assert.False(t, ok)
}

func TestBookDelete_UnknownIDIsNoOp(t *testing.T) {
	_, svc := newBookFixture()

	assert.True(t, svc.CanDelete("missing"))
	assert.NoError(t, svc.Delete("missing"))
	assert.Len(t, svc.List(""), 2)
}
