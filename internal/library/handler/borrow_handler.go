package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"libraryhub/internal/library/dto"
	"libraryhub/internal/library/service"
)

type BorrowHandler struct {
	svc service.BorrowService
}

func NewBorrowHandler(svc service.BorrowService) *BorrowHandler {
	return &BorrowHandler{svc: svc}
}

func (h *BorrowHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/available-books", h.AvailableBooks)
	rg.POST("", h.Borrow)
	rg.DELETE("/:id", h.Return)
}

// List the open loans with titles, names and the derived overdue flag.
func (h *BorrowHandler) List(c *gin.Context) {
	loans := h.svc.Loans()
	c.JSON(http.StatusOK, dto.LoanListResponse{Items: loans, Total: len(loans)})
}

// AvailableBooks lists the books with at least one copy on the shelf;
// the workspace only offers these for borrowing.
func (h *BorrowHandler) AvailableBooks(c *gin.Context) {
	books := h.svc.AvailableBooks()
	c.JSON(http.StatusOK, dto.BookListResponse{Items: books, Total: len(books)})
}

func (h *BorrowHandler) Borrow(c *gin.Context) {
	var req dto.BorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.svc.Borrow(req.BookID, req.StudentID, req.DurationDays)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDuration):
			c.JSON(http.StatusBadRequest, gin.H{"error": "borrow duration must be between 1 and 730 days", "code": "INVALID_DURATION"})
		case errors.Is(err, service.ErrBookNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "book not found", "code": "BOOK_NOT_FOUND"})
		case errors.Is(err, service.ErrStudentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found", "code": "STUDENT_NOT_FOUND"})
		case errors.Is(err, service.ErrNoCopiesAvailable):
			c.JSON(http.StatusConflict, gin.H{"error": "no copies of this book are on the shelf", "code": "NO_COPIES_AVAILABLE"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, record)
}

// Return closes a loan. Unknown record ids are a no-op by contract, so
// the response is 204 either way.
func (h *BorrowHandler) Return(c *gin.Context) {
	h.svc.Return(c.Param("id"))
	c.Status(http.StatusNoContent)
}
