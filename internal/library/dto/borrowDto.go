package dto

import "libraryhub/internal/library/service"

// BorrowRequest: payload to hand one copy of a book to a student.
// Duration bounds mirror the service's core invariant so bad input is
// rejected before any state is touched.
type BorrowRequest struct {
	BookID       string `json:"book_id" binding:"required"`
	StudentID    string `json:"student_id" binding:"required"`
	DurationDays int    `json:"duration_days" binding:"required,min=1,max=730"`
}

// LoanListResponse: the borrow workspace payload.
type LoanListResponse struct {
	Items []service.Loan `json:"items"`
	Total int            `json:"total"`
}
