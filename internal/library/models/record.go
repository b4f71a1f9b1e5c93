package models

import "time"

// BorrowingRecord ties one copy of a book to the student holding it. A
// record exists iff the book's BorrowedBy contains the student id for it;
// borrow and return keep the two in step atomically.
type BorrowingRecord struct {
	ID         string    `json:"id"`
	BookID     string    `json:"book_id"`
	StudentID  string    `json:"student_id"`
	BorrowDate time.Time `json:"borrow_date"`
	DueDate    time.Time `json:"due_date"`
}

// Overdue reports whether the record's due date has passed at now.
// Derived on read, never stored.
func (r BorrowingRecord) Overdue(now time.Time) bool {
	return r.DueDate.Before(now)
}
