package repository

import "libraryhub/internal/library/models"

// BorrowRepository is the borrowing-record surface the services depend
// on. Borrow and Return are compound operations: the record and the
// book's shelf count/borrower list are two views of the same fact, so the
// store updates them inside one critical section.
type BorrowRepository interface {
	ListRecords() []models.BorrowingRecord
	FindRecord(id string) (models.BorrowingRecord, bool)
	Borrow(record models.BorrowingRecord) error
	Return(recordID string) bool
}

func (s *Store) ListRecords() []models.BorrowingRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.BorrowingRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) FindRecord(id string) (models.BorrowingRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return models.BorrowingRecord{}, false
}

// Borrow appends the record, decrements the book's shelf quantity and
// appends the student to its borrower list, all or nothing. The
// existence and availability checks live inside the lock so concurrent
// borrows cannot drive the quantity negative.
func (s *Store) Borrow(record models.BorrowingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookIdx := -1
	for i, b := range s.books {
		if b.ID == record.BookID {
			bookIdx = i
			break
		}
	}
	if bookIdx < 0 {
		return ErrBookMissing
	}

	studentFound := false
	for _, st := range s.students {
		if st.ID == record.StudentID {
			studentFound = true
			break
		}
	}
	if !studentFound {
		return ErrStudentMissing
	}

	if s.books[bookIdx].Quantity <= 0 {
		return ErrNoCopies
	}

	s.books[bookIdx].Quantity--
	s.books[bookIdx].BorrowedBy = append(s.books[bookIdx].BorrowedBy, record.StudentID)
	s.records = append(s.records, record)
	return nil
}

// Return removes the record, increments the book's shelf quantity and
// drops the first matching entry from its borrower list. Returns false
// when the record id is unknown; nothing is changed in that case.
func (s *Store) Return(recordID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	recIdx := -1
	for i, r := range s.records {
		if r.ID == recordID {
			recIdx = i
			break
		}
	}
	if recIdx < 0 {
		return false
	}
	record := s.records[recIdx]

	for i, b := range s.books {
		if b.ID != record.BookID {
			continue
		}
		s.books[i].Quantity++
		for j, sid := range b.BorrowedBy {
			if sid == record.StudentID {
				s.books[i].BorrowedBy = append(b.BorrowedBy[:j], b.BorrowedBy[j+1:]...)
				break
			}
		}
		break
	}

	s.records = append(s.records[:recIdx], s.records[recIdx+1:]...)
	return true
}
