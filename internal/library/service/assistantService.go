package service

import (
	"fmt"
	"strings"

	"libraryhub/internal/library/repository"
)

// AssistantService turns a student's borrowing history into the prompt
// the recommendation gateway is asked with. Free-form queries bypass it.
type AssistantService interface {
	StudentPrompt(studentID string) (string, error)
}

type assistantService struct {
	books    repository.BookRepository
	students repository.StudentRepository
	records  repository.BorrowRepository
}

func NewAssistantService(books repository.BookRepository, students repository.StudentRepository, records repository.BorrowRepository) AssistantService {
	return &assistantService{
		books:    books,
		students: students,
		records:  records,
	}
}

// StudentPrompt builds a history-based prompt for the student, or a
// fresh-reader prompt when they have no open loans. Unknown students are
// refused with ErrStudentNotFound.
func (s *assistantService) StudentPrompt(studentID string) (string, error) {
	student, ok := s.students.FindStudent(studentID)
	if !ok {
		return "", ErrStudentNotFound
	}

	var titles []string
	for _, r := range s.records.ListRecords() {
		if r.StudentID != studentID {
			continue
		}
		if b, found := s.books.FindBook(r.BookID); found {
			titles = append(titles, b.Title)
		}
	}

	if len(titles) == 0 {
		return fmt.Sprintf(
			"Student %s is a new reader who has not borrowed any books yet. Recommend a few good, approachable books across different genres to get them started.",
			student.Name,
		), nil
	}
	return fmt.Sprintf(
		"Student %s has previously borrowed these books: %s. Based on that, recommend similar books or books in the same genres they might enjoy.",
		student.Name, strings.Join(titles, ", "),
	), nil
}
