package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"libraryhub/internal/library/models"
	"libraryhub/internal/library/repository"
)

var ErrStudentHasLoans = errors.New("student has open borrowing records")

// StudentDraft carries the caller-editable fields of a student.
type StudentDraft struct {
	Name      string
	Email     string
	Phone     string
	BirthDate string
	Gender    string
	Grade     string
	ClassName string
	Ethnicity string
	Address   string
}

type StudentService interface {
	List(query string) []models.Student
	Get(id string) (models.Student, bool)
	Add(draft StudentDraft) models.Student
	Import(drafts []StudentDraft) []models.Student
	Update(id string, draft StudentDraft)
	CanDelete(id string) bool
	Delete(id string) error
}

type studentService struct {
	repo repository.StudentRepository
	now  func() time.Time
}

func NewStudentService(repo repository.StudentRepository) StudentService {
	return &studentService{repo: repo, now: time.Now}
}

// List returns the roster, optionally narrowed to students whose name,
// email or class name contains the query (case-insensitive).
func (s *studentService) List(query string) []models.Student {
	students := s.repo.ListStudents()
	if query == "" {
		return students
	}

	q := strings.ToLower(query)
	out := make([]models.Student, 0, len(students))
	for _, st := range students {
		if strings.Contains(strings.ToLower(st.Name), q) ||
			strings.Contains(strings.ToLower(st.Email), q) ||
			strings.Contains(strings.ToLower(st.ClassName), q) {
			out = append(out, st)
		}
	}
	return out
}

func (s *studentService) Get(id string) (models.Student, bool) {
	return s.repo.FindStudent(id)
}

func (s *studentService) Add(draft StudentDraft) models.Student {
	student := models.Student{
		ID:        uuid.NewString(),
		Name:      draft.Name,
		Email:     draft.Email,
		Phone:     draft.Phone,
		JoinDate:  s.now(),
		BirthDate: draft.BirthDate,
		Gender:    draft.Gender,
		Grade:     draft.Grade,
		ClassName: draft.ClassName,
		Ethnicity: draft.Ethnicity,
		Address:   draft.Address,
	}
	s.repo.InsertStudent(student)
	return student
}

// Import appends one student per draft, in order. Imported rows never
// carry contact details, so email and phone start empty and the join
// date is the import time.
func (s *studentService) Import(drafts []StudentDraft) []models.Student {
	now := s.now()
	students := make([]models.Student, 0, len(drafts))
	for _, d := range drafts {
		students = append(students, models.Student{
			ID:        uuid.NewString(),
			Name:      d.Name,
			Email:     "",
			Phone:     "",
			JoinDate:  now,
			BirthDate: d.BirthDate,
			Gender:    d.Gender,
			Grade:     d.Grade,
			ClassName: d.ClassName,
			Ethnicity: d.Ethnicity,
			Address:   d.Address,
		})
	}
	s.repo.InsertStudents(students)
	return students
}

// Update replaces the editable fields of the student with the given id;
// the join date is kept. Unknown ids are a silent no-op.
func (s *studentService) Update(id string, draft StudentDraft) {
	stored, ok := s.repo.FindStudent(id)
	if !ok {
		return
	}

	stored.Name = draft.Name
	stored.Email = draft.Email
	stored.Phone = draft.Phone
	stored.BirthDate = draft.BirthDate
	stored.Gender = draft.Gender
	stored.Grade = draft.Grade
	stored.ClassName = draft.ClassName
	stored.Ethnicity = draft.Ethnicity
	stored.Address = draft.Address
	s.repo.ReplaceStudent(stored)
}

// CanDelete reports whether the student has no open borrowing records.
func (s *studentService) CanDelete(id string) bool {
	return !s.repo.StudentReferenced(id)
}

// Delete removes the student unless a borrowing record still references
// them, in which case it refuses with ErrStudentHasLoans. Unknown ids
// are a silent no-op.
func (s *studentService) Delete(id string) error {
	if s.repo.StudentReferenced(id) {
		return ErrStudentHasLoans
	}
	s.repo.DeleteStudent(id)
	return nil
}
