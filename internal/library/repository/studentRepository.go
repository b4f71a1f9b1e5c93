package repository

import "libraryhub/internal/library/models"

// StudentRepository is the student-roster surface the services depend on.
type StudentRepository interface {
	ListStudents() []models.Student
	FindStudent(id string) (models.Student, bool)
	InsertStudent(student models.Student)
	InsertStudents(students []models.Student)
	ReplaceStudent(student models.Student) bool
	DeleteStudent(id string) bool
	StudentReferenced(id string) bool
}

func (s *Store) ListStudents() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Student, len(s.students))
	copy(out, s.students)
	return out
}

func (s *Store) FindStudent(id string) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.students {
		if st.ID == id {
			return st, true
		}
	}
	return models.Student{}, false
}

func (s *Store) InsertStudent(student models.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students = append(s.students, student)
}

// InsertStudents appends a whole import batch in order.
func (s *Store) InsertStudents(students []models.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students = append(s.students, students...)
}

// ReplaceStudent swaps the stored student with the same id. Returns false
// when the id is unknown and nothing was changed.
func (s *Store) ReplaceStudent(student models.Student) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, st := range s.students {
		if st.ID == student.ID {
			s.students[i] = student
			return true
		}
	}
	return false
}

func (s *Store) DeleteStudent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, st := range s.students {
		if st.ID == id {
			s.students = append(s.students[:i], s.students[i+1:]...)
			return true
		}
	}
	return false
}

// StudentReferenced reports whether any borrowing record points at the
// student.
func (s *Store) StudentReferenced(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.StudentID == id {
			return true
		}
	}
	return false
}
