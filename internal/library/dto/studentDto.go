package dto

import (
	"libraryhub/internal/library/models"
	"libraryhub/internal/library/service"
)

// StudentRequest: payload for creating or editing a student.
type StudentRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
	BirthDate string `json:"birth_date"`
	Gender    string `json:"gender"`
	Grade     string `json:"grade"`
	ClassName string `json:"class_name"`
	Ethnicity string `json:"ethnicity"`
	Address   string `json:"address"`
}

func (r StudentRequest) ToDraft() service.StudentDraft {
	return service.StudentDraft{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		BirthDate: r.BirthDate,
		Gender:    r.Gender,
		Grade:     r.Grade,
		ClassName: r.ClassName,
		Ethnicity: r.Ethnicity,
		Address:   r.Address,
	}
}

// StudentListResponse: the roster view payload.
type StudentListResponse struct {
	Items []models.Student `json:"items"`
	Total int              `json:"total"`
}
