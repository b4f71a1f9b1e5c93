package dto

import (
	"libraryhub/internal/library/models"
	"libraryhub/internal/library/service"
)

// BookRequest: payload for creating or editing a book. Quantity is a
// pointer so an explicit 0 survives the required check.
type BookRequest struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	ISBN        string `json:"isbn"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	Quantity    *int   `json:"quantity" binding:"required,gte=0"`
	CoverImage  string `json:"cover_image"`
}

func (r BookRequest) ToDraft() service.BookDraft {
	return service.BookDraft{
		Title:       r.Title,
		Author:      r.Author,
		ISBN:        r.ISBN,
		Genre:       r.Genre,
		Description: r.Description,
		Quantity:    *r.Quantity,
		CoverImage:  r.CoverImage,
	}
}

// BookListResponse: the catalogue view payload.
type BookListResponse struct {
	Items []models.Book `json:"items"`
	Total int           `json:"total"`
}

// CanDeleteResponse: result of the pre-delete reference check.
type CanDeleteResponse struct {
	CanDelete bool `json:"can_delete"`
}

// ImportResponse: outcome of a bulk import, books or students.
type ImportResponse struct {
	Imported int `json:"imported"`
}
