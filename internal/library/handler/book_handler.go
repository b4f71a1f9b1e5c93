package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"libraryhub/internal/ingestion/gemini"
	"libraryhub/internal/ingestion/spreadsheet"
	"libraryhub/internal/library/dto"
	"libraryhub/internal/library/service"
)

type BookHandler struct {
	svc       service.BookService
	lookup    BookLookup
	extractor BookExtractor
}

func NewBookHandler(svc service.BookService, lookup BookLookup, extractor BookExtractor) *BookHandler {
	return &BookHandler{svc: svc, lookup: lookup, extractor: extractor}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/isbn-lookup", h.LookupISBN)
	rg.GET("/:id/can-delete", h.CanDelete)
	rg.POST("", h.Create)
	rg.POST("/import", h.Import)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List the catalogue, optionally filtered by ?q= over title/author/ISBN.
func (h *BookHandler) List(c *gin.Context) {
	books := h.svc.List(c.Query("q"))
	c.JSON(http.StatusOK, dto.BookListResponse{Items: books, Total: len(books)})
}

func (h *BookHandler) Create(c *gin.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book := h.svc.Add(req.ToDraft())
	c.JSON(http.StatusCreated, book)
}

// Update replaces the editable fields of a book. Unknown ids are a
// no-op by contract, so the response is 200 either way.
func (h *BookHandler) Update(c *gin.Context) {
	var req dto.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.svc.Update(c.Param("id"), req.ToDraft())
	c.JSON(http.StatusOK, gin.H{"message": "book updated"})
}

func (h *BookHandler) CanDelete(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CanDeleteResponse{CanDelete: h.svc.CanDelete(c.Param("id"))})
}

func (h *BookHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrBookOnLoan) {
			c.JSON(http.StatusConflict, gin.H{"error": "book has open borrowing records", "code": "BOOK_ON_LOAN"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// LookupISBN asks the AI gateway for the book behind ?isbn= and returns
// the partial fields for the form to prefill. Nothing is stored here.
func (h *BookHandler) LookupISBN(c *gin.Context) {
	isbn := c.Query("isbn")
	if isbn == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "isbn query parameter is required"})
		return
	}

	details, err := h.lookup.LookupBookByISBN(c.Request.Context(), isbn)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not retrieve book details, please try again", "code": "AI_UNAVAILABLE"})
		return
	}
	c.JSON(http.StatusOK, details)
}

// Import reads an uploaded spreadsheet, renders its first sheet to CSV,
// has the gateway extract catalogue rows and appends them as one batch.
func (h *BookHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file form field is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	csvData, err := spreadsheet.ToCSV(fileHeader.Filename, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read spreadsheet, please check the file format", "code": "BAD_SPREADSHEET"})
		return
	}

	rows, err := h.extractor.ExtractBooksFromTable(c.Request.Context(), csvData)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not extract books from the file, please try again", "code": "AI_UNAVAILABLE"})
		return
	}

	imported := h.svc.Import(bookDraftsFromRows(rows))
	c.JSON(http.StatusCreated, dto.ImportResponse{Imported: len(imported)})
}

func bookDraftsFromRows(rows []gemini.BookRow) []service.BookDraft {
	drafts := make([]service.BookDraft, 0, len(rows))
	for _, r := range rows {
		drafts = append(drafts, service.BookDraft{
			Title:       r.Title,
			Author:      r.Author,
			ISBN:        r.ISBN,
			Genre:       r.Genre,
			Description: r.Description,
			Quantity:    r.Quantity,
		})
	}
	return drafts
}
