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

type StudentHandler struct {
	svc       service.StudentService
	extractor StudentExtractor
}

func NewStudentHandler(svc service.StudentService, extractor StudentExtractor) *StudentHandler {
	return &StudentHandler{svc: svc, extractor: extractor}
}

func (h *StudentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id/can-delete", h.CanDelete)
	rg.POST("", h.Create)
	rg.POST("/import", h.Import)
	rg.POST("/import-image", h.ImportImage)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List the roster, optionally filtered by ?q= over name/email/class.
func (h *StudentHandler) List(c *gin.Context) {
	students := h.svc.List(c.Query("q"))
	c.JSON(http.StatusOK, dto.StudentListResponse{Items: students, Total: len(students)})
}

func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student := h.svc.Add(req.ToDraft())
	c.JSON(http.StatusCreated, student)
}

// Update replaces the editable fields of a student. Unknown ids are a
// no-op by contract, so the response is 200 either way.
func (h *StudentHandler) Update(c *gin.Context) {
	var req dto.StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.svc.Update(c.Param("id"), req.ToDraft())
	c.JSON(http.StatusOK, gin.H{"message": "student updated"})
}

func (h *StudentHandler) CanDelete(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CanDeleteResponse{CanDelete: h.svc.CanDelete(c.Param("id"))})
}

func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrStudentHasLoans) {
			c.JSON(http.StatusConflict, gin.H{"error": "student has open borrowing records", "code": "STUDENT_HAS_LOANS"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Import reads an uploaded spreadsheet, renders its first sheet to CSV,
// has the gateway extract roster rows and appends them as one batch.
func (h *StudentHandler) Import(c *gin.Context) {
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

	rows, err := h.extractor.ExtractStudentsFromTable(c.Request.Context(), csvData)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not extract students from the file, please try again", "code": "AI_UNAVAILABLE"})
		return
	}

	imported := h.svc.Import(studentDraftsFromRows(rows))
	c.JSON(http.StatusCreated, dto.ImportResponse{Imported: len(imported)})
}

// ImportImage hands an uploaded roster photo straight to the gateway and
// appends the extracted students as one batch.
func (h *StudentHandler) ImportImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image form field is required"})
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

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/png"
	}

	rows, err := h.extractor.ExtractStudentsFromImage(c.Request.Context(), data, mimeType)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not extract students from the image, please try a clearer picture", "code": "AI_UNAVAILABLE"})
		return
	}

	imported := h.svc.Import(studentDraftsFromRows(rows))
	c.JSON(http.StatusCreated, dto.ImportResponse{Imported: len(imported)})
}

func studentDraftsFromRows(rows []gemini.StudentRow) []service.StudentDraft {
	drafts := make([]service.StudentDraft, 0, len(rows))
	for _, r := range rows {
		drafts = append(drafts, service.StudentDraft{
			Name:      r.Name,
			BirthDate: r.BirthDate,
			Gender:    r.Gender,
			Grade:     r.Grade,
			ClassName: r.ClassName,
			Ethnicity: r.Ethnicity,
			Address:   r.Address,
		})
	}
	return drafts
}
