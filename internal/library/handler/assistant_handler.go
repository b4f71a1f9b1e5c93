package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"libraryhub/internal/library/dto"
	"libraryhub/internal/library/service"
)

type AssistantHandler struct {
	svc         service.AssistantService
	recommender Recommender
}

func NewAssistantHandler(svc service.AssistantService, recommender Recommender) *AssistantHandler {
	return &AssistantHandler{svc: svc, recommender: recommender}
}

func (h *AssistantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommendations", h.Recommend)
}

// Recommend serves the assistant view. The prompt is either built from a
// student id's borrowing history or taken verbatim from the caller's
// free-form query; exactly one of the two must be set.
func (h *AssistantHandler) Recommend(c *gin.Context) {
	var req dto.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if (req.StudentID == "") == (req.Query == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide either student_id or query", "code": "INVALID_REQUEST"})
		return
	}

	prompt := req.Query
	if req.StudentID != "" {
		var err error
		prompt, err = h.svc.StudentPrompt(req.StudentID)
		if err != nil {
			if errors.Is(err, service.ErrStudentNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "student not found", "code": "STUDENT_NOT_FOUND"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	recs, err := h.recommender.Recommend(c.Request.Context(), prompt)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not get recommendations, please try again", "code": "AI_UNAVAILABLE"})
		return
	}

	c.JSON(http.StatusOK, dto.RecommendationListResponse{Items: recs, Total: len(recs)})
}
