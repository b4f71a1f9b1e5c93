package dto

import "libraryhub/internal/ingestion/gemini"

// RecommendationRequest: exactly one of StudentID (history-based prompt)
// or Query (free form) must be set; the handler enforces the either-or.
type RecommendationRequest struct {
	StudentID string `json:"student_id"`
	Query     string `json:"query"`
}

// RecommendationListResponse: the assistant view payload.
type RecommendationListResponse struct {
	Items []gemini.Recommendation `json:"items"`
	Total int                     `json:"total"`
}
