package handler

import (
	"context"

	"libraryhub/internal/ingestion/gemini"
)

// Narrow views of the AI gateway, one per consuming handler, so tests
// can stand in for exactly the calls a screen makes. *gemini.Client
// satisfies all of them.

type BookLookup interface {
	LookupBookByISBN(ctx context.Context, isbn string) (gemini.BookDetails, error)
}

type Recommender interface {
	Recommend(ctx context.Context, prompt string) ([]gemini.Recommendation, error)
}

type BookExtractor interface {
	ExtractBooksFromTable(ctx context.Context, csvData string) ([]gemini.BookRow, error)
}

type StudentExtractor interface {
	ExtractStudentsFromTable(ctx context.Context, csvData string) ([]gemini.StudentRow, error)
	ExtractStudentsFromImage(ctx context.Context, data []byte, mimeType string) ([]gemini.StudentRow, error)
}
