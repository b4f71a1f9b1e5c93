package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultModel matches the model the assistant features were built
// against.
const DefaultModel = "gemini-2.5-flash"

// ErrGateway is the single failure category of this boundary: transport
// errors, empty or malformed responses and schema-validation misses all
// wrap it. Callers only get to know the request did not produce usable
// data.
var ErrGateway = errors.New("gemini request failed")

// Client issues the four schema-constrained requests the application
// needs. Responses are decoded into typed rows and field-validated
// before anything is handed back; no retries, no caching.
type Client struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
	timeout time.Duration
}

// NewClient builds a Gemini-backed client. requestsPerMinute caps the
// outbound call rate across all operations.
func NewClient(ctx context.Context, apiKey, model string, timeout time.Duration, requestsPerMinute int) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}
	if requestsPerMinute <= 0 {
		requestsPerMinute = 30
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{
		client:  client,
		model:   model,
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), requestsPerMinute),
		timeout: timeout,
	}, nil
}

// LookupBookByISBN asks the model for the book behind an ISBN.
func (c *Client) LookupBookByISBN(ctx context.Context, isbn string) (BookDetails, error) {
	prompt := fmt.Sprintf(
		"You are a helpful library assistant. Based on this ISBN: %q, provide details about the book.", isbn)

	raw, err := c.generate(ctx, []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}, bookDetailsSchema)
	if err != nil {
		return BookDetails{}, err
	}
	return decodeBookDetails(raw)
}

// Recommend asks the model for reading recommendations for the given
// prompt. The model is asked for three; the length is not contractual.
func (c *Client) Recommend(ctx context.Context, prompt string) ([]Recommendation, error) {
	full := fmt.Sprintf(
		"You are a knowledgeable library assistant. Based on the following request, recommend 3 suitable books. Request: %q", prompt)

	raw, err := c.generate(ctx, []*genai.Content{genai.NewContentFromText(full, genai.RoleUser)}, recommendationSchema)
	if err != nil {
		return nil, err
	}
	return decodeRecommendations(raw)
}

// ExtractStudentsFromImage pulls roster rows out of a photographed or
// scanned table. The bytes and MIME type are passed through untouched.
func (c *Client) ExtractStudentsFromImage(ctx context.Context, data []byte, mimeType string) ([]StudentRow, error) {
	prompt := "Extract every student from the table in this image. Return only a JSON array following the provided schema. " +
		"Skip headers and any rows that are not student data. The columns are: No., Full name, Date of birth, Gender, Grade, Class name, Ethnicity, Home address."

	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromBytes(data, mimeType),
		genai.NewPartFromText(prompt),
	}, genai.RoleUser)

	raw, err := c.generate(ctx, []*genai.Content{content}, studentRowsSchema)
	if err != nil {
		return nil, err
	}
	return decodeStudentRows(raw)
}

// ExtractStudentsFromTable pulls roster rows out of delimited text.
func (c *Client) ExtractStudentsFromTable(ctx context.Context, csvData string) ([]StudentRow, error) {
	prompt := fmt.Sprintf(
		"This is CSV data from a spreadsheet containing a student roster. Extract every student. "+
			"Return only a JSON array following the provided schema. Skip the header row if present. CSV data:\n\n%s", csvData)

	raw, err := c.generate(ctx, []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}, studentRowsSchema)
	if err != nil {
		return nil, err
	}
	return decodeStudentRows(raw)
}

// ExtractBooksFromTable pulls catalogue rows out of delimited text.
func (c *Client) ExtractBooksFromTable(ctx context.Context, csvData string) ([]BookRow, error) {
	prompt := fmt.Sprintf(
		"This is CSV data from a spreadsheet containing a book list. Extract every book. "+
			"Return only a JSON array following the provided schema. Skip the header row if present. "+
			"Columns may include: title, author, isbn, genre, description, quantity. CSV data:\n\n%s", csvData)

	raw, err := c.generate(ctx, []*genai.Content{genai.NewContentFromText(prompt, genai.RoleUser)}, bookRowsSchema)
	if err != nil {
		return nil, err
	}
	return decodeBookRows(raw)
}

// generate runs one rate-limited, schema-constrained call and returns
// the raw JSON text.
func (c *Client) generate(ctx context.Context, contents []*genai.Content, schema *genai.Schema) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, fmt.Errorf("%w: empty response", ErrGateway)
	}
	return []byte(text), nil
}

func decodeBookDetails(raw []byte) (BookDetails, error) {
	var out BookDetails
	if err := json.Unmarshal(raw, &out); err != nil {
		return BookDetails{}, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	if out.Title == "" || out.Author == "" {
		return BookDetails{}, fmt.Errorf("%w: response missing title or author", ErrGateway)
	}
	return out, nil
}

func decodeBookRows(raw []byte) ([]BookRow, error) {
	var rows []BookRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	for i, r := range rows {
		if r.Title == "" {
			return nil, fmt.Errorf("%w: row %d missing title", ErrGateway, i)
		}
		if r.Quantity < 0 {
			return nil, fmt.Errorf("%w: row %d has negative quantity", ErrGateway, i)
		}
	}
	return rows, nil
}

func decodeStudentRows(raw []byte) ([]StudentRow, error) {
	var rows []StudentRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	for i, r := range rows {
		if r.Name == "" {
			return nil, fmt.Errorf("%w: row %d missing name", ErrGateway, i)
		}
	}
	return rows, nil
}

func decodeRecommendations(raw []byte) ([]Recommendation, error) {
	var out struct {
		Recommendations []Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	for i, r := range out.Recommendations {
		if r.Title == "" {
			return nil, fmt.Errorf("%w: recommendation %d missing title", ErrGateway, i)
		}
	}
	return out.Recommendations, nil
}
