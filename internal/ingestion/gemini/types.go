package gemini

// Typed shapes of the schema-constrained responses. Field names match
// the JSON property names declared in the response schemas.

// BookDetails is the partial book returned by an ISBN lookup.
type BookDetails struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
}

// BookRow is one extracted catalogue row from tabular data.
type BookRow struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	Genre       string `json:"genre"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// StudentRow is one extracted roster row from tabular data or an image.
type StudentRow struct {
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	Gender    string `json:"gender"`
	Grade     string `json:"grade"`
	ClassName string `json:"className"`
	Ethnicity string `json:"ethnicity"`
	Address   string `json:"address"`
}

// Recommendation is one suggested title with the model's reasoning.
type Recommendation struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Reason string `json:"reason"`
}
