package gemini

import "google.golang.org/genai"

// Response schemas the model is constrained to. Mirrors of the typed
// structs in types.go.

var bookDetailsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"title":       {Type: genai.TypeString, Description: "Title of the book"},
		"author":      {Type: genai.TypeString, Description: "Author of the book"},
		"description": {Type: genai.TypeString, Description: "Short description of the book's content"},
		"genre":       {Type: genai.TypeString, Description: "Main genre of the book (e.g. Novel, Science Fiction)"},
	},
	Required: []string{"title", "author", "description", "genre"},
}

var bookRowsSchema = &genai.Schema{
	Type:        genai.TypeArray,
	Description: "List of books.",
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString, Description: "Title of the book"},
			"author":      {Type: genai.TypeString, Description: "Author of the book"},
			"isbn":        {Type: genai.TypeString, Description: "ISBN of the book"},
			"genre":       {Type: genai.TypeString, Description: "Main genre of the book"},
			"description": {Type: genai.TypeString, Description: "Short description of the book's content"},
			"quantity":    {Type: genai.TypeInteger, Description: "Number of copies held by the library"},
		},
		Required: []string{"title", "author", "isbn", "genre", "description", "quantity"},
	},
}

var recommendationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"recommendations": {
			Type:        genai.TypeArray,
			Description: "List of recommended books.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"title":  {Type: genai.TypeString, Description: "Title of the recommended book"},
					"author": {Type: genai.TypeString, Description: "Author of the book"},
					"reason": {Type: genai.TypeString, Description: "Short reason why this book is recommended, based on the query"},
				},
				Required: []string{"title", "author", "reason"},
			},
		},
	},
	Required: []string{"recommendations"},
}

var studentRowsSchema = &genai.Schema{
	Type:        genai.TypeArray,
	Description: "List of students.",
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":      {Type: genai.TypeString, Description: "Full name of the student"},
			"birthDate": {Type: genai.TypeString, Description: "Date of birth, formatted DD/MM/YYYY"},
			"gender":    {Type: genai.TypeString, Description: "Gender of the student"},
			"grade":     {Type: genai.TypeString, Description: "Grade of the student (e.g. 6)"},
			"className": {Type: genai.TypeString, Description: "Class name of the student (e.g. 6A)"},
			"ethnicity": {Type: genai.TypeString, Description: "Ethnicity of the student"},
			"address":   {Type: genai.TypeString, Description: "Home address of the student"},
		},
		Required: []string{"name", "birthDate", "gender", "grade", "className", "ethnicity", "address"},
	},
}
