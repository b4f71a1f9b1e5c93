package models

// Book is one catalogue entry. Quantity counts copies currently on the
// shelf; BorrowedBy holds the student ids currently out with a copy, so
// Quantity + len(BorrowedBy) is the total number of copies owned.
type Book struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	ISBN        string   `json:"isbn"`
	Genre       string   `json:"genre"`
	Description string   `json:"description"`
	Quantity    int      `json:"quantity"`
	CoverImage  string   `json:"cover_image"`
	BorrowedBy  []string `json:"borrowed_by"`
}

// TotalCopies returns the number of physical copies owned, on shelf or out.
func (b Book) TotalCopies() int {
	return b.Quantity + len(b.BorrowedBy)
}
