package models

import "time"

// Student is a registered borrower. BirthDate is kept as the free-text
// string the roster sources provide (typically DD/MM/YYYY) and is not
// validated as a calendar date.
type Student struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	JoinDate  time.Time `json:"join_date"`
	BirthDate string    `json:"birth_date"`
	Gender    string    `json:"gender"`
	Grade     string    `json:"grade"`
	ClassName string    `json:"class_name"`
	Ethnicity string    `json:"ethnicity"`
	Address   string    `json:"address"`
}
