package models

// BookDB represents a book record in the books table.
//
// The id is system-assigned and used only internally; mutation requests
// identify books by ISBN. The four categorical text fields are always
// stored trimmed and upper-cased, with empty inputs replaced by the
// sentinel values below before persistence.
type BookDB struct {
	ID              int64  `json:"id" db:"id"`                             // Primary key
	ISBN            int64  `json:"isbn" db:"isbn"`                         // Unique, tolerates 13-digit ISBNs
	Title           string `json:"title" db:"title"`                       // Upper-cased, max 120
	Author          string `json:"author" db:"author"`                     // Upper-cased or SentinelAuthor, max 100
	Publisher       string `json:"publisher" db:"publisher"`               // Upper-cased or SentinelPublisher, max 50
	PublicationYear string `json:"publication_year" db:"publication_year"` // Text, tolerates SentinelYear, max 6
	Location        string `json:"location" db:"location"`                 // Unique shelf slot "<shelf>-<section><number>", max 6
}

// Sentinel values substituted for empty inputs, distinguishing
// "unknown" from "empty". Spanish library shorthand: sin autor,
// sin editorial, sin fecha.
const (
	SentinelAuthor    = "S.A"
	SentinelPublisher = "S.E"
	SentinelYear      = "S.F"
	SentinelLocation  = "---"
)
