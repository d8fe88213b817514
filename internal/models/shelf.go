package models

// ShelfBook is a book annotated with its numeric slot inside a section.
type ShelfBook struct {
	ID              int64  `json:"id"`
	ISBN            int64  `json:"isbn"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Publisher       string `json:"publisher"`
	PublicationYear string `json:"publication_year"`
	Location        string `json:"location"`
	Number          int    `json:"number"` // Slot number parsed from the location suffix
}

// SectionGroup holds the books of one section, sorted by slot number.
type SectionGroup struct {
	Section string      `json:"section"`
	Books   []ShelfBook `json:"books"`
}

// ShelfGroup is one shelf of the derived shelf/section/slot hierarchy.
// No shelf entity exists in the store; the hierarchy is computed from
// the location convention at query time.
type ShelfGroup struct {
	Shelf    string         `json:"shelf"`
	Sections []SectionGroup `json:"sections"`
}
