package services

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/dmolinero/biblioteca-api/internal/models"
	"github.com/dmolinero/biblioteca-api/internal/repositories"
)

// GroupByLocation derives the shelf/section/slot hierarchy from the
// location convention "<shelf>-<section><number>".
//
// Books whose location has no separator or an empty shelf segment are
// silently excluded. The section is the first character after the
// separator; the remaining digits are the slot number (0 when the
// suffix is not numeric). Shelves and sections are ordered ascending
// lexically, books ascending by slot number.
func (svc *CatalogService) GroupByLocation(ctx context.Context) ([]models.ShelfGroup, error) {
	books, err := svc.reader.ListSorted(ctx, repositories.SortByTitle)
	if err != nil {
		return nil, err
	}

	// One pass over the catalog, accumulating into nested maps keyed by
	// shelf then section; sorted afterward.
	sections := make(map[string]map[string][]models.ShelfBook)
	for _, book := range books {
		shelf, rest, found := strings.Cut(book.Location, "-")
		if !found || shelf == "" || rest == "" {
			continue
		}

		section := rest[:1]
		number, _ := strconv.Atoi(rest[1:])

		if sections[shelf] == nil {
			sections[shelf] = make(map[string][]models.ShelfBook)
		}
		sections[shelf][section] = append(sections[shelf][section], models.ShelfBook{
			ID:              book.ID,
			ISBN:            book.ISBN,
			Title:           book.Title,
			Author:          book.Author,
			Publisher:       book.Publisher,
			PublicationYear: book.PublicationYear,
			Location:        book.Location,
			Number:          number,
		})
	}

	shelves := make([]string, 0, len(sections))
	for shelf := range sections {
		shelves = append(shelves, shelf)
	}
	sort.Strings(shelves)

	groups := []models.ShelfGroup{}
	for _, shelf := range shelves {
		names := make([]string, 0, len(sections[shelf]))
		for section := range sections[shelf] {
			names = append(names, section)
		}
		sort.Strings(names)

		group := models.ShelfGroup{Shelf: shelf, Sections: make([]models.SectionGroup, 0, len(names))}
		for _, name := range names {
			shelfBooks := sections[shelf][name]
			sort.Slice(shelfBooks, func(i, j int) bool {
				return shelfBooks[i].Number < shelfBooks[j].Number
			})
			group.Sections = append(group.Sections, models.SectionGroup{
				Section: name,
				Books:   shelfBooks,
			})
		}

		groups = append(groups, group)
	}

	return groups, nil
}
