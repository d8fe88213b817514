package services

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/dmolinero/biblioteca-api/internal/logger"
	"github.com/dmolinero/biblioteca-api/internal/models"
	"github.com/dmolinero/biblioteca-api/internal/repositories"
	"github.com/jackc/pgx/v5/pgconn"
)

// Error variables
var (
	ErrInvalidBookCount = errors.New("invalid count parameter")
	ErrNoBooks          = errors.New("no books available")
	ErrBookNotFound     = errors.New("book not found")
	ErrInvalidISBN      = errors.New("invalid isbn")
	ErrISBNExists       = errors.New("a book with that isbn already exists")
	ErrLocationTaken    = errors.New("a book already occupies that location")
)

// BookReader defines read-only operations over the books table.
type BookReader interface {
	Count(ctx context.Context) (int64, error)
	Random(ctx context.Context, n int) ([]models.BookDB, error)
	ListSorted(ctx context.Context, sortBy string) ([]models.BookDB, error)
	Search(ctx context.Context, keyword string) ([]models.BookDB, error)
	GetByISBN(ctx context.Context, isbn int64) (*models.BookDB, error)
	GetByLocation(ctx context.Context, location string) (*models.BookDB, error)
}

// BookWriter defines write operations over the books table.
type BookWriter interface {
	Save(ctx context.Context, book *models.BookDB) error
	Update(ctx context.Context, book *models.BookDB) error
	Delete(ctx context.Context, isbn int64) error
}

// CoverStore persists cover blobs keyed by "<isbn>.<ext>".
type CoverStore interface {
	Save(ctx context.Context, isbn int64, ext string, data []byte) error
	Remove(ctx context.Context, isbn int64) error
}

// CountCache caches the total book count.
type CountCache interface {
	GetCount(ctx context.Context) (int64, error)
	SetCount(ctx context.Context, count int64) error
	Invalidate(ctx context.Context) error
}

// BookInput holds the raw form fields for creating a book.
type BookInput struct {
	ISBN            string
	Title           string
	Author          string
	Publisher       string
	PublicationYear string
	Location        string
}

// BookUpdateInput holds the fields a client may supply when partially
// updating a book. Every field is a pointer so "not provided" (nil) can
// be told apart from "set to empty"; only non-nil fields are applied.
type BookUpdateInput struct {
	ISBN            *string
	Title           *string
	Author          *string
	Publisher       *string
	PublicationYear *string
	Location        *string
}

// CoverUpload is a validated cover image ready to be stored.
type CoverUpload struct {
	Ext  string // extension with leading dot, from the original filename
	Data []byte
}

// CatalogService implements all book operations: CRUD, search, random
// sampling, sorted listing, and the shelf/section/slot grouping.
type CatalogService struct {
	reader BookReader
	writer BookWriter
	covers CoverStore
	cache  CountCache
}

// NewCatalogService creates a new CatalogService. cache may be nil, in
// which case Count always hits the store.
func NewCatalogService(reader BookReader, writer BookWriter, covers CoverStore, cache CountCache) *CatalogService {
	return &CatalogService{
		reader: reader,
		writer: writer,
		covers: covers,
		cache:  cache,
	}
}

// Count returns the total number of books, consulting the cache first
// when one is configured.
func (svc *CatalogService) Count(ctx context.Context) (int64, error) {
	if svc.cache != nil {
		if count, err := svc.cache.GetCount(ctx); err == nil {
			return count, nil
		} else if !errors.Is(err, repositories.ErrCountCacheMiss) {
			logger.Log.Warnw("count cache read failed", "err", err)
		}
	}

	count, err := svc.reader.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count books", "err", err)
		return 0, err
	}

	if svc.cache != nil {
		if err := svc.cache.SetCount(ctx, count); err != nil {
			logger.Log.Warnw("count cache write failed", "err", err)
		}
	}

	return count, nil
}

// RandomBooks returns n books in randomized order. The selection is not
// seeded and is not reproducible across calls.
func (svc *CatalogService) RandomBooks(ctx context.Context, n int) ([]models.BookDB, error) {
	if n <= 0 {
		return nil, ErrInvalidBookCount
	}

	total, err := svc.reader.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count books", "err", err)
		return nil, err
	}
	if total == 0 {
		return nil, ErrNoBooks
	}

	return svc.reader.Random(ctx, n)
}

// ListBooks returns all books ordered by the given sort key. Any
// unrecognized key falls back to title.
func (svc *CatalogService) ListBooks(ctx context.Context, sortBy string) ([]models.BookDB, error) {
	switch sortBy {
	case repositories.SortByTitle, repositories.SortByAuthor, repositories.SortByPublisher,
		repositories.SortByYear, repositories.SortByID:
	default:
		sortBy = repositories.SortByTitle
	}

	return svc.reader.ListSorted(ctx, sortBy)
}

// SearchBooks returns books matching the keyword, ordered ascending by
// title. A blank keyword returns the full catalog in title order.
func (svc *CatalogService) SearchBooks(ctx context.Context, keyword string) ([]models.BookDB, error) {
	if strings.TrimSpace(keyword) == "" {
		return svc.reader.ListSorted(ctx, repositories.SortByTitle)
	}

	return svc.reader.Search(ctx, keyword)
}

// GetBookByISBN returns the book with the given ISBN.
func (svc *CatalogService) GetBookByISBN(ctx context.Context, isbn string) (*models.BookDB, error) {
	parsed, err := parseISBN(isbn)
	if err != nil {
		return nil, err
	}

	book, err := svc.reader.GetByISBN(ctx, parsed)
	if err != nil {
		logger.Log.Errorw("failed to get book", "isbn", isbn, "err", err)
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}

	return book, nil
}

// AddBook validates uniqueness, normalizes the fields, and persists a
// new book. The cover blob, if supplied, is written only after the row
// commit; a blob failure after the commit is logged, not rolled back.
func (svc *CatalogService) AddBook(ctx context.Context, in BookInput, cover *CoverUpload) error {
	isbn, err := parseISBN(in.ISBN)
	if err != nil {
		return err
	}
	location := strings.TrimSpace(in.Location)

	existing, err := svc.reader.GetByISBN(ctx, isbn)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrISBNExists
	}

	occupant, err := svc.reader.GetByLocation(ctx, location)
	if err != nil {
		return err
	}
	if occupant != nil {
		return ErrLocationTaken
	}

	book := &models.BookDB{
		ISBN:            isbn,
		Title:           strings.ToUpper(strings.TrimSpace(in.Title)),
		Author:          normalizeOrSentinel(in.Author, models.SentinelAuthor),
		Publisher:       normalizeOrSentinel(in.Publisher, models.SentinelPublisher),
		PublicationYear: normalizeOrSentinel(in.PublicationYear, models.SentinelYear),
		Location:        normalizeOrSentinel(in.Location, models.SentinelLocation),
	}

	if err := svc.writer.Save(ctx, book); err != nil {
		// Two concurrent adds can both pass the pre-checks; the unique
		// constraint is the final arbiter and must map to the same outcome.
		return mapUniqueViolation(err)
	}

	if svc.cache != nil {
		if err := svc.cache.Invalidate(ctx); err != nil {
			logger.Log.Warnw("count cache invalidation failed", "err", err)
		}
	}

	if cover != nil {
		if err := svc.covers.Save(ctx, isbn, cover.Ext, cover.Data); err != nil {
			logger.Log.Errorw("cover write failed after row commit", "isbn", isbn, "err", err)
		}
	}

	return nil
}

// UpdateBook applies a partial update to the book with the given ISBN.
// Supplied fields are trimmed and normalized; omitted fields are left
// unchanged. Location and ISBN conflicts are checked against other rows.
func (svc *CatalogService) UpdateBook(ctx context.Context, bookISBN string, in BookUpdateInput, cover *CoverUpload) error {
	isbn, err := parseISBN(bookISBN)
	if err != nil {
		return err
	}

	book, err := svc.reader.GetByISBN(ctx, isbn)
	if err != nil {
		return err
	}
	if book == nil {
		return ErrBookNotFound
	}

	if in.Location != nil && strings.TrimSpace(*in.Location) != "" {
		occupant, err := svc.reader.GetByLocation(ctx, strings.TrimSpace(*in.Location))
		if err != nil {
			return err
		}
		if occupant != nil && occupant.ID != book.ID {
			return ErrLocationTaken
		}
	}

	if in.ISBN != nil && strings.TrimSpace(*in.ISBN) != "" {
		newISBN, err := parseISBN(*in.ISBN)
		if err != nil {
			return err
		}
		if newISBN != book.ISBN {
			existing, err := svc.reader.GetByISBN(ctx, newISBN)
			if err != nil {
				return err
			}
			if existing != nil {
				return ErrISBNExists
			}
			book.ISBN = newISBN
		}
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		book.Title = strings.ToUpper(strings.TrimSpace(*in.Title))
	}
	if in.Author != nil {
		book.Author = normalizeOrSentinel(*in.Author, models.SentinelAuthor)
	}
	if in.Publisher != nil {
		book.Publisher = normalizeOrSentinel(*in.Publisher, models.SentinelPublisher)
	}
	if in.PublicationYear != nil {
		book.PublicationYear = normalizeOrSentinel(*in.PublicationYear, models.SentinelYear)
	}
	if in.Location != nil {
		book.Location = normalizeOrSentinel(*in.Location, models.SentinelLocation)
	}

	if err := svc.writer.Update(ctx, book); err != nil {
		return mapUniqueViolation(err)
	}

	if cover != nil {
		if err := svc.covers.Save(ctx, book.ISBN, cover.Ext, cover.Data); err != nil {
			logger.Log.Errorw("cover write failed after row update", "isbn", book.ISBN, "err", err)
		}
	}

	return nil
}

// DeleteBook removes the book with the given ISBN. The cover blob is
// removed best-effort; the row is deleted regardless of the outcome.
func (svc *CatalogService) DeleteBook(ctx context.Context, bookISBN string) error {
	isbn, err := parseISBN(bookISBN)
	if err != nil {
		return err
	}

	book, err := svc.reader.GetByISBN(ctx, isbn)
	if err != nil {
		return err
	}
	if book == nil {
		return ErrBookNotFound
	}

	if err := svc.covers.Remove(ctx, isbn); err != nil {
		logger.Log.Errorw("cover removal failed", "isbn", isbn, "err", err)
	}

	if err := svc.writer.Delete(ctx, isbn); err != nil {
		return err
	}

	if svc.cache != nil {
		if err := svc.cache.Invalidate(ctx); err != nil {
			logger.Log.Warnw("count cache invalidation failed", "err", err)
		}
	}

	return nil
}

// parseISBN parses a raw ISBN form value. Empty or non-numeric input is
// an invalid argument.
func parseISBN(raw string) (int64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, ErrInvalidISBN
	}

	isbn, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, ErrInvalidISBN
	}

	return isbn, nil
}

// normalizeOrSentinel trims the input, substitutes the sentinel for an
// empty value, and upper-cases everything else.
func normalizeOrSentinel(raw, sentinel string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return sentinel
	}
	return strings.ToUpper(trimmed)
}

// mapUniqueViolation converts a postgres unique-constraint violation
// into the matching conflict error, leaving other errors untouched.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return err
	}

	if strings.Contains(pgErr.ConstraintName, "location") {
		return ErrLocationTaken
	}
	return ErrISBNExists
}
