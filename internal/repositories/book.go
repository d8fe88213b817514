package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmolinero/biblioteca-api/internal/logger"
	"github.com/dmolinero/biblioteca-api/internal/models"
	"github.com/jmoiron/sqlx"
)

const bookColumns = "id, isbn, title, author, publisher, publication_year, location"

// Sort keys accepted by ListSorted. The service whitelists request input
// down to one of these before calling the repository.
const (
	SortByTitle     = "title"
	SortByAuthor    = "author"
	SortByPublisher = "publisher"
	SortByYear      = "publication_year"
	SortByID        = "id"
)

type BookReadRepository struct {
	db *sqlx.DB
}

func NewBookReadRepository(db *sqlx.DB) *BookReadRepository {
	return &BookReadRepository{db: db}
}

// Count returns the total number of book rows.
func (r *BookReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM books`

	var count int64
	err := r.db.GetContext(ctx, &count, query)

	logger.Log.Infow(
		"query", query,
		"result", count,
		"error", err,
	)

	return count, err
}

// Random returns up to n books in the store's randomized order.
// No seed is involved; two calls are not expected to agree.
func (r *BookReadRepository) Random(ctx context.Context, n int) ([]models.BookDB, error) {
	query := fmt.Sprintf(`SELECT %s FROM books ORDER BY RANDOM() LIMIT $1`, bookColumns)

	books := []models.BookDB{}
	err := r.db.SelectContext(ctx, &books, query, n)

	logger.Log.Infow(
		"query", query,
		"args", []any{n},
		"result", len(books),
		"error", err,
	)

	return books, err
}

// orderClause maps a sort key to its ORDER BY expression.
//
// The author and publisher sorts push rows holding the empty-field
// sentinel behind all others and order ascending inside each partition.
// The publication_year sort partitions the same way but orders
// descending (newest first) inside the partitions; that asymmetry is
// part of the API contract.
func orderClause(sortBy string) string {
	switch sortBy {
	case SortByAuthor:
		return fmt.Sprintf(
			"CASE WHEN author = '%s' THEN 1 ELSE 0 END ASC, author ASC",
			models.SentinelAuthor,
		)
	case SortByPublisher:
		return fmt.Sprintf(
			"CASE WHEN publisher = '%s' THEN 1 ELSE 0 END ASC, publisher ASC",
			models.SentinelPublisher,
		)
	case SortByYear:
		return fmt.Sprintf(
			"CASE WHEN publication_year = '%s' THEN 1 ELSE 0 END ASC, publication_year DESC",
			models.SentinelYear,
		)
	case SortByID:
		return "id DESC"
	default:
		return "title ASC"
	}
}

// ListSorted returns all books ordered by the given sort key.
func (r *BookReadRepository) ListSorted(ctx context.Context, sortBy string) ([]models.BookDB, error) {
	query := fmt.Sprintf(`SELECT %s FROM books ORDER BY %s`, bookColumns, orderClause(sortBy))

	books := []models.BookDB{}
	err := r.db.SelectContext(ctx, &books, query)

	logger.Log.Infow(
		"query", query,
		"result", len(books),
		"error", err,
	)

	return books, err
}

// Search returns books where the keyword matches the ISBN or year exactly,
// or any of title, author, publisher, location as a case-insensitive
// substring. Results are ordered ascending by title.
func (r *BookReadRepository) Search(ctx context.Context, keyword string) ([]models.BookDB, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM books
		WHERE isbn::TEXT = $1
		   OR title ILIKE '%%' || $1 || '%%'
		   OR author ILIKE '%%' || $1 || '%%'
		   OR publisher ILIKE '%%' || $1 || '%%'
		   OR publication_year = $1
		   OR location ILIKE '%%' || $1 || '%%'
		ORDER BY title ASC
	`, bookColumns)

	books := []models.BookDB{}
	err := r.db.SelectContext(ctx, &books, query, keyword)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{keyword},
		"result", len(books),
		"error", err,
	)

	return books, err
}

// GetByISBN returns the book with the given ISBN, or nil when no row matches.
func (r *BookReadRepository) GetByISBN(ctx context.Context, isbn int64) (*models.BookDB, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE isbn = $1`, bookColumns)

	var book models.BookDB
	err := r.db.GetContext(ctx, &book, query, isbn)

	logger.Log.Infow(
		"query", query,
		"args", []any{isbn},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &book, nil
}

// GetByLocation returns the book occupying the given shelf slot,
// or nil when the slot is free.
func (r *BookReadRepository) GetByLocation(ctx context.Context, location string) (*models.BookDB, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE location = $1`, bookColumns)

	var book models.BookDB
	err := r.db.GetContext(ctx, &book, query, location)

	logger.Log.Infow(
		"query", query,
		"args", []any{location},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &book, nil
}

type BookWriteRepository struct {
	db *sqlx.DB
}

func NewBookWriteRepository(db *sqlx.DB) *BookWriteRepository {
	return &BookWriteRepository{db: db}
}

// Save inserts a new, already normalized book row.
// Unique-constraint violations surface as driver errors; the service
// maps them to conflict errors.
func (r *BookWriteRepository) Save(ctx context.Context, book *models.BookDB) error {
	const query = `
		INSERT INTO books (isbn, title, author, publisher, publication_year, location)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{book.ISBN, book.Title, book.Author, book.Publisher, book.PublicationYear, book.Location}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// Update overwrites every column of the row identified by book.ID.
func (r *BookWriteRepository) Update(ctx context.Context, book *models.BookDB) error {
	const query = `
		UPDATE books
		SET isbn = $2, title = $3, author = $4, publisher = $5, publication_year = $6, location = $7
		WHERE id = $1
	`
	args := []any{book.ID, book.ISBN, book.Title, book.Author, book.Publisher, book.PublicationYear, book.Location}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes the book with the given ISBN.
func (r *BookWriteRepository) Delete(ctx context.Context, isbn int64) error {
	const query = `DELETE FROM books WHERE isbn = $1`

	res, err := r.db.ExecContext(ctx, query, isbn)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{isbn},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
