package repositories

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmolinero/biblioteca-api/internal/logger"
)

// CoverFileRepository stores book cover blobs on the local filesystem
// under a flat keyspace "<isbn>.<ext>".
type CoverFileRepository struct {
	dir string
}

func NewCoverFileRepository(dir string) *CoverFileRepository {
	return &CoverFileRepository{dir: dir}
}

// Save writes the cover blob for the given ISBN. ext must include the
// leading dot, taken from the uploaded file's original name.
func (r *CoverFileRepository) Save(ctx context.Context, isbn int64, ext string, data []byte) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(r.dir, fmt.Sprintf("%d%s", isbn, ext))
	err := os.WriteFile(path, data, 0o644)

	logger.Log.Infow(
		"cover", path,
		"size", len(data),
		"error", err,
	)

	return err
}

// Remove deletes any cover whose key starts with "<isbn>.", tolerating
// an unknown extension. A missing cover is not an error.
func (r *CoverFileRepository) Remove(ctx context.Context, isbn int64) error {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	prefix := fmt.Sprintf("%d.", isbn)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}

		path := filepath.Join(r.dir, entry.Name())
		err := os.Remove(path)

		logger.Log.Infow(
			"cover", path,
			"result", "removed",
			"error", err,
		)

		if err != nil {
			return err
		}
	}

	return nil
}
