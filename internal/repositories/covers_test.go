package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoverFileRepository_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "covers")
	repo := NewCoverFileRepository(dir)
	ctx := context.Background()

	// The directory does not exist yet; Save must create it.
	err := repo.Save(ctx, 9505043651, ".jpg", []byte("jpeg-bytes"))
	assert.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "9505043651.jpg"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
}

func TestCoverFileRepository_Save_Overwrite(t *testing.T) {
	dir := t.TempDir()
	repo := NewCoverFileRepository(dir)
	ctx := context.Background()

	assert.NoError(t, repo.Save(ctx, 111, ".jpg", []byte("first")))
	assert.NoError(t, repo.Save(ctx, 111, ".jpg", []byte("second")))

	data, err := os.ReadFile(filepath.Join(dir, "111.jpg"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestCoverFileRepository_Remove(t *testing.T) {
	dir := t.TempDir()
	repo := NewCoverFileRepository(dir)
	ctx := context.Background()

	assert.NoError(t, repo.Save(ctx, 222, ".jpg", []byte("cover")))
	// A different book's cover must survive the removal.
	assert.NoError(t, repo.Save(ctx, 2223, ".jpg", []byte("other")))

	err := repo.Remove(ctx, 222)
	assert.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "222.jpg"))
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(filepath.Join(dir, "2223.jpg"))
	assert.NoError(t, err)
}

func TestCoverFileRepository_Remove_Missing(t *testing.T) {
	ctx := context.Background()

	t.Run("no cover for the isbn", func(t *testing.T) {
		repo := NewCoverFileRepository(t.TempDir())
		assert.NoError(t, repo.Remove(ctx, 999))
	})

	t.Run("directory does not exist", func(t *testing.T) {
		repo := NewCoverFileRepository(filepath.Join(t.TempDir(), "never-created"))
		assert.NoError(t, repo.Remove(ctx, 999))
	})
}
