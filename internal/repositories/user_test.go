package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupUsersPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(100) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserReadRepository(t *testing.T) {
	db, teardown := setupUsersPostgresContainer(t)
	defer teardown()

	_, err := db.Exec(
		`INSERT INTO users (email, password_hash) VALUES ($1, $2)`,
		"maria@example.com", "bcrypt-hash",
	)
	assert.NoError(t, err)

	repo := NewUserReadRepository(db)
	ctx := context.Background()

	t.Run("GetByEmail found", func(t *testing.T) {
		user, err := repo.GetByEmail(ctx, "maria@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "maria@example.com", user.Email)
		assert.Equal(t, "bcrypt-hash", user.PasswordHash)
	})

	t.Run("GetByEmail missing returns nil without error", func(t *testing.T) {
		user, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("GetByID found", func(t *testing.T) {
		seeded, err := repo.GetByEmail(ctx, "maria@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, seeded)

		user, err := repo.GetByID(ctx, seeded.ID)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "maria@example.com", user.Email)
	})

	t.Run("GetByID missing returns nil without error", func(t *testing.T) {
		user, err := repo.GetByID(ctx, 99999)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestUserWriteRepository_UpdatePasswordHash(t *testing.T) {
	db, teardown := setupUsersPostgresContainer(t)
	defer teardown()

	_, err := db.Exec(
		`INSERT INTO users (email, password_hash) VALUES ($1, $2)`,
		"jorge@example.com", "old-hash",
	)
	assert.NoError(t, err)

	readRepo := NewUserReadRepository(db)
	writeRepo := NewUserWriteRepository(db)
	ctx := context.Background()

	err = writeRepo.UpdatePasswordHash(ctx, "jorge@example.com", "new-hash")
	assert.NoError(t, err)

	user, err := readRepo.GetByEmail(ctx, "jorge@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "new-hash", user.PasswordHash)
}
