// Package dbtest opens migrated in-memory SQLite databases for tests.
package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	dbadapter "taskmanager/internal/adapter/db"
	"taskmanager/internal/config"
	"taskmanager/internal/core/domain"
)

// Open returns a fresh, fully migrated database closed at the end of the test.
func Open(t testing.TB) *sqlx.DB {
	t.Helper()

	db, err := dbadapter.ConnectDB(&config.Config{
		DB: config.DBConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = dbadapter.Migrate(context.Background(), db)
	require.NoError(t, err)

	return db
}

// CreateUser inserts a user and returns it with its id.
func CreateUser(t testing.TB, db *sqlx.DB, name, email string, role domain.UserRole) domain.User {
	t.Helper()

	user, err := dbadapter.NewUserRepository(db).CreateUser(context.Background(), domain.User{
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	})
	require.NoError(t, err)

	return user
}
