//go:build integration
// +build integration

package tests

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	dbadapter "taskmanager/internal/adapter/db"
	"taskmanager/internal/config"
)

func TestAPISuiteMySQL(t *testing.T) {
	host := envOrDefault("MYSQL_HOST", "127.0.0.1")
	port := envOrDefault("MYSQL_PORT", "3306")
	rootUser := envOrDefault("MYSQL_ROOT_USER", "root")
	rootPassword := envOrDefault("MYSQL_ROOT_PASSWORD", "root")
	database := envOrDefault("MYSQL_TEST_DATABASE", envOrDefault("MYSQL_DATABASE", "taskmanager")+"_test")

	adminDB, err := sqlx.Connect("mysql", fmt.Sprintf("%s:%s@tcp(%s:%s)/?parseTime=true", rootUser, rootPassword, host, port))
	if err != nil {
		t.Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	_, err = adminDB.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", database))
	require.NoError(t, err)

	db, err := dbadapter.ConnectDB(&config.Config{DB: config.DBConfig{
		Driver:       config.DriverMySQL,
		Host:         host,
		Port:         port,
		User:         rootUser,
		Password:     rootPassword,
		Name:         database,
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	}})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, db.Close())
		if strings.HasSuffix(database, "_test") {
			_, err := adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", database))
			require.NoError(t, err)
		}
		require.NoError(t, adminDB.Close())
	})

	suite.Run(t, &APISuite{
		open: func(t *testing.T) *sqlx.DB {
			resetDatabase(t, db)
			return db
		},
	})
}

func resetDatabase(t *testing.T, db *sqlx.DB) {
	t.Helper()

	for _, table := range []string{"task_histories", "tasks", "projects", "users", "schema_migrations"} {
		_, err := db.Exec("DROP TABLE IF EXISTS " + table)
		require.NoError(t, err)
	}

	_, err := dbadapter.Migrate(context.Background(), db)
	require.NoError(t, err)
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
