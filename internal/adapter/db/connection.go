package db

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"taskmanager/internal/config"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	driverName, dsn, err := dataSource(conf.DB)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(driverName, dsn)
	if err != nil {
		return nil, err
	}

	if driverName == sqliteDriverName {
		// A single connection keeps in-memory databases alive and serializes writers.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
		return db, nil
	}

	db.SetMaxOpenConns(conf.DB.MaxOpenConns)
	db.SetMaxIdleConns(conf.DB.MaxIdleConns)
	db.SetConnMaxLifetime(conf.DB.ConnMaxLifetime)

	return db, nil
}

func dataSource(conf config.DBConfig) (string, string, error) {
	switch conf.Driver {
	case config.DriverMySQL:
		params := conf.Params
		if params == "" {
			params = "parseTime=true&loc=UTC"
		}
		return mysqlDriverName, fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?%s",
			conf.User,
			conf.Password,
			conf.Host,
			conf.Port,
			conf.Name,
			params,
		), nil
	case config.DriverPostgres:
		return postgresDriverName, fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=%s",
			conf.User,
			conf.Password,
			conf.Host,
			conf.Port,
			conf.Name,
			conf.SSLMode,
		), nil
	case config.DriverSQLite:
		path := conf.SQLitePath
		if path == "" || path == ":memory:" {
			return sqliteDriverName, "file::memory:?_foreign_keys=on", nil
		}
		return sqliteDriverName, fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path), nil
	default:
		return "", "", fmt.Errorf("unsupported database driver %q", conf.Driver)
	}
}
