package db

import (
	"context"

	"github.com/jmoiron/sqlx"
)

const (
	mysqlDriverName    = "mysql"
	postgresDriverName = "pgx"
	sqliteDriverName   = "sqlite3"
)

type dialect struct {
	// migrations sub-directory
	name          string
	returning     bool
	lockSuffix    string
	timestampType string
}

func dialectFor(driverName string) dialect {
	switch driverName {
	case postgresDriverName:
		return dialect{name: "postgres", returning: true, lockSuffix: " FOR UPDATE", timestampType: "TIMESTAMPTZ"}
	case sqliteDriverName:
		return dialect{name: "sqlite3", returning: true, timestampType: "DATETIME"}
	default:
		return dialect{name: "mysql", lockSuffix: " FOR UPDATE", timestampType: "DATETIME(6)"}
	}
}

// insertReturningID runs an INSERT written with ? bindvars and returns the new row id.
func (d dialect) insertReturningID(ctx context.Context, ext sqlx.ExtContext, query string, args ...any) (uint64, error) {
	if d.returning {
		var id uint64
		if err := sqlx.GetContext(ctx, ext, &id, ext.Rebind(query+" RETURNING id"), args...); err != nil {
			return 0, err
		}
		return id, nil
	}

	result, err := ext.ExecContext(ctx, ext.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
