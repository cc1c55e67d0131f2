package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

const userColumns = `id, name, email, role, created_at`

const getUserQuery = `SELECT ` + userColumns + ` FROM users WHERE id = ?`

const getUserByEmailQuery = `SELECT ` + userColumns + ` FROM users WHERE email = ?`

const insertUserQuery = `INSERT INTO users (name, email, role, created_at) VALUES (?, ?, ?, ?)`

type UserRepository struct {
	db      *sqlx.DB
	dialect dialect
}

type userRow struct {
	ID        uint64    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db, dialect: dialectFor(db.DriverName())}
}

func (r *UserRepository) GetUser(ctx context.Context, userID uint64) (domain.User, error) {
	return r.getOne(ctx, getUserQuery, userID)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getOne(ctx, getUserByEmailQuery, email)
}

func (r *UserRepository) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	id, err := r.dialect.insertReturningID(
		ctx,
		r.db,
		insertUserQuery,
		user.Name,
		user.Email,
		string(user.Role),
		user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, fmt.Errorf("%w: %s", domain.ErrUserAlreadyExists, user.Email)
		}
		return domain.User{}, err
	}

	return r.GetUser(ctx, id)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, r.db.Rebind(query), arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return mapUserRowToDomainUser(row), nil
}

// mapUserRowToDomainUser keeps the stored role as is. A role outside the enum
// is never a manager.
func mapUserRowToDomainUser(row userRow) domain.User {
	return domain.User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Role:      domain.UserRole(row.Role),
		CreatedAt: row.CreatedAt,
	}
}
