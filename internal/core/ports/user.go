package ports

import (
	"context"

	"taskmanager/internal/core/domain"
)

type UserRepository interface {
	GetUser(ctx context.Context, userID uint64) (domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}
