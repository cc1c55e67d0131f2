package ports

import (
	"context"
	"time"

	"taskmanager/internal/core/domain"
)

type ReportRepository interface {
	CountCompletedTasksByRole(ctx context.Context, role domain.UserRole, since time.Time) ([]domain.CompletedTaskCount, error)
}

type ReportService interface {
	IsManager(ctx context.Context, userID uint64) (bool, error)
	GetUserTaskReport(ctx context.Context, requestingUserID uint64) ([]domain.UserTaskReport, error)
}
