package service

import (
	"context"
	"errors"
	"time"

	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

type ReportService struct {
	userRepository   ports.UserRepository
	reportRepository ports.ReportRepository
	now              func() time.Time
}

func NewReportService(
	userRepository ports.UserRepository,
	reportRepository ports.ReportRepository,
	opts ...Option,
) *ReportService {
	o := buildOptions(opts)
	return &ReportService{
		userRepository:   userRepository,
		reportRepository: reportRepository,
		now:              o.now,
	}
}

// IsManager reports false, without error, for unknown users.
func (s *ReportService) IsManager(ctx context.Context, userID uint64) (bool, error) {
	user, err := s.userRepository.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.Role.IsManager(), nil
}

// GetUserTaskReport counts, for every non-manager user, the tasks completed
// during the last ReportWindowDays days and their daily average.
func (s *ReportService) GetUserTaskReport(ctx context.Context, requestingUserID uint64) ([]domain.UserTaskReport, error) {
	manager, err := s.IsManager(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}
	if !manager {
		return nil, domain.ErrNotManager
	}

	reportDate := stamp(s.now)
	since := reportDate.AddDate(0, 0, -domain.ReportWindowDays)

	counts, err := s.reportRepository.CountCompletedTasksByRole(ctx, domain.UserRoleUser, since)
	if err != nil {
		return nil, err
	}

	reports := make([]domain.UserTaskReport, 0, len(counts))
	for _, count := range counts {
		reports = append(reports, domain.UserTaskReport{
			UserID:                count.UserID,
			UserName:              count.UserName,
			UserEmail:             count.UserEmail,
			TotalCompletedTasks:   count.Completed,
			AverageCompletedTasks: float64(count.Completed) / float64(domain.ReportWindowDays),
			ReportDate:            reportDate,
		})
	}

	return reports, nil
}

var _ ports.ReportService = (*ReportService)(nil)
