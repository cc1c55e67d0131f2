package mapper

import (
	"taskmanager/internal/adapter/http/dto"
	"taskmanager/internal/core/domain"
)

func ToUserTaskReportItems(reports []domain.UserTaskReport) []dto.UserTaskReportItem {
	items := make([]dto.UserTaskReportItem, 0, len(reports))
	for _, report := range reports {
		items = append(items, dto.UserTaskReportItem{
			UserID:                report.UserID,
			UserName:              report.UserName,
			UserEmail:             report.UserEmail,
			AverageCompletedTasks: report.AverageCompletedTasks,
			TotalCompletedTasks:   report.TotalCompletedTasks,
			ReportDate:            formatTime(report.ReportDate),
		})
	}
	return items
}
