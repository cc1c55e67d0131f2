package dto

type UserTaskReportItem struct {
	UserID                uint64  `json:"userId"`
	UserName              string  `json:"userName"`
	UserEmail             string  `json:"userEmail"`
	AverageCompletedTasks float64 `json:"averageCompletedTasks"`
	TotalCompletedTasks   int     `json:"totalCompletedTasks"`
	ReportDate            string  `json:"reportDate"`
}
