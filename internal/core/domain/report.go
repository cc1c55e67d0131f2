package domain

import "time"

// ReportWindowDays is the trailing window, in days, of the productivity report.
const ReportWindowDays = 30

type UserTaskReport struct {
	UserID                uint64
	UserName              string
	UserEmail             string
	TotalCompletedTasks   int
	AverageCompletedTasks float64
	ReportDate            time.Time
}

// CompletedTaskCount is the raw aggregate the report is computed from.
type CompletedTaskCount struct {
	UserID    uint64
	UserName  string
	UserEmail string
	Completed int
}
