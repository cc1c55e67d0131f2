package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	dbadapter "taskmanager/internal/adapter/db"
	appservice "taskmanager/internal/app/service"
	"taskmanager/internal/core/domain"
)

var reportManagerID uint64

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the 30-day completed tasks report",
	Long: `Print the number of tasks each user completed in the last 30 days.

Only managers may read the report, as through the API.

Examples:
  taskmanager report --manager 1`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().Uint64VarP(&reportManagerID, "manager", "m", 0, "id of the manager requesting the report")
	_ = reportCmd.MarkFlagRequired("manager")
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
)

// RenderReport writes the report as a bordered table.
func RenderReport(w io.Writer, reports []domain.UserTaskReport) error {
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			strconv.FormatUint(r.UserID, 10),
			r.UserName,
			r.UserEmail,
			strconv.Itoa(r.TotalCompletedTasks),
			strconv.FormatFloat(r.AverageCompletedTasks, 'f', 2, 64),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#3b4261"))).
		Headers("ID", "USER", "EMAIL", "COMPLETED", "AVG/DAY").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= 3:
				return numberStyle
			default:
				return cellStyle
			}
		})

	title := fmt.Sprintf("Completed tasks, last %d days", domain.ReportWindowDays)
	if len(reports) > 0 {
		title += " (until " + reports[0].ReportDate.Format("2006-01-02 15:04 MST") + ")"
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), t.Render()))
	return err
}

func runReport(cmd *cobra.Command, _ []string) error {
	rt, err := setup(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer rt.close()

	service := appservice.NewReportService(
		dbadapter.NewUserRepository(rt.db),
		dbadapter.NewReportRepository(rt.db),
	)

	reports, err := service.GetUserTaskReport(cmd.Context(), reportManagerID)
	if err != nil {
		return err
	}

	return RenderReport(cmd.OutOrStdout(), reports)
}
