package cli_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	dbadapter "taskmanager/internal/adapter/db"
	"taskmanager/internal/adapter/db/dbtest"
	appservice "taskmanager/internal/app/service"
	"taskmanager/internal/cli"
	"taskmanager/internal/core/domain"
)

const fixtureYAML = `
users:
  - name: Maria
    email: maria@example.com
    role: Manager
  - name: Joao
    email: joao@example.com
    role: User
projects:
  - name: Backend
    owner: joao@example.com
    tasks:
      - title: Build API
        priority: High
        dueDate: "2026-11-02"
      - title: Write docs
        description: README and runbook
        priority: Low
`

func TestParseFixture(t *testing.T) {
	fixture, err := cli.ParseFixture([]byte(fixtureYAML))
	require.NoError(t, err)
	require.Len(t, fixture.Users, 2)
	require.Len(t, fixture.Projects, 1)
	assert.Equal(t, "README and runbook", fixture.Projects[0].Tasks[1].Description)
}

func TestParseFixture_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown role":   "users:\n  - {name: A, email: a@example.com, role: Admin}\n",
		"missing email":  "users:\n  - {name: A, role: User}\n",
		"unknown owner":  "users: []\nprojects:\n  - {name: P, owner: x@example.com}\n",
		"bad priority":   "users:\n  - {name: A, email: a@example.com, role: User}\nprojects:\n  - name: P\n    owner: a@example.com\n    tasks:\n      - {title: T, priority: Urgent}\n",
		"malformed yaml": "users: [",
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := cli.ParseFixture([]byte(data))
			require.Error(t, err)
		})
	}
}

func TestSeeder_SeedIsRepeatable(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	fixture, err := cli.ParseFixture([]byte(fixtureYAML))
	require.NoError(t, err)

	projects := appservice.NewProjectService(dbadapter.NewProjectRepository(db))
	seeder := &cli.Seeder{
		Users:    dbadapter.NewUserRepository(db),
		Projects: projects,
		Tasks:    appservice.NewTaskService(dbadapter.NewTaskRepository(db)),
		Now:      time.Now,
		Logger:   zap.NewNop(),
	}

	result, err := seeder.Seed(ctx, fixture)
	require.NoError(t, err)
	assert.Equal(t, cli.SeedResult{UsersCreated: 2, ProjectsCreated: 1, TasksCreated: 2}, result)

	result, err = seeder.Seed(ctx, fixture)
	require.NoError(t, err)
	assert.Equal(t, cli.SeedResult{UsersSkipped: 2, ProjectsSkipped: 1}, result)

	joao, err := dbadapter.NewUserRepository(db).GetUserByEmail(ctx, "joao@example.com")
	require.NoError(t, err)
	require.Equal(t, domain.UserRoleUser, joao.Role)

	owned, err := projects.ListProjects(ctx, joao.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	require.Equal(t, 2, owned[0].TaskCount)
}

func TestRenderReport(t *testing.T) {
	reportDate := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var out bytes.Buffer
	err := cli.RenderReport(&out, []domain.UserTaskReport{
		{UserID: 2, UserName: "Joao", UserEmail: "joao@example.com", TotalCompletedTasks: 6, AverageCompletedTasks: 0.2, ReportDate: reportDate},
		{UserID: 3, UserName: "Ana", UserEmail: "ana@example.com", ReportDate: reportDate},
	})
	require.NoError(t, err)

	rendered := out.String()
	assert.Contains(t, rendered, "last 30 days")
	assert.Contains(t, rendered, "joao@example.com")
	assert.Contains(t, rendered, "0.20")
	assert.Contains(t, rendered, "0.00")
	assert.Contains(t, rendered, "COMPLETED")
}
