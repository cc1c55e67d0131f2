package cli

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	dbadapter "taskmanager/internal/adapter/db"
	"taskmanager/internal/adapter/http/validation"
	appservice "taskmanager/internal/app/service"
	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/ports"
)

//go:embed seed.yaml
var defaultFixture []byte

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load users, projects and tasks from a YAML fixture",
	Long: `Load users, projects and tasks from a YAML fixture.

The API has no user endpoints, so this is how users reach the database.
Users whose email already exists and projects their owner already has
are skipped. Without --file the built-in fixture is used.

Examples:
  taskmanager seed
  taskmanager seed --file fixtures/team.yaml`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "fixture file (defaults to the built-in fixture)")
}

type Fixture struct {
	Users    []FixtureUser    `yaml:"users"`
	Projects []FixtureProject `yaml:"projects"`
}

type FixtureUser struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type FixtureProject struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Owner       string        `yaml:"owner"`
	Tasks       []FixtureTask `yaml:"tasks"`
}

type FixtureTask struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Priority    string `yaml:"priority"`
	DueDate     string `yaml:"dueDate"`
}

type SeedResult struct {
	UsersCreated    int
	UsersSkipped    int
	ProjectsCreated int
	ProjectsSkipped int
	TasksCreated    int
}

// ParseFixture decodes a fixture and checks roles, owners and priorities.
func ParseFixture(data []byte) (Fixture, error) {
	var fixture Fixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		return Fixture{}, fmt.Errorf("decode fixture: %w", err)
	}

	emails := make(map[string]bool, len(fixture.Users))
	for _, user := range fixture.Users {
		if user.Name == "" || user.Email == "" {
			return Fixture{}, fmt.Errorf("user %q: name and email are required", user.Email)
		}
		if _, err := domain.ParseUserRole(user.Role); err != nil {
			return Fixture{}, fmt.Errorf("user %s: %w", user.Email, err)
		}
		emails[user.Email] = true
	}

	for _, project := range fixture.Projects {
		if !emails[project.Owner] {
			return Fixture{}, fmt.Errorf("project %q: owner %q is not a fixture user", project.Name, project.Owner)
		}
		if len(project.Tasks) > domain.MaxTasksPerProject {
			return Fixture{}, fmt.Errorf("project %q: more than %d tasks", project.Name, domain.MaxTasksPerProject)
		}
		for _, task := range project.Tasks {
			if !domain.TaskPriority(task.Priority).Valid() {
				return Fixture{}, fmt.Errorf("task %q: unknown priority %q", task.Title, task.Priority)
			}
		}
	}

	return fixture, nil
}

// Seeder writes a fixture through the repositories and services the API uses.
type Seeder struct {
	Users    ports.UserRepository
	Projects ports.ProjectService
	Tasks    ports.TaskService
	Now      func() time.Time
	Logger   *zap.Logger
}

func (s *Seeder) Seed(ctx context.Context, fixture Fixture) (SeedResult, error) {
	var result SeedResult
	ids := make(map[string]uint64, len(fixture.Users))

	for _, fu := range fixture.Users {
		existing, err := s.Users.GetUserByEmail(ctx, fu.Email)
		if err == nil {
			ids[fu.Email] = existing.ID
			result.UsersSkipped++
			continue
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return result, err
		}

		role, _ := domain.ParseUserRole(fu.Role)
		user, err := s.Users.CreateUser(ctx, domain.User{
			Name:      fu.Name,
			Email:     fu.Email,
			Role:      role,
			CreatedAt: s.Now().UTC().Truncate(time.Microsecond),
		})
		if err != nil {
			return result, err
		}
		ids[fu.Email] = user.ID
		result.UsersCreated++
		s.Logger.Info("user created", zap.Uint64("user_id", user.ID), zap.String("email", user.Email))
	}

	for _, fp := range fixture.Projects {
		ownerID := ids[fp.Owner]
		exists, err := s.ownerHasProject(ctx, ownerID, fp.Name)
		if err != nil {
			return result, err
		}
		if exists {
			result.ProjectsSkipped++
			continue
		}

		project, err := s.Projects.CreateProject(ctx, domain.CreateProjectInput{
			Name:        fp.Name,
			Description: optional(fp.Description),
			OwnerID:     ownerID,
		})
		if err != nil {
			return result, fmt.Errorf("project %q: %w", fp.Name, err)
		}
		result.ProjectsCreated++

		for _, ft := range fp.Tasks {
			dueDate, err := validation.ParseDueDate(optional(ft.DueDate))
			if err != nil {
				return result, fmt.Errorf("task %q: due date %q: %w", ft.Title, ft.DueDate, err)
			}
			_, err = s.Tasks.CreateTask(ctx, domain.CreateTaskInput{
				Title:       ft.Title,
				Description: optional(ft.Description),
				Priority:    domain.TaskPriority(ft.Priority),
				DueDate:     dueDate,
				ProjectID:   project.ID,
				AssigneeID:  ownerID,
			})
			if err != nil {
				return result, fmt.Errorf("task %q: %w", ft.Title, err)
			}
			result.TasksCreated++
		}
		s.Logger.Info("project created", zap.Uint64("project_id", project.ID), zap.Int("tasks", len(fp.Tasks)))
	}

	return result, nil
}

func (s *Seeder) ownerHasProject(ctx context.Context, ownerID uint64, name string) (bool, error) {
	projects, err := s.Projects.ListProjects(ctx, ownerID)
	if err != nil {
		return false, err
	}
	for _, project := range projects {
		if project.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func runSeed(cmd *cobra.Command, _ []string) error {
	data := defaultFixture
	if seedFile != "" {
		var err error
		if data, err = os.ReadFile(seedFile); err != nil {
			return err
		}
	}

	fixture, err := ParseFixture(data)
	if err != nil {
		return err
	}

	rt, err := setup(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer rt.close()

	seeder := &Seeder{
		Users:    dbadapter.NewUserRepository(rt.db),
		Projects: appservice.NewProjectService(dbadapter.NewProjectRepository(rt.db)),
		Tasks:    appservice.NewTaskService(dbadapter.NewTaskRepository(rt.db)),
		Now:      time.Now,
		Logger:   rt.logger,
	}

	result, err := seeder.Seed(cmd.Context(), fixture)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"users: %d created, %d skipped\nprojects: %d created, %d skipped\ntasks: %d created\n",
		result.UsersCreated, result.UsersSkipped,
		result.ProjectsCreated, result.ProjectsSkipped,
		result.TasksCreated,
	)
	return nil
}
