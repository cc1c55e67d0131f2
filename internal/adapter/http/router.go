package http

import (
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"taskmanager/internal/adapter/http/handlers"
	"taskmanager/internal/adapter/http/middleware"
	"taskmanager/internal/core/ports"
)

type Services struct {
	Project ports.ProjectService
	Task    ports.TaskService
	Report  ports.ReportService
}

type RouterConfig struct {
	AppName        string
	AppVersion     string
	TrustedProxies []string
}

// NewRouter builds the gin engine with the middleware chain and every route.
func NewRouter(cfg RouterConfig, logger *zap.Logger, db *sqlx.DB, services Services) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}
	r.Use(gin.Recovery(), middleware.RequestIDMiddleware(), middleware.GinZapMiddleware(logger))

	RegisterRoutes(r, Handlers{
		Health:  handlers.NewHealthHandler(db, cfg.AppName, cfg.AppVersion),
		Project: handlers.NewProjectHandler(services.Project),
		Task:    handlers.NewTaskHandler(services.Task),
		Report:  handlers.NewReportHandler(services.Report),
	})

	return r, nil
}
