package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dbadapter "taskmanager/internal/adapter/db"
	httpadapter "taskmanager/internal/adapter/http"
	appservice "taskmanager/internal/app/service"
	"taskmanager/internal/config"
	"taskmanager/pkg/translator"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the web frontend",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, err := setup(ctx, false)
	if err != nil {
		return err
	}
	defer rt.close()

	if rt.cfg.DB.MigrateOnStart {
		if err := rt.migrate(ctx); err != nil {
			return err
		}
	}

	translator.InitTranslator(translator.Config{
		TranslationFolder:  rt.cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguagePt},
	})

	if rt.cfg.Env == config.EnvProd {
		gin.SetMode(gin.ReleaseMode)
	}

	users := dbadapter.NewUserRepository(rt.db)
	router, err := httpadapter.NewRouter(
		httpadapter.RouterConfig{
			AppName:        rt.cfg.AppName,
			AppVersion:     rt.cfg.AppVersion,
			TrustedProxies: rt.cfg.TrustedProxies,
		},
		rt.logger,
		rt.db,
		httpadapter.Services{
			Project: appservice.NewProjectService(dbadapter.NewProjectRepository(rt.db)),
			Task:    appservice.NewTaskService(dbadapter.NewTaskRepository(rt.db)),
			Report:  appservice.NewReportService(users, dbadapter.NewReportRepository(rt.db)),
		},
	)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + rt.cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		rt.logger.Info("starting server", zap.String("addr", srv.Addr), zap.String("driver", rt.cfg.DB.Driver))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	rt.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
