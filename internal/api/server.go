package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/adstats/campaign-stats-engine/internal/api/handler"
	"github.com/adstats/campaign-stats-engine/internal/api/handler/router"
	"github.com/adstats/campaign-stats-engine/internal/config"
	"github.com/adstats/campaign-stats-engine/internal/scheduler"
	"github.com/adstats/campaign-stats-engine/internal/usecases/authenticating"
	"github.com/adstats/campaign-stats-engine/internal/usecases/checking"
	"github.com/adstats/campaign-stats-engine/internal/usecases/ingesting"
	"github.com/adstats/campaign-stats-engine/internal/usecases/managing"
	"github.com/adstats/campaign-stats-engine/internal/usecases/reporting"
	"github.com/adstats/campaign-stats-engine/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	reconciler ingesting.Reconciler,
	reporter reporting.Reporter,
	checker checking.Checker,
	manager managing.Manager,
	authenticator authenticating.Authenticator,
	consistencyCheckService *scheduler.ConsistencyCheckService,
	rollupRebuildService *scheduler.RollupRebuildService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		ConsistencyCheckService: consistencyCheckService,
		RollupRebuildService:    rollupRebuildService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Ingestion(reconciler)...),
		router.WithRoutes(handler.Rollups(reporter)...),
		router.WithRoutes(handler.Consistency(checker)...),
		router.WithRoutes(handler.Dimensions(manager)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
