package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adstats/campaign-stats-engine/infrastructure/database/postgres"
	"github.com/adstats/campaign-stats-engine/infrastructure/repository"
	"github.com/adstats/campaign-stats-engine/internal/api"
	"github.com/adstats/campaign-stats-engine/internal/config"
	"github.com/adstats/campaign-stats-engine/internal/scheduler"
	"github.com/adstats/campaign-stats-engine/internal/usecases/aggregating"
	"github.com/adstats/campaign-stats-engine/internal/usecases/authenticating"
	"github.com/adstats/campaign-stats-engine/internal/usecases/checking"
	"github.com/adstats/campaign-stats-engine/internal/usecases/ingesting"
	"github.com/adstats/campaign-stats-engine/internal/usecases/managing"
	"github.com/adstats/campaign-stats-engine/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	serviceRepo := repository.NewServiceRepository(pgConn)
	accountRepo := repository.NewAccountRepository(pgConn)
	campaignRepo := repository.NewCampaignRepository(pgConn)
	adGroupRepo := repository.NewAdGroupRepository(pgConn)
	keywordRepo := repository.NewKeywordRepository(pgConn)
	adRepo := repository.NewAdRepository(pgConn)
	targetingRepo := repository.NewTargetingSettingRepository(pgConn)
	searchQueryRepo := repository.NewSearchQueryRepository(pgConn)
	factRepo := repository.NewFactRepository(pgConn)
	rollupRepo := repository.NewRollupRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	aggregator := aggregating.NewService(pgConn, factRepo, rollupRepo, accountRepo, campaignRepo, adGroupRepo)

	reconciler := ingesting.NewService(
		cfg,
		pgConn,
		factRepo,
		keywordRepo,
		adRepo,
		adGroupRepo,
		campaignRepo,
		accountRepo,
		searchQueryRepo,
		aggregator,
	)

	checker := checking.NewService(factRepo, rollupRepo, accountRepo, campaignRepo, adGroupRepo)
	reporter := reporting.NewService(rollupRepo)
	manager := managing.NewService(serviceRepo, accountRepo, campaignRepo, adGroupRepo, keywordRepo, adRepo, targetingRepo)

	consistencyCheckService := scheduler.NewConsistencyCheckService(checker, cfg)
	rollupRebuildService := scheduler.NewRollupRebuildService(aggregator, cfg)

	if err := consistencyCheckService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação de consistência")
	} else {
		logrus.Info("Agendador de verificação de consistência iniciado com sucesso")
	}

	if err := rollupRebuildService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reconstrução de rollups")
	} else {
		logrus.Info("Agendador de reconstrução de rollups iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reconciler,
		reporter,
		checker,
		manager,
		authenticator,
		consistencyCheckService,
		rollupRebuildService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
