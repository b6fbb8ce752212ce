package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/adstats/campaign-stats-engine/internal/config"
	"github.com/adstats/campaign-stats-engine/internal/usecases/aggregating"
	"github.com/adstats/campaign-stats-engine/pkg/utils"
)

// RollupRebuildConfig representa a configuração do agendador de reconstrução de rollups
type RollupRebuildConfig struct {
	CronSchedule   string
	LookbackDays   int
	RebuildEnabled bool
}

// RollupRebuildService agenda e executa a reconstrução completa dos rollups
// a partir dos fatos folha. Normalmente desabilitado: a reconstrução existe
// como remédio para drift detectado, não como rotina.
type RollupRebuildService struct {
	scheduler              *gocron.Scheduler
	config                 RollupRebuildConfig
	aggregator             aggregating.Aggregator
	rebuildRunning         bool
	rebuildMutex           sync.Mutex
	lastRebuildStartedAt   time.Time
	lastRebuildCompletedAt time.Time
}

// NewRollupRebuildService cria uma nova instância do serviço de reconstrução de rollups
func NewRollupRebuildService(
	aggregator aggregating.Aggregator,
	appConfig *config.Config,
) *RollupRebuildService {
	rebuildConfig := RollupRebuildConfig{
		CronSchedule:   appConfig.RollupRebuild.CronSchedule,
		LookbackDays:   appConfig.RollupRebuild.LookbackDays,
		RebuildEnabled: appConfig.RollupRebuild.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   rebuildConfig.CronSchedule,
		"lookback_days":   rebuildConfig.LookbackDays,
		"rebuild_enabled": rebuildConfig.RebuildEnabled,
	}).Info("Configuração do agendador de reconstrução de rollups carregada")

	return &RollupRebuildService{
		scheduler:      scheduler,
		config:         rebuildConfig,
		aggregator:     aggregator,
		rebuildRunning: false,
	}
}

// Start inicia o agendador
func (s *RollupRebuildService) Start(ctx context.Context) error {
	if !s.config.RebuildEnabled {
		logrus.Info("Reconstrução periódica de rollups desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reconstrução de rollups")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runRebuild(context.Background(), "")
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconstrução de rollups: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reconstrução de rollups")
		s.scheduler.Stop()
	}()

	return nil
}

// runRebuild reconstrói os rollups no período de lookback. Com accountID
// vazio, reconstrói todas as contas.
func (s *RollupRebuildService) runRebuild(ctx context.Context, accountID string) {
	startTime := time.Now()

	s.rebuildMutex.Lock()
	if s.rebuildRunning {
		s.rebuildMutex.Unlock()
		logrus.Info("Reconstrução de rollups já em andamento, ignorando")
		return
	}
	s.rebuildRunning = true
	s.lastRebuildStartedAt = startTime
	s.rebuildMutex.Unlock()

	defer func() {
		s.rebuildMutex.Lock()
		s.rebuildRunning = false
		s.rebuildMutex.Unlock()
	}()

	endDate := utils.TruncateToDay(time.Now()).AddDate(0, 0, -1)
	startDate := endDate.AddDate(0, 0, -s.config.LookbackDays+1)

	logrus.WithFields(logrus.Fields{
		"account_id": accountID,
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
	}).Info("Iniciando reconstrução de rollups")

	var err error
	if accountID == "" {
		err = s.aggregator.RebuildAll(ctx, startDate, endDate)
	} else {
		err = s.aggregator.RebuildAccount(ctx, accountID, startDate, endDate)
	}
	if err != nil {
		logrus.WithError(err).Error("Erro ao reconstruir rollups")
		return
	}

	s.rebuildMutex.Lock()
	s.lastRebuildCompletedAt = time.Now()
	s.rebuildMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
	}).Info("Reconstrução de rollups concluída")
}

// TriggerManualRebuild inicia manualmente uma reconstrução. Com accountID
// vazio, reconstrói todas as contas.
func (s *RollupRebuildService) TriggerManualRebuild(accountID string) {
	s.rebuildMutex.Lock()
	if s.rebuildRunning {
		s.rebuildMutex.Unlock()
		logrus.Info("Reconstrução de rollups já em andamento, ignorando solicitação manual")
		return
	}
	s.rebuildMutex.Unlock()

	logrus.WithField("account_id", accountID).Info("Iniciando reconstrução manual de rollups")
	go s.runRebuild(context.Background(), accountID)
}

// GetStatus retorna o status atual do agendador
func (s *RollupRebuildService) GetStatus() map[string]any {
	s.rebuildMutex.Lock()
	defer s.rebuildMutex.Unlock()

	return map[string]any{
		"rebuild_enabled":           s.config.RebuildEnabled,
		"rebuild_cron":              s.config.CronSchedule,
		"rebuild_lookback_days":     s.config.LookbackDays,
		"last_rebuild_started_at":   s.lastRebuildStartedAt,
		"last_rebuild_completed_at": s.lastRebuildCompletedAt,
	}
}
