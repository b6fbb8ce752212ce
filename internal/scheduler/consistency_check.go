package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/adstats/campaign-stats-engine/internal/config"
	"github.com/adstats/campaign-stats-engine/internal/domain"
	"github.com/adstats/campaign-stats-engine/internal/usecases/checking"
	"github.com/adstats/campaign-stats-engine/pkg/utils"
)

// ConsistencyCheckConfig representa a configuração do agendador de verificação de consistência
type ConsistencyCheckConfig struct {
	CronSchedule string
	LookbackDays int
	CheckEnabled bool
}

// ConsistencyCheckService agenda e executa a verificação periódica entre
// rollups materializados e a soma verdadeira dos fatos folha.
type ConsistencyCheckService struct {
	scheduler            *gocron.Scheduler
	config               ConsistencyCheckConfig
	checker              checking.Checker
	checkRunning         bool
	checkMutex           sync.Mutex
	lastCheckStartedAt   time.Time
	lastCheckCompletedAt time.Time
	lastDriftCount       int
}

// NewConsistencyCheckService cria uma nova instância do serviço de verificação de consistência
func NewConsistencyCheckService(
	checker checking.Checker,
	appConfig *config.Config,
) *ConsistencyCheckService {
	checkConfig := ConsistencyCheckConfig{
		CronSchedule: appConfig.ConsistencyCheck.CronSchedule,
		LookbackDays: appConfig.ConsistencyCheck.LookbackDays,
		CheckEnabled: appConfig.ConsistencyCheck.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": checkConfig.CronSchedule,
		"lookback_days": checkConfig.LookbackDays,
		"check_enabled": checkConfig.CheckEnabled,
	}).Info("Configuração do agendador de verificação de consistência carregada")

	return &ConsistencyCheckService{
		scheduler:    scheduler,
		config:       checkConfig,
		checker:      checker,
		checkRunning: false,
	}
}

// Start inicia o agendador
func (s *ConsistencyCheckService) Start(ctx context.Context) error {
	if !s.config.CheckEnabled {
		logrus.Info("Verificação de consistência desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de verificação de consistência")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runConsistencyCheck(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação de consistência: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de verificação de consistência")
		s.scheduler.Stop()
	}()

	return nil
}

// runConsistencyCheck verifica todas as contas no período de lookback
func (s *ConsistencyCheckService) runConsistencyCheck(ctx context.Context) {
	startTime := time.Now()

	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Verificação de consistência já em andamento, ignorando")
		return
	}
	s.checkRunning = true
	s.lastCheckStartedAt = startTime
	s.checkMutex.Unlock()

	defer func() {
		s.checkMutex.Lock()
		s.checkRunning = false
		s.checkMutex.Unlock()
	}()

	endDate := utils.TruncateToDay(time.Now()).AddDate(0, 0, -1)
	startDate := endDate.AddDate(0, 0, -s.config.LookbackDays+1)

	logrus.WithFields(logrus.Fields{
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
	}).Info("Iniciando verificação de consistência para todas as contas")

	reports, err := s.checker.VerifyAll(ctx, startDate, endDate)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar verificação de consistência")
		return
	}

	s.checkMutex.Lock()
	s.lastDriftCount = len(reports)
	s.lastCheckCompletedAt = time.Now()
	s.checkMutex.Unlock()

	if len(reports) == 0 {
		logrus.WithField("duration", time.Since(startTime).String()).Info("Verificação de consistência concluída sem divergências")
		return
	}

	// Divergências são somente reportadas. A correção passa pela
	// reconstrução manual, disparada por um operador.
	for _, report := range reports {
		logrus.WithFields(logrus.Fields{
			"level":     report.Level,
			"entity_id": report.EntityID,
			"date":      report.Date.Format(time.DateOnly),
		}).Warn(domain.ErrDriftDetected.Error())
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"reports":  len(reports),
	}).Warn("Verificação de consistência concluída com divergências")
}

// TriggerManualCheck inicia manualmente uma verificação de consistência
func (s *ConsistencyCheckService) TriggerManualCheck() {
	s.checkMutex.Lock()
	if s.checkRunning {
		s.checkMutex.Unlock()
		logrus.Info("Verificação de consistência já em andamento, ignorando solicitação manual")
		return
	}
	s.checkMutex.Unlock()

	logrus.Info("Iniciando verificação manual de consistência")
	go s.runConsistencyCheck(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *ConsistencyCheckService) GetStatus() map[string]any {
	s.checkMutex.Lock()
	defer s.checkMutex.Unlock()

	return map[string]any{
		"check_enabled":           s.config.CheckEnabled,
		"check_cron":              s.config.CronSchedule,
		"check_lookback_days":     s.config.LookbackDays,
		"last_check_started_at":   s.lastCheckStartedAt,
		"last_check_completed_at": s.lastCheckCompletedAt,
		"last_drift_count":        s.lastDriftCount,
	}
}
