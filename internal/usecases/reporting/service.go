package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/adstats/campaign-stats-engine/infrastructure/repository"
	"github.com/adstats/campaign-stats-engine/internal/domain"
	"github.com/adstats/campaign-stats-engine/pkg/utils"
)

// RollupReport é a linha diária exposta pela API de leitura: métricas
// brutas do rollup acrescidas dos indicadores derivados.
type RollupReport struct {
	Level    domain.RollupLevel `json:"level"`
	EntityID string             `json:"entity_id"`
	Date     string             `json:"date"`
	Metrics  domain.Metrics     `json:"metrics"`
	KPIs     domain.KPIMetrics  `json:"kpis"`
}

// RollupSummary agrega as linhas diárias de um período.
type RollupSummary struct {
	Level     domain.RollupLevel `json:"level"`
	EntityID  string             `json:"entity_id"`
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
	Days      []*RollupReport    `json:"days"`
	Totals    domain.Metrics     `json:"totals"`
	TotalKPIs domain.KPIMetrics  `json:"total_kpis"`
}

// Reporter lê rollups em qualquer nível da hierarquia. Ad group e campanha
// vêm das tabelas materializadas; conta e serviço são somados on-the-fly
// sobre os rollups de campanha.
type Reporter interface {
	GetRollups(ctx context.Context, level domain.RollupLevel, entityID string, startDate, endDate time.Time) (*RollupSummary, error)
}

type Service struct {
	rollupRepository repository.RollupRepository
}

func NewService(rollupRepo repository.RollupRepository) Reporter {
	return &Service{
		rollupRepository: rollupRepo,
	}
}

func (s *Service) GetRollups(ctx context.Context, level domain.RollupLevel, entityID string, startDate, endDate time.Time) (*RollupSummary, error) {
	if !level.Valid() {
		return nil, fmt.Errorf("nível de rollup inválido: %s", level)
	}

	var rollups []*domain.Rollup
	var err error

	switch level {
	case domain.RollupLevelAccount:
		rollups, err = s.rollupRepository.SumByAccountAndDateRange(ctx, entityID, startDate, endDate)
	case domain.RollupLevelService:
		rollups, err = s.rollupRepository.SumByServiceAndDateRange(ctx, entityID, startDate, endDate)
	default:
		rollups, err = s.rollupRepository.GetByEntityAndDateRange(ctx, level, entityID, startDate, endDate)
	}
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]domain.Metrics, len(rollups))
	for _, rollup := range rollups {
		byDate[rollup.Date.Format(time.DateOnly)] = rollup.Metrics
	}

	days := utils.DaysBetween(startDate, endDate)

	summary := &RollupSummary{
		Level:     level,
		EntityID:  entityID,
		StartDate: startDate.Format(time.DateOnly),
		EndDate:   endDate.Format(time.DateOnly),
		Days:      make([]*RollupReport, 0, len(days)),
		Totals:    domain.ZeroMetrics(),
	}

	// Dias sem fatos aparecem zerados para a série ficar contínua.
	for _, day := range days {
		dateStr := day.Format(time.DateOnly)

		metrics, ok := byDate[dateStr]
		if !ok {
			metrics = domain.ZeroMetrics()
		}

		summary.Days = append(summary.Days, &RollupReport{
			Level:    level,
			EntityID: entityID,
			Date:     dateStr,
			Metrics:  metrics,
			KPIs:     metrics.KPIs(),
		})
		summary.Totals = summary.Totals.Add(metrics)
	}

	summary.TotalKPIs = summary.Totals.KPIs()

	return summary, nil
}
