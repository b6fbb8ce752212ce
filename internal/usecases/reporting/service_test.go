package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adstats/campaign-stats-engine/infrastructure/repository/mocks"
	"github.com/adstats/campaign-stats-engine/internal/domain"
)

func TestService_GetRollups_NivelMaterializado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rollupRepo := mocks.NewMockRollupRepository(ctrl)
	reporter := NewService(rollupRepo)

	startDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	metrics := domain.Metrics{
		Impressions:     1000,
		Clicks:          50,
		Cost:            decimal.RequireFromString("25.00"),
		Conversions:     decimal.RequireFromString("5"),
		ConversionValue: decimal.RequireFromString("100.00"),
	}

	rollupRepo.EXPECT().
		GetByEntityAndDateRange(gomock.Any(), domain.RollupLevelAdGroup, "AG1", startDate, endDate).
		Return([]*domain.Rollup{
			{
				Level:    domain.RollupLevelAdGroup,
				EntityID: "AG1",
				Date:     time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
				Metrics:  metrics,
			},
		}, nil)

	summary, err := reporter.GetRollups(context.Background(), domain.RollupLevelAdGroup, "AG1", startDate, endDate)

	assert.NoError(t, err)
	assert.Equal(t, "2025-06-01", summary.StartDate)
	assert.Equal(t, "2025-06-03", summary.EndDate)

	// A série é contínua: dias sem rollup aparecem zerados.
	assert.Len(t, summary.Days, 3)
	assert.True(t, summary.Days[0].Metrics.IsZero())
	assert.True(t, summary.Days[1].Metrics.Equal(metrics))
	assert.True(t, summary.Days[2].Metrics.IsZero())

	assert.True(t, summary.Totals.Equal(metrics))
	assert.NotNil(t, summary.TotalKPIs.CTR)
	assert.Equal(t, 5.0, *summary.TotalKPIs.CTR)
	assert.NotNil(t, summary.Days[1].KPIs.CPC)
	assert.Equal(t, 0.5, *summary.Days[1].KPIs.CPC)
	assert.Nil(t, summary.Days[0].KPIs.CTR)
}

func TestService_GetRollups_NiveisDerivados(t *testing.T) {
	startDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		level domain.RollupLevel
		setup func(rollupRepo *mocks.MockRollupRepository)
	}{
		{
			name:  "Conta soma sobre rollups de campanha",
			level: domain.RollupLevelAccount,
			setup: func(rollupRepo *mocks.MockRollupRepository) {
				rollupRepo.EXPECT().
					SumByAccountAndDateRange(gomock.Any(), "ACC1", startDate, endDate).
					Return([]*domain.Rollup{}, nil)
			},
		},
		{
			name:  "Serviço soma sobre rollups de campanha",
			level: domain.RollupLevelService,
			setup: func(rollupRepo *mocks.MockRollupRepository) {
				rollupRepo.EXPECT().
					SumByServiceAndDateRange(gomock.Any(), "ACC1", startDate, endDate).
					Return([]*domain.Rollup{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rollupRepo := mocks.NewMockRollupRepository(ctrl)
			tt.setup(rollupRepo)

			reporter := NewService(rollupRepo)

			summary, err := reporter.GetRollups(context.Background(), tt.level, "ACC1", startDate, endDate)

			assert.NoError(t, err)
			assert.Len(t, summary.Days, 1)
			assert.True(t, summary.Totals.IsZero())
		})
	}
}

func TestService_GetRollups_NivelInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reporter := NewService(mocks.NewMockRollupRepository(ctrl))

	summary, err := reporter.GetRollups(context.Background(), domain.RollupLevel("KEYWORD"), "KW1", time.Now(), time.Now())

	assert.Nil(t, summary)
	assert.Error(t, err)
}
