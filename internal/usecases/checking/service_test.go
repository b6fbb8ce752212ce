package checking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adstats/campaign-stats-engine/infrastructure/repository"
	"github.com/adstats/campaign-stats-engine/infrastructure/repository/mocks"
	"github.com/adstats/campaign-stats-engine/internal/domain"
)

type checkFixture struct {
	checker     Checker
	factRepo    *mocks.MockFactRepository
	rollupRepo  *mocks.MockRollupRepository
	accountRepo *mocks.MockAccountRepository
	campaigns   *mocks.MockCampaignRepository
	adGroups    *mocks.MockAdGroupRepository
}

func newCheckFixture(ctrl *gomock.Controller) *checkFixture {
	f := &checkFixture{
		factRepo:    mocks.NewMockFactRepository(ctrl),
		rollupRepo:  mocks.NewMockRollupRepository(ctrl),
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		campaigns:   mocks.NewMockCampaignRepository(ctrl),
		adGroups:    mocks.NewMockAdGroupRepository(ctrl),
	}
	f.checker = NewService(f.factRepo, f.rollupRepo, f.accountRepo, f.campaigns, f.adGroups)
	return f
}

func (f *checkFixture) expectScope() {
	f.campaigns.EXPECT().
		ListByAccount(gomock.Any(), "ACC1").
		Return([]*domain.Campaign{{ID: "C1"}}, nil)

	f.adGroups.EXPECT().
		ListIDsByCampaigns(gomock.Any(), []string{"C1"}).
		Return([]string{"AG1"}, nil)
}

func TestService_VerifyAccount_SemDrift(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCheckFixture(ctrl)
	f.expectScope()

	startDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)

	metrics := domain.Metrics{Impressions: 100, Clicks: 5, Cost: decimal.RequireFromString("12.50")}
	key := repository.RollupKey{EntityID: "AG1", Date: "2025-06-01"}

	f.factRepo.EXPECT().
		SumByAdGroupAndDate(gomock.Any(), []string{"AG1"}, startDate, endDate).
		Return(map[repository.RollupKey]domain.Metrics{key: metrics}, nil)

	// Mesmo valor com escala decimal diferente não é drift.
	stored := domain.Metrics{Impressions: 100, Clicks: 5, Cost: decimal.RequireFromString("12.5000")}
	f.rollupRepo.EXPECT().
		MapByEntitiesAndDateRange(gomock.Any(), domain.RollupLevelAdGroup, []string{"AG1"}, startDate, endDate).
		Return(map[repository.RollupKey]domain.Metrics{key: stored}, nil)

	f.factRepo.EXPECT().
		SumByCampaignAndDate(gomock.Any(), []string{"C1"}, startDate, endDate).
		Return(map[repository.RollupKey]domain.Metrics{}, nil)
	f.rollupRepo.EXPECT().
		MapByEntitiesAndDateRange(gomock.Any(), domain.RollupLevelCampaign, []string{"C1"}, startDate, endDate).
		Return(map[repository.RollupKey]domain.Metrics{}, nil)

	reports, err := f.checker.VerifyAccount(context.Background(), "ACC1", startDate, endDate)

	assert.NoError(t, err)
	assert.Empty(t, reports)
}

func TestService_VerifyAccount_RollupDivergente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCheckFixture(ctrl)
	f.expectScope()

	startDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)

	key := repository.RollupKey{EntityID: "AG1", Date: "2025-06-03"}
	computed := domain.Metrics{Impressions: 100, Clicks: 6}
	stored := domain.Metrics{Impressions: 100, Clicks: 5}

	f.factRepo.EXPECT().
		SumByAdGroupAndDate(gomock.Any(), []string{"AG1"}, startDate, endDate).
		Return(map[repository.RollupKey]domain.Metrics{key: computed}, nil)
	f.rollupRepo.EXPECT().
		MapByEntitiesAndDateRange(gomock.Any(), domain.RollupLevelAdGroup, []string{"AG1"}, startDate, endDate).
		Return(map[repository.RollupKey]domain.Metrics{key: stored}, nil)

	f.factRepo.EXPECT().
		SumByCampaignAndDate(gomock.Any(), []string{"C1"}, startDate, endDate).
		Return(map[repository.RollupKey]domain.Metrics{}, nil)
	f.rollupRepo.EXPECT().
		MapByEntitiesAndDateRange(gomock.Any(), domain.RollupLevelCampaign, []string{"C1"}, startDate, endDate).
		Return(map[repository.RollupKey]domain.Metrics{}, nil)

	reports, err := f.checker.VerifyAccount(context.Background(), "ACC1", startDate, endDate)

	assert.NoError(t, err)
	assert.Len(t, reports, 1)

	report := reports[0]
	assert.Equal(t, domain.RollupLevelAdGroup, report.Level)
	assert.Equal(t, "AG1", report.EntityID)
	assert.Equal(t, "2025-06-03", report.Date.Format(time.DateOnly))
	assert.True(t, report.Stored.Equal(stored))
	assert.True(t, report.Computed.Equal(computed))
}

func TestService_VerifyAccount_RollupFantasmaEAusente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCheckFixture(ctrl)
	f.expectScope()

	startDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)

	missingKey := repository.RollupKey{EntityID: "AG1", Date: "2025-06-01"}
	phantomKey := repository.RollupKey{EntityID: "AG1", Date: "2025-06-02"}
	computed := domain.Metrics{Impressions: 50}
	phantom := domain.Metrics{Impressions: 10}

	// Soma existe sem rollup, e rollup existe sem nenhum fato por trás:
	// as duas direções geram relatório.
	f.factRepo.EXPECT().
		SumByAdGroupAndDate(gomock.Any(), []string{"AG1"}, startDate, endDate).
		Return(map[repository.RollupKey]domain.Metrics{missingKey: computed}, nil)
	f.rollupRepo.EXPECT().
		MapByEntitiesAndDateRange(gomock.Any(), domain.RollupLevelAdGroup, []string{"AG1"}, startDate, endDate).
		Return(map[repository.RollupKey]domain.Metrics{phantomKey: phantom}, nil)

	f.factRepo.EXPECT().
		SumByCampaignAndDate(gomock.Any(), []string{"C1"}, startDate, endDate).
		Return(map[repository.RollupKey]domain.Metrics{}, nil)
	f.rollupRepo.EXPECT().
		MapByEntitiesAndDateRange(gomock.Any(), domain.RollupLevelCampaign, []string{"C1"}, startDate, endDate).
		Return(map[repository.RollupKey]domain.Metrics{}, nil)

	reports, err := f.checker.VerifyAccount(context.Background(), "ACC1", startDate, endDate)

	assert.NoError(t, err)
	assert.Len(t, reports, 2)

	byDate := map[string]*domain.DriftReport{}
	for _, report := range reports {
		byDate[report.Date.Format(time.DateOnly)] = report
	}

	missing := byDate["2025-06-01"]
	assert.NotNil(t, missing)
	assert.True(t, missing.Stored.IsZero())
	assert.True(t, missing.Computed.Equal(computed))

	ghost := byDate["2025-06-02"]
	assert.NotNil(t, ghost)
	assert.True(t, ghost.Stored.Equal(phantom))
	assert.True(t, ghost.Computed.IsZero())
}

func TestService_VerifyCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCheckFixture(ctrl)

	startDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)

	// Escopo de campanha única: não passa pela listagem da conta.
	f.adGroups.EXPECT().
		ListIDsByCampaigns(gomock.Any(), []string{"C1"}).
		Return([]string{"AG1"}, nil)

	f.factRepo.EXPECT().
		SumByAdGroupAndDate(gomock.Any(), []string{"AG1"}, startDate, endDate).
		Return(map[repository.RollupKey]domain.Metrics{}, nil)
	f.rollupRepo.EXPECT().
		MapByEntitiesAndDateRange(gomock.Any(), domain.RollupLevelAdGroup, []string{"AG1"}, startDate, endDate).
		Return(map[repository.RollupKey]domain.Metrics{}, nil)

	key := repository.RollupKey{EntityID: "C1", Date: "2025-06-04"}
	computed := domain.Metrics{Impressions: 200, Clicks: 9}
	stored := domain.Metrics{Impressions: 200, Clicks: 8}

	f.factRepo.EXPECT().
		SumByCampaignAndDate(gomock.Any(), []string{"C1"}, startDate, endDate).
		Return(map[repository.RollupKey]domain.Metrics{key: computed}, nil)
	f.rollupRepo.EXPECT().
		MapByEntitiesAndDateRange(gomock.Any(), domain.RollupLevelCampaign, []string{"C1"}, startDate, endDate).
		Return(map[repository.RollupKey]domain.Metrics{key: stored}, nil)

	reports, err := f.checker.VerifyCampaign(context.Background(), "C1", startDate, endDate)

	assert.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, domain.RollupLevelCampaign, reports[0].Level)
	assert.Equal(t, "C1", reports[0].EntityID)
	assert.True(t, reports[0].Stored.Equal(stored))
	assert.True(t, reports[0].Computed.Equal(computed))
}

func TestService_VerifyAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCheckFixture(ctrl)

	startDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)

	f.accountRepo.EXPECT().
		List(gomock.Any()).
		Return([]*domain.AdAccount{{ID: "ACC1"}, {ID: "ACC2"}}, nil)

	for _, accountID := range []string{"ACC1", "ACC2"} {
		f.campaigns.EXPECT().
			ListByAccount(gomock.Any(), accountID).
			Return([]*domain.Campaign{}, nil)
		f.adGroups.EXPECT().
			ListIDsByCampaigns(gomock.Any(), []string{}).
			Return([]string{}, nil)

		f.factRepo.EXPECT().
			SumByAdGroupAndDate(gomock.Any(), []string{}, startDate, endDate).
			Return(map[repository.RollupKey]domain.Metrics{}, nil)
		f.rollupRepo.EXPECT().
			MapByEntitiesAndDateRange(gomock.Any(), domain.RollupLevelAdGroup, []string{}, startDate, endDate).
			Return(map[repository.RollupKey]domain.Metrics{}, nil)

		f.factRepo.EXPECT().
			SumByCampaignAndDate(gomock.Any(), []string{}, startDate, endDate).
			Return(map[repository.RollupKey]domain.Metrics{}, nil)
		f.rollupRepo.EXPECT().
			MapByEntitiesAndDateRange(gomock.Any(), domain.RollupLevelCampaign, []string{}, startDate, endDate).
			Return(map[repository.RollupKey]domain.Metrics{}, nil)
	}

	reports, err := f.checker.VerifyAll(context.Background(), startDate, endDate)

	assert.NoError(t, err)
	assert.Empty(t, reports)
}
