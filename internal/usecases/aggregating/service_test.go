package aggregating

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adstats/campaign-stats-engine/infrastructure/repository"
	"github.com/adstats/campaign-stats-engine/infrastructure/repository/mocks"
	"github.com/adstats/campaign-stats-engine/internal/domain"
)

type passthroughTxRunner struct{}

func (passthroughTxRunner) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return fn(nil)
}

func TestService_ApplyChange_PropagaDeltaDaRevisao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rollupRepo := mocks.NewMockRollupRepository(ctrl)

	service := NewService(passthroughTxRunner{}, nil, rollupRepo, nil, nil, nil)

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	// Revisão de um fato existente: 5 cliques / 12.50 viram 6 / 13.00; os
	// rollups recebem apenas a diferença, nunca o valor cheio de novo.
	old := domain.Metrics{
		Impressions: 100,
		Clicks:      5,
		Cost:        decimal.RequireFromString("12.50"),
	}
	event := domain.ChangeEvent{
		Key: domain.FactKey{Kind: domain.LeafKindSearch, AdID: "AD1", Date: date},
		Old: &old,
		New: domain.Metrics{
			Impressions: 100,
			Clicks:      6,
			Cost:        decimal.RequireFromString("13.00"),
		},
	}

	path := &domain.AncestorPath{
		AdGroupID:  "AG1",
		CampaignID: "C1",
		AccountID:  "ACC1",
		ServiceID:  "SVC1",
	}

	expectedDelta := domain.Metrics{
		Clicks: 1,
		Cost:   decimal.RequireFromString("0.50"),
	}

	matchDelta := func(x any) bool {
		delta, ok := x.(domain.Metrics)
		if !ok {
			return false
		}
		return delta.Equal(expectedDelta)
	}

	rollupRepo.EXPECT().
		ApplyDelta(gomock.Any(), gomock.Any(), domain.RollupLevelAdGroup, "AG1", date, gomock.Cond(matchDelta)).
		Return(nil)

	rollupRepo.EXPECT().
		ApplyDelta(gomock.Any(), gomock.Any(), domain.RollupLevelCampaign, "C1", date, gomock.Cond(matchDelta)).
		Return(nil)

	err := service.ApplyChange(context.Background(), nil, event, path)
	assert.NoError(t, err)
}

func TestService_ApplyChange_DeltaZeradoNaoEscreve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rollupRepo := mocks.NewMockRollupRepository(ctrl)

	service := NewService(passthroughTxRunner{}, nil, rollupRepo, nil, nil, nil)

	same := domain.Metrics{Impressions: 10, Cost: decimal.RequireFromString("1.00")}
	event := domain.ChangeEvent{
		Key: domain.FactKey{Kind: domain.LeafKindDisplay, AdID: "AD1", Date: time.Now()},
		Old: &same,
		New: same,
	}

	// Nenhuma expectativa em rollupRepo: qualquer escrita falha o teste.
	err := service.ApplyChange(context.Background(), nil, event, &domain.AncestorPath{AdGroupID: "AG1", CampaignID: "C1"})
	assert.NoError(t, err)
}

func TestService_RebuildAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	factRepo := mocks.NewMockFactRepository(ctrl)
	rollupRepo := mocks.NewMockRollupRepository(ctrl)
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	adGroupRepo := mocks.NewMockAdGroupRepository(ctrl)

	service := NewService(passthroughTxRunner{}, factRepo, rollupRepo, accountRepo, campaignRepo, adGroupRepo)

	startDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)

	campaignRepo.EXPECT().
		ListByAccount(gomock.Any(), "ACC1").
		Return([]*domain.Campaign{{ID: "C1"}, {ID: "C2"}}, nil)

	adGroupRepo.EXPECT().
		ListIDsByCampaigns(gomock.Any(), []string{"C1", "C2"}).
		Return([]string{"AG1", "AG2"}, nil)

	adGroupSums := map[repository.RollupKey]domain.Metrics{
		{EntityID: "AG1", Date: "2025-06-01"}: {Impressions: 100, Clicks: 5},
	}
	campaignSums := map[repository.RollupKey]domain.Metrics{
		{EntityID: "C1", Date: "2025-06-01"}: {Impressions: 100, Clicks: 5},
	}

	factRepo.EXPECT().
		SumByAdGroupAndDate(gomock.Any(), []string{"AG1", "AG2"}, startDate, endDate).
		Return(adGroupSums, nil)

	factRepo.EXPECT().
		SumByCampaignAndDate(gomock.Any(), []string{"C1", "C2"}, startDate, endDate).
		Return(campaignSums, nil)

	// Os dois níveis são substituídos dentro da mesma transação.
	rollupRepo.EXPECT().
		ReplaceRange(gomock.Any(), gomock.Any(), domain.RollupLevelAdGroup, []string{"AG1", "AG2"}, startDate, endDate, adGroupSums).
		Return(nil)

	rollupRepo.EXPECT().
		ReplaceRange(gomock.Any(), gomock.Any(), domain.RollupLevelCampaign, []string{"C1", "C2"}, startDate, endDate, campaignSums).
		Return(nil)

	err := service.RebuildAccount(context.Background(), "ACC1", startDate, endDate)
	assert.NoError(t, err)
}

func TestService_RebuildAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	factRepo := mocks.NewMockFactRepository(ctrl)
	rollupRepo := mocks.NewMockRollupRepository(ctrl)
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	adGroupRepo := mocks.NewMockAdGroupRepository(ctrl)

	service := NewService(passthroughTxRunner{}, factRepo, rollupRepo, accountRepo, campaignRepo, adGroupRepo)

	startDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)

	accountRepo.EXPECT().
		List(gomock.Any()).
		Return([]*domain.AdAccount{{ID: "ACC1"}, {ID: "ACC2"}}, nil)

	for _, accountID := range []string{"ACC1", "ACC2"} {
		campaignRepo.EXPECT().
			ListByAccount(gomock.Any(), accountID).
			Return([]*domain.Campaign{}, nil)

		adGroupRepo.EXPECT().
			ListIDsByCampaigns(gomock.Any(), []string{}).
			Return([]string{}, nil)

		factRepo.EXPECT().
			SumByAdGroupAndDate(gomock.Any(), []string{}, startDate, endDate).
			Return(map[repository.RollupKey]domain.Metrics{}, nil)

		factRepo.EXPECT().
			SumByCampaignAndDate(gomock.Any(), []string{}, startDate, endDate).
			Return(map[repository.RollupKey]domain.Metrics{}, nil)

		rollupRepo.EXPECT().
			ReplaceRange(gomock.Any(), gomock.Any(), domain.RollupLevelAdGroup, []string{}, startDate, endDate, gomock.Any()).
			Return(nil)

		rollupRepo.EXPECT().
			ReplaceRange(gomock.Any(), gomock.Any(), domain.RollupLevelCampaign, []string{}, startDate, endDate, gomock.Any()).
			Return(nil)
	}

	err := service.RebuildAll(context.Background(), startDate, endDate)
	assert.NoError(t, err)
}
