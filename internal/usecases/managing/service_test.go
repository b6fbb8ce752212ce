package managing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adstats/campaign-stats-engine/infrastructure/repository/mocks"
	"github.com/adstats/campaign-stats-engine/internal/domain"
)

type managerFixture struct {
	serviceRepo   *mocks.MockServiceRepository
	accountRepo   *mocks.MockAccountRepository
	campaignRepo  *mocks.MockCampaignRepository
	adGroupRepo   *mocks.MockAdGroupRepository
	keywordRepo   *mocks.MockKeywordRepository
	adRepo        *mocks.MockAdRepository
	targetingRepo *mocks.MockTargetingSettingRepository
	manager       Manager
}

func newManagerFixture(t *testing.T) *managerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &managerFixture{
		serviceRepo:   mocks.NewMockServiceRepository(ctrl),
		accountRepo:   mocks.NewMockAccountRepository(ctrl),
		campaignRepo:  mocks.NewMockCampaignRepository(ctrl),
		adGroupRepo:   mocks.NewMockAdGroupRepository(ctrl),
		keywordRepo:   mocks.NewMockKeywordRepository(ctrl),
		adRepo:        mocks.NewMockAdRepository(ctrl),
		targetingRepo: mocks.NewMockTargetingSettingRepository(ctrl),
	}
	f.manager = NewService(
		f.serviceRepo,
		f.accountRepo,
		f.campaignRepo,
		f.adGroupRepo,
		f.keywordRepo,
		f.adRepo,
		f.targetingRepo,
	)

	return f
}

func TestService_SaveCampaign(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	campaign := &domain.Campaign{
		GoogleCampaignID: "g-c-1",
		AccountID:        "ACC1",
		ServiceID:        "SVC1",
		Name:             "Campanha de busca",
		CampaignType:     domain.CampaignTypeSearch,
		Status:           domain.StatusEnabled,
	}

	f.accountRepo.EXPECT().GetByID(ctx, "ACC1").Return(&domain.AdAccount{ID: "ACC1"}, nil)
	f.serviceRepo.EXPECT().GetByID(ctx, "SVC1").Return(&domain.Service{ID: "SVC1"}, nil)
	f.campaignRepo.EXPECT().SaveOrUpdate(ctx, campaign).DoAndReturn(func(_ context.Context, c *domain.Campaign) (*domain.Campaign, error) {
		c.ID = "C1"
		return c, nil
	})

	saved, err := f.manager.SaveCampaign(ctx, campaign)
	assert.NoError(t, err)
	assert.Equal(t, "C1", saved.ID)
}

func TestService_SaveCampaign_PaisInexistentes(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		setup  func(f *managerFixture)
		errMsg string
	}{
		{
			name: "conta inexistente",
			setup: func(f *managerFixture) {
				f.accountRepo.EXPECT().GetByID(ctx, "ACC-X").Return(nil, nil)
			},
			errMsg: "conta ACC-X não encontrado",
		},
		{
			name: "serviço inexistente",
			setup: func(f *managerFixture) {
				f.accountRepo.EXPECT().GetByID(ctx, "ACC-X").Return(&domain.AdAccount{ID: "ACC-X"}, nil)
				f.serviceRepo.EXPECT().GetByID(ctx, "SVC-X").Return(nil, nil)
			},
			errMsg: "serviço SVC-X não encontrado",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newManagerFixture(t)
			tt.setup(f)

			saved, err := f.manager.SaveCampaign(ctx, &domain.Campaign{
				GoogleCampaignID: "g-c-1",
				AccountID:        "ACC-X",
				ServiceID:        "SVC-X",
			})
			assert.Nil(t, saved)
			assert.ErrorIs(t, err, domain.ErrConstraintViolation)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestService_SaveKeyword_AdGroupObrigatorio(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	saved, err := f.manager.SaveKeyword(ctx, &domain.Keyword{
		KeywordText: "running shoes",
		MatchType:   domain.MatchTypeExact,
	})
	assert.Nil(t, saved)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
}

func TestService_SaveAd(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	ad := &domain.Ad{
		GoogleAdID: "g-ad-1",
		AdGroupID:  "AG1",
		AdType:     domain.AdTypeResponsiveSearch,
		Status:     domain.StatusEnabled,
	}

	f.adGroupRepo.EXPECT().GetByID(ctx, "AG1").Return(&domain.AdGroup{ID: "AG1"}, nil)
	f.adRepo.EXPECT().SaveOrUpdate(ctx, ad).Return(ad, nil)

	saved, err := f.manager.SaveAd(ctx, ad)
	assert.NoError(t, err)
	assert.Equal(t, ad, saved)
}

func TestService_SaveService_NomeObrigatorio(t *testing.T) {
	f := newManagerFixture(t)

	saved, err := f.manager.SaveService(context.Background(), &domain.Service{})
	assert.Nil(t, saved)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
}
