package resolving

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adstats/campaign-stats-engine/infrastructure/repository/mocks"
	"github.com/adstats/campaign-stats-engine/internal/domain"
)

func newResolverWithMocks(ctrl *gomock.Controller) (*Service, *mocks.MockKeywordRepository, *mocks.MockAdRepository, *mocks.MockAdGroupRepository, *mocks.MockCampaignRepository, *mocks.MockAccountRepository) {
	keywordRepo := mocks.NewMockKeywordRepository(ctrl)
	adRepo := mocks.NewMockAdRepository(ctrl)
	adGroupRepo := mocks.NewMockAdGroupRepository(ctrl)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	accountRepo := mocks.NewMockAccountRepository(ctrl)

	service := NewService(keywordRepo, adRepo, adGroupRepo, campaignRepo, accountRepo)

	return service, keywordRepo, adRepo, adGroupRepo, campaignRepo, accountRepo
}

func TestService_ResolvePath_Busca(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, keywordRepo, _, adGroupRepo, campaignRepo, accountRepo := newResolverWithMocks(ctrl)

	keywordRepo.EXPECT().
		GetByID(gomock.Any(), "KW1").
		Return(&domain.Keyword{ID: "KW1", AdGroupID: "AG1"}, nil)

	adGroupRepo.EXPECT().
		GetByID(gomock.Any(), "AG1").
		Return(&domain.AdGroup{ID: "AG1", CampaignID: "C1"}, nil)

	campaignRepo.EXPECT().
		GetByID(gomock.Any(), "C1").
		Return(&domain.Campaign{ID: "C1", AccountID: "ACC1", ServiceID: "SVC1"}, nil)

	accountRepo.EXPECT().
		GetByID(gomock.Any(), "ACC1").
		Return(&domain.AdAccount{ID: "ACC1"}, nil)

	key := domain.FactKey{
		Kind:          domain.LeafKindSearch,
		SearchQueryID: "SQ1",
		KeywordID:     "KW1",
		AdID:          "AD1",
		Date:          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	path, err := service.ResolvePath(context.Background(), key)

	assert.NoError(t, err)
	assert.Equal(t, &domain.AncestorPath{
		AdGroupID:  "AG1",
		CampaignID: "C1",
		AccountID:  "ACC1",
		ServiceID:  "SVC1",
	}, path)
}

func TestService_ResolvePath_MemoizacaoPorAdGroup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, adRepo, adGroupRepo, campaignRepo, accountRepo := newResolverWithMocks(ctrl)

	// Fatos display chegam ao ad group pelo anúncio; a folha é resolvida a
	// cada chamada, mas a cadeia acima do ad group só uma vez.
	adRepo.EXPECT().
		GetByID(gomock.Any(), "AD1").
		Return(&domain.Ad{ID: "AD1", AdGroupID: "AG1"}, nil).
		Times(2)

	adGroupRepo.EXPECT().
		GetByID(gomock.Any(), "AG1").
		Return(&domain.AdGroup{ID: "AG1", CampaignID: "C1"}, nil).
		Times(1)

	campaignRepo.EXPECT().
		GetByID(gomock.Any(), "C1").
		Return(&domain.Campaign{ID: "C1", AccountID: "ACC1", ServiceID: "SVC1"}, nil).
		Times(1)

	accountRepo.EXPECT().
		GetByID(gomock.Any(), "ACC1").
		Return(&domain.AdAccount{ID: "ACC1"}, nil).
		Times(1)

	key := domain.FactKey{
		Kind: domain.LeafKindDisplay,
		AdID: "AD1",
		Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	first, err := service.ResolvePath(context.Background(), key)
	assert.NoError(t, err)

	second, err := service.ResolvePath(context.Background(), key)
	assert.NoError(t, err)
	assert.Same(t, first, second)
}

func TestService_ResolvePath_ElosAusentes(t *testing.T) {
	tests := []struct {
		name  string
		setup func(keywordRepo *mocks.MockKeywordRepository, adGroupRepo *mocks.MockAdGroupRepository, campaignRepo *mocks.MockCampaignRepository, accountRepo *mocks.MockAccountRepository)
	}{
		{
			name: "Keyword da folha não existe",
			setup: func(keywordRepo *mocks.MockKeywordRepository, _ *mocks.MockAdGroupRepository, _ *mocks.MockCampaignRepository, _ *mocks.MockAccountRepository) {
				keywordRepo.EXPECT().GetByID(gomock.Any(), "KW1").Return(nil, nil)
			},
		},
		{
			name: "Ad group da keyword não existe",
			setup: func(keywordRepo *mocks.MockKeywordRepository, adGroupRepo *mocks.MockAdGroupRepository, _ *mocks.MockCampaignRepository, _ *mocks.MockAccountRepository) {
				keywordRepo.EXPECT().GetByID(gomock.Any(), "KW1").Return(&domain.Keyword{ID: "KW1", AdGroupID: "AG1"}, nil)
				adGroupRepo.EXPECT().GetByID(gomock.Any(), "AG1").Return(nil, nil)
			},
		},
		{
			name: "Campanha do ad group não existe",
			setup: func(keywordRepo *mocks.MockKeywordRepository, adGroupRepo *mocks.MockAdGroupRepository, campaignRepo *mocks.MockCampaignRepository, _ *mocks.MockAccountRepository) {
				keywordRepo.EXPECT().GetByID(gomock.Any(), "KW1").Return(&domain.Keyword{ID: "KW1", AdGroupID: "AG1"}, nil)
				adGroupRepo.EXPECT().GetByID(gomock.Any(), "AG1").Return(&domain.AdGroup{ID: "AG1", CampaignID: "C1"}, nil)
				campaignRepo.EXPECT().GetByID(gomock.Any(), "C1").Return(nil, nil)
			},
		},
		{
			name: "Conta da campanha não existe",
			setup: func(keywordRepo *mocks.MockKeywordRepository, adGroupRepo *mocks.MockAdGroupRepository, campaignRepo *mocks.MockCampaignRepository, accountRepo *mocks.MockAccountRepository) {
				keywordRepo.EXPECT().GetByID(gomock.Any(), "KW1").Return(&domain.Keyword{ID: "KW1", AdGroupID: "AG1"}, nil)
				adGroupRepo.EXPECT().GetByID(gomock.Any(), "AG1").Return(&domain.AdGroup{ID: "AG1", CampaignID: "C1"}, nil)
				campaignRepo.EXPECT().GetByID(gomock.Any(), "C1").Return(&domain.Campaign{ID: "C1", AccountID: "ACC1"}, nil)
				accountRepo.EXPECT().GetByID(gomock.Any(), "ACC1").Return(nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, keywordRepo, _, adGroupRepo, campaignRepo, accountRepo := newResolverWithMocks(ctrl)
			tt.setup(keywordRepo, adGroupRepo, campaignRepo, accountRepo)

			key := domain.FactKey{
				Kind:      domain.LeafKindSearch,
				KeywordID: "KW1",
				AdID:      "AD1",
				Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			}

			path, err := service.ResolvePath(context.Background(), key)

			assert.Nil(t, path)
			assert.True(t, errors.Is(err, domain.ErrDanglingReference))
		})
	}
}
