package managing

import (
	"context"
	"fmt"

	"github.com/adstats/campaign-stats-engine/infrastructure/repository"
	"github.com/adstats/campaign-stats-engine/internal/domain"
)

// Manager administra as dimensões da hierarquia: serviços, contas,
// campanhas, ad groups, keywords, anúncios e segmentações. Escritas passam
// por validação de enums fechados e de pais antes de chegar ao banco, para
// que valores fora do conjunto nunca entrem silenciosamente.
type Manager interface {
	SaveService(ctx context.Context, service *domain.Service) (*domain.Service, error)
	ListServices(ctx context.Context) ([]*domain.Service, error)

	SaveAccount(ctx context.Context, account *domain.AdAccount) (*domain.AdAccount, error)
	ListAccounts(ctx context.Context) ([]*domain.AdAccount, error)

	SaveCampaign(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, accountID string) ([]*domain.Campaign, error)

	SaveAdGroup(ctx context.Context, adGroup *domain.AdGroup) (*domain.AdGroup, error)
	ListAdGroups(ctx context.Context, campaignID string) ([]*domain.AdGroup, error)

	SaveKeyword(ctx context.Context, keyword *domain.Keyword) (*domain.Keyword, error)
	ListKeywords(ctx context.Context, adGroupID string) ([]*domain.Keyword, error)

	SaveAd(ctx context.Context, ad *domain.Ad) (*domain.Ad, error)
	ListAds(ctx context.Context, adGroupID string) ([]*domain.Ad, error)

	SaveTargetingSetting(ctx context.Context, setting *domain.TargetingSetting) (*domain.TargetingSetting, error)
	ListTargetingSettings(ctx context.Context, adGroupID string) ([]*domain.TargetingSetting, error)
}

type Service struct {
	serviceRepository   repository.ServiceRepository
	accountRepository   repository.AccountRepository
	campaignRepository  repository.CampaignRepository
	adGroupRepository   repository.AdGroupRepository
	keywordRepository   repository.KeywordRepository
	adRepository        repository.AdRepository
	targetingRepository repository.TargetingSettingRepository
}

func NewService(
	serviceRepo repository.ServiceRepository,
	accountRepo repository.AccountRepository,
	campaignRepo repository.CampaignRepository,
	adGroupRepo repository.AdGroupRepository,
	keywordRepo repository.KeywordRepository,
	adRepo repository.AdRepository,
	targetingRepo repository.TargetingSettingRepository,
) Manager {
	return &Service{
		serviceRepository:   serviceRepo,
		accountRepository:   accountRepo,
		campaignRepository:  campaignRepo,
		adGroupRepository:   adGroupRepo,
		keywordRepository:   keywordRepo,
		adRepository:        adRepo,
		targetingRepository: targetingRepo,
	}
}

func (s *Service) SaveService(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	if service.Name == "" {
		return nil, fmt.Errorf("%w: nome do serviço ausente", domain.ErrConstraintViolation)
	}
	return s.serviceRepository.SaveOrUpdate(ctx, service)
}

func (s *Service) ListServices(ctx context.Context) ([]*domain.Service, error) {
	return s.serviceRepository.List(ctx)
}

func (s *Service) SaveAccount(ctx context.Context, account *domain.AdAccount) (*domain.AdAccount, error) {
	if account.GoogleAccountID == "" {
		return nil, fmt.Errorf("%w: google_account_id ausente", domain.ErrConstraintViolation)
	}
	return s.accountRepository.SaveOrUpdate(ctx, account)
}

func (s *Service) ListAccounts(ctx context.Context) ([]*domain.AdAccount, error) {
	return s.accountRepository.List(ctx)
}

func (s *Service) SaveCampaign(ctx context.Context, campaign *domain.Campaign) (*domain.Campaign, error) {
	if err := s.requireParent(ctx, "conta", campaign.AccountID, func(ctx context.Context, id string) (bool, error) {
		account, err := s.accountRepository.GetByID(ctx, id)
		return account != nil, err
	}); err != nil {
		return nil, err
	}

	if err := s.requireParent(ctx, "serviço", campaign.ServiceID, func(ctx context.Context, id string) (bool, error) {
		service, err := s.serviceRepository.GetByID(ctx, id)
		return service != nil, err
	}); err != nil {
		return nil, err
	}

	return s.campaignRepository.SaveOrUpdate(ctx, campaign)
}

func (s *Service) ListCampaigns(ctx context.Context, accountID string) ([]*domain.Campaign, error) {
	return s.campaignRepository.ListByAccount(ctx, accountID)
}

func (s *Service) SaveAdGroup(ctx context.Context, adGroup *domain.AdGroup) (*domain.AdGroup, error) {
	if err := s.requireParent(ctx, "campanha", adGroup.CampaignID, func(ctx context.Context, id string) (bool, error) {
		campaign, err := s.campaignRepository.GetByID(ctx, id)
		return campaign != nil, err
	}); err != nil {
		return nil, err
	}

	return s.adGroupRepository.SaveOrUpdate(ctx, adGroup)
}

func (s *Service) ListAdGroups(ctx context.Context, campaignID string) ([]*domain.AdGroup, error) {
	return s.adGroupRepository.ListByCampaign(ctx, campaignID)
}

func (s *Service) SaveKeyword(ctx context.Context, keyword *domain.Keyword) (*domain.Keyword, error) {
	if err := s.requireAdGroup(ctx, keyword.AdGroupID); err != nil {
		return nil, err
	}

	return s.keywordRepository.SaveOrUpdate(ctx, keyword)
}

func (s *Service) ListKeywords(ctx context.Context, adGroupID string) ([]*domain.Keyword, error) {
	return s.keywordRepository.ListByAdGroup(ctx, adGroupID)
}

func (s *Service) SaveAd(ctx context.Context, ad *domain.Ad) (*domain.Ad, error) {
	if err := s.requireAdGroup(ctx, ad.AdGroupID); err != nil {
		return nil, err
	}

	return s.adRepository.SaveOrUpdate(ctx, ad)
}

func (s *Service) ListAds(ctx context.Context, adGroupID string) ([]*domain.Ad, error) {
	return s.adRepository.ListByAdGroup(ctx, adGroupID)
}

func (s *Service) SaveTargetingSetting(ctx context.Context, setting *domain.TargetingSetting) (*domain.TargetingSetting, error) {
	if err := s.requireAdGroup(ctx, setting.AdGroupID); err != nil {
		return nil, err
	}

	return s.targetingRepository.SaveOrUpdate(ctx, setting)
}

func (s *Service) ListTargetingSettings(ctx context.Context, adGroupID string) ([]*domain.TargetingSetting, error) {
	return s.targetingRepository.ListByAdGroup(ctx, adGroupID)
}

func (s *Service) requireAdGroup(ctx context.Context, adGroupID string) error {
	return s.requireParent(ctx, "ad group", adGroupID, func(ctx context.Context, id string) (bool, error) {
		adGroup, err := s.adGroupRepository.GetByID(ctx, id)
		return adGroup != nil, err
	})
}

func (s *Service) requireParent(ctx context.Context, name, id string, exists func(context.Context, string) (bool, error)) error {
	if id == "" {
		return fmt.Errorf("%w: %s ausente", domain.ErrConstraintViolation, name)
	}

	found, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("%w: %s %s não encontrado", domain.ErrConstraintViolation, name, id)
	}

	return nil
}
