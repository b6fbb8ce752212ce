package resolving

import (
	"context"
	"fmt"
	"sync"

	"github.com/adstats/campaign-stats-engine/infrastructure/repository"
	"github.com/adstats/campaign-stats-engine/internal/domain"
)

// Resolver materializa o caminho de ancestrais de um fato folha contra o
// estado corrente das dimensões. Sem versionamento: um fato reprocessado
// depois de uma keyword mudar de ad group credita o ad group atual.
type Resolver interface {
	// ResolvePath resolve folha → ad group → campanha → conta → serviço.
	// Qualquer elo ausente retorna erro embrulhando
	// domain.ErrDanglingReference com a entidade faltante.
	ResolvePath(ctx context.Context, key domain.FactKey) (*domain.AncestorPath, error)
}

// Service resolve caminhos com memoização por ad group. A memoização vale
// para a vida do Service: o reconciliador cria um Service novo por lote,
// de modo que mudanças de hierarquia entre lotes sempre são enxergadas.
type Service struct {
	keywordRepository  repository.KeywordRepository
	adRepository       repository.AdRepository
	adGroupRepository  repository.AdGroupRepository
	campaignRepository repository.CampaignRepository
	accountRepository  repository.AccountRepository

	mu        sync.Mutex
	pathCache map[string]*domain.AncestorPath
}

func NewService(
	keywordRepo repository.KeywordRepository,
	adRepo repository.AdRepository,
	adGroupRepo repository.AdGroupRepository,
	campaignRepo repository.CampaignRepository,
	accountRepo repository.AccountRepository,
) *Service {
	return &Service{
		keywordRepository:  keywordRepo,
		adRepository:       adRepo,
		adGroupRepository:  adGroupRepo,
		campaignRepository: campaignRepo,
		accountRepository:  accountRepo,
		pathCache:          make(map[string]*domain.AncestorPath),
	}
}

func (s *Service) ResolvePath(ctx context.Context, key domain.FactKey) (*domain.AncestorPath, error) {
	adGroupID, err := s.resolveAdGroupID(ctx, key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	cached, ok := s.pathCache[adGroupID]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	path, err := s.resolveFromAdGroup(ctx, adGroupID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.pathCache[adGroupID] = path
	s.mu.Unlock()

	return path, nil
}

// resolveAdGroupID encontra o ad group da folha. Fatos de busca chegam ao
// ad group pela keyword; fatos display pelo anúncio.
func (s *Service) resolveAdGroupID(ctx context.Context, key domain.FactKey) (string, error) {
	if key.Kind == domain.LeafKindSearch {
		keyword, err := s.keywordRepository.GetByID(ctx, key.KeywordID)
		if err != nil {
			return "", err
		}
		if keyword == nil {
			return "", fmt.Errorf("%w: keyword %s", domain.ErrDanglingReference, key.KeywordID)
		}
		return keyword.AdGroupID, nil
	}

	ad, err := s.adRepository.GetByID(ctx, key.AdID)
	if err != nil {
		return "", err
	}
	if ad == nil {
		return "", fmt.Errorf("%w: anúncio %s", domain.ErrDanglingReference, key.AdID)
	}
	return ad.AdGroupID, nil
}

func (s *Service) resolveFromAdGroup(ctx context.Context, adGroupID string) (*domain.AncestorPath, error) {
	adGroup, err := s.adGroupRepository.GetByID(ctx, adGroupID)
	if err != nil {
		return nil, err
	}
	if adGroup == nil {
		return nil, fmt.Errorf("%w: ad group %s", domain.ErrDanglingReference, adGroupID)
	}

	campaign, err := s.campaignRepository.GetByID(ctx, adGroup.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, fmt.Errorf("%w: campanha %s", domain.ErrDanglingReference, adGroup.CampaignID)
	}

	account, err := s.accountRepository.GetByID(ctx, campaign.AccountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: conta %s", domain.ErrDanglingReference, campaign.AccountID)
	}

	return &domain.AncestorPath{
		AdGroupID:  adGroup.ID,
		CampaignID: campaign.ID,
		AccountID:  account.ID,
		ServiceID:  campaign.ServiceID,
	}, nil
}
