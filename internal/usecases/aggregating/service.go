package aggregating

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adstats/campaign-stats-engine/infrastructure/database/postgres"
	"github.com/adstats/campaign-stats-engine/infrastructure/repository"
	"github.com/adstats/campaign-stats-engine/internal/domain"
	"github.com/adstats/campaign-stats-engine/pkg/metrics"
)

// TxRunner abre o escopo transacional de uma chave de fato. Satisfeito por
// *postgres.Connection; os testes injetam um runner em memória.
type TxRunner interface {
	RunInTransaction(context.Context, func(*sql.Tx) error) error
}

// Aggregator mantém os rollups materializados consistentes com os fatos.
type Aggregator interface {
	// ApplyChange aplica o delta de um evento de mudança em toda a cadeia
	// de ancestrais materializada, dentro da transação do chamador.
	ApplyChange(ctx context.Context, q postgres.Queryer, event domain.ChangeEvent, path *domain.AncestorPath) error

	// RebuildAccount recomputa os rollups da conta no período a partir dos
	// fatos folha correntes, substituindo os valores armazenados.
	RebuildAccount(ctx context.Context, accountID string, startDate, endDate time.Time) error

	// RebuildAll recomputa os rollups de todas as contas no período.
	RebuildAll(ctx context.Context, startDate, endDate time.Time) error
}

type Service struct {
	txRunner           TxRunner
	factRepository     repository.FactRepository
	rollupRepository   repository.RollupRepository
	accountRepository  repository.AccountRepository
	campaignRepository repository.CampaignRepository
	adGroupRepository  repository.AdGroupRepository
}

func NewService(
	txRunner TxRunner,
	factRepo repository.FactRepository,
	rollupRepo repository.RollupRepository,
	accountRepo repository.AccountRepository,
	campaignRepo repository.CampaignRepository,
	adGroupRepo repository.AdGroupRepository,
) Aggregator {
	return &Service{
		txRunner:           txRunner,
		factRepository:     factRepo,
		rollupRepository:   rollupRepo,
		accountRepository:  accountRepo,
		campaignRepository: campaignRepo,
		adGroupRepository:  adGroupRepo,
	}
}

// ApplyChange propaga o delta (novo - antigo) para o ad group e a campanha
// do caminho resolvido. Conta e serviço são visões derivadas sobre os
// rollups de campanha e não recebem escrita. Deltas zerados não são
// aplicados: eventos só existem para inserções e atualizações efetivas,
// mas o guarda evita linhas de rollup fantasma caso um evento degenerado
// chegue até aqui.
func (s *Service) ApplyChange(ctx context.Context, q postgres.Queryer, event domain.ChangeEvent, path *domain.AncestorPath) error {
	delta := event.Delta()
	if delta.IsZero() {
		return nil
	}

	date := event.Key.Date

	if err := s.rollupRepository.ApplyDelta(ctx, q, domain.RollupLevelAdGroup, path.AdGroupID, date, delta); err != nil {
		return err
	}
	metrics.Default.RollupDeltas.WithLabelValues(string(domain.RollupLevelAdGroup)).Inc()

	if err := s.rollupRepository.ApplyDelta(ctx, q, domain.RollupLevelCampaign, path.CampaignID, date, delta); err != nil {
		return err
	}
	metrics.Default.RollupDeltas.WithLabelValues(string(domain.RollupLevelCampaign)).Inc()

	return nil
}

func (s *Service) RebuildAccount(ctx context.Context, accountID string, startDate, endDate time.Time) error {
	campaigns, err := s.campaignRepository.ListByAccount(ctx, accountID)
	if err != nil {
		return err
	}

	campaignIDs := make([]string, 0, len(campaigns))
	for _, campaign := range campaigns {
		campaignIDs = append(campaignIDs, campaign.ID)
	}

	adGroupIDs, err := s.adGroupRepository.ListIDsByCampaigns(ctx, campaignIDs)
	if err != nil {
		return err
	}

	adGroupSums, err := s.factRepository.SumByAdGroupAndDate(ctx, adGroupIDs, startDate, endDate)
	if err != nil {
		return err
	}

	campaignSums, err := s.factRepository.SumByCampaignAndDate(ctx, campaignIDs, startDate, endDate)
	if err != nil {
		return err
	}

	// Os dois níveis trocam de valores juntos: leitores nunca observam ad
	// groups reconstruídos com campanhas ainda antigas.
	err = s.txRunner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.rollupRepository.ReplaceRange(ctx, tx, domain.RollupLevelAdGroup, adGroupIDs, startDate, endDate, adGroupSums); err != nil {
			return err
		}
		return s.rollupRepository.ReplaceRange(ctx, tx, domain.RollupLevelCampaign, campaignIDs, startDate, endDate, campaignSums)
	})
	if err != nil {
		return err
	}

	metrics.Default.RollupRebuilds.Inc()

	logrus.Info("Rollups reconstruídos", map[string]any{
		"account_id": accountID,
		"campaigns":  len(campaignIDs),
		"ad_groups":  len(adGroupIDs),
		"start_date": startDate.Format(time.DateOnly),
		"end_date":   endDate.Format(time.DateOnly),
	})

	return nil
}

func (s *Service) RebuildAll(ctx context.Context, startDate, endDate time.Time) error {
	accounts, err := s.accountRepository.List(ctx)
	if err != nil {
		return err
	}

	for _, account := range accounts {
		if err := s.RebuildAccount(ctx, account.ID, startDate, endDate); err != nil {
			return err
		}
	}

	return nil
}
