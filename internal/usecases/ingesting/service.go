package ingesting

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adstats/campaign-stats-engine/infrastructure/repository"
	"github.com/adstats/campaign-stats-engine/internal/config"
	"github.com/adstats/campaign-stats-engine/internal/domain"
	"github.com/adstats/campaign-stats-engine/internal/usecases/aggregating"
	"github.com/adstats/campaign-stats-engine/internal/usecases/resolving"
	"github.com/adstats/campaign-stats-engine/pkg/metrics"
)

// Motivos de recusa registrados no relatório do lote e no label "reason"
// do contador de recusas.
const (
	reasonInvalidRecord  = "registro inválido"
	reasonUnknownAd      = "anúncio desconhecido"
	reasonUnknownKeyword = "keyword desconhecida"
	reasonConstraint     = "violação de integridade referencial"
)

// Reconciler processa lotes de registros de fatos vindos da plataforma de
// anúncios: traduz identificadores externos, resolve a hierarquia, grava o
// fato e propaga deltas de rollup, tudo por registro, em transação
// própria. Registros inválidos são recusados individualmente; falha
// sistêmica de armazenamento aborta o restante do lote.
type Reconciler interface {
	IngestBatch(ctx context.Context, records []domain.FactRecord) (*domain.BatchReport, error)
}

type Service struct {
	cfg              *config.Config
	txRunner         aggregating.TxRunner
	factRepository   repository.FactRepository
	keywordRepo      repository.KeywordRepository
	adRepo           repository.AdRepository
	adGroupRepo      repository.AdGroupRepository
	campaignRepo     repository.CampaignRepository
	accountRepo      repository.AccountRepository
	searchQueryRepo  repository.SearchQueryRepository
	aggregator       aggregating.Aggregator
	now              func() time.Time
}

func NewService(
	cfg *config.Config,
	txRunner aggregating.TxRunner,
	factRepo repository.FactRepository,
	keywordRepo repository.KeywordRepository,
	adRepo repository.AdRepository,
	adGroupRepo repository.AdGroupRepository,
	campaignRepo repository.CampaignRepository,
	accountRepo repository.AccountRepository,
	searchQueryRepo repository.SearchQueryRepository,
	aggregator aggregating.Aggregator,
) *Service {
	return &Service{
		cfg:             cfg,
		txRunner:        txRunner,
		factRepository:  factRepo,
		keywordRepo:     keywordRepo,
		adRepo:          adRepo,
		adGroupRepo:     adGroupRepo,
		campaignRepo:    campaignRepo,
		accountRepo:     accountRepo,
		searchQueryRepo: searchQueryRepo,
		aggregator:      aggregator,
		now:             time.Now,
	}
}

// IngestBatch processa os registros com workers limitados por semáforo. A
// ordem dos registros no lote é irrelevante: upserts da mesma chave são
// serializados pelo lock de linha do fato, e deltas concorrentes no mesmo
// ancestral são serializados pelo lock da linha de rollup.
func (s *Service) IngestBatch(ctx context.Context, records []domain.FactRecord) (*domain.BatchReport, error) {
	report := &domain.BatchReport{Rejected: make([]domain.RejectedRecord, 0)}

	// A resolução usa um resolver novo por lote: a memoização de caminhos
	// nunca sobrevive a mudanças de hierarquia entre lotes.
	resolver := resolving.NewService(s.keywordRepo, s.adRepo, s.adGroupRepo, s.campaignRepo, s.accountRepo)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		abortErr error
	)

	maxConcurrent := s.cfg.Ingestion.MaxConcurrentJobs
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	semaphore := make(chan struct{}, maxConcurrent)

	finalizationHorizon := s.now().AddDate(0, 0, -s.cfg.Ingestion.FinalizationDays)

	for _, record := range records {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(record domain.FactRecord) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if ctx.Err() != nil {
				return
			}

			outcome, err := s.processRecord(ctx, resolver, record, finalizationHorizon)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				if abortErr == nil {
					abortErr = err
					cancel()
				}
				return
			}

			if outcome.rejection != nil {
				report.Rejected = append(report.Rejected, domain.RejectedRecord{Record: record, Reason: outcome.rejection.detail})
				metrics.Default.RecordsRejected.WithLabelValues(outcome.rejection.reason).Inc()
				return
			}

			report.Accepted++
			switch outcome.result {
			case domain.UpsertInserted:
				report.Inserted++
				metrics.Default.FactsInserted.Inc()
			case domain.UpsertUpdated:
				report.Updated++
				metrics.Default.FactsUpdated.Inc()
			case domain.UpsertUnchanged:
				report.Unchanged++
				metrics.Default.FactsUnchanged.Inc()
			}

			if outcome.revised {
				report.Revised++
				metrics.Default.RecordsRevised.Inc()
			}
		}(record)
	}

	wg.Wait()

	if abortErr != nil {
		metrics.Default.BatchesAborted.Inc()
		logrus.Error("Lote de ingestão abortado por erro sistêmico", map[string]any{
			"error":     abortErr,
			"processed": report.Accepted + len(report.Rejected),
			"total":     len(records),
		})
		return report, fmt.Errorf("%w: %w", domain.ErrBatchAborted, abortErr)
	}

	logrus.Info("Lote de ingestão concluído", map[string]any{
		"accepted":  report.Accepted,
		"revised":   report.Revised,
		"rejected":  len(report.Rejected),
		"inserted":  report.Inserted,
		"updated":   report.Updated,
		"unchanged": report.Unchanged,
	})

	return report, nil
}

type recordOutcome struct {
	result    domain.UpsertResult
	revised   bool
	rejection *rejection
}

// rejection separa o motivo constante, que vira label do contador de
// recusas, do detalhe por registro que vai ao relatório do lote. O label
// nunca carrega identificadores: um valor de label por ID explodiria a
// cardinalidade das séries.
type rejection struct {
	reason string
	detail string
}

func newRejection(reason, detail string) *rejection {
	if detail == "" {
		return &rejection{reason: reason, detail: reason}
	}
	return &rejection{reason: reason, detail: fmt.Sprintf("%s: %s", reason, detail)}
}

// processRecord trata um registro isoladamente. Retorna um motivo de
// recusa para problemas locais ao registro; retorna erro apenas para
// falhas sistêmicas, que abortam o lote.
func (s *Service) processRecord(ctx context.Context, resolver resolving.Resolver, record domain.FactRecord, finalizationHorizon time.Time) (recordOutcome, error) {
	if rejected := validateRecord(record); rejected != nil {
		return recordOutcome{rejection: rejected}, nil
	}

	key, rejected, err := s.translateRecord(ctx, record)
	if err != nil {
		return recordOutcome{}, err
	}
	if rejected != nil {
		return recordOutcome{rejection: rejected}, nil
	}

	path, err := resolver.ResolvePath(ctx, key)
	if err != nil {
		// Hierarquia com elo ausente acima de uma folha conhecida é
		// corrupção de dimensões, não um defeito do registro: aborta.
		return recordOutcome{}, err
	}

	var outcome recordOutcome
	err = s.txRunner.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, event, err := s.factRepository.Upsert(ctx, tx, key, record.Metrics)
		if err != nil {
			return err
		}

		outcome.result = result

		if event != nil {
			if err := s.aggregator.ApplyChange(ctx, tx, *event, path); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrConstraintViolation) {
			logrus.Warn("Registro recusado por violação de integridade", map[string]any{
				"key":   key.String(),
				"error": err,
			})
			return recordOutcome{rejection: newRejection(reasonConstraint, key.String())}, nil
		}
		return recordOutcome{}, err
	}

	if outcome.result == domain.UpsertUpdated && record.Date.Before(finalizationHorizon) {
		outcome.revised = true
		logrus.Warn("Revisão tardia além do horizonte de finalização", map[string]any{
			"key":  key.String(),
			"date": record.Date.Format(time.DateOnly),
		})
	}

	return outcome, nil
}

// translateRecord converte os identificadores externos do registro nos IDs
// internos das dimensões. Keywords e anúncios precisam existir de antemão
// (sincronizados pelo fluxo de dimensões); a query de busca é a única
// dimensão criada on-demand, porque seu universo é aberto.
func (s *Service) translateRecord(ctx context.Context, record domain.FactRecord) (domain.FactKey, *rejection, error) {
	ad, err := s.adRepo.GetByGoogleAdID(ctx, record.GoogleAdID)
	if err != nil {
		return domain.FactKey{}, nil, err
	}
	if ad == nil {
		return domain.FactKey{}, newRejection(reasonUnknownAd, record.GoogleAdID), nil
	}

	key := domain.FactKey{
		Kind: record.Kind,
		AdID: ad.ID,
		Date: record.Date,
	}

	if record.Kind == domain.LeafKindDisplay {
		return key, nil, nil
	}

	keyword, err := s.keywordRepo.GetByGoogleKeywordID(ctx, record.GoogleKeywordID)
	if err != nil {
		return domain.FactKey{}, nil, err
	}
	if keyword == nil {
		return domain.FactKey{}, newRejection(reasonUnknownKeyword, record.GoogleKeywordID), nil
	}

	searchQuery, err := s.searchQueryRepo.GetOrCreate(ctx, record.QueryText)
	if err != nil {
		return domain.FactKey{}, nil, err
	}

	key.KeywordID = keyword.ID
	key.SearchQueryID = searchQuery.ID

	return key, nil, nil
}

func validateRecord(record domain.FactRecord) *rejection {
	if record.Kind != domain.LeafKindSearch && record.Kind != domain.LeafKindDisplay {
		return newRejection(reasonInvalidRecord, fmt.Sprintf("kind %q", record.Kind))
	}

	if record.GoogleAdID == "" {
		return newRejection(reasonInvalidRecord, "google_ad_id ausente")
	}

	if record.Date.IsZero() {
		return newRejection(reasonInvalidRecord, "data ausente")
	}

	if record.Kind == domain.LeafKindSearch {
		if record.QueryText == "" {
			return newRejection(reasonInvalidRecord, "query de busca vazia")
		}
		if record.GoogleKeywordID == "" {
			return newRejection(reasonInvalidRecord, "google_keyword_id ausente")
		}
	}

	if record.Metrics.Impressions < 0 || record.Metrics.Clicks < 0 ||
		record.Metrics.Cost.IsNegative() || record.Metrics.Conversions.IsNegative() ||
		record.Metrics.ConversionValue.IsNegative() {
		return newRejection(reasonInvalidRecord, "métricas negativas")
	}

	return nil
}
