package ingesting

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/adstats/campaign-stats-engine/infrastructure/database/postgres"
	"github.com/adstats/campaign-stats-engine/infrastructure/repository/mocks"
	"github.com/adstats/campaign-stats-engine/internal/config"
	"github.com/adstats/campaign-stats-engine/internal/domain"
	aggregatingmocks "github.com/adstats/campaign-stats-engine/internal/usecases/aggregating/mocks"
	"github.com/adstats/campaign-stats-engine/pkg/metrics"
)

type passthroughTxRunner struct{}

func (passthroughTxRunner) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return fn(nil)
}

type ingestFixture struct {
	service     *Service
	factRepo    *mocks.MockFactRepository
	keywordRepo *mocks.MockKeywordRepository
	adRepo      *mocks.MockAdRepository
	adGroupRepo *mocks.MockAdGroupRepository
	campaigns   *mocks.MockCampaignRepository
	accounts    *mocks.MockAccountRepository
	queries     *mocks.MockSearchQueryRepository
	aggregator  *aggregatingmocks.MockAggregator
}

func newIngestFixture(ctrl *gomock.Controller) *ingestFixture {
	f := &ingestFixture{
		factRepo:    mocks.NewMockFactRepository(ctrl),
		keywordRepo: mocks.NewMockKeywordRepository(ctrl),
		adRepo:      mocks.NewMockAdRepository(ctrl),
		adGroupRepo: mocks.NewMockAdGroupRepository(ctrl),
		campaigns:   mocks.NewMockCampaignRepository(ctrl),
		accounts:    mocks.NewMockAccountRepository(ctrl),
		queries:     mocks.NewMockSearchQueryRepository(ctrl),
		aggregator:  aggregatingmocks.NewMockAggregator(ctrl),
	}

	cfg := &config.Config{
		Ingestion: config.Ingestion{
			MaxConcurrentJobs: 2,
			FinalizationDays:  30,
		},
	}

	f.service = NewService(
		cfg,
		passthroughTxRunner{},
		f.factRepo,
		f.keywordRepo,
		f.adRepo,
		f.adGroupRepo,
		f.campaigns,
		f.accounts,
		f.queries,
		f.aggregator,
	)
	f.service.now = func() time.Time {
		return time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	}

	return f
}

// expectHierarchy arma as dimensões de um caminho completo AD1 → AG1 → C1
// → ACC1/SVC1.
func (f *ingestFixture) expectHierarchy() {
	f.adRepo.EXPECT().
		GetByID(gomock.Any(), "AD1").
		Return(&domain.Ad{ID: "AD1", AdGroupID: "AG1"}, nil).
		AnyTimes()
	f.keywordRepo.EXPECT().
		GetByID(gomock.Any(), "KW1").
		Return(&domain.Keyword{ID: "KW1", AdGroupID: "AG1"}, nil).
		AnyTimes()
	f.adGroupRepo.EXPECT().
		GetByID(gomock.Any(), "AG1").
		Return(&domain.AdGroup{ID: "AG1", CampaignID: "C1"}, nil).
		AnyTimes()
	f.campaigns.EXPECT().
		GetByID(gomock.Any(), "C1").
		Return(&domain.Campaign{ID: "C1", AccountID: "ACC1", ServiceID: "SVC1"}, nil).
		AnyTimes()
	f.accounts.EXPECT().
		GetByID(gomock.Any(), "ACC1").
		Return(&domain.AdAccount{ID: "ACC1"}, nil).
		AnyTimes()
}

func searchRecord(date time.Time, metrics domain.Metrics) domain.FactRecord {
	return domain.FactRecord{
		Kind:            domain.LeafKindSearch,
		QueryText:       "running shoes",
		GoogleKeywordID: "g-kw-1",
		GoogleAdID:      "g-ad-1",
		Date:            date,
		Metrics:         metrics,
	}
}

func TestService_IngestBatch_InsercaoDeFatoDeBusca(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newIngestFixture(ctrl)
	f.expectHierarchy()

	date := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	metrics := domain.Metrics{
		Impressions: 100,
		Clicks:      5,
		Cost:        decimal.RequireFromString("12.50"),
	}

	f.adRepo.EXPECT().
		GetByGoogleAdID(gomock.Any(), "g-ad-1").
		Return(&domain.Ad{ID: "AD1", AdGroupID: "AG1"}, nil)
	f.keywordRepo.EXPECT().
		GetByGoogleKeywordID(gomock.Any(), "g-kw-1").
		Return(&domain.Keyword{ID: "KW1", AdGroupID: "AG1"}, nil)
	f.queries.EXPECT().
		GetOrCreate(gomock.Any(), "running shoes").
		Return(&domain.SearchQuery{ID: "SQ1", QueryText: "running shoes"}, nil)

	expectedKey := domain.FactKey{
		Kind:          domain.LeafKindSearch,
		SearchQueryID: "SQ1",
		KeywordID:     "KW1",
		AdID:          "AD1",
		Date:          date,
	}

	event := &domain.ChangeEvent{Key: expectedKey, New: metrics}

	f.factRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any(), expectedKey, metrics).
		Return(domain.UpsertInserted, event, nil)

	f.aggregator.EXPECT().
		ApplyChange(gomock.Any(), gomock.Any(), *event, &domain.AncestorPath{
			AdGroupID:  "AG1",
			CampaignID: "C1",
			AccountID:  "ACC1",
			ServiceID:  "SVC1",
		}).
		Return(nil)

	report, err := f.service.IngestBatch(context.Background(), []domain.FactRecord{searchRecord(date, metrics)})

	assert.NoError(t, err)
	assert.Equal(t, 1, report.Accepted)
	assert.Equal(t, 1, report.Inserted)
	assert.Equal(t, 0, report.Revised)
	assert.Empty(t, report.Rejected)
}

func TestService_IngestBatch_ReenvioIdenticoNaoPropagaDelta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newIngestFixture(ctrl)
	f.expectHierarchy()

	date := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	metrics := domain.Metrics{Impressions: 100, Clicks: 5, Cost: decimal.RequireFromString("12.50")}

	f.adRepo.EXPECT().
		GetByGoogleAdID(gomock.Any(), "g-ad-1").
		Return(&domain.Ad{ID: "AD1", AdGroupID: "AG1"}, nil)
	f.keywordRepo.EXPECT().
		GetByGoogleKeywordID(gomock.Any(), "g-kw-1").
		Return(&domain.Keyword{ID: "KW1", AdGroupID: "AG1"}, nil)
	f.queries.EXPECT().
		GetOrCreate(gomock.Any(), "running shoes").
		Return(&domain.SearchQuery{ID: "SQ1"}, nil)

	// Upsert "unchanged" não emite evento; o agregador não pode ser tocado.
	f.factRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.UpsertUnchanged, nil, nil)

	report, err := f.service.IngestBatch(context.Background(), []domain.FactRecord{searchRecord(date, metrics)})

	assert.NoError(t, err)
	assert.Equal(t, 1, report.Accepted)
	assert.Equal(t, 1, report.Unchanged)
	assert.Equal(t, 0, report.Inserted)
}

func TestService_IngestBatch_RevisaoAlemDoHorizonte(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newIngestFixture(ctrl)
	f.expectHierarchy()

	// Horizonte = 2025-07-01 - 30 dias = 2025-06-01; uma data de maio é
	// revisão tardia.
	date := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)

	old := domain.Metrics{Impressions: 100, Clicks: 5, Cost: decimal.RequireFromString("12.50")}
	updated := domain.Metrics{Impressions: 100, Clicks: 6, Cost: decimal.RequireFromString("13.00")}

	f.adRepo.EXPECT().
		GetByGoogleAdID(gomock.Any(), "g-ad-1").
		Return(&domain.Ad{ID: "AD1", AdGroupID: "AG1"}, nil)
	f.keywordRepo.EXPECT().
		GetByGoogleKeywordID(gomock.Any(), "g-kw-1").
		Return(&domain.Keyword{ID: "KW1", AdGroupID: "AG1"}, nil)
	f.queries.EXPECT().
		GetOrCreate(gomock.Any(), "running shoes").
		Return(&domain.SearchQuery{ID: "SQ1"}, nil)

	f.factRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.UpsertUpdated, &domain.ChangeEvent{Old: &old, New: updated}, nil)

	f.aggregator.EXPECT().
		ApplyChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	report, err := f.service.IngestBatch(context.Background(), []domain.FactRecord{searchRecord(date, updated)})

	assert.NoError(t, err)
	assert.Equal(t, 1, report.Accepted)
	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 1, report.Revised)
}

func TestService_IngestBatch_RecusasLocais(t *testing.T) {
	date := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		record         domain.FactRecord
		setup          func(f *ingestFixture)
		expectedReason string
	}{
		{
			name: "Kind desconhecido",
			record: domain.FactRecord{
				Kind:       "VIDEO",
				GoogleAdID: "g-ad-1",
				Date:       date,
			},
			setup:          func(f *ingestFixture) {},
			expectedReason: reasonInvalidRecord,
		},
		{
			name: "Métricas negativas",
			record: domain.FactRecord{
				Kind:       domain.LeafKindDisplay,
				GoogleAdID: "g-ad-1",
				Date:       date,
				Metrics:    domain.Metrics{Clicks: -1},
			},
			setup:          func(f *ingestFixture) {},
			expectedReason: reasonInvalidRecord,
		},
		{
			name: "Fato de busca sem query",
			record: domain.FactRecord{
				Kind:            domain.LeafKindSearch,
				GoogleKeywordID: "g-kw-1",
				GoogleAdID:      "g-ad-1",
				Date:            date,
			},
			setup:          func(f *ingestFixture) {},
			expectedReason: reasonInvalidRecord,
		},
		{
			name:   "Anúncio desconhecido",
			record: searchRecord(date, domain.Metrics{Impressions: 1}),
			setup: func(f *ingestFixture) {
				f.adRepo.EXPECT().GetByGoogleAdID(gomock.Any(), "g-ad-1").Return(nil, nil)
			},
			expectedReason: reasonUnknownAd,
		},
		{
			name:   "Keyword desconhecida",
			record: searchRecord(date, domain.Metrics{Impressions: 1}),
			setup: func(f *ingestFixture) {
				f.adRepo.EXPECT().
					GetByGoogleAdID(gomock.Any(), "g-ad-1").
					Return(&domain.Ad{ID: "AD1", AdGroupID: "AG1"}, nil)
				f.keywordRepo.EXPECT().
					GetByGoogleKeywordID(gomock.Any(), "g-kw-1").
					Return(nil, nil)
			},
			expectedReason: reasonUnknownKeyword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			f := newIngestFixture(ctrl)
			tt.setup(f)

			report, err := f.service.IngestBatch(context.Background(), []domain.FactRecord{tt.record})

			assert.NoError(t, err)
			assert.Equal(t, 0, report.Accepted)
			assert.Len(t, report.Rejected, 1)
			assert.Contains(t, report.Rejected[0].Reason, tt.expectedReason)
		})
	}
}

func TestService_IngestBatch_LabelDeRecusaSemIdentificadores(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newIngestFixture(ctrl)

	f.adRepo.EXPECT().GetByGoogleAdID(gomock.Any(), "g-ad-x1").Return(nil, nil)
	f.adRepo.EXPECT().GetByGoogleAdID(gomock.Any(), "g-ad-x2").Return(nil, nil)

	unknownAdCounter := metrics.Default.RecordsRejected.WithLabelValues(reasonUnknownAd)
	countBefore := testutil.ToFloat64(unknownAdCounter)
	seriesBefore := testutil.CollectAndCount(metrics.Default.RecordsRejected)

	date := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	report, err := f.service.IngestBatch(context.Background(), []domain.FactRecord{
		{Kind: domain.LeafKindDisplay, GoogleAdID: "g-ad-x1", Date: date, Metrics: domain.Metrics{Impressions: 1}},
		{Kind: domain.LeafKindDisplay, GoogleAdID: "g-ad-x2", Date: date, Metrics: domain.Metrics{Impressions: 1}},
	})

	assert.NoError(t, err)
	assert.Len(t, report.Rejected, 2)

	// O relatório do lote carrega o identificador externo; o label do
	// contador carrega apenas o motivo constante, uma série por motivo.
	for _, rejected := range report.Rejected {
		assert.Contains(t, rejected.Reason, reasonUnknownAd)
		assert.Contains(t, rejected.Reason, rejected.Record.GoogleAdID)
	}
	assert.Equal(t, countBefore+2, testutil.ToFloat64(unknownAdCounter))
	assert.Equal(t, seriesBefore, testutil.CollectAndCount(metrics.Default.RecordsRejected))
}

func TestService_IngestBatch_ViolacaoDeIntegridadeRecusaRegistro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newIngestFixture(ctrl)
	f.expectHierarchy()

	date := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	f.adRepo.EXPECT().
		GetByGoogleAdID(gomock.Any(), "g-ad-1").
		Return(&domain.Ad{ID: "AD1", AdGroupID: "AG1"}, nil)
	f.keywordRepo.EXPECT().
		GetByGoogleKeywordID(gomock.Any(), "g-kw-1").
		Return(&domain.Keyword{ID: "KW1", AdGroupID: "AG1"}, nil)
	f.queries.EXPECT().
		GetOrCreate(gomock.Any(), "running shoes").
		Return(&domain.SearchQuery{ID: "SQ1"}, nil)

	f.factRepo.EXPECT().
		Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.UpsertResult(""), nil, domain.ErrConstraintViolation)

	report, err := f.service.IngestBatch(context.Background(), []domain.FactRecord{searchRecord(date, domain.Metrics{Impressions: 1})})

	assert.NoError(t, err)
	assert.Len(t, report.Rejected, 1)
	assert.Contains(t, report.Rejected[0].Reason, reasonConstraint)
}

func TestService_IngestBatch_RelatorioIndependeDaOrdem(t *testing.T) {
	date := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	recordA := domain.FactRecord{
		Kind:       domain.LeafKindDisplay,
		GoogleAdID: "g-ad-1",
		Date:       date,
		Metrics:    domain.Metrics{Impressions: 100, Clicks: 5},
	}
	recordB := domain.FactRecord{
		Kind:       domain.LeafKindDisplay,
		GoogleAdID: "g-ad-2",
		Date:       date,
		Metrics:    domain.Metrics{Impressions: 40, Clicks: 2},
	}

	run := func(t *testing.T, records []domain.FactRecord) *domain.BatchReport {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		f := newIngestFixture(ctrl)
		f.expectHierarchy()

		f.adRepo.EXPECT().
			GetByGoogleAdID(gomock.Any(), "g-ad-1").
			Return(&domain.Ad{ID: "AD1", AdGroupID: "AG1"}, nil)
		f.adRepo.EXPECT().
			GetByGoogleAdID(gomock.Any(), "g-ad-2").
			Return(&domain.Ad{ID: "AD2", AdGroupID: "AG1"}, nil)
		f.adRepo.EXPECT().
			GetByID(gomock.Any(), "AD2").
			Return(&domain.Ad{ID: "AD2", AdGroupID: "AG1"}, nil).
			AnyTimes()

		f.factRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ postgres.Queryer, key domain.FactKey, m domain.Metrics) (domain.UpsertResult, *domain.ChangeEvent, error) {
				return domain.UpsertInserted, &domain.ChangeEvent{Key: key, New: m}, nil
			}).
			Times(2)
		f.aggregator.EXPECT().
			ApplyChange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)

		report, err := f.service.IngestBatch(context.Background(), records)
		assert.NoError(t, err)
		return report
	}

	forward := run(t, []domain.FactRecord{recordA, recordB})
	reversed := run(t, []domain.FactRecord{recordB, recordA})

	assert.Equal(t, forward, reversed)
	assert.Equal(t, 2, forward.Accepted)
	assert.Equal(t, 2, forward.Inserted)
}

func TestService_IngestBatch_HierarquiaCorrompidaAbortaOLote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newIngestFixture(ctrl)

	date := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	f.adRepo.EXPECT().
		GetByGoogleAdID(gomock.Any(), "g-ad-1").
		Return(&domain.Ad{ID: "AD1", AdGroupID: "AG1"}, nil)
	f.keywordRepo.EXPECT().
		GetByGoogleKeywordID(gomock.Any(), "g-kw-1").
		Return(&domain.Keyword{ID: "KW1", AdGroupID: "AG1"}, nil)
	f.queries.EXPECT().
		GetOrCreate(gomock.Any(), "running shoes").
		Return(&domain.SearchQuery{ID: "SQ1"}, nil)

	// A keyword existe mas o ad group dela sumiu: corrupção de dimensões,
	// não defeito do registro.
	f.keywordRepo.EXPECT().
		GetByID(gomock.Any(), "KW1").
		Return(&domain.Keyword{ID: "KW1", AdGroupID: "AG1"}, nil)
	f.adGroupRepo.EXPECT().
		GetByID(gomock.Any(), "AG1").
		Return(nil, nil)

	report, err := f.service.IngestBatch(context.Background(), []domain.FactRecord{searchRecord(date, domain.Metrics{Impressions: 1})})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBatchAborted))
	assert.True(t, errors.Is(err, domain.ErrDanglingReference))
	assert.NotNil(t, report)
	assert.Equal(t, 0, report.Accepted)
}
