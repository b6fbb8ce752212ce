package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa os contadores Prometheus do motor de agregação.
type Metrics struct {
	// Ingestão
	FactsInserted   prometheus.Counter
	FactsUpdated    prometheus.Counter
	FactsUnchanged  prometheus.Counter
	RecordsRejected *prometheus.CounterVec
	RecordsRevised  prometheus.Counter
	BatchesAborted  prometheus.Counter

	// Agregação
	RollupDeltas   *prometheus.CounterVec
	RollupRebuilds prometheus.Counter

	// Verificação de consistência
	DriftReports  *prometheus.CounterVec
	ChecksStarted prometheus.Counter
}

// Default é a instância global usada pela aplicação.
var Default = New()

func New() *Metrics {
	return &Metrics{
		FactsInserted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stats_engine_facts_inserted_total",
			Help: "Fatos folha inseridos pela primeira vez",
		}),
		FactsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stats_engine_facts_updated_total",
			Help: "Fatos folha atualizados com métricas revisadas",
		}),
		FactsUnchanged: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stats_engine_facts_unchanged_total",
			Help: "Upserts idempotentes que não alteraram métricas",
		}),
		RecordsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "stats_engine_records_rejected_total",
			Help: "Registros recusados por motivo",
		}, []string{"reason"}),
		RecordsRevised: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stats_engine_records_revised_total",
			Help: "Revisões tardias além do horizonte de finalização",
		}),
		BatchesAborted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stats_engine_batches_aborted_total",
			Help: "Lotes abortados por erro sistêmico de armazenamento",
		}),
		RollupDeltas: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "stats_engine_rollup_deltas_total",
			Help: "Deltas aplicados em linhas de rollup por nível",
		}, []string{"level"}),
		RollupRebuilds: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stats_engine_rollup_rebuilds_total",
			Help: "Reconstruções completas de rollups",
		}),
		DriftReports: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "stats_engine_drift_reports_total",
			Help: "Divergências detectadas entre rollups e fatos por nível",
		}, []string{"level"}),
		ChecksStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "stats_engine_consistency_checks_total",
			Help: "Verificações de consistência iniciadas",
		}),
	}
}

// Handler expõe o endpoint /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
