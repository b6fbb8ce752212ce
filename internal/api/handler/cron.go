package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/adstats/campaign-stats-engine/internal/scheduler"
	"github.com/adstats/campaign-stats-engine/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeConsistencyCheck = "consistency-check"
	CronJobTypeRollupRebuild    = "rollup-rebuild"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	ConsistencyCheckService *scheduler.ConsistencyCheckService
	RollupRebuildService    *scheduler.RollupRebuildService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeConsistencyCheck:
			if services.ConsistencyCheckService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de verificação de consistência não disponível", nil)
				return
			}
			services.ConsistencyCheckService.TriggerManualCheck()

		case CronJobTypeRollupRebuild:
			if services.RollupRebuildService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reconstrução de rollups não disponível", nil)
				return
			}
			// O query param account_id restringe a reconstrução a uma conta
			services.RollupRebuildService.TriggerManualRebuild(r.URL.Query().Get("account_id"))

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: consistency-check, rollup-rebuild", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"consistency-check": services.ConsistencyCheckService.GetStatus(),
			"rollup-rebuild":    services.RollupRebuildService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
