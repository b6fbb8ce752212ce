package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/adstats/campaign-stats-engine/internal/domain"
	"github.com/adstats/campaign-stats-engine/internal/usecases/reporting"
	"github.com/adstats/campaign-stats-engine/pkg/apiErrors"
	"github.com/adstats/campaign-stats-engine/pkg/utils"
)

// GetRollups retorna os agregados diários de uma entidade em qualquer nível
// da hierarquia (ad_group, campaign, account, service) no período informado.
func GetRollups(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())

		level := domain.RollupLevel(strings.ToUpper(params.ByName("level")))
		if !level.Valid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidEnumValue, "Nível de rollup inválido. Valores aceitos: ad_group, campaign, account, service", nil)
			return
		}

		entityID := params.ByName("id")
		if entityID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da entidade não fornecido", nil)
			return
		}

		startDate, endDate, ok := parseDateRange(w, r)
		if !ok {
			return
		}

		summary, err := service.GetRollups(r.Context(), level, entityID, startDate, endDate)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar rollups", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(summary)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// parseDateRange extrai start_date e end_date da query string. Em caso de
// problema, escreve o erro na resposta e retorna ok=false.
func parseDateRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	startStr := r.URL.Query().Get("start_date")
	endStr := r.URL.Query().Get("end_date")

	if startStr == "" || endStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário informar start_date e end_date", nil)
		return time.Time{}, time.Time{}, false
	}

	startDate, err := utils.ParseDate(startStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida, use o formato YYYY-MM-DD", nil)
		return time.Time{}, time.Time{}, false
	}

	endDate, err := utils.ParseDate(endStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida, use o formato YYYY-MM-DD", nil)
		return time.Time{}, time.Time{}, false
	}

	if startDate.After(*endDate) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "start_date não pode ser posterior a end_date", nil)
		return time.Time{}, time.Time{}, false
	}

	return *startDate, *endDate, true
}
