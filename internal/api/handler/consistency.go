package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/adstats/campaign-stats-engine/internal/usecases/checking"
	"github.com/adstats/campaign-stats-engine/pkg/apiErrors"
)

// VerifyConsistency executa a verificação de consistência sob demanda e
// retorna os relatórios de divergência encontrados. Com campaign_id na
// query string, verifica apenas aquela campanha; com account_id, apenas
// aquela conta; sem nenhum dos dois, verifica todas as contas.
func VerifyConsistency(service checking.Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - VerifyConsistency")

		startDate, endDate, ok := parseDateRange(w, r)
		if !ok {
			return
		}

		accountID := r.URL.Query().Get("account_id")
		campaignID := r.URL.Query().Get("campaign_id")

		reports, err := func() (any, error) {
			switch {
			case campaignID != "":
				return service.VerifyCampaign(r.Context(), campaignID, startDate, endDate)
			case accountID != "":
				return service.VerifyAccount(r.Context(), accountID, startDate, endDate)
			default:
				return service.VerifyAll(r.Context(), startDate, endDate)
			}
		}()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao executar verificação de consistência", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(map[string]any{
			"reports": reports,
		})
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
