package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/adstats/campaign-stats-engine/internal/domain"
	"github.com/adstats/campaign-stats-engine/internal/usecases/ingesting"
	"github.com/adstats/campaign-stats-engine/pkg/apiErrors"
	"github.com/adstats/campaign-stats-engine/pkg/utils"
)

type IngestRequest struct {
	Records []domain.FactRecord `json:"records"`
}

// IngestFacts recebe um lote de registros de fatos diários e o processa de
// forma idempotente. O relatório devolve aceitos, revisados e recusados com
// motivo; um lote reenviar o mesmo conteúdo só produz "unchanged".
func IngestFacts(service ingesting.Reconciler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - IngestFacts")

		var req IngestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if len(req.Records) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Lote sem registros", nil)
			return
		}

		report, err := service.IngestBatch(r.Context(), req.Records)
		if err != nil {
			logrus.Error(err)

			switch {
			case errors.Is(err, domain.ErrDanglingReference):
				apiErrors.WriteError(w, apiErrors.ErrDanglingReference, err.Error(), report)

			case errors.Is(err, domain.ErrBatchAborted):
				// O relatório parcial acompanha o erro: o que já foi
				// gravado permanece e o cliente reenviar o lote é seguro.
				apiErrors.WriteError(w, apiErrors.ErrBatchAborted, err.Error(), report)

			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar lote de ingestão", nil)
			}
			return
		}

		logrus.Debug("Relatório do lote: ", utils.PrettyJson(report))

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(report)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}
