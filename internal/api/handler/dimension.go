package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/adstats/campaign-stats-engine/internal/domain"
	"github.com/adstats/campaign-stats-engine/internal/usecases/managing"
	"github.com/adstats/campaign-stats-engine/pkg/apiErrors"
)

// Handlers de administração das dimensões da hierarquia. O fluxo normal de
// sincronização dimensional também entra por aqui: upserts idempotentes
// pelos identificadores externos.

func SaveService(service managing.Manager) http.HandlerFunc {
	return saveDimension(func(r *http.Request) (any, error) {
		var svc *domain.Service
		if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
			return nil, errInvalidBody
		}
		return service.SaveService(r.Context(), svc)
	})
}

func ListServices(service managing.Manager) http.HandlerFunc {
	return listDimension(func(r *http.Request) (any, error) {
		return service.ListServices(r.Context())
	})
}

func SaveAccount(service managing.Manager) http.HandlerFunc {
	return saveDimension(func(r *http.Request) (any, error) {
		var account *domain.AdAccount
		if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
			return nil, errInvalidBody
		}
		return service.SaveAccount(r.Context(), account)
	})
}

func ListAccounts(service managing.Manager) http.HandlerFunc {
	return listDimension(func(r *http.Request) (any, error) {
		return service.ListAccounts(r.Context())
	})
}

func SaveCampaign(service managing.Manager) http.HandlerFunc {
	return saveDimension(func(r *http.Request) (any, error) {
		var campaign *domain.Campaign
		if err := json.NewDecoder(r.Body).Decode(&campaign); err != nil {
			return nil, errInvalidBody
		}
		return service.SaveCampaign(r.Context(), campaign)
	})
}

func ListCampaigns(service managing.Manager) http.HandlerFunc {
	return listDimension(func(r *http.Request) (any, error) {
		accountID := r.URL.Query().Get("account_id")
		if accountID == "" {
			return nil, errMissingParent
		}
		return service.ListCampaigns(r.Context(), accountID)
	})
}

func SaveAdGroup(service managing.Manager) http.HandlerFunc {
	return saveDimension(func(r *http.Request) (any, error) {
		var adGroup *domain.AdGroup
		if err := json.NewDecoder(r.Body).Decode(&adGroup); err != nil {
			return nil, errInvalidBody
		}
		return service.SaveAdGroup(r.Context(), adGroup)
	})
}

func ListAdGroups(service managing.Manager) http.HandlerFunc {
	return listDimension(func(r *http.Request) (any, error) {
		campaignID := r.URL.Query().Get("campaign_id")
		if campaignID == "" {
			return nil, errMissingParent
		}
		return service.ListAdGroups(r.Context(), campaignID)
	})
}

func SaveKeyword(service managing.Manager) http.HandlerFunc {
	return saveDimension(func(r *http.Request) (any, error) {
		var keyword *domain.Keyword
		if err := json.NewDecoder(r.Body).Decode(&keyword); err != nil {
			return nil, errInvalidBody
		}
		return service.SaveKeyword(r.Context(), keyword)
	})
}

func ListKeywords(service managing.Manager) http.HandlerFunc {
	return listDimension(func(r *http.Request) (any, error) {
		return service.ListKeywords(r.Context(), adGroupParam(r))
	})
}

func SaveAd(service managing.Manager) http.HandlerFunc {
	return saveDimension(func(r *http.Request) (any, error) {
		var ad *domain.Ad
		if err := json.NewDecoder(r.Body).Decode(&ad); err != nil {
			return nil, errInvalidBody
		}
		return service.SaveAd(r.Context(), ad)
	})
}

func ListAds(service managing.Manager) http.HandlerFunc {
	return listDimension(func(r *http.Request) (any, error) {
		return service.ListAds(r.Context(), adGroupParam(r))
	})
}

func SaveTargetingSetting(service managing.Manager) http.HandlerFunc {
	return saveDimension(func(r *http.Request) (any, error) {
		var setting *domain.TargetingSetting
		if err := json.NewDecoder(r.Body).Decode(&setting); err != nil {
			return nil, errInvalidBody
		}
		return service.SaveTargetingSetting(r.Context(), setting)
	})
}

func ListTargetingSettings(service managing.Manager) http.HandlerFunc {
	return listDimension(func(r *http.Request) (any, error) {
		return service.ListTargetingSettings(r.Context(), adGroupParam(r))
	})
}

var (
	errInvalidBody   = errors.New("corpo de requisição inválido")
	errMissingParent = errors.New("identificador do pai não informado")
)

func adGroupParam(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("ad_group_id")
}

func saveDimension(save func(*http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := save(r)
		if err != nil {
			writeDimensionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error(err)
		}
	}
}

func listDimension(list func(*http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := list(r)
		if err != nil {
			writeDimensionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error(err)
		}
	}
}

func writeDimensionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errInvalidBody):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, errMissingParent):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, domain.ErrConstraintViolation):
		apiErrors.WriteError(w, apiErrors.ErrConstraintViolation, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar dimensões", nil)
	}
}
