package handler

import (
	"net/http"

	"github.com/adstats/campaign-stats-engine/internal/api/handler/router"
	"github.com/adstats/campaign-stats-engine/internal/usecases/authenticating"
	"github.com/adstats/campaign-stats-engine/internal/usecases/checking"
	"github.com/adstats/campaign-stats-engine/internal/usecases/ingesting"
	"github.com/adstats/campaign-stats-engine/internal/usecases/managing"
	"github.com/adstats/campaign-stats-engine/internal/usecases/reporting"
	"github.com/adstats/campaign-stats-engine/pkg/metrics"
	"github.com/adstats/campaign-stats-engine/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Ingestion(service ingesting.Reconciler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/facts/batch",
			Method:      http.MethodPost,
			Handler:     IngestFacts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
	}
}

func Rollups(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/rollups/:level/:id",
			Method:      http.MethodGet,
			Handler:     GetRollups(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Consistency(service checking.Checker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/consistency/verify",
			Method:      http.MethodPost,
			Handler:     VerifyConsistency(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
	}
}

func Dimensions(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/services",
			Method:      http.MethodGet,
			Handler:     ListServices(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/services",
			Method:      http.MethodPut,
			Handler:     SaveService(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/accounts",
			Method:      http.MethodGet,
			Handler:     ListAccounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts",
			Method:      http.MethodPut,
			Handler:     SaveAccount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodPut,
			Handler:     SaveCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/adGroups",
			Method:      http.MethodGet,
			Handler:     ListAdGroups(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/adGroups",
			Method:      http.MethodPut,
			Handler:     SaveAdGroup(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/adGroups/:ad_group_id/keywords",
			Method:      http.MethodGet,
			Handler:     ListKeywords(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/keywords",
			Method:      http.MethodPut,
			Handler:     SaveKeyword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/adGroups/:ad_group_id/ads",
			Method:      http.MethodGet,
			Handler:     ListAds(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ads",
			Method:      http.MethodPut,
			Handler:     SaveAd(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/adGroups/:ad_group_id/targetingSettings",
			Method:      http.MethodGet,
			Handler:     ListTargetingSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/targetingSettings",
			Method:      http.MethodPut,
			Handler:     SaveTargetingSetting(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
	}
}
