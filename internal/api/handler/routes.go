package handler

import (
	"net/http"

	"github.com/focomkt/lead-diagnostics-api/internal/api/handler/router"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/authenticating"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/leads"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/reporting"
	"github.com/focomkt/lead-diagnostics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Leads agrupa o fluxo público de captação e a consulta interna de leads.
// A submissão e a leitura do plano são públicas; listagem e detalhe são da
// equipe da agência.
func Leads(service leads.Manager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/leads",
			Method:  http.MethodPost,
			Handler: SubmitLead(service),
		},
		{
			Path:    "/v1/leads/:id/plan",
			Method:  http.MethodGet,
			Handler: GetStrategicPlan(service),
		},
		{
			Path:    "/v1/leads/:id/plan/export",
			Method:  http.MethodGet,
			Handler: ExportStrategicPlan(service),
		},
		{
			Path:        "/v1/leads",
			Method:      http.MethodGet,
			Handler:     ListLeads(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/leads/:id",
			Method:      http.MethodGet,
			Handler:     GetLead(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Reports agrupa os números agregados do painel da agência. A rota fica fora
// de /v1/leads/:id para não conflitar com o parâmetro de rota.
func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/leads",
			Method:      http.MethodGet,
			Handler:     GetLeadStats(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
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
	}
}
