package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/focomkt/lead-diagnostics-api/infrastructure/repository"
	"github.com/focomkt/lead-diagnostics-api/internal/domain"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/leads"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/reporting"
	"github.com/focomkt/lead-diagnostics-api/pkg/apiErrors"
	"github.com/focomkt/lead-diagnostics-api/pkg/utils"
)

type SubmitLeadResponse struct {
	ID                 string                    `json:"id"`
	NotificationStatus domain.NotificationStatus `json:"notification_status"`
}

// SubmitLead recebe a submissão do formulário de diagnóstico do site.
func SubmitLead(service leads.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var profile *domain.ClinicProfile

		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		lead, err := service.Submit(profile)
		if err != nil {
			if errors.Is(err, leads.ErrMissingRequiredData) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar diagnóstico", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		err = json.NewEncoder(w).Encode(SubmitLeadResponse{
			ID:                 lead.ID,
			NotificationStatus: lead.NotificationStatus,
		})
		if err != nil {
			logrus.Error(err)
		}
	}
}

// GetLead retorna o lead completo para a área interna da agência.
func GetLead(service leads.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lead não fornecido", nil)
			return
		}

		lead, err := service.Get(id)
		if err != nil {
			writeLeadError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(lead); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ListLeads lista os leads com filtros opcionais de período e estado.
func ListLeads(service leads.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := repository.LeadFilters{
			Estado: r.URL.Query().Get("estado"),
		}

		if fromStr := r.URL.Query().Get("from"); fromStr != "" {
			from, err := utils.ParseDate(fromStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use o formato AAAA-MM-DD", nil)
				return
			}
			filters.From = from
		}

		if toStr := r.URL.Query().Get("to"); toStr != "" {
			to, err := utils.ParseDate(toStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use o formato AAAA-MM-DD", nil)
				return
			}
			filters.To = to
		}

		list, err := service.List(filters)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar leads", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(list); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// GetLeadStats retorna o painel de captação da agência.
func GetLeadStats(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := service.GetLeadStats()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar estatísticas de leads", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// writeLeadError traduz os erros do serviço de leads para a taxonomia da API.
// O lead inexistente vira o estado "Dados não encontrados" da página de
// resultado, com o convite para refazer o diagnóstico.
func writeLeadError(w http.ResponseWriter, err error) {
	if errors.Is(err, leads.ErrLeadNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrLeadNotFound, "Dados não encontrados", map[string]any{
			"mensagem": "Não encontramos os dados da sua clínica. Preencha o diagnóstico novamente.",
		})
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar lead", nil)
}
