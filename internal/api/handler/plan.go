package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/focomkt/lead-diagnostics-api/internal/usecases/leads"
	"github.com/focomkt/lead-diagnostics-api/pkg/apiErrors"
)

// GetStrategicPlan monta o plano estratégico do lead para a página de
// resultado. O plano é recalculado a cada consulta a partir do perfil salvo.
func GetStrategicPlan(service leads.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lead não fornecido", nil)
			return
		}

		plan, err := service.GetStrategicPlan(id)
		if err != nil {
			writeLeadError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(plan); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ExportStrategicPlan gera o documento de texto do plano para download.
func ExportStrategicPlan(service leads.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do lead não fornecido", nil)
			return
		}

		export, err := service.ExportStrategicPlan(id)
		if err != nil {
			writeLeadError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))

		if _, err := w.Write([]byte(export.Content)); err != nil {
			logrus.Error(err)
		}
	}
}
