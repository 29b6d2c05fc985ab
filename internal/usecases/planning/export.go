package planning

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/focomkt/lead-diagnostics-api/internal/domain"
	"github.com/focomkt/lead-diagnostics-api/pkg/utils"
)

// ExportFilename monta o nome do arquivo de download do plano estratégico.
func ExportFilename(clinicName string) string {
	return fmt.Sprintf("plano-estrategico-%s.txt", utils.Slugify(clinicName))
}

// RenderPlanText gera o documento de texto puro do plano estratégico, na
// ordem da página de resultado: identificação, diagnóstico, situação atual,
// recomendações e as três fases de implementação.
func RenderPlanText(profile *domain.ClinicProfile, plan *domain.StrategicPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "PLANO ESTRATÉGICO - %s\n\n", plan.NomeClinica)

	b.WriteString("DIAGNÓSTICO ATUAL:\n")
	fmt.Fprintf(&b, "- Faturamento atual: %s\n", profile.FaturamentoAtual)
	fmt.Fprintf(&b, "- Meta de faturamento: %s\n", profile.FaturamentoMeta)
	fmt.Fprintf(&b, "- Gap de faturamento: %s\n", utils.FormatBRL(plan.Diagnostico.RevenueGap))
	fmt.Fprintf(&b, "- Crescimento necessário: %s%%\n", formatPercent(plan.Diagnostico.GrowthPercent))
	fmt.Fprintf(&b, "- Pacientes adicionais/mês: %d\n", plan.Diagnostico.PatientsNeeded)
	fmt.Fprintf(&b, "- Capacidade máxima: %d pacientes/mês\n", plan.Diagnostico.MaxCapacity)
	fmt.Fprintf(&b, "- Utilização de capacidade: %s%%\n", formatPercent(plan.Diagnostico.UtilizationPercent))

	b.WriteString("\nSITUAÇÃO ATUAL:\n")
	fmt.Fprintf(&b, "- Faz marketing online: %s\n", formatAnswer(profile.FazMarketingOnline))
	fmt.Fprintf(&b, "- Investe em tráfego pago: %s\n", formatAnswer(profile.InvesteEmTrafego))
	fmt.Fprintf(&b, "- Programa de indicações: %s\n", formatAnswer(profile.TemProgramaIndicacao))
	fmt.Fprintf(&b, "- Equipe treinada no WhatsApp: %s\n", formatAnswer(profile.EquipeTreinadaWhatsApp))
	fmt.Fprintf(&b, "- Usa software de gestão: %s\n", formatAnswer(profile.UsaSoftwareGestao))

	b.WriteString("\nRECOMENDAÇÕES:\n")
	if len(plan.Recomendacoes) == 0 {
		b.WriteString("- Nenhuma recomendação: os fundamentos da clínica estão em ordem.\n")
	}
	for _, rec := range plan.Recomendacoes {
		fmt.Fprintf(&b, "\n- [%s] %s: %s\n  %s\n", rec.Priority, rec.Category, rec.Action, rec.Detail)
		if rec.Impact != "" {
			fmt.Fprintf(&b, "  Impacto: %s\n", rec.Impact)
		}
	}

	writePhase(&b, "PRIMEIROS 30 DIAS:", plan.PlanoExecucao.Phase1)
	writePhase(&b, "DIAS 31 A 60:", plan.PlanoExecucao.Phase2)
	writePhase(&b, "DIAS 61 A 90:", plan.PlanoExecucao.Phase3)

	b.WriteString("\nGerado por Foco Marketing\n")

	return b.String()
}

func writePhase(b *strings.Builder, title string, recommendations []domain.Recommendation) {
	b.WriteString("\n" + title + "\n")

	if len(recommendations) == 0 {
		b.WriteString("- (sem ações nesta fase)\n")
		return
	}

	for _, rec := range recommendations {
		fmt.Fprintf(b, "- %s\n", rec.Action)
	}
}

// formatPercent imprime o percentual sem zeros à direita supérfluos,
// como a página original fazia com os números do JavaScript.
func formatPercent(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func formatAnswer(answer string) string {
	if strings.TrimSpace(answer) == "" {
		return "não informado"
	}
	return answer
}
