package recommending

import (
	"fmt"
	"strings"

	"github.com/focomkt/lead-diagnostics-api/internal/domain"
	"github.com/focomkt/lead-diagnostics-api/pkg/utils"
)

// Limiares do motor de recomendações. Os valores vêm da metodologia
// comercial da agência e valem para todas as clínicas.
const (
	paidTrafficMinBudget = 1500 // investimento mínimo sugerido em tráfego pago, em reais
	ticketReference      = 800  // ticket médio de referência, em reais
	ticketGrowthFactor   = 1.3  // meta de crescimento sobre o ticket atual
	minReferralsPerMonth = 10   // indicações/mês abaixo disso o programa é considerado fraco
	minOfflineActions    = 2    // mínimo de ações de marketing local esperadas
)

// Rule avalia uma condição independente sobre o perfil e os indicadores.
// Retorna nil quando a condição não dispara. As regras não se conhecem:
// cada uma é avaliada incondicionalmente, e a ordem da tabela define a
// ordem das recomendações emitidas.
type Rule func(profile *domain.ClinicProfile, indicators *domain.DiagnosticIndicators) *domain.Recommendation

// rules é a tabela ordenada de regras do diagnóstico.
var rules = []Rule{
	digitalPresenceRule,
	localVisibilityRule,
	paidTrafficRule,
	referralProgramRule,
	localMarketingRule,
	conversionRule,
	averageTicketRule,
	operationalRule,
}

// digitalPresenceRule dispara quando a clínica não está nem no Instagram nem
// no Facebook.
func digitalPresenceRule(profile *domain.ClinicProfile, _ *domain.DiagnosticIndicators) *domain.Recommendation {
	if profile.HasChannel(domain.ChannelInstagram) || profile.HasChannel(domain.ChannelFacebook) {
		return nil
	}

	detail := "A clínica não utiliza nenhum canal de captação atualmente. Criar perfis profissionais no Instagram e no Facebook com conteúdo educativo sobre saúde bucal é o primeiro passo para ser encontrada por novos pacientes."
	if len(profile.CanaisAtuais) > 0 {
		detail = fmt.Sprintf(
			"Os canais atuais (%s) não incluem Instagram nem Facebook. Criar perfis profissionais nas duas redes com conteúdo educativo sobre saúde bucal amplia o alcance além dos canais já utilizados.",
			strings.Join(profile.CanaisAtuais, ", "),
		)
	}

	return &domain.Recommendation{
		Category: "Presença Digital",
		Priority: domain.PriorityHigh,
		Action:   "Implementar presença nas redes sociais imediatamente",
		Detail:   detail,
		Impact:   "Clínicas com presença ativa nas redes sociais captam de 2 a 3 vezes mais pacientes novos",
	}
}

// localVisibilityRule dispara quando a clínica não aparece no Google e também
// não faz nenhum marketing online.
func localVisibilityRule(profile *domain.ClinicProfile, _ *domain.DiagnosticIndicators) *domain.Recommendation {
	if profile.HasChannel(domain.ChannelGoogle) || !domain.IsNo(profile.FazMarketingOnline) {
		return nil
	}

	region := "na sua região"
	if profile.Cidade != "" {
		region = fmt.Sprintf("em %s", profile.Cidade)
	}

	return &domain.Recommendation{
		Category: "Visibilidade Local",
		Priority: domain.PriorityHigh,
		Action:   "Configurar o Google Meu Negócio e aparecer nas buscas locais",
		Detail: fmt.Sprintf(
			"Pacientes %s pesquisam por dentista no Google antes de agendar. Sem perfil no Google Meu Negócio e sem marketing online, a clínica fica invisível nessas buscas.",
			region,
		),
		Impact: "O Google Meu Negócio é o canal local de maior conversão e custo zero",
	}
}

// paidTrafficRule dispara quando a clínica não investe em tráfego pago.
// O orçamento sugerido é o maior entre o piso da agência e 3x o ticket médio.
func paidTrafficRule(profile *domain.ClinicProfile, _ *domain.DiagnosticIndicators) *domain.Recommendation {
	if !domain.IsNo(profile.InvesteEmTrafego) {
		return nil
	}

	budget := paidTrafficMinBudget
	if ticket := utils.ParseBRL(profile.TicketMedio); ticket*3 > budget {
		budget = ticket * 3
	}

	focus := "nos procedimentos principais da clínica"
	if profile.ProcedimentoPrincipal != "" {
		focus = fmt.Sprintf("em %s", strings.ToLower(profile.ProcedimentoPrincipal))
	}

	return &domain.Recommendation{
		Category: "Tráfego Pago",
		Priority: domain.PriorityMedium,
		Action:   "Investir em Google Ads e Meta Ads",
		Detail: fmt.Sprintf(
			"Começar com investimento de %s/mês focando %s na sua região, com campanhas segmentadas por localização.",
			utils.FormatBRL(budget),
			focus,
		),
		Impact: fmt.Sprintf("Orçamento sugerido: %s/mês", utils.FormatBRL(budget)),
	}
}

// referralProgramRule dispara quando não há programa de indicações ou quando
// o programa existente gera poucas indicações.
func referralProgramRule(profile *domain.ClinicProfile, _ *domain.DiagnosticIndicators) *domain.Recommendation {
	referrals := utils.ParseCount(profile.IndicacoesMes)
	noProgram := domain.IsNo(profile.TemProgramaIndicacao)

	if !noProgram && referrals >= minReferralsPerMonth {
		return nil
	}

	detail := "A clínica ainda não possui um programa de indicações estruturado. Pacientes satisfeitos são a fonte de captação mais barata: criar incentivos claros para quem indica transforma a base atual em canal ativo."
	if !noProgram {
		detail = fmt.Sprintf(
			"O programa atual gera apenas %d indicações por mês. Com incentivos claros e lembretes no pós-atendimento, a meta é superar %d indicações mensais.",
			referrals,
			minReferralsPerMonth,
		)
	}

	return &domain.Recommendation{
		Category: "Programa de Indicações",
		Priority: domain.PriorityHigh,
		Action:   "Estruturar um programa de indicações ativo",
		Detail:   detail,
		Impact:   "Pacientes indicados fecham tratamentos com o dobro da taxa de conversão",
	}
}

// localMarketingRule dispara quando a clínica mantém menos de duas ações de
// marketing local entre as quatro mapeadas pelo formulário.
func localMarketingRule(profile *domain.ClinicProfile, _ *domain.DiagnosticIndicators) *domain.Recommendation {
	actions := 0
	for _, answer := range []string{
		profile.DistribuiMaterialImpresso,
		profile.ParticipaEventos,
		profile.FachadaDestacada,
		profile.FezRadioOutdoor,
	} {
		if domain.IsYes(answer) {
			actions++
		}
	}

	if actions >= minOfflineActions {
		return nil
	}

	return &domain.Recommendation{
		Category: "Marketing Local",
		Priority: domain.PriorityMedium,
		Action:   "Fortalecer a presença física na região",
		Detail: fmt.Sprintf(
			"Hoje a clínica mantém apenas %d de 4 ações de marketing local (material impresso, eventos, fachada destacada, rádio/outdoor). Bairro e entorno ainda são a principal origem de pacientes para clínicas odontológicas.",
			actions,
		),
		Impact: "A presença física no bairro sustenta a captação que não depende de anúncios",
	}
}

// conversionRule dispara quando a equipe não foi treinada para conversão via
// WhatsApp ou quando o tempo de resposta não é imediato.
func conversionRule(profile *domain.ClinicProfile, _ *domain.DiagnosticIndicators) *domain.Recommendation {
	untrained := domain.IsNo(profile.EquipeTreinadaWhatsApp)
	slowResponse := profile.TempoRespostaWhatsApp != domain.ResponseTimeImmediate

	if !untrained && !slowResponse {
		return nil
	}

	var detail string
	switch {
	case untrained && slowResponse:
		detail = "A equipe não foi treinada para conversão via WhatsApp e o tempo de resposta não é imediato. Cada hora sem resposta derruba a chance de agendamento: padronizar o atendimento e responder na hora é a correção mais barata do funil."
	case untrained:
		detail = "A equipe responde rápido, mas não foi treinada para conversão via WhatsApp. Scripts de atendimento e follow-up estruturado transformam conversas em agendamentos."
	default:
		bucket := profile.TempoRespostaWhatsApp
		if bucket == "" {
			bucket = "não informado"
		}
		detail = fmt.Sprintf(
			"O tempo de resposta atual no WhatsApp (%s) faz a clínica perder pacientes para concorrentes que respondem na hora. A meta é resposta imediata em horário comercial.",
			bucket,
		)
	}

	return &domain.Recommendation{
		Category: "Otimização de Conversão",
		Priority: domain.PriorityHigh,
		Action:   "Treinar a equipe para conversão via WhatsApp",
		Detail:   detail,
		Impact:   "Resposta imediata no WhatsApp até dobra a taxa de agendamento",
	}
}

// averageTicketRule dispara quando o ticket médio está abaixo da referência.
func averageTicketRule(profile *domain.ClinicProfile, _ *domain.DiagnosticIndicators) *domain.Recommendation {
	ticket := utils.ParseBRL(profile.TicketMedio)
	if ticket >= ticketReference {
		return nil
	}

	target := int(float64(ticket) * ticketGrowthFactor)

	return &domain.Recommendation{
		Category: "Aumento do Ticket Médio",
		Priority: domain.PriorityMedium,
		Action:   "Aumentar o valor médio por paciente",
		Detail: fmt.Sprintf(
			"O ticket médio atual (%s) está abaixo da referência de %s. Implementar vendas cruzadas, pacotes de tratamento e procedimentos estéticos complementares eleva o valor por paciente sem aumentar a captação.",
			utils.FormatBRL(ticket),
			utils.FormatBRL(ticketReference),
		),
		Impact: fmt.Sprintf("Meta de ticket médio: %s", utils.FormatBRL(target)),
	}
}

// operationalRule dispara quando a clínica não usa software de gestão ou não
// mantém a agenda organizada.
func operationalRule(profile *domain.ClinicProfile, _ *domain.DiagnosticIndicators) *domain.Recommendation {
	noSoftware := domain.IsNo(profile.UsaSoftwareGestao)
	noSchedule := domain.IsNo(profile.AgendaOrganizada)

	if !noSoftware && !noSchedule {
		return nil
	}

	var detail string
	switch {
	case noSoftware && noSchedule:
		detail = "A clínica não usa software de gestão e a agenda não é organizada. Sem controle de ocupação e de retornos, parte da capacidade instalada fica ociosa todos os meses."
	case noSoftware:
		detail = "A agenda é organizada, mas sem software de gestão não há visão de ocupação, retornos e faturamento por cadeira. Um sistema simples já elimina os controles manuais."
	default:
		detail = "A clínica tem software de gestão, mas a agenda não segue um padrão organizado. Bloquear horários por tipo de procedimento e confirmar consultas reduz faltas e buracos na agenda."
	}

	return &domain.Recommendation{
		Category: "Otimização Operacional",
		Priority: domain.PriorityMedium,
		Action:   "Estruturar a gestão e a agenda da clínica",
		Detail:   detail,
		Impact:   "Uma agenda sob controle recupera capacidade ociosa sem custo de captação",
	}
}
