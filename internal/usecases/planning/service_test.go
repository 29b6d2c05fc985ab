package planning

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focomkt/lead-diagnostics-api/internal/domain"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/diagnosing"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/recommending"
)

func makeRecommendations(priorities ...domain.Priority) []domain.Recommendation {
	recommendations := make([]domain.Recommendation, 0, len(priorities))
	for i, priority := range priorities {
		recommendations = append(recommendations, domain.Recommendation{
			Category: fmt.Sprintf("Categoria %d", i+1),
			Priority: priority,
			Action:   fmt.Sprintf("Ação %d", i+1),
		})
	}
	return recommendations
}

func TestAllocate_HighPriorityOverflowsToSecondPhase(t *testing.T) {
	service := NewService(nil, nil)

	recommendations := makeRecommendations(
		domain.PriorityHigh,
		domain.PriorityHigh,
		domain.PriorityHigh,
		domain.PriorityHigh,
		domain.PriorityHigh,
		domain.PriorityMedium,
		domain.PriorityMedium,
	)

	plan := service.Allocate(recommendations)

	require.Len(t, plan.Phase1, 4)
	for i := 0; i < 4; i++ {
		assert.Equal(t, recommendations[i].Action, plan.Phase1[i].Action)
	}

	require.Len(t, plan.Phase2, 3)
	assert.Equal(t, "Ação 5", plan.Phase2[0].Action)
	assert.Equal(t, "Ação 6", plan.Phase2[1].Action)
	assert.Equal(t, "Ação 7", plan.Phase2[2].Action)

	assert.Empty(t, plan.Phase3)
}

func TestAllocate_LateHighPriorityStaysInSecondPhase(t *testing.T) {
	service := NewService(nil, nil)

	recommendations := makeRecommendations(
		domain.PriorityHigh,
		domain.PriorityHigh,
		domain.PriorityHigh,
		domain.PriorityHigh,
		domain.PriorityMedium,
		domain.PriorityMedium,
		domain.PriorityMedium,
		domain.PriorityMedium,
		domain.PriorityHigh,
	)

	plan := service.Allocate(recommendations)

	require.Len(t, plan.Phase1, 4)
	require.Len(t, plan.Phase2, 5)
	assert.Equal(t, "Ação 9", plan.Phase2[4].Action)
	assert.Empty(t, plan.Phase3)
}

func TestAllocate_ThirdPhaseAbsorbsOverflow(t *testing.T) {
	service := NewService(nil, nil)

	recommendations := makeRecommendations(
		domain.PriorityMedium,
		domain.PriorityMedium,
		domain.PriorityMedium,
		domain.PriorityMedium,
		domain.PriorityLow,
		domain.PriorityMedium,
	)

	plan := service.Allocate(recommendations)

	assert.Empty(t, plan.Phase1)
	require.Len(t, plan.Phase2, 4)
	require.Len(t, plan.Phase3, 2)
	assert.Equal(t, "Ação 5", plan.Phase3[0].Action)
	assert.Equal(t, "Ação 6", plan.Phase3[1].Action)
}

func TestAllocate_PreservesArrivalOrderAcrossPriorities(t *testing.T) {
	service := NewService(nil, nil)

	recommendations := makeRecommendations(
		domain.PriorityMedium,
		domain.PriorityHigh,
		domain.PriorityMedium,
		domain.PriorityHigh,
	)

	plan := service.Allocate(recommendations)

	require.Len(t, plan.Phase1, 2)
	assert.Equal(t, "Ação 2", plan.Phase1[0].Action)
	assert.Equal(t, "Ação 4", plan.Phase1[1].Action)

	require.Len(t, plan.Phase2, 2)
	assert.Equal(t, "Ação 1", plan.Phase2[0].Action)
	assert.Equal(t, "Ação 3", plan.Phase2[1].Action)

	assert.Empty(t, plan.Phase3)
}

func TestAllocate_EmptyInputYieldsEmptyPhases(t *testing.T) {
	plan := NewService(nil, nil).Allocate(nil)

	assert.NotNil(t, plan.Phase1)
	assert.NotNil(t, plan.Phase2)
	assert.NotNil(t, plan.Phase3)
	assert.Empty(t, plan.Phase1)
	assert.Empty(t, plan.Phase2)
	assert.Empty(t, plan.Phase3)
}

func referenceProfile() *domain.ClinicProfile {
	return &domain.ClinicProfile{
		NomeClinica:            "Clínica Sorriso Perfeito",
		Cidade:                 "Curitiba",
		NumeroCadeiras:         "3",
		ProcedimentoPrincipal:  "Implantes",
		FaturamentoAtual:       "R$ 50.000",
		FaturamentoMeta:        "R$ 100.000",
		TicketMedio:            "R$ 500",
		PacientesMes:           "100",
		FazMarketingOnline:     "não",
		InvesteEmTrafego:       "não",
		TemProgramaIndicacao:   "não",
		EquipeTreinadaWhatsApp: "não",
		UsaSoftwareGestao:      "não",
		AgendaOrganizada:       "não",
	}
}

func newFullService() *Service {
	return NewService(diagnosing.NewService(nil), recommending.NewService())
}

func TestBuildStrategicPlan_EndToEnd(t *testing.T) {
	plan := newFullService().BuildStrategicPlan(referenceProfile())

	assert.Equal(t, "Clínica Sorriso Perfeito", plan.NomeClinica)
	assert.Equal(t, 50000, plan.Diagnostico.RevenueGap)
	assert.Equal(t, 100.0, plan.Diagnostico.GrowthPercent)
	assert.Equal(t, 100, plan.Diagnostico.PatientsNeeded)
	assert.Equal(t, 1320, plan.Diagnostico.MaxCapacity)
	assert.Equal(t, 7.6, plan.Diagnostico.UtilizationPercent)

	require.Len(t, plan.Recomendacoes, 8)

	require.Len(t, plan.PlanoExecucao.Phase1, 4)
	for _, rec := range plan.PlanoExecucao.Phase1 {
		assert.Equal(t, domain.PriorityHigh, rec.Priority)
	}
	require.Len(t, plan.PlanoExecucao.Phase2, 4)
	assert.Empty(t, plan.PlanoExecucao.Phase3)

	total := len(plan.PlanoExecucao.Phase1) + len(plan.PlanoExecucao.Phase2) + len(plan.PlanoExecucao.Phase3)
	assert.Equal(t, len(plan.Recomendacoes), total)
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "plano-estrategico-clínica-sorriso-perfeito.txt", ExportFilename("Clínica Sorriso Perfeito"))
	assert.Equal(t, "plano-estrategico-odonto-prime.txt", ExportFilename("  Odonto   Prime  "))
}

func TestRenderPlanText(t *testing.T) {
	profile := referenceProfile()
	plan := newFullService().BuildStrategicPlan(profile)

	text := RenderPlanText(profile, plan)

	assert.Contains(t, text, "PLANO ESTRATÉGICO - Clínica Sorriso Perfeito")
	assert.Contains(t, text, "- Faturamento atual: R$ 50.000")
	assert.Contains(t, text, "- Gap de faturamento: R$ 50.000")
	assert.Contains(t, text, "- Crescimento necessário: 100%")
	assert.Contains(t, text, "- Utilização de capacidade: 7.6%")
	assert.Contains(t, text, "SITUAÇÃO ATUAL:")
	assert.Contains(t, text, "- Faz marketing online: não")
	assert.Contains(t, text, "RECOMENDAÇÕES:")
	assert.Contains(t, text, "[Alta] Presença Digital:")
	assert.Contains(t, text, "  Impacto: Orçamento sugerido: R$ 1.500/mês")
	assert.Contains(t, text, "PRIMEIROS 30 DIAS:")
	assert.Contains(t, text, "DIAS 31 A 60:")
	assert.Contains(t, text, "DIAS 61 A 90:")
	assert.Contains(t, text, "- (sem ações nesta fase)")
	assert.Contains(t, text, "Gerado por Foco Marketing")
}

func TestRenderPlanText_EmptyRecommendations(t *testing.T) {
	profile := &domain.ClinicProfile{NomeClinica: "Clínica Completa"}
	plan := &domain.StrategicPlan{
		NomeClinica: "Clínica Completa",
		PlanoExecucao: domain.ImplementationPlan{
			Phase1: []domain.Recommendation{},
			Phase2: []domain.Recommendation{},
			Phase3: []domain.Recommendation{},
		},
	}

	text := RenderPlanText(profile, plan)

	assert.Contains(t, text, "Nenhuma recomendação")
	assert.Contains(t, text, "- Faz marketing online: não informado")
}
