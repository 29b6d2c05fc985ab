package recommending

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focomkt/lead-diagnostics-api/internal/domain"
)

func baselineProfile() *domain.ClinicProfile {
	return &domain.ClinicProfile{
		NomeClinica:               "Clínica Sorriso",
		Cidade:                    "Curitiba",
		Estado:                    "PR",
		NumeroCadeiras:            "3",
		ProcedimentoPrincipal:     "Implantes",
		FaturamentoAtual:          "R$ 50.000",
		FaturamentoMeta:           "R$ 100.000",
		TicketMedio:               "R$ 500",
		PacientesMes:              "100",
		FazMarketingOnline:        "não",
		CanaisAtuais:              []string{},
		InvesteEmTrafego:          "não",
		DistribuiMaterialImpresso: "não",
		ParticipaEventos:          "não",
		FachadaDestacada:          "não",
		FezRadioOutdoor:           "não",
		TemProgramaIndicacao:      "não",
		IndicacoesMes:             "0",
		EquipeTreinadaWhatsApp:    "não",
		TempoRespostaWhatsApp:     "algumas horas",
		UsaSoftwareGestao:         "não",
		AgendaOrganizada:          "não",
	}
}

func TestRecommend_AllRulesFireInOrder(t *testing.T) {
	service := NewService()

	recommendations := service.Recommend(baselineProfile(), &domain.DiagnosticIndicators{})

	require.Len(t, recommendations, 8)

	expected := []struct {
		category string
		priority domain.Priority
	}{
		{"Presença Digital", domain.PriorityHigh},
		{"Visibilidade Local", domain.PriorityHigh},
		{"Tráfego Pago", domain.PriorityMedium},
		{"Programa de Indicações", domain.PriorityHigh},
		{"Marketing Local", domain.PriorityMedium},
		{"Otimização de Conversão", domain.PriorityHigh},
		{"Aumento do Ticket Médio", domain.PriorityMedium},
		{"Otimização Operacional", domain.PriorityMedium},
	}

	for i, want := range expected {
		assert.Equal(t, want.category, recommendations[i].Category)
		assert.Equal(t, want.priority, recommendations[i].Priority)
		assert.NotEmpty(t, recommendations[i].Action)
		assert.NotEmpty(t, recommendations[i].Detail)
		assert.NotEmpty(t, recommendations[i].Impact)
	}
}

func TestRecommend_MatureClinicGetsNoRecommendations(t *testing.T) {
	profile := &domain.ClinicProfile{
		NomeClinica:               "Clínica Completa",
		Cidade:                    "São Paulo",
		FaturamentoAtual:          "R$ 120.000",
		FaturamentoMeta:           "R$ 150.000",
		TicketMedio:               "R$ 1.200",
		PacientesMes:              "300",
		FazMarketingOnline:        "sim",
		CanaisAtuais:              []string{domain.ChannelInstagram, domain.ChannelGoogle},
		InvesteEmTrafego:          "sim",
		DistribuiMaterialImpresso: "sim",
		ParticipaEventos:          "sim",
		FachadaDestacada:          "não",
		FezRadioOutdoor:           "não",
		TemProgramaIndicacao:      "sim",
		IndicacoesMes:             "15",
		EquipeTreinadaWhatsApp:    "sim",
		TempoRespostaWhatsApp:     domain.ResponseTimeImmediate,
		UsaSoftwareGestao:         "sim",
		AgendaOrganizada:          "sim",
	}

	recommendations := NewService().Recommend(profile, &domain.DiagnosticIndicators{})

	assert.Empty(t, recommendations)
}

func TestDigitalPresenceRule(t *testing.T) {
	tests := []struct {
		name     string
		channels []string
		fires    bool
	}{
		{"sem canais", nil, true},
		{"apenas Facebook", []string{domain.ChannelFacebook}, false},
		{"apenas Instagram", []string{domain.ChannelInstagram}, false},
		{"canais sem redes sociais", []string{domain.ChannelGoogle, domain.ChannelIndicacao}, true},
		{"variação de caixa não conta", []string{"instagram"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := baselineProfile()
			profile.CanaisAtuais = tt.channels

			recommendation := digitalPresenceRule(profile, nil)

			if tt.fires {
				require.NotNil(t, recommendation)
				assert.Equal(t, domain.PriorityHigh, recommendation.Priority)
			} else {
				assert.Nil(t, recommendation)
			}
		})
	}
}

func TestDigitalPresenceRule_MentionsCurrentChannels(t *testing.T) {
	profile := baselineProfile()
	profile.CanaisAtuais = []string{domain.ChannelGoogle, domain.ChannelWhatsApp}

	recommendation := digitalPresenceRule(profile, nil)

	require.NotNil(t, recommendation)
	assert.Contains(t, recommendation.Detail, "Google, WhatsApp")
}

func TestLocalVisibilityRule(t *testing.T) {
	tests := []struct {
		name      string
		channels  []string
		marketing string
		fires     bool
	}{
		{"sem Google e sem marketing", nil, "não", true},
		{"sem Google e sem marketing, sem acento", nil, "nao", true},
		{"já aparece no Google", []string{domain.ChannelGoogle}, "não", false},
		{"já faz marketing online", nil, "sim", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := baselineProfile()
			profile.CanaisAtuais = tt.channels
			profile.FazMarketingOnline = tt.marketing

			recommendation := localVisibilityRule(profile, nil)

			if tt.fires {
				require.NotNil(t, recommendation)
				assert.Contains(t, recommendation.Detail, "Curitiba")
			} else {
				assert.Nil(t, recommendation)
			}
		})
	}
}

func TestPaidTrafficRule_BudgetFloor(t *testing.T) {
	profile := baselineProfile()
	profile.TicketMedio = "R$ 300"

	recommendation := paidTrafficRule(profile, nil)

	require.NotNil(t, recommendation)
	assert.Contains(t, recommendation.Detail, "R$ 1.500/mês")
	assert.Contains(t, recommendation.Detail, "implantes")
}

func TestPaidTrafficRule_BudgetScalesWithTicket(t *testing.T) {
	profile := baselineProfile()
	profile.TicketMedio = "R$ 900"

	recommendation := paidTrafficRule(profile, nil)

	require.NotNil(t, recommendation)
	assert.Contains(t, recommendation.Detail, "R$ 2.700/mês")
}

func TestPaidTrafficRule_SkipsWhenAlreadyInvesting(t *testing.T) {
	profile := baselineProfile()
	profile.InvesteEmTrafego = "sim"

	assert.Nil(t, paidTrafficRule(profile, nil))
}

func TestReferralProgramRule(t *testing.T) {
	tests := []struct {
		name       string
		hasProgram string
		referrals  string
		fires      bool
	}{
		{"sem programa", "não", "0", true},
		{"programa fraco", "sim", "4", true},
		{"programa no limite", "sim", "10", false},
		{"programa forte", "sim", "25", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := baselineProfile()
			profile.TemProgramaIndicacao = tt.hasProgram
			profile.IndicacoesMes = tt.referrals

			recommendation := referralProgramRule(profile, nil)

			if tt.fires {
				require.NotNil(t, recommendation)
			} else {
				assert.Nil(t, recommendation)
			}
		})
	}
}

func TestLocalMarketingRule_CountsOfflineActions(t *testing.T) {
	profile := baselineProfile()
	profile.DistribuiMaterialImpresso = "sim"

	recommendation := localMarketingRule(profile, nil)

	require.NotNil(t, recommendation)
	assert.Contains(t, recommendation.Detail, "1 de 4")

	profile.ParticipaEventos = "sim"
	assert.Nil(t, localMarketingRule(profile, nil))
}

func TestConversionRule(t *testing.T) {
	tests := []struct {
		name         string
		trained      string
		responseTime string
		fires        bool
	}{
		{"sem treino e resposta lenta", "não", "algumas horas", true},
		{"sem treino com resposta imediata", "não", domain.ResponseTimeImmediate, true},
		{"treinada com resposta lenta", "sim", "no mesmo dia", true},
		{"treinada com resposta imediata", "sim", domain.ResponseTimeImmediate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := baselineProfile()
			profile.EquipeTreinadaWhatsApp = tt.trained
			profile.TempoRespostaWhatsApp = tt.responseTime

			recommendation := conversionRule(profile, nil)

			if tt.fires {
				require.NotNil(t, recommendation)
			} else {
				assert.Nil(t, recommendation)
			}
		})
	}
}

func TestAverageTicketRule(t *testing.T) {
	profile := baselineProfile()
	profile.TicketMedio = "R$ 500"

	recommendation := averageTicketRule(profile, nil)

	require.NotNil(t, recommendation)
	assert.Contains(t, recommendation.Detail, "R$ 500")
	assert.Contains(t, recommendation.Impact, "R$ 650")

	profile.TicketMedio = "R$ 800"
	assert.Nil(t, averageTicketRule(profile, nil))
}

func TestOperationalRule(t *testing.T) {
	tests := []struct {
		name     string
		software string
		schedule string
		fires    bool
	}{
		{"sem software e sem agenda", "não", "não", true},
		{"apenas sem software", "não", "sim", true},
		{"apenas agenda desorganizada", "sim", "não", true},
		{"gestão em ordem", "sim", "sim", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := baselineProfile()
			profile.UsaSoftwareGestao = tt.software
			profile.AgendaOrganizada = tt.schedule

			recommendation := operationalRule(profile, nil)

			if tt.fires {
				require.NotNil(t, recommendation)
			} else {
				assert.Nil(t, recommendation)
			}
		})
	}
}
