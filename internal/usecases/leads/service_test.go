package leads

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mailermocks "github.com/focomkt/lead-diagnostics-api/infrastructure/integrator/mailer/mocks"
	"github.com/focomkt/lead-diagnostics-api/infrastructure/repository"
	repomocks "github.com/focomkt/lead-diagnostics-api/infrastructure/repository/mocks"
	"github.com/focomkt/lead-diagnostics-api/internal/config"
	"github.com/focomkt/lead-diagnostics-api/internal/domain"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/diagnosing"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/planning"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/recommending"
)

func validProfile() *domain.ClinicProfile {
	return &domain.ClinicProfile{
		NomeClinica:      "Clínica Sorriso",
		Telefone:         "(41) 99999-0000",
		Cidade:           "Curitiba",
		Estado:           "PR",
		NumeroCadeiras:   "3",
		FaturamentoAtual: "R$ 50.000",
		FaturamentoMeta:  "R$ 100.000",
		TicketMedio:      "R$ 500",
		PacientesMes:     "100",
	}
}

func newTestService(t *testing.T) (*Service, *repomocks.MockLeadRepository, *mailermocks.MockNotifier) {
	ctrl := gomock.NewController(t)
	leadRepository := repomocks.NewMockLeadRepository(ctrl)
	notifier := mailermocks.NewMockNotifier(ctrl)

	cfg := &config.Config{}
	planner := planning.NewService(diagnosing.NewService(cfg), recommending.NewService())

	service := &Service{
		cfg:            cfg,
		leadRepository: leadRepository,
		notifier:       notifier,
		planner:        planner,
	}

	return service, leadRepository, notifier
}

func TestSubmit_PersistsLeadWithPendingNotification(t *testing.T) {
	service, leadRepository, _ := newTestService(t)

	leadRepository.EXPECT().GetByTelefone("(41) 99999-0000").Return(nil, nil)
	leadRepository.EXPECT().
		SaveOrReplace(gomock.Any()).
		DoAndReturn(func(lead *domain.Lead) (*domain.Lead, error) {
			assert.Len(t, lead.ID, 6)
			assert.Equal(t, "Clínica Sorriso", lead.Profile.NomeClinica)
			assert.Equal(t, domain.NotificationPending, lead.NotificationStatus)
			assert.Zero(t, lead.NotificationAttempts)
			return lead, nil
		})

	lead, err := service.Submit(validProfile())

	require.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
}

func TestSubmit_RejectsMissingRequiredFields(t *testing.T) {
	service, _, _ := newTestService(t)

	tests := []struct {
		name   string
		mutate func(p *domain.ClinicProfile)
	}{
		{"sem nome da clínica", func(p *domain.ClinicProfile) { p.NomeClinica = "" }},
		{"nome só com espaços", func(p *domain.ClinicProfile) { p.NomeClinica = "   " }},
		{"sem telefone", func(p *domain.ClinicProfile) { p.Telefone = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile()
			tt.mutate(profile)

			lead, err := service.Submit(profile)

			assert.Nil(t, lead)
			assert.ErrorIs(t, err, ErrMissingRequiredData)
		})
	}
}

func TestSubmit_RepositoryFailureStopsSubmission(t *testing.T) {
	service, leadRepository, _ := newTestService(t)

	leadRepository.EXPECT().GetByTelefone(gomock.Any()).Return(nil, nil)
	leadRepository.EXPECT().
		SaveOrReplace(gomock.Any()).
		Return(nil, errors.New("conexão recusada"))

	lead, err := service.Submit(validProfile())

	assert.Nil(t, lead)
	assert.Error(t, err)
}

func TestSubmit_ResubmissionKeepsOriginalID(t *testing.T) {
	service, leadRepository, _ := newTestService(t)

	existing := &domain.Lead{ID: "abc123", Profile: *validProfile()}
	leadRepository.EXPECT().GetByTelefone("(41) 99999-0000").Return(existing, nil)
	leadRepository.EXPECT().
		SaveOrReplace(gomock.Any()).
		DoAndReturn(func(lead *domain.Lead) (*domain.Lead, error) {
			assert.Equal(t, "abc123", lead.ID)
			assert.Equal(t, domain.NotificationPending, lead.NotificationStatus)
			return lead, nil
		})

	lead, err := service.Submit(validProfile())

	require.NoError(t, err)
	assert.Equal(t, "abc123", lead.ID)
}

func TestNotifyAndMark_MarksSentOnSuccess(t *testing.T) {
	service, leadRepository, notifier := newTestService(t)

	lead := &domain.Lead{ID: "abc123", Profile: *validProfile()}

	notifier.EXPECT().NotifyNewLead(lead).Return(nil)
	leadRepository.EXPECT().
		UpdateNotificationStatus("abc123", domain.NotificationSent, 1).
		Return(nil)

	service.notifyAndMark(lead)
}

func TestNotifyAndMark_MarksFailedAndCountsAttempt(t *testing.T) {
	service, leadRepository, notifier := newTestService(t)

	lead := &domain.Lead{ID: "abc123", Profile: *validProfile(), NotificationAttempts: 2}

	notifier.EXPECT().NotifyNewLead(lead).Return(errors.New("timeout"))
	leadRepository.EXPECT().
		UpdateNotificationStatus("abc123", domain.NotificationFailed, 3).
		Return(nil)

	service.notifyAndMark(lead)
}

func TestGet_ReturnsNotFoundForUnknownID(t *testing.T) {
	service, leadRepository, _ := newTestService(t)

	leadRepository.EXPECT().GetByID("naoexiste").Return(nil, nil)

	lead, err := service.Get("naoexiste")

	assert.Nil(t, lead)
	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestGet_ReturnsLead(t *testing.T) {
	service, leadRepository, _ := newTestService(t)

	stored := &domain.Lead{ID: "abc123", Profile: *validProfile()}
	leadRepository.EXPECT().GetByID("abc123").Return(stored, nil)

	lead, err := service.Get("abc123")

	require.NoError(t, err)
	assert.Equal(t, stored, lead)
}

func TestList_DelegatesFilters(t *testing.T) {
	service, leadRepository, _ := newTestService(t)

	filters := repository.LeadFilters{Estado: "PR"}
	leadRepository.EXPECT().List(filters).Return([]*domain.Lead{}, nil)

	leads, err := service.List(filters)

	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestGetStrategicPlan_RecomputesFromProfile(t *testing.T) {
	service, leadRepository, _ := newTestService(t)

	stored := &domain.Lead{ID: "abc123", Profile: *validProfile()}
	leadRepository.EXPECT().GetByID("abc123").Return(stored, nil)

	plan, err := service.GetStrategicPlan("abc123")

	require.NoError(t, err)
	assert.Equal(t, "Clínica Sorriso", plan.NomeClinica)
	assert.Equal(t, 50000, plan.Diagnostico.RevenueGap)
	assert.NotEmpty(t, plan.Recomendacoes)
}

func TestGetStrategicPlan_PropagatesNotFound(t *testing.T) {
	service, leadRepository, _ := newTestService(t)

	leadRepository.EXPECT().GetByID("naoexiste").Return(nil, nil)

	plan, err := service.GetStrategicPlan("naoexiste")

	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrLeadNotFound)
}

func TestExportStrategicPlan(t *testing.T) {
	service, leadRepository, _ := newTestService(t)

	stored := &domain.Lead{ID: "abc123", Profile: *validProfile()}
	leadRepository.EXPECT().GetByID("abc123").Return(stored, nil)

	export, err := service.ExportStrategicPlan("abc123")

	require.NoError(t, err)
	assert.Equal(t, "plano-estrategico-clínica-sorriso.txt", export.Filename)
	assert.Contains(t, export.Content, "PLANO ESTRATÉGICO - Clínica Sorriso")
	assert.Contains(t, export.Content, "Gerado por Foco Marketing")
}
