package reporting

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/focomkt/lead-diagnostics-api/infrastructure/repository/mocks"
	"github.com/focomkt/lead-diagnostics-api/internal/domain"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/diagnosing"
)

func leadWithRevenue(current, target string) *domain.Lead {
	return &domain.Lead{
		Profile: domain.ClinicProfile{
			NomeClinica:      "Clínica Teste",
			FaturamentoAtual: current,
			FaturamentoMeta:  target,
		},
	}
}

func TestGetLeadStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	leadRepository := repomocks.NewMockLeadRepository(ctrl)

	leadRepository.EXPECT().CountAll().Return(12, nil)
	leadRepository.EXPECT().CountByState().Return([]domain.StateCount{
		{Estado: "PR", Count: 7},
		{Estado: "SP", Count: 5},
	}, nil)
	leadRepository.EXPECT().CountByMonth().Return([]domain.MonthCount{
		{Month: "08-2026", Count: 12},
	}, nil)
	leadRepository.EXPECT().List(gomock.Any()).Return([]*domain.Lead{
		leadWithRevenue("R$ 50.000", "R$ 100.000"),
		leadWithRevenue("R$ 80.000", "R$ 95.000"),
	}, nil)

	service := NewService(leadRepository, diagnosing.NewService(nil))

	stats, err := service.GetLeadStats()

	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalLeads)
	assert.Len(t, stats.ByState, 2)
	assert.Len(t, stats.ByMonth, 1)
	assert.Equal(t, 32500.0, stats.AverageGap)
	assert.False(t, stats.GeneratedAt.IsZero())
}

func TestGetLeadStats_NoLeadsInCurrentMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	leadRepository := repomocks.NewMockLeadRepository(ctrl)

	leadRepository.EXPECT().CountAll().Return(0, nil)
	leadRepository.EXPECT().CountByState().Return([]domain.StateCount{}, nil)
	leadRepository.EXPECT().CountByMonth().Return([]domain.MonthCount{}, nil)
	leadRepository.EXPECT().List(gomock.Any()).Return([]*domain.Lead{}, nil)

	service := NewService(leadRepository, diagnosing.NewService(nil))

	stats, err := service.GetLeadStats()

	require.NoError(t, err)
	assert.Zero(t, stats.TotalLeads)
	assert.Zero(t, stats.AverageGap)
}

func TestGetLeadStats_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	leadRepository := repomocks.NewMockLeadRepository(ctrl)

	leadRepository.EXPECT().CountAll().Return(0, errors.New("conexão recusada"))

	service := NewService(leadRepository, diagnosing.NewService(nil))

	stats, err := service.GetLeadStats()

	assert.Nil(t, stats)
	assert.Error(t, err)
}
