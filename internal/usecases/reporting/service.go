package reporting

import (
	"time"

	"github.com/pkg/errors"

	"github.com/focomkt/lead-diagnostics-api/infrastructure/repository"
	"github.com/focomkt/lead-diagnostics-api/internal/domain"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/diagnosing"
	"github.com/focomkt/lead-diagnostics-api/pkg/utils"
)

// Reporter agrega os números de captação exibidos no painel da agência.
type Reporter interface {
	GetLeadStats() (*domain.LeadStats, error)
}

type Service struct {
	leadRepository repository.LeadRepository
	diagnoser      diagnosing.Diagnoser
}

func NewService(leadRepository repository.LeadRepository, diagnoser diagnosing.Diagnoser) Reporter {
	return &Service{
		leadRepository: leadRepository,
		diagnoser:      diagnoser,
	}
}

// GetLeadStats monta o painel de captação: total acumulado, distribuição por
// estado e por mês e o gap médio de faturamento dos leads do mês corrente.
// O gap é recalculado a partir dos perfis persistidos, nunca armazenado.
func (s *Service) GetLeadStats() (*domain.LeadStats, error) {
	total, err := s.leadRepository.CountAll()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar leads")
	}

	byState, err := s.leadRepository.CountByState()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agrupar leads por estado")
	}

	byMonth, err := s.leadRepository.CountByMonth()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agrupar leads por mês")
	}

	averageGap, err := s.averageGapForCurrentMonth()
	if err != nil {
		return nil, err
	}

	return &domain.LeadStats{
		TotalLeads:  total,
		ByState:     byState,
		ByMonth:     byMonth,
		AverageGap:  averageGap,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func (s *Service) averageGapForCurrentMonth() (float64, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	leads, err := s.leadRepository.List(repository.LeadFilters{From: &monthStart})
	if err != nil {
		return 0, errors.Wrap(err, "erro ao listar leads do mês corrente")
	}

	if len(leads) == 0 {
		return 0, nil
	}

	var sum int
	for _, lead := range leads {
		indicators := s.diagnoser.Calculate(&lead.Profile)
		sum += indicators.RevenueGap
	}

	average := float64(sum) / float64(len(leads))

	return utils.RoundWithTwoDecimalPlace(average), nil
}
