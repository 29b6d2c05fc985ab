package planning

import (
	"github.com/focomkt/lead-diagnostics-api/internal/domain"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/diagnosing"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/recommending"
)

// Capacidade das duas primeiras janelas do plano de implementação.
// A terceira janela absorve todo o excedente.
const (
	phase1Capacity = 4
	phase2Capacity = 4
)

// Planner monta o plano estratégico completo a partir do perfil da clínica.
type Planner interface {
	BuildStrategicPlan(profile *domain.ClinicProfile) *domain.StrategicPlan
	Allocate(recommendations []domain.Recommendation) domain.ImplementationPlan
}

type Service struct {
	diagnoser   diagnosing.Diagnoser
	recommender recommending.Recommender
}

func NewService(diagnoser diagnosing.Diagnoser, recommender recommending.Recommender) *Service {
	return &Service{
		diagnoser:   diagnoser,
		recommender: recommender,
	}
}

// BuildStrategicPlan recalcula indicadores e recomendações a partir do perfil
// e distribui as recomendações nas três fases de implementação. O plano nunca
// é persistido; qualquer mudança nas regras vale imediatamente para todos os
// leads já cadastrados.
func (s *Service) BuildStrategicPlan(profile *domain.ClinicProfile) *domain.StrategicPlan {
	indicators := s.diagnoser.Calculate(profile)
	recommendations := s.recommender.Recommend(profile, indicators)

	return &domain.StrategicPlan{
		NomeClinica:   profile.NomeClinica,
		Diagnostico:   *indicators,
		Recomendacoes: recommendations,
		PlanoExecucao: s.Allocate(recommendations),
	}
}

// Allocate distribui as recomendações nas três janelas de 30 dias por ordem
// de chegada. As de prioridade Alta preenchem a primeira fase até o limite e
// transbordam para a segunda sem limite; as demais entram na segunda fase até
// o limite e o excedente vai para a terceira, sempre preservando a ordem
// relativa original dentro de cada fase.
func (s *Service) Allocate(recommendations []domain.Recommendation) domain.ImplementationPlan {
	plan := domain.ImplementationPlan{
		Phase1: []domain.Recommendation{},
		Phase2: []domain.Recommendation{},
		Phase3: []domain.Recommendation{},
	}

	for _, recommendation := range recommendations {
		if recommendation.Priority == domain.PriorityHigh {
			if len(plan.Phase1) < phase1Capacity {
				plan.Phase1 = append(plan.Phase1, recommendation)
			} else {
				plan.Phase2 = append(plan.Phase2, recommendation)
			}
			continue
		}

		if len(plan.Phase2) < phase2Capacity {
			plan.Phase2 = append(plan.Phase2, recommendation)
		} else {
			plan.Phase3 = append(plan.Phase3, recommendation)
		}
	}

	return plan
}
