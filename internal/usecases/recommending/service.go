package recommending

import (
	"github.com/focomkt/lead-diagnostics-api/internal/domain"
)

// Recommender avalia o perfil da clínica e produz a lista ordenada de
// recomendações do plano estratégico.
type Recommender interface {
	Recommend(profile *domain.ClinicProfile, indicators *domain.DiagnosticIndicators) []domain.Recommendation
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Recommend percorre a tabela de regras na ordem declarada e acumula as que
// dispararem. Uma clínica madura em todas as frentes recebe uma lista vazia,
// e o chamador decide como apresentar esse caso.
func (s *Service) Recommend(profile *domain.ClinicProfile, indicators *domain.DiagnosticIndicators) []domain.Recommendation {
	recommendations := make([]domain.Recommendation, 0, len(rules))

	for _, rule := range rules {
		if recommendation := rule(profile, indicators); recommendation != nil {
			recommendations = append(recommendations, *recommendation)
		}
	}

	return recommendations
}
