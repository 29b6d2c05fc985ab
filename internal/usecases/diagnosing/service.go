// Package diagnosing deriva os indicadores numéricos do diagnóstico a partir
// dos dados autodeclarados pela clínica. O cálculo é puro e total: entrada
// malformada vira zero, nunca erro, para que a página de resultado sempre
// renderize algo.
package diagnosing

import (
	"math"

	"github.com/focomkt/lead-diagnostics-api/internal/config"
	"github.com/focomkt/lead-diagnostics-api/internal/domain"
	"github.com/focomkt/lead-diagnostics-api/pkg/utils"
)

// Premissas de capacidade usadas quando a configuração não define valores.
const (
	DefaultPatientsPerChairPerDay = 20
	DefaultWorkingDaysPerMonth    = 22
)

// Diagnoser calcula os indicadores do diagnóstico para um perfil de clínica.
type Diagnoser interface {
	Calculate(profile *domain.ClinicProfile) *domain.DiagnosticIndicators
}

type Service struct {
	patientsPerChairPerDay int
	workingDaysPerMonth    int
}

func NewService(cfg *config.Config) Diagnoser {
	patientsPerChair := DefaultPatientsPerChairPerDay
	workingDays := DefaultWorkingDaysPerMonth

	if cfg != nil {
		if cfg.Capacity.PatientsPerChairPerDay > 0 {
			patientsPerChair = cfg.Capacity.PatientsPerChairPerDay
		}
		if cfg.Capacity.WorkingDaysPerMonth > 0 {
			workingDays = cfg.Capacity.WorkingDaysPerMonth
		}
	}

	return &Service{
		patientsPerChairPerDay: patientsPerChair,
		workingDaysPerMonth:    workingDays,
	}
}

// Calculate deriva os quatro indicadores do perfil. O gap pode ser negativo
// quando a meta é menor que o faturamento atual; as divisões são protegidas
// substituindo zero quando o denominador está ausente.
func (s *Service) Calculate(profile *domain.ClinicProfile) *domain.DiagnosticIndicators {
	currentRevenue := utils.ParseBRL(profile.FaturamentoAtual)
	targetRevenue := utils.ParseBRL(profile.FaturamentoMeta)
	averageTicket := utils.ParseBRL(profile.TicketMedio)
	monthlyPatients := utils.ParseCount(profile.PacientesMes)
	chairCount := utils.ParseCount(profile.NumeroCadeiras)

	revenueGap := targetRevenue - currentRevenue

	var growthPercent float64
	if currentRevenue > 0 {
		growthPercent = utils.RoundWithOneDecimalPlace(float64(revenueGap) / float64(currentRevenue) * 100)
	}

	var patientsNeeded int
	if averageTicket > 0 {
		patientsNeeded = int(math.Ceil(float64(revenueGap) / float64(averageTicket)))
	}

	maxCapacity := chairCount * s.patientsPerChairPerDay * s.workingDaysPerMonth

	var utilizationPercent float64
	if maxCapacity > 0 {
		utilizationPercent = utils.RoundWithOneDecimalPlace(float64(monthlyPatients) / float64(maxCapacity) * 100)
	}

	return &domain.DiagnosticIndicators{
		RevenueGap:         revenueGap,
		GrowthPercent:      growthPercent,
		PatientsNeeded:     patientsNeeded,
		MaxCapacity:        maxCapacity,
		UtilizationPercent: utilizationPercent,
	}
}
