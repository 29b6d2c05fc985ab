package domain

// DiagnosticIndicators reúne os quatro indicadores derivados do perfil da
// clínica. Os valores são recalculados a cada consulta e nunca persistidos;
// percentuais são arredondados para uma casa decimal.
type DiagnosticIndicators struct {
	// RevenueGap é a diferença entre a meta e o faturamento atual, em reais.
	// Pode ser negativo quando a meta é menor que o faturamento atual.
	RevenueGap int `json:"gap_faturamento"`

	// GrowthPercent é o crescimento percentual necessário para atingir a
	// meta. Zero quando o faturamento atual é zero ou não informado.
	GrowthPercent float64 `json:"crescimento_necessario"`

	// PatientsNeeded é a quantidade adicional de pacientes por mês para
	// fechar o gap, assumindo o ticket médio informado.
	PatientsNeeded int `json:"pacientes_necessarios"`

	// MaxCapacity é a capacidade teórica mensal de atendimento
	// (cadeiras x pacientes por cadeira/dia x dias úteis).
	MaxCapacity int `json:"capacidade_maxima"`

	// UtilizationPercent é o percentual da capacidade máxima efetivamente
	// utilizado hoje. Zero quando não há cadeiras informadas.
	UtilizationPercent float64 `json:"utilizacao_atual"`
}
