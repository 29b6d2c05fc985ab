package domain

// ImplementationPlan distribui as recomendações em três janelas fixas de 30
// dias. A alocação preserva a ordem de chegada das recomendações; nenhuma
// fase reordena por prioridade depois de alocada.
type ImplementationPlan struct {
	Phase1 []Recommendation `json:"primeiros_30_dias"`
	Phase2 []Recommendation `json:"dias_31_a_60"`
	Phase3 []Recommendation `json:"dias_61_a_90"`
}

// StrategicPlan é a resposta completa da página de resultado: indicadores,
// lista de recomendações na ordem de avaliação das regras e o plano de
// implementação em fases.
type StrategicPlan struct {
	NomeClinica   string               `json:"nome_clinica"`
	Diagnostico   DiagnosticIndicators `json:"diagnostico"`
	Recomendacoes []Recommendation     `json:"recomendacoes"`
	PlanoExecucao ImplementationPlan   `json:"plano_execucao"`
}
