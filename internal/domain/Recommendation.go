package domain

// Priority é o nível de prioridade de uma recomendação.
// A ordenação é Alta > Média > Baixa.
type Priority string

const (
	PriorityHigh   Priority = "Alta"
	PriorityMedium Priority = "Média"
	PriorityLow    Priority = "Baixa"
)

// Weight retorna o peso numérico da prioridade para comparação.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Recommendation é uma recomendação emitida pelo motor de regras. O campo
// Detail interpola os valores do perfil que fizeram a regra disparar, então
// perfis diferentes produzem textos diferentes para a mesma regra.
type Recommendation struct {
	Category string   `json:"categoria"`
	Priority Priority `json:"prioridade"`
	Action   string   `json:"acao"`
	Detail   string   `json:"detalhes"`
	Impact   string   `json:"impacto_estimado,omitempty"`
}
