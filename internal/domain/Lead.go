package domain

import "time"

// NotificationStatus indica a situação do e-mail de notificação enviado à
// equipe comercial quando um novo diagnóstico é submetido.
type NotificationStatus string

const (
	NotificationPending NotificationStatus = "pendente"
	NotificationSent    NotificationStatus = "enviada"
	NotificationFailed  NotificationStatus = "falha"
)

// Lead é o envelope persistido de uma submissão do formulário de diagnóstico.
// O perfil é imutável depois de submetido: uma nova submissão do mesmo
// telefone sobrescreve o registro inteiro, nunca o altera parcialmente.
type Lead struct {
	ID                   string             `json:"id"`
	Profile              ClinicProfile      `json:"perfil"`
	NotificationStatus   NotificationStatus `json:"notification_status"`
	NotificationAttempts int                `json:"notification_attempts"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

// LeadStats agrega números de captação para o painel da agência.
type LeadStats struct {
	TotalLeads  int          `json:"total_leads"`
	ByState     []StateCount `json:"por_estado"`
	ByMonth     []MonthCount `json:"por_mes"`
	AverageGap  float64      `json:"gap_medio"`
	GeneratedAt time.Time    `json:"gerado_em"`
}

type StateCount struct {
	Estado string `json:"estado"`
	Count  int    `json:"total"`
}

type MonthCount struct {
	Month string `json:"mes"`
	Count int    `json:"total"`
}
