// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/focomkt/lead-diagnostics-api/infrastructure/database/postgres"
	"github.com/focomkt/lead-diagnostics-api/internal/domain"
)

const (
	leadsTable = "leads"
)

// LeadFilters restringe a listagem de leads por período de submissão.
type LeadFilters struct {
	From   *time.Time
	To     *time.Time
	Estado string
}

type LeadRepository interface {
	// SaveOrReplace grava a submissão do formulário. O telefone é a chave
	// natural do lead: uma nova submissão do mesmo telefone sobrescreve o
	// perfil anterior por inteiro, preservando o ID original.
	SaveOrReplace(lead *domain.Lead) (*domain.Lead, error)
	GetByID(id string) (*domain.Lead, error)
	GetByTelefone(telefone string) (*domain.Lead, error)
	List(filters LeadFilters) ([]*domain.Lead, error)
	UpdateNotificationStatus(id string, status domain.NotificationStatus, attempts int) error
	ListPendingNotifications(maxAttempts int) ([]*domain.Lead, error)
	CountAll() (int, error)
	CountByState() ([]domain.StateCount, error)
	CountByMonth() ([]domain.MonthCount, error)
}

type leadRepository struct {
	conn *postgres.Connection
}

func NewLeadRepository(conn *postgres.Connection) LeadRepository {
	return &leadRepository{
		conn: conn,
	}
}

func (r *leadRepository) SaveOrReplace(lead *domain.Lead) (*domain.Lead, error) {
	profileJSON, err := json.Marshal(lead.Profile)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar o perfil da clínica: %w", err)
	}

	queryBuilder := squirrel.
		Insert(leadsTable).
		Columns(
			"id",
			"telefone",
			"nome_clinica",
			"estado",
			"profile",
			"notification_status",
			"notification_attempts",
		).
		Values(
			lead.ID,
			lead.Profile.Telefone,
			lead.Profile.NomeClinica,
			lead.Profile.Estado,
			profileJSON,
			lead.NotificationStatus,
			lead.NotificationAttempts,
		).
		Suffix(`
			ON CONFLICT (telefone) DO UPDATE SET
				nome_clinica = EXCLUDED.nome_clinica,
				estado = EXCLUDED.estado,
				profile = EXCLUDED.profile,
				notification_status = EXCLUDED.notification_status,
				notification_attempts = EXCLUDED.notification_attempts,
				updated_at = CURRENT_TIMESTAMP
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(sqlQuery, args...).Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao gravar lead: %w", err)
	}

	return lead, nil
}

func (r *leadRepository) GetByID(id string) (*domain.Lead, error) {
	query, args, err := r.selectLeads().
		Where(squirrel.Eq{"l.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	lead, err := r.scanLeadRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear lead: %w", err)
	}

	return lead, nil
}

func (r *leadRepository) GetByTelefone(telefone string) (*domain.Lead, error) {
	query, args, err := r.selectLeads().
		Where(squirrel.Eq{"l.telefone": telefone}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	lead, err := r.scanLeadRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear lead: %w", err)
	}

	return lead, nil
}

func (r *leadRepository) List(filters LeadFilters) ([]*domain.Lead, error) {
	queryBuilder := r.selectLeads().
		OrderBy("l.created_at DESC")

	if filters.From != nil && !filters.From.IsZero() {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"l.created_at": *filters.From})
	}

	if filters.To != nil && !filters.To.IsZero() {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"l.created_at": *filters.To})
	}

	if filters.Estado != "" {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"l.estado": filters.Estado})
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	leads := make([]*domain.Lead, 0)
	for rows.Next() {
		lead, err := r.scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lead: %w", err)
		}
		leads = append(leads, lead)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return leads, nil
}

func (r *leadRepository) UpdateNotificationStatus(id string, status domain.NotificationStatus, attempts int) error {
	query, args, err := squirrel.
		Update(leadsTable).
		Set("notification_status", status).
		Set("notification_attempts", attempts).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status de notificação: %w", err)
	}

	return nil
}

func (r *leadRepository) ListPendingNotifications(maxAttempts int) ([]*domain.Lead, error) {
	query, args, err := r.selectLeads().
		Where(squirrel.Eq{"l.notification_status": []domain.NotificationStatus{
			domain.NotificationPending,
			domain.NotificationFailed,
		}}).
		Where(squirrel.Lt{"l.notification_attempts": maxAttempts}).
		OrderBy("l.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	leads := make([]*domain.Lead, 0)
	for rows.Next() {
		lead, err := r.scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lead: %w", err)
		}
		leads = append(leads, lead)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return leads, nil
}

func (r *leadRepository) CountAll() (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(leadsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar leads: %w", err)
	}

	return total, nil
}

func (r *leadRepository) CountByState() ([]domain.StateCount, error) {
	query, args, err := squirrel.
		Select("estado", "COUNT(*) AS total").
		From(leadsTable).
		GroupBy("estado").
		OrderBy("total DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	counts := make([]domain.StateCount, 0)
	for rows.Next() {
		var c domain.StateCount
		if err := rows.Scan(&c.Estado, &c.Count); err != nil {
			return nil, fmt.Errorf("erro ao escanear contagem por estado: %w", err)
		}
		counts = append(counts, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

func (r *leadRepository) CountByMonth() ([]domain.MonthCount, error) {
	query, args, err := squirrel.
		Select("TO_CHAR(created_at, 'MM-YYYY') AS mes", "COUNT(*) AS total").
		From(leadsTable).
		GroupBy("mes").
		OrderBy("MIN(created_at) DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	counts := make([]domain.MonthCount, 0)
	for rows.Next() {
		var c domain.MonthCount
		if err := rows.Scan(&c.Month, &c.Count); err != nil {
			return nil, fmt.Errorf("erro ao escanear contagem por mês: %w", err)
		}
		counts = append(counts, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

func (r *leadRepository) selectLeads() squirrel.SelectBuilder {
	return squirrel.
		Select(
			"l.id",
			"l.profile",
			"l.notification_status",
			"l.notification_attempts",
			"l.created_at",
			"l.updated_at",
		).
		From(leadsTable + " l").
		PlaceholderFormat(squirrel.Dollar)
}

func (r *leadRepository) scanLead(rows *sql.Rows) (*domain.Lead, error) {
	lead := &domain.Lead{}
	var profileJSON []byte

	err := rows.Scan(
		&lead.ID,
		&profileJSON,
		&lead.NotificationStatus,
		&lead.NotificationAttempts,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(profileJSON, &lead.Profile); err != nil {
		return nil, fmt.Errorf("erro ao desserializar o perfil da clínica: %w", err)
	}

	return lead, nil
}

func (r *leadRepository) scanLeadRow(row *sql.Row) (*domain.Lead, error) {
	lead := &domain.Lead{}
	var profileJSON []byte

	err := row.Scan(
		&lead.ID,
		&profileJSON,
		&lead.NotificationStatus,
		&lead.NotificationAttempts,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(profileJSON, &lead.Profile); err != nil {
		return nil, fmt.Errorf("erro ao desserializar o perfil da clínica: %w", err)
	}

	return lead, nil
}
