package leads

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/focomkt/lead-diagnostics-api/infrastructure/integrator/mailer"
	"github.com/focomkt/lead-diagnostics-api/infrastructure/repository"
	"github.com/focomkt/lead-diagnostics-api/internal/config"
	"github.com/focomkt/lead-diagnostics-api/internal/domain"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/planning"
	"github.com/focomkt/lead-diagnostics-api/pkg/utils"
)

var (
	// ErrLeadNotFound indica que o ID consultado não corresponde a nenhum
	// diagnóstico submetido. A API traduz para o estado "Dados não
	// encontrados" com o convite para refazer o formulário.
	ErrLeadNotFound = errors.New("lead não encontrado")

	// ErrMissingRequiredData indica submissão sem os campos obrigatórios.
	ErrMissingRequiredData = errors.New("nome da clínica e telefone são obrigatórios")
)

// Manager é a porta de entrada dos leads: recebe submissões do formulário,
// consulta diagnósticos e gera o plano estratégico sob demanda.
type Manager interface {
	Submit(profile *domain.ClinicProfile) (*domain.Lead, error)
	Get(id string) (*domain.Lead, error)
	List(filters repository.LeadFilters) ([]*domain.Lead, error)
	GetStrategicPlan(id string) (*domain.StrategicPlan, error)
	ExportStrategicPlan(id string) (*PlanExport, error)
}

// PlanExport é o documento de texto do plano pronto para download.
type PlanExport struct {
	Filename string
	Content  string
}

type Service struct {
	cfg            *config.Config
	leadRepository repository.LeadRepository
	notifier       mailer.Notifier
	planner        planning.Planner
}

func NewService(
	cfg *config.Config,
	leadRepository repository.LeadRepository,
	notifier mailer.Notifier,
	planner planning.Planner,
) Manager {
	return &Service{
		cfg:            cfg,
		leadRepository: leadRepository,
		notifier:       notifier,
		planner:        planner,
	}
}

// Submit valida e persiste a submissão do formulário. A gravação vem sempre
// antes da notificação: se o e-mail falhar, o lead já está salvo e o
// agendador de reenvio cuida do resto. A notificação roda em segundo plano
// e nunca atrasa a resposta ao formulário.
func (s *Service) Submit(profile *domain.ClinicProfile) (*domain.Lead, error) {
	if strings.TrimSpace(profile.NomeClinica) == "" || strings.TrimSpace(profile.Telefone) == "" {
		return nil, ErrMissingRequiredData
	}

	existing, err := s.leadRepository.GetByTelefone(profile.Telefone)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar lead pelo telefone")
	}

	// O telefone é a chave natural do lead: uma nova submissão do mesmo
	// telefone substitui o perfil anterior mantendo o ID original.
	id := ""
	if existing != nil {
		id = existing.ID
	} else {
		id, err = utils.GenerateID()
		if err != nil {
			return nil, errors.Wrap(err, "erro ao gerar o identificador do lead")
		}
	}

	lead := &domain.Lead{
		ID:                   id,
		Profile:              *profile,
		NotificationStatus:   domain.NotificationPending,
		NotificationAttempts: 0,
	}

	saved, err := s.leadRepository.SaveOrReplace(lead)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gravar a submissão do diagnóstico")
	}

	message := "Novo diagnóstico recebido"
	if existing != nil {
		message = "Diagnóstico atualizado"
	}

	logrus.WithFields(logrus.Fields{
		"lead_id":      saved.ID,
		"nome_clinica": saved.Profile.NomeClinica,
	}).Info(message)

	if s.cfg.Mailer.Enabled {
		go s.notifyAndMark(saved)
	}

	return saved, nil
}

// notifyAndMark tenta enviar a notificação e registra o resultado no lead.
// Erros de atualização de status são apenas logados: o reenvio periódico
// reavalia o lead pelo status persistido.
func (s *Service) notifyAndMark(lead *domain.Lead) {
	attempts := lead.NotificationAttempts + 1

	status := domain.NotificationSent
	if err := s.notifier.NotifyNewLead(lead); err != nil {
		status = domain.NotificationFailed
	}

	if err := s.leadRepository.UpdateNotificationStatus(lead.ID, status, attempts); err != nil {
		logrus.WithError(err).WithField("lead_id", lead.ID).
			Error("Erro ao atualizar o status de notificação do lead")
	}
}

func (s *Service) Get(id string) (*domain.Lead, error) {
	lead, err := s.leadRepository.GetByID(id)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar lead")
	}

	if lead == nil {
		return nil, ErrLeadNotFound
	}

	return lead, nil
}

func (s *Service) List(filters repository.LeadFilters) ([]*domain.Lead, error) {
	leads, err := s.leadRepository.List(filters)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar leads")
	}

	return leads, nil
}

// GetStrategicPlan recalcula o plano estratégico do lead a partir do perfil
// persistido. Nada do plano é armazenado, então mudanças nas regras valem
// retroativamente para qualquer lead.
func (s *Service) GetStrategicPlan(id string) (*domain.StrategicPlan, error) {
	lead, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	return s.planner.BuildStrategicPlan(&lead.Profile), nil
}

func (s *Service) ExportStrategicPlan(id string) (*PlanExport, error) {
	lead, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	plan := s.planner.BuildStrategicPlan(&lead.Profile)

	return &PlanExport{
		Filename: planning.ExportFilename(lead.Profile.NomeClinica),
		Content:  planning.RenderPlanText(&lead.Profile, plan),
	}, nil
}
