package mailer

import (
	"strings"

	"github.com/focomkt/lead-diagnostics-api/infrastructure/integrator/mailer/mailerclient"
	"github.com/focomkt/lead-diagnostics-api/internal/config"
	"github.com/focomkt/lead-diagnostics-api/internal/domain"
	"github.com/focomkt/lead-diagnostics-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Notifier envia a notificação de novo diagnóstico para a equipe comercial.
// O envio é um canal lateral: falhas são transitórias e nunca bloqueiam a
// gravação do lead nem a geração do plano estratégico.
type Notifier interface {
	NotifyNewLead(lead *domain.Lead) error
}

type Service struct {
	config *config.Config
	client mailerclient.Client
}

func New(cfg *config.Config, client mailerclient.Client) Notifier {
	return &Service{
		config: cfg,
		client: client,
	}
}

func (s *Service) NotifyNewLead(lead *domain.Lead) error {
	profile := lead.Profile

	params := mailerclient.SendEmailParams{
		ServiceID:   s.config.Mailer.ServiceID,
		TemplateID:  s.config.Mailer.TemplateID,
		UserID:      s.config.Mailer.PublicKey,
		AccessToken: s.config.Mailer.AccessToken,
		TemplateParams: map[string]string{
			"to_email":           s.config.Mailer.ToAddress,
			"lead_id":            lead.ID,
			"nome_clinica":       profile.NomeClinica,
			"cidade":             profile.Cidade,
			"estado":             profile.Estado,
			"telefone":           profile.Telefone,
			"instagram":          profile.Instagram,
			"faturamento_atual":  profile.FaturamentoAtual,
			"faturamento_meta":   profile.FaturamentoMeta,
			"ticket_medio":       profile.TicketMedio,
			"pacientes_mes":      profile.PacientesMes,
			"canais_atuais":      strings.Join(profile.CanaisAtuais, ", "),
			"perfil_completo":    utils.PrettyJson(profile),
		},
	}

	if err := s.client.SendEmail(params); err != nil {
		logrus.WithError(err).WithField("lead_id", lead.ID).
			Warn("Falha ao enviar notificação de novo lead")
		return err
	}

	logrus.WithField("lead_id", lead.ID).Info("Notificação de novo lead enviada com sucesso")
	return nil
}
