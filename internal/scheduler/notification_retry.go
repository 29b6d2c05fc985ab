package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/focomkt/lead-diagnostics-api/infrastructure/integrator/mailer"
	"github.com/focomkt/lead-diagnostics-api/infrastructure/repository"
	"github.com/focomkt/lead-diagnostics-api/internal/config"
	"github.com/focomkt/lead-diagnostics-api/internal/domain"
)

// NotificationRetryConfig representa a configuração do agendador de reenvio
// de notificações de leads.
type NotificationRetryConfig struct {
	CronSchedule        string
	MaxAttempts         int
	RequestDelaySeconds int
	Enabled             bool
}

// NotificationRetryService reenvia periodicamente as notificações de leads
// que ficaram pendentes ou falharam no envio imediato. Leads que esgotaram o
// limite de tentativas ficam de fora da varredura.
type NotificationRetryService struct {
	scheduler      *gocron.Scheduler
	config         NotificationRetryConfig
	leadRepository repository.LeadRepository
	notifier       mailer.Notifier
	retryRunning   bool
	retryMutex     sync.Mutex
	lastRunAt      time.Time
}

// NewNotificationRetryService cria uma nova instância do serviço de reenvio
func NewNotificationRetryService(
	leadRepository repository.LeadRepository,
	notifier mailer.Notifier,
	appConfig *config.Config,
) *NotificationRetryService {
	retryConfig := NotificationRetryConfig{
		CronSchedule:        appConfig.NotificationRetry.CronSchedule,
		MaxAttempts:         appConfig.NotificationRetry.MaxAttempts,
		RequestDelaySeconds: appConfig.NotificationRetry.RequestDelaySeconds,
		Enabled:             appConfig.NotificationRetry.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         retryConfig.CronSchedule,
		"max_attempts":          retryConfig.MaxAttempts,
		"request_delay_seconds": retryConfig.RequestDelaySeconds,
		"enabled":               retryConfig.Enabled,
	}).Info("Configuração do agendador de reenvio de notificações carregada")

	return &NotificationRetryService{
		scheduler:      gocron.NewScheduler(time.Local),
		config:         retryConfig,
		leadRepository: leadRepository,
		notifier:       notifier,
		retryRunning:   false,
	}
}

// Start inicia o agendador
func (s *NotificationRetryService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Reenvio de notificações de leads desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de reenvio de notificações de leads")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.retryPendingNotifications()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reenvio de notificações: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reenvio de notificações de leads")
		s.scheduler.Stop()
	}()

	return nil
}

// retryPendingNotifications varre os leads com notificação pendente ou
// falhada e tenta o reenvio, respeitando o intervalo entre requisições para
// não estourar a cota do serviço de e-mail.
func (s *NotificationRetryService) retryPendingNotifications() {
	s.retryMutex.Lock()
	if s.retryRunning {
		s.retryMutex.Unlock()
		logrus.Info("Reenvio de notificações já em andamento, ignorando")
		return
	}
	s.retryRunning = true
	s.retryMutex.Unlock()

	s.lastRunAt = time.Now()

	defer func() {
		s.retryMutex.Lock()
		s.retryRunning = false
		s.retryMutex.Unlock()
	}()

	leads, err := s.leadRepository.ListPendingNotifications(s.config.MaxAttempts)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar leads com notificação pendente")
		return
	}

	if len(leads) == 0 {
		logrus.Info("Nenhum lead com notificação pendente")
		return
	}

	logrus.WithField("total", len(leads)).Info("Iniciando reenvio de notificações de leads")

	sent := 0
	for i, lead := range leads {
		if i > 0 && s.config.RequestDelaySeconds > 0 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}

		if s.retryLead(lead) {
			sent++
		}
	}

	logrus.WithFields(logrus.Fields{
		"total":    len(leads),
		"enviadas": sent,
	}).Info("Reenvio de notificações de leads concluído")
}

// retryLead tenta o reenvio de um único lead e atualiza o status persistido.
func (s *NotificationRetryService) retryLead(lead *domain.Lead) bool {
	attempts := lead.NotificationAttempts + 1

	status := domain.NotificationSent
	if err := s.notifier.NotifyNewLead(lead); err != nil {
		status = domain.NotificationFailed

		logrus.WithError(err).WithFields(logrus.Fields{
			"lead_id":  lead.ID,
			"attempts": attempts,
		}).Warn("Reenvio de notificação falhou")
	}

	if err := s.leadRepository.UpdateNotificationStatus(lead.ID, status, attempts); err != nil {
		logrus.WithError(err).WithField("lead_id", lead.ID).
			Error("Erro ao atualizar status de notificação após reenvio")
	}

	return status == domain.NotificationSent
}
