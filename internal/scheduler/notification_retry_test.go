package scheduler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mailermocks "github.com/focomkt/lead-diagnostics-api/infrastructure/integrator/mailer/mocks"
	"github.com/focomkt/lead-diagnostics-api/infrastructure/repository/mocks"
	"github.com/focomkt/lead-diagnostics-api/internal/domain"
)

func newRetryService(t *testing.T) (*NotificationRetryService, *mocks.MockLeadRepository, *mailermocks.MockNotifier) {
	ctrl := gomock.NewController(t)

	mockLeadRepo := mocks.NewMockLeadRepository(ctrl)
	mockNotifier := mailermocks.NewMockNotifier(ctrl)

	service := &NotificationRetryService{
		config: NotificationRetryConfig{
			MaxAttempts:         5,
			RequestDelaySeconds: 0,
			Enabled:             true,
		},
		leadRepository: mockLeadRepo,
		notifier:       mockNotifier,
	}

	return service, mockLeadRepo, mockNotifier
}

func TestRetryPendingNotifications_SendsAndMarksLeads(t *testing.T) {
	service, mockLeadRepo, mockNotifier := newRetryService(t)

	leadA := &domain.Lead{ID: "aaa111", NotificationStatus: domain.NotificationPending, NotificationAttempts: 0}
	leadB := &domain.Lead{ID: "bbb222", NotificationStatus: domain.NotificationFailed, NotificationAttempts: 2}

	mockLeadRepo.EXPECT().
		ListPendingNotifications(5).
		Return([]*domain.Lead{leadA, leadB}, nil)

	mockNotifier.EXPECT().NotifyNewLead(leadA).Return(nil)
	mockLeadRepo.EXPECT().
		UpdateNotificationStatus("aaa111", domain.NotificationSent, 1).
		Return(nil)

	mockNotifier.EXPECT().NotifyNewLead(leadB).Return(errors.New("timeout"))
	mockLeadRepo.EXPECT().
		UpdateNotificationStatus("bbb222", domain.NotificationFailed, 3).
		Return(nil)

	service.retryPendingNotifications()

	assert.False(t, service.lastRunAt.IsZero())
}

func TestRetryPendingNotifications_NothingToSend(t *testing.T) {
	service, mockLeadRepo, _ := newRetryService(t)

	mockLeadRepo.EXPECT().
		ListPendingNotifications(5).
		Return([]*domain.Lead{}, nil)

	service.retryPendingNotifications()
}

func TestRetryPendingNotifications_RepositoryFailureAborts(t *testing.T) {
	service, mockLeadRepo, _ := newRetryService(t)

	mockLeadRepo.EXPECT().
		ListPendingNotifications(5).
		Return(nil, errors.New("conexão recusada"))

	service.retryPendingNotifications()
}

func TestRetryLead(t *testing.T) {
	service, mockLeadRepo, mockNotifier := newRetryService(t)

	lead := &domain.Lead{ID: "ccc333", NotificationAttempts: 4}

	mockNotifier.EXPECT().NotifyNewLead(lead).Return(nil)
	mockLeadRepo.EXPECT().
		UpdateNotificationStatus("ccc333", domain.NotificationSent, 5).
		Return(nil)

	assert.True(t, service.retryLead(lead))
}
