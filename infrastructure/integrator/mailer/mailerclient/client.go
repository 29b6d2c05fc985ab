package mailerclient

import (
	"net/http"
	"time"

	"github.com/focomkt/lead-diagnostics-api/internal/config"
)

type Client interface {
	SendEmail(params SendEmailParams) error
}

type EmailJSClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente da API do EmailJS.
func NewClient(cfg *config.Config) Client {
	return &EmailJSClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
