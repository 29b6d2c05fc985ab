package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/focomkt/lead-diagnostics-api/infrastructure/database/postgres"
	"github.com/focomkt/lead-diagnostics-api/infrastructure/integrator/mailer"
	"github.com/focomkt/lead-diagnostics-api/infrastructure/integrator/mailer/mailerclient"
	"github.com/focomkt/lead-diagnostics-api/infrastructure/repository"
	"github.com/focomkt/lead-diagnostics-api/internal/api"
	"github.com/focomkt/lead-diagnostics-api/internal/config"
	"github.com/focomkt/lead-diagnostics-api/internal/scheduler"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/authenticating"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/diagnosing"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/leads"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/planning"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/recommending"
	"github.com/focomkt/lead-diagnostics-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	leadRepo := repository.NewLeadRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	mailerClient := mailerclient.NewClient(cfg)
	notifier := mailer.New(cfg, mailerClient)

	diagnoser := diagnosing.NewService(cfg)
	recommender := recommending.NewService()
	planner := planning.NewService(diagnoser, recommender)

	leadService := leads.NewService(cfg, leadRepo, notifier, planner)
	reportService := reporting.NewService(leadRepo, diagnoser)

	// Inicializa o agendador de reenvio de notificações
	notificationRetryService := scheduler.NewNotificationRetryService(leadRepo, notifier, cfg)

	if err := notificationRetryService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reenvio de notificações")
	} else {
		logrus.Info("Agendador de reenvio de notificações iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		leadService,
		reportService,
		authenticator,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
