package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Mailer            Mailer            `mapstructure:",squash"`
	Capacity          Capacity          `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	NotificationRetry NotificationRetry `mapstructure:",squash"`
	SecretKey         string            `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Mailer guarda as credenciais do serviço de e-mail transacional (EmailJS)
// usado para notificar a equipe comercial sobre novos diagnósticos.
type Mailer struct {
	BaseURL     string `mapstructure:"mailer_base_url"`
	ServiceID   string `mapstructure:"mailer_service_id"`
	TemplateID  string `mapstructure:"mailer_template_id"`
	PublicKey   string `mapstructure:"mailer_public_key"`
	AccessToken string `mapstructure:"mailer_access_token"`
	ToAddress   string `mapstructure:"mailer_to_address"`
	Enabled     bool   `mapstructure:"mailer_enabled"`
}

// Capacity parametriza o cálculo de capacidade máxima de atendimento.
// Os valores padrão (20 pacientes por cadeira/dia e 22 dias úteis) vinham
// fixos no material de diagnóstico original e agora são configuráveis.
type Capacity struct {
	PatientsPerChairPerDay int `mapstructure:"capacity_patients_per_chair_per_day"`
	WorkingDaysPerMonth    int `mapstructure:"capacity_working_days_per_month"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

type NotificationRetry struct {
	CronSchedule        string `mapstructure:"notification_retry_cron"`
	MaxAttempts         int    `mapstructure:"notification_retry_max_attempts"`
	RequestDelaySeconds int    `mapstructure:"notification_retry_request_delay_seconds"`
	Enabled             bool   `mapstructure:"notification_retry_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/leads")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("MAILER_BASE_URL", "https://api.emailjs.com/api/v1.0")
	viper.SetDefault("MAILER_SERVICE_ID", "your_service_id")
	viper.SetDefault("MAILER_TEMPLATE_ID", "your_template_id")
	viper.SetDefault("MAILER_PUBLIC_KEY", "your_public_key")
	viper.SetDefault("MAILER_ACCESS_TOKEN", "") // ONLY LOCAL
	viper.SetDefault("MAILER_TO_ADDRESS", "comercial@focomkt.com.br")
	viper.SetDefault("MAILER_ENABLED", false)

	viper.SetDefault("CAPACITY_PATIENTS_PER_CHAIR_PER_DAY", 20)
	viper.SetDefault("CAPACITY_WORKING_DAYS_PER_MONTH", 22)

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Defaults para reenvio de notificações de leads
	viper.SetDefault("NOTIFICATION_RETRY_CRON", "0 */2 * * *")      // A cada 2 horas
	viper.SetDefault("NOTIFICATION_RETRY_MAX_ATTEMPTS", 5)          // 5 tentativas por lead
	viper.SetDefault("NOTIFICATION_RETRY_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre requisições
	viper.SetDefault("NOTIFICATION_RETRY_ENABLED", false)           // Habilitar reenvio

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
