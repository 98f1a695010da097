package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"8000"`

	// LLM settings
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	OpenAIModel      string      `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// Storage
	EventsFilePath string `env:"EVENTS_FILE_PATH" envDefault:"data/events.json"`
	BackupDir      string `env:"BACKUP_DIR" envDefault:"data/backups"`
	BackupSchedule string `env:"BACKUP_SCHEDULE"`

	// Static front-ends
	StaticRoot string `env:"STATIC_ROOT" envDefault:"."`

	// Certificate editor defaults
	CertificateDefaultDate string `env:"CERTIFICATE_DEFAULT_DATE"`

	// Dashboard auth
	DashboardUser     string `env:"DASHBOARD_USER" envDefault:"admin"`
	DashboardPassword string `env:"DASHBOARD_PASSWORD"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
