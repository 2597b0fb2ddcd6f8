package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Assistant core
	Assistant AssistantConfig
	Proactive ProactiveConfig

	// Collaborator clients
	Gemini         GeminiConfig
	GoogleCalendar GoogleCalendarConfig
	SendGrid       SendGridConfig
	TaskStore      TaskStoreConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// AssistantConfig tunes the request interpretation pipeline.
type AssistantConfig struct {
	Timezone       string
	RequestTimeout time.Duration
}

// ProactiveConfig tunes the scheduled job orchestrator.
type ProactiveConfig struct {
	Enabled   bool
	Recipient string
	TopTasks  int
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// TaskStoreConfig points at the Memos instance backing the task collaborator.
type TaskStoreConfig struct {
	URL         string
	AccessToken string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Assistant core
	cfg.Assistant.Timezone = viper.GetString("assistant.timezone")
	timeout, err := time.ParseDuration(viper.GetString("assistant.request_timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid assistant.request_timeout: %w", err)
	}
	cfg.Assistant.RequestTimeout = timeout

	cfg.Proactive.Enabled = viper.GetBool("proactive.enabled")
	cfg.Proactive.Recipient = viper.GetString("proactive.recipient")
	cfg.Proactive.TopTasks = viper.GetInt("proactive.top_tasks")

	// Gemini
	cfg.Gemini.APIKey = expandEnvVar(viper.GetString("gemini.api_key"))
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// SendGrid
	cfg.SendGrid.APIKey = expandEnvVar(viper.GetString("sendgrid.api_key"))
	cfg.SendGrid.FromEmail = viper.GetString("sendgrid.from_email")
	cfg.SendGrid.FromName = viper.GetString("sendgrid.from_name")
	if sgKey := viper.GetString("sendgrid_api_key"); sgKey != "" {
		cfg.SendGrid.APIKey = sgKey
	}

	// Task store (Memos)
	cfg.TaskStore.URL = viper.GetString("task_store.url")
	cfg.TaskStore.AccessToken = expandEnvVar(viper.GetString("task_store.access_token"))
	if storeURL := viper.GetString("task_store_url"); storeURL != "" {
		cfg.TaskStore.URL = storeURL
	}
	if storeToken := viper.GetString("task_store_access_token"); storeToken != "" {
		cfg.TaskStore.AccessToken = storeToken
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)

	viper.SetDefault("assistant.timezone", "UTC")
	viper.SetDefault("assistant.request_timeout", "30s")

	viper.SetDefault("proactive.enabled", false)
	viper.SetDefault("proactive.top_tasks", 5)

	viper.SetDefault("gemini.model", "gemini-2.5-flash")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
