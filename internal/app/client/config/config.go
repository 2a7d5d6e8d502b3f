package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultLogLevel          = "warn"
	defaultEnv               = "local"
	defaultConfigDir         = ".noteshare"
	defaultRequestTimeout    = 15
	defaultEnrichConcurrency = 8
	defaultAutosaveDelayMS   = 1000
	defaultIPEchoURLs        = "https://api.ipify.org?format=json,https://api64.ipify.org?format=json"
)

type Config struct {
	Env               string
	BackendURL        string
	APIKey            string
	AccessToken       string
	LogLevel          string
	ConfigDir         string
	DataPath          string
	IPEchoURLs        []string
	RequestTimeout    time.Duration
	EnrichConcurrency int
	UserAgent         string
	TimeZone          string
	AutosaveDelay     time.Duration
}

// Load загружает конфигурацию клиента.
// Приоритет: переменные окружения, затем файл конфигурации, затем значения по умолчанию.
// configFile может быть пустым, тогда ищется config.yaml в CONFIG_DIR.
func Load(configFile string) (*Config, error) {
	// .env необязателен
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("app_env", defaultEnv)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("config_dir", defaultConfigDir)
	v.SetDefault("ip_echo_urls", defaultIPEchoURLs)
	v.SetDefault("request_timeout_seconds", defaultRequestTimeout)
	v.SetDefault("enrich_concurrency", defaultEnrichConcurrency)
	v.SetDefault("autosave_delay_ms", defaultAutosaveDelayMS)
	v.SetDefault("time_zone", "Local")

	// Вычисляем директорию конфигурации
	configDir := v.GetString("config_dir")
	if configDir == defaultConfigDir {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		configDir = filepath.Join(homeDir, configDir)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(configDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
			}
		}
	}

	dataPath := v.GetString("data_path")
	if dataPath == "" {
		dataPath = filepath.Join(configDir, "data.db")
	}

	userAgent := v.GetString("user_agent")
	if userAgent == "" {
		userAgent = DefaultUserAgent()
	}

	config := &Config{
		Env:               v.GetString("app_env"),
		BackendURL:        strings.TrimRight(v.GetString("backend_url"), "/"),
		APIKey:            v.GetString("api_key"),
		AccessToken:       v.GetString("access_token"),
		LogLevel:          v.GetString("log_level"),
		ConfigDir:         configDir,
		DataPath:          dataPath,
		IPEchoURLs:        splitList(v.GetString("ip_echo_urls")),
		RequestTimeout:    time.Duration(v.GetInt("request_timeout_seconds")) * time.Second,
		EnrichConcurrency: v.GetInt("enrich_concurrency"),
		UserAgent:         userAgent,
		TimeZone:          v.GetString("time_zone"),
		AutosaveDelay:     time.Duration(v.GetInt("autosave_delay_ms")) * time.Millisecond,
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("ошибка конфигурации: %w", err)
	}

	// Создаем директорию если ее нет
	if err := os.MkdirAll(config.ConfigDir, 0o700); err != nil {
		return nil, fmt.Errorf("ошибка создания директории конфигурации: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.BackendURL == "" {
		return errors.New("backend_url не может быть пустым")
	}
	if c.APIKey == "" {
		return errors.New("api_key не может быть пустым")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request_timeout_seconds должен быть больше нуля")
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		return fmt.Errorf("неизвестный часовой пояс %q", c.TimeZone)
	}
	return nil
}

// Location возвращает часовой пояс для отображения дат
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

// IsLocal проверяет, local ли окружение
func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}

// DefaultUserAgent описывает клиент и ОС так, чтобы их распознал журнал доступа
func DefaultUserAgent() string {
	platform := map[string]string{
		"windows": "Windows NT 10.0",
		"darwin":  "Macintosh; Mac OS X",
		"linux":   "X11; Linux",
		"android": "Linux; Android",
		"ios":     "iPhone; iOS",
	}[runtime.GOOS]
	if platform == "" {
		platform = runtime.GOOS
	}
	return fmt.Sprintf("noteshare-cli/1.0 (%s; %s)", platform, runtime.GOARCH)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
