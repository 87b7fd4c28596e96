package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Поддерживаемые бэкенды хранилища документов
const (
	BackendJSONFile = "json"
	BackendSheets   = "sheets"
	BackendPostgres = "postgres"
)

// Config конфигурация сервиса, загружается из config.toml.
// Секреты (пароль администратора, ключи Twilio) в конфиг не входят,
// они читаются из переменных окружения.
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Storage       StorageConfig       `toml:"storage"`
	Sheets        SheetsConfig        `toml:"sheets"`
	Database      DatabaseConfig      `toml:"database"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды

	// Rate limit публичной ручки бронирования (запросов в секунду на IP)
	RateLimitRPS   float64 `toml:"rate_limit_rps"`
	RateLimitBurst int     `toml:"rate_limit_burst"`

	// Origins, с которых разрешены запросы формы записи
	AllowedOrigins []string `toml:"allowed_origins"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// StorageConfig выбор бэкенда хранилища документов
type StorageConfig struct {
	Backend          string `toml:"backend"` // json | sheets | postgres
	ScheduleFile     string `toml:"schedule_file"`
	ReservationsFile string `toml:"reservations_file"`
	BackupDir        string `toml:"backup_dir"`
}

// SheetsConfig настройки бэкенда Google Sheets
type SheetsConfig struct {
	SpreadsheetID   string `toml:"spreadsheet_id"`
	CredentialsFile string `toml:"credentials_file"`
	ScheduleTab     string `toml:"schedule_tab"`
	ReservationsTab string `toml:"reservations_tab"`
}

// DatabaseConfig настройки бэкенда PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// NotificationsConfig настройки WhatsApp уведомлений
type NotificationsConfig struct {
	Enabled    bool   `toml:"enabled"`
	APIURL     string `toml:"api_url"`
	FromNumber string `toml:"from_number"` // номер-отправитель, напр. "+14155238886"
	Timeout    int    `toml:"timeout"`     // секунды
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10
	}
	if cfg.Server.RateLimitRPS == 0 {
		cfg.Server.RateLimitRPS = 1
	}
	if cfg.Server.RateLimitBurst == 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = BackendJSONFile
	}
	if cfg.Storage.ScheduleFile == "" {
		cfg.Storage.ScheduleFile = "schedule.json"
	}
	if cfg.Storage.ReservationsFile == "" {
		cfg.Storage.ReservationsFile = "reservations.json"
	}
	if cfg.Storage.BackupDir == "" {
		cfg.Storage.BackupDir = "backups"
	}
	if cfg.Sheets.ScheduleTab == "" {
		cfg.Sheets.ScheduleTab = "configuracoes"
	}
	if cfg.Sheets.ReservationsTab == "" {
		cfg.Sheets.ReservationsTab = "reservas"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "booking-service"
	}
	if cfg.Notifications.APIURL == "" {
		cfg.Notifications.APIURL = "https://api.twilio.com"
	}
	if cfg.Notifications.Timeout == 0 {
		cfg.Notifications.Timeout = 10
	}
}

func validate(cfg *Config) error {
	switch cfg.Storage.Backend {
	case BackendJSONFile, BackendSheets, BackendPostgres:
	default:
		return fmt.Errorf("unknown storage backend %q (expected %s, %s or %s)",
			cfg.Storage.Backend, BackendJSONFile, BackendSheets, BackendPostgres)
	}

	if cfg.Storage.Backend == BackendSheets {
		if cfg.Sheets.SpreadsheetID == "" {
			return fmt.Errorf("storage backend %q requires sheets.spreadsheet_id", BackendSheets)
		}
		if cfg.Sheets.CredentialsFile == "" {
			return fmt.Errorf("storage backend %q requires sheets.credentials_file", BackendSheets)
		}
	}

	if cfg.Storage.Backend == BackendPostgres && cfg.Database.Host == "" {
		return fmt.Errorf("storage backend %q requires database settings", BackendPostgres)
	}

	return nil
}
