// Пакет config — загрузка и валидация конфигурации parentlib API
// из переменных окружения.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Версия приложения, задаётся при сборке через -ldflags.
var Version = "dev"

// Config содержит все параметры конфигурации сервиса.
type Config struct {
	// --- Сервер ---

	// Порт HTTP-сервера
	Port int
	// Уровень логирования (debug, info, warn, error)
	LogLevel slog.Level
	// Формат логов (json, text)
	LogFormat string
	// Таймаут graceful shutdown HTTP-сервера
	ShutdownTimeout time.Duration
	// Origins SPA, которым разрешены CORS-запросы
	CORSAllowedOrigins []string
	// Валидация запросов по OpenAPI-контракту
	OpenAPIValidation bool

	// --- PostgreSQL ---

	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string
	// Режим SSL: disable, require, verify-ca, verify-full
	DBSSLMode string
	// Максимум соединений в пуле
	DBMaxConns int
	// Простаивающее соединение закрывается после этого времени
	DBMaxConnIdleTime time.Duration
	// statement_timeout сессии; ограничивает тяжёлые поисковые запросы
	DBStatementTimeout time.Duration

	// --- Identity Provider ---

	// URL IdP (например, https://auth.example.com)
	IdpURL string
	// Имя realm
	IdpRealm string
	// Client ID для Admin REST API (Client Credentials flow)
	IdpClientID string
	// Client Secret для Admin REST API
	IdpClientSecret string
	// Путь к CA-сертификату IdP (опционально)
	IdpCACertPath string
	// Секрет подписи webhook IdP (пусто — webhook отключён)
	IdpWebhookSecret string
	// Таймаут проверки готовности IdP
	IdpReadinessTimeout time.Duration

	// --- JWT ---

	// Issuer JWT (авто-вычисляется из IdpURL, если не задан)
	JWTIssuer string
	// URL JWKS endpoint (авто-вычисляется из IdpURL, если не задан)
	JWTJWKSURL string
	// Таймаут HTTP-клиента JWKS
	JWKSClientTimeout time.Duration
	// Интервал фонового обновления JWKS
	JWKSRefreshInterval time.Duration
	// Допустимое отклонение часов при проверке exp/nbf
	JWTLeeway time.Duration
	// Группы IdP, дающие роль ADMIN (через запятую)
	RoleAdminGroups []string

	// --- Объектное хранилище (S3-совместимое) ---

	S3Bucket string
	S3Region string
	// Endpoint для MinIO и аналогов (пусто — AWS)
	S3Endpoint string
	// Path-style адресация бакета (обычно нужна для MinIO)
	S3UsePathStyle bool
	// Статические ключи (опционально; иначе стандартная цепочка AWS)
	S3AccessKeyID     string
	S3SecretAccessKey string
	// Время жизни pre-signed URL
	PresignTTL time.Duration

	// --- Кэш ресурсов ---

	CacheSize int
	CacheTTL  time.Duration

	// --- E-mail (Amazon SES) ---

	// Адрес отправителя (пусто — отправка отключена)
	SESFromEmail string
	SESFromName  string
	SESRegion    string
	// Базовый URL SPA для ссылок в письмах
	AppBaseURL string

	// --- Мониторинг зависимостей ---

	DephealthGroup         string
	DephealthCheckInterval time.Duration
}

// Load загружает конфигурацию из переменных окружения, валидирует
// обязательные поля и возвращает Config или ошибку.
//
//nolint:cyclop,funlen // линейный разбор переменных окружения
func Load() (*Config, error) {
	cfg := &Config{}
	var err error

	// --- Сервер ---

	// PL_PORT — порт HTTP-сервера (по умолчанию 8000)
	cfg.Port, err = getEnvInt("PL_PORT", 8000)
	if err != nil {
		return nil, fmt.Errorf("PL_PORT: %w", err)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PL_PORT: значение %d вне допустимого диапазона 1-65535", cfg.Port)
	}

	cfg.LogLevel, err = parseLogLevel(getEnvDefault("PL_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("PL_LOG_LEVEL: %w", err)
	}

	cfg.LogFormat = getEnvDefault("PL_LOG_FORMAT", "json")
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return nil, fmt.Errorf("PL_LOG_FORMAT: недопустимое значение %q, допустимые: json, text", cfg.LogFormat)
	}

	cfg.ShutdownTimeout, err = getEnvDuration("PL_SHUTDOWN_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("PL_SHUTDOWN_TIMEOUT: %w", err)
	}

	// PL_CORS_ALLOWED_ORIGINS — origins SPA (по умолчанию dev-сервер Vite)
	cfg.CORSAllowedOrigins = parseCSV(getEnvDefault("PL_CORS_ALLOWED_ORIGINS", "http://localhost:5173"))

	cfg.OpenAPIValidation, err = getEnvBool("PL_OPENAPI_VALIDATION", true)
	if err != nil {
		return nil, fmt.Errorf("PL_OPENAPI_VALIDATION: %w", err)
	}

	// --- PostgreSQL ---

	cfg.DBHost, err = getEnvRequired("PL_DB_HOST")
	if err != nil {
		return nil, err
	}

	cfg.DBPort, err = getEnvInt("PL_DB_PORT", 5432)
	if err != nil {
		return nil, fmt.Errorf("PL_DB_PORT: %w", err)
	}

	cfg.DBName, err = getEnvRequired("PL_DB_NAME")
	if err != nil {
		return nil, err
	}

	cfg.DBUser, err = getEnvRequired("PL_DB_USER")
	if err != nil {
		return nil, err
	}

	cfg.DBPassword, err = getEnvRequired("PL_DB_PASSWORD")
	if err != nil {
		return nil, err
	}

	cfg.DBSSLMode = getEnvDefault("PL_DB_SSL_MODE", "disable")
	validSSLModes := map[string]bool{
		"disable": true, "require": true, "verify-ca": true, "verify-full": true,
	}
	if !validSSLModes[cfg.DBSSLMode] {
		return nil, fmt.Errorf("PL_DB_SSL_MODE: недопустимое значение %q, допустимые: disable, require, verify-ca, verify-full", cfg.DBSSLMode)
	}

	cfg.DBMaxConns, err = getEnvInt("PL_DB_MAX_CONNS", 10)
	if err != nil {
		return nil, fmt.Errorf("PL_DB_MAX_CONNS: %w", err)
	}
	if cfg.DBMaxConns < 1 {
		return nil, fmt.Errorf("PL_DB_MAX_CONNS: должно быть >= 1, получено %d", cfg.DBMaxConns)
	}

	cfg.DBMaxConnIdleTime, err = getEnvDuration("PL_DB_MAX_CONN_IDLE_TIME", 5*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("PL_DB_MAX_CONN_IDLE_TIME: %w", err)
	}

	cfg.DBStatementTimeout, err = getEnvDuration("PL_DB_STATEMENT_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("PL_DB_STATEMENT_TIMEOUT: %w", err)
	}
	if cfg.DBStatementTimeout < 0 {
		return nil, fmt.Errorf("PL_DB_STATEMENT_TIMEOUT: не может быть отрицательным")
	}

	// --- Identity Provider ---

	cfg.IdpURL, err = getEnvRequired("PL_IDP_URL")
	if err != nil {
		return nil, err
	}
	cfg.IdpURL = strings.TrimRight(cfg.IdpURL, "/")

	cfg.IdpRealm = getEnvDefault("PL_IDP_REALM", "parentlib")

	cfg.IdpClientID, err = getEnvRequired("PL_IDP_CLIENT_ID")
	if err != nil {
		return nil, err
	}

	cfg.IdpClientSecret, err = getEnvRequired("PL_IDP_CLIENT_SECRET")
	if err != nil {
		return nil, err
	}

	cfg.IdpCACertPath = getEnvDefault("PL_IDP_CA_CERT_PATH", "")
	cfg.IdpWebhookSecret = getEnvDefault("PL_IDP_WEBHOOK_SECRET", "")

	cfg.IdpReadinessTimeout, err = getEnvDuration("PL_IDP_READINESS_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("PL_IDP_READINESS_TIMEOUT: %w", err)
	}

	// --- JWT ---

	cfg.JWTIssuer = getEnvDefault("PL_JWT_ISSUER",
		fmt.Sprintf("%s/realms/%s", cfg.IdpURL, cfg.IdpRealm))

	cfg.JWTJWKSURL = getEnvDefault("PL_JWT_JWKS_URL",
		fmt.Sprintf("%s/realms/%s/protocol/openid-connect/certs", cfg.IdpURL, cfg.IdpRealm))

	cfg.JWKSClientTimeout, err = getEnvDuration("PL_JWKS_CLIENT_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("PL_JWKS_CLIENT_TIMEOUT: %w", err)
	}

	cfg.JWKSRefreshInterval, err = getEnvDuration("PL_JWKS_REFRESH_INTERVAL", 15*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("PL_JWKS_REFRESH_INTERVAL: %w", err)
	}

	cfg.JWTLeeway, err = getEnvDuration("PL_JWT_LEEWAY", 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("PL_JWT_LEEWAY: %w", err)
	}

	cfg.RoleAdminGroups = parseCSV(getEnvDefault("PL_ROLE_ADMIN_GROUPS", "parentlib-admins"))

	// --- Объектное хранилище ---

	cfg.S3Bucket, err = getEnvRequired("PL_S3_BUCKET")
	if err != nil {
		return nil, err
	}

	cfg.S3Region = getEnvDefault("PL_S3_REGION", "us-east-1")
	cfg.S3Endpoint = strings.TrimRight(getEnvDefault("PL_S3_ENDPOINT", ""), "/")

	cfg.S3UsePathStyle, err = getEnvBool("PL_S3_USE_PATH_STYLE", cfg.S3Endpoint != "")
	if err != nil {
		return nil, fmt.Errorf("PL_S3_USE_PATH_STYLE: %w", err)
	}

	cfg.S3AccessKeyID = getEnvDefault("PL_S3_ACCESS_KEY_ID", "")
	cfg.S3SecretAccessKey = getEnvDefault("PL_S3_SECRET_ACCESS_KEY", "")
	if (cfg.S3AccessKeyID == "") != (cfg.S3SecretAccessKey == "") {
		return nil, fmt.Errorf("PL_S3_ACCESS_KEY_ID и PL_S3_SECRET_ACCESS_KEY задаются только вместе")
	}

	// PL_PRESIGN_TTL — время жизни pre-signed URL (SigV4 допускает максимум 7 дней)
	cfg.PresignTTL, err = getEnvDuration("PL_PRESIGN_TTL", 15*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("PL_PRESIGN_TTL: %w", err)
	}
	if cfg.PresignTTL < time.Minute || cfg.PresignTTL > 7*24*time.Hour {
		return nil, fmt.Errorf("PL_PRESIGN_TTL: значение %s вне допустимого диапазона 1m-168h", cfg.PresignTTL)
	}

	// --- Кэш ---

	cfg.CacheSize, err = getEnvInt("PL_CACHE_SIZE", 1000)
	if err != nil {
		return nil, fmt.Errorf("PL_CACHE_SIZE: %w", err)
	}
	if cfg.CacheSize < 1 || cfg.CacheSize > 100000 {
		return nil, fmt.Errorf("PL_CACHE_SIZE: значение %d вне допустимого диапазона 1-100000", cfg.CacheSize)
	}

	cfg.CacheTTL, err = getEnvDuration("PL_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, fmt.Errorf("PL_CACHE_TTL: %w", err)
	}

	// --- E-mail ---

	cfg.SESFromEmail = getEnvDefault("PL_SES_FROM_EMAIL", "")
	cfg.SESFromName = getEnvDefault("PL_SES_FROM_NAME", "Parent Library")
	cfg.SESRegion = getEnvDefault("PL_SES_REGION", cfg.S3Region)
	cfg.AppBaseURL = strings.TrimRight(getEnvDefault("PL_APP_BASE_URL", "http://localhost:5173"), "/")

	// --- Мониторинг зависимостей ---

	cfg.DephealthGroup = getEnvDefault("PL_DEPHEALTH_GROUP", "parentlib")

	cfg.DephealthCheckInterval, err = getEnvDuration("PL_DEPHEALTH_CHECK_INTERVAL", 15*time.Second)
	if err != nil {
		return nil, fmt.Errorf("PL_DEPHEALTH_CHECK_INTERVAL: %w", err)
	}

	return cfg, nil
}

// DatabaseURL возвращает URL подключения к PostgreSQL со схемой scheme
// (postgres для пула pgx и лейблов topologymetrics, pgx5 для golang-migrate).
func (c *Config) DatabaseURL(scheme string) string {
	u := url.URL{
		Scheme:   scheme,
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     fmt.Sprintf("%s:%d", c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + c.DBSSLMode,
	}
	return u.String()
}

// SetupLogger настраивает глобальный slog-логгер на основе конфигурации.
func SetupLogger(cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// --- Вспомогательные функции ---

// getEnvRequired возвращает значение переменной окружения или ошибку, если она не задана.
func getEnvRequired(key string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		return "", fmt.Errorf("%s: обязательная переменная окружения не задана", key)
	}
	return val, nil
}

// getEnvDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getEnvInt возвращает целочисленное значение переменной окружения или значение по умолчанию.
func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("некорректное целое число: %q", val)
	}
	return n, nil
}

// getEnvBool возвращает булево значение переменной окружения или значение по умолчанию.
func getEnvBool(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("некорректное булево значение: %q (используйте true/false)", val)
	}
	return b, nil
}

// getEnvDuration возвращает time.Duration из переменной окружения или значение по умолчанию.
func getEnvDuration(key string, defaultVal time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("некорректная длительность: %q (используйте формат Go: 30s, 1h, 15m)", val)
	}
	return d, nil
}

// parseLogLevel преобразует строку уровня логирования в slog.Level.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("недопустимый уровень %q, допустимые: debug, info, warn, error", level)
	}
}

// parseCSV разбирает строку, разделённую запятыми, на срез строк.
// Пробелы вокруг элементов убираются, пустые элементы игнорируются.
func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
