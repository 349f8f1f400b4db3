package database

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/bigkaa/parentlib/internal/config"
)

// setupTestDB запускает PostgreSQL в Docker-контейнере через testcontainers.
// Возвращает конфиг и функцию для очистки.
func setupTestDB(t *testing.T) *config.Config {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("Пропуск интеграционного теста: TEST_INTEGRATION не установлена")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"docker.io/postgres:17-alpine",
		postgres.WithDatabase("parentlib_test"),
		postgres.WithUsername("parentlib"),
		postgres.WithPassword("test-password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("Не удалось запустить PostgreSQL контейнер: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Ошибка остановки контейнера: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Не удалось получить host контейнера: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Не удалось получить port контейнера: %v", err)
	}

	// Создаём конфиг с минимальными значениями
	t.Setenv("PL_DB_HOST", host)
	t.Setenv("PL_DB_PORT", port.Port())
	t.Setenv("PL_DB_NAME", "parentlib_test")
	t.Setenv("PL_DB_USER", "parentlib")
	t.Setenv("PL_DB_PASSWORD", "test-password")
	t.Setenv("PL_DB_SSL_MODE", "disable")
	t.Setenv("PL_IDP_URL", "http://localhost:8080")
	t.Setenv("PL_IDP_CLIENT_ID", "test")
	t.Setenv("PL_IDP_CLIENT_SECRET", "test")
	t.Setenv("PL_S3_BUCKET", "test")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	return cfg
}

// TestConnect проверяет подключение к PostgreSQL через pgxpool.
func TestConnect(t *testing.T) {
	cfg := setupTestDB(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	pool, err := Connect(ctx, cfg, logger)
	if err != nil {
		t.Fatalf("Connect() вернул ошибку: %v", err)
	}
	defer pool.Close()

	// Проверяем ping
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("pool.Ping() вернул ошибку: %v", err)
	}
}

// TestMigrate проверяет применение миграций.
func TestMigrate(t *testing.T) {
	cfg := setupTestDB(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// Применяем миграции
	if err := Migrate(cfg, logger); err != nil {
		t.Fatalf("Migrate() вернул ошибку: %v", err)
	}

	// Повторное применение должно быть без ошибки (ErrNoChange)
	if err := Migrate(cfg, logger); err != nil {
		t.Fatalf("Повторный Migrate() вернул ошибку: %v", err)
	}

	// Проверяем, что таблицы созданы
	ctx := context.Background()
	pool, err := Connect(ctx, cfg, logger)
	if err != nil {
		t.Fatalf("Connect() вернул ошибку: %v", err)
	}
	defer pool.Close()

	tables := []string{
		"parents",
		"admin_users",
		"resources",
		"external_resources",
		"category_labels",
		"resource_labels",
		"collections",
		"collection_items",
		"admin_logs",
		"resource_views",
	}

	for _, table := range tables {
		var exists bool
		err := pool.QueryRow(ctx,
			`SELECT EXISTS (
				SELECT FROM information_schema.tables
				WHERE table_schema = 'public' AND table_name = $1
			)`, table).Scan(&exists)
		if err != nil {
			t.Fatalf("Ошибка проверки таблицы %s: %v", table, err)
		}
		if !exists {
			t.Errorf("Таблица %s не создана", table)
		}
	}

	// CHECK на возрастные группы: пустой набор запрещён
	_, err = pool.Exec(ctx,
		`INSERT INTO resources (title, resource_type, hosting_type, category, age_groups)
		 VALUES ('t', 'ARTICLE', 'INTERNAL', 'SAFETY', '{}')`)
	if err == nil {
		t.Error("вставка ресурса без возрастных групп должна завершиться ошибкой")
	}
}

func TestPoolConfig(t *testing.T) {
	base := config.Config{
		DBHost:     "db.example.com",
		DBPort:     5433,
		DBName:     "parentlib",
		DBUser:     "user",
		DBPassword: "p@ss/word",
		DBSSLMode:  "disable",
	}

	tests := []struct {
		name             string
		maxConns         int
		idle             time.Duration
		statementTimeout time.Duration
		wantMaxConns     int32
		wantIdle         time.Duration
		wantTimeout      string
	}{
		{
			name:     "значения из конфигурации",
			maxConns: 25, idle: 2 * time.Minute, statementTimeout: 1500 * time.Millisecond,
			wantMaxConns: 25, wantIdle: 2 * time.Minute, wantTimeout: "1500",
		},
		{
			name:         "нулевой таймаут не передаётся",
			maxConns:     3,
			wantMaxConns: 3, wantIdle: 30 * time.Minute, wantTimeout: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.DBMaxConns = tt.maxConns
			cfg.DBMaxConnIdleTime = tt.idle
			cfg.DBStatementTimeout = tt.statementTimeout

			poolCfg, err := poolConfig(&cfg)
			if err != nil {
				t.Fatalf("poolConfig() вернул ошибку: %v", err)
			}
			if poolCfg.MaxConns != tt.wantMaxConns {
				t.Errorf("MaxConns = %d, ожидается %d", poolCfg.MaxConns, tt.wantMaxConns)
			}
			if poolCfg.MaxConnIdleTime != tt.wantIdle {
				t.Errorf("MaxConnIdleTime = %v, ожидается %v", poolCfg.MaxConnIdleTime, tt.wantIdle)
			}
			params := poolCfg.ConnConfig.RuntimeParams
			if got := params["statement_timeout"]; got != tt.wantTimeout {
				t.Errorf("statement_timeout = %q, ожидается %q", got, tt.wantTimeout)
			}
			if params["application_name"] != "parentlib" {
				t.Errorf("application_name = %q", params["application_name"])
			}
			if poolCfg.ConnConfig.Host != "db.example.com" || poolCfg.ConnConfig.Port != 5433 {
				t.Errorf("host:port = %s:%d", poolCfg.ConnConfig.Host, poolCfg.ConnConfig.Port)
			}
			if poolCfg.ConnConfig.Password != "p@ss/word" {
				t.Errorf("пароль не раскодирован из URL: %q", poolCfg.ConnConfig.Password)
			}
		})
	}
}

// TestReadinessChecker проверяет ReadinessChecker.
func TestReadinessChecker(t *testing.T) {
	cfg := setupTestDB(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	pool, err := Connect(ctx, cfg, logger)
	if err != nil {
		t.Fatalf("Connect() вернул ошибку: %v", err)
	}
	defer pool.Close()

	checker := NewReadinessChecker(pool)

	// Проверяем готовность, должен вернуть "ok"
	status, msg := checker.CheckReady()
	if status != "ok" {
		t.Errorf("CheckReady() status = %q, message = %q; ожидали status = %q",
			status, msg, "ok")
	}
	if !strings.Contains(msg, "соединений") {
		t.Errorf("CheckReady() message = %q, ожидалась статистика пула", msg)
	}
}
