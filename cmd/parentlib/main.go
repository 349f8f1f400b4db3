// Точка входа parentlib — каталог ресурсов для родителей.
// Загружает конфигурацию, применяет миграции, подключается к PostgreSQL,
// инициализирует клиенты IdP, S3 и SES, создаёт сервисный слой и API handlers,
// запускает topologymetrics и HTTP-сервер с JWT middleware и graceful shutdown.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/stdlib"

	"github.com/bigkaa/parentlib/internal/api/generated"
	"github.com/bigkaa/parentlib/internal/api/handlers"
	"github.com/bigkaa/parentlib/internal/api/middleware"
	"github.com/bigkaa/parentlib/internal/api/validation"
	"github.com/bigkaa/parentlib/internal/config"
	"github.com/bigkaa/parentlib/internal/database"
	"github.com/bigkaa/parentlib/internal/idp"
	"github.com/bigkaa/parentlib/internal/notify"
	"github.com/bigkaa/parentlib/internal/objectstore"
	"github.com/bigkaa/parentlib/internal/repository"
	"github.com/bigkaa/parentlib/internal/server"
	"github.com/bigkaa/parentlib/internal/service"
)

func main() {
	// 1. Загрузка конфигурации из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Ошибка загрузки конфигурации", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 2. Настройка логирования
	logger := config.SetupLogger(cfg)
	logger.Info("parentlib запускается",
		slog.String("version", config.Version),
		slog.Int("port", cfg.Port),
	)

	if os.Getenv("PL_DEPHEALTH_GROUP") == "" {
		logger.Warn("PL_DEPHEALTH_GROUP не задана, используется значение по умолчанию",
			slog.String("default", cfg.DephealthGroup),
		)
	}

	// 3. Применение миграций БД
	logger.Info("Применение миграций БД...")
	if err := database.Migrate(cfg, logger); err != nil {
		logger.Error("Ошибка миграций БД", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 4. Подключение к PostgreSQL (pgxpool)
	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		logger.Error("Ошибка подключения к PostgreSQL", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	// 4.1 Адаптер pgxpool → *sql.DB для topologymetrics (connection pool mode)
	pgDB := stdlib.OpenDBFromPool(pool)
	defer pgDB.Close()

	// 5. HTTP-клиент IdP (с кастомным CA, если задан)
	var idpHTTPClient *http.Client
	if cfg.IdpCACertPath != "" {
		idpHTTPClient, err = middleware.HTTPClientWithCA(cfg.IdpCACertPath, cfg.JWKSClientTimeout)
		if err != nil {
			logger.Error("Ошибка загрузки CA-сертификата",
				slog.String("path", cfg.IdpCACertPath),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		logger.Info("CA-сертификат загружен", slog.String("path", cfg.IdpCACertPath))
	}

	// 6. Admin API клиент Identity Provider
	idpClient := idp.New(
		cfg.IdpURL,
		cfg.IdpRealm,
		cfg.IdpClientID,
		cfg.IdpClientSecret,
		idpHTTPClient, // nil — стандартный пул CA
		logger,
	)
	logger.Info("IdP клиент создан",
		slog.String("url", cfg.IdpURL),
		slog.String("realm", cfg.IdpRealm),
	)

	// 7. Объектное хранилище (pre-signed URL)
	objStore, err := objectstore.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("Ошибка инициализации объектного хранилища", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 8. Почтовые уведомления (опционально)
	mailer, err := notify.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("Ошибка инициализации отправки писем", slog.String("error", err.Error()))
		os.Exit(1)
	}
	var notifier service.Notifier
	if mailer.Enabled() {
		notifier = mailer
	}

	if cfg.IdpWebhookSecret == "" {
		logger.Warn("PL_IDP_WEBHOOK_SECRET не задан, webhook IdP отключён")
	}

	// 9. Repositories и транзакции
	store := repository.NewStore(pool)
	txRunner := repository.NewTxRunner(pool)

	// 10. Services
	cache := service.NewResourceCache(cfg.CacheSize, cfg.CacheTTL)
	parentsSvc := service.NewParentService(store, txRunner, cache, idpClient, notifier, cfg.IdpWebhookSecret, logger)
	adminsSvc := service.NewAdminService(store, txRunner, idpClient, logger)
	svc := handlers.Services{
		Parents:           parentsSvc,
		Admins:            adminsSvc,
		Resources:         service.NewResourceService(store, txRunner, cache, objStore, logger),
		Labels:            service.NewLabelService(store, txRunner, cache, logger),
		Collections:       service.NewCollectionService(store, logger),
		ExternalResources: service.NewExternalResourceService(store, txRunner, cache, logger),
		Views:             service.NewViewService(store, cache, logger),
		AdminLogs:         service.NewAdminLogService(store, logger),
	}

	// 11. Readiness checkers (PostgreSQL, JWKS и Admin API IdP)
	pgChecker := database.NewReadinessChecker(pool)
	idpChecker, err := middleware.NewIdPReadinessChecker(cfg.JWTJWKSURL, cfg.IdpCACertPath, cfg.IdpReadinessTimeout)
	if err != nil {
		logger.Error("Ошибка создания IdP readiness checker", slog.String("error", err.Error()))
		os.Exit(1)
	}
	healthHandler := handlers.NewHealthHandler(pgChecker, idpChecker).WithIdPAdminChecker(idpClient)

	// 12. API handler (реализует generated.ServerInterface)
	apiHandler := handlers.NewAPIHandler(healthHandler, svc, logger)

	// 13. JWT middleware; локальная роль берётся из admin_users
	jwtAuth, err := middleware.NewJWTAuth(
		cfg.JWTJWKSURL,
		cfg.IdpCACertPath,
		cfg.JWTIssuer,
		adminsSvc,
		cfg.RoleAdminGroups,
		cfg.JWKSClientTimeout,
		cfg.JWKSRefreshInterval,
		cfg.JWTLeeway,
		logger,
	)
	if err != nil {
		logger.Error("Ошибка создания JWT middleware", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("JWT middleware инициализирован",
		slog.String("jwks_url", cfg.JWTJWKSURL),
		slog.String("issuer", cfg.JWTIssuer),
	)

	// 14. Валидация запросов по OpenAPI (опционально)
	var validator *validation.Validator
	if cfg.OpenAPIValidation {
		doc, docErr := generated.GetSwagger()
		if docErr != nil {
			logger.Error("Ошибка загрузки OpenAPI-спецификации", slog.String("error", docErr.Error()))
			os.Exit(1)
		}
		validator, err = validation.New(doc, logger)
		if err != nil {
			logger.Error("Ошибка создания валидатора запросов", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// 15. topologymetrics — мониторинг зависимостей (PostgreSQL, IdP, S3)
	dephealthSvc, dephealthErr := service.NewDephealthService(
		"parentlib",
		cfg.DephealthGroup,
		service.DephealthTargets{
			DB:             pgDB,
			PostgresURL:    cfg.DatabaseURL("postgres"),
			JWKSURL:        cfg.JWTJWKSURL,
			ObjectStoreURL: cfg.S3Endpoint,
		},
		cfg.DephealthCheckInterval,
		logger,
	)
	if dephealthErr != nil {
		logger.Warn("topologymetrics недоступен, запуск без мониторинга зависимостей",
			slog.String("error", dephealthErr.Error()),
		)
		dephealthSvc = nil
	} else if startErr := dephealthSvc.Start(ctx); startErr != nil {
		logger.Warn("Ошибка запуска topologymetrics", slog.String("error", startErr.Error()))
	} else {
		logger.Info("topologymetrics запущен",
			slog.String("group", cfg.DephealthGroup),
			slog.String("check_interval", cfg.DephealthCheckInterval.String()),
		)
	}

	// 16. Создание и запуск HTTP-сервера
	srv := server.New(cfg, logger, apiHandler, jwtAuth, validator)
	if err := srv.Run(); err != nil {
		logger.Error("Ошибка сервера", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 17. Graceful shutdown фоновых задач
	if dephealthSvc != nil {
		dephealthSvc.Stop()
	}

	logger.Info("parentlib остановлен")
}
