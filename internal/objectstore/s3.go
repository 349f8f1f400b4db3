// Пакет objectstore — pre-signed URL для S3-совместимого хранилища.
// Сервис не проксирует содержимое: клиент загружает и скачивает
// объекты напрямую по подписанным ссылкам.
package objectstore

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"
	"unicode"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/bigkaa/parentlib/internal/config"
)

// PresignedURL — подписанная ссылка на объект.
type PresignedURL struct {
	URL       string
	Method    string
	Key       string
	ExpiresAt time.Time
	// Заголовки, которые клиент обязан передать вместе с запросом
	Headers map[string]string
}

// Client — генератор pre-signed URL.
type Client struct {
	presign *s3.PresignClient
	bucket  string
	ttl     time.Duration
	logger  *slog.Logger
}

// New создаёт клиент по конфигурации.
// Статические ключи используются, если заданы, иначе стандартная цепочка AWS.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки AWS конфигурации: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		o.UsePathStyle = cfg.S3UsePathStyle
	})

	logger = logger.With(slog.String("component", "objectstore"))
	logger.Info("Объектное хранилище настроено",
		slog.String("bucket", cfg.S3Bucket),
		slog.String("region", cfg.S3Region),
		slog.String("endpoint", cfg.S3Endpoint),
	)

	return &Client{
		presign: s3.NewPresignClient(s3Client),
		bucket:  cfg.S3Bucket,
		ttl:     cfg.PresignTTL,
		logger:  logger,
	}, nil
}

// PresignPut возвращает URL для загрузки объекта (HTTP PUT).
func (c *Client) PresignPut(ctx context.Context, key, contentType string) (*PresignedURL, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	req, err := c.presign.PresignPutObject(ctx, input, s3.WithPresignExpires(c.ttl))
	if err != nil {
		return nil, fmt.Errorf("ошибка подписи PUT %s: %w", key, err)
	}

	headers := map[string]string{}
	if contentType != "" {
		headers["Content-Type"] = contentType
	}

	c.logger.Debug("Выдан URL загрузки", slog.String("key", key))
	return &PresignedURL{
		URL:       req.URL,
		Method:    req.Method,
		Key:       key,
		ExpiresAt: time.Now().Add(c.ttl).UTC(),
		Headers:   headers,
	}, nil
}

// PresignGet возвращает URL для скачивания объекта (HTTP GET).
func (c *Client) PresignGet(ctx context.Context, key string) (*PresignedURL, error) {
	req, err := c.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(c.ttl))
	if err != nil {
		return nil, fmt.Errorf("ошибка подписи GET %s: %w", key, err)
	}

	return &PresignedURL{
		URL:       req.URL,
		Method:    req.Method,
		Key:       key,
		ExpiresAt: time.Now().Add(c.ttl).UTC(),
		Headers:   map[string]string{},
	}, nil
}

// ObjectKey строит ключ объекта ресурса:
// resources/{resourceID}/{kind}/{uuid}-{имя файла}.
func ObjectKey(resourceID, kind, filename string) string {
	return path.Join("resources", resourceID, kind, uuid.NewString()+"-"+SanitizeFilename(filename))
}

// SanitizeFilename оставляет только безопасные символы имени файла.
// Пустой результат заменяется на "object".
func SanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('_')
		}
	}

	out := strings.Trim(b.String(), ".")
	if len(out) > 100 {
		out = out[len(out)-100:]
	}
	if out == "" {
		return "object"
	}
	return out
}
