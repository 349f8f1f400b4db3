// Пакет notify — отправка писем через Amazon SES v2.
// Пустой адрес отправителя отключает отправку: методы возвращают nil.
package notify

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/bigkaa/parentlib/internal/config"
)

// emailSender — часть API SES, используемая Mailer.
type emailSender interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// Mailer отправляет служебные письма родителям.
type Mailer struct {
	client     emailSender
	fromEmail  string
	fromName   string
	appBaseURL string
	logger     *slog.Logger
}

// New создаёт Mailer. Если PL_SES_FROM_EMAIL не задан — отправка отключена.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Mailer, error) {
	logger = logger.With(slog.String("component", "mailer"))

	if cfg.SESFromEmail == "" {
		logger.Info("Отправка писем отключена: PL_SES_FROM_EMAIL не задан")
		return &Mailer{logger: logger}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.SESRegion))
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки AWS конфигурации: %w", err)
	}

	logger.Info("Отправка писем включена",
		slog.String("from", cfg.SESFromEmail),
		slog.String("region", cfg.SESRegion),
	)

	return newMailer(sesv2.NewFromConfig(awsCfg), cfg.SESFromEmail, cfg.SESFromName, cfg.AppBaseURL, logger), nil
}

func newMailer(client emailSender, fromEmail, fromName, appBaseURL string, logger *slog.Logger) *Mailer {
	return &Mailer{
		client:     client,
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: strings.TrimRight(appBaseURL, "/"),
		logger:     logger,
	}
}

// Enabled сообщает, настроена ли отправка.
func (m *Mailer) Enabled() bool {
	return m != nil && m.client != nil
}

var newsletterHTML = template.Must(template.New("newsletter").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<p>Hi {{.Name}},</p>
	<p>You are now subscribed to the parenting resources newsletter.</p>
	<p>You can change this at any time in <a href="{{.ProfileURL}}">your profile</a>.</p>
</body>
</html>`))

// SendNewsletterConfirmation отправляет подтверждение подписки на рассылку.
func (m *Mailer) SendNewsletterConfirmation(ctx context.Context, toEmail, toName string) error {
	if !m.Enabled() {
		m.logger.Debug("Письмо не отправлено: отправка отключена", slog.String("to", toEmail))
		return nil
	}
	if toEmail == "" {
		return fmt.Errorf("пустой адрес получателя")
	}
	if toName == "" {
		toName = "there"
	}

	profileURL := m.appBaseURL + "/profile"

	var html strings.Builder
	if err := newsletterHTML.Execute(&html, struct{ Name, ProfileURL string }{toName, profileURL}); err != nil {
		return fmt.Errorf("ошибка шаблона письма: %w", err)
	}
	text := fmt.Sprintf("Hi %s,\n\nYou are now subscribed to the parenting resources newsletter.\n"+
		"You can change this at any time in your profile: %s\n", toName, profileURL)

	return m.send(ctx, toEmail, "You're subscribed to the newsletter", html.String(), text)
}

func (m *Mailer) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	from := m.fromEmail
	if m.fromName != "" {
		from = fmt.Sprintf("%s <%s>", m.fromName, m.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject), Charset: aws.String("UTF-8")},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(htmlBody), Charset: aws.String("UTF-8")},
					Text: &types.Content{Data: aws.String(textBody), Charset: aws.String("UTF-8")},
				},
			},
		},
	}

	out, err := m.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("ошибка отправки письма %s: %w", toEmail, err)
	}

	m.logger.Info("Письмо отправлено",
		slog.String("to", toEmail),
		slog.String("message_id", aws.ToString(out.MessageId)),
	)
	return nil
}
