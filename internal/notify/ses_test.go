package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"

	"github.com/bigkaa/parentlib/internal/config"
)

type fakeSender struct {
	inputs []*sesv2.SendEmailInput
	err    error
}

func (f *fakeSender) SendEmail(_ context.Context, in *sesv2.SendEmailInput, _ ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &sesv2.SendEmailOutput{MessageId: aws.String("msg-1")}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestNew_Disabled проверяет, что без адреса отправителя письма не отправляются.
func TestNew_Disabled(t *testing.T) {
	m, err := New(context.Background(), &config.Config{}, discardLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if m.Enabled() {
		t.Fatal("ожидался отключённый Mailer")
	}
	if err := m.SendNewsletterConfirmation(context.Background(), "a@example.org", "Anna"); err != nil {
		t.Errorf("ожидался nil, получена %v", err)
	}
}

func TestSendNewsletterConfirmation(t *testing.T) {
	sender := &fakeSender{}
	m := newMailer(sender, "news@example.org", "Parent Library", "https://app.example.org/", discardLogger())

	if err := m.SendNewsletterConfirmation(context.Background(), "anna@example.org", "Anna <b>"); err != nil {
		t.Fatalf("SendNewsletterConfirmation: %v", err)
	}
	if len(sender.inputs) != 1 {
		t.Fatalf("ожидался 1 вызов SendEmail, было %d", len(sender.inputs))
	}

	in := sender.inputs[0]
	if got := aws.ToString(in.FromEmailAddress); got != "Parent Library <news@example.org>" {
		t.Errorf("from = %q", got)
	}
	if len(in.Destination.ToAddresses) != 1 || in.Destination.ToAddresses[0] != "anna@example.org" {
		t.Errorf("to = %v", in.Destination.ToAddresses)
	}
	html := aws.ToString(in.Content.Simple.Body.Html.Data)
	if !strings.Contains(html, "https://app.example.org/profile") {
		t.Errorf("html без ссылки на профиль: %s", html)
	}
	if strings.Contains(html, "<b>") {
		t.Error("имя получателя не экранировано в HTML")
	}
	if !strings.Contains(aws.ToString(in.Content.Simple.Body.Text.Data), "Hi Anna <b>,") {
		t.Error("текстовая версия без имени получателя")
	}
}

func TestSendNewsletterConfirmation_Errors(t *testing.T) {
	sender := &fakeSender{err: errors.New("throttled")}
	m := newMailer(sender, "news@example.org", "", "https://app.example.org", discardLogger())

	if err := m.SendNewsletterConfirmation(context.Background(), "", "Anna"); err == nil {
		t.Error("ожидалась ошибка пустого адреса")
	}
	if err := m.SendNewsletterConfirmation(context.Background(), "anna@example.org", ""); err == nil {
		t.Error("ожидалась ошибка SES")
	}
	if got := aws.ToString(sender.inputs[0].FromEmailAddress); got != "news@example.org" {
		t.Errorf("from = %q", got)
	}
}
