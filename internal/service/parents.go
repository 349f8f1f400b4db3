// parents.go — сервис родителей: синхронизация с IdP, профиль, webhook,
// администрирование учётных записей.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bigkaa/parentlib/internal/domain/model"
	"github.com/bigkaa/parentlib/internal/idp"
	"github.com/bigkaa/parentlib/internal/repository"
)

// UserDirectory — поиск пользователей в IdP. Реализуется *idp.Client.
type UserDirectory interface {
	GetUser(ctx context.Context, id string) (*idp.User, error)
}

// Notifier — отправка служебных писем. Реализуется *notify.Mailer.
type Notifier interface {
	SendNewsletterConfirmation(ctx context.Context, toEmail, toName string) error
}

// ParentService — сервис учётных записей родителей.
type ParentService struct {
	store         *repository.Store
	tx            Transactor
	cache         *ResourceCache
	directory     UserDirectory
	notifier      Notifier
	webhookSecret string
	logger        *slog.Logger
}

// NewParentService создаёт сервис родителей.
// directory и notifier могут быть nil: синхронизация тогда берёт данные
// из токена, а письма не отправляются.
func NewParentService(
	store *repository.Store,
	tx Transactor,
	cache *ResourceCache,
	directory UserDirectory,
	notifier Notifier,
	webhookSecret string,
	logger *slog.Logger,
) *ParentService {
	return &ParentService{
		store:         store,
		tx:            tx,
		cache:         cache,
		directory:     directory,
		notifier:      notifier,
		webhookSecret: webhookSecret,
		logger:        logger.With(slog.String("component", "parent_service")),
	}
}

// Sync зеркалирует запись IdP вызывающего в таблицу parents.
// При недоступности IdP используются данные из токена.
func (s *ParentService) Sync(ctx context.Context, c Caller) (*model.Parent, error) {
	rec := c.Identity()

	if s.directory != nil {
		user, err := s.directory.GetUser(ctx, c.IdpUserID)
		if err == nil {
			rec = mergeIdentity(user.Identity(), rec)
		} else {
			s.logger.Warn("IdP недоступен при синхронизации, используются данные токена",
				slog.String("idp_user_id", c.IdpUserID),
				slog.String("error", err.Error()),
			)
		}
	}

	p, err := s.store.Parents.UpsertIdentity(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("синхронизация родителя: %w", err)
	}
	return p, nil
}

// mergeIdentity дополняет пустые поля записи IdP значениями из токена.
func mergeIdentity(primary, fallback model.IdentityRecord) model.IdentityRecord {
	if primary.IdpUserID == "" {
		primary.IdpUserID = fallback.IdpUserID
	}
	if primary.Email == "" {
		primary.Email = fallback.Email
	}
	if primary.FirstName == "" {
		primary.FirstName = fallback.FirstName
	}
	if primary.LastName == "" {
		primary.LastName = fallback.LastName
	}
	return primary
}

// Me возвращает профиль вызывающего (создаётся при первом обращении).
func (s *ParentService) Me(ctx context.Context, c Caller) (*model.Parent, error) {
	return ensureParent(ctx, s.store, c)
}

// UpdateMe частично обновляет профиль вызывающего.
// Включение рассылки отправляет письмо-подтверждение.
func (s *ParentService) UpdateMe(ctx context.Context, c Caller, upd model.ParentUpdate) (*model.Parent, error) {
	if err := validateParentUpdate(upd); err != nil {
		return nil, err
	}

	p, err := ensureParent(ctx, s.store, c)
	if err != nil {
		return nil, err
	}
	wasSubscribed := p.Newsletter

	applyParentUpdate(p, upd)
	if err := s.store.Parents.Update(ctx, p); err != nil {
		return nil, mapRepoError(err, "родитель")
	}

	if !wasSubscribed && p.Newsletter && s.notifier != nil {
		name := strings.TrimSpace(p.FirstName + " " + p.LastName)
		if err := s.notifier.SendNewsletterConfirmation(ctx, p.Email, name); err != nil {
			s.logger.Warn("Не удалось отправить подтверждение подписки",
				slog.String("parent_id", p.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	return p, nil
}

func validateParentUpdate(upd model.ParentUpdate) error {
	if upd.RelationshipType != nil && !upd.RelationshipType.Valid() {
		return validationf("недопустимый relationship_type %q", *upd.RelationshipType)
	}
	if upd.HouseholdType != nil && !upd.HouseholdType.Valid() {
		return validationf("недопустимый household_type %q", *upd.HouseholdType)
	}
	if upd.TopicsOfInterest != nil {
		for _, c := range *upd.TopicsOfInterest {
			if !c.Valid() {
				return validationf("недопустимая категория %q в topics_of_interest", c)
			}
		}
	}
	if upd.KidsAgeGroups != nil {
		for _, a := range *upd.KidsAgeGroups {
			if !a.Valid() {
				return validationf("недопустимая возрастная группа %q в kids_age_groups", a)
			}
		}
	}
	if upd.FirstName != nil && len(*upd.FirstName) > 100 {
		return validationf("first_name длиннее 100 символов")
	}
	if upd.LastName != nil && len(*upd.LastName) > 100 {
		return validationf("last_name длиннее 100 символов")
	}
	return nil
}

func applyParentUpdate(p *model.Parent, upd model.ParentUpdate) {
	if upd.FirstName != nil {
		p.FirstName = strings.TrimSpace(*upd.FirstName)
	}
	if upd.LastName != nil {
		p.LastName = strings.TrimSpace(*upd.LastName)
	}
	if upd.RelationshipType != nil {
		p.RelationshipType = upd.RelationshipType
	}
	if upd.HouseholdType != nil {
		p.HouseholdType = upd.HouseholdType
	}
	if upd.TopicsOfInterest != nil {
		p.TopicsOfInterest = *upd.TopicsOfInterest
	}
	if upd.KidsAgeGroups != nil {
		p.KidsAgeGroups = *upd.KidsAgeGroups
	}
	if upd.Newsletter != nil {
		p.Newsletter = *upd.Newsletter
	}
	if upd.Onboarded != nil {
		p.Onboarded = *upd.Onboarded
	}
}

// List возвращает родителей (только ADMIN).
func (s *ParentService) List(ctx context.Context, c Caller, q string, limit, offset int) (*Page[*model.Parent], error) {
	if !c.IsAdmin() {
		return nil, ErrForbidden
	}
	q = strings.TrimSpace(q)

	items, err := s.store.Parents.List(ctx, q, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("список родителей: %w", err)
	}
	total, err := s.store.Parents.Count(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("подсчёт родителей: %w", err)
	}
	return newPage(items, total, limit, offset), nil
}

// Get возвращает родителя по ID (только ADMIN).
func (s *ParentService) Get(ctx context.Context, c Caller, id string) (*model.Parent, error) {
	if !c.IsAdmin() {
		return nil, ErrForbidden
	}
	p, err := s.store.Parents.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "родитель")
	}
	return p, nil
}

// Delete удаляет родителя вместе с коллекциями и просмотрами (только ADMIN).
func (s *ParentService) Delete(ctx context.Context, c Caller, id string) error {
	err := audit(ctx, s.tx, c, model.ActionParentDelete, func(st *repository.Store, _ *model.AdminUser) (string, error) {
		p, err := st.Parents.GetByID(ctx, id)
		if err != nil {
			return "", mapRepoError(err, "родитель")
		}
		if err := st.Parents.Delete(ctx, id); err != nil {
			return "", mapRepoError(err, "родитель")
		}
		s.logger.Info("Родитель удалён", slog.String("parent_id", id))
		return fmt.Sprintf("parent %s (%s)", p.ID, p.Email), nil
	})
	if err != nil {
		return err
	}
	// view_count в карточках ресурсов учитывал просмотры удалённого родителя
	s.cache.Purge()
	return nil
}

// WebhookResult — результат обработки события webhook.
type WebhookResult struct {
	Event   string
	Applied bool
	Parent  *model.Parent
}

// HandleWebhook проверяет подпись и применяет событие IdP.
// user.created / user.updated обновляют запись родителя; остальные события
// подтверждаются без изменений (удаление выполняет только администратор).
func (s *ParentService) HandleWebhook(ctx context.Context, body []byte, signature string) (*WebhookResult, error) {
	if s.webhookSecret == "" {
		return nil, ErrWebhookDisabled
	}
	if err := idp.VerifySignature(s.webhookSecret, body, signature); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	var ev idp.WebhookEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, validationf("некорректное тело события: %v", err)
	}
	if ev.Type == "" {
		return nil, validationf("не указан тип события")
	}

	result := &WebhookResult{Event: ev.Type}
	switch ev.Type {
	case idp.EventUserCreated, idp.EventUserUpdated:
		if ev.User.ID == "" {
			return nil, validationf("не указан user.id")
		}
		p, err := s.store.Parents.UpsertIdentity(ctx, ev.User.Identity())
		if err != nil {
			return nil, fmt.Errorf("обработка события %s: %w", ev.Type, err)
		}
		result.Applied, result.Parent = true, p
	default:
		s.logger.Info("Событие webhook проигнорировано", slog.String("event", ev.Type))
	}

	return result, nil
}

// isIdpNotFound — пользователь отсутствует в IdP.
func isIdpNotFound(err error) bool {
	return errors.Is(err, idp.ErrUserNotFound)
}
