package repository

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/bigkaa/parentlib/internal/config"
	"github.com/bigkaa/parentlib/internal/database"
	"github.com/bigkaa/parentlib/internal/domain/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

// setupTestDB запускает PostgreSQL контейнер, применяет миграции.
// Возвращает pgxpool.Pool и функцию очистки.
func setupTestDB(t *testing.T) *pgxpool.Pool {
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

	// Настраиваем env для config.Load()
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

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// Применяем миграции
	if err := database.Migrate(cfg, logger); err != nil {
		t.Fatalf("Ошибка миграций: %v", err)
	}

	// Подключаемся
	pool, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		t.Fatalf("Ошибка подключения: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	return pool
}


// seedResource создаёт ресурс для тестов.
func seedResource(t *testing.T, s *Store, title string, category model.Category, ages ...model.AgeGroup) *model.Resource {
	t.Helper()
	res := &model.Resource{
		Title:        title,
		Description:  "описание " + title,
		ResourceType: model.ResourceTypeArticle,
		HostingType:  model.HostingInternal,
		Category:     category,
		AgeGroups:    ages,
		Language:     "en",
		TimeToRead:   5,
	}
	if err := s.Resources.Create(context.Background(), res); err != nil {
		t.Fatalf("Create(%q) ошибка: %v", title, err)
	}
	return res
}

// --- Тесты ParentRepository ---

func TestParentCRUD(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewParentRepository(pool)

	p, err := repo.UpsertIdentity(ctx, model.IdentityRecord{
		IdpUserID: "idp-user-1", Email: "anna@example.com", FirstName: "Anna",
	})
	if err != nil {
		t.Fatalf("UpsertIdentity() ошибка: %v", err)
	}
	if p.ID == "" || p.Onboarded {
		t.Errorf("неожиданный родитель после создания: %+v", p)
	}

	// Повторный upsert с пустым email не затирает сохранённый
	p2, err := repo.UpsertIdentity(ctx, model.IdentityRecord{IdpUserID: "idp-user-1", LastName: "Ivanova"})
	if err != nil {
		t.Fatalf("повторный UpsertIdentity() ошибка: %v", err)
	}
	if p2.ID != p.ID || p2.Email != "anna@example.com" || p2.LastName != "Ivanova" {
		t.Errorf("после upsert: %+v", p2)
	}

	// Update
	household := model.HouseholdTwoParent
	p2.HouseholdType = &household
	p2.KidsAgeGroups = []model.AgeGroup{model.AgeGroupToddler}
	p2.Newsletter = true
	if err := repo.Update(ctx, p2); err != nil {
		t.Fatalf("Update() ошибка: %v", err)
	}
	got, err := repo.GetByIdpUserID(ctx, "idp-user-1")
	if err != nil {
		t.Fatalf("GetByIdpUserID() ошибка: %v", err)
	}
	if got.HouseholdType == nil || *got.HouseholdType != household || !got.Newsletter {
		t.Errorf("после Update: %+v", got)
	}
	if len(got.KidsAgeGroups) != 1 || got.KidsAgeGroups[0] != model.AgeGroupToddler {
		t.Errorf("KidsAgeGroups = %v", got.KidsAgeGroups)
	}

	// List + Count с поиском
	list, err := repo.List(ctx, "ANNA", 10, 0)
	if err != nil || len(list) != 1 {
		t.Fatalf("List() = %d записей, ошибка %v; хотели 1", len(list), err)
	}
	count, err := repo.Count(ctx, "nobody")
	if err != nil || count != 0 {
		t.Errorf("Count(nobody) = %d, %v; хотели 0", count, err)
	}

	// Delete
	if err := repo.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete() ошибка: %v", err)
	}
	if _, err := repo.GetByID(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("После Delete ожидали ErrNotFound, получили: %v", err)
	}
}

// --- Тесты AdminUserRepository + AdminLogRepository ---

func TestAdminUsersAndLogs(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	s := NewStore(pool)

	a := &model.AdminUser{IdpUserID: "idp-admin-1", Email: "admin@example.com", Name: "Admin"}
	if err := s.Admins.Create(ctx, a); err != nil {
		t.Fatalf("Create() ошибка: %v", err)
	}
	if a.Role != "ADMIN" {
		t.Errorf("Role = %q, хотели ADMIN", a.Role)
	}
	if err := s.Admins.Create(ctx, &model.AdminUser{IdpUserID: "idp-admin-1"}); !errors.Is(err, ErrConflict) {
		t.Errorf("дубликат: ожидали ErrConflict, получили %v", err)
	}

	// Журнал: запись с несуществующим администратором отклоняется
	err := s.AdminLogs.Create(ctx, &model.AdminLog{
		AdminID: "00000000-0000-0000-0000-000000000000", Action: "x",
	})
	if !errors.Is(err, ErrReferenceNotFound) {
		t.Errorf("ожидали ErrReferenceNotFound, получили %v", err)
	}

	for _, action := range []string{model.ActionLabelCreate, model.ActionResourceCreate} {
		if err := s.AdminLogs.Create(ctx, &model.AdminLog{AdminID: a.ID, Action: action}); err != nil {
			t.Fatalf("AdminLogs.Create() ошибка: %v", err)
		}
	}
	action := model.ActionResourceCreate
	logs, err := s.AdminLogs.List(ctx, AdminLogFilter{Action: &action}, 10, 0)
	if err != nil || len(logs) != 1 {
		t.Fatalf("List() = %d, %v; хотели 1", len(logs), err)
	}
	total, _ := s.AdminLogs.Count(ctx, AdminLogFilter{AdminID: &a.ID})
	if total != 2 {
		t.Errorf("Count() = %d, хотели 2", total)
	}

	// Администратор с записями в журнале не удаляется, журнал сохраняется
	if err := s.Admins.Delete(ctx, a.ID); !errors.Is(err, ErrConflict) {
		t.Errorf("Delete() с журналом: ожидали ErrConflict, получили %v", err)
	}
	total, _ = s.AdminLogs.Count(ctx, AdminLogFilter{AdminID: &a.ID})
	if total != 2 {
		t.Errorf("после попытки удаления Count() = %d, хотели 2", total)
	}
}

// --- Тесты ResourceRepository ---

func TestResourceSearch(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	s := NewStore(pool)

	sleep := seedResource(t, s, "Toddler sleep routines", model.CategoryParentingSkills, model.AgeGroupToddler)
	teen := seedResource(t, s, "Talking to teens", model.CategoryMentalHealth, model.AgeGroupTeen)
	all := seedResource(t, s, "Family meals 100%", model.CategoryNutrition, model.AgeGroupAllAges)

	label := &model.CategoryLabel{Name: "sleep", Category: model.CategoryParentingSkills}
	if err := s.Labels.Create(ctx, label); err != nil {
		t.Fatalf("Labels.Create() ошибка: %v", err)
	}
	if _, err := s.ResourceLabels.Attach(ctx, sleep.ID, label.ID); err != nil {
		t.Fatalf("Attach() ошибка: %v", err)
	}
	if _, err := s.ResourceLabels.Attach(ctx, sleep.ID, label.ID); !errors.Is(err, ErrConflict) {
		t.Errorf("повторный Attach: ожидали ErrConflict, получили %v", err)
	}

	tests := []struct {
		name    string
		filter  ResourceFilter
		wantIDs []string
	}{
		{
			name:    "без фильтров",
			filter:  ResourceFilter{},
			wantIDs: []string{all.ID, teen.ID, sleep.ID},
		},
		{
			name:    "возраст: ALL_AGES подходит всегда",
			filter:  ResourceFilter{AgeGroups: []model.AgeGroup{model.AgeGroupToddler}},
			wantIDs: []string{all.ID, sleep.ID},
		},
		{
			name: "категории через OR",
			filter: ResourceFilter{Categories: []model.Category{
				model.CategoryMentalHealth, model.CategoryNutrition,
			}},
			wantIDs: []string{all.ID, teen.ID},
		},
		{
			name:    "метка",
			filter:  ResourceFilter{LabelIDs: []string{label.ID}},
			wantIDs: []string{sleep.ID},
		},
		{
			name:    "текст с символом %",
			filter:  ResourceFilter{Query: strPtr("100%")},
			wantIDs: []string{all.ID},
		},
		{
			name:    "сортировка по заголовку",
			filter:  ResourceFilter{SortBy: "title", SortOrder: "asc"},
			wantIDs: []string{all.ID, teen.ID, sleep.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.filter.Limit = 50
			items, total, err := s.Resources.Search(ctx, tt.filter)
			if err != nil {
				t.Fatalf("Search() ошибка: %v", err)
			}
			if total != len(tt.wantIDs) || len(items) != len(tt.wantIDs) {
				t.Fatalf("Search() = %d/%d, хотели %d", len(items), total, len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if items[i].ID != id {
					t.Errorf("items[%d] = %q (%s), хотели %q", i, items[i].ID, items[i].Title, id)
				}
			}
		})
	}

	got, err := s.Resources.GetByID(ctx, sleep.ID)
	if err != nil {
		t.Fatalf("GetByID() ошибка: %v", err)
	}
	if len(got.Labels) != 1 || got.Labels[0].Name != "sleep" {
		t.Errorf("Labels = %+v", got.Labels)
	}
}

// TestReplaceLabelsRollback проверяет, что замена меток атомарна:
// при ошибке внутри транзакции старые метки сохраняются.
func TestReplaceLabelsRollback(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	s := NewStore(pool)
	tx := NewTxRunner(pool)

	res := seedResource(t, s, "Bedtime", model.CategorySafety, model.AgeGroupInfant)
	label := &model.CategoryLabel{Name: "night", Category: model.CategorySafety}
	if err := s.Labels.Create(ctx, label); err != nil {
		t.Fatalf("Labels.Create() ошибка: %v", err)
	}
	if err := s.ResourceLabels.Replace(ctx, res.ID, []string{label.ID}); err != nil {
		t.Fatalf("Replace() ошибка: %v", err)
	}

	// Несуществующая метка → FK violation → откат, включая удаление старых меток
	err := tx.InTx(ctx, func(txs *Store) error {
		return txs.ResourceLabels.Replace(ctx, res.ID, []string{"00000000-0000-0000-0000-000000000001"})
	})
	if !errors.Is(err, ErrReferenceNotFound) {
		t.Fatalf("ожидали ErrReferenceNotFound, получили %v", err)
	}

	pairs, err := s.ResourceLabels.List(ctx, res.ID)
	if err != nil {
		t.Fatalf("List() ошибка: %v", err)
	}
	if len(pairs) != 1 || pairs[0].LabelID != label.ID {
		t.Errorf("после отката метки = %+v, хотели исходную", pairs)
	}
}

// --- Тесты коллекций и просмотров ---

func TestCollectionsAndViews(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	s := NewStore(pool)

	parent, err := s.Parents.UpsertIdentity(ctx, model.IdentityRecord{IdpUserID: "idp-parent"})
	if err != nil {
		t.Fatalf("UpsertIdentity() ошибка: %v", err)
	}
	res := seedResource(t, s, "Potty training", model.CategoryChildDevelopment, model.AgeGroupToddler)

	c := &model.Collection{ParentID: parent.ID, Name: "Sleep"}
	if err := s.Collections.Create(ctx, c); err != nil {
		t.Fatalf("Create() ошибка: %v", err)
	}
	if err := s.Collections.Create(ctx, &model.Collection{ParentID: parent.ID, Name: "Sleep"}); !errors.Is(err, ErrConflict) {
		t.Errorf("дубликат имени: ожидали ErrConflict, получили %v", err)
	}

	if _, err := s.Collections.AddItem(ctx, c.ID, res.ID); err != nil {
		t.Fatalf("AddItem() ошибка: %v", err)
	}
	if _, err := s.Collections.AddItem(ctx, c.ID, res.ID); !errors.Is(err, ErrConflict) {
		t.Errorf("повторный AddItem: ожидали ErrConflict, получили %v", err)
	}

	got, err := s.Collections.GetByID(ctx, c.ID)
	if err != nil || got.ItemCount != 1 {
		t.Fatalf("GetByID() = %+v, %v; хотели ItemCount=1", got, err)
	}

	items, total, err := s.Resources.Search(ctx, ResourceFilter{CollectionIDs: []string{c.ID}, Limit: 10})
	if err != nil || total != 1 || items[0].ID != res.ID {
		t.Errorf("Search по коллекции = %d, %v", total, err)
	}

	// Два просмотра одной пары — одна строка с view_count = 2
	for i := 0; i < 2; i++ {
		if _, err := s.ResourceViews.Record(ctx, parent.ID, res.ID); err != nil {
			t.Fatalf("Record() ошибка: %v", err)
		}
	}
	views, err := s.ResourceViews.ListByParent(ctx, parent.ID, 10, 0)
	if err != nil {
		t.Fatalf("ListByParent() ошибка: %v", err)
	}
	if len(views) != 1 || views[0].ViewCount != 2 {
		t.Errorf("views = %+v, хотели одну строку с view_count=2", views)
	}
	stats, err := s.ResourceViews.Stats(ctx, res.ID)
	if err != nil || stats.TotalViews != 2 || stats.UniqueViewers != 1 {
		t.Errorf("Stats() = %+v, %v", stats, err)
	}

	popular, err := s.Resources.Popular(ctx, 5)
	if err != nil || len(popular) != 1 || popular[0].ViewCount != 2 {
		t.Errorf("Popular() = %+v, %v", popular, err)
	}
}

func strPtr(s string) *string { return &s }
