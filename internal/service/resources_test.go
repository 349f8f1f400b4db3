package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bigkaa/parentlib/internal/domain/model"
	"github.com/bigkaa/parentlib/internal/repository"
)

// --- Create ---

func TestResourceService_Create_Internal(t *testing.T) {
	env := newTestEnv(t)
	label := env.createLabel(t, "Sleep", model.CategoryHealthWellness)

	res, err := env.resources.Create(context.Background(), adminCaller, ResourceInput{
		Title:        "  Sleep basics ",
		Description:  "How toddlers sleep",
		ResourceType: model.ResourceTypeArticle,
		HostingType:  model.HostingInternal,
		Category:     model.CategoryHealthWellness,
		AgeGroups:    []model.AgeGroup{model.AgeGroupToddler, model.AgeGroupToddler, model.AgeGroupInfant},
		TimeToRead:   intPtr(7),
		LabelIDs:     []string{label.ID, label.ID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if res.Title != "Sleep basics" {
		t.Errorf("Title = %q, ожидался обрезанный заголовок", res.Title)
	}
	if res.Language != "en" {
		t.Errorf("Language = %q, ожидался en по умолчанию", res.Language)
	}
	if len(res.AgeGroups) != 2 {
		t.Errorf("AgeGroups = %v, ожидались без повторов", res.AgeGroups)
	}
	if len(res.Labels) != 1 || res.Labels[0].ID != label.ID {
		t.Errorf("Labels = %+v, ожидалась одна метка %s", res.Labels, label.ID)
	}
	if res.CreatedBy == nil {
		t.Error("CreatedBy должен указывать на администратора")
	}
	if res.ExternalURL != nil {
		t.Errorf("ExternalURL = %q, ожидался nil", *res.ExternalURL)
	}
}

func TestResourceService_Create_External(t *testing.T) {
	env := newTestEnv(t)

	res, err := env.resources.Create(context.Background(), adminCaller, ResourceInput{
		Title:        "Car seat guide",
		ResourceType: model.ResourceTypeWebsite,
		HostingType:  model.HostingExternal,
		Category:     model.CategorySafety,
		AgeGroups:    []model.AgeGroup{model.AgeGroupAllAges},
		ExternalURL:  strPtr(" https://example.org/car-seats "),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if res.ExternalURL == nil || *res.ExternalURL != "https://example.org/car-seats" {
		t.Errorf("ExternalURL = %v", res.ExternalURL)
	}
}

func TestResourceService_Create_Validation(t *testing.T) {
	env := newTestEnv(t)
	otherLabel := env.createLabel(t, "Homework", model.CategoryEducation)

	valid := func() ResourceInput {
		return ResourceInput{
			Title:        "Title",
			ResourceType: model.ResourceTypeVideo,
			HostingType:  model.HostingInternal,
			Category:     model.CategoryNutrition,
			AgeGroups:    []model.AgeGroup{model.AgeGroupPreschool},
		}
	}

	tests := []struct {
		name   string
		modify func(in *ResourceInput)
	}{
		{"пустой заголовок", func(in *ResourceInput) { in.Title = "   " }},
		{"длинный заголовок", func(in *ResourceInput) { in.Title = strings.Repeat("x", 256) }},
		{"неизвестная категория", func(in *ResourceInput) { in.Category = "COOKING" }},
		{"неизвестный тип", func(in *ResourceInput) { in.ResourceType = "BOOK" }},
		{"пустые возрастные группы", func(in *ResourceInput) { in.AgeGroups = nil }},
		{"неизвестная возрастная группа", func(in *ResourceInput) { in.AgeGroups = []model.AgeGroup{"ADULT"} }},
		{"отрицательное время", func(in *ResourceInput) { in.TimeToRead = intPtr(-1) }},
		{"ссылка у INTERNAL", func(in *ResourceInput) { in.ExternalURL = strPtr("https://example.org") }},
		{"EXTERNAL без ссылки", func(in *ResourceInput) { in.HostingType = model.HostingExternal }},
		{"относительная ссылка", func(in *ResourceInput) {
			in.HostingType = model.HostingExternal
			in.ExternalURL = strPtr("/relative")
		}},
		{"ftp ссылка", func(in *ResourceInput) {
			in.HostingType = model.HostingExternal
			in.ExternalURL = strPtr("ftp://example.org/file")
		}},
		{"метка другой категории", func(in *ResourceInput) { in.LabelIDs = []string{otherLabel.ID} }},
		{"несуществующая метка", func(in *ResourceInput) { in.LabelIDs = []string{"8c1d51f5-0000-4000-8000-000000000000"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.modify(&in)
			_, err := env.resources.Create(context.Background(), adminCaller, in)
			assertErrorIs(t, err, ErrValidation)
		})
	}
}

func TestResourceService_Create_Forbidden(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.resources.Create(context.Background(), parentCaller, ResourceInput{
		Title:        "Title",
		ResourceType: model.ResourceTypeArticle,
		HostingType:  model.HostingInternal,
		Category:     model.CategorySafety,
		AgeGroups:    []model.AgeGroup{model.AgeGroupTeen},
	})
	assertErrorIs(t, err, ErrForbidden)
}

// --- Get / Update / Delete ---

func TestResourceService_Get_NotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.resources.Get(context.Background(), "6f1e7c4a-0000-4000-8000-000000000000")
	assertErrorIs(t, err, ErrNotFound)
}

func TestResourceService_Get_UsesCache(t *testing.T) {
	env := newTestEnv(t)
	res := env.createResource(t, "Cached", model.CategorySafety)

	if _, ok := env.cache.Get(res.ID); !ok {
		t.Fatal("ресурс должен попасть в кэш после создания")
	}
	got, err := env.resources.Get(context.Background(), res.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Cached" {
		t.Errorf("Title = %q", got.Title)
	}
}

func TestResourceService_Update_ReplacesLabels(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.createLabel(t, "Tantrums", model.CategoryParentingSkills)
	b := env.createLabel(t, "Routines", model.CategoryParentingSkills)

	res, err := env.resources.Create(ctx, adminCaller, ResourceInput{
		Title:        "Calm parenting",
		ResourceType: model.ResourceTypeArticle,
		HostingType:  model.HostingInternal,
		Category:     model.CategoryParentingSkills,
		AgeGroups:    []model.AgeGroup{model.AgeGroupToddler},
		LabelIDs:     []string{a.ID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	ids := []string{b.ID}
	updated, err := env.resources.Update(ctx, adminCaller, res.ID, model.ResourceUpdate{
		Title:    strPtr("Calm parenting 2"),
		LabelIDs: &ids,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Calm parenting 2" {
		t.Errorf("Title = %q", updated.Title)
	}
	if len(updated.Labels) != 1 || updated.Labels[0].ID != b.ID {
		t.Errorf("Labels = %+v, ожидалась только метка %s", updated.Labels, b.ID)
	}

	cached, _ := env.cache.Get(res.ID)
	if cached == nil || cached.Title != "Calm parenting 2" {
		t.Error("кэш должен содержать обновлённый ресурс")
	}
}

func TestResourceService_Update_CategoryChangeNeedsLabels(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	l := env.createLabel(t, "Allergies", model.CategoryNutrition)

	res, err := env.resources.Create(ctx, adminCaller, ResourceInput{
		Title:        "Food allergies",
		ResourceType: model.ResourceTypeArticle,
		HostingType:  model.HostingInternal,
		Category:     model.CategoryNutrition,
		AgeGroups:    []model.AgeGroup{model.AgeGroupInfant},
		LabelIDs:     []string{l.ID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	cat := model.CategoryHealthWellness
	_, err = env.resources.Update(ctx, adminCaller, res.ID, model.ResourceUpdate{Category: &cat})
	assertErrorIs(t, err, ErrValidation)

	empty := []string{}
	updated, err := env.resources.Update(ctx, adminCaller, res.ID, model.ResourceUpdate{Category: &cat, LabelIDs: &empty})
	if err != nil {
		t.Fatalf("Update с пустыми метками: %v", err)
	}
	if updated.Category != cat || len(updated.Labels) != 0 {
		t.Errorf("ресурс = %+v", updated)
	}
}

func TestResourceService_Update_HostingSwitch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	res := env.createResource(t, "Podcast", model.CategoryMentalHealth)

	ext := model.HostingExternal
	_, err := env.resources.Update(ctx, adminCaller, res.ID, model.ResourceUpdate{HostingType: &ext})
	assertErrorIs(t, err, ErrValidation)

	updated, err := env.resources.Update(ctx, adminCaller, res.ID, model.ResourceUpdate{
		HostingType: &ext,
		ExternalURL: strPtr("https://podcasts.example.org/ep1"),
	})
	if err != nil {
		t.Fatalf("Update → EXTERNAL: %v", err)
	}
	if updated.ExternalURL == nil {
		t.Fatal("ожидалась внешняя ссылка")
	}

	internal := model.HostingInternal
	updated, err = env.resources.Update(ctx, adminCaller, res.ID, model.ResourceUpdate{HostingType: &internal})
	if err != nil {
		t.Fatalf("Update → INTERNAL: %v", err)
	}
	if updated.ExternalURL != nil {
		t.Errorf("ExternalURL = %q, ссылка должна быть удалена", *updated.ExternalURL)
	}
	if _, err := env.externals.Get(ctx, res.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("ожидалось отсутствие строки external_resources, ошибка %v", err)
	}
}

func TestResourceService_Update_NotFound(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.resources.Update(context.Background(), adminCaller, "missing", model.ResourceUpdate{Title: strPtr("x")})
	assertErrorIs(t, err, ErrNotFound)
}

func TestResourceService_Delete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	res := env.createResource(t, "To delete", model.CategorySafety)

	if err := env.resources.Delete(ctx, adminCaller, res.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := env.cache.Get(res.ID); ok {
		t.Error("ресурс должен быть удалён из кэша")
	}
	_, err := env.resources.Get(ctx, res.ID)
	assertErrorIs(t, err, ErrNotFound)

	assertErrorIs(t, env.resources.Delete(ctx, adminCaller, res.ID), ErrNotFound)
}

// --- Поиск ---

func TestResourceService_Search_SortCaseInsensitive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.createResource(t, "Toddler sleep", model.CategoryHealthWellness)
	env.createResource(t, "Teen sleep", model.CategoryHealthWellness)
	env.createResource(t, "Family meals", model.CategoryNutrition)

	page, err := env.resources.Search(ctx, parentCaller, ResourceQuery{Filter: repository.ResourceFilter{
		SortBy:    "TITLE",
		SortOrder: "ASC",
		Limit:     50,
	}})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	want := []string{"Family meals", "Teen sleep", "Toddler sleep"}
	if len(page.Items) != len(want) {
		t.Fatalf("Items = %d, ожидалось %d", len(page.Items), len(want))
	}
	for i, title := range want {
		if page.Items[i].Title != title {
			t.Errorf("Items[%d] = %q, ожидался %q", i, page.Items[i].Title, title)
		}
	}
}

func TestResourceService_Search_Facets(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	toddler := env.createResource(t, "Toddler sleep", model.CategoryHealthWellness, model.AgeGroupToddler)
	env.createResource(t, "Teen sleep", model.CategoryHealthWellness, model.AgeGroupTeen)
	everyone := env.createResource(t, "Family meals", model.CategoryNutrition, model.AgeGroupAllAges)

	page, err := env.resources.Search(ctx, parentCaller, ResourceQuery{Filter: repository.ResourceFilter{
		AgeGroups: []model.AgeGroup{model.AgeGroupToddler},
		SortBy:    "title",
		SortOrder: "asc",
		Limit:     50,
	}})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.Total != 2 {
		t.Fatalf("Total = %d, ожидалось 2 (TODDLER + ALL_AGES)", page.Total)
	}
	if page.Items[0].ID != everyone.ID || page.Items[1].ID != toddler.ID {
		t.Errorf("порядок = [%s %s]", page.Items[0].Title, page.Items[1].Title)
	}

	q := "SLEEP"
	page, err = env.resources.Search(ctx, parentCaller, ResourceQuery{Filter: repository.ResourceFilter{
		Query:      &q,
		Categories: []model.Category{model.CategoryHealthWellness},
		Limit:      1,
	}})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.Total != 2 || len(page.Items) != 1 || !page.HasMore {
		t.Errorf("page = total %d, items %d, has_more %v", page.Total, len(page.Items), page.HasMore)
	}
}

func TestResourceService_Search_Collection(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	saved := env.createResource(t, "Saved", model.CategorySafety)
	env.createResource(t, "Not saved", model.CategorySafety)

	coll, err := env.collections.Create(ctx, parentCaller, "Reading list")
	if err != nil {
		t.Fatalf("Create collection: %v", err)
	}
	if _, err := env.collections.AddItem(ctx, parentCaller, coll.ID, saved.ID); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	page, err := env.resources.Search(ctx, parentCaller, ResourceQuery{CollectionID: &coll.ID})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.Total != 1 || page.Items[0].ID != saved.ID {
		t.Errorf("ожидался только ресурс из коллекции, получено %d", page.Total)
	}

	_, err = env.resources.Search(ctx, otherCaller, ResourceQuery{CollectionID: &coll.ID})
	assertErrorIs(t, err, ErrForbidden)
}

func TestResourceService_Search_Bookmarked(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	bookmarked := env.createResource(t, "Bookmarked", model.CategoryEducation)
	env.createResource(t, "Other", model.CategoryEducation)

	if _, err := env.collections.AddBookmark(ctx, parentCaller, bookmarked.ID); err != nil {
		t.Fatalf("AddBookmark: %v", err)
	}

	page, err := env.resources.Search(ctx, parentCaller, ResourceQuery{Bookmarked: true})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.Total != 1 || page.Items[0].ID != bookmarked.ID {
		t.Errorf("ожидалась только закладка, получено %d", page.Total)
	}

	// у другого родителя закладок нет
	page, err = env.resources.Search(ctx, otherCaller, ResourceQuery{Bookmarked: true})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.Total != 0 {
		t.Errorf("Total = %d, ожидалось 0", page.Total)
	}
}

func TestValidateFilter(t *testing.T) {
	minT, maxT := 30, 5
	neg := -1
	after := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	badHosting := model.HostingType("CLOUD")

	tests := []struct {
		name    string
		filter  repository.ResourceFilter
		wantErr bool
	}{
		{name: "пустой фильтр", filter: repository.ResourceFilter{}},
		{name: "допустимая сортировка", filter: repository.ResourceFilter{SortBy: "views", SortOrder: "DESC"}},
		{name: "неизвестная категория", filter: repository.ResourceFilter{Categories: []model.Category{"X"}}, wantErr: true},
		{name: "неизвестная возрастная группа", filter: repository.ResourceFilter{AgeGroups: []model.AgeGroup{"X"}}, wantErr: true},
		{name: "неизвестный тип", filter: repository.ResourceFilter{ResourceTypes: []model.ResourceType{"X"}}, wantErr: true},
		{name: "неизвестный hosting", filter: repository.ResourceFilter{HostingType: &badHosting}, wantErr: true},
		{name: "min > max", filter: repository.ResourceFilter{MinTimeToRead: &minT, MaxTimeToRead: &maxT}, wantErr: true},
		{name: "отрицательный min", filter: repository.ResourceFilter{MinTimeToRead: &neg}, wantErr: true},
		{name: "after позже before", filter: repository.ResourceFilter{CreatedAfter: &after, CreatedBefore: &before}, wantErr: true},
		{name: "неизвестное поле сортировки", filter: repository.ResourceFilter{SortBy: "rating"}, wantErr: true},
		{name: "неизвестный порядок", filter: repository.ResourceFilter{SortOrder: "up"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilter(tt.filter)
			if tt.wantErr {
				assertErrorIs(t, err, ErrValidation)
			} else if err != nil {
				t.Errorf("неожиданная ошибка: %v", err)
			}
		})
	}
}

func TestResourceService_Popular(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	a := env.createResource(t, "A", model.CategorySafety)
	b := env.createResource(t, "B", model.CategorySafety)
	env.createResource(t, "Never viewed", model.CategorySafety)

	for _, c := range []Caller{parentCaller, otherCaller} {
		if _, err := env.views.Record(ctx, c, b.ID); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}
	if _, err := env.views.Record(ctx, parentCaller, a.ID); err != nil {
		t.Fatalf("Record: %v", err)
	}

	items, err := env.resources.Popular(ctx, intPtr(500))
	if err != nil {
		t.Fatalf("Popular: %v", err)
	}
	if len(items) != 2 || items[0].ID != b.ID {
		t.Fatalf("Popular = %d ресурсов, первый %v", len(items), items)
	}
	if items[0].ViewCount != 2 {
		t.Errorf("ViewCount = %d, ожидалось 2", items[0].ViewCount)
	}

	items, err = env.resources.Popular(ctx, intPtr(0))
	if err != nil {
		t.Fatalf("Popular: %v", err)
	}
	if len(items) != 1 {
		t.Errorf("limit=0 должен ограничиваться 1, получено %d", len(items))
	}
}

// --- Объектное хранилище ---

func TestResourceService_UploadURL(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	res := env.createResource(t, "Worksheet", model.CategoryEducation)

	signed, err := env.resources.UploadURL(ctx, adminCaller, res.ID, model.ObjectKindFile, "My Worksheet.pdf", "application/pdf")
	if err != nil {
		t.Fatalf("UploadURL: %v", err)
	}
	if signed.Method != "PUT" {
		t.Errorf("Method = %q", signed.Method)
	}
	if !strings.HasPrefix(signed.Key, "resources/"+res.ID+"/file/") || !strings.HasSuffix(signed.Key, "My_Worksheet.pdf") {
		t.Errorf("Key = %q", signed.Key)
	}

	got, err := env.resources.Get(ctx, res.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.FileKey == nil || *got.FileKey != signed.Key {
		t.Errorf("FileKey = %v, ожидался %q", got.FileKey, signed.Key)
	}

	download, err := env.resources.DownloadURL(ctx, res.ID, model.ObjectKindFile)
	if err != nil {
		t.Fatalf("DownloadURL: %v", err)
	}
	if download.Key != signed.Key || download.Method != "GET" {
		t.Errorf("download = %+v", download)
	}
}

func TestResourceService_UploadURL_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	internal := env.createResource(t, "Internal", model.CategoryEducation)
	external, err := env.resources.Create(ctx, adminCaller, ResourceInput{
		Title:        "External",
		ResourceType: model.ResourceTypeWebsite,
		HostingType:  model.HostingExternal,
		Category:     model.CategoryEducation,
		AgeGroups:    []model.AgeGroup{model.AgeGroupTeen},
		ExternalURL:  strPtr("https://example.org"),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	tests := []struct {
		name        string
		caller      Caller
		id          string
		kind        string
		filename    string
		contentType string
		want        error
	}{
		{"неизвестный kind", adminCaller, internal.ID, "video", "a.mp4", "", ErrValidation},
		{"пустое имя файла", adminCaller, internal.ID, model.ObjectKindImage, " ", "image/png", ErrValidation},
		{"обложка не image", adminCaller, internal.ID, model.ObjectKindImage, "a.pdf", "application/pdf", ErrValidation},
		{"файл у EXTERNAL", adminCaller, external.ID, model.ObjectKindFile, "a.pdf", "", ErrValidation},
		{"ресурс не найден", adminCaller, "missing", model.ObjectKindImage, "a.png", "image/png", ErrNotFound},
		{"родитель", parentCaller, internal.ID, model.ObjectKindImage, "a.png", "image/png", ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.resources.UploadURL(ctx, tt.caller, tt.id, tt.kind, tt.filename, tt.contentType)
			assertErrorIs(t, err, tt.want)
		})
	}
}

func TestResourceService_DownloadURL_NoObject(t *testing.T) {
	env := newTestEnv(t)
	res := env.createResource(t, "No image", model.CategorySafety)

	_, err := env.resources.DownloadURL(context.Background(), res.ID, model.ObjectKindImage)
	assertErrorIs(t, err, ErrNotFound)
}

func TestResourceService_ObjectStorageUnavailable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	res := env.createResource(t, "Broken storage", model.CategorySafety)

	env.presigner.err = errors.New("connection refused")
	_, err := env.resources.UploadURL(ctx, adminCaller, res.ID, model.ObjectKindImage, "a.png", "image/png")
	assertErrorIs(t, err, ErrStorageUnavailable)

	noStorage := NewResourceService(env.store, env.db, env.cache, nil, testLogger())
	_, err = noStorage.UploadURL(ctx, adminCaller, res.ID, model.ObjectKindImage, "a.png", "image/png")
	assertErrorIs(t, err, ErrStorageUnavailable)
}
