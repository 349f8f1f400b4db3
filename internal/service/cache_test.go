package service

import (
	"testing"
	"time"

	"github.com/bigkaa/parentlib/internal/domain/model"
)

// TestResourceCache_GetSet проверяет базовые операции Get/Set.
func TestResourceCache_GetSet(t *testing.T) {
	cache := NewResourceCache(100, 5*time.Minute)

	if _, ok := cache.Get("r-1"); ok {
		t.Fatal("ожидался cache miss для нового ключа")
	}

	cache.Set("r-1", &model.Resource{ID: "r-1", Title: "Sleep basics"})
	got, ok := cache.Get("r-1")
	if !ok {
		t.Fatal("ожидался cache hit после Set")
	}
	if got.Title != "Sleep basics" {
		t.Errorf("Title = %q, ожидался %q", got.Title, "Sleep basics")
	}
}

// TestResourceCache_DeletePurge проверяет инвалидацию.
func TestResourceCache_DeletePurge(t *testing.T) {
	cache := NewResourceCache(100, 5*time.Minute)
	cache.Set("a", &model.Resource{ID: "a"})
	cache.Set("b", &model.Resource{ID: "b"})

	cache.Delete("a")
	if _, ok := cache.Get("a"); ok {
		t.Fatal("ожидался cache miss после Delete")
	}

	cache.Purge()
	if cache.Len() != 0 {
		t.Fatalf("Len = %d после Purge, ожидался 0", cache.Len())
	}
}

// TestResourceCache_TTLExpiration проверяет автоматическое истечение TTL.
func TestResourceCache_TTLExpiration(t *testing.T) {
	cache := NewResourceCache(100, 50*time.Millisecond)
	cache.Set("ttl", &model.Resource{ID: "ttl"})

	if _, ok := cache.Get("ttl"); !ok {
		t.Fatal("ожидался cache hit сразу после Set")
	}

	time.Sleep(100 * time.Millisecond)

	if _, ok := cache.Get("ttl"); ok {
		t.Fatal("ожидался cache miss после истечения TTL")
	}
}

// TestResourceCache_Eviction проверяет вытеснение при превышении maxSize.
func TestResourceCache_Eviction(t *testing.T) {
	cache := NewResourceCache(2, 5*time.Minute)
	cache.Set("r1", &model.Resource{ID: "r1"})
	cache.Set("r2", &model.Resource{ID: "r2"})

	// r1 становится самым свежим
	cache.Get("r1")
	cache.Set("r3", &model.Resource{ID: "r3"})

	if _, ok := cache.Get("r2"); ok {
		t.Error("r2 должна быть вытеснена")
	}
	if _, ok := cache.Get("r1"); !ok {
		t.Error("r1 должна остаться в кэше")
	}
}
