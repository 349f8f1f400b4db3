// cache.go — LRU-кэш карточек ресурсов с TTL.
// Обёртка над hashicorp/golang-lru/v2/expirable.
package service

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bigkaa/parentlib/internal/domain/model"
)

// Prometheus-метрики кэша.
var (
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pl_resource_cache_hits_total",
		Help: "Общее количество попаданий в кэш ресурсов.",
	})
	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pl_resource_cache_misses_total",
		Help: "Общее количество промахов кэша ресурсов.",
	})
)

// ResourceCache — LRU-кэш ресурсов по ID с автоматическим TTL.
// Кэш локален для экземпляра сервиса.
type ResourceCache struct {
	cache *expirable.LRU[string, *model.Resource]
}

// NewResourceCache создаёт кэш на maxSize записей с временем жизни ttl.
func NewResourceCache(maxSize int, ttl time.Duration) *ResourceCache {
	return &ResourceCache{cache: expirable.NewLRU[string, *model.Resource](maxSize, nil, ttl)}
}

// Get возвращает ресурс из кэша и обновляет метрики hit/miss.
func (c *ResourceCache) Get(id string) (*model.Resource, bool) {
	val, ok := c.cache.Get(id)
	if ok {
		cacheHitsTotal.Inc()
		return val, true
	}
	cacheMissesTotal.Inc()
	return nil, false
}

// Set добавляет или обновляет запись.
func (c *ResourceCache) Set(id string, res *model.Resource) {
	c.cache.Add(id, res)
}

// Delete инвалидирует запись.
func (c *ResourceCache) Delete(id string) {
	c.cache.Remove(id)
}

// Purge очищает кэш (переименование или удаление меток затрагивает многие ресурсы).
func (c *ResourceCache) Purge() {
	c.cache.Purge()
}

// Len возвращает количество записей.
func (c *ResourceCache) Len() int {
	return c.cache.Len()
}
