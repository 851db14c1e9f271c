package memory

import (
	"time"

	"bizchat-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// SnapshotCache keeps tenant snapshots keyed by chatbot key, so the
// hot chat path skips the three config queries on every turn.
type SnapshotCache struct {
	cache *cache.Cache
}

func NewSnapshotCache(ttl time.Duration) *SnapshotCache {
	// Purge expired snapshots at twice the TTL so stale entries
	// never outlive a config change for long.
	return &SnapshotCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *SnapshotCache) Save(snapshot *entity.TenantSnapshot) {
	c.cache.Set(snapshot.Tenant.ChatbotKey, snapshot, cache.DefaultExpiration)
}

func (c *SnapshotCache) Get(chatbotKey string) (*entity.TenantSnapshot, bool) {
	if x, found := c.cache.Get(chatbotKey); found {
		return x.(*entity.TenantSnapshot), true
	}
	return nil, false
}

func (c *SnapshotCache) Invalidate(chatbotKey string) {
	c.cache.Delete(chatbotKey)
}
