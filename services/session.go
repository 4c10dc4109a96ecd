package services

import (
	"time"

	"opsdesk/model"

	"github.com/patrickmn/go-cache"
)

const ActorCacheExpiration = 24 * time.Hour

// ActorCache holds the ActorContext per access-token id, written at sign-in
// and evicted at sign-out. The middleware prefers it over the JWT claims so
// a department or role edit takes effect without waiting for token expiry.
var ActorCache = cache.New(ActorCacheExpiration, 10*time.Minute)

func CacheActor(tokenID string, actor model.ActorContext) {
	ActorCache.Set(tokenID, actor, cache.DefaultExpiration)
}

func CachedActor(tokenID string) (model.ActorContext, bool) {
	value, found := ActorCache.Get(tokenID)
	if !found {
		return model.ActorContext{}, false
	}
	actor, ok := value.(model.ActorContext)
	return actor, ok
}

func EvictActor(tokenID string) {
	ActorCache.Delete(tokenID)
}
