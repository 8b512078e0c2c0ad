package cache

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// The cache holds large read-only objects that are expensive to load, such
// as opening books, so that loading the same file twice shares one copy.

type cache struct {
	sync.Mutex
	objects map[string]any
}

type loadFunc func(key string) (any, error)

var (
	globalObjectCache *cache
	createOnce        sync.Once
)

func (c *cache) get(key string, loadFunc loadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	log.Debug().Str("key", key).Msg("loading into cache")
	obj, err := loadFunc(key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

func global() *cache {
	createOnce.Do(func() {
		globalObjectCache = &cache{objects: make(map[string]any)}
	})
	return globalObjectCache
}

// Load returns the object cached under key, calling loadFunc to create it
// the first time. Failed loads are not cached.
func Load(key string, loadFunc loadFunc) (any, error) {
	return global().get(key, loadFunc)
}

// Evict drops key so that the next Load reads it again.
func Evict(key string) {
	c := global()
	c.Lock()
	defer c.Unlock()
	delete(c.objects, key)
}
