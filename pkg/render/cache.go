package render

import (
	"container/list"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/vango-dev/htmldoom/pkg/element"
)

// CacheStats reports cache activity.
type CacheStats struct {
	Entries   int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// cache is an LRU of rendered outputs keyed by argument lists.
type cache struct {
	mu       sync.Mutex
	max      int
	entries  map[uint64][]*list.Element
	order    *list.List
	observer Observer

	hits      uint64
	misses    uint64
	evictions uint64
}

type cacheItem struct {
	hash uint64
	key  []element.Element
	html string
}

func newCache(max int, observer Observer) *cache {
	return &cache{
		max:      max,
		entries:  make(map[uint64][]*list.Element),
		order:    list.New(),
		observer: observer,
	}
}

// keyHash combines the structural hashes of an argument list.
func keyHash(els []element.Element) uint64 {
	d := xxhash.New()
	var b [8]byte
	for _, el := range els {
		h := el.Hash()
		for i := range b {
			b[i] = byte(h >> (8 * i))
		}
		d.Write(b[:])
	}
	return d.Sum64()
}

func sameKey(a, b []element.Element) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// get returns the cached output for key and moves it to the front.
func (c *cache) get(hash uint64, key []element.Element) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, elem := range c.entries[hash] {
		item := elem.Value.(*cacheItem)
		if sameKey(item.key, key) {
			c.order.MoveToFront(elem)
			c.hits++
			if c.observer != nil {
				c.observer.CacheHit()
			}
			return item.html, true
		}
	}
	c.misses++
	if c.observer != nil {
		c.observer.CacheMiss()
	}
	return "", false
}

// put stores an output, evicting the least recently used entries when full.
func (c *cache) put(hash uint64, key []element.Element, html string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, elem := range c.entries[hash] {
		item := elem.Value.(*cacheItem)
		if sameKey(item.key, key) {
			item.html = html
			c.order.MoveToFront(elem)
			return
		}
	}

	for c.order.Len() >= c.max {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.remove(oldest)
		c.evictions++
		if c.observer != nil {
			c.observer.CacheEvict()
		}
	}

	item := &cacheItem{hash: hash, key: key, html: html}
	c.entries[hash] = append(c.entries[hash], c.order.PushFront(item))
}

// remove unlinks elem. The caller holds mu.
func (c *cache) remove(elem *list.Element) {
	item := elem.Value.(*cacheItem)
	c.order.Remove(elem)

	bucket := c.entries[item.hash]
	for i, e := range bucket {
		if e == elem {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(c.entries, item.hash)
	} else {
		c.entries[item.hash] = bucket
	}
}

func (c *cache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[uint64][]*list.Element)
	c.order.Init()
	c.hits, c.misses, c.evictions = 0, 0, 0
}

func (c *cache) stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{
		Entries:   c.order.Len(),
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}
