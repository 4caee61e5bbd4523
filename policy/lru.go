package policy

import (
	"container/list"

	cachesim "github.com/sinhaaman3256/CacheSim-Cache-Replacement-Policy-Simulator"
)

// lruItem is the payload of a recencyList node.
type lruItem struct {
	key   string
	value string
}

// LRUCache discards the least-recently-used entry first. recencyList runs
// MRU-to-LRU front-to-back; items indexes it by key for O(1) lookup.
type LRUCache struct {
	capacity    int
	recencyList *list.List
	items       map[string]*list.Element
}

var _ Policy = (*LRUCache)(nil)

func newLRU(capacity int) *LRUCache {
	return &LRUCache{
		capacity:    capacity,
		recencyList: list.New(),
		items:       make(map[string]*list.Element, capacity),
	}
}

func (p *LRUCache) Get(key string) (string, bool) {
	el, ok := p.items[key]
	if !ok {
		return "", false
	}
	p.recencyList.MoveToFront(el)
	return el.Value.(*lruItem).value, true
}

func (p *LRUCache) Put(key, value string) (string, bool) {
	if el, ok := p.items[key]; ok {
		el.Value.(*lruItem).value = value
		p.recencyList.MoveToFront(el)
		return "", false
	}

	var evictedKey string
	var evicted bool
	if p.recencyList.Len() >= p.capacity {
		back := p.recencyList.Back()
		evictedItem := back.Value.(*lruItem)
		evictedKey, evicted = evictedItem.key, true
		delete(p.items, evictedItem.key)
		p.recencyList.Remove(back)
	}

	p.items[key] = p.recencyList.PushFront(&lruItem{key: key, value: value})
	return evictedKey, evicted
}

func (p *LRUCache) Snapshot() []cachesim.Entry {
	result := make([]cachesim.Entry, 0, p.recencyList.Len())
	for el := p.recencyList.Front(); el != nil; el = el.Next() {
		it := el.Value.(*lruItem)
		result = append(result, cachesim.Entry{Key: it.key, Value: it.value})
	}
	return result
}

func (p *LRUCache) IsResident(key string) bool {
	_, ok := p.items[key]
	return ok
}

// DescribeMeta is a no-op: LRUCache has no auxiliary structure worth reporting.
func (p *LRUCache) DescribeMeta(_ *cachesim.Step) {}
