// Package utxolrucache provides a capacity-bounded, evicting cache layer
// in front of a model.UTXOSet, so repeated stake-origin lookups against
// the same handful of outpoints don't all fall through to the underlying
// store.
package utxolrucache

import (
	"github.com/ppcoin/ppcd/domain/consensus/model"
	"github.com/ppcoin/ppcd/domain/consensus/model/externalapi"
)

// Cache wraps a model.UTXOSet with a bounded, randomly-evicting cache. It
// implements model.UTXOSet itself, so it can be substituted anywhere the
// underlying set is accepted.
type Cache struct {
	backing  model.UTXOSet
	cache    map[externalapi.DomainOutpoint]externalapi.UTXOEntry
	capacity int
}

// New wraps backing with a cache of the given capacity.
func New(backing model.UTXOSet, capacity int) *Cache {
	return &Cache{
		backing:  backing,
		cache:    make(map[externalapi.DomainOutpoint]externalapi.UTXOEntry, capacity+1),
		capacity: capacity,
	}
}

// Get implements model.UTXOSet: serve from the cache if present, otherwise
// fall through to the backing set and populate the cache with the result.
func (c *Cache) Get(outpoint *externalapi.DomainOutpoint) (externalapi.UTXOEntry, bool) {
	if entry, ok := c.cache[*outpoint]; ok {
		return entry, true
	}

	entry, ok := c.backing.Get(outpoint)
	if !ok {
		return nil, false
	}
	c.add(outpoint, entry)
	return entry, true
}

func (c *Cache) add(key *externalapi.DomainOutpoint, value externalapi.UTXOEntry) {
	c.cache[*key] = value
	if len(c.cache) > c.capacity {
		c.evictRandom()
	}
}

// Clear empties the cache, forcing every subsequent Get to fall through to
// the backing set. Useful after a chain reorg invalidates cached entries.
func (c *Cache) Clear() {
	for key := range c.cache {
		delete(c.cache, key)
	}
}

func (c *Cache) evictRandom() {
	for key := range c.cache {
		delete(c.cache, key)
		return
	}
}
