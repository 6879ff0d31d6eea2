package engine

import "github.com/avolkovs/staffdir/internal/models"

// collection is the full in-memory record set. It is owned by the Engine and
// mutated only through the operations below, always under the engine lock.
type collection struct {
	items []models.Employee
}

func (c *collection) set(items []models.Employee) {
	c.items = items
}

// snapshot returns a copy safe to hand to other components.
func (c *collection) snapshot() []models.Employee {
	out := make([]models.Employee, len(c.items))
	copy(out, c.items)
	return out
}

// upsert merges in by identity key: an existing entry is replaced in place
// (incoming fields win), a novel key is appended.
func (c *collection) upsert(in models.Employee) {
	key := in.Key()
	for i, e := range c.items {
		if e.Key() == key {
			c.items[i] = models.Merge(e, in)
			return
		}
	}
	c.items = append(c.items, in)
}

// removeByKey deletes every entry whose identity key matches.
func (c *collection) removeByKey(key string) {
	kept := c.items[:0]
	for _, e := range c.items {
		if e.Key() != key {
			kept = append(kept, e)
		}
	}
	c.items = kept
}

func removeByKey(list []models.Employee, key string) []models.Employee {
	kept := make([]models.Employee, 0, len(list))
	for _, e := range list {
		if e.Key() != key {
			kept = append(kept, e)
		}
	}
	return kept
}

func indexByKey(list []models.Employee, key string) int {
	for i, e := range list {
		if e.Key() == key {
			return i
		}
	}
	return -1
}
