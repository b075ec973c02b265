package reconcile

import "github.com/halvarsson/go-tuio/internal/profile"

// table is the live entity table for one profile variant. order records
// session id order, matching the most recently applied `alive` message,
// per the table-ordering invariant in SPEC_FULL.md §3.
type table struct {
	order    []uint32
	entities map[uint32]profile.Entity
}

func newTable() *table {
	return &table{entities: make(map[uint32]profile.Entity)}
}

func (t *table) entitiesInOrder() []profile.Entity {
	out := make([]profile.Entity, 0, len(t.order))
	for _, id := range t.order {
		if e, ok := t.entities[id]; ok {
			out = append(out, e)
		}
	}
	return out
}
