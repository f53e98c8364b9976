package ecs

import (
	"slices"

	"github.com/milk9111/propeller/ecs/component"
)

type kindID interface {
	ID() component.ComponentID
}

// ForEach calls fn for every entity carrying a component of kind. Components
// may be added or removed from inside fn.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(e Entity, v *T)) {
	if w == nil || fn == nil {
		return
	}
	t := table(w, kind, false)
	if t == nil {
		return
	}
	for _, id := range slices.Clone(t.ids()) {
		v, ok := t.get(id)
		if !ok {
			continue
		}
		fn(w.entity(id), v)
	}
}

// ForEach2 calls fn for every entity carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(e Entity, a *A, b *B)) {
	if w == nil || fn == nil {
		return
	}
	ta := table(w, ka, false)
	tb := table(w, kb, false)
	if ta == nil || tb == nil {
		return
	}
	for _, id := range slices.Clone(ta.ids()) {
		a, ok := ta.get(id)
		if !ok {
			continue
		}
		b, ok := tb.get(id)
		if !ok {
			continue
		}
		fn(w.entity(id), a, b)
	}
}

// ForEach3 calls fn for every entity carrying all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(e Entity, a *A, b *B, c *C)) {
	if w == nil || fn == nil {
		return
	}
	tc := table(w, kc, false)
	if tc == nil {
		return
	}
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		if c, ok := tc.get(e.id()); ok {
			fn(e, a, b, c)
		}
	})
}

// Query returns the entities carrying every listed kind, in ascending id order.
func Query(w *World, kinds ...kindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	tables := make([]storage, 0, len(kinds))
	for _, k := range kinds {
		t, ok := w.tables[k.ID()]
		if !ok {
			return nil
		}
		tables = append(tables, t)
	}
	// iterate smallest table
	slices.SortFunc(tables, func(a, b storage) int { return len(a.ids()) - len(b.ids()) })

	var ids []entityID
	for _, id := range tables[0].ids() {
		match := true
		for _, t := range tables[1:] {
			if !t.has(id) {
				match = false
				break
			}
		}
		if match {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		out = append(out, w.entity(id))
	}
	return out
}

// First returns the lowest-id entity carrying every listed kind.
func First(w *World, kinds ...kindID) (Entity, bool) {
	ents := Query(w, kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
