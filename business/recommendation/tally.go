package recommendation

import "sort"

// Tally is a counter that remembers the order keys were first seen in,
// so rankings with equal counts come out in first-seen order.
type Tally[K comparable] struct {
	keys   []K
	counts map[K]int
}

type TallyEntry[K comparable] struct {
	Key   K
	Count int
}

func NewTally[K comparable]() *Tally[K] {
	return &Tally[K]{counts: make(map[K]int)}
}

func (t *Tally[K]) Add(key K, n int) {
	if _, ok := t.counts[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.counts[key] += n
}

func (t *Tally[K]) Count(key K) int {
	return t.counts[key]
}

func (t *Tally[K]) Has(key K) bool {
	_, ok := t.counts[key]
	return ok
}

func (t *Tally[K]) Len() int {
	return len(t.keys)
}

func (t *Tally[K]) Keys() []K {
	out := make([]K, len(t.keys))
	copy(out, t.keys)
	return out
}

// MostCommon returns all entries by count, descending.
func (t *Tally[K]) MostCommon() []TallyEntry[K] {
	out := make([]TallyEntry[K], 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, TallyEntry[K]{Key: k, Count: t.counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
