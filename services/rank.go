package services

import "sort"

// counter tallies keys and remembers the order they were first seen in.
type counter[K comparable] struct {
	order  []K
	counts map[K]int
}

func newCounter[K comparable]() *counter[K] {
	return &counter[K]{counts: make(map[K]int)}
}

func (c *counter[K]) add(key K) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter[K]) distinct() int {
	return len(c.order)
}

type ranked[K comparable] struct {
	key   K
	count int
}

// top returns at most n entries by descending count, ties kept in first-seen order.
// n <= 0 returns every entry.
func (c *counter[K]) top(n int) []ranked[K] {
	entries := make([]ranked[K], 0, len(c.order))
	for _, k := range c.order {
		entries = append(entries, ranked[K]{key: k, count: c.counts[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].count > entries[j].count
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
