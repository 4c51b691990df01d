package main

import (
	radix "github.com/Emeline-1/radix"
)

/* ==================================================================================== *\
    prefixset.go

    prefixSet: a set of Words keyed by their textual encoding, backed by a
    radix tree for O(|prefix|) membership queries. Used by FDTS to register
    every prefix of every accepted word for online pruning.
\* ==================================================================================== */

// prefixSet is a set of Words, keyed by their textual encoding, queryable
// in O(|prefix|).
type prefixSet struct {
	tree *radix.Tree
	size int
}

func new_prefix_set() *prefixSet {
	return &prefixSet{tree: radix.New()}
}

// insert registers w in the set if absent; returns whether it was newly added.
func (p *prefixSet) insert(w Word) bool {
	key := w.as_text()
	if _, existed := p.tree.Get(key); existed {
		return false
	}
	p.tree.Insert(key, struct{}{})
	p.size++
	return true
}

func (p *prefixSet) contains(w Word) bool {
	_, ok := p.tree.Get(w.as_text())
	return ok
}

func (p *prefixSet) contains_text(text string) bool {
	_, ok := p.tree.Get(text)
	return ok
}

func (p *prefixSet) len() int {
	return p.size
}
