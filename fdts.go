package main

import (
	"fmt"
	"strings"
)

/* ==================================================================================== *\
    fdts.go

    FDTS: the accepted set of DiceTuples for a fixed, non-descending
    multiset of dice sizes, together with the prefix-closure of their
    words used for online membership pruning.
\* ==================================================================================== */

// FDTS holds every accepted DiceTuple for a non-descending multiset of dice
// sizes, together with the prefix-closure of their words.
type FDTS struct {
	sizes     []int
	total     int
	offsets   []int
	dice      []DiceTuple
	prefixes  *prefixSet
	fair_up_to int
}

func is_sorted(sizes []int) bool {
	for i := 1; i < len(sizes); i++ {
		if sizes[i-1] > sizes[i] {
			return false
		}
	}
	return true
}

// new_empty_fdts creates an FDTS with no accepted dice yet. sizes must be
// non-descending.
func new_empty_fdts(sizes []int) *FDTS {
	assertf(len(sizes) > 0, "new_empty_fdts: sizes must not be empty")
	assertf(is_sorted(sizes), "new_empty_fdts: sizes must be non-descending, got %v", sizes)

	offsets := make([]int, len(sizes))
	total := 0
	for i, s := range sizes {
		offsets[i] = total
		total += s
	}
	return &FDTS{
		sizes:    append([]int(nil), sizes...),
		total:    total,
		offsets:  offsets,
		dice:     nil,
		prefixes: new_prefix_set(),
	}
}

// new_single_fdts builds the trivial, necessarily-fair FDTS for one die.
func new_single_fdts(size int) *FDTS {
	f := new_empty_fdts([]int{size})
	word := make(Word, size)
	f.insert(dice_tuple_from_word(f, word))
	f.fair_up_to = 1
	return f
}

func (f *FDTS) n() int {
	return len(f.sizes)
}

func (f *FDTS) sizes_string() string {
	parts := make([]string, len(f.sizes))
	for i, s := range f.sizes {
		parts[i] = fmt.Sprintf("%d", s)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// insert appends d and registers every prefix of its word, including the
// empty and full-length prefixes.
func (f *FDTS) insert(d DiceTuple) {
	assertf(len(d.word) == f.total, "FDTS.insert: word length %d != total %d", len(d.word), f.total)
	for i := 0; i <= f.total; i++ {
		f.prefixes.insert(d.word[:i])
	}
	f.dice = append(f.dice, d)
}

// mapped_as builds a MappedFDTS view of f. back[j] is the internal die
// index occupying external slot j, or -1 if slot j is not covered by f.
func (f *FDTS) mapped_as(back []int) *MappedFDTS {
	return new_mapped_fdts(f, back)
}
