package main

/* ==================================================================================== *\
    combine.go

    The combine engine: binned join + backtracking interleaver with
    cross-projection prefix pruning + lexicographic canonicalization over
    equal-size dice orbits + exact fairness filter.
\* ==================================================================================== */

// orbits groups dice of equal size into canonicalization orbits and
// derives the can_emit / upgrades tables used to skip interleavings that
// are lexicographic duplicates of an already-emitted one under
// permutation of equal-size dice.
type orbits struct {
	can_emit_init []bool
	upgrades      []int // upgrades[d] = d' (successor within d's orbit, or d itself if last/singleton)
}

func build_orbits(sizes []int) orbits {
	n := len(sizes)
	groups := make(map[int][]int)
	for i, s := range sizes {
		groups[s] = append(groups[s], i)
	}
	can_emit := make([]bool, n)
	upgrades := make([]int, n)
	for i := range upgrades {
		upgrades[i] = i
	}
	for _, members := range groups {
		can_emit[members[0]] = true
		for i := 0; i+1 < len(members); i++ {
			upgrades[members[i]] = members[i+1]
		}
	}
	return orbits{can_emit_init: can_emit, upgrades: upgrades}
}

// bin_words groups the external-alphabet words of m by their projection
// onto bin_indices. The bin key is the projected subset word; the binned
// value is the full external word, not the subset, since the interleaver
// needs the whole thing.
func bin_words(m *MappedFDTS, bin_indices []int) map[string][]Word {
	bins := make(map[string][]Word)
	m.iter_words(func(w Word) {
		key := subset_word_external(w, bin_indices).as_text()
		bins[key] = append(bins[key], w)
	})
	return bins
}

// interleaveState carries the read-only context shared by every branch of
// one (w1, w2) interleave, avoiding per-call allocation in the hot path.
type interleaveState struct {
	checking  []*MappedFDTS
	common    map[byte]bool
	can_emit0 []bool
	upgrades  []int
}

// interleave_words enumerates every length-T word whose projection onto
// common slots is shared by w1 and w2, pruned online by checking and by
// lex canonicalization, and appends survivors (via visit) as they complete.
func interleave_words(st *interleaveState, w1, w2 Word, visit func(w Word)) {
	buf := make(Word, 0, len(w1)+len(w2))
	can_go := append([]bool(nil), st.can_emit0...)
	rec_interleave_lex(st, &buf, w1, w2, can_go, visit)
}

func check_prefixes(st *interleaveState, partial Word) bool {
	for _, c := range st.checking {
		if !c.subset_word_in_prefixes(partial) {
			return false
		}
	}
	return true
}

// rec_interleave is the unrestricted merge (used once every can_go entry
// is true, and for the tail once one side is exhausted).
func rec_interleave(st *interleaveState, out *Word, w1, w2 Word, visit func(w Word)) {
	if !check_prefixes(st, *out) {
		return
	}
	if len(w1) == 0 && len(w2) == 0 {
		visit(out.clone())
		return
	}
	if len(w1) == 0 {
		*out = append(*out, w2...)
		rec_interleave(st, out, nil, nil, visit)
		*out = (*out)[:len(*out)-len(w2)]
		return
	}
	if len(w2) == 0 {
		*out = append(*out, w1...)
		rec_interleave(st, out, nil, nil, visit)
		*out = (*out)[:len(*out)-len(w1)]
		return
	}
	if w1[0] == w2[0] {
		*out = append(*out, w1[0])
		rec_interleave(st, out, w1[1:], w2[1:], visit)
		*out = (*out)[:len(*out)-1]
		return
	}
	if st.common[w1[0]] {
		*out = append(*out, w2[0])
		rec_interleave(st, out, w1, w2[1:], visit)
		*out = (*out)[:len(*out)-1]
		return
	}
	if st.common[w2[0]] {
		*out = append(*out, w1[0])
		rec_interleave(st, out, w1[1:], w2, visit)
		*out = (*out)[:len(*out)-1]
		return
	}
	*out = append(*out, w1[0])
	rec_interleave(st, out, w1[1:], w2, visit)
	*out = (*out)[:len(*out)-1]

	*out = append(*out, w2[0])
	rec_interleave(st, out, w1, w2[1:], visit)
	*out = (*out)[:len(*out)-1]
}

func all_true(bs []bool) bool {
	for _, b := range bs {
		if !b {
			return false
		}
	}
	return true
}

// push_rec_lex emits letter c (if its orbit permits) and recurses,
// flipping can_go for c's upgrade target the first time c is emitted.
func push_rec_lex(st *interleaveState, out *Word, c byte, w1, w2 Word, can_go []bool, visit func(w Word)) {
	if !can_go[c] {
		return
	}
	*out = append(*out, c)
	upgrade := st.upgrades[c]
	if !can_go[upgrade] {
		can_go2 := append([]bool(nil), can_go...)
		can_go2[upgrade] = true
		rec_interleave_lex(st, out, w1, w2, can_go2, visit)
	} else {
		rec_interleave_lex(st, out, w1, w2, can_go, visit)
	}
	*out = (*out)[:len(*out)-1]
}

// rec_interleave_lex is rec_interleave generalized with the can_emit/
// upgrades pruning that enforces lex canonicalization; once every can_go
// entry is true (every die of every orbit unlocked) it defers to the
// unrestricted merge.
func rec_interleave_lex(st *interleaveState, out *Word, w1, w2 Word, can_go []bool, visit func(w Word)) {
	if !check_prefixes(st, *out) {
		return
	}
	if len(w1) == 0 && len(w2) == 0 {
		visit(out.clone())
		return
	}
	if len(w1) == 0 {
		*out = append(*out, w2...)
		rec_interleave(st, out, nil, nil, visit)
		*out = (*out)[:len(*out)-len(w2)]
		return
	}
	if len(w2) == 0 {
		*out = append(*out, w1...)
		rec_interleave(st, out, nil, nil, visit)
		*out = (*out)[:len(*out)-len(w1)]
		return
	}
	if all_true(can_go) {
		rec_interleave(st, out, w1, w2, visit)
		return
	}
	if w1[0] == w2[0] {
		push_rec_lex(st, out, w1[0], w1[1:], w2[1:], can_go, visit)
		return
	}
	if st.common[w1[0]] {
		push_rec_lex(st, out, w2[0], w1, w2[1:], can_go, visit)
		return
	}
	if st.common[w2[0]] {
		push_rec_lex(st, out, w1[0], w1[1:], w2, can_go, visit)
		return
	}
	push_rec_lex(st, out, w1[0], w1[1:], w2, can_go, visit)
	push_rec_lex(st, out, w2[0], w1, w2[1:], can_go, visit)
}

// combineResult is the per-key output of processing one common bin.
type combineResult struct {
	accepted   []DiceTuple
	candidates uint64
}

// combine_sizes derives the combined FDTS's size tuple from two compatible
// MappedFDTS inputs, taking each external slot's size from whichever input
// defines it.
func combine_sizes(a, b *MappedFDTS) []int {
	sizes := make([]int, a.width())
	for slot := range sizes {
		if ai := a.back[slot]; ai != -1 {
			sizes[slot] = a.fdts.sizes[ai]
		} else {
			bi := b.back[slot]
			assertf(bi != -1, "combine_sizes: external slot %d unmapped by both inputs", slot)
			sizes[slot] = b.fdts.sizes[bi]
		}
	}
	return sizes
}

// process_key runs the interleaver over every (w1, w2) pair sharing one
// common-projection key, applying the fairness filter to each candidate.
func process_key(f *FDTS, st *interleaveState, w1s, w2s []Word) combineResult {
	var res combineResult
	values := make([]int, f.n())
	for i := range values {
		values[i] = i
	}
	for _, w1 := range w1s {
		for _, w2 := range w2s {
			interleave_words(st, w1, w2, func(w Word) {
				res.candidates++
				if is_fair_up_to(w, values, f.fair_up_to) {
					res.accepted = append(res.accepted, dice_tuple_from_word(f, w))
				}
			})
		}
	}
	return res
}

// new_combined_fdts combines two compatible MappedFDTS inputs (plus any
// checkers) into the FDTS over their joint slots. The binned join itself is
// run by the parallel driver over common bin keys in combine_parallel.go.
func new_combined_fdts(a, b *MappedFDTS, checking []*MappedFDTS, fair_up_to int, observer progressObserver) *FDTS {
	assertf(a.is_compatible_with(b), "new_combined_fdts: incompatible primary inputs %s and %s", a.sizes_string(), b.sizes_string())
	for _, c := range checking {
		assertf(a.is_compatible_with(c), "new_combined_fdts: checker %s incompatible with primary inputs", c.sizes_string())
	}

	sizes := combine_sizes(a, b)
	f := new_empty_fdts(sizes)
	f.fair_up_to = fair_up_to
	assertf(f.fair_up_to <= f.n(), "new_combined_fdts: fair_up_to %d exceeds die count %d", f.fair_up_to, f.n())
	assertf(f.fair_up_to >= a.fdts.fair_up_to, "new_combined_fdts: target fairness below input %s", a.sizes_string())
	assertf(f.fair_up_to >= b.fdts.fair_up_to, "new_combined_fdts: target fairness below input %s", b.sizes_string())
	for _, c := range checking {
		assertf(f.fair_up_to >= c.fdts.fair_up_to, "new_combined_fdts: target fairness below checker %s", c.sizes_string())
	}

	log_info("Combining (%s) and (%s) into (%s)", a.sizes_string(), b.sizes_string(), f.sizes_string())

	if len(a.fdts.dice) == 0 || len(b.fdts.dice) == 0 {
		log_debug(" .. one of the primary inputs is empty, returning empty FDTS %s", f.sizes_string())
		return f
	}
	for _, c := range checking {
		if len(c.fdts.dice) == 0 {
			log_debug(" .. a checker is empty, returning empty FDTS %s", f.sizes_string())
			return f
		}
	}

	if f.total == 0 {
		// No dice to place: the only candidate is the empty word.
		if is_fair_up_to(Word{}, nil, f.fair_up_to) {
			f.insert(dice_tuple_from_word(f, Word{}))
		}
		return f
	}

	bin_indices := common_slots(a, b)
	bins1 := bin_words(a, bin_indices)
	bins2 := bin_words(b, bin_indices)

	ob := build_orbits(sizes)
	common := make(map[byte]bool, len(bin_indices))
	for _, s := range bin_indices {
		common[byte(s)] = true
	}
	st := &interleaveState{checking: checking, common: common, can_emit0: ob.can_emit_init, upgrades: ob.upgrades}

	accepted, totalCandidates, totalPairs := run_combine_driver(f, st, bins1, bins2, observer)

	for _, d := range accepted {
		f.insert(d)
	}

	log_debug(" .. created FDTS %s with %d fair DiceTuples (%d prefixes), %d candidates over %d bin keys",
		f.sizes_string(), len(f.dice), f.prefixes.len(), totalCandidates, totalPairs)
	return f
}
