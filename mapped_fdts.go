package main

/* ==================================================================================== *\
    mapped_fdts.go

    MappedFDTS: a projection of an FDTS into a wider external slot space,
    used both as a combine-engine input and as an online pruning predicate
    (a "checker").
\* ==================================================================================== */

type MappedFDTS struct {
	fdts *FDTS
	// back[j] is the internal die index placed at external slot j, or -1.
	back []int
	// mapp[i] is the external slot of internal die i; ascending.
	mapp []int
}

func new_mapped_fdts(f *FDTS, back []int) *MappedFDTS {
	assertf(len(back) >= f.n(), "mapped_as: external width %d smaller than die count %d", len(back), f.n())
	mapp := make([]int, f.n())
	for i := range mapp {
		mapp[i] = -1
	}
	for slot, internal := range back {
		if internal < 0 {
			continue
		}
		assertf(internal < f.n(), "mapped_as: back[%d]=%d out of range for %d dice", slot, internal, f.n())
		assertf(mapp[internal] == -1, "mapped_as: internal die %d mapped to two external slots", internal)
		mapp[internal] = slot
	}
	for i, slot := range mapp {
		assertf(slot != -1, "mapped_as: internal die %d not assigned an external slot", i)
	}
	for i := 1; i < len(mapp); i++ {
		assertf(mapp[i-1] < mapp[i], "mapped_as: map must be ascending, got %v", mapp)
	}
	return &MappedFDTS{fdts: f, back: append([]int(nil), back...), mapp: mapp}
}

func (m *MappedFDTS) width() int {
	return len(m.back)
}

func (m *MappedFDTS) sizes_string() string {
	return m.fdts.sizes_string()
}

// is_compatible_with reports whether m and o can be combined: equal
// external width and, at every slot both views assign, equal die size.
func (m *MappedFDTS) is_compatible_with(o *MappedFDTS) bool {
	if m.width() != o.width() {
		return false
	}
	for slot := 0; slot < m.width(); slot++ {
		mi, oi := m.back[slot], o.back[slot]
		if mi == -1 || oi == -1 {
			continue
		}
		if m.fdts.sizes[mi] != o.fdts.sizes[oi] {
			return false
		}
	}
	return true
}

// common_slots returns the external slots covered by both m and o, ascending.
func common_slots(m, o *MappedFDTS) []int {
	common := make([]int, 0)
	for slot := 0; slot < m.width(); slot++ {
		if m.back[slot] != -1 && o.back[slot] != -1 {
			common = append(common, slot)
		}
	}
	return common
}

// project_external rewrites w (over m's internal alphabet) into the
// external alphabet, using m.mapp.
func (m *MappedFDTS) project_external(w Word) Word {
	out := make(Word, len(w))
	for i, letter := range w {
		out[i] = byte(m.mapp[letter])
	}
	return out
}

// iter_words calls visit once per accepted word of the underlying FDTS,
// projected into the external alphabet.
func (m *MappedFDTS) iter_words(visit func(external Word)) {
	for _, d := range m.fdts.dice {
		visit(m.project_external(d.word))
	}
}

// iter_words_subset is iter_words restricted to the external letters whose
// slot is in subset: visit receives each word's projection onto those slots.
// (combine's binning step, bin_words, computes the same projection itself
// via iter_words and subset_word_external.)
func (m *MappedFDTS) iter_words_subset(subset []int, visit func(w Word)) {
	m.iter_words(func(w Word) {
		visit(subset_word_external(w, subset))
	})
}

// subset_word_external returns the projection of an external word onto the
// slots in subset (ascending, subset given as external slot indices).
func subset_word_external(w Word, subset []int) Word {
	in := make(map[byte]bool, len(subset))
	for _, s := range subset {
		in[byte(s)] = true
	}
	out := make(Word, 0, len(w))
	for _, letter := range w {
		if in[letter] {
			out = append(out, letter)
		}
	}
	return out
}

// subset_word_in_prefixes is the cross-projection pruning predicate:
// collapse an external-alphabet word onto m's assigned slots, drop
// unmapped letters, remap to the internal alphabet via back, and test
// prefix-set membership.
func (m *MappedFDTS) subset_word_in_prefixes(external Word) bool {
	internal := make(Word, 0, len(external))
	for _, slot := range external {
		if int(slot) >= len(m.back) {
			continue
		}
		inner := m.back[slot]
		if inner == -1 {
			continue
		}
		internal = append(internal, byte(inner))
	}
	return m.fdts.prefixes.contains(internal)
}
