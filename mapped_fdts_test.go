package main

import "testing"

func TestMappedFDTSWidthAndProjection(t *testing.T) {
	f := new_empty_fdts([]int{2, 3})
	f.insert(dice_tuple_from_text(f, "ABBBA"))

	m := f.mapped_as([]int{-1, 0, 1})
	if m.width() != 3 {
		t.Fatalf("width = %d, want 3", m.width())
	}
	got := m.project_external(Word{0, 1, 1, 1, 0})
	want := Word{1, 2, 2, 2, 1}
	if !got.equal(want) {
		t.Fatalf("project_external = %v, want %v", got, want)
	}
}

func TestIsCompatibleWith(t *testing.T) {
	sizes := []int{6, 6, 6}
	aSizes, aBack := remove_slot_mapping(sizes, 1) // covers external slots {0,2}
	bSizes, bBack := remove_slot_mapping(sizes, 2) // covers external slots {0,1}

	a := new_empty_fdts(aSizes).mapped_as(aBack)
	b := new_empty_fdts(bSizes).mapped_as(bBack)
	if !a.is_compatible_with(b) {
		t.Fatalf("sub-FDTSs of the same size-tuple must agree on their shared slot")
	}

	conflicting := new_empty_fdts([]int{5, 6}).mapped_as(bBack)
	if a.is_compatible_with(conflicting) {
		t.Fatalf("sub-FDTS disagreeing on the size of a shared slot should be incompatible")
	}
}

func TestCommonSlots(t *testing.T) {
	sizes := []int{6, 6, 6}
	aSizes, aBack := remove_slot_mapping(sizes, 1)
	bSizes, bBack := remove_slot_mapping(sizes, 2)
	a := new_empty_fdts(aSizes).mapped_as(aBack)
	b := new_empty_fdts(bSizes).mapped_as(bBack)

	got := common_slots(a, b)
	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("common_slots = %v, want [0]", got)
	}
}

func TestIterWordsSubset(t *testing.T) {
	f := new_empty_fdts([]int{2, 3})
	f.insert(dice_tuple_from_text(f, "ABBBA"))
	m := f.mapped_as([]int{-1, 0, 1})

	var got []Word
	m.iter_words_subset([]int{1}, func(w Word) {
		got = append(got, w)
	})
	if len(got) != 1 || got[0].as_text() != "BB" {
		t.Fatalf("iter_words_subset({1}) = %v, want a single word \"BB\"", got)
	}
}

func TestSubsetWordInPrefixes(t *testing.T) {
	f := new_empty_fdts([]int{2, 3})
	f.insert(dice_tuple_from_text(f, "ABBBA"))
	m := f.mapped_as([]int{-1, 0, 1})

	if !m.subset_word_in_prefixes(Word{1, 2}) {
		t.Fatalf("external slots {1,2} -> internal prefix %q should be registered", "AB")
	}
	if m.subset_word_in_prefixes(Word{2, 1}) {
		t.Fatalf("external word projecting to internal prefix %q should not be registered", "BA")
	}
}
