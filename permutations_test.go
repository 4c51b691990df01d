package main

import "testing"

func TestCountSubseqOracle(t *testing.T) {
	got := count_subseq([]int{0, 3, 2, 1}, Word{0, 1, 2, 3, 0, 3, 4, 2, 1, 0, 0, 2, 1, 3})
	if got != 9 {
		t.Fatalf("count_subseq = %d, want 9", got)
	}
}

func TestIsFairUpToSmallMixed(t *testing.T) {
	values := []int{0, 1}
	if !is_fair_up_to(word_from_text("ABBBA"), values, 2) {
		t.Fatalf("ABBBA should be fair up to 2")
	}
	if is_fair_up_to(word_from_text("BBAAB"), values, 2) {
		t.Fatalf("BBAAB should not be fair up to 2")
	}
}

func TestIsFairUpToSubsetDifference(t *testing.T) {
	w := Word{0, 1, 2, 2, 1, 0}
	values := []int{0, 1, 2}
	if is_fair_up_to(w, values, 3) {
		t.Fatalf("012210 should be unfair at k=3")
	}
	if !is_fair_up_to(w, values, 2) {
		t.Fatalf("012210 should be fair at k=2")
	}
}

func TestEachKSubsetCount(t *testing.T) {
	count := 0
	each_k_subset([]int{0, 1, 2, 3}, 2, func(subset []int) bool {
		count++
		if len(subset) != 2 {
			t.Fatalf("subset length = %d, want 2", len(subset))
		}
		return true
	})
	if count != 6 {
		t.Fatalf("each_k_subset produced %d subsets, want 6", count)
	}
}

func TestEachPermutationCount(t *testing.T) {
	count := 0
	each_permutation([]int{0, 1, 2}, func(p []int) bool {
		count++
		return true
	})
	if count != 6 {
		t.Fatalf("each_permutation produced %d permutations, want 6", count)
	}
}

func TestEachPermutationStopsEarly(t *testing.T) {
	count := 0
	each_permutation([]int{0, 1, 2}, func(p []int) bool {
		count++
		return false
	})
	if count != 1 {
		t.Fatalf("each_permutation visited %d times after early stop, want 1", count)
	}
}
