package main

import "testing"

// Both tests in this file use two trivial single-sided dice (sizes [1,1])
// so that every interleaved candidate is exactly f.total letters long and
// has a valid per-die histogram, keeping the focus on the parallel
// driver's bookkeeping rather than on combine's fairness semantics.

func TestRunCombineDriverMatchesSequentialProcessKey(t *testing.T) {
	f := new_empty_fdts([]int{1, 1})
	f.fair_up_to = 1
	ob := build_orbits(f.sizes)
	st := &interleaveState{can_emit0: ob.can_emit_init, upgrades: ob.upgrades, common: map[byte]bool{}}

	bins1 := map[string][]Word{"": {word_from_text("A")}}
	bins2 := map[string][]Word{"": {word_from_text("B")}}

	accepted, candidates, pairsDone := run_combine_driver(f, st, bins1, bins2, noop_observer{})
	want := process_key(f, st, bins1[""], bins2[""])

	if len(accepted) != len(want.accepted) {
		t.Fatalf("run_combine_driver produced %d dice tuples, process_key produced %d", len(accepted), len(want.accepted))
	}
	if candidates != want.candidates {
		t.Fatalf("candidates = %d, want %d", candidates, want.candidates)
	}
	if pairsDone != 1 {
		t.Fatalf("pairsDone = %d, want 1", pairsDone)
	}
}

func TestProcessKeyFanoutMatchesProcessKey(t *testing.T) {
	f := new_empty_fdts([]int{1, 1})
	f.fair_up_to = 1
	ob := build_orbits(f.sizes)
	st := &interleaveState{can_emit0: ob.can_emit_init, upgrades: ob.upgrades, common: map[byte]bool{}}

	w1s := []Word{word_from_text("A"), word_from_text("A")}
	w2s := []Word{word_from_text("B")}

	got := process_key_fanout(f, st, w1s, w2s)
	want := process_key(f, st, w1s, w2s)

	if got.candidates != want.candidates {
		t.Fatalf("fanout candidates = %d, want %d", got.candidates, want.candidates)
	}
	if len(got.accepted) != len(want.accepted) {
		t.Fatalf("fanout accepted %d tuples, want %d", len(got.accepted), len(want.accepted))
	}
}
