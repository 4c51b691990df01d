package main

import (
	"sync"

	pool "github.com/Emeline-1/pool"
)

/* ==================================================================================== *\
    combine_parallel.go

    Turns the combine engine's per-bin-key work set into a parallel fold:
    one pool work item per common bin key, each accumulating locally before
    a single merge into the shared accumulator.
\* ==================================================================================== */

// adaptive_nesting_threshold: below this many common bin keys, the outer
// work list is too small to keep every worker busy on its own, so each
// key additionally fans its w1 side out across plain goroutines.
const adaptive_nesting_threshold = 64

// combine_worker_count is the upper bound on the number of goroutines the
// pool launches (never more than one per common bin key).
var combine_worker_count = 16

// run_combine_driver fans the binned join out across the pool, merging
// each worker's local results into a single resultAccumulator with one
// merge call per outer key.
func run_combine_driver(f *FDTS, st *interleaveState, bins1, bins2 map[string][]Word, observer progressObserver) (accepted []DiceTuple, candidates uint64, pairsDone int) {
	commonKeys := make([]string, 0, len(bins1))
	for key := range bins1 {
		if _, ok := bins2[key]; ok {
			commonKeys = append(commonKeys, key)
		}
	}

	totalPairs := 0
	for _, key := range commonKeys {
		totalPairs += len(bins1[key]) * len(bins2[key])
	}
	log_debug(" .. %d common bin keys, %d candidate (w1,w2) pairs", len(commonKeys), totalPairs)
	observer.set_total(len(commonKeys))

	acc := newResultAccumulator()
	smallOuter := len(commonKeys) < adaptive_nesting_threshold

	worker := func(key string) {
		w1s, w2s := bins1[key], bins2[key]
		var result combineResult
		if smallOuter && len(w1s) > 1 {
			result = process_key_fanout(f, st, w1s, w2s)
		} else {
			result = process_key(f, st, w1s, w2s)
		}
		acc.merge(result.accepted, result.candidates)
		a, c, p := acc.snapshot()
		observer.tick(a, c, p)
	}

	pool.Launch_pool(min(combine_worker_count, max(len(commonKeys), 1)), commonKeys, worker)
	observer.finish()

	_, c, p := acc.snapshot()
	return acc.take(), c, int(p)
}

// process_key_fanout is process_key with the w1 dimension parallelized via
// plain goroutines, used for the adaptive-nesting case where the outer
// work list is too small to keep every worker busy on its own.
func process_key_fanout(f *FDTS, st *interleaveState, w1s, w2s []Word) combineResult {
	var (
		wg  sync.WaitGroup
		mux sync.Mutex
		out combineResult
	)
	for _, w1 := range w1s {
		w1 := w1
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := process_key(f, st, []Word{w1}, w2s)
			mux.Lock()
			out.accepted = append(out.accepted, r.accepted...)
			out.candidates += r.candidates
			mux.Unlock()
		}()
	}
	wg.Wait()
	return out
}
