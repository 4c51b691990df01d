package main

import "sync"

/* ==================================================================================== *\
    accumulator.go

    Mutex-protected accumulator for the combine engine's parallel workers:
    each worker builds a local slice of accepted DiceTuples and local
    counters, then merges into this shared accumulator exactly once per
    outer work item, so the critical section is O(accepted-locally) rather
    than O(1) per accepted tuple.
\* ==================================================================================== */

// resultAccumulator collects DiceTuples and counters across parallel
// combine workers. Safe for concurrent use; the mutex is only ever held
// for the duration of a single merge, snapshot or take call.
type resultAccumulator struct {
	mux        sync.Mutex
	accepted   []DiceTuple
	candidates uint64
	pairsDone  uint64
}

func newResultAccumulator() *resultAccumulator {
	return &resultAccumulator{accepted: make([]DiceTuple, 0, 64)}
}

// merge appends locally accumulated results under a single lock acquisition.
func (a *resultAccumulator) merge(local []DiceTuple, localCandidates uint64) {
	a.mux.Lock()
	a.accepted = append(a.accepted, local...)
	a.candidates += localCandidates
	a.pairsDone++
	a.mux.Unlock()
}

func (a *resultAccumulator) snapshot() (accepted int, candidates uint64, pairsDone uint64) {
	a.mux.Lock()
	accepted, candidates, pairsDone = len(a.accepted), a.candidates, a.pairsDone
	a.mux.Unlock()
	return
}

func (a *resultAccumulator) take() []DiceTuple {
	a.mux.Lock()
	defer a.mux.Unlock()
	return a.accepted
}
