package main

import (
	"fmt"
	"sync"
	"time"
)

/* ==================================================================================== *\
    progress.go

    Progress reporting for the combine driver, decoupled from any
    particular rendering so the engine stays usable headless. Reports
    accepted count, candidate count, and throughput as the outer work list
    (one entry per common bin key) is processed.
\* ==================================================================================== */

// progressObserver receives updates as the combine engine's outer work
// list (one entry per common bin key) is processed.
type progressObserver interface {
	// set_total is called once, before any bin key is processed, with the
	// number of common bin keys.
	set_total(pairs int)
	// tick is called once per completed common bin key, with the running
	// totals accumulated so far (pairsDone counts completed bin keys).
	tick(accepted int, candidates uint64, pairsDone int)
	finish()
}

// noop_observer is the default: combine must be usable without any
// presentation layer attached.
type noop_observer struct{}

func (noop_observer) set_total(int)                     {}
func (noop_observer) tick(int, uint64, int)             {}
func (noop_observer) finish()                           {}

// logging_observer renders a plain log-line progress report, throttled by
// a fixed interval so it doesn't flood stderr on a fast-running combine.
type logging_observer struct {
	mux      sync.Mutex
	total    int
	start    time.Time
	lastEmit time.Time
	interval time.Duration
}

func new_logging_observer() *logging_observer {
	return &logging_observer{interval: 500 * time.Millisecond}
}

func (o *logging_observer) set_total(pairs int) {
	o.mux.Lock()
	o.total = pairs
	o.start = time.Now()
	o.mux.Unlock()
	log_info("combining: 0/%d bin keys", pairs)
}

func (o *logging_observer) tick(accepted int, candidates uint64, pairsDone int) {
	o.mux.Lock()
	defer o.mux.Unlock()
	now := time.Now()
	if pairsDone < o.total && now.Sub(o.lastEmit) < o.interval {
		return
	}
	o.lastEmit = now
	elapsed := now.Sub(o.start).Seconds()
	rate := 0.0
	if elapsed > 0 {
		rate = float64(candidates) / elapsed
	}
	log_info("combining: %d/%d bin keys | %s", pairsDone, o.total,
		fmt.Sprintf("%d results, %d candidates, %.2f cands/s", accepted, candidates, rate))
}

func (o *logging_observer) finish() {
	log_info("combining: done")
}
