package main

import "path/filepath"

/* ==================================================================================== *\
    planner.go

    Recursive planner and artifact cache: computes the FDTS for a target
    size-tuple by recursing on its two "leave one out" sub-tuples plus one
    checker per remaining position, combining, and caching the result.
    Invariant violations (malformed inputs) fail fast via assertf; genuine
    I/O errors (a malformed cache file) are surfaced as a Go error so
    main.go can report a clean exit code.
\* ==================================================================================== */

// cacheStore is the persistence seam; the default is the JSON-file
// backend, with an optional sqlite-backed alternative (cache_sqlite.go)
// selected from the CLI.
type cacheStore interface {
	load(sizes []int, fairUpTo int) (*FDTS, error) // returns (nil, nil) on a clean miss
	save(f *FDTS) error
}

// remove_slot_mapping removes position i from sizes and returns the
// resulting sub-tuple's sizes together with a back-array of length
// len(sizes) suitable for FDTS.mapped_as: -1 at position i, the remaining
// internal indices 0..len(sizes)-2 in their original relative order
// elsewhere.
func remove_slot_mapping(sizes []int, i int) (subSizes []int, back []int) {
	subSizes = make([]int, 0, len(sizes)-1)
	back = make([]int, len(sizes))
	internal := 0
	for slot, s := range sizes {
		if slot == i {
			back[slot] = -1
			continue
		}
		subSizes = append(subSizes, s)
		back[slot] = internal
		internal++
	}
	return
}

// planner drives the recursive load-or-compute, sharing one cache store
// and progress-observer factory across the whole run.
type planner struct {
	store        cacheStore
	new_observer func() progressObserver
	memo         map[string]*FDTS // intra-process memo; sub-tuples are shared across parents within one run
}

func new_planner(store cacheStore, new_observer func() progressObserver) *planner {
	return &planner{store: store, new_observer: new_observer, memo: make(map[string]*FDTS)}
}

func memo_key(sizes []int, fairUpTo int) string {
	key := make([]byte, 0, len(sizes)*4+4)
	for _, s := range sizes {
		key = append(key, byte(s>>8), byte(s))
	}
	key = append(key, byte(fairUpTo>>8), byte(fairUpTo))
	return string(key)
}

// load_or_compute returns the FDTS for sizes fair up to up_to, reading it
// from cache or the intra-run memo when available and otherwise computing
// it recursively from two sub-tuples and a set of checkers.
func (p *planner) load_or_compute(sizes []int, up_to int) (*FDTS, error) {
	assertf(len(sizes) > 0, "load_or_compute: sizes must not be empty")
	assertf(up_to <= len(sizes), "load_or_compute: fair_up_to %d exceeds die count %d", up_to, len(sizes))
	assertf(is_sorted(sizes), "load_or_compute: sizes must be non-descending, got %v", sizes)

	if len(sizes) == 1 {
		assertf(up_to == 1, "load_or_compute: single die requires fair_up_to == 1")
		return new_single_fdts(sizes[0]), nil
	}

	mk := memo_key(sizes, up_to)
	if f, ok := p.memo[mk]; ok {
		return f, nil
	}

	if f, err := p.store.load(sizes, up_to); err != nil {
		return nil, err
	} else if f != nil {
		log_info("# Read FDTS %s (fair up to %d, %d dice tuples) from cache", f.sizes_string(), f.fair_up_to, len(f.dice))
		p.memo[mk] = f
		return f, nil
	}

	n := len(sizes)
	up_to2 := min(up_to, n-1)

	log_info("# Gathering data for FDTS %s (fair up to %d) ...", fdtsSizesString(sizes), up_to)

	aSizes, aBack := remove_slot_mapping(sizes, n-2)
	a, err := p.load_or_compute(aSizes, up_to2)
	if err != nil {
		return nil, err
	}

	bSizes, bBack := remove_slot_mapping(sizes, n-1)
	b, err := p.load_or_compute(bSizes, up_to2)
	if err != nil {
		return nil, err
	}

	checking := make([]*MappedFDTS, 0, max(n-2, 0))
	for i := 0; i < n-2; i++ {
		cSizes, cBack := remove_slot_mapping(sizes, i)
		c, err := p.load_or_compute(cSizes, up_to2)
		if err != nil {
			return nil, err
		}
		checking = append(checking, c.mapped_as(cBack))
	}

	f := new_combined_fdts(a.mapped_as(aBack), b.mapped_as(bBack), checking, up_to, p.new_observer())

	if err := p.store.save(f); err != nil {
		return nil, err
	}
	log_info("# Saved FDTS %s (fair up to %d, %d dice tuples)", f.sizes_string(), f.fair_up_to, len(f.dice))

	p.memo[mk] = f
	return f, nil
}

func fdtsSizesString(sizes []int) string {
	f := &FDTS{sizes: sizes}
	return f.sizes_string()
}

func cache_file_name(sizes []int, fairUpTo int) string {
	name := "fdts"
	for _, s := range sizes {
		name += "_" + itoaFast(s)
	}
	name += "_fair" + itoaFast(fairUpTo) + ".json"
	return name
}

func cache_file_path(dir string, sizes []int, fairUpTo int) string {
	return filepath.Join(dir, cache_file_name(sizes, fairUpTo))
}
