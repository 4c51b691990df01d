package main

import (
	"encoding/json"
	"fmt"
	"os"
)

/* ==================================================================================== *\
    cache_json.go

    Default artifact cache backend: one self-describing JSON file per
    (sizes, fair_up_to) pair, holding {sizes, fair_up_to, words}. Every
    stored word is re-validated against the declared fairness degree on
    read, so a present-but-malformed file aborts loudly rather than being
    silently accepted.
\* ==================================================================================== */

type storedFDTS struct {
	Sizes    []int    `json:"sizes"`
	FairUpTo int      `json:"fair_up_to"`
	Words    []string `json:"words"`
}

type jsonCacheStore struct {
	dir string
}

func new_json_cache_store(dir string) *jsonCacheStore {
	return &jsonCacheStore{dir: dir}
}

// load returns (nil, nil) on a clean cache miss (file absent), which
// triggers recomputation by the caller.
func (s *jsonCacheStore) load(sizes []int, fairUpTo int) (*FDTS, error) {
	path := cache_file_path(s.dir, sizes, fairUpTo)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading cache file %s: %w", path, err)
	}
	f, err := decode_stored_fdts(data, path)
	if err != nil {
		return nil, err
	}
	if err := check_loaded_fdts(f, sizes, fairUpTo, path); err != nil {
		return nil, err
	}
	return f, nil
}

func decode_stored_fdts(data []byte, path string) (*FDTS, error) {
	var s storedFDTS
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("malformed cache file %s: %w", path, err)
	}
	f := new_empty_fdts(s.Sizes)
	f.fair_up_to = s.FairUpTo
	if f.fair_up_to > f.n() {
		return nil, fmt.Errorf("malformed cache file %s: fair_up_to %d exceeds die count %d", path, f.fair_up_to, f.n())
	}
	values := make([]int, f.n())
	for i := range values {
		values[i] = i
	}
	for _, w := range s.Words {
		dt := dice_tuple_from_text(f, w)
		if !is_fair_up_to(dt.word, values, f.fair_up_to) {
			return nil, fmt.Errorf("malformed cache file %s: word %q is not fair up to %d", path, w, f.fair_up_to)
		}
		f.insert(dt)
	}
	return f, nil
}

// check_loaded_fdts re-validates a cache hit against the request that
// produced it: a mismatch means the cache file on disk does not describe
// what its name claims, and is treated as malformed rather than silently
// trusted.
func check_loaded_fdts(f *FDTS, sizes []int, fairUpTo int, path string) error {
	if len(f.sizes) != len(sizes) {
		return fmt.Errorf("malformed cache file %s: sizes %v do not match requested %v", path, f.sizes, sizes)
	}
	for i := range sizes {
		if f.sizes[i] != sizes[i] {
			return fmt.Errorf("malformed cache file %s: sizes %v do not match requested %v", path, f.sizes, sizes)
		}
	}
	if f.fair_up_to != fairUpTo {
		return fmt.Errorf("malformed cache file %s: fair_up_to %d does not match requested %d", path, f.fair_up_to, fairUpTo)
	}
	return nil
}

func (s *jsonCacheStore) save(f *FDTS) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating cache dir %s: %w", s.dir, err)
	}
	path := cache_file_path(s.dir, f.sizes, f.fair_up_to)
	data, err := encode_stored_fdts(f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing cache file %s: %w", path, err)
	}
	return nil
}

func encode_stored_fdts(f *FDTS) ([]byte, error) {
	words := make([]string, len(f.dice))
	for i, d := range f.dice {
		words[i] = d.as_text()
	}
	s := storedFDTS{Sizes: f.sizes, FairUpTo: f.fair_up_to, Words: words}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding FDTS %s: %w", f.sizes_string(), err)
	}
	return data, nil
}
