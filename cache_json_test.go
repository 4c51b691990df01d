package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestJSONCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := new_json_cache_store(dir)

	f := new_empty_fdts([]int{2, 2})
	f.fair_up_to = 2
	f.insert(dice_tuple_from_text(f, "ABBA"))
	f.insert(dice_tuple_from_text(f, "BAAB"))

	if err := store.save(f); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.load([]int{2, 2}, 2)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded == nil {
		t.Fatalf("load returned a clean miss for a just-saved entry")
	}
	if len(loaded.dice) != 2 {
		t.Fatalf("loaded %d dice tuples, want 2", len(loaded.dice))
	}
}

func TestJSONCacheMissReturnsNilNil(t *testing.T) {
	store := new_json_cache_store(t.TempDir())
	f, err := store.load([]int{6}, 1)
	if err != nil || f != nil {
		t.Fatalf("load on a missing file should return (nil, nil), got (%v, %v)", f, err)
	}
}

func TestJSONCacheRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	store := new_json_cache_store(dir)
	path := cache_file_path(dir, []int{6}, 1)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := store.load([]int{6}, 1); err == nil {
		t.Fatalf("load should reject a malformed cache file")
	}
}

func TestJSONCacheRejectsUnfairWord(t *testing.T) {
	dir := t.TempDir()
	store := new_json_cache_store(dir)
	path := cache_file_path(dir, []int{2, 2}, 2)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// BBAA is not fair up to 2 for two d2s.
	content := `{"sizes":[2,2],"fair_up_to":2,"words":["BBAA"]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := store.load([]int{2, 2}, 2); err == nil {
		t.Fatalf("load should reject a cache file whose word is not fair up to its declared degree")
	}
}

func TestJSONCacheRejectsSizeMismatch(t *testing.T) {
	dir := t.TempDir()
	store := new_json_cache_store(dir)
	path := cache_file_path(dir, []int{6}, 1)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := `{"sizes":[5],"fair_up_to":1,"words":["AAAAA"]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := store.load([]int{6}, 1); err == nil {
		t.Fatalf("load should reject a cache file whose sizes don't match the request")
	}
}
