package main

import "testing"

func TestPrefixSetInsertAndContains(t *testing.T) {
	p := new_prefix_set()
	if p.insert(word_from_text("AB")) != true {
		t.Fatalf("first insert of a new word should return true")
	}
	if p.insert(word_from_text("AB")) != false {
		t.Fatalf("re-inserting the same word should return false")
	}
	if !p.contains(word_from_text("AB")) {
		t.Fatalf("inserted word should be contained")
	}
	if p.contains(word_from_text("BA")) {
		t.Fatalf("never-inserted word should not be contained")
	}
	if p.len() != 1 {
		t.Fatalf("len() = %d, want 1", p.len())
	}
}

func TestPrefixSetContainsText(t *testing.T) {
	p := new_prefix_set()
	p.insert(word_from_text(""))
	if !p.contains_text("") {
		t.Fatalf("the empty word should be a valid member")
	}
}
