package main

import "testing"

func TestWordTextRoundTrip(t *testing.T) {
	tests := []string{"", "A", "ABBA", "ABCABC"}
	for _, text := range tests {
		w := word_from_text(text)
		if got := w.as_text(); got != text {
			t.Fatalf("word_from_text(%q).as_text() = %q, want %q", text, got, text)
		}
	}
}

func TestDiceTupleFromNumbersRoundTrip(t *testing.T) {
	f := new_empty_fdts([]int{2, 2})
	numbers := Word{0, 2, 1, 3}
	dt := dice_tuple_from_numbers(f, numbers)
	if got := dt.as_text(); got != "ABAB" {
		t.Fatalf("as_text() = %q, want ABAB", got)
	}

	dt2 := dice_tuple_from_word(f, dt.word)
	if !dt2.numbers.equal(numbers) {
		t.Fatalf("from_word(to_word(x)).numbers = %v, want %v", dt2.numbers, numbers)
	}
}

