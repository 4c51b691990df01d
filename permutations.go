package main

/* ==================================================================================== *\
    permutations.go

    The exact fairness oracle: counts how many times an ordered sequence of
    dice appears as a subsequence of a word, and uses that count to decide
    whether a word is fair up to a given subset size.
\* ==================================================================================== */

// count_subseq counts occurrences of the injective sequence p as a
// subsequence of w. p holds distinct non-negative values (not necessarily
// 0..len(p)-1, e.g. a permutation of the subset {1,2}). Complexity O(len(w) + max(p)); values of w that are not in p are
// skipped.
func count_subseq(p []int, w Word) uint64 {
	if len(p) == 0 {
		return 0
	}
	m := 0
	for _, v := range p {
		if v+1 > m {
			m = v + 1
		}
	}
	const unset = -1
	inverse := make([]int, m)
	for i := range inverse {
		inverse[i] = unset
	}
	for i, v := range p {
		inverse[v] = i
	}
	counts := make([]uint64, len(p))
	for _, wv := range w {
		wu := int(wv)
		if wu >= m || inverse[wu] == unset {
			continue
		}
		i := inverse[wu]
		if i == 0 {
			counts[0]++
		} else {
			counts[i] += counts[i-1]
		}
	}
	return counts[len(counts)-1]
}

// is_fair_up_to reports whether word is fair up to subset size k: for
// every k-element subset S of values and every permutation p of S,
// count_subseq(p, word) must be constant across permutations of S
// (constancy is per-subset, not across different subsets). Returns true
// immediately for the empty word.
func is_fair_up_to(word Word, values []int, k int) bool {
	if len(word) == 0 {
		return true
	}
	if k == 0 {
		return true
	}
	ok := true
	each_k_subset(values, k, func(subset []int) bool {
		var reference uint64
		first := true
		each_permutation(subset, func(p []int) bool {
			c := count_subseq(p, word)
			if first {
				reference = c
				first = false
			} else if c != reference {
				ok = false
				return false // stop permuting this subset
			}
			return true
		})
		return ok // stop subset enumeration early once unfair
	})
	return ok
}

// each_k_subset calls visit with every k-element subset of values (in
// ascending order within the subset), stopping early if visit returns false.
func each_k_subset(values []int, k int, visit func(subset []int) bool) {
	n := len(values)
	if k < 0 || k > n {
		return
	}
	current := make([]int, 0, k)
	var backtrack func(start int) bool
	backtrack = func(start int) bool {
		if len(current) == k {
			return visit(current)
		}
		for i := start; i < n; i++ {
			current = append(current, values[i])
			if !backtrack(i + 1) {
				current = current[:len(current)-1]
				return false
			}
			current = current[:len(current)-1]
		}
		return true
	}
	backtrack(0)
}

// each_permutation calls visit with every permutation of subset, stopping
// early if visit returns false.
func each_permutation(subset []int, visit func(p []int) bool) bool {
	n := len(subset)
	perm := append([]int(nil), subset...)
	used := make([]bool, n)
	current := make([]int, 0, n)
	var backtrack func() bool
	backtrack = func() bool {
		if len(current) == n {
			return visit(current)
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			current = append(current, perm[i])
			if !backtrack() {
				current = current[:len(current)-1]
				used[i] = false
				return false
			}
			current = current[:len(current)-1]
			used[i] = false
		}
		return true
	}
	return backtrack()
}
