// Package search implements the ledger's query matcher: a transaction
// matches when its category equals the query exactly (case-insensitive)
// or when the query is an in-order, not necessarily contiguous,
// subsequence of its description.
package search

import (
	"sort"
	"strings"

	"github.com/budget-tracker-dev/budget-tracker/internal/model"
)

// spreadWeight makes contiguity dominate start position in fuzzy scores.
const spreadWeight = 1 << 10

// Search returns the transactions matching query, best first. Exact
// category matches come as a block ahead of pure description matches, in
// insertion order; description matches follow ordered by score (lower is
// better), ties kept stable on insertion order. An empty query matches
// nothing. The input is never mutated.
func Search(txns []model.Transaction, query string) []model.Transaction {
	q := strings.ToLower(query)
	if q == "" {
		return nil
	}

	type match struct {
		txn   model.Transaction
		index int
		exact bool
		score int
	}

	var matches []match
	for i, txn := range txns {
		if model.NormalizeCategory(txn.Category) == q {
			matches = append(matches, match{txn: txn, index: i, exact: true})
			continue
		}
		if score, ok := fuzzyScore(strings.ToLower(txn.Description), q); ok {
			matches = append(matches, match{txn: txn, index: i, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.exact != b.exact {
			return a.exact
		}
		if a.exact {
			return false // exact block keeps insertion order
		}
		return a.score < b.score
	})

	result := make([]model.Transaction, len(matches))
	for i, m := range matches {
		result[i] = m.txn
	}
	return result
}

// fuzzyScore reports whether query is a subsequence of text and, if so,
// the score of the best witness. The score prefers tighter runs first
// and earlier starts second; both inputs must already be lower-cased.
func fuzzyScore(text, query string) (int, bool) {
	t := []rune(text)
	q := []rune(query)
	if len(q) == 0 || len(q) > len(t) {
		return 0, false
	}

	best := -1
	for start := range t {
		if t[start] != q[0] {
			continue
		}
		end, ok := matchFrom(t, q, start)
		if !ok {
			// No witness can begin at or after start.
			break
		}
		spread := end - start + 1 - len(q)
		score := spread*spreadWeight + start
		if best == -1 || score < best {
			best = score
		}
		if spread == 0 {
			// A contiguous witness; later starts only score worse.
			break
		}
	}

	if best == -1 {
		return 0, false
	}
	return best, true
}

// matchFrom greedily matches query against text starting at start,
// returning the index of the last matched rune.
func matchFrom(t, q []rune, start int) (int, bool) {
	qi := 0
	last := start
	for i := start; i < len(t) && qi < len(q); i++ {
		if t[i] == q[qi] {
			last = i
			qi++
		}
	}
	if qi < len(q) {
		return 0, false
	}
	return last, true
}
