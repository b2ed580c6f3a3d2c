package search

import (
	"iter"
	"slices"
	"sort"

	"github.com/nao1215/seedscan/internal/model"
	"github.com/nao1215/seedscan/internal/wordlist"
)

// generator produces the candidates of one strategy as independent shards.
//
// Iterating shards 0..Shards()-1 in order yields the full candidate sequence
// in generation order, with no candidate repeated. Each shard owns its word
// buffer, so different shards may be iterated concurrently. Within a shard
// the yielded Candidate.Words slice is reused between candidates.
type generator interface {
	Shards() int
	Shard(i int) iter.Seq[model.Candidate]
}

// newGenerator returns the generator for a validated strategy.
func newGenerator(s model.Strategy, ws *wordlist.WordSet) generator {
	switch st := s.(type) {
	case model.PositionSubstitution:
		return &substitutionGenerator{phrase: slices.Clone(st.Phrase), words: ws}
	case model.PatternCompletion:
		return &combinationGenerator{known: slices.Clone(st.Known), missing: st.Missing(), words: ws}
	case model.MissingWords:
		return &combinationGenerator{known: slices.Clone(st.Known), missing: st.Missing, words: ws}
	case model.Descramble:
		return newPermutationGenerator(st.Words)
	default:
		return emptyGenerator{}
	}
}

type emptyGenerator struct{}

func (emptyGenerator) Shards() int { return 0 }

func (emptyGenerator) Shard(int) iter.Seq[model.Candidate] {
	return func(func(model.Candidate) bool) {}
}

// substitutionGenerator replaces one position at a time with every other
// word of the set. Shard i varies position i.
type substitutionGenerator struct {
	phrase []string
	words  *wordlist.WordSet
}

func (g *substitutionGenerator) Shards() int { return len(g.phrase) }

func (g *substitutionGenerator) Shard(pos int) iter.Seq[model.Candidate] {
	return func(yield func(model.Candidate) bool) {
		buf := slices.Clone(g.phrase)
		original := g.phrase[pos]
		for i := 0; i < g.words.Len(); i++ {
			w := g.words.At(i)
			if w == original {
				continue
			}
			buf[pos] = w
			c := model.Candidate{Words: buf, Position: pos, Original: original, Replacement: w}
			if !yield(c) {
				return
			}
		}
	}
}

// combinationGenerator appends every missing-sized combination of set words
// to the known prefix. Combinations are index tuples i0 < i1 < ... in
// lexicographic order, so the fill words keep the set's relative order.
// Shard f holds the combinations whose first index is f.
type combinationGenerator struct {
	known   []string
	missing int
	words   *wordlist.WordSet
}

func (g *combinationGenerator) Shards() int {
	if g.missing == 0 {
		return 1
	}
	n := g.words.Len()
	if g.missing > n {
		return 0
	}
	return n - g.missing + 1
}

func (g *combinationGenerator) Shard(first int) iter.Seq[model.Candidate] {
	return func(yield func(model.Candidate) bool) {
		k, m, n := len(g.known), g.missing, g.words.Len()
		buf := make([]string, k+m)
		copy(buf, g.known)

		if m == 0 {
			yield(model.Candidate{Words: buf, Position: model.NoPosition})
			return
		}

		idx := make([]int, m)
		for j := range idx {
			idx[j] = first + j
			buf[k+j] = g.words.At(idx[j])
		}

		for {
			if !yield(model.Candidate{Words: buf, Position: model.NoPosition}) {
				return
			}

			// Advance the tail idx[1:]; idx[0] is fixed by the shard.
			j := m - 1
			for j >= 1 && idx[j] == n-m+j {
				j--
			}
			if j < 1 {
				return
			}
			idx[j]++
			buf[k+j] = g.words.At(idx[j])
			for l := j + 1; l < m; l++ {
				idx[l] = idx[l-1] + 1
				buf[k+l] = g.words.At(idx[l])
			}
		}
	}
}

// permutationGenerator yields every distinct permutation of a word multiset
// in lexicographic order. Shard i fixes the first word to the i-th distinct
// word and permutes the rest.
type permutationGenerator struct {
	// sorted is the multiset in lexicographic order.
	sorted []string
	// distinct holds the index into sorted of the first occurrence of each
	// distinct word.
	distinct []int
}

func newPermutationGenerator(words []string) *permutationGenerator {
	sorted := slices.Clone(words)
	sort.Strings(sorted)

	var distinct []int
	for i, w := range sorted {
		if i == 0 || w != sorted[i-1] {
			distinct = append(distinct, i)
		}
	}
	return &permutationGenerator{sorted: sorted, distinct: distinct}
}

func (g *permutationGenerator) Shards() int { return len(g.distinct) }

func (g *permutationGenerator) Shard(i int) iter.Seq[model.Candidate] {
	return func(yield func(model.Candidate) bool) {
		lead := g.distinct[i]

		// rest holds ranks into sorted for positions 1..n-1, ascending.
		rest := make([]int, 0, len(g.sorted)-1)
		for j := range g.sorted {
			if j != lead {
				rest = append(rest, j)
			}
		}
		// Equal words must compare equal, so rank by the first occurrence.
		for j, r := range rest {
			rest[j] = g.firstOccurrence(r)
		}

		buf := make([]string, len(g.sorted))
		buf[0] = g.sorted[lead]
		for {
			for j, r := range rest {
				buf[j+1] = g.sorted[r]
			}
			if !yield(model.Candidate{Words: buf, Position: model.NoPosition}) {
				return
			}
			if !nextPermutation(rest) {
				return
			}
		}
	}
}

// firstOccurrence maps an index of sorted to the index of the first equal word.
func (g *permutationGenerator) firstOccurrence(i int) int {
	for i > 0 && g.sorted[i-1] == g.sorted[i] {
		i--
	}
	return i
}

// nextPermutation rearranges a into the next lexicographically greater
// permutation and reports whether one existed. Equal elements are never
// swapped with each other, so duplicate orderings are skipped.
func nextPermutation(a []int) bool {
	i := len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	slices.Reverse(a[i+1:])
	return true
}
