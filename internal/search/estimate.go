package search

import (
	"math/big"

	"github.com/nao1215/seedscan/internal/model"
	"github.com/nao1215/seedscan/internal/wordlist"
)

// Estimate returns the exact number of candidates the strategy generates over
// the given word set, computed in closed form:
//
//   - PositionSubstitution: one candidate per set word that differs from the
//     original at each position, N × (|W| − 1) when every word is a member.
//   - PatternCompletion and MissingWords: C(|W|, M) for M missing words.
//   - Descramble: N! / (c1! × c2! × ...) for duplicate word counts ci.
//
// The strategy is validated first, so length errors surface here as well.
func Estimate(s model.Strategy, ws *wordlist.WordSet) (*big.Int, error) {
	if s == nil {
		return nil, ErrNoStrategy
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	n := int64(ws.Len())
	switch st := s.(type) {
	case model.PositionSubstitution:
		total := big.NewInt(0)
		for _, w := range st.Phrase {
			perPosition := n
			if ws.Contains(w) {
				perPosition--
			}
			total.Add(total, big.NewInt(perPosition))
		}
		return total, nil
	case model.PatternCompletion:
		return binomial(n, int64(st.Missing())), nil
	case model.MissingWords:
		return binomial(n, int64(st.Missing)), nil
	case model.Descramble:
		return distinctPermutations(st.Words), nil
	default:
		return big.NewInt(0), nil
	}
}

// binomial returns C(n, k), which is zero when k > n.
func binomial(n, k int64) *big.Int {
	if k > n {
		return big.NewInt(0)
	}
	return new(big.Int).Binomial(n, k)
}

// distinctPermutations returns the number of distinct orderings of a multiset.
func distinctPermutations(words []string) *big.Int {
	counts := make(map[string]int64)
	for _, w := range words {
		counts[w]++
	}
	total := new(big.Int).MulRange(1, int64(len(words)))
	for _, c := range counts {
		total.Quo(total, new(big.Int).MulRange(1, c))
	}
	return total
}
