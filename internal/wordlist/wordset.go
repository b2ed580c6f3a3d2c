package wordlist

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// DefaultLanguage is the language used when none is configured.
const DefaultLanguage = "english"

// ErrUnsupportedLanguage is returned by Canonical for unknown language tags.
var ErrUnsupportedLanguage = errors.New("unsupported wordlist language")

// canonicalLists maps language tags to the BIP39 reference wordlists.
var canonicalLists = map[string][]string{
	"english":             wordlists.English,
	"spanish":             wordlists.Spanish,
	"french":              wordlists.French,
	"italian":             wordlists.Italian,
	"japanese":            wordlists.Japanese,
	"korean":              wordlists.Korean,
	"chinese_simplified":  wordlists.ChineseSimplified,
	"chinese_traditional": wordlists.ChineseTraditional,
}

// WordSet is an immutable set of seed words with a stable iteration order.
// It is safe for concurrent read-only use.
type WordSet struct {
	words []string
	index map[string]int
}

// New creates a WordSet from words. Empty strings and duplicates are dropped;
// the first occurrence of each word fixes its position.
func New(words []string) *WordSet {
	ws := &WordSet{
		words: make([]string, 0, len(words)),
		index: make(map[string]int, len(words)),
	}
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, ok := ws.index[w]; ok {
			continue
		}
		ws.index[w] = len(ws.words)
		ws.words = append(ws.words, w)
	}
	return ws
}

// Canonical returns the BIP39 wordlist for the given language tag.
// Tags are case-insensitive; see Languages for the accepted values.
func Canonical(language string) (*WordSet, error) {
	tag := NormalizeLanguage(language)
	list, ok := canonicalLists[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedLanguage, language, strings.Join(Languages(), ", "))
	}
	return New(list), nil
}

// RawList returns the reference list for a language tag in BIP39 index order.
// The returned slice must not be modified.
func RawList(language string) ([]string, error) {
	tag := NormalizeLanguage(language)
	list, ok := canonicalLists[tag]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}
	return list, nil
}

// NormalizeLanguage lowercases a tag and maps the empty tag to DefaultLanguage.
func NormalizeLanguage(language string) string {
	tag := strings.ToLower(strings.TrimSpace(language))
	if tag == "" {
		return DefaultLanguage
	}
	return tag
}

// Languages returns the supported language tags in sorted order.
func Languages() []string {
	tags := make([]string, 0, len(canonicalLists))
	for tag := range canonicalLists {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Len returns the number of words. A nil WordSet is empty.
func (s *WordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// IsEmpty reports whether the set has no words.
func (s *WordSet) IsEmpty() bool {
	return s.Len() == 0
}

// At returns the word at position i in iteration order.
func (s *WordSet) At(i int) string {
	return s.words[i]
}

// Index returns the iteration position of w.
func (s *WordSet) Index(w string) (int, bool) {
	if s == nil {
		return 0, false
	}
	i, ok := s.index[w]
	return i, ok
}

// Contains reports whether w is a member of the set.
func (s *WordSet) Contains(w string) bool {
	_, ok := s.Index(w)
	return ok
}

// Words returns a copy of the words in iteration order.
func (s *WordSet) Words() []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.words)
}

// Unknown returns the words that are not members of the set, in input order
// and without duplicates. Such words can never appear in a checksum-valid phrase.
func (s *WordSet) Unknown(words []string) []string {
	var unknown []string
	seen := make(map[string]bool)
	for _, w := range words {
		if s.Contains(w) || seen[w] {
			continue
		}
		seen[w] = true
		unknown = append(unknown, w)
	}
	return unknown
}
