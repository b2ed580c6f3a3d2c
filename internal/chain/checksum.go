package chain

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/nao1215/seedscan/internal/model"
	"github.com/nao1215/seedscan/internal/wordlist"
	"github.com/tyler-smith/go-bip39"
)

var (
	activeMu       sync.Mutex
	activeLanguage string
)

// activate installs the word list of language into go-bip39.
// Activating the language that is already active is a no-op.
func activate(language string) error {
	language = wordlist.NormalizeLanguage(language)
	list, err := wordlist.RawList(language)
	if err != nil {
		return err
	}

	activeMu.Lock()
	defer activeMu.Unlock()

	switch activeLanguage {
	case language:
		return nil
	case "":
		bip39.SetWordList(list)
		activeLanguage = language
		return nil
	default:
		return fmt.Errorf("%w: %s is active, %s requested", ErrLanguageConflict, activeLanguage, language)
	}
}

// ChecksumValidator checks BIP39 checksums against one language's word list.
type ChecksumValidator struct {
	language string
}

// NewChecksumValidator returns a validator for the given word list language.
// An empty language selects English.
func NewChecksumValidator(language string) (*ChecksumValidator, error) {
	if language == "" {
		language = wordlist.DefaultLanguage
	}
	if err := activate(language); err != nil {
		return nil, err
	}
	return &ChecksumValidator{language: wordlist.NormalizeLanguage(language)}, nil
}

// Language returns the word list language of the validator.
func (v *ChecksumValidator) Language() string {
	return v.language
}

// ValidChecksum reports whether words form a checksum-valid mnemonic.
// Unsupported lengths and unknown words are simply invalid.
func (v *ChecksumValidator) ValidChecksum(words []string) bool {
	if !model.IsSupportedLength(len(words)) {
		return false
	}
	return bip39.IsMnemonicValid(strings.Join(words, " "))
}

// Check explains why words are not a valid mnemonic. It returns nil for a
// valid mnemonic, an *model.InvalidLengthError for an unsupported length,
// ErrUnknownWord naming the first unknown word, or ErrChecksumMismatch.
func (v *ChecksumValidator) Check(words []string) error {
	if err := model.CheckLength(len(words)); err != nil {
		return err
	}

	ws, err := wordlist.Canonical(v.language)
	if err != nil {
		return err
	}
	for i, w := range words {
		if !ws.Contains(w) {
			return fmt.Errorf("%w: %q at word %d", ErrUnknownWord, w, i+1)
		}
	}

	if _, err := bip39.EntropyFromMnemonic(strings.Join(words, " ")); err != nil {
		if errors.Is(err, bip39.ErrChecksumIncorrect) {
			return ErrChecksumMismatch
		}
		return fmt.Errorf("%w: %w", ErrChecksumMismatch, err)
	}
	return nil
}
