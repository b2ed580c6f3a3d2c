package wordlist

import (
	"errors"
	"slices"
	"testing"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("drops duplicates and empty words", func(t *testing.T) {
		t.Parallel()

		ws := New([]string{"b", "a", "", "b", "c"})
		if ws.Len() != 3 {
			t.Fatalf("expected 3 words, got %d", ws.Len())
		}
		if got := ws.Words(); !slices.Equal(got, []string{"b", "a", "c"}) {
			t.Errorf("unexpected order %v", got)
		}
	})

	t.Run("iteration order is stable", func(t *testing.T) {
		t.Parallel()

		ws := New([]string{"zoo", "abandon", "ability"})
		for i := 0; i < 3; i++ {
			if ws.At(0) != "zoo" || ws.At(2) != "ability" {
				t.Fatalf("unexpected order on pass %d", i)
			}
		}
		idx, ok := ws.Index("abandon")
		if !ok || idx != 1 {
			t.Errorf("expected index 1, got %d (ok=%v)", idx, ok)
		}
	})

	t.Run("nil set is empty", func(t *testing.T) {
		t.Parallel()

		var ws *WordSet
		if !ws.IsEmpty() {
			t.Error("expected nil set to be empty")
		}
		if ws.Contains("abandon") {
			t.Error("expected nil set to contain nothing")
		}
	})
}

func TestCanonical(t *testing.T) {
	t.Parallel()

	t.Run("english has 2048 words", func(t *testing.T) {
		t.Parallel()

		ws, err := Canonical("English")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ws.Len() != 2048 {
			t.Errorf("expected 2048 words, got %d", ws.Len())
		}
		if ws.At(0) != "abandon" || ws.At(2047) != "zoo" {
			t.Errorf("unexpected first/last words %q/%q", ws.At(0), ws.At(2047))
		}
	})

	t.Run("empty tag means english", func(t *testing.T) {
		t.Parallel()

		ws, err := Canonical("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ws.Contains("about") {
			t.Error("expected english wordlist")
		}
	})

	t.Run("all languages load", func(t *testing.T) {
		t.Parallel()

		for _, lang := range Languages() {
			ws, err := Canonical(lang)
			if err != nil {
				t.Errorf("%s: unexpected error: %v", lang, err)
				continue
			}
			if ws.Len() != 2048 {
				t.Errorf("%s: expected 2048 words, got %d", lang, ws.Len())
			}
		}
	})

	t.Run("unknown language", func(t *testing.T) {
		t.Parallel()

		_, err := Canonical("klingon")
		if !errors.Is(err, ErrUnsupportedLanguage) {
			t.Errorf("expected ErrUnsupportedLanguage, got %v", err)
		}
	})
}

func TestUnknown(t *testing.T) {
	t.Parallel()

	ws := New([]string{"abandon", "ability", "able"})
	got := ws.Unknown([]string{"abandon", "abandn", "able", "abandn", "abel"})
	if !slices.Equal(got, []string{"abandn", "abel"}) {
		t.Errorf("unexpected unknown words %v", got)
	}
}
