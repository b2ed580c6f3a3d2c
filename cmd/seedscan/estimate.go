package main

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/nao1215/seedscan/internal/model"
	"github.com/nao1215/seedscan/internal/report"
	"github.com/nao1215/seedscan/internal/search"
	"github.com/nao1215/seedscan/internal/wordlist"
	"github.com/spf13/cobra"
)

// strategyAliases maps command names to strategy kinds.
var strategyAliases = map[string]model.StrategyKind{
	"positions":  model.KindPositionSubstitution,
	"pattern":    model.KindPatternCompletion,
	"missing":    model.KindMissingWords,
	"descramble": model.KindDescramble,
}

// parseStrategyName accepts the command name or the full name of a strategy.
func parseStrategyName(name string) (model.StrategyKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if kind, ok := strategyAliases[name]; ok {
		return kind, nil
	}
	if kind := model.ParseStrategyKind(name); kind != model.KindUnknown {
		return kind, nil
	}
	return model.KindUnknown, fmt.Errorf("unknown strategy %q (use positions, pattern, missing or descramble)", name)
}

// newStrategy builds the strategy of kind over words. count is the number of
// missing words and length the pattern phrase length.
func newStrategy(kind model.StrategyKind, words []string, count, length int) model.Strategy {
	switch kind {
	case model.KindPositionSubstitution:
		return model.PositionSubstitution{Phrase: words}
	case model.KindPatternCompletion:
		return model.PatternCompletion{Known: words, Length: length}
	case model.KindMissingWords:
		return model.MissingWords{Known: words, Missing: count}
	case model.KindDescramble:
		return model.Descramble{Words: words}
	default:
		return nil
	}
}

// NewEstimateCmd creates the estimate command.
func NewEstimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate <strategy> [words...]",
		Short: "Print the number of candidates a search would try",
		Long: `Estimate computes the exact number of candidates of a search without
running it. The strategy is one of positions, pattern, missing or descramble.

Examples:
  seedscan estimate missing --count 2 < known.txt
  seedscan estimate pattern --length 24 < known.txt
  seedscan estimate descramble < words.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: runEstimateCmd,
	}

	cmd.Flags().IntP("count", "n", 1, "Number of missing words (missing)")
	cmd.Flags().Int("length", model.DefaultPatternLength, "Length of the complete phrase (pattern)")
	addWordlistFlags(cmd)

	return cmd
}

// runEstimateCmd executes the estimate command.
func runEstimateCmd(cmd *cobra.Command, args []string) error {
	kind, err := parseStrategyName(args[0])
	if err != nil {
		return err
	}
	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		return err
	}
	length, err := cmd.Flags().GetInt("length")
	if err != nil {
		return err
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	ws, err := wordlist.Canonical(cfg.Language)
	if err != nil {
		return err
	}
	words, err := readWords(cmd, args[1:])
	if err != nil {
		return err
	}

	strategy := newStrategy(kind, words, count, length)
	estimated, err := search.Estimate(strategy, ws)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Strategy:      %s\n", report.StrategyTitle(kind))
	fmt.Fprintf(out, "Phrase length: %d\n", strategy.PhraseLength())
	fmt.Fprintf(out, "Candidates:    %s\n", humanize.BigComma(estimated))

	limit := new(big.Int).SetUint64(cfg.MaxCandidates)
	if limit.Sign() > 0 && estimated.Cmp(limit) > 0 {
		fmt.Fprintf(out, "\nThis exceeds the limit of %s candidates; the search needs --force.\n",
			humanize.BigComma(limit))
	}
	if unknown := ws.Unknown(words); len(unknown) > 0 {
		fmt.Fprintf(out, "\nWarning: %d word(s) are not in the %s wordlist.\n", len(unknown), cfg.Language)
	}
	return nil
}
