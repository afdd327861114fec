// Command validate checks every puzzle preset in a directory and exits with a
// non-zero status if any of them cannot be played.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/slidepuzzle/game/config"
	"github.com/wricardo/slidepuzzle/game/engine"
)

// errInvalid is returned after the report when any preset failed
var errInvalid = errors.New("invalid configurations")

// ValidationResult holds the outcome of checking one preset. Lines starting
// with ✓ are informational, lines starting with ⚠ are warnings.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) note(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// validateConfig checks a single preset file
func validateConfig(path string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(path),
		Valid:  true,
		Errors: []string{},
	}

	cfg, err := config.ReadConfigFile(path)
	if err != nil {
		result.fail("%v", err)
		return result
	}
	result.note("✓ Board: %dx%d with %d tiles", cfg.Size, cfg.Size, cfg.Size*cfg.Size-1)

	validateShuffle(cfg, &result)
	validateMessages(cfg, &result)
	return result
}

// validateShuffle shuffles a board the way a new game would and checks the
// result is still playable
func validateShuffle(cfg *engine.GameConfig, result *ValidationResult) {
	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}

	board := engine.NewBoard(cfg.Size)
	board.Shuffle(cfg.ShuffleMoves, engine.NewRandomSource(seed))

	if !engine.IsSolvable(board) {
		result.fail("Shuffle with seed %d produced an unsolvable board", seed)
		return
	}

	misplaced := engine.CountMisplaced(board)
	switch {
	case cfg.ShuffleMoves == 0:
		result.note("⚠ Shuffle: shuffle_moves is 0, games start solved")
	case misplaced == 0:
		result.note("⚠ Shuffle: %d moves with seed %d leave the board solved", cfg.ShuffleMoves, seed)
	default:
		result.note("✓ Shuffle: %d moves leave %d tiles misplaced", cfg.ShuffleMoves, misplaced)
	}
}

// validateMessages checks the optional texts. Required ones are covered by
// engine.ValidateGameConfig.
func validateMessages(cfg *engine.GameConfig, result *ValidationResult) {
	if formatVerbs(cfg.Messages.Solved) > 1 {
		result.fail("messages.solved must contain a single format verb")
	}
	if formatVerbs(cfg.Messages.Moved) > 1 {
		result.fail("messages.moved must contain a single format verb")
	}

	var missing []string
	if cfg.Messages.Rejected == "" {
		missing = append(missing, "rejected")
	}
	if cfg.Messages.Quit == "" {
		missing = append(missing, "quit")
	}
	if len(missing) > 0 {
		result.note("⚠ Messages: %s not set", strings.Join(missing, ", "))
	} else if result.Valid {
		result.note("✓ Messages: all set")
	}
}

// formatVerbs counts the fmt verbs in msg. A literal %% is not a verb.
func formatVerbs(msg string) int {
	count := 0
	for i := 0; i < len(msg); i++ {
		if msg[i] != '%' {
			continue
		}
		if i+1 < len(msg) && msg[i+1] == '%' {
			i++
			continue
		}
		count++
	}
	return count
}

// findConfigs lists the preset files in dir in name order
func findConfigs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error finding config files: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && config.HasConfigExtension(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	slices.Sort(files)
	return files, nil
}

// report prints a concise report and returns whether every preset is valid
func report(w io.Writer, results []ValidationResult) bool {
	allValid := true
	for _, result := range results {
		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, info := range result.Errors {
				fmt.Fprintln(w, "  "+info)
			}
			continue
		}

		fmt.Fprintln(w, "❌ INVALID")
		allValid = false
		for _, err := range result.Errors {
			if !strings.HasPrefix(err, "✓") {
				fmt.Fprintln(w, "  ❌ "+err)
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(w, "✅ All configurations are valid!")
	} else {
		fmt.Fprintln(w, "❌ Some configurations have errors")
	}
	return allValid
}

func command() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "check puzzle presets",
		ArgsUsage: "[file...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Value:   "../configs",
				Usage:   "directory scanned when no files are given",
				Sources: cli.EnvVars("SLIDEPUZZLE_CONFIG_DIR"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			files := cmd.Args().Slice()
			if len(files) == 0 {
				var err error
				if files, err = findConfigs(cmd.String("dir")); err != nil {
					return err
				}
			}
			if len(files) == 0 {
				return fmt.Errorf("no config files in %s", cmd.String("dir"))
			}

			results := make([]ValidationResult, 0, len(files))
			for _, file := range files {
				results = append(results, validateConfig(file))
			}
			if !report(cmd.Root().Writer, results) {
				return errInvalid
			}
			return nil
		},
	}
}

// main validates the presets in ../configs, or the files named on the
// command line
func main() {
	if err := command().Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
