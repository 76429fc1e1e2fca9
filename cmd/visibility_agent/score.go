package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/visibility-engine/internal/benchmarks"
	"github.com/jonathan/visibility-engine/internal/observability"
	"github.com/jonathan/visibility-engine/internal/schemas"
	"github.com/jonathan/visibility-engine/internal/scoring"
	"github.com/jonathan/visibility-engine/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute a Digital Control Score from a context file",
	Long:  "Compute a Digital Control Score from a JSON scoring context file and print the result as JSON.",
	RunE:  runScore,
}

var (
	scoreContextFile    string
	scoreOutputFile     string
	scoreBenchmarksFile string
	scoreIndustry       string
	scoreVerbose        bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreContextFile, "context", "c", "", "Path to scoring context JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	scoreCmd.Flags().StringVar(&scoreBenchmarksFile, "benchmarks", "", "Path to a custom benchmark table JSON")
	scoreCmd.Flags().StringVar(&scoreIndustry, "industry", "", "Industry override applied when the context omits one")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted score breakdown to stderr")
	_ = scoreCmd.MarkFlagRequired("context")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(scoreContextFile)
	if err != nil {
		return fmt.Errorf("failed to read context file: %w", err)
	}

	if err := schemas.ValidateScoringContext(raw); err != nil {
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &schemaLoadErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate context against schema: %v\n", err)
		} else {
			return fmt.Errorf("context does not validate against schema: %w", err)
		}
	}

	var scoringContext types.ScoringContext
	if err := json.Unmarshal(raw, &scoringContext); err != nil {
		return fmt.Errorf("failed to parse context JSON: %w", err)
	}
	if scoringContext.Industry == "" && scoreIndustry != "" {
		scoringContext.Industry = scoreIndustry
	}

	table := benchmarks.Default()
	if scoreBenchmarksFile != "" {
		table, err = benchmarks.LoadTable(scoreBenchmarksFile)
		if err != nil {
			return fmt.Errorf("failed to load benchmarks: %w", err)
		}
	}

	result := scoring.ComputeDCS(&scoringContext, table)

	if scoreVerbose {
		observability.NewPrinter(os.Stderr).PrintScoreResult(result)
	}

	return writeResultJSON(result, scoreOutputFile)
}

// writeResultJSON marshals a result with indentation and writes it to the
// given file, or stdout when the path is empty.
func writeResultJSON(result any, outputFile string) error {
	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if outputFile == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if err := os.WriteFile(outputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", outputFile)
	return nil
}
