package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/visibility-engine/internal/observability"
	"github.com/jonathan/visibility-engine/internal/pressure"
	"github.com/jonathan/visibility-engine/internal/schemas"
	"github.com/jonathan/visibility-engine/internal/types"
)

var pressureCmd = &cobra.Command{
	Use:   "pressure",
	Short: "Compute a competitive pressure index from a context file",
	Long:  "Compute a competitive pressure index from a JSON pressure context file and print the result as JSON.",
	RunE:  runPressure,
}

var (
	pressureContextFile string
	pressureOutputFile  string
	pressureVerbose     bool
)

func init() {
	pressureCmd.Flags().StringVarP(&pressureContextFile, "context", "c", "", "Path to pressure context JSON file (required)")
	pressureCmd.Flags().StringVarP(&pressureOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	pressureCmd.Flags().BoolVarP(&pressureVerbose, "verbose", "v", false, "Print a formatted signal breakdown to stderr")
	_ = pressureCmd.MarkFlagRequired("context")

	rootCmd.AddCommand(pressureCmd)
}

func runPressure(_ *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(pressureContextFile)
	if err != nil {
		return fmt.Errorf("failed to read context file: %w", err)
	}

	if err := schemas.ValidatePressureContext(raw); err != nil {
		var schemaLoadErr *schemas.SchemaLoadError
		if errors.As(err, &schemaLoadErr) {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate context against schema: %v\n", err)
		} else {
			return fmt.Errorf("context does not validate against schema: %w", err)
		}
	}

	var pressureContext types.PressureContext
	if err := json.Unmarshal(raw, &pressureContext); err != nil {
		return fmt.Errorf("failed to parse context JSON: %w", err)
	}

	result := pressure.ComputeIndex(&pressureContext)

	if pressureVerbose {
		observability.NewPrinter(os.Stderr).PrintPressureResult(result)
	}

	return writeResultJSON(result, pressureOutputFile)
}
