package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/erraggy/asyncapitools"
	"github.com/erraggy/asyncapitools/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file|-]",
	Short: "Validate an AsyncAPI document's servers and security schemes",
	Long: `Validate the server and security-scheme semantics of an AsyncAPI
document.

Beyond the structural rules enforced during parsing, this checks that
each security scheme sets exactly one scheme kind, that flow and
documentation URLs are absolute, that local references resolve within
#/components, and that variable defaults and host placeholders are
consistent with their declarations.

Exit status is 0 when the document is valid (warnings allowed) and 1
when any error is found.

Examples:
  asyncapitools validate asyncapi.yaml
  asyncapitools validate --no-warnings asyncapi.json
  asyncapitools validate --format json asyncapi.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var (
	validateNoWarnings bool
	validateFormat     string
)

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&validateNoWarnings, "no-warnings", false, "suppress warning messages (only show errors)")
	validateCmd.Flags().StringVar(&validateFormat, "format", formatText, "output format (text, json, or yaml)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := validateOutputFormat(validateFormat, formatText, formatJSON, formatYAML); err != nil {
		return err
	}

	parseResult, err := parseInput(args[0])
	if err != nil {
		return fmt.Errorf("validating document: %w", err)
	}
	result := validator.New().ValidateResult(parseResult)

	if validateNoWarnings {
		result.Warnings = nil
		result.WarningCount = 0
	}

	if validateFormat != formatText {
		if err := outputStructured(result, validateFormat); err != nil {
			return err
		}
		if !result.Valid {
			os.Exit(1)
		}
		return nil
	}

	fmt.Printf("AsyncAPI Document Validator\n")
	fmt.Printf("===========================\n\n")
	fmt.Printf("asyncapitools version: %s\n", asyncapitools.Version())
	fmt.Printf("Document: %s\n", parseResult.SourcePath)
	fmt.Printf("AsyncAPI Version: %s\n", result.Version)
	fmt.Printf("Load Time: %v\n\n", parseResult.LoadTime)

	if len(result.Errors) > 0 {
		fmt.Printf("Errors (%d):\n", result.ErrorCount)
		for _, issue := range result.Errors {
			fmt.Printf("  %s\n", issue.String())
		}
		fmt.Println()
	}

	if len(result.Warnings) > 0 {
		fmt.Printf("Warnings (%d):\n", result.WarningCount)
		for _, issue := range result.Warnings {
			fmt.Printf("  %s\n", issue.String())
		}
		fmt.Println()
	}

	if result.Valid {
		fmt.Printf("✓ Validation passed")
		if result.WarningCount > 0 {
			fmt.Printf(" with %d warning(s)", result.WarningCount)
		}
		fmt.Println()
	} else {
		fmt.Printf("✗ Validation failed: %d error(s)", result.ErrorCount)
		if result.WarningCount > 0 {
			fmt.Printf(", %d warning(s)", result.WarningCount)
		}
		fmt.Println()
		os.Exit(1)
	}

	return nil
}
