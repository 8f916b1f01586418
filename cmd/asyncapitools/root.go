package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/asyncapitools"
	"github.com/erraggy/asyncapitools/parser"
)

// Output format constants
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// stdinFilePath is the special file path used to indicate reading from stdin.
const stdinFilePath = "-"

var rootCmd = &cobra.Command{
	Use:   "asyncapitools",
	Short: "AsyncAPI server and security-scheme tooling",
	Long: `asyncapitools parses and validates the server and security-scheme
portions of AsyncAPI v3 documents.

Documents may be YAML or JSON; pass "-" as the file argument to read
from stdin.

Examples:
  asyncapitools parse asyncapi.yaml
  asyncapitools validate asyncapi.yaml
  cat asyncapi.json | asyncapitools validate -`,
	Version: asyncapitools.Version(),
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceUsage = true
}

// parseInput parses the document named by path, treating "-" as stdin.
func parseInput(path string) (*parser.ParseResult, error) {
	if path == stdinFilePath {
		return parser.ParseWithOptions(
			parser.WithReader(os.Stdin),
			parser.WithSourceName("stdin"),
		)
	}
	return parser.ParseWithOptions(parser.WithFilePath(path))
}

// outputStructured writes data to stdout as indented JSON or as YAML.
// YAML output goes through a JSON round-trip so both formats render the
// same document shape (extensions inlined, absent optionals omitted).
func outputStructured(data any, format string) error {
	var out []byte
	var err error

	switch format {
	case formatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
	case formatYAML:
		var jsonBytes []byte
		if jsonBytes, err = json.Marshal(data); err == nil {
			var generic any
			if err = json.Unmarshal(jsonBytes, &generic); err == nil {
				out, err = yaml.Marshal(generic)
			}
		}
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	fmt.Println(string(out))
	return nil
}

// validateOutputFormat checks a --format value against the allowed set.
func validateOutputFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("invalid format '%s'. Valid formats: %v", format, allowed)
}
