// Command renlex is a CLI wrapper around the Ren lexer: read a source
// file, run it through the lexer, and print or exit non-zero.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/agenthands/renlex/internal/config"
	"github.com/agenthands/renlex/pkg/compiler/lexer"
	"github.com/agenthands/renlex/pkg/core/metadata"
)

var outputFormat string

func main() {
	config.LoadDotEnv(".env")

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "renlex",
		Short: "renlex tokenizes Ren source files",
		Long:  `renlex runs the Ren lexer over source files and reports the resulting token stream.`,
	}

	root.PersistentFlags().StringVar(&outputFormat, "format", "", "output format: text or json (default from renlex.yaml, else text)")

	root.AddCommand(lexCmd())
	root.AddCommand(metadataCmd())
	return root
}

func lexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lex [file]",
		Short: "Tokenize a Ren source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New().String()
			path := args[0]

			project, err := config.LoadProjectFile("renlex.yaml")
			if err != nil {
				slog.Error("failed to load renlex.yaml", "run_id", runID, "error", err)
				return err
			}
			format := resolveFormat(project.OutputFormat)

			src, err := os.ReadFile(path)
			if err != nil {
				slog.Error("failed to read source file", "run_id", runID, "path", path, "error", err)
				return err
			}

			tokens, err := lexer.Lex(string(src))
			if err != nil {
				slog.Error("failed to tokenize source", "run_id", runID, "path", path, "error", err)
				return err
			}
			slog.Info("tokenized source", "run_id", runID, "path", path, "tokens", len(tokens))

			return printTokens(tokens, format)
		},
	}
}

func metadataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metadata [file]",
		Short: "Validate and pretty-print a module-metadata JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				slog.Error("failed to read metadata file", "path", path, "error", err)
				return err
			}

			var m metadata.Module
			if err := json.Unmarshal(data, &m); err != nil {
				slog.Error("invalid module metadata", "path", path, "error", err)
				return err
			}

			pretty, err := json.MarshalIndent(m, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(pretty))
			return nil
		},
	}
}

func resolveFormat(projectDefault string) string {
	if outputFormat != "" {
		return outputFormat
	}
	if projectDefault != "" {
		return projectDefault
	}
	return "text"
}

func printTokens(tokens []lexer.Token, format string) error {
	if format == "json" {
		data, err := json.MarshalIndent(tokens, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for _, tok := range tokens {
		fmt.Println(describeToken(tok))
	}
	return nil
}

func describeToken(tok lexer.Token) string {
	switch tok.Kind {
	case lexer.Number:
		return fmt.Sprintf("Number(%g)", tok.NumberValue)
	case lexer.String:
		return fmt.Sprintf("String(%q)", tok.Text)
	case lexer.Comment:
		return fmt.Sprintf("Comment(%q)", tok.Text)
	case lexer.Keyword:
		return fmt.Sprintf("Keyword(%s)", tok.KeywordTag)
	case lexer.Symbol:
		return fmt.Sprintf("Symbol(%s)", tok.SymbolTag)
	case lexer.Operator:
		return fmt.Sprintf("Operator(%s)", tok.OperatorTag)
	case lexer.Identifier:
		return fmt.Sprintf("Identifier(%s)", tok.Name)
	case lexer.Unknown:
		return fmt.Sprintf("Unknown(%q)", tok.Text)
	default:
		return "Invalid"
	}
}
