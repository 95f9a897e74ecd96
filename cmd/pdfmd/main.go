// Package main is the entry point for the pdfmd CLI, the offline
// counterpart to the conversion service.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdfmd CLI.
var rootCmd = &cobra.Command{
	Use:   "pdfmd",
	Short: "Convert extracted document text to structured Markdown",
	Long: `pdfmd converts PDF, DOCX, HTML, CSV and plain-text documents into
structured Markdown. Structure (headings, lists, tables, quotes, links) is
inferred from textual and positional heuristics; no tagged-PDF or style
metadata is required.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pdfmd version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println("pdfmd " + version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
