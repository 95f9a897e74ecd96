package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/dgallion1/pdfmd/internal/config"
	"github.com/dgallion1/pdfmd/internal/extractor"
	"github.com/dgallion1/pdfmd/internal/markdown"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a document to structured Markdown",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().String("title", "", "document title (default: the filename)")
	convertCmd.Flags().StringP("out", "o", "", "output file (default: stdout)")
	convertCmd.Flags().String("tuning", "", "YAML tuning file overriding heuristic thresholds")
	convertCmd.Flags().String("format", "md", "output format: md or html")
	convertCmd.Flags().Bool("no-pdftotext", false, "disable the pdftotext fallback for PDFs")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := args[0]
	title, _ := cmd.Flags().GetString("title")
	outPath, _ := cmd.Flags().GetString("out")
	tuningPath, _ := cmd.Flags().GetString("tuning")
	format, _ := cmd.Flags().GetString("format")
	noPdftotext, _ := cmd.Flags().GetBool("no-pdftotext")

	if format != "md" && format != "html" {
		return fmt.Errorf("unknown format: %s", format)
	}

	opts, err := config.LoadTuning(tuningPath)
	if err != nil {
		return err
	}
	conv := markdown.New(opts)

	filename := filepath.Base(path)
	ex, err := extractor.ForFile(filename)
	if err != nil {
		return err
	}
	if pe, ok := ex.(*extractor.PDFExtractor); ok {
		pe.FallbackPdftotext = !noPdftotext
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := ex.Extract(f, filename)
	if err != nil {
		return fmt.Errorf("extract %s: %w", filename, err)
	}
	if title == "" {
		title = src.Title
	}

	var doc string
	if src.Positioned() {
		doc, err = conv.ConvertPages(src.Pages, title)
		if err != nil {
			return fmt.Errorf("convert %s: %w", filename, err)
		}
	} else {
		doc = conv.Convert(src.Text, title)
	}

	out := []byte(doc)
	if format == "html" {
		var buf bytes.Buffer
		md := goldmark.New(goldmark.WithExtensions(extension.GFM))
		if err := md.Convert([]byte(doc), &buf); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
		out = buf.Bytes()
	}

	if outPath == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	return os.WriteFile(outPath, out, 0o644)
}
