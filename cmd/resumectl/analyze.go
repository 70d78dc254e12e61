package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"resume-insights/internal/analyses"
	"resume-insights/internal/bootstrap"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a PDF, DOCX or text resume and print the JSON result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asOfRaw, _ := cmd.Flags().GetString("as-of")
		pretty, _ := cmd.Flags().GetBool("pretty")
		mimeType, _ := cmd.Flags().GetString("mime-type")
		return analyze(cmd, args[0], asOfRaw, mimeType, pretty)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("as-of", "", "reference date for certification expiry, YYYY-MM-DD (default today)")
	analyzeCmd.Flags().BoolP("pretty", "p", false, "indent the JSON output")
	analyzeCmd.Flags().String("mime-type", "", "document type; detected from the file when empty")
}

func analyze(cmd *cobra.Command, path, asOfRaw, mimeType string, pretty bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var asOf time.Time
	if asOfRaw != "" {
		if asOf, err = time.Parse(time.DateOnly, asOfRaw); err != nil {
			return fmt.Errorf("--as-of must be YYYY-MM-DD: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	classifier, err := bootstrap.BuildClassifier(cfg.IndustryTablePath)
	if err != nil {
		return err
	}
	svc := &analyses.Service{
		Pipeline:         analyses.NewPipeline(classifier),
		ExtractTimeout:   cfg.ExtractTimeout,
		MaxDocumentBytes: cfg.MaxUploadBytes,
		ValidateOutput:   cfg.ValidateOutput,
	}
	result, err := svc.AnalyzeDocument(cmd.Context(), data, mimeType, filepath.Base(path), asOf)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), result, pretty)
}

func writeJSON(w io.Writer, value any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(value)
}
