// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/rahulnayak28/CollabNotes/internal/export"
	"github.com/rahulnayak28/CollabNotes/pkg/types"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Render a note to a single-page PDF",
	Long: `Pdf converts note text to a fixed-layout single-page PDF without
running a server or a store. The note comes from --title/--content flags or
from a YAML file with title, content, and collaborators fields.

With no --output the PDF bytes go to stdout.`,
	RunE: runPDF,
}

func runPDF(cmd *cobra.Command, args []string) error {
	note := types.Note{}

	if from, _ := cmd.Flags().GetString("from"); from != "" {
		data, err := os.ReadFile(from)
		if err != nil {
			return fmt.Errorf("reading note file: %w", err)
		}
		if err := yaml.Unmarshal(data, &note); err != nil {
			return fmt.Errorf("parsing note file %s: %w", from, err)
		}
	}

	if title, _ := cmd.Flags().GetString("title"); title != "" {
		note.Title = title
	}
	if content, _ := cmd.Flags().GetString("content"); content != "" {
		note.Content = content
	}
	if labels, _ := cmd.Flags().GetString("collaborators"); labels != "" {
		note.Collaborators = types.SplitCollaborators(labels)
	}

	cfg := types.ExportConfig{
		PageWidth:  viper.GetFloat64("export.page_width"),
		PageHeight: viper.GetFloat64("export.page_height"),
		FontSize:   viper.GetFloat64("export.font_size"),
	}

	data, err := export.PDF(note, cfg)
	if err != nil {
		return err
	}

	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%d bytes)\n", out, len(data))
	return nil
}

func init() {
	pdfCmd.Flags().String("title", "", "note title")
	pdfCmd.Flags().String("content", "", "note content")
	pdfCmd.Flags().String("collaborators", "", "comma-separated collaborator labels")
	pdfCmd.Flags().String("from", "", "YAML file with title, content, collaborators")
	pdfCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(pdfCmd)
}
