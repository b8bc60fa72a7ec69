package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mikey/lead-triage/internal/adapters/export"
)

func newTemplateCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write a sample lead workbook with the expected columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}

			if err := errors.Join(export.WriteTemplate(f), f.Close()); err != nil {
				_ = os.Remove(out)
				return fmt.Errorf("failed to write template: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Template written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "lead_template.xlsx", "path of the template workbook")
	return cmd
}
