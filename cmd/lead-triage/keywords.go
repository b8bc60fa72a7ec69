package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/mikey/lead-triage/internal/config"
	"github.com/mikey/lead-triage/internal/core"
	"github.com/mikey/lead-triage/internal/di"
)

func newKeywordsCommand(globals *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "Show the effective keyword sets in precedence order",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := di.BuildContainer(globals.options(nil))
			if err != nil {
				return fmt.Errorf("failed to build dependency container: %w", err)
			}

			return container.Invoke(func(cfg *config.Config) {
				sets := cfg.KeywordSets()

				tw := table.NewWriter()
				tw.SetOutputMirror(cmd.OutOrStdout())
				tw.SetStyle(table.StyleLight)
				tw.AppendHeader(table.Row{"Precedence", "Category", "Keywords"})
				for i, b := range core.Buckets {
					tw.AppendRow(table.Row{i + 1, string(b.Category()), strings.Join(sets.Get(b), ", ")})
				}
				tw.Render()
			})
		},
	}
}
