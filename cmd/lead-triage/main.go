package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mikey/lead-triage/internal/di"
)

// globalFlags are shared by every command
type globalFlags struct {
	configFile string
	verbose    bool
	jsonLog    bool
}

func (g *globalFlags) options(overrides map[string]any) *di.Options {
	return &di.Options{
		ConfigFile: g.configFile,
		Verbose:    g.verbose,
		JSONLog:    g.jsonLog,
		Overrides:  overrides,
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	globals := &globalFlags{}

	root := &cobra.Command{
		Use:           "lead-triage",
		Short:         "Categorize and prioritize sales leads from a spreadsheet",
		Long:          `lead-triage reads a lead sheet, categorizes every lead from its remarks using keyword rules, scores it for follow-up priority and reports or exports the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&globals.configFile, "config", "", "config file (default is ./config.yaml, ./configs/config.yaml, ~/.lead-triage/config.yaml or /etc/lead-triage/config.yaml)")
	root.PersistentFlags().BoolVar(&globals.verbose, "verbose", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&globals.jsonLog, "json-log", false, "output logs in JSON format")

	root.AddCommand(newProcessCommand(globals))
	root.AddCommand(newKeywordsCommand(globals))
	root.AddCommand(newTemplateCommand())

	return root
}
