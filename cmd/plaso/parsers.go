package main

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tincho9/plaso/internal/filter"
	"github.com/tincho9/plaso/internal/parsers"
	"github.com/tincho9/plaso/internal/types"
)

var flagListFilter string

func init() {
	cmd := &cobra.Command{
		Use:   "parsers",
		Short: "List the parser catalog and the active set for a filter",
		RunE:  runParsers,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagListFilter, "parsers", "",
		"filter expression (names, presets: "+strings.Join(filter.PresetNames(), ", ")+", globs; -entry excludes)")
}

func runParsers(cmd *cobra.Command, _ []string) error {
	results, err := parsers.FindAllParsers(nil, &types.Options{DebugMode: flagDebug, TimeZone: flagTimeZone}, flagListFilter)
	if err != nil {
		return err
	}
	active := map[string]bool{}
	for _, p := range results["all"] {
		active[strings.ToLower(p.Name())] = true
	}

	instances, err := parsers.InstantiateAll(&types.PreProcess{}, nil)
	if err != nil {
		return err
	}

	table := tablewriter.NewTable(cmd.OutOrStdout())
	table.Header("name", "active", "plugins", "description")
	for _, p := range instances {
		name := strings.ToLower(p.Name())
		mark := ""
		if active[name] {
			mark = "*"
		}
		if err := table.Append(name, mark, strings.Join(parsers.PluginNamesFor(name), ", "), p.Description()); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	if flagListFilter != "" {
		cmd.Printf("active: %d of %d parsers\n", len(results["all"]), len(instances))
	}
	return nil
}
