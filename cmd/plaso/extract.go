package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tincho9/plaso/internal/config"
	"github.com/tincho9/plaso/internal/evidence"
	"github.com/tincho9/plaso/internal/hexdump"
	"github.com/tincho9/plaso/internal/output"
	"github.com/tincho9/plaso/internal/parsers"
	"github.com/tincho9/plaso/internal/types"
)

var (
	flagExtractFilter string
	flagExtractOutput string
	flagExtractCtx    int
	flagExtractBefore int64
	flagExtractYear   int
)

func init() {
	cmd := &cobra.Command{
		Use:   "extract FILE",
		Short: "Run the selected parsers over an evidence file",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtract,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagExtractFilter, "parsers", "", "parser filter expression")
	cmd.Flags().StringVar(&flagExtractOutput, "output", "", "output formatter: "+strings.Join(output.Names(), "|"))
	cmd.Flags().IntVar(&flagExtractCtx, "context", 0, "hex dump N 16-byte lines around each event (0 = off)")
	cmd.Flags().Int64Var(&flagExtractBefore, "before", 0, "bytes before each event included in the context dump")
	cmd.Flags().IntVar(&flagExtractYear, "year", 0, "year of the evidence, for formats that omit it")
}

func runExtract(cmd *cobra.Command, args []string) error {
	abs, _ := filepath.Abs(args[0])

	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(filepath.Dir(abs)); err == nil {
		lcfg = c
	}

	filterString := pickString(flagExtractFilter, lcfg.Parsers, gcfg.Parsers)
	formatName := pickString(flagExtractOutput, lcfg.Output, gcfg.Output)
	if formatName == "" {
		formatName = "text"
	}
	before := pickInt64(flagExtractBefore, lcfg.Before, gcfg.Before)

	formatter, ok := output.Lookup(formatName)
	if !ok {
		return fmt.Errorf("unknown output formatter %q (have %s)", formatName, strings.Join(output.Names(), ", "))
	}

	pre := &types.PreProcess{TimeZone: flagTimeZone, Year: flagExtractYear}
	opts := &types.Options{DebugMode: flagDebug, TimeZone: flagTimeZone}
	results, err := parsers.FindAllParsers(pre, opts, filterString)
	if err != nil {
		return err
	}
	if len(results["all"]) == 0 {
		fmt.Fprintln(os.Stderr, "no parsers match the filter expression")
	}

	spec := &types.PathSpec{Type: "os", Path: abs}
	var events []types.EventObject
	for _, p := range results["all"] {
		src, err := evidence.Open(spec)
		if err != nil {
			return err
		}
		evts, err := p.Parse(src, spec)
		if c, ok := src.(io.Closer); ok {
			_ = c.Close()
		}
		if errors.Is(err, parsers.ErrUnsupportedFormat) {
			continue
		}
		if err != nil {
			return fmt.Errorf("parser %s: %w", p.Name(), err)
		}
		events = append(events, evts...)
	}

	if err := formatter.PrintEvents(cmd.OutOrStdout(), events); err != nil {
		return err
	}

	if flagExtractCtx > 0 {
		cache := evidence.NewFSCache()
		defer cache.Close()
		for _, evt := range events {
			evt := evt
			cmd.Printf("\n%s @ %s:\n%s\n", evt.Parser, evt.Desc,
				hexdump.RenderAroundEvent(&evt, cache.Open, before, flagExtractCtx))
		}
	}
	return nil
}
