package main

import (
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tincho9/plaso/internal/config"
	"github.com/tincho9/plaso/internal/evidence"
	"github.com/tincho9/plaso/internal/hexdump"
	"github.com/tincho9/plaso/internal/types"
)

var (
	flagDumpOffset int64
	flagDumpLines  int
)

func init() {
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Hex dump a byte window of an evidence file",
		Args:  cobra.ExactArgs(1),
		RunE:  runDump,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().Int64Var(&flagDumpOffset, "offset", 0, "byte offset to start at")
	cmd.Flags().IntVar(&flagDumpLines, "lines", 0, "16-byte lines to render (0 = default)")
}

func runDump(cmd *cobra.Command, args []string) error {
	abs, _ := filepath.Abs(args[0])

	var lcfg config.FileConfig
	if c, err := config.LoadLocal(filepath.Dir(abs)); err == nil {
		lcfg = c
	}
	lines := pickInt(flagDumpLines, lcfg.Lines, nil)

	src, err := evidence.Open(&types.PathSpec{Type: "os", Path: abs})
	if err != nil {
		return err
	}
	if c, ok := src.(io.Closer); ok {
		defer c.Close()
	}

	out, err := hexdump.RenderFromSource(src, flagDumpOffset, lines)
	if err != nil {
		return err
	}
	cmd.Println(out)
	return nil
}
