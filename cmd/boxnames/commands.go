package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/provide-io/boxnames/go/boxnames/internal/session"
	"github.com/provide-io/boxnames/go/boxnames/pkg"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/boxname"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/charset"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/codec"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/view"
	"github.com/provide-io/boxnames/go/boxnames/pkg/utils/permissions"
)

var heading = color.New(color.FgCyan, color.Bold)

// readRecord loads a record from a raw binary file, the hex argument, or hex
// on stdin, in that order.
func readRecord(cmd *cobra.Command, args []string, file string) (*boxname.Record, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		logger.Debug("📂 Read raw record", "file", file, "size", len(data))
		return boxname.Unpack(data)
	}

	var text string
	if len(args) > 0 {
		text = strings.Join(args, "")
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}
	data, err := view.ParseHex(text)
	if err != nil {
		return nil, err
	}
	return boxname.Unpack(data)
}

func newDecodeCmd() *cobra.Command {
	var (
		file string
		mask bool
	)
	cmd := &cobra.Command{
		Use:   "decode [HEX]",
		Short: "Decode a box-name block into names",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := readRecord(cmd, args, file)
			if err != nil {
				return err
			}
			names := codec.DecodeRecord(r, gameVersion, language, codec.DecodeOptions{MaskUnwritable: mask})
			out := cmd.OutOrStdout()
			for i, name := range names {
				fmt.Fprintf(out, "Box %2d: %s\n", i+1, name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read a raw 126-byte block instead of hex")
	cmd.Flags().BoolVar(&mask, "mask-unwritable", false, "Show bytes the naming screen cannot produce as "+codec.UnwritableGlyph)
	return cmd
}

func newEncodeCmd() *cobra.Command {
	var (
		normalize bool
		output    string
		mode      string
		render    = viewFlags{kind: view.KindRaw}
	)
	cmd := &cobra.Command{
		Use:   "encode NAME...",
		Short: "Encode up to 14 names into a box-name block",
		Args:  cobra.RangeArgs(1, boxname.SlotCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if normalize {
				names = make([]string, len(args))
				for i, a := range args {
					names[i] = codec.Normalize(a, language)
				}
			}
			data, err := pkg.EncodeNames(names, gameVersion.String(), language.String())
			if err != nil {
				return err
			}
			if output != "" {
				perm, err := permissions.ParseMode(mode)
				if err != nil {
					return err
				}
				if err := os.WriteFile(output, data, perm); err != nil {
					return fmt.Errorf("failed to write %s: %w", output, err)
				}
				logger.Info("💾 Wrote raw record",
					"file", output,
					"size", len(data),
					"mode", permissions.FormatMode(perm),
				)
				if !permissions.OwnerWritable(perm) {
					logger.Warn("⚠️ Record file is read-only for its owner", "file", output)
				}
			}
			r, err := boxname.Unpack(data)
			if err != nil {
				return err
			}
			return render.print(cmd.OutOrStdout(), r, codec.DecodeOptions{})
		},
	}
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Rewrite input into the table's character forms before encoding")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Also write the raw 126-byte block to this file")
	cmd.Flags().StringVar(&mode, "mode", "", "File mode for --output (octal, default "+permissions.FormatMode(permissions.DefaultRecordPerms)+")")
	render.register(cmd)
	return cmd
}

func newViewCmd() *cobra.Command {
	var (
		file   string
		mask   bool
		render = viewFlags{kind: view.KindRaw}
	)
	cmd := &cobra.Command{
		Use:   "view [HEX]",
		Short: "Show a box-name block in another view",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := readRecord(cmd, args, file)
			if err != nil {
				return err
			}
			return render.print(cmd.OutOrStdout(), r, codec.DecodeOptions{MaskUnwritable: mask})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Read a raw 126-byte block instead of hex")
	cmd.Flags().BoolVar(&mask, "mask-unwritable", false, "Mask unwritable bytes in the paste view")
	render.register(cmd)
	return cmd
}

func newTablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Print the effective character table of the selected version and language",
		RunE: func(cmd *cobra.Command, args []string) error {
			printTable(cmd.OutOrStdout(), gameVersion, language)
			return nil
		},
	}
}

func newSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Edit box names interactively, one command per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			heading.Fprintf(out, "boxnames %s session (%s/%s), type help for commands\n", version, gameVersion, language)
			s := session.New(gameVersion, language, out, logger.Named("session"))
			return s.Run(cmd.InOrStdin())
		},
	}
}

// printTable prints a 16x16 grid. Positions whose glyph differs from the
// language's base table are highlighted.
func printTable(w io.Writer, v charset.Version, l charset.Language) {
	effective := charset.EffectiveTable(v, l)
	base := charset.BaseTable(l)
	changed := color.New(color.FgYellow)

	heading.Fprintf(w, "%s/%s (%d glyphs)\n", v, l, effective.Len())
	fmt.Fprint(w, "   ")
	for col := 0; col < 16; col++ {
		fmt.Fprintf(w, "  %X ", col)
	}
	fmt.Fprintln(w)
	for row := 0; row < 16; row++ {
		fmt.Fprintf(w, "%X0 ", row)
		for col := 0; col < 16; col++ {
			b := byte(row<<4 | col)
			g, ok := effective.Lookup(b)
			cell := cellCondition.FillRight(g, 3)
			if !ok {
				cell = "   "
			}
			if bg, _ := base.Lookup(b); bg != g {
				cell = changed.Sprint(cell)
			}
			fmt.Fprintf(w, " %s", cell)
		}
		fmt.Fprintln(w)
	}
}
