package main

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/boxname"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/charset"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/codec"
	"github.com/provide-io/boxnames/go/boxnames/pkg/gen3/view"
)

var (
	_ pflag.Value = (*charset.Version)(nil)
	_ pflag.Value = (*charset.Language)(nil)
	_ pflag.Value = (*kindValue)(nil)
	_ pflag.Value = (*endianValue)(nil)
)

var cellCondition = &runewidth.Condition{EastAsianWidth: false}

type kindValue view.Kind

func (k *kindValue) String() string { return string(*k) }
func (k *kindValue) Type() string   { return "view" }

func (k *kindValue) Set(s string) error {
	parsed, err := view.ParseKind(s)
	if err != nil {
		return err
	}
	*k = kindValue(parsed)
	return nil
}

type endianValue struct {
	name  string
	order binary.ByteOrder
}

func (e *endianValue) String() string { return e.name }
func (e *endianValue) Type() string   { return "endian" }

func (e *endianValue) Set(s string) error {
	order, err := view.ParseByteOrder(s)
	if err != nil {
		return err
	}
	e.name, e.order = s, order
	return nil
}

// viewFlags holds the --view and --endian flags shared by encode and view.
type viewFlags struct {
	kind   view.Kind
	endian endianValue
}

func (f *viewFlags) register(cmd *cobra.Command) {
	if f.endian.name == "" {
		f.endian = endianValue{name: "little", order: binary.LittleEndian}
	}
	cmd.Flags().Var((*kindValue)(&f.kind), "view", fmt.Sprintf("Output view %v", view.Kinds))
	cmd.Flags().Var(&f.endian, "endian", "Word byte order for u16/u32 views (little, big)")
}

func (f *viewFlags) print(w io.Writer, r *boxname.Record, opts codec.DecodeOptions) error {
	out, err := view.Render(r, view.Options{
		Kind:     f.kind,
		Order:    f.endian.order,
		Version:  gameVersion,
		Language: language,
		Decode:   opts,
	})
	if err != nil {
		return err
	}
	logger.Trace("🖨️ Rendered view", "kind", f.kind, "endian", f.endian.name)
	_, err = fmt.Fprintln(w, out)
	return err
}
