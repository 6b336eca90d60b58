package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/ldumpj/format"
	"github.com/signadot/ldumpj/ir"
)

func sample() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "a", Val: ir.FromInt(1)},
		{Key: "b", Val: ir.FromSlice([]*ir.Node{ir.FromBool(true), ir.Null()})},
		{Key: "c", Val: ir.FromKeyVals(nil)},
		{Key: "d", Val: ir.FromString("x<y")},
	})
}

func encodeString(t *testing.T, node *ir.Node, opts ...EncodeOption) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestEncodeJSON(t *testing.T) {
	tests := []struct {
		name string
		opts []EncodeOption
		want string
	}{
		{
			name: "pretty",
			want: `{
  "a": 1,
  "b": [
    true,
    null
  ],
  "c": {},
  "d": "x<y"
}
`,
		},
		{
			name: "indent",
			opts: []EncodeOption{Indent(4)},
			want: `{
    "a": 1,
    "b": [
        true,
        null
    ],
    "c": {},
    "d": "x<y"
}
`,
		},
		{
			name: "wire",
			opts: []EncodeOption{EncodeWire(true)},
			want: `{"a":1,"b":[true,null],"c":{},"d":"x<y"}` + "\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := encodeString(t, sample(), tc.opts...); got != tc.want {
				t.Errorf("got\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		node *ir.Node
		want string
	}{
		{node: nil, want: `null`},
		{node: ir.FromString("a\"b\n"), want: `"a\"b\n"`},
		{node: ir.FromString("tab\there"), want: `"tab\there"`},
		{node: ir.FromNumber("18446744073709551615"), want: `18446744073709551615`},
		{node: ir.FromInt(-3), want: `-3`},
		{node: ir.FromSlice(nil), want: `[]`},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := MustString(tc.node); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestEncodeYAML(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "s", Val: ir.FromString("x")},
		{Key: "n", Val: ir.FromNumber("18446744073709551615")},
		{Key: "a", Val: ir.FromInt(1)},
	})
	got := encodeString(t, node, EncodeFormat(format.YAMLFormat))
	want := "s: x\nn: 18446744073709551615\na: 1\n"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeColor(t *testing.T) {
	brackets := func(es *EncState) {
		es.Color = func(_ ir.Type, a ColorAttr, s string) string {
			if a == FieldColor {
				return "<" + s + ">"
			}
			return s
		}
	}
	node := ir.FromKeyVals([]ir.KeyVal{{Key: "k", Val: ir.FromInt(1)}})
	got := strings.TrimSpace(encodeString(t, node, EncodeWire(true), brackets))
	if got != `{<"k">:1}` {
		t.Errorf("got %s", got)
	}
}

func TestEncodeMismatch(t *testing.T) {
	node := &ir.Node{Type: ir.ObjectType, Fields: []*ir.Node{ir.FromString("x")}}
	err := Encode(node, bytes.NewBuffer(nil))
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("got %v, want an encoding error", err)
	}
}

func TestFormatFromOpts(t *testing.T) {
	if f := FormatFromOpts(EncodeWire(true), EncodeFormat(format.YAMLFormat)); f != format.YAMLFormat {
		t.Errorf("got %s", f)
	}
}
