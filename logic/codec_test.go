package logic

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	type tc struct {
		Name string
		Doc  string
		Want Formula
	}
	for _, tt := range []tc{
		{
			Name: "bare literal",
			Doc:  "a",
			Want: Var("a"),
		},
		{
			Name: "block style gate",
			Doc: `
operator: not
values:
- operator: or
  values:
  - a
  - operator: and
    values: [b, c]
`,
			Want: Not(Or(Var("a"), And(Var("b"), Var("c")))),
		},
		{
			Name: "flow style JSON document",
			Doc:  `{"operator": "and", "values": ["a", {"operator": "not", "values": ["b"]}]}`,
			Want: And(Var("a"), Not(Var("b"))),
		},
		{
			Name: "operator names are case insensitive",
			Doc:  `{"operator": "AND", "values": ["a", {"operator": "Not", "values": ["b"]}]}`,
			Want: And(Var("a"), Not(Var("b"))),
		},
		{
			Name: "numeric operator codes",
			Doc:  `{"operator": 0, "values": ["a", {"operator": 1, "values": ["b", {"operator": 2, "values": ["c"]}]}]}`,
			Want: And(Var("a"), Or(Var("b"), Not(Var("c")))),
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			f, err := ParseYAML(strings.NewReader(tt.Doc))
			require.NoError(t, err)
			if diff := cmp.Diff(tt.Want, f); diff != "" {
				t.Errorf("unexpected formula (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseYAMLErrors(t *testing.T) {
	type tc struct {
		Name string
		Doc  string
	}
	for _, tt := range []tc{
		{
			Name: "empty input",
			Doc:  "",
		},
		{
			Name: "numeric document",
			Doc:  "42",
		},
		{
			Name: "missing operator",
			Doc:  `{"values": ["a"]}`,
		},
		{
			Name: "unknown operator name",
			Doc:  `{"operator": "nand", "values": ["a", "b"]}`,
		},
		{
			Name: "unknown operator code",
			Doc:  `{"operator": 3, "values": ["a"]}`,
		},
		{
			Name: "missing values",
			Doc:  `{"operator": "and"}`,
		},
		{
			Name: "values not a list",
			Doc:  `{"operator": "and", "values": "a"}`,
		},
		{
			Name: "nested bad document",
			Doc:  `{"operator": "and", "values": ["a", {"operator": "or"}]}`,
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := ParseYAML(strings.NewReader(tt.Doc))
			assert.Error(t, err)
		})
	}
}

func TestParseYAMLValidates(t *testing.T) {
	_, err := ParseYAML(strings.NewReader(`{"operator": "not", "values": ["a", "b"]}`))
	var arity ArityError
	require.ErrorAs(t, err, &arity)
	assert.Equal(t, OpNot, arity.Op)
	assert.Equal(t, 2, arity.N)

	_, err = ParseYAML(strings.NewReader(`{"operator": "or", "values": []}`))
	require.ErrorAs(t, err, &arity)
	assert.Equal(t, OpOr, arity.Op)
}

func TestYAMLRoundTrip(t *testing.T) {
	formulas := []Formula{
		Var("a"),
		Not(Var("a")),
		And(Var("a"), Var("b"), Var("c")),
		Or(Var("a"), Not(Var("b"))),
		Not(Or(And(Var("a"), Var("b")), Not(Var("c")))),
		Eq(Implies(Var("a"), Var("b")), Xor(Var("b"), Var("c"))),
		Unique("a", "b", "c"),
	}
	for _, f := range formulas {
		var buf bytes.Buffer
		require.NoError(t, WriteYAML(&buf, f), "formula %q", f)
		back, err := ParseYAML(&buf)
		require.NoError(t, err, "formula %q", f)
		if diff := cmp.Diff(f, back); diff != "" {
			t.Errorf("formula %q did not survive the round trip (-want +got):\n%s", f, diff)
		}
	}
}

func TestWriteYAMLInvalidFormula(t *testing.T) {
	var buf bytes.Buffer
	err := WriteYAML(&buf, And())
	var arity ArityError
	require.ErrorAs(t, err, &arity)
	assert.Zero(t, buf.Len())
}
