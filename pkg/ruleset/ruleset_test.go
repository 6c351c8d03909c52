package ruleset

import (
	"errors"
	"strings"
	"testing"

	"github.com/lexway/lexway/pkg/fst"
)

const verbsTOML = `
name = "english-verbs"

[[rule]]
items = [
  { lit = "act" },
  { src = "ing", dst = "" },
]

[[rule]]
items = [
  { lit = "act" },
  { src = "ing", dst = "e" },
]

[[rule]]
items = [
  { lit = "walk" },
  { src = "ed", dst = "^ed" },
]
`

func TestParse_Valid(t *testing.T) {
	set, err := Parse(strings.NewReader(verbsTOML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if set.Name != "english-verbs" {
		t.Errorf("Name = %q, want %q", set.Name, "english-verbs")
	}
	if len(set.Rules) != 3 {
		t.Fatalf("len(Rules) = %d, want 3", len(set.Rules))
	}
	if got := set.Rules[0].Items[0]; got != fst.Lit("act") {
		t.Errorf("rule 0 item 0 = %+v, want literal act", got)
	}
	if got := set.Rules[2].Items[1]; got != fst.Sub("ed", "^ed") {
		t.Errorf("rule 2 item 1 = %+v, want ed→^ed", got)
	}
}

func TestParse_EmptyDstIsDeletion(t *testing.T) {
	set, err := Parse(strings.NewReader(verbsTOML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := set.Rules[0].Items[1]; got != fst.Sub("ing", "") {
		t.Errorf("rule 0 item 1 = %+v, want ing→\"\"", got)
	}
}

func TestCompile_RegistrationOrder(t *testing.T) {
	set, err := Parse(strings.NewReader(verbsTOML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	g := set.Compile()

	res := g.Parse("acting")
	if res.Kind != fst.KindAmbiguous {
		t.Fatalf("Parse(%q).Kind = %v, want ambiguous", "acting", res.Kind)
	}
	if res.Outputs[0] != "act" || res.Outputs[1] != "acte" {
		t.Errorf("Outputs = %v, want [act acte] in file order", res.Outputs)
	}

	if res := g.Parse("walked"); res.Kind != fst.KindSuccess || res.Output != "walk^ed" {
		t.Errorf("Parse(%q) = %+v, want success walk^ed", "walked", res)
	}
}

func TestCompile_FreshGraphEachCall(t *testing.T) {
	set, err := Parse(strings.NewReader(verbsTOML))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	a, b := set.Compile(), set.Compile()
	if a == b {
		t.Error("Compile() returned the same graph twice")
	}
	if a.Stats() != b.Stats() {
		t.Errorf("graphs differ: %+v vs %+v", a.Stats(), b.Stats())
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		toml string
		want error
	}{
		{
			"no items",
			"[[rule]]\nitems = []\n",
			ErrNoItems,
		},
		{
			"mixed item",
			`[[rule]]
items = [ { lit = "a", src = "b", dst = "c" } ]
`,
			ErrMixedItem,
		},
		{
			"src without dst",
			`[[rule]]
items = [ { src = "ing" } ]
`,
			ErrIncompleteItem,
		},
		{
			"dst without src",
			`[[rule]]
items = [ { dst = "x" } ]
`,
			ErrIncompleteItem,
		},
		{
			"empty lit",
			`[[rule]]
items = [ { lit = "" } ]
`,
			ErrEmptySource,
		},
		{
			"empty src",
			`[[rule]]
items = [ { src = "", dst = "x" } ]
`,
			ErrEmptySource,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.toml))
			if !errors.Is(err, tc.want) {
				t.Errorf("Parse() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParse_BadTOML(t *testing.T) {
	if _, err := Parse(strings.NewReader("not = [valid")); err == nil {
		t.Error("Parse() accepted malformed TOML")
	}
}

func TestParse_EmptyDocument(t *testing.T) {
	set, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(set.Rules) != 0 {
		t.Errorf("len(Rules) = %d, want 0", len(set.Rules))
	}

	// An empty set compiles to a graph that rejects everything.
	if res := set.Compile().Parse("anything"); res.Kind != fst.KindFailure {
		t.Errorf("Parse on empty set = %v, want failure", res.Kind)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("testdata/does-not-exist.toml"); err == nil {
		t.Error("Load() succeeded on a missing file")
	}
}
