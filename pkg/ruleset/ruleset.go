// Package ruleset loads declarative rewrite rules from TOML files and
// compiles them into transition graphs.
//
// A ruleset file names the set and lists rules in registration order. Each
// item is either a literal (lit) or a transformation pair (src/dst):
//
//	name = "english-verbs"
//
//	[[rule]]
//	items = [
//	  { lit = "act" },
//	  { src = "ing", dst = "^ing" },
//	]
//
// File order is registration order, which fixes the order of ambiguous
// outputs. Validation happens at load time: malformed items are declaration
// errors surfaced here, never parse-time failures.
package ruleset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lexway/lexway/pkg/fst"
)

// Sentinel errors for ruleset validation.
var (
	// ErrNoItems is returned when a rule declares an empty item list.
	ErrNoItems = errors.New("rule has no items")

	// ErrMixedItem is returned when an item sets lit together with src or dst.
	ErrMixedItem = errors.New("item must set either lit or src/dst, not both")

	// ErrIncompleteItem is returned when an item sets neither lit nor a
	// complete src/dst pair. dst = "" is a valid (deletion) destination and
	// must be given explicitly.
	ErrIncompleteItem = errors.New("item must set lit, or both src and dst")

	// ErrEmptySource is returned when lit or src is the empty string; every
	// edit step must consume input.
	ErrEmptySource = errors.New("item source must not be empty")
)

// Set is a validated, ordered collection of rules loaded from one file.
type Set struct {
	Name  string
	Rules []fst.Rule
}

// fileSet mirrors the TOML document layout.
type fileSet struct {
	Name  string     `toml:"name"`
	Rules []fileRule `toml:"rule"`
}

type fileRule struct {
	Items []fileItem `toml:"items"`
}

// fileItem uses pointers so that absent fields are distinguishable from
// empty strings: dst = "" declares a deletion and is legal, a missing dst
// next to src is not.
type fileItem struct {
	Lit *string `toml:"lit"`
	Src *string `toml:"src"`
	Dst *string `toml:"dst"`
}

// Load reads and validates a ruleset file.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ruleset: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes and validates a TOML ruleset document.
func Parse(r io.Reader) (*Set, error) {
	var doc fileSet
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode ruleset: %w", err)
	}

	set := &Set{Name: doc.Name, Rules: make([]fst.Rule, 0, len(doc.Rules))}
	for ri, fr := range doc.Rules {
		rule, err := convertRule(fr)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", ri, err)
		}
		set.Rules = append(set.Rules, rule)
	}
	return set, nil
}

// Compile builds a fresh graph by registering every rule in file order.
// The graph is rebuilt from declarations on every call; there is no
// serialized graph representation.
func (s *Set) Compile() *fst.Graph {
	g := fst.New()
	for _, r := range s.Rules {
		g.AddRule(r)
	}
	return g
}

func convertRule(fr fileRule) (fst.Rule, error) {
	if len(fr.Items) == 0 {
		return fst.Rule{}, ErrNoItems
	}
	items := make([]fst.Item, 0, len(fr.Items))
	for ii, fi := range fr.Items {
		item, err := convertItem(fi)
		if err != nil {
			return fst.Rule{}, fmt.Errorf("item %d: %w", ii, err)
		}
		items = append(items, item)
	}
	return fst.NewRule(items...), nil
}

func convertItem(fi fileItem) (fst.Item, error) {
	switch {
	case fi.Lit != nil && (fi.Src != nil || fi.Dst != nil):
		return fst.Item{}, ErrMixedItem
	case fi.Lit != nil:
		if *fi.Lit == "" {
			return fst.Item{}, ErrEmptySource
		}
		return fst.Lit(*fi.Lit), nil
	case fi.Src != nil && fi.Dst != nil:
		if *fi.Src == "" {
			return fst.Item{}, ErrEmptySource
		}
		return fst.Sub(*fi.Src, *fi.Dst), nil
	default:
		return fst.Item{}, ErrIncompleteItem
	}
}
