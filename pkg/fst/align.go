package fst

// step is one single-input-rune edit produced by aligning a rule item.
// Concatenating the input runes of an item's steps reconstructs its source
// exactly, and concatenating the output fragments reconstructs its
// destination exactly.
type step struct {
	input   rune
	output  string
	closing bool
}

// align converts one (source, destination) transformation pair into an
// ordered sequence of single-input-rune edit steps. Every step consumes
// exactly one source rune, because an edge must advance the input tape:
//
//   - equal rune counts: zipped 1:1, one step per pair;
//   - source longer: the first len(dst) runes align 1:1 and each remaining
//     source rune maps to an empty fragment (pure deletion);
//   - source shorter: the first len(src)-1 runes align 1:1 and the final
//     source rune absorbs the entire destination remainder, so insertion is
//     attached to a consumed rune rather than invented without one.
//
// Degenerate lengths (empty destination, single-rune source) fall out of the
// same slicing with no special case. When closing is true the final step is
// marked closing; it is the caller's job to pass closing only for the last
// item of a rule.
func align(src, dst string, closing bool) []step {
	in := []rune(src)
	out := []rune(dst)
	steps := make([]step, 0, len(in))

	if len(in) >= len(out) {
		for i, r := range in {
			var frag string
			if i < len(out) {
				frag = string(out[i])
			}
			steps = append(steps, step{input: r, output: frag})
		}
	} else {
		last := len(in) - 1
		for i := 0; i < last; i++ {
			steps = append(steps, step{input: in[i], output: string(out[i])})
		}
		steps = append(steps, step{input: in[last], output: string(out[last:])})
	}

	if closing && len(steps) > 0 {
		steps[len(steps)-1].closing = true
	}
	return steps
}
