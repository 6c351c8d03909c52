package fst

import "testing"

func TestAlign_Reconstruction(t *testing.T) {
	cases := []struct {
		name string
		src  string
		dst  string
	}{
		{"equal lengths", "ing", "ing"},
		{"equal single", "a", "b"},
		{"source longer", "ing", "e"},
		{"pure deletion", "ing", ""},
		{"source shorter", "ed", "^ed"},
		{"single absorbs all", "s", "oes"},
		{"unicode", "straße", "strasse"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			steps := align(tc.src, tc.dst, true)

			var in, out string
			for _, s := range steps {
				in += string(s.input)
				out += s.output
			}
			if in != tc.src {
				t.Errorf("concatenated inputs = %q, want %q", in, tc.src)
			}
			if out != tc.dst {
				t.Errorf("concatenated outputs = %q, want %q", out, tc.dst)
			}
		})
	}
}

func TestAlign_OneStepPerSourceRune(t *testing.T) {
	cases := []struct {
		src, dst string
	}{
		{"act", "act"},
		{"ing", ""},
		{"ed", "^ed"},
	}
	for _, tc := range cases {
		steps := align(tc.src, tc.dst, false)
		if got, want := len(steps), len([]rune(tc.src)); got != want {
			t.Errorf("align(%q, %q): %d steps, want %d", tc.src, tc.dst, got, want)
		}
	}
}

func TestAlign_ClosingOnlyOnFinalStep(t *testing.T) {
	steps := align("ing", "e", true)
	for i, s := range steps {
		want := i == len(steps)-1
		if s.closing != want {
			t.Errorf("step %d closing = %v, want %v", i, s.closing, want)
		}
	}
}

func TestAlign_NotClosing(t *testing.T) {
	for _, s := range align("act", "act", false) {
		if s.closing {
			t.Fatal("non-closing item produced a closing step")
		}
	}
}

func TestAlign_EmptySource(t *testing.T) {
	if steps := align("", "x", true); len(steps) != 0 {
		t.Errorf("align(\"\", \"x\") = %d steps, want 0", len(steps))
	}
}

func TestAlign_DeletionMapsToEmptyFragments(t *testing.T) {
	steps := align("ing", "", false)
	for i, s := range steps {
		if s.output != "" {
			t.Errorf("step %d output = %q, want empty", i, s.output)
		}
	}
}

func TestAlign_InsertionAttachedToLastRune(t *testing.T) {
	steps := align("ed", "^ed", false)
	if len(steps) != 2 {
		t.Fatalf("got %d steps, want 2", len(steps))
	}
	if steps[0].output != "^" {
		t.Errorf("step 0 output = %q, want %q", steps[0].output, "^")
	}
	if steps[1].output != "ed" {
		t.Errorf("step 1 output = %q, want %q", steps[1].output, "ed")
	}
}
