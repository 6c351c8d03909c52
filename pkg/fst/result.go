package fst

// Kind discriminates the three possible parse outcomes.
type Kind int

const (
	// KindFailure means no accepting path consumed the whole input.
	KindFailure Kind = iota
	// KindSuccess means exactly one accepting path survived.
	KindSuccess
	// KindAmbiguous means two or more accepting paths survived.
	KindAmbiguous
)

// String returns the lowercase outcome name.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindAmbiguous:
		return "ambiguous"
	case KindFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// ReasonNotPossible is the single defined failure reason: no accepting path
// was found. Malformed rule declarations are caller programming errors and
// never surface here.
const ReasonNotPossible = "not possible"

// Result is the discriminated outcome of parsing one input.
type Result struct {
	Kind    Kind     `json:"kind"`
	Output  string   `json:"output,omitempty"`  // set when Kind is KindSuccess
	Outputs []string `json:"outputs,omitempty"` // set when Kind is KindAmbiguous, discovery order
	Reason  string   `json:"reason,omitempty"`  // set when Kind is KindFailure
}

// Matched reduces the outcome to a boolean: true for success or ambiguous,
// false for failure.
func (r Result) Matched() bool { return r.Kind != KindFailure }

// Classify is a total function over the size of a transduction output set:
// empty is failure with [ReasonNotPossible], a single output is success, and
// anything larger is ambiguous carrying the outputs in discovery order.
func Classify(outputs []string) Result {
	switch len(outputs) {
	case 0:
		return Result{Kind: KindFailure, Reason: ReasonNotPossible}
	case 1:
		return Result{Kind: KindSuccess, Output: outputs[0]}
	default:
		return Result{Kind: KindAmbiguous, Outputs: outputs}
	}
}

// Parse transduces input through the graph and classifies the outcome.
// Like [Graph.Transduce] it is pure and safe for concurrent use.
func (g *Graph) Parse(input string) Result {
	return Classify(g.Transduce(input))
}
