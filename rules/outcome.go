package rules

import (
	"fmt"

	"github.com/jsonedit/go-jsonedit/ir"
)

// Disposition classifies the result of consulting a rule.
type Disposition int

const (
	// Inapplicable means the rule does not recognize the input; the
	// caller moves on to the next rule.
	Inapplicable Disposition = iota
	// Edited means the rule replaced the input.
	Edited
	// Deferred means the rule set the property aside on the state for
	// finalization.
	Deferred
	// Ignored means the input is dropped with no output and no error.
	Ignored
	// Failed means the input is malformed and the containing operation
	// aborts.
	Failed
)

func (d Disposition) String() string {
	s, ok := map[Disposition]string{
		Inapplicable: "inapplicable",
		Edited:       "edited",
		Deferred:     "deferred",
		Ignored:      "ignored",
		Failed:       "failed",
	}[d]
	if ok {
		return s
	}
	return "<unknown disposition>"
}

// Outcome is the result of a single editProperty or editValue call.
// Node is set for Edited outcomes, Err for Failed ones.
type Outcome struct {
	Disposition Disposition
	Node        *ir.Node
	Err         error
}

func NotApplicable() Outcome {
	return Outcome{Disposition: Inapplicable}
}

func Edit(node *ir.Node) Outcome {
	return Outcome{Disposition: Edited, Node: node}
}

// Defer signals that the property was recorded on the state via
// State.Defer.
func Defer() Outcome {
	return Outcome{Disposition: Deferred}
}

func Ignore() Outcome {
	return Outcome{Disposition: Ignored}
}

func Fail(err error) Outcome {
	return Outcome{Disposition: Failed, Err: err}
}

func Failf(format string, args ...any) Outcome {
	return Fail(fmt.Errorf(format, args...))
}

// FinalOutcome is the result of a finalize call. Nodes holds the
// ordered objects to merge for Edited outcomes.
type FinalOutcome struct {
	Disposition Disposition
	Nodes       []*ir.Node
	Err         error
}

func FinalNotApplicable() FinalOutcome {
	return FinalOutcome{Disposition: Inapplicable}
}

func FinalEdit(nodes ...*ir.Node) FinalOutcome {
	return FinalOutcome{Disposition: Edited, Nodes: nodes}
}

func FinalIgnore() FinalOutcome {
	return FinalOutcome{Disposition: Ignored}
}

func FinalFail(err error) FinalOutcome {
	return FinalOutcome{Disposition: Failed, Err: err}
}
