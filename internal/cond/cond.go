// Package cond implements the traversal behind the if-in-if-condition
// rule: it walks one function body and reports every conditional that
// sits inside the condition slot of an enclosing conditional.
//
// The package is front-end agnostic. A front end exposes its tree
// through the Node interface; the go/ast binding lives in
// internal/lints.
package cond

import "go/token"

// Class tags a node for the walker.
type Class int

const (
	// Other is any expression or statement that is not a conditional.
	// The walker descends into it through Children.
	Other Class = iota

	// Conditional is an if/then/optional-else construct. The walker
	// descends into it through Init, Cond, Then and Else.
	Conditional
)

// Context says whether the walker is currently inside the condition
// slot of an enclosing conditional. It is threaded through the
// recursion as a value, never stored on the walker, so each branch
// position receives exactly the context it should see.
type Context int

const (
	// Outer is the ordinary statement/body position. A conditional
	// met here is a top-level conditional, not a violation.
	Outer Context = iota

	// InsideCondition means the walk entered a conditional's
	// condition slot and has not passed through a then/else body
	// since. A conditional met here is a violation.
	InsideCondition
)

// Span locates a node in the source.
type Span struct {
	Start token.Position
	End   token.Position
}

// Node is one node of a function body's tree. Implementations belong
// to the front end; the walker only reads them.
type Node interface {
	// Class tags the node as Conditional or Other.
	Class() Class

	// Init, Cond, Then and Else are the slots of a Conditional node.
	// Init and Else return nil when the conditional has no init
	// statement or else branch. They must not be called on Other
	// nodes.
	Init() Node
	Cond() Node
	Then() Node
	Else() Node

	// Children returns the direct children of an Other node for the
	// generic walk.
	Children() []Node

	// FromExpansion reports whether the node is generated code rather
	// than something the user wrote (in Go, a position remapped by a
	// line directive).
	FromExpansion() bool

	// Span locates the node in the source.
	Span() Span
}

// Fixed diagnostic wording.
const (
	Message = "conditional expression in conditional condition"
	Help    = "assign the result of the inner conditional to a variable and use the variable in the condition instead"
)

// Finding is one detected violation. It is handed to the caller and
// not retained by the walker.
type Finding struct {
	Span    Span
	Message string
	Help    string
}

// Walk visits one function body and returns a finding for every
// conditional whose condition slot contains another conditional. It
// never fails: the tree is well-formed by construction.
func Walk(root Node) []Finding {
	w := &walker{}
	w.visit(root, Outer)
	return w.findings
}

type walker struct {
	findings []Finding
}

func (w *walker) visit(n Node, ctx Context) {
	if n == nil || n.FromExpansion() {
		return
	}

	if n.Class() != Conditional {
		// Generic descent keeps the incoming context: a conditional
		// buried inside a larger condition expression (one operand of
		// a boolean combination, or the body of a function literal)
		// is still nested-in-condition.
		for _, c := range n.Children() {
			w.visit(c, ctx)
		}
		return
	}

	if ctx == InsideCondition {
		w.findings = append(w.findings, Finding{
			Span:    n.Span(),
			Message: Message,
			Help:    Help,
		})
	}

	// The init statement is an ordinary statement position: assigning
	// the inner result there is exactly what the rule suggests.
	if init := n.Init(); init != nil {
		w.visit(init, Outer)
	}

	w.visit(n.Cond(), InsideCondition)

	// Then and else bodies are ordinary statement positions. The else
	// branch goes through the full dispatch so else-if chains keep
	// being walked without flagging the chain itself.
	w.visit(n.Then(), Outer)
	if els := n.Else(); els != nil {
		w.visit(els, Outer)
	}
}
