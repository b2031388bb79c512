package rendertree

// StateKind tags which NodeState variant is populated, mirroring
// spec.md §3's NodeState sum type (Atomic, ParagraphState, TableState,
// ListState, BlockState, FlexState).
type StateKind int

const (
	StateAtomic StateKind = iota
	StateParagraph
	StateTable
	StateList
	StateBlock
	StateFlex
)

// NodeState is a resumable token carried across page boundaries. A
// stack of these corresponding to the ancestor chain is sufficient to
// resume a node's layout on a fresh page (spec.md §3).
type NodeState struct {
	Kind StateKind

	// StateParagraph: index of the next line to emit.
	LineIndex int

	// StateTable: index of the next body row to emit (header rows are
	// always re-emitted in full).
	RowIndex int

	// StateList, StateBlock: index of the child currently in progress,
	// plus that child's own resumption state (nil if the child has not
	// started, i.e. it will start fresh on the next page).
	ChildIndex int
	Inner      *NodeState

	// StateFlex: index of the flex line in progress and that line's
	// per-item resumption state.
	LineNo    int
	ItemState *NodeState

	// NextMaster, when non-empty, names the page master the paginator
	// should switch to for the page that follows this break (spec.md
	// §4.8's "if state announces a new master, switch master"). Only
	// ever set by a PageBreak node.
	NextMaster string
}

// ResultKind tags whether a LayoutResult fully emitted its node.
type ResultKind int

const (
	ResultFinished ResultKind = iota
	ResultBreak
)

// LayoutResult is the outcome of one LayoutNode.Layout call (spec.md
// §4.4): Finished means fully emitted; Break carries the state needed
// to resume on a fresh page.
type LayoutResult struct {
	Kind  ResultKind
	State *NodeState
}

// Finished is the zero-state "fully emitted" result.
func Finished() LayoutResult { return LayoutResult{Kind: ResultFinished} }

// Break wraps a resumable state as a Break result.
func Break(s *NodeState) LayoutResult { return LayoutResult{Kind: ResultBreak, State: s} }

// IsFinished reports whether the result represents full emission.
func (r LayoutResult) IsFinished() bool { return r.Kind == ResultFinished }
