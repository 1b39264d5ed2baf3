package editor

import "errors"

// Sentinel errors of the store. Missing nodes and edges surface as *core.NotFoundError
// (errors.Is core.ErrNotFound).
var (
	// ErrNoSelection indicates an operation that needs a selection while nothing is selected.
	ErrNoSelection = errors.New("editor: nothing selected")

	// ErrUnsupported is returned by operations that are deliberately not implemented (Undo).
	ErrUnsupported = errors.New("editor: operation not supported")
)

// Warning is user guidance produced by an operation that did nothing on purpose.
// It is not a failure: the store is unchanged and no error is returned.
type Warning string

// Warnings reported in Result.Warning.
const (
	WarnNone           Warning = ""
	WarnCannotCopyEdge Warning = "cannot copy an edge, select a node instead"
	WarnNothingToPaste Warning = "nothing to paste, copy a node first"
	WarnDuplicateEdge  Warning = "edge already exists"
)

// String implements fmt.Stringer.
func (w Warning) String() string { return string(w) }
