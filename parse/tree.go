package parse

import "fmt"

// TreeOption configures a leaf created by NewLeaf.
type TreeOption func(*Tree)

// WithExtra marks the tree as extra: it occupies space on the stack
// but does not count toward pop requests (whitespace, comments).
func WithExtra() TreeOption {
	return func(t *Tree) {
		t.Extra = true
	}
}

// WithParseState records the automaton state the tree was parsed in.
func WithParseState(state StateID) TreeOption {
	return func(t *Tree) {
		t.ParseState = state
	}
}

// Tree is a reference-counted lexical tree handle. The stack treats
// it as opaque: only its size and extra flag matter to stack
// operations. Every stack link owns one reference to its tree;
// popped slices transfer freshly retained references to the caller.
type Tree struct {
	Symbol     SymbolID
	Size       Length
	Extra      bool
	ParseState StateID

	refCount int
}

// NewLeaf creates a leaf tree with one reference owned by the caller.
func NewLeaf(symbol SymbolID, size Length, opts ...TreeOption) *Tree {
	t := &Tree{
		Symbol:   symbol,
		Size:     size,
		refCount: 1,
	}
	for _, opt := range opts {
		opt(t)
	}
	recordAlloc(t)
	return t
}

// Retain adds a reference.
func (t *Tree) Retain() {
	if t.refCount <= 0 {
		panic("parse: retain of released tree")
	}
	t.refCount++
}

// Release drops a reference. The last release frees the tree.
func (t *Tree) Release() {
	if t.refCount <= 0 {
		panic("parse: release of released tree")
	}
	t.refCount--
	if t.refCount == 0 {
		recordFree(t)
	}
}

// RefCount returns the number of live references.
func (t *Tree) RefCount() int {
	return t.refCount
}

func (t *Tree) String() string {
	return fmt.Sprintf("tree(sym:%d size:%s)", t.Symbol, t.Size)
}
