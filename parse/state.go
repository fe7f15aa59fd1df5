package parse

// StateID identifies a state of the parser's LR automaton.
type StateID uint16

// SymbolID identifies a grammar symbol.
type SymbolID uint16

const (
	// RootState is the state of the stack's sentinel base node.
	RootState StateID = 0

	// ErrorState marks nodes pushed during error recovery. Popping
	// across the boundary into an error node halts the traversal.
	ErrorState StateID = ^StateID(0)
)
