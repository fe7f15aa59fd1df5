package parse

import "fmt"

// Length measures the extent of text in four units at once: bytes,
// characters, rows, and columns. Positions on the parse stack are
// sums of the lengths of the trees below them.
type Length struct {
	Bytes   int
	Chars   int
	Rows    int
	Columns int
}

// LengthZero returns the additive identity.
func LengthZero() Length {
	return Length{}
}

// Add returns the componentwise sum of l and other.
func (l Length) Add(other Length) Length {
	return Length{
		Bytes:   l.Bytes + other.Bytes,
		Chars:   l.Chars + other.Chars,
		Rows:    l.Rows + other.Rows,
		Columns: l.Columns + other.Columns,
	}
}

// Mul returns l scaled by a non-negative factor.
func (l Length) Mul(factor int) Length {
	return Length{
		Bytes:   l.Bytes * factor,
		Chars:   l.Chars * factor,
		Rows:    l.Rows * factor,
		Columns: l.Columns * factor,
	}
}

// IsZero reports whether every component is zero.
func (l Length) IsZero() bool {
	return l == Length{}
}

func (l Length) String() string {
	return fmt.Sprintf("{bytes:%d chars:%d rows:%d cols:%d}", l.Bytes, l.Chars, l.Rows, l.Columns)
}
