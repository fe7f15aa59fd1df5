package parse

import "testing"

func TestLengthAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b Length
		want Length
	}{
		{"zero identity", Length{2, 3, 0, 3}, LengthZero(), Length{2, 3, 0, 3}},
		{"componentwise", Length{1, 2, 3, 4}, Length{10, 20, 30, 40}, Length{11, 22, 33, 44}},
		{"commutes", Length{10, 20, 30, 40}, Length{1, 2, 3, 4}, Length{11, 22, 33, 44}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Add(tt.b); got != tt.want {
				t.Errorf("Add = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLengthMul(t *testing.T) {
	tests := []struct {
		name   string
		l      Length
		factor int
		want   Length
	}{
		{"by zero", Length{2, 3, 0, 3}, 0, LengthZero()},
		{"by one", Length{2, 3, 0, 3}, 1, Length{2, 3, 0, 3}},
		{"by three", Length{2, 3, 0, 3}, 3, Length{6, 9, 0, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.l.Mul(tt.factor); got != tt.want {
				t.Errorf("Mul(%d) = %v, want %v", tt.factor, got, tt.want)
			}
		})
	}
}

func TestLengthIsZero(t *testing.T) {
	if !LengthZero().IsZero() {
		t.Error("LengthZero().IsZero() = false, want true")
	}
	if (Length{Rows: 1}).IsZero() {
		t.Error("IsZero() = true for non-zero length")
	}
}
