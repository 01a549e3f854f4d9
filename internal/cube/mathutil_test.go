package cube

import "testing"

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{5, 120},
		{8, 40320},
		{12, 479001600},
	}
	for _, tt := range tests {
		if got := factorial(tt.n); got != tt.want {
			t.Errorf("factorial(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestBinomial(t *testing.T) {
	tests := []struct {
		n, k int
		want int
	}{
		{12, 4, 495},
		{8, 4, 70},
		{5, 0, 1},
		{5, 5, 1},
		{5, 6, 0},
		{5, -1, 0},
	}
	for _, tt := range tests {
		if got := binomial(tt.n, tt.k); got != tt.want {
			t.Errorf("binomial(%d,%d) = %d, want %d", tt.n, tt.k, got, tt.want)
		}
	}
}
