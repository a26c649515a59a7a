package core

import (
	"math"
	"testing"
)

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name       string
		a, b, c    float64
		expectOK   bool
		expectT0   float64
		expectT1   float64
	}{
		{"two distinct roots", 1, 0, -4, true, -2, 2},
		{"double root", 1, -2, 1, true, 1, 1},
		{"no real roots", 1, 0, 4, false, 0, 0},
		{"roots sorted for negative a", -1, 0, 4, true, -2, 2},
		{"linear", 0, 2, -6, true, 3, 3},
		{"linear no roots", 0, 0, 5, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t0, t1, ok, err := SolveQuadratic(tt.a, tt.b, tt.c)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if ok != tt.expectOK {
				t.Fatalf("Expected ok=%t, got %t", tt.expectOK, ok)
			}
			if !ok {
				return
			}
			if math.Abs(t0-tt.expectT0) > 1e-9 || math.Abs(t1-tt.expectT1) > 1e-9 {
				t.Errorf("Expected roots (%f, %f), got (%f, %f)", tt.expectT0, tt.expectT1, t0, t1)
			}
			if t0 > t1 {
				t.Errorf("Roots not sorted: (%f, %f)", t0, t1)
			}
		})
	}
}

func TestSolveQuadratic_InfiniteSolutions(t *testing.T) {
	_, _, _, err := SolveQuadratic(0, 0, 0)
	if err != ErrInfiniteSolutions {
		t.Errorf("Expected ErrInfiniteSolutions, got %v", err)
	}
}
