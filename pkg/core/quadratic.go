package core

import (
	"errors"
	"math"
)

// ErrInfiniteSolutions is returned when every real number solves the
// equation (a = b = c = 0). It indicates a malformed primitive rather
// than a geometric miss, so it is surfaced instead of swallowed.
var ErrInfiniteSolutions = errors.New("core: equation has infinitely many solutions")

// SolveQuadratic finds the real roots of a*x^2 + b*x + c = 0 and returns
// them in ascending order. The linear case (a = 0) yields its single root
// twice. ok is false when no real root exists.
func SolveQuadratic(a, b, c float64) (t0, t1 float64, ok bool, err error) {
	if a == 0 {
		if b == 0 {
			if c == 0 {
				return 0, 0, false, ErrInfiniteSolutions
			}
			return 0, 0, false, nil
		}
		root := -c / b
		return root, root, true, nil
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, 0, false, nil
	}

	sqrtD := math.Sqrt(discriminant)
	t0 = (-b - sqrtD) / (2 * a)
	t1 = (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	return t0, t1, true, nil
}
