package validate

import (
	"math"
	"testing"

	apperrors "simvar/internal/errors"
)

func TestCount(t *testing.T) {
	if err := Count("vexp", 1); err != nil {
		t.Errorf("n=1 must pass: %v", err)
	}
	for _, n := range []int{0, -1} {
		err := Count("vexp", n)
		if err == nil {
			t.Errorf("n=%d must fail", n)
			continue
		}
		if apperrors.GetCode(err) != apperrors.CodeValidationError {
			t.Errorf("n=%d: wrong code %s", n, apperrors.GetCode(err))
		}
	}
}

func TestStream(t *testing.T) {
	cases := []struct {
		stream int
		ok     bool
	}{
		{0, true},
		{127, true},
		{-1, false},
		{128, false},
	}
	for _, c := range cases {
		err := Stream("vunif", c.stream, 128)
		if (err == nil) != c.ok {
			t.Errorf("stream=%d: ok=%v, err=%v", c.stream, c.ok, err)
		}
	}
}

func TestPositive(t *testing.T) {
	if err := Positive("vexp", "rate", 2.0); err != nil {
		t.Errorf("rate=2 must pass: %v", err)
	}
	for _, v := range []float64{0, -1, math.NaN()} {
		if Positive("vexp", "rate", v) == nil {
			t.Errorf("rate=%v must fail", v)
		}
	}
}

func TestProbability(t *testing.T) {
	for _, p := range []float64{0.001, 0.5, 1.0} {
		if err := Probability("vbinom", "prob", p); err != nil {
			t.Errorf("prob=%v must pass: %v", p, err)
		}
	}
	for _, p := range []float64{0, -0.1, 1.0001, math.NaN()} {
		if Probability("vbinom", "prob", p) == nil {
			t.Errorf("prob=%v must fail", p)
		}
	}
}

func TestOrdered(t *testing.T) {
	if err := Ordered("vunif", "min", "max", 2, 5); err != nil {
		t.Errorf("2<=5 must pass: %v", err)
	}
	if err := Ordered("vunif", "min", "max", 2, 2); err != nil {
		t.Errorf("equal bounds must pass: %v", err)
	}
	if Ordered("vunif", "min", "max", 5, 2) == nil {
		t.Error("5>2 must fail")
	}
}

func TestNonNegativeInt(t *testing.T) {
	if err := NonNegativeInt("vbinom", "size", 0); err != nil {
		t.Errorf("size=0 must pass: %v", err)
	}
	if NonNegativeInt("vbinom", "size", -1) == nil {
		t.Error("size=-1 must fail")
	}
}
