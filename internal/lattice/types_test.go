package lattice

import (
	"errors"
	"math"
	"testing"
)

func TestDistSum(t *testing.T) {
	d := Dist{0.25, 0.25, 0.5}
	if s := d.Sum(); math.Abs(s-1.0) > 1e-15 {
		t.Errorf("expected sum 1, got %v", s)
	}
}

func TestDistClone(t *testing.T) {
	d := Dist{1, 2, 3}
	c := d.Clone()
	c[0] = 99
	if d[0] != 1 {
		t.Error("clone shares backing storage with original")
	}
}

func TestDistIsValid(t *testing.T) {
	tests := []struct {
		name string
		d    Dist
		want bool
	}{
		{"plain", Dist{0.5, 0.5}, true},
		{"empty", Dist{}, true},
		{"nan", Dist{0.5, math.NaN()}, false},
		{"inf", Dist{math.Inf(1), 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistMaxDeviation(t *testing.T) {
	d := Dist{0.1, 0.4, 0.2}
	if got := d.MaxDeviation(); math.Abs(got-0.3) > 1e-15 {
		t.Errorf("expected 0.3, got %v", got)
	}

	u := Dist{0.25, 0.25, 0.25, 0.25}
	if got := u.MaxDeviation(); got != 0 {
		t.Errorf("uniform distribution should deviate 0, got %v", got)
	}
}

func TestDistRenormalize(t *testing.T) {
	d := Dist{1, 1, 2}
	if err := d.Renormalize(); err != nil {
		t.Fatalf("renormalize failed: %v", err)
	}
	if math.Abs(d.Sum()-1.0) > 1e-15 {
		t.Errorf("expected sum 1 after renormalize, got %v", d.Sum())
	}

	z := Dist{0, 0}
	if err := z.Renormalize(); !errors.Is(err, ErrBadDistribution) {
		t.Errorf("expected ErrBadDistribution for zero mass, got %v", err)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		ok   bool
	}{
		{"valid", Params{N: 10, K: 1, Dt: 0.1, Steps: 100}, true},
		{"one box", Params{N: 1, K: 1, Dt: 0.1, Steps: 100}, false},
		{"zero rate", Params{N: 10, K: 0, Dt: 0.1, Steps: 100}, false},
		{"negative dt", Params{N: 10, K: 1, Dt: -0.1, Steps: 100}, false},
		{"zero steps", Params{N: 10, K: 1, Dt: 0.1, Steps: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.p.Validate()
			if tt.ok && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrBadParams) {
					t.Errorf("expected ErrBadParams, got %v", err)
				}
			}
		})
	}
}

func TestParamsStable(t *testing.T) {
	stable := Params{N: 10, K: 1, Dt: 0.1, Steps: 10}
	if !stable.Stable() {
		t.Error("k*dt=0.1 should be stable")
	}

	unstable := Params{N: 10, K: 1, Dt: 0.6, Steps: 10}
	if unstable.Stable() {
		t.Error("k*dt=0.6 should be unstable")
	}
}

func TestFieldFill(t *testing.T) {
	f := NewField(3, 2)
	f.Fill(1, Dist{0.1, 0.2, 0.7})

	if got := f.At(2, 1); got != 0.7 {
		t.Errorf("At(2,1) = %v, want 0.7", got)
	}
	if got := f.Last()[0]; got != 0.1 {
		t.Errorf("Last()[0] = %v, want 0.1", got)
	}
	if f.N() != 3 || f.Steps() != 2 {
		t.Errorf("shape = (%d,%d), want (3,2)", f.N(), f.Steps())
	}
}
