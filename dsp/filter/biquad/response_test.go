package biquad

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestResponse_PassthroughIsUnity(t *testing.T) {
	c := passthrough()
	sr := 48000.0
	for _, hz := range []float64{10, 100, 1000, 10000, 20000} {
		h := c.Response(hz, sr)
		if !almostEqual(cmplx.Abs(h), 1, eps) {
			t.Errorf("|H(%v)| = %v, want 1", hz, cmplx.Abs(h))
		}
		if !almostEqual(c.Phase(hz, sr), 0, eps) {
			t.Errorf("phase(%v) = %v, want 0", hz, c.Phase(hz, sr))
		}
	}
}

func TestMagnitudeSquared_MatchesResponse(t *testing.T) {
	// The closed form must agree with |H| from the complex response.
	c := Coefficients{B0: 0.0652, B1: 0, B2: -0.0652, A1: -1.8448, A2: 0.8776}
	sr := 48000.0

	for _, hz := range []float64{50, 200, 500, 1000, 2000, 8000, 20000} {
		closed := c.MagnitudeSquared(hz, sr)
		direct := cmplx.Abs(c.Response(hz, sr))
		if !almostEqual(math.Sqrt(closed), direct, 1e-9) {
			t.Errorf("%v Hz: closed form %v, complex response %v", hz, math.Sqrt(closed), direct)
		}
	}
}

func TestMagnitudeDB_DCBlocking(t *testing.T) {
	// A bandpass-shaped section (B1=0, B2=-B0) must reject DC and Nyquist.
	c := Coefficients{B0: 0.0652, B1: 0, B2: -0.0652, A1: -1.8448, A2: 0.8776}
	sr := 48000.0

	if db := c.MagnitudeDB(0, sr); db > -100 {
		t.Errorf("DC magnitude = %v dB, want full rejection", db)
	}
	if db := c.MagnitudeDB(sr/2, sr); db > -100 {
		t.Errorf("Nyquist magnitude = %v dB, want full rejection", db)
	}
}

func TestImpulseResponse_FirstSamples(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	s := NewSection(c)

	ir := s.ImpulseResponse(4)
	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i := range want {
		if !almostEqual(ir[i], want[i], eps) {
			t.Errorf("h[%d] = %.15f, want %.15f", i, ir[i], want[i])
		}
	}
}

func TestImpulseResponse_PreservesState(t *testing.T) {
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	s := NewSection(c)

	s.ProcessSample(1)
	s.ProcessSample(-0.5)
	saved := s.State()

	_ = s.ImpulseResponse(64)

	if s.State() != saved {
		t.Fatalf("state changed: %v, want %v", s.State(), saved)
	}
}

func TestImpulseResponse_NonPositiveLength(t *testing.T) {
	s := NewSection(passthrough())
	if ir := s.ImpulseResponse(0); ir != nil {
		t.Errorf("n=0: got %v, want nil", ir)
	}
	if ir := s.ImpulseResponse(-3); ir != nil {
		t.Errorf("n=-3: got %v, want nil", ir)
	}
}
