package vmath

import (
	"testing"

	"pgregory.net/rapid"
)

func TestFromToInt(t *testing.T) {
	for _, i := range []int{0, 1, -1, 255, -255, 128} {
		f := FromInt(i)
		if got := ToInt(f); got != i {
			t.Errorf("Expected round trip %d, got %d", i, got)
		}
	}
}

func TestToIntFloorsNegative(t *testing.T) {
	// -0.5 in Q8.8 must floor to -1, not truncate toward zero
	f := FromInt(-1) + Half
	if got := ToInt(f); got != -1 {
		t.Errorf("Expected -1, got %d", got)
	}
	f = FromInt(2) + Half
	if got := ToInt(f); got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}
}

func TestFromQ4(t *testing.T) {
	// 2.0 px/frame in Q12.4 is 0x20; widened it must equal FromInt(2)
	if got := FromQ4(0x20); got != FromInt(2) {
		t.Errorf("Expected %d, got %d", FromInt(2), got)
	}
	if got := FromQ4(-0x30); got != FromInt(-3) {
		t.Errorf("Expected %d, got %d", FromInt(-3), got)
	}
}

func TestMul(t *testing.T) {
	cases := []struct {
		a, b, want int32
	}{
		{FromInt(2), FromInt(3), FromInt(6)},
		{FromInt(-2), FromInt(3), FromInt(-6)},
		{Half, Half, Scale / 4},
		{0, FromInt(100), 0},
	}
	for _, c := range cases {
		if got := Mul(c.a, c.b); got != c.want {
			t.Errorf("Mul(%d, %d): expected %d, got %d", c.a, c.b, c.want, got)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(FromInt(300), 0, FromInt(255)); got != FromInt(255) {
		t.Errorf("Expected %d, got %d", FromInt(255), got)
	}
	if got := Clamp(FromInt(-5), 0, FromInt(255)); got != 0 {
		t.Errorf("Expected 0, got %d", got)
	}
	if got := Clamp(FromInt(7), 0, FromInt(255)); got != FromInt(7) {
		t.Errorf("Expected %d, got %d", FromInt(7), got)
	}
}

func TestStrafePeriod(t *testing.T) {
	if Strafe(0) != 0 || Strafe(8) != 0 {
		t.Errorf("Expected zero crossings at phase 0 and 8")
	}
	if Strafe(4) != 7 || Strafe(12) != -7 {
		t.Errorf("Expected peaks +-7 at phase 4 and 12")
	}
	// phase wraps at 16
	if Strafe(16) != Strafe(0) || Strafe(21) != Strafe(5) {
		t.Errorf("Expected phase to wrap modulo 16")
	}
}

func TestRecipBounds(t *testing.T) {
	if got := Recip(1); got != 255 {
		t.Errorf("Expected saturated 255 for d=1, got %d", got)
	}
	if got := Recip(2); got != 128 {
		t.Errorf("Expected 128 for d=2, got %d", got)
	}
	if got := Recip(0); got != 255 {
		t.Errorf("Expected clamp below to d=1, got %d", got)
	}
	if got := Recip(500); got != Recip(127) {
		t.Errorf("Expected clamp above to d=127, got %d", got)
	}
}

func TestRecipApproximation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := rapid.IntRange(2, 127).Draw(t, "d")
		want := 256 / d
		got := int(Recip(d))
		if got < want-1 || got > want+1 {
			t.Fatalf("Recip(%d): expected within 1 of %d, got %d", d, want, got)
		}
	})
}

func TestAimVelocityAxes(t *testing.T) {
	full := int32(0x0180) // 1.5 px/frame
	half := full / 2

	// straight down at d=64, where the reciprocal is exact: full speed
	vx, vy := AimVelocity(0, 64, half)
	if vx != 0 {
		t.Errorf("Expected vx 0, got %d", vx)
	}
	if vy != full {
		t.Errorf("Expected vy %d, got %d", full, vy)
	}

	// straight left
	vx, vy = AimVelocity(-64, 0, half)
	if vy != 0 {
		t.Errorf("Expected vy 0, got %d", vy)
	}
	if vx != -full {
		t.Errorf("Expected vx %d, got %d", -full, vx)
	}
}

func TestAimVelocityMagnitude(t *testing.T) {
	full := int32(0x0180)
	half := full / 2
	rapid.Check(t, func(t *rapid.T) {
		dx := rapid.IntRange(-400, 400).Draw(t, "dx")
		dy := rapid.IntRange(-400, 400).Draw(t, "dy")
		vx, vy := AimVelocity(dx, dy, half)
		// dominant axis speed stays within ~12% of target, never runs away
		dom := Abs(vx)
		if Abs(vy) > dom {
			dom = Abs(vy)
		}
		if dx == 0 && dy == 0 {
			if dom != 0 {
				t.Fatalf("Expected zero velocity for zero direction, got (%d,%d)", vx, vy)
			}
			return
		}
		if dom > full+full/8 {
			t.Fatalf("Expected dominant axis <= %d, got %d for (%d,%d)", full+full/8, dom, dx, dy)
		}
	})
}

func TestAimVelocityZeroDirection(t *testing.T) {
	vx, vy := AimVelocity(0, 0, 192)
	if vx != 0 || vy != 0 {
		t.Errorf("Expected (0,0), got (%d,%d)", vx, vy)
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(0xC0FFEE)
	b := NewFastRand(0xC0FFEE)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Expected identical sequences for identical seeds at step %d", i)
		}
	}
}

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Errorf("Expected nonzero output from zero seed")
	}
}

func TestFastRandIntn(t *testing.T) {
	r := NewFastRand(42)
	for i := 0; i < 1000; i++ {
		v := r.Intn(8)
		if v < 0 || v >= 8 {
			t.Fatalf("Expected value in [0,8), got %d", v)
		}
	}
	if r.Intn(0) != 0 {
		t.Errorf("Expected 0 for non-positive bound")
	}
}
