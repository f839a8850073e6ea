package vmath

// Q8.8 Fixed Point constants
// Positions and standard velocities are int32 values holding pixels << Shift.
// Coarse AI velocity tables use Q12.4 entries, widened with FromQ4 on use.
const (
	Shift  = 8
	Scale  = 1 << Shift
	Mask   = Scale - 1
	Half   = 1 << (Shift - 1)
	VShift = 4
)

// --- Arithmetic ---

func FromInt(i int) int32 { return int32(i) << Shift }
func ToInt(f int32) int   { return int(f >> Shift) }
func FromQ4(v int32) int32 {
	return v << VShift
}

// Mul multiplies two Q8.8 values with a widened intermediate
func Mul(a, b int32) int32 {
	return int32((int64(a) * int64(b)) >> Shift)
}

// Abs returns absolute value
func Abs(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -Scale, 0, or Scale
func Sign(x int32) int32 {
	if x < 0 {
		return -Scale
	}
	if x > 0 {
		return Scale
	}
	return 0
}

// Clamp restricts a Q8.8 value to [lo, hi]
func Clamp(x, lo, hi int32) int32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// --- Trigonometry ---

// strafeLUT is one full sine period in whole pixels, amplitude 7.
// Sized for frame-counter indexing: advance the phase every few frames
// and mask with len-1.
var strafeLUT = [16]int{0, 3, 5, 7, 7, 7, 5, 3, 0, -3, -5, -7, -7, -7, -5, -3}

// Strafe returns the sine-wave pixel offset for a 0..15 phase
func Strafe(phase int) int {
	return strafeLUT[phase&15]
}

// --- Fast Approximations ---

// recipLUT[d] = floor(256/d) saturated to 255. Index 0 is unused;
// callers clamp the divisor to >= 1. Turns the per-shot normalization
// divide into a multiply and shift.
var recipLUT = [128]uint8{
	255, 255, 128, 85, 64, 51, 42, 36,
	32, 28, 25, 23, 21, 19, 18, 17,
	16, 15, 14, 13, 12, 12, 11, 11,
	10, 10, 9, 9, 9, 8, 8, 8,
	8, 7, 7, 7, 7, 6, 6, 6,
	6, 6, 6, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 4, 4, 4, 4,
	4, 4, 4, 4, 4, 4, 4, 3,
	4, 3, 3, 3, 3, 3, 3, 3,
	3, 3, 3, 3, 3, 3, 3, 3,
	3, 3, 3, 3, 3, 3, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2,
	2, 2, 2, 2, 2, 2, 2, 2,
}

// Recip returns the Q8.8 reciprocal approximation 256/d for d in 1..127
func Recip(d int) int32 {
	if d < 1 {
		d = 1
	}
	if d > 127 {
		d = 127
	}
	return int32(recipLUT[d])
}

// ChebyshevDist returns max(|dx|, |dy|) in whole pixels
func ChebyshevDist(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

// AimVelocity converts a pixel direction vector into a Q8.8 velocity of
// approximately the given magnitude, without division.
//
// The components are halved until both fit in the reciprocal table domain
// (|dx|,|dy| <= 127), which preserves the direction ratio. The dominant
// axis magnitude then indexes the table:
//
//	vx = dx * speed/maxd
//	   = dx * (speed/2) * (256/maxd) / 256 * 2
//	   = (dx * halfSpeed * recip[maxd]) >> 8 << 1
//
// halfSpeed is half the target Q8.8 magnitude; the final doubling restores
// it. The table floor makes far shots fly slow, up to a third under the
// target near the end of the table. Direction is preserved, and slow far
// shots read as fair, so the error is left uncorrected.
func AimVelocity(dx, dy int, halfSpeed int32) (vx, vy int32) {
	for ChebyshevDist(dx, dy) > 127 {
		dx >>= 1
		dy >>= 1
	}
	inv := int64(Recip(ChebyshevDist(dx, dy)))
	vx = int32((int64(dx)*int64(halfSpeed)*inv)>>Shift) << 1
	vy = int32((int64(dy)*int64(halfSpeed)*inv)>>Shift) << 1
	return vx, vy
}

// --- Randomness ---

type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}
