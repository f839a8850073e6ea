package core

// Input is the bitmask of controls held during one frame. The main
// goroutine writes it before the tick; simulation systems only read.
type Input uint16

const (
	InputUp Input = 1 << iota
	InputDown
	InputLeft
	InputRight
	InputFire
	InputFocus
	InputCycleWeapon
	InputPause
	InputQuit
)

func (in Input) Held(flag Input) bool {
	return in&flag != 0
}
