package core

type GameMode uint8

const (
	ModeFlight GameMode = iota
	ModeEncounter
	ModeGameOver
)

func (m GameMode) String() string {
	switch m {
	case ModeFlight:
		return "FLIGHT"
	case ModeEncounter:
		return "ENCOUNTER"
	case ModeGameOver:
		return "GAME OVER"
	default:
		return "UNKNOWN"
	}
}
