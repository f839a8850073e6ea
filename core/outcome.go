package core

// Outcome is a per-frame bitmask of collision results. The collision
// pass ORs flags in; consumers (audio, render, score display) read and
// the frame loop clears it before the next resolve.
type Outcome uint16

const (
	OutcomePlayerHit Outcome = 1 << iota
	OutcomeEnemyKilled
	OutcomeItemCollected
	OutcomePlayerContact
	OutcomeEnemyHit
	OutcomeEscalated
	OutcomeGraze
)

func (o Outcome) Has(flag Outcome) bool {
	return o&flag != 0
}
