package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/starfall/core"
)

// ClockScheduler drives the simulation at a fixed tick on its own
// goroutine. Each tick waits for the render loop's frameReady signal
// before updating, then reports back on updateDone, so the simulation
// never runs ahead of presentation and never tears a frame.
type ClockScheduler struct {
	world *World

	tickInterval     time.Duration
	nextTickDeadline time.Time

	tickCount atomic.Uint64
	mu        sync.Mutex

	isPaused atomic.Bool

	stopChan  chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	running   atomic.Bool
	resetChan chan struct{}

	// Frame synchronization channels
	frameReady <-chan struct{} // Receive signal that frame is ready
	updateDone chan<- struct{} // Send signal that update is complete
}

// NewClockScheduler creates a scheduler for the world. It receives the
// frameReady (receive) channel and returns the updateDone (receive for
// caller) channel.
func NewClockScheduler(world *World, tickInterval time.Duration, frameReady <-chan struct{}) (*ClockScheduler, <-chan struct{}) {
	updateDone := make(chan struct{}, 1)

	cs := &ClockScheduler{
		world:        world,
		tickInterval: tickInterval,
		frameReady:   frameReady,
		updateDone:   updateDone,
		stopChan:     make(chan struct{}),
		resetChan:    make(chan struct{}, 1),
	}
	return cs, updateDone
}

// Start begins the scheduler loop
func (cs *ClockScheduler) Start() {
	if cs.running.CompareAndSwap(false, true) {
		cs.wg.Add(1)
		core.Go(cs.schedulerLoop)
	}
}

// Stop halts the scheduler loop and waits for it to exit
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.running.CompareAndSwap(true, false) {
			close(cs.stopChan)
			cs.wg.Wait()
		}
	})
}

// SetPaused suspends or resumes ticking. Paused frames still honor the
// render handshake so the shell stays responsive.
func (cs *ClockScheduler) SetPaused(paused bool) {
	cs.isPaused.Store(paused)
}

// Paused reports the pause state
func (cs *ClockScheduler) Paused() bool {
	return cs.isPaused.Load()
}

// TogglePause flips the pause state and returns the new value
func (cs *ClockScheduler) TogglePause() bool {
	for {
		old := cs.isPaused.Load()
		if cs.isPaused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// RequestReset asks the scheduler to reset the run before its next
// tick. Safe from any goroutine; coalesces repeated requests.
func (cs *ClockScheduler) RequestReset() {
	select {
	case cs.resetChan <- struct{}{}:
	default:
	}
}

// TickCount returns the number of completed ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

func (cs *ClockScheduler) schedulerLoop() {
	defer cs.wg.Done()

	cs.mu.Lock()
	cs.nextTickDeadline = time.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	defer timer.Stop()

	for {
		select {
		case <-cs.stopChan:
			return
		case <-cs.resetChan:
			cs.executeReset()
			continue
		default:
		}

		var sleepDuration time.Duration

		if cs.isPaused.Load() {
			// Longer sleep while paused to save CPU
			sleepDuration = cs.tickInterval * 2
		} else {
			now := time.Now()

			cs.mu.Lock()
			deadline := cs.nextTickDeadline
			cs.mu.Unlock()

			if !now.Before(deadline) {
				// Wait for the renderer before mutating state, but
				// never stall the simulation on a wedged frontend
				select {
				case <-cs.frameReady:
				case <-time.After(cs.tickInterval * 2):
				case <-cs.stopChan:
					return
				}

				cs.processTick()

				cs.mu.Lock()
				cs.nextTickDeadline = cs.nextTickDeadline.Add(cs.tickInterval)
				// Drift correction: after a long stall, rebase rather
				// than fast-forwarding through missed ticks
				if now.Sub(cs.nextTickDeadline) > cs.tickInterval*2 {
					cs.nextTickDeadline = now.Add(cs.tickInterval)
				}
				deadline = cs.nextTickDeadline
				cs.mu.Unlock()

				cs.tickCount.Add(1)

				select {
				case cs.updateDone <- struct{}{}:
				default:
				}

				sleepDuration = time.Until(deadline)
				if sleepDuration < 0 {
					sleepDuration = 0
				}
			} else {
				sleepDuration = deadline.Sub(now)
			}
		}

		if sleepDuration > 0 {
			timer.Reset(sleepDuration)
			select {
			case <-timer.C:
			case <-cs.resetChan:
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				cs.executeReset()
			case <-cs.stopChan:
				return
			}
		}
	}
}

// executeReset restarts the run under the world lock and resumes
// ticking from a fresh deadline
func (cs *ClockScheduler) executeReset() {
	cs.world.RunSafe(cs.world.ResetRun)

	cs.mu.Lock()
	cs.tickCount.Store(0)
	cs.nextTickDeadline = time.Now().Add(cs.tickInterval)
	cs.mu.Unlock()

	cs.isPaused.Store(false)
}

// processTick executes one simulation frame
func (cs *ClockScheduler) processTick() {
	if cs.isPaused.Load() {
		return
	}
	cs.world.Update()
}
