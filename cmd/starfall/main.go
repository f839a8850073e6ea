package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starfall/audio"
	"github.com/lixenwraith/starfall/config"
	"github.com/lixenwraith/starfall/constant"
	"github.com/lixenwraith/starfall/core"
	"github.com/lixenwraith/starfall/engine"
	"github.com/lixenwraith/starfall/entity"
	"github.com/lixenwraith/starfall/render"
	"github.com/lixenwraith/starfall/save"
	"github.com/lixenwraith/starfall/storage"
	"github.com/lixenwraith/starfall/system"
)

var (
	configFlag = flag.String("config", "starfall.toml", "Config file path")
	saveFlag   = flag.String("save", "", "Save file path (overrides config)")
	colorFlag  = flag.String("color", "auto", "Color mode: auto, on, off")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/starfall.log")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed for reproducible runs (0 = from clock)")
)

// shellState is the outer game flow around the simulation core. The
// core only knows FLIGHT, ENCOUNTER and GAME OVER; title and pause are
// shell business.
type shellState uint8

const (
	stateTitle shellState = iota
	stateRunning
	statePaused
	stateEncounter
	stateGameOver
)

// inputLatchFrames keeps a key's input bit held after each press event.
// Terminals deliver no key-up, so held keys are reconstructed from the
// autorepeat stream; the latch must outlive the repeat gap.
const inputLatchFrames = 6

// hudSnapshot caches world fields read under the update lock each
// frame, so overlay composition never touches the world directly
type hudSnapshot struct {
	score    int
	kills    int
	zone     int
	waves    int
	lastKind entity.EnemyKind
}

type shell struct {
	world     *engine.World
	scheduler *engine.ClockScheduler
	renderer  *render.Renderer
	sounds    *audio.SoundManager
	store     *storage.Store // nil when run history is disabled
	screen    tcell.Screen

	state    shellState
	savePath string
	seed     uint64

	// snapshot is a pending resume, consumed by the first launch
	snapshot  *save.Snapshot
	bestScore int

	// playTime counts whole seconds of flight, saturating at the
	// 16-bit display ceiling
	playTime   uint16
	frameAccum int

	held    map[core.Input]int
	impulse core.Input

	updatePending bool
	runRecorded   bool

	// awaitReset suppresses mode reactions between a requested run
	// reset and the scheduler processing it
	awaitReset bool

	hud hudSnapshot
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	seed := cfg.Game.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	savePath := cfg.Storage.SavePath
	if *saveFlag != "" {
		savePath = *saveFlag
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()

	world := engine.NewWorld(cfg, seed)
	world.AddSystem(system.NewPlayerSystem(world))
	world.AddSystem(system.NewWeaponSystem(world))
	world.AddSystem(system.NewBulletSystem(world))
	world.AddSystem(system.NewEnemySystem(world))
	world.AddSystem(system.NewSpawnSystem(world))
	world.AddSystem(system.NewCollisionSystem(world))

	// The handler's presence is what makes contacts escalate instead of
	// resolving as direct damage. The body is empty on purpose: the mode
	// controller has already switched to ENCOUNTER when it runs, and the
	// shell picks the transition up after the tick.
	world.Mode.SetEncounterHandler(func(entity.EnemyKind) {})

	audioCfg := audio.LoadConfig()
	if !cfg.Audio.Enabled {
		audioCfg.Enabled = false
	}
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		log.Printf("audio init failed, continuing silent: %v", err)
	}
	defer sounds.Cleanup()

	var store *storage.Store
	if cfg.Storage.HistoryPath != "" {
		if st, err := storage.Open(cfg.Storage.HistoryPath); err != nil {
			log.Printf("run history disabled: %v", err)
		} else {
			store = st
			defer store.Close()
		}
	}

	s := &shell{
		world:    world,
		renderer: render.New(screen, *colorFlag != "off"),
		sounds:   sounds,
		store:    store,
		screen:   screen,
		state:    stateTitle,
		savePath: savePath,
		seed:     seed,
		held:     make(map[core.Input]int, 8),
	}

	if snap, err := save.Read(savePath); err != nil {
		log.Printf("ignoring saved run: %v", err)
	} else {
		s.snapshot = snap
	}
	if store != nil {
		if best, err := store.BestScore(); err == nil {
			s.bestScore = best
		}
	}

	s.run()
}

func (s *shell) run() {
	frameReady := make(chan struct{}, 1)
	scheduler, updateDone := engine.NewClockScheduler(s.world, constant.FrameInterval, frameReady)
	s.scheduler = scheduler

	// The title screen sits over a frozen fresh world
	scheduler.SetPaused(true)
	scheduler.Start()
	defer scheduler.Stop()

	frameReady <- struct{}{}
	s.updatePending = true

	ticker := time.NewTicker(constant.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				// screen finalized, main is on its way out
				return
			}
			eventChan <- ev
		}
	})

	for {
		select {
		case ev := <-eventChan:
			if !s.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			s.frame(updateDone, frameReady)
		}
	}
}

// frame is one presentation cycle: collect the finished tick's sounds,
// hand the next input mask to the simulation, draw, and re-arm the
// frame handshake
func (s *shell) frame(updateDone <-chan struct{}, frameReady chan<- struct{}) {
	ticked := false
	select {
	case <-updateDone:
		s.updatePending = false
		ticked = true
	default:
	}

	var mode core.GameMode
	var soundMask uint16
	s.world.RunSafe(func() {
		w := s.world
		if ticked {
			soundMask = w.Sounds
		}
		w.Input = s.composeInput()
		mode = w.Mode.Mode()
		s.hud = hudSnapshot{
			score:    w.Score.Value(),
			kills:    w.Kills,
			zone:     w.Zone,
			waves:    w.WaveCount,
			lastKind: w.Mode.LastKind,
		}
	})

	if ticked {
		s.sounds.Flush(soundMask)
		s.advancePlayTime()
	}

	s.reactToMode(mode)

	s.world.Lock()
	s.renderer.DrawFlight(s.world)
	s.world.Unlock()
	if c := s.overlayContent(); c != nil {
		s.renderer.DrawOverlay(c)
	}
	s.renderer.Show()

	if !s.updatePending && s.simActive() {
		select {
		case frameReady <- struct{}{}:
			s.updatePending = true
		default:
		}
	}
}

// simActive reports whether the scheduler should receive frame tokens.
// Encounter counts: the world freezes itself, but ticks must keep
// flowing so completion is picked up.
func (s *shell) simActive() bool {
	return s.state == stateRunning || s.state == stateEncounter
}

// reactToMode mirrors core mode transitions into shell states
func (s *shell) reactToMode(mode core.GameMode) {
	if s.awaitReset {
		if mode == core.ModeFlight {
			s.awaitReset = false
		}
		return
	}

	switch {
	case mode == core.ModeEncounter && s.state == stateRunning:
		s.state = stateEncounter
	case mode == core.ModeGameOver && (s.state == stateRunning || s.state == stateEncounter):
		s.state = stateGameOver
		s.scheduler.SetPaused(true)
		s.finishRun()
	}
}

// finishRun persists the ended run: the suspend snapshot is dead, the
// history row is written once
func (s *shell) finishRun() {
	if err := save.Discard(s.savePath); err != nil {
		log.Printf("discard save: %v", err)
	}
	if s.store == nil || s.runRecorded {
		return
	}
	s.runRecorded = true

	row := storage.RunRow{
		Score:    s.hud.score,
		Kills:    s.hud.kills,
		Waves:    s.hud.waves,
		Zone:     s.hud.zone,
		PlayTime: int(s.playTime),
		Seed:     s.seed,
	}
	if _, err := s.store.RecordRun(row); err != nil {
		log.Printf("record run: %v", err)
	}
	if best, err := s.store.BestScore(); err == nil {
		s.bestScore = best
	}
}

func (s *shell) advancePlayTime() {
	if s.state != stateRunning {
		return
	}
	s.frameAccum++
	if s.frameAccum >= constant.TickRate {
		s.frameAccum = 0
		if s.playTime < 0xFFFF {
			s.playTime++
		}
	}
}

func (s *shell) composeInput() core.Input {
	var in core.Input
	for bit, frames := range s.held {
		if frames > 0 {
			in |= bit
			s.held[bit] = frames - 1
		}
	}
	in |= s.impulse
	s.impulse = 0
	return in
}

func (s *shell) latch(bit core.Input) {
	s.held[bit] = inputLatchFrames
}

func (s *shell) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.screen.Sync()
	case *tcell.EventKey:
		return s.handleKey(ev)
	}
	return true
}

func (s *shell) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		// hard exit, no suspend
		return false
	}

	switch s.state {
	case stateTitle:
		return s.titleKey(ev)
	case stateRunning:
		return s.runningKey(ev)
	case statePaused:
		return s.pausedKey(ev)
	case stateEncounter:
		return s.encounterKey(ev)
	case stateGameOver:
		return s.gameOverKey(ev)
	}
	return true
}

func (s *shell) titleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEnter:
		s.launch()
	case ev.Key() == tcell.KeyEscape:
		return false
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		return false
	}
	return true
}

// launch starts or resumes a run from the title screen
func (s *shell) launch() {
	if s.snapshot != nil {
		snap := s.snapshot
		s.snapshot = nil
		s.world.RunSafe(func() { save.Restore(s.world, snap) })
		s.playTime = snap.PlayTime
		// resume is one-shot; dying later must not roll back to it
		if err := save.Discard(s.savePath); err != nil {
			log.Printf("discard save: %v", err)
		}
	}
	s.frameAccum = 0
	s.runRecorded = false
	s.scheduler.SetPaused(false)
	s.state = stateRunning
}

func (s *shell) runningKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyUp:
		s.latch(core.InputUp)
	case tcell.KeyDown:
		s.latch(core.InputDown)
	case tcell.KeyLeft:
		s.latch(core.InputLeft)
	case tcell.KeyRight:
		s.latch(core.InputRight)
	case tcell.KeyEscape:
		s.pause()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			s.latch(core.InputUp)
		case 's', 'j':
			s.latch(core.InputDown)
		case 'a', 'h':
			s.latch(core.InputLeft)
		case 'd', 'l':
			s.latch(core.InputRight)
		case ' ', 'z':
			s.latch(core.InputFire)
		case 'x':
			s.latch(core.InputFocus)
		case 'c':
			s.impulse |= core.InputCycleWeapon
		case 'p':
			s.pause()
		case 'q':
			s.suspend()
			return false
		}
	}
	return true
}

func (s *shell) pause() {
	s.scheduler.SetPaused(true)
	s.state = statePaused
}

func (s *shell) pausedKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape,
		ev.Key() == tcell.KeyRune && ev.Rune() == 'p':
		s.scheduler.SetPaused(false)
		s.state = stateRunning
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		s.suspend()
		return false
	}
	return true
}

func (s *shell) encounterKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEnter:
		// battle internals live outside the core; resolving here is
		// simply completing the encounter and flying on
		s.world.RunSafe(s.world.CompleteEncounter)
		s.state = stateRunning
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		s.suspend()
		return false
	}
	return true
}

func (s *shell) gameOverKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEnter:
		s.scheduler.RequestReset()
		s.awaitReset = true
		s.playTime = 0
		s.frameAccum = 0
		s.runRecorded = false
		s.state = stateRunning
	case ev.Key() == tcell.KeyEscape:
		return false
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		return false
	}
	return true
}

// suspend writes the run snapshot so the next start resumes it
func (s *shell) suspend() {
	var snap *save.Snapshot
	s.world.RunSafe(func() { snap = save.Capture(s.world, s.playTime) })
	if err := save.Write(s.savePath, snap); err != nil {
		log.Printf("write save: %v", err)
	}
}

func formatPlayTime(seconds uint16) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func (s *shell) overlayContent() *core.OverlayContent {
	switch s.state {
	case stateTitle:
		lines := []string{"enter  launch", "q      quit"}
		if s.snapshot != nil {
			lines[0] = "enter  resume saved run"
		}
		var card []core.CardEntry
		if s.store != nil {
			card = append(card, core.CardEntry{Key: "BEST", Value: strconv.Itoa(s.bestScore)})
		}
		return &core.OverlayContent{Title: "S T A R F A L L", Lines: lines, Card: card}

	case statePaused:
		return &core.OverlayContent{
			Title: "PAUSED",
			Lines: []string{"p  resume", "q  save and quit"},
			Card: []core.CardEntry{
				{Key: "SCORE", Value: strconv.Itoa(s.hud.score)},
				{Key: "KILLS", Value: strconv.Itoa(s.hud.kills)},
				{Key: "ZONE", Value: strconv.Itoa(s.hud.zone + 1)},
				{Key: "TIME", Value: formatPlayTime(s.playTime)},
			},
		}

	case stateEncounter:
		return &core.OverlayContent{
			Title: "ENCOUNTER",
			Lines: []string{
				fmt.Sprintf("a %s blocks your path", s.hud.lastKind),
				"enter  resolve and fly on",
			},
			Card: []core.CardEntry{
				{Key: "SCORE", Value: strconv.Itoa(s.hud.score)},
			},
		}

	case stateGameOver:
		card := []core.CardEntry{
			{Key: "SCORE", Value: strconv.Itoa(s.hud.score)},
			{Key: "KILLS", Value: strconv.Itoa(s.hud.kills)},
			{Key: "WAVES", Value: strconv.Itoa(s.hud.waves)},
			{Key: "TIME", Value: formatPlayTime(s.playTime)},
		}
		if s.store != nil {
			card = append(card, core.CardEntry{Key: "BEST", Value: strconv.Itoa(s.bestScore)})
		}
		return &core.OverlayContent{
			Title: "GAME OVER",
			Lines: []string{"enter  retry", "q      quit"},
			Card:  card,
		}

	default:
		return nil
	}
}
