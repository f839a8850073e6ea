package constant

import "time"

// Game Loop & Engine Timing
const (
	// TickRate is the simulation frequency in frames per second
	TickRate = 60

	// FrameInterval is the fixed timestep between simulation ticks
	FrameInterval = time.Second / TickRate
)

// Logical Playfield
// The simulation runs on a 256x224 pixel grid regardless of the terminal
// size; the renderer scales down to cells.
const (
	// ScreenWidth is the playfield width in logical pixels
	ScreenWidth = 256

	// ScreenHeight is the playfield height in logical pixels
	ScreenHeight = 224

	// HUDReserve is the top band in logical pixels kept clear of the player
	HUDReserve = 16
)

// Scroll & Zone Progression
const (
	// ScrollSpeed is the background scroll advance per frame, used as the
	// wave trigger odometer
	ScrollSpeed = 1

	// ZoneLength is the scroll distance covered by one zone
	ZoneLength = 3600

	// ZoneCount is the number of zones before the loop wraps
	ZoneCount = 3

	// WaveSpacing is the scroll distance between wave triggers
	WaveSpacing = 180
)
