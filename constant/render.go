package constant

// Cell Projection
// The renderer maps the 256x224 logical pixel grid onto terminal cells.
// A cell covers 4x8 pixels, which cancels the 1:2 cell aspect ratio so
// sprites keep their proportions, and the resulting 64x28 grid fits a
// standard 80x30 terminal.
const (
	CellPxX = 4
	CellPxY = 8

	// GridWidth and GridHeight are the playfield size in cells
	GridWidth  = ScreenWidth / CellPxX
	GridHeight = ScreenHeight / CellPxY

	// HUDRows is the status band above the playfield
	HUDRows = 1

	// MinTermWidth and MinTermHeight gate startup on terminal size
	MinTermWidth  = GridWidth
	MinTermHeight = GridHeight + HUDRows
)

// Effects
const (
	// ShakeFrames is the screen shake duration applied on impacts
	ShakeFrames = 6

	// WaveClearShakeFrames is the lighter celebratory shake
	WaveClearShakeFrames = 4

	// StarfieldDensity is one star per N cells of background
	StarfieldDensity = 97
)
