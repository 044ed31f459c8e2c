package constants

// Terminal layout
const (
	// CellAspect is the width/height ratio of a terminal cell
	CellAspect = 0.5

	// CanvasAspect is the canvas height/width ratio in pixels
	CanvasAspect = 0.6

	// TextFrameRows is the title/status strip above the canvas
	TextFrameRows = 1

	// ButtonFrameRows is the virtual button strip below the canvas, including the gap row
	ButtonFrameRows = 2

	// MinCanvasWidth and MinCanvasHeight bound the projection against degenerate sizes
	MinCanvasWidth  = 1
	MinCanvasHeight = 1

	// MinPlayableWidth and MinPlayableHeight are the smallest canvas that renders legibly
	MinPlayableWidth  = 40
	MinPlayableHeight = 12
)

// Text
const (
	TitleText = " oddball-pong "
	HintText  = "[space] starts game, [enter] resets score"
)
