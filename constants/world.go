package constants

// World space, origin at the field center, y grows upward
const (
	// OrthoWidth is the logical width of the canvas in world units
	OrthoWidth = 1000.0

	// OrthoHeight is the logical height of the canvas, including the scoreboard strip
	OrthoHeight = 750.0

	// FieldHeight is the playable height; the field spans [-FieldHeight/2, FieldHeight/2]
	FieldHeight = 650.0
)

// Paddle
const (
	// PaddleMargin is the distance of a resting paddle from its side wall
	PaddleMargin = 60.0
	PaddleWidth  = 50.0
	PaddleHeight = 50.0

	// PaddleSpeed is the vertical paddle speed in units per second
	PaddleSpeed = 400.0
)

// Ball
const (
	BallSide = 8.0

	// BallSpeed is the serve speed in units per second
	BallSpeed = 300.0

	// BallSpeedCap bounds |vX| as a multiple of BallSpeed
	BallSpeedCap = 3.0

	// BallSpeedUpGain is the maximum relative speed gain of a dead-center paddle hit
	BallSpeedUpGain = 0.15
)

// Square stimulus set
const (
	SquareSide = 50.0

	// DefaultSetSize is the number of squares shown per trial
	DefaultSetSize = 6
)

// Scoreboard label offsets above the field, in world units
const (
	ScoreNameShift = 75.0
	ScoreHintShift = 25.0
)
