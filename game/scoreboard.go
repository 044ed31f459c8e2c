package game

import (
	"strconv"

	"github.com/lixenwraith/oddball-pong/constants"
	"github.com/lixenwraith/oddball-pong/core"
)

// Horizontal label anchors as fractions of OrthoWidth
var (
	nameAnchors  = [2]float64{-7.0 / 16, 1.0 / 16}
	scoreAnchors = [2]float64{-2.0 / 16, 6.0 / 16}
	playerNames  = [2]string{"AZ keys:", "KM keys:"}
)

// Scoreboard holds per-player points; its drawables are four labels, a hint and a separator
type Scoreboard struct {
	proj   *Projection
	scores [2]int
	color  core.RGB

	playerLabels [2]Text
	scoreLabels  [2]Text
	hintLabel    Text
	separator    Line
}

// NewScoreboard creates a zeroed scoreboard
func NewScoreboard(proj *Projection, color core.RGB) *Scoreboard {
	s := &Scoreboard{proj: proj, color: color}
	s.Install()
	s.Reset()
	return s
}

// Install positions the static labels and the separator line
func (s *Scoreboard) Install() {
	p := s.proj
	nameTop := p.OrthoY(constants.FieldHeight/2 + constants.ScoreNameShift)
	for i := range s.playerLabels {
		s.playerLabels[i] = Text{
			Left:    p.OrthoX(nameAnchors[i] * constants.OrthoWidth),
			Top:     nameTop,
			Content: "Player " + playerNames[i],
			Fill:    s.color,
		}
	}

	s.hintLabel = Text{
		Left:    p.OrthoX(nameAnchors[0] * constants.OrthoWidth),
		Top:     p.OrthoY(constants.FieldHeight/2 + constants.ScoreHintShift),
		Content: constants.HintText,
		Fill:    s.color,
	}

	edge := p.OrthoY(constants.FieldHeight / 2)
	s.separator = Line{
		X1: p.OrthoX(-constants.OrthoWidth / 2), Y1: edge,
		X2: p.OrthoX(constants.OrthoWidth / 2), Y2: edge,
		Stroke: s.color,
	}
}

// Increment adds one point for playerIndex
func (s *Scoreboard) Increment(playerIndex int) {
	s.scores[playerIndex]++
}

// Reset zeroes both scores and regenerates the score labels
func (s *Scoreboard) Reset() {
	s.scores = [2]int{}
	s.Commit()
}

func (s *Scoreboard) Predict(float64) {}
func (s *Scoreboard) Interact()       {}

// Commit regenerates the score labels from the current scores
func (s *Scoreboard) Commit() {
	top := s.proj.OrthoY(constants.FieldHeight/2 + constants.ScoreNameShift)
	for i, score := range s.scores {
		s.scoreLabels[i] = Text{
			Left:    s.proj.OrthoX(scoreAnchors[i] * constants.OrthoWidth),
			Top:     top,
			Content: strconv.Itoa(score),
			Fill:    s.color,
		}
	}
}

func (s *Scoreboard) Draw(cv Canvas) {
	for i := range s.playerLabels {
		cv.Add(s.playerLabels[i])
		cv.Add(s.scoreLabels[i])
	}
	cv.Add(s.hintLabel)
	cv.Add(s.separator)
}

// Scores returns a copy of both players' points
func (s *Scoreboard) Scores() [2]int {
	return s.scores
}
