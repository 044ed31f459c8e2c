package core

// SoundType represents different sound cues
type SoundType int

const (
	SoundBounce SoundType = iota // Ball off top/bottom wall
	SoundHit                     // Ball off paddle
	SoundScore                   // Point scored
	SoundTarget                  // Target square onset
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{"bounce", "hit", "score", "target"}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType maps a config key back to its SoundType
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}
