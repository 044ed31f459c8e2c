package input

import "unicode"

// KeyCode is the single currently-down key, in ASCII key-code space
type KeyCode rune

const (
	KeyNone  KeyCode = 0
	KeyOther KeyCode = -1 // Non-rune key with no binding (arrows, function keys)
	KeyEnter KeyCode = '\r'
	KeySpace KeyCode = ' '
	KeyA     KeyCode = 'A'
	KeyZ     KeyCode = 'Z'
	KeyK     KeyCode = 'K'
	KeyM     KeyCode = 'M'
	KeyF     KeyCode = 'F' // Response: target seen
	KeyJ     KeyCode = 'J' // Response: target not seen
)

// FromRune maps a typed rune to its key code, letters folded to upper case
func FromRune(r rune) KeyCode {
	if r == ' ' {
		return KeySpace
	}
	return KeyCode(unicode.ToUpper(r))
}

// IsResponse reports whether k is one of the stimulus response keys
func (k KeyCode) IsResponse() bool {
	return k == KeyF || k == KeyJ
}

func (k KeyCode) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyOther:
		return "other"
	case KeyEnter:
		return "enter"
	case KeySpace:
		return "space"
	default:
		return string(rune(k))
	}
}
