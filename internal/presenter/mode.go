package presenter

import "fmt"

// Mode controls when ANSI styling is emitted.
type Mode int

const (
	// ColorAuto styles output only when the terminal supports it.
	ColorAuto Mode = iota
	ColorAlways
	ColorNever
)

func (m Mode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseMode parses "auto", "always" or "never".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q: must be 'auto', 'always', or 'never'", s)
}
