package types

import "fmt"

// Mode selects which content pipeline a generation request runs through.
// It is a closed set: every dispatch on Mode must handle each constant
// explicitly so that adding a mode is a compile-visible change.
type Mode string

const (
	// ModeSMS generates short text-message copy with strict length and
	// emoji validation.
	ModeSMS Mode = "sms"
	// ModeEmail generates subject/body email copy parsed from JSON output.
	ModeEmail Mode = "email"
)

// UnknownModeError is returned when a mode string does not name a supported
// content pipeline.
type UnknownModeError struct {
	Mode string
}

func (e *UnknownModeError) Error() string {
	return fmt.Sprintf("unknown mode: %s", e.Mode)
}

// ParseMode validates a raw mode string and returns the enum value.
// Unsupported values are rejected rather than silently defaulted.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSMS:
		return ModeSMS, nil
	case ModeEmail:
		return ModeEmail, nil
	default:
		return "", &UnknownModeError{Mode: s}
	}
}

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	_, err := ParseMode(string(m))
	return err == nil
}
