package points

import (
	"fmt"
	"strings"
)

// Han is the number of han (big) points of a winning hand.
type Han int32

// NewHan constructs a Han value.
func NewHan(value int32) Han {
	return Han(value)
}

// Get returns the raw han count.
func (h Han) Get() int32 {
	return int32(h)
}

func (h Han) String() string {
	return fmt.Sprintf("%d han", int32(h))
}

// Fu is the number of fu (small) points of a winning hand.
type Fu int32

// NewFu constructs a Fu value.
func NewFu(value int32) Fu {
	return Fu(value)
}

// Get returns the raw fu count.
func (f Fu) Get() int32 {
	return int32(f)
}

func (f Fu) String() string {
	return fmt.Sprintf("%d fu", int32(f))
}

// Honba is the repeat counter (number of counter sticks on the table).
// The zero value means no honba.
type Honba int32

// ZeroHonba is the default honba count.
const ZeroHonba Honba = 0

// NewHonba constructs a Honba value.
func NewHonba(value int32) Honba {
	return Honba(value)
}

// Get returns the raw honba count.
func (h Honba) Get() int32 {
	return int32(h)
}

func (h Honba) String() string {
	return fmt.Sprintf("%d honbas", int32(h))
}

// CalculationMode selects how strictly the scoring rules are applied.
type CalculationMode int

const (
	// ModeDefault validates the input and follows the official table, including
	// the combinations that have no tsumo or no ron value.
	ModeDefault CalculationMode = iota
	// ModeLoose accepts any input; every combination has both a tsumo and a ron value.
	ModeLoose
	// ModeUnlimited (aotenjou) is loose mode without the mangan-and-above cap.
	ModeUnlimited
)

var modeNames = map[CalculationMode]string{
	ModeDefault:   "default",
	ModeLoose:     "loose",
	ModeUnlimited: "unlimited",
}

func (m CalculationMode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseCalculationMode converts a mode name into a CalculationMode. "aotenjou" is
// accepted as an alias of "unlimited".
func ParseCalculationMode(name string) (CalculationMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return ModeDefault, nil
	case "loose":
		return ModeLoose, nil
	case "unlimited", "aotenjou":
		return ModeUnlimited, nil
	}
	return ModeDefault, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}
