package hand

import "fmt"

// Suite is the kind of a tile.
type Suite int

const (
	Manzu Suite = iota
	Pinzu
	Souzu
	Honor
	// Any is a face-down tile of unknown value.
	Any
)

var suiteNames = [...]string{"Manzu", "Pinzu", "Souzu", "Honor", "Any"}

func (s Suite) String() string {
	if s < Manzu || s > Any {
		return fmt.Sprintf("Suite(%d)", int(s))
	}
	return suiteNames[s]
}

// valueRange returns the inclusive range of values a suite accepts.
func (s Suite) valueRange() (lo, hi TileValue, ok bool) {
	switch s {
	case Manzu, Pinzu, Souzu:
		return 0, 9, true
	case Honor:
		return 1, 7, true
	case Any:
		return 0, 0, true
	}
	return 0, 0, false
}

// TileValue is the number of a suited tile (0 is the red five) or the index of
// an honor tile (1-7: east, south, west, north, white, green, red).
type TileValue uint8

var (
	tileNumerals = [...]string{"Akadora", "Ii", "Ryan", "San", "Suu", "Uu", "Rou", "Chii", "Paa", "Kyuu"}
	honorNames   = [...]string{"Ton", "Nan", "Shaa", "Pei", "Haku", "Hatsu", "Chun"}
)

// Tile is a single tile. The zero value is the red five of manzu.
type Tile struct {
	Suite Suite
	Value TileValue
}

// InvalidTileError is returned for a value outside the range of its suite.
type InvalidTileError struct {
	Suite Suite
	Value TileValue
}

func (e *InvalidTileError) Error() string {
	return fmt.Sprintf("invalid value: %d for suite: %s", e.Value, e.Suite)
}

// NewTile validates and returns a tile.
func NewTile(suite Suite, value TileValue) (Tile, error) {
	lo, hi, ok := suite.valueRange()
	if !ok || value < lo || value > hi {
		return Tile{}, &InvalidTileError{Suite: suite, Value: value}
	}
	return Tile{Suite: suite, Value: value}, nil
}

// Name returns the romanized name of the tile, e.g. "Ii man" or "Chun".
func (t Tile) Name() string {
	if lo, hi, ok := t.Suite.valueRange(); !ok || t.Value < lo || t.Value > hi {
		return fmt.Sprintf("%s(%d)", t.Suite, t.Value)
	}

	switch t.Suite {
	case Manzu:
		return tileNumerals[t.Value] + " man"
	case Pinzu:
		return tileNumerals[t.Value] + " pin"
	case Souzu:
		return tileNumerals[t.Value] + " sou"
	case Honor:
		return honorNames[t.Value-1]
	}
	return "Any"
}

func (t Tile) String() string {
	return t.Name()
}

// Placement is how a tile is laid on the table.
type Placement int

const (
	Normal Placement = iota
	// Rotated is a called tile turned sideways.
	Rotated
	// RotatedAndShifted is a sideways tile stacked on the previous rotated one,
	// as in an added kan.
	RotatedAndShifted
)

var placementNames = [...]string{"Normal", "Rotated", "RotatedAndShifted"}

func (p Placement) String() string {
	if p < Normal || p > RotatedAndShifted {
		return fmt.Sprintf("Placement(%d)", int(p))
	}
	return placementNames[p]
}

// Next cycles Normal -> Rotated -> RotatedAndShifted -> Normal.
func (p Placement) Next() Placement {
	switch p {
	case Normal:
		return Rotated
	case Rotated:
		return RotatedAndShifted
	}
	return Normal
}
