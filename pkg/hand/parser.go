package hand

import (
	"errors"
	"fmt"
)

const (
	suiteManzu = 'm'
	suitePinzu = 'p'
	suiteSouzu = 's'
	suiteHonor = 'z'

	groupSeparator = '_'
)

// Letters that stand for a complete tile.
var specialTiles = map[rune]Tile{
	'E': Ton,
	'S': Nan,
	'W': Shaa,
	'N': Pei,
	'w': Haku,
	'g': Hatsu,
	'r': Chun,
	'?': AnyTile,
}

var suites = map[rune]Suite{
	suiteManzu: Manzu,
	suitePinzu: Pinzu,
	suiteSouzu: Souzu,
	suiteHonor: Honor,
}

var (
	ErrInvalidCharacter           = errors.New("invalid character")
	ErrInvalidValue               = errors.New("invalid tile value")
	ErrUnfinishedSuite            = errors.New("tile suite not finished")
	ErrPositionModifierWithNoTile = errors.New("position modifier does not have any tile to modify")
)

// ParseError reports where and why a notation could not be parsed. Position is
// counted in runes.
type ParseError struct {
	Position int
	Kind     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error when parsing hand at position %d: %v", e.Position, e.Kind)
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// pendingTile is a tile whose suite may not be known yet.
type pendingTile struct {
	suite     Suite
	hasSuite  bool
	value     TileValue
	placement Placement
}

type parser struct {
	groups  []Group
	pending []pendingTile
}

// Parse converts a hand notation into a Hand.
//
// Digits are collected until a suite letter (m, p, s, z) follows; 0 is the red
// five. E, S, W, N, w, g, r stand for the winds and dragons and ? for a
// face-down tile. A * or ' after a tile rotates it, a second one stacks it on
// the previous rotated tile. _ starts a new group.
//
//	h, err := hand.Parse("123m_4*56p_EE*E**E")
func Parse(notation string) (*Hand, error) {
	p := &parser{groups: []Group{{}}}

	pos := 0
	for _, c := range notation {
		if err := p.handle(c); err != nil {
			return nil, &ParseError{Position: pos, Kind: err}
		}
		pos++
	}

	if err := p.flush(); err != nil {
		return nil, &ParseError{Position: pos, Kind: err}
	}
	return New(p.groups), nil
}

// MustParse is like Parse but panics on error. It simplifies tests and
// package level variables.
func MustParse(notation string) *Hand {
	h, err := Parse(notation)
	if err != nil {
		panic(err)
	}
	return h
}

func (p *parser) handle(c rune) error {
	switch {
	case c >= '0' && c <= '9':
		p.pending = append(p.pending, pendingTile{value: TileValue(c - '0')})
		return nil

	case c == '*' || c == '\'':
		if len(p.pending) == 0 {
			return ErrPositionModifierWithNoTile
		}
		last := &p.pending[len(p.pending)-1]
		last.placement = last.placement.Next()
		return nil

	case c == groupSeparator:
		if err := p.flush(); err != nil {
			return err
		}
		p.groups = append(p.groups, Group{})
		return nil
	}

	if suite, ok := suites[c]; ok {
		for i := range p.pending {
			if !p.pending[i].hasSuite {
				p.pending[i].suite = suite
				p.pending[i].hasSuite = true
			}
		}
		return p.flush()
	}

	if tile, ok := specialTiles[c]; ok {
		p.pending = append(p.pending, pendingTile{suite: tile.Suite, hasSuite: true, value: tile.Value})
		return nil
	}

	return ErrInvalidCharacter
}

// flush moves the pending tiles into the current group. Every pending tile
// must have a suite by now.
func (p *parser) flush() error {
	pending := p.pending
	p.pending = nil

	for _, pt := range pending {
		if !pt.hasSuite {
			return ErrUnfinishedSuite
		}
		tile, err := NewTile(pt.suite, pt.value)
		if err != nil {
			return ErrInvalidValue
		}
		last := len(p.groups) - 1
		p.groups[last] = append(p.groups[last], NewHandTile(tile, pt.placement))
	}
	return nil
}
