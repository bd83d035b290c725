// Package hand models a Riichi Mahjong hand as groups of placed tiles and
// parses the compact text notation (e.g. "123m456p_7*77z").
package hand

// HandTile is a tile together with its placement.
type HandTile struct {
	Tile      Tile
	Placement Placement
}

func NewHandTile(tile Tile, placement Placement) HandTile {
	return HandTile{Tile: tile, Placement: placement}
}

func (t HandTile) String() string {
	if t.Placement == Normal {
		return t.Tile.String()
	}
	return t.Tile.String() + " (" + t.Placement.String() + ")"
}

// Group is a run of tiles drawn together, e.g. the closed part of a hand or a
// called meld.
type Group []HandTile

// Hand is an ordered list of groups.
type Hand struct {
	groups []Group
}

func New(groups []Group) *Hand {
	return &Hand{groups: groups}
}

func (h *Hand) Groups() []Group {
	return h.groups
}

// HandTiles returns the placed tiles of all groups in order.
func (h *Hand) HandTiles() []HandTile {
	var tiles []HandTile
	for _, g := range h.groups {
		tiles = append(tiles, g...)
	}
	return tiles
}

// Tiles returns the tiles of all groups in order, without placements.
func (h *Hand) Tiles() []Tile {
	var tiles []Tile
	for _, g := range h.groups {
		for _, t := range g {
			tiles = append(tiles, t.Tile)
		}
	}
	return tiles
}
