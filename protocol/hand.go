package protocol

import "github.com/lonng/riichihand/pkg/hand"

type (
	TileInfo struct {
		Name      string `json:"name"`
		Suite     string `json:"suite"`
		Value     uint8  `json:"value"`
		Placement string `json:"placement"`
	}

	HandInfo struct {
		Notation  string       `json:"notation"`
		Groups    [][]TileInfo `json:"groups,omitempty"`
		TileCount int          `json:"tile_count"`
		Error     string       `json:"error,omitempty"`
	}

	RenderResult struct {
		Notation string `json:"notation"`
		File     string `json:"file,omitempty"`
		Width    int    `json:"width"`
		Height   int    `json:"height"`
		Error    string `json:"error,omitempty"`
	}
)

func NewHandInfo(notation string, h *hand.Hand) HandInfo {
	info := HandInfo{
		Notation: notation,
		Groups:   make([][]TileInfo, 0, len(h.Groups())),
	}
	for _, g := range h.Groups() {
		tiles := make([]TileInfo, 0, len(g))
		for _, t := range g {
			tiles = append(tiles, TileInfo{
				Name:      t.Tile.Name(),
				Suite:     t.Tile.Suite.String(),
				Value:     uint8(t.Tile.Value),
				Placement: t.Placement.String(),
			})
		}
		info.Groups = append(info.Groups, tiles)
		info.TileCount += len(g)
	}
	return info
}
