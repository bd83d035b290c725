package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/lonng/riichihand/pkg/hand"
	"golang.org/x/image/draw"
)

// TileSet provides the images a hand is drawn with.
//
// TileImage must return a TileWidth x TileHeight image for a Normal tile and a
// TileHeight x TileWidth image for the rotated placements. Implementations
// must be safe for concurrent use.
type TileSet interface {
	TileImage(t hand.HandTile) (image.Image, error)
	TileWidth() int
	TileHeight() int
}

var ErrUnequalDimensions = errors.New("images (backgrounds and foregrounds) do not have equal dimensions")

// TileMissingError is returned when a tile set is built without an image for
// one of the tiles.
type TileMissingError struct {
	Tile hand.Tile
}

func (e *TileMissingError) Error() string {
	return fmt.Sprintf("tile foreground missing: %s", e.Tile)
}

// TileNotSupportedError is returned by TileImage for a tile the set cannot
// draw.
type TileNotSupportedError struct {
	Tile   hand.HandTile
	Reason string
}

func (e *TileNotSupportedError) Error() string {
	return fmt.Sprintf("tile %s not supported: %s", e.Tile, e.Reason)
}

// checkTileMap requires an image for every tile and a common size for all of
// them, plus any extra images given.
func checkTileMap(tiles map[hand.Tile]image.Image, extra ...image.Image) (width, height int, err error) {
	for _, t := range hand.AllTiles {
		if img, ok := tiles[t]; !ok || img == nil {
			return 0, 0, &TileMissingError{Tile: t}
		}
	}

	size := tiles[hand.AnyTile].Bounds().Size()
	for _, img := range tiles {
		if img != nil && img.Bounds().Size() != size {
			return 0, 0, ErrUnequalDimensions
		}
	}
	for _, img := range extra {
		if img == nil || img.Bounds().Size() != size {
			return 0, 0, ErrUnequalDimensions
		}
	}
	return size.X, size.Y, nil
}

// SimpleTileSet returns complete tile images as they are. It cannot draw
// rotated tiles.
type SimpleTileSet struct {
	tiles  map[hand.Tile]image.Image
	width  int
	height int
}

func NewSimpleTileSet(tiles map[hand.Tile]image.Image) (*SimpleTileSet, error) {
	w, h, err := checkTileMap(tiles)
	if err != nil {
		return nil, err
	}

	copied := make(map[hand.Tile]image.Image, len(tiles))
	for t, img := range tiles {
		copied[t] = img
	}
	return &SimpleTileSet{tiles: copied, width: w, height: h}, nil
}

func (s *SimpleTileSet) TileImage(t hand.HandTile) (image.Image, error) {
	if t.Placement != hand.Normal {
		return nil, &TileNotSupportedError{Tile: t, Reason: "this tile set does not support rotated tiles"}
	}
	img, ok := s.tiles[t.Tile]
	if !ok {
		return nil, &TileNotSupportedError{Tile: t, Reason: "invalid tile"}
	}
	return img, nil
}

func (s *SimpleTileSet) TileWidth() int  { return s.width }
func (s *SimpleTileSet) TileHeight() int { return s.height }

// TwoPartTileSet composes each tile from a shared front image and a
// per-tile foreground. The face-down tile uses its own image as background
// and has no foreground.
//
// Rotated tiles turn the foreground clockwise but transpose the background so
// that the shading of the tile body keeps pointing the same way.
type TwoPartTileSet struct {
	front  image.Image
	tiles  map[hand.Tile]image.Image
	width  int
	height int
}

func NewTwoPartTileSet(front image.Image, tiles map[hand.Tile]image.Image) (*TwoPartTileSet, error) {
	w, h, err := checkTileMap(tiles, front)
	if err != nil {
		return nil, err
	}

	copied := make(map[hand.Tile]image.Image, len(tiles))
	for t, img := range tiles {
		copied[t] = img
	}
	return &TwoPartTileSet{front: front, tiles: copied, width: w, height: h}, nil
}

func (s *TwoPartTileSet) TileImage(t hand.HandTile) (image.Image, error) {
	fg, ok := s.tiles[t.Tile]
	if !ok {
		return nil, &TileNotSupportedError{Tile: t, Reason: "invalid tile"}
	}

	bg := s.front
	if t.Tile == hand.AnyTile {
		bg, fg = fg, nil
	}

	var out *image.RGBA
	if t.Placement == hand.Normal {
		out = toRGBA(bg)
	} else {
		out = transpose(bg)
		if fg != nil {
			fg = rotateClockwise(fg)
		}
	}

	if fg != nil {
		draw.Draw(out, out.Bounds(), fg, fg.Bounds().Min, draw.Over)
	}
	return out, nil
}

func (s *TwoPartTileSet) TileWidth() int  { return s.width }
func (s *TwoPartTileSet) TileHeight() int { return s.height }

func toRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// rotateClockwise turns src by 90 degrees clockwise.
func rotateClockwise(src image.Image) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < w; y++ {
		for x := 0; x < h; x++ {
			dst.Set(x, y, src.At(b.Min.X+y, b.Min.Y+h-1-x))
		}
	}
	return dst
}

// transpose mirrors src along its main diagonal.
func transpose(src image.Image) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < w; y++ {
		for x := 0; x < h; x++ {
			dst.Set(x, y, src.At(b.Min.X+y, b.Min.Y+x))
		}
	}
	return dst
}
