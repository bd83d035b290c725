package render

import (
	"image"
	"image/color"

	"github.com/lonng/riichihand/pkg/hand"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	DefaultPlaceholderHeight = 48
	minPlaceholderHeight     = 16
)

var (
	faceColor   = color.RGBA{0xf6, 0xf1, 0xe3, 0xff}
	borderColor = color.RGBA{0x6b, 0x64, 0x58, 0xff}
	backColor   = color.RGBA{0xd9, 0x8c, 0x1f, 0xff}
	inkColor    = color.RGBA{0x1d, 0x1d, 0x1d, 0xff}
	redInk      = color.RGBA{0xc4, 0x1e, 0x1e, 0xff}
)

var honorLabels = [...]string{"E", "S", "W", "N", "Wh", "G", "R"}

var suiteLetters = map[hand.Suite]string{
	hand.Manzu: "m",
	hand.Pinzu: "p",
	hand.Souzu: "s",
}

// NewPlaceholderTileSet draws a plain tile set with text labels, for use when
// no tile images are available. Height 0 selects DefaultPlaceholderHeight.
func NewPlaceholderTileSet(height int) (*TwoPartTileSet, error) {
	if height == 0 {
		height = DefaultPlaceholderHeight
	}
	if height < minPlaceholderHeight {
		return nil, errors.Errorf("placeholder tiles must be at least %d pixels high, got %d", minPlaceholderHeight, height)
	}
	width := height * 3 / 4

	front := tileBody(width, height, faceColor)
	tiles := make(map[hand.Tile]image.Image, len(hand.AllTiles))
	for _, t := range hand.AllTiles {
		if t == hand.AnyTile {
			tiles[t] = tileBody(width, height, backColor)
			continue
		}
		tiles[t] = label(width, height, t)
	}
	return NewTwoPartTileSet(front, tiles)
}

func tileBody(width, height int, fill color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(borderColor), image.Point{}, draw.Src)
	draw.Draw(img, img.Bounds().Inset(1), image.NewUniform(fill), image.Point{}, draw.Src)
	return img
}

// label draws the short name of t centred on a transparent image.
func label(width, height int, t hand.Tile) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	text, ink := tileLabel(t)
	face := basicfont.Face7x13
	advance := font.MeasureString(face, text).Ceil()
	ascent := face.Metrics().Ascent.Ceil()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.P((width-advance)/2, (height+ascent)/2),
	}
	d.DrawString(text)
	return img
}

func tileLabel(t hand.Tile) (string, color.Color) {
	if t.Suite == hand.Honor {
		return honorLabels[t.Value-1], inkColor
	}
	if t.Value == 0 {
		return "5" + suiteLetters[t.Suite], redInk
	}
	return string(rune('0'+t.Value)) + suiteLetters[t.Suite], inkColor
}
