package render

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/lonng/riichihand/pkg/hand"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
)

var logger = log.WithField("component", "render")

const (
	frontFileName = "Front"
	fileExt       = ".png"
)

// tileFileNames maps every tile to the base name of its image in a tile
// directory.
var tileFileNames = map[hand.Tile]string{
	hand.AkadoraMan: "Man5-Dora",
	hand.IiMan:      "Man1",
	hand.RyanMan:    "Man2",
	hand.SanMan:     "Man3",
	hand.SuuMan:     "Man4",
	hand.UuMan:      "Man5",
	hand.RouMan:     "Man6",
	hand.ChiiMan:    "Man7",
	hand.PaaMan:     "Man8",
	hand.KyuuMan:    "Man9",
	hand.AkadoraPin: "Pin5-Dora",
	hand.IiPin:      "Pin1",
	hand.RyanPin:    "Pin2",
	hand.SanPin:     "Pin3",
	hand.SuuPin:     "Pin4",
	hand.UuPin:      "Pin5",
	hand.RouPin:     "Pin6",
	hand.ChiiPin:    "Pin7",
	hand.PaaPin:     "Pin8",
	hand.KyuuPin:    "Pin9",
	hand.AkadoraSou: "Sou5-Dora",
	hand.IiSou:      "Sou1",
	hand.RyanSou:    "Sou2",
	hand.SanSou:     "Sou3",
	hand.SuuSou:     "Sou4",
	hand.UuSou:      "Sou5",
	hand.RouSou:     "Sou6",
	hand.ChiiSou:    "Sou7",
	hand.PaaSou:     "Sou8",
	hand.KyuuSou:    "Sou9",
	hand.Ton:        "Ton",
	hand.Nan:        "Nan",
	hand.Shaa:       "Shaa",
	hand.Pei:        "Pei",
	hand.Haku:       "Haku",
	hand.Hatsu:      "Hatsu",
	hand.Chun:       "Chun",
	hand.AnyTile:    "Back",
}

// TileFileName returns the file a tile is loaded from, e.g. "Man1.png".
func TileFileName(t hand.Tile) string {
	return tileFileNames[t] + fileExt
}

type LoadOptions struct {
	// Height rescales every image to this many pixels, keeping the aspect
	// ratio. Zero keeps the size of the files.
	Height int
}

// LoadTileSet reads a tile set from dir. When dir contains Front.png the
// images are treated as foregrounds of a TwoPartTileSet, otherwise they are
// complete tiles of a SimpleTileSet.
func LoadTileSet(dir string, opts LoadOptions) (TileSet, error) {
	if opts.Height < 0 {
		return nil, errors.Errorf("invalid tile height: %d", opts.Height)
	}

	tiles := make(map[hand.Tile]image.Image, len(tileFileNames))
	for _, t := range hand.AllTiles {
		img, err := loadImage(filepath.Join(dir, TileFileName(t)), opts.Height)
		if err != nil {
			return nil, errors.Wrapf(err, "load %s", t)
		}
		tiles[t] = img
	}

	frontPath := filepath.Join(dir, frontFileName+fileExt)
	if _, err := os.Stat(frontPath); os.IsNotExist(err) {
		ts, err := NewSimpleTileSet(tiles)
		if err != nil {
			return nil, err
		}
		logger.Debugf("Loaded simple tile set from %s", dir)
		return ts, nil
	}

	front, err := loadImage(frontPath, opts.Height)
	if err != nil {
		return nil, errors.Wrap(err, "load front")
	}

	ts, err := NewTwoPartTileSet(front, tiles)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Loaded two-part tile set from %s", dir)
	return ts, nil
}

func loadImage(path string, height int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	if height == 0 || img.Bounds().Dy() == height {
		return img, nil
	}
	return scale(img, height), nil
}

// scale resizes img to the given height, keeping its aspect ratio.
func scale(img image.Image, height int) *image.RGBA {
	b := img.Bounds()
	width := max(1, b.Dx()*height/b.Dy())
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
