package render

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/lonng/riichihand/pkg/hand"
)

func uniformTiles(w, h int, c color.Color) map[hand.Tile]image.Image {
	tiles := make(map[hand.Tile]image.Image, len(hand.AllTiles))
	for _, t := range hand.AllTiles {
		tiles[t] = solid(w, h, c)
	}
	return tiles
}

func TestTileSetMissingTile(t *testing.T) {
	var missing *TileMissingError

	_, err := NewTwoPartTileSet(solid(16, 16, white), map[hand.Tile]image.Image{})
	if !errors.As(err, &missing) {
		t.Fatalf("expected TileMissingError, got %v", err)
	}

	tiles := uniformTiles(16, 16, white)
	delete(tiles, hand.Chun)
	_, err = NewSimpleTileSet(tiles)
	if !errors.As(err, &missing) || missing.Tile != hand.Chun {
		t.Fatalf("expected Chun missing, got %v", err)
	}
	if err.Error() != "tile foreground missing: Chun" {
		t.Fatalf("got %q", err.Error())
	}
}

func TestTileSetUnequalDimensions(t *testing.T) {
	tiles := uniformTiles(16, 16, white)
	tiles[hand.AnyTile] = solid(32, 32, white)
	if _, err := NewTwoPartTileSet(solid(16, 16, white), tiles); err != ErrUnequalDimensions {
		t.Fatalf("got %v", err)
	}
	if _, err := NewSimpleTileSet(tiles); err != ErrUnequalDimensions {
		t.Fatalf("got %v", err)
	}

	tiles = uniformTiles(16, 16, white)
	if _, err := NewTwoPartTileSet(solid(32, 32, white), tiles); err != ErrUnequalDimensions {
		t.Fatalf("got %v", err)
	}
}

func TestSimpleTileSet(t *testing.T) {
	ts, err := NewSimpleTileSet(uniformTiles(4, 6, red))
	if err != nil {
		t.Fatal(err)
	}
	if ts.TileWidth() != 4 || ts.TileHeight() != 6 {
		t.Fatalf("got %dx%d", ts.TileWidth(), ts.TileHeight())
	}

	img, err := ts.TileImage(hand.NewHandTile(hand.IiPin, hand.Normal))
	if err != nil || img.Bounds().Size() != image.Pt(4, 6) {
		t.Fatalf("got %v %v", img, err)
	}

	for _, p := range []hand.Placement{hand.Rotated, hand.RotatedAndShifted} {
		_, err := ts.TileImage(hand.NewHandTile(hand.IiPin, p))
		var notSupported *TileNotSupportedError
		if !errors.As(err, &notSupported) {
			t.Fatalf("%v: expected TileNotSupportedError, got %v", p, err)
		}
	}
}

func TestTwoPartTileSet(t *testing.T) {
	// A marked corner pixel shows how each layer is turned.
	front := solid(4, 6, white)
	front.Set(1, 0, green)
	fg := image.NewRGBA(image.Rect(0, 0, 4, 6))
	fg.Set(0, 0, red)

	tiles := make(map[hand.Tile]image.Image, len(hand.AllTiles))
	for _, tile := range hand.AllTiles {
		tiles[tile] = fg
	}
	tiles[hand.AnyTile] = solid(4, 6, blue)

	ts, err := NewTwoPartTileSet(front, tiles)
	if err != nil {
		t.Fatal(err)
	}

	img, err := ts.TileImage(hand.NewHandTile(hand.Ton, hand.Normal))
	if err != nil {
		t.Fatal(err)
	}
	checkPixels(t, img, image.Pt(4, 6), map[image.Point]color.RGBA{
		{0, 0}: red,
		{1, 0}: green,
		{3, 5}: white,
	})

	for _, p := range []hand.Placement{hand.Rotated, hand.RotatedAndShifted} {
		img, err := ts.TileImage(hand.NewHandTile(hand.Ton, p))
		if err != nil {
			t.Fatal(err)
		}
		checkPixels(t, img, image.Pt(6, 4), map[image.Point]color.RGBA{
			{5, 0}: red,
			{0, 1}: green,
			{0, 0}: white,
		})
	}

	img, err = ts.TileImage(hand.NewHandTile(hand.AnyTile, hand.Rotated))
	if err != nil {
		t.Fatal(err)
	}
	checkPixels(t, img, image.Pt(6, 4), map[image.Point]color.RGBA{
		{0, 0}: blue,
		{5, 0}: blue,
		{5, 3}: blue,
	})
}

func checkPixels(t *testing.T, img image.Image, size image.Point, want map[image.Point]color.RGBA) {
	t.Helper()

	if got := img.Bounds().Size(); got != size {
		t.Fatalf("got size %v want %v", got, size)
	}
	for p, c := range want {
		if got := color.RGBAModel.Convert(img.At(p.X, p.Y)); got != c {
			t.Fatalf("%v got: %v want: %v", p, got, c)
		}
	}
}

func writeTileDir(t *testing.T, w, h int, withFront bool) string {
	t.Helper()

	dir := t.TempDir()
	for _, tile := range hand.AllTiles {
		if err := SavePNG(filepath.Join(dir, TileFileName(tile)), solid(w, h, red)); err != nil {
			t.Fatal(err)
		}
	}
	if withFront {
		if err := SavePNG(filepath.Join(dir, "Front.png"), solid(w, h, white)); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestLoadTileSet(t *testing.T) {
	ts, err := LoadTileSet(writeTileDir(t, 6, 8, false), LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ts.(*SimpleTileSet); !ok {
		t.Fatalf("got %T", ts)
	}
	if ts.TileWidth() != 6 || ts.TileHeight() != 8 {
		t.Fatalf("got %dx%d", ts.TileWidth(), ts.TileHeight())
	}

	ts, err = LoadTileSet(writeTileDir(t, 6, 8, true), LoadOptions{Height: 16})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ts.(*TwoPartTileSet); !ok {
		t.Fatalf("got %T", ts)
	}
	if ts.TileWidth() != 12 || ts.TileHeight() != 16 {
		t.Fatalf("got %dx%d", ts.TileWidth(), ts.TileHeight())
	}
	if _, err := ts.TileImage(hand.NewHandTile(hand.Chun, hand.Rotated)); err != nil {
		t.Fatal(err)
	}
}

func TestLoadTileSetErrors(t *testing.T) {
	dir := writeTileDir(t, 6, 8, false)
	if err := os.Remove(filepath.Join(dir, "Sou5-Dora.png")); err != nil {
		t.Fatal(err)
	}
	_, err := LoadTileSet(dir, LoadOptions{})
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not exist, got %v", err)
	}

	dir = writeTileDir(t, 6, 8, false)
	if err := os.WriteFile(filepath.Join(dir, "Pei.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTileSet(dir, LoadOptions{}); err == nil {
		t.Fatal("expected decode error")
	}

	if _, err := LoadTileSet(dir, LoadOptions{Height: -1}); err == nil {
		t.Fatal("expected height error")
	}
}

func TestPlaceholderTileSet(t *testing.T) {
	ts, err := NewPlaceholderTileSet(0)
	if err != nil {
		t.Fatal(err)
	}
	if ts.TileHeight() != DefaultPlaceholderHeight || ts.TileWidth() != DefaultPlaceholderHeight*3/4 {
		t.Fatalf("got %dx%d", ts.TileWidth(), ts.TileHeight())
	}

	img, err := Render(hand.MustParse("123m_4*44*4p_?"), ts, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dy() != DefaultPlaceholderHeight {
		t.Fatalf("got %v", img.Bounds())
	}

	if _, err := NewPlaceholderTileSet(8); err == nil {
		t.Fatal("expected error for tiny tiles")
	}
}
