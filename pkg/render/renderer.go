// Package render draws a parsed hand to a raster image using a TileSet.
package render

import (
	"image"

	"github.com/lonng/riichihand/pkg/hand"
	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Options control the spacing of a rendered hand. Gaps are fractions of the
// tile width.
type Options struct {
	TileGap  float64
	GroupGap float64
}

// DefaultOptions draws tiles of a group touching each other and separates
// groups by a third of a tile.
func DefaultOptions() Options {
	return Options{TileGap: 0, GroupGap: 1.0 / 3.0}
}

type renderer struct {
	tiles    TileSet
	tileGap  int
	groupGap int
}

// Render draws h left to right. Groups are aligned to the bottom edge of the
// image. A hand without tiles yields an empty image.
func Render(h *hand.Hand, ts TileSet, opts Options) (*image.RGBA, error) {
	if opts.TileGap < 0 || opts.GroupGap < 0 {
		return nil, errors.Errorf("negative gap: tile %v group %v", opts.TileGap, opts.GroupGap)
	}

	r := &renderer{
		tiles:    ts,
		tileGap:  int(opts.TileGap * float64(ts.TileWidth())),
		groupGap: int(opts.GroupGap * float64(ts.TileWidth())),
	}

	size := r.handSize(h)
	img := image.NewRGBA(image.Rectangle{Max: size})

	x := 0
	for _, g := range h.Groups() {
		gs := r.groupSize(g)
		origin := image.Pt(x, size.Y-gs.Y)
		if err := r.drawGroup(img, g, image.Rectangle{Min: origin, Max: origin.Add(gs)}); err != nil {
			return nil, err
		}
		x += gs.X + r.groupGap
	}
	return img, nil
}

func (r *renderer) drawGroup(dst *image.RGBA, g hand.Group, area image.Rectangle) error {
	x := area.Min.X
	last := hand.Normal
	for _, t := range g {
		ts := r.tileSize(t.Placement)
		if last == hand.Rotated && t.Placement == hand.RotatedAndShifted {
			x -= ts.X + r.tileGap
		}

		img, err := r.tiles.TileImage(t)
		if err != nil {
			return errors.Wrapf(err, "render %s", t)
		}

		slot := image.Rectangle{Min: image.Pt(x, area.Max.Y-ts.Y)}
		slot.Max = slot.Min.Add(ts)
		rect := image.Rectangle{Min: slot.Min, Max: slot.Min.Add(img.Bounds().Size())}.Intersect(slot)
		draw.Draw(dst, rect, img, img.Bounds().Min, draw.Over)

		last = t.Placement
		x += ts.X + r.tileGap
	}
	return nil
}

func (r *renderer) handSize(h *hand.Hand) image.Point {
	var size image.Point
	for i, g := range h.Groups() {
		gs := r.groupSize(g)
		if i > 0 {
			size.X += r.groupGap
		}
		size.X += gs.X
		size.Y = max(size.Y, gs.Y)
	}
	return size
}

// groupSize is the bounding box of a group. A shifted tile stacked on a
// rotated one adds no width.
func (r *renderer) groupSize(g hand.Group) image.Point {
	var size image.Point
	for i, t := range g {
		ts := r.tileSize(t.Placement)
		switch {
		case i == 0:
			size.X = ts.X
		case g[i-1].Placement == hand.Rotated && t.Placement == hand.RotatedAndShifted:
		default:
			size.X += ts.X + r.tileGap
		}
		size.Y = max(size.Y, ts.Y)
	}
	return size
}

func (r *renderer) tileSize(p hand.Placement) image.Point {
	w, h := r.tiles.TileWidth(), r.tiles.TileHeight()
	switch p {
	case hand.Rotated:
		return image.Pt(h, w)
	case hand.RotatedAndShifted:
		return image.Pt(h, 2*w)
	}
	return image.Pt(w, h)
}
