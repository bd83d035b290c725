package command

import (
	"context"
	"path/filepath"

	"github.com/lonng/riichihand/internal/async"
	"github.com/lonng/riichihand/internal/errutil"
	"github.com/lonng/riichihand/pkg/hand"
	"github.com/lonng/riichihand/pkg/render"
	"github.com/lonng/riichihand/protocol"
	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func (r *runner) renderCommand() cli.Command {
	return cli.Command{
		Name:      "render",
		Usage:     "render hand notations to PNG images",
		ArgsUsage: "NOTATION...",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "tiles, t", Usage: "load tile images from `DIR`"},
			cli.StringFlag{Name: "out, o", Usage: "write the image to `FILE` (single hand only)"},
			cli.IntFlag{Name: "height", Usage: "tile height in pixels"},
			cli.IntFlag{Name: "workers", Usage: "hands rendered in parallel"},
			cli.BoolFlag{Name: "json", Usage: "print JSON"},
		},
		Action: action(r.render),
	}
}

type renderJob struct {
	notation string
	hand     *hand.Hand
	path     string
}

func (r *runner) render(c *cli.Context) error {
	notations := []string(c.Args())
	if len(notations) == 0 {
		return errors.Wrap(errutil.ErrIllegalParameter, "no hand notation given")
	}
	out := c.String("out")
	if out != "" && len(notations) > 1 {
		return errors.Wrap(errutil.ErrIllegalParameter, "--out needs exactly one hand")
	}

	jobs := make([]renderJob, 0, len(notations))
	for _, notation := range notations {
		h, err := hand.Parse(notation)
		if err != nil {
			return errors.Wrapf(err, "parse %q", notation)
		}

		path := out
		if path == "" {
			path = filepath.Join(r.cfg.Render.OutDir, "hand-"+uuid.New()+".png")
		}
		jobs = append(jobs, renderJob{notation: notation, hand: h, path: path})
	}

	ts, err := r.tileSet(c)
	if err != nil {
		return err
	}

	opts := render.Options{TileGap: r.cfg.Render.TileGap, GroupGap: r.cfg.Render.GroupGap}
	workers := r.cfg.Render.Workers
	if c.IsSet("workers") {
		workers = c.Int("workers")
	}

	results := make([]protocol.RenderResult, len(jobs))
	group := async.NewGroup(context.Background(), workers)
	for i, job := range jobs {
		i, job := i, job
		group.Go(func(context.Context) error {
			results[i] = renderOne(job, ts, opts)
			if results[i].Error != "" {
				return errutil.Mark(errors.Errorf("render %q: %s", job.notation, results[i].Error), errutil.ErrRender)
			}
			return nil
		})
	}
	waitErr := group.Wait()

	if r.wantJSON(c) {
		if err := r.writeJSON(results); err != nil {
			return err
		}
		return waitErr
	}

	for _, res := range results {
		switch {
		case res.Error != "":
			r.printf("%s: %s\n", res.Notation, res.Error)
		case res.File != "":
			r.printf("%s -> %s (%dx%d)\n", res.Notation, res.File, res.Width, res.Height)
		}
	}
	return waitErr
}

func renderOne(job renderJob, ts render.TileSet, opts render.Options) protocol.RenderResult {
	res := protocol.RenderResult{Notation: job.notation}

	img, err := render.Render(job.hand, ts, opts)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	if err := render.SavePNG(job.path, img); err != nil {
		res.Error = err.Error()
		return res
	}

	res.File = job.path
	res.Width, res.Height = img.Bounds().Dx(), img.Bounds().Dy()
	logger.WithField("file", job.path).Debugf("Rendered %s", job.notation)
	return res
}

// tileSet loads the configured tile images, or draws placeholder tiles when
// no directory is configured.
func (r *runner) tileSet(c *cli.Context) (render.TileSet, error) {
	dir := r.cfg.Render.TileDir
	if c.IsSet("tiles") {
		dir = c.String("tiles")
	}
	height := r.cfg.Render.TileHeight
	if c.IsSet("height") {
		height = c.Int("height")
	}

	if dir == "" {
		ts, err := render.NewPlaceholderTileSet(height)
		if err != nil {
			return nil, errutil.Mark(err, errutil.ErrIllegalParameter)
		}
		return ts, nil
	}

	ts, err := render.LoadTileSet(dir, render.LoadOptions{Height: height})
	if err != nil {
		return nil, errutil.Mark(err, errutil.ErrRender)
	}
	return ts, nil
}
