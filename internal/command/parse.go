package command

import (
	"strings"

	"github.com/lonng/riichihand/internal/errutil"
	"github.com/lonng/riichihand/pkg/hand"
	"github.com/lonng/riichihand/protocol"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func (r *runner) parseCommand() cli.Command {
	return cli.Command{
		Name:      "parse",
		Usage:     "parse hand notations and list their tiles",
		ArgsUsage: "NOTATION...",
		Flags: []cli.Flag{
			cli.BoolFlag{Name: "json", Usage: "print JSON"},
		},
		Action: action(r.parse),
	}
}

func (r *runner) parse(c *cli.Context) error {
	notations := []string(c.Args())
	if len(notations) == 0 {
		return errors.Wrap(errutil.ErrIllegalParameter, "no hand notation given")
	}

	var (
		infos    = make([]protocol.HandInfo, 0, len(notations))
		firstErr error
	)
	for _, notation := range notations {
		h, err := hand.Parse(notation)
		if err != nil {
			logger.WithField("notation", notation).Debugf("Parse failed: %v", err)
			infos = append(infos, protocol.HandInfo{Notation: notation, Error: err.Error()})
			if firstErr == nil {
				firstErr = errors.Wrapf(err, "parse %q", notation)
			}
			continue
		}
		infos = append(infos, protocol.NewHandInfo(notation, h))
	}

	if r.wantJSON(c) {
		if err := r.writeJSON(infos); err != nil {
			return err
		}
		return firstErr
	}

	for _, info := range infos {
		r.printHandInfo(info)
	}
	return firstErr
}

func (r *runner) printHandInfo(info protocol.HandInfo) {
	if info.Error != "" {
		r.printf("%s: %s\n", info.Notation, info.Error)
		return
	}

	r.printf("%s: %d tiles in %d groups\n", info.Notation, info.TileCount, len(info.Groups))
	for i, g := range info.Groups {
		names := make([]string, 0, len(g))
		for _, t := range g {
			if t.Placement == hand.Normal.String() {
				names = append(names, t.Name)
				continue
			}
			names = append(names, t.Name+" ("+t.Placement+")")
		}
		r.printf("  %d: %s\n", i+1, strings.Join(names, ", "))
	}
}
