package command

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/lonng/riichihand/internal/errutil"
	"github.com/lonng/riichihand/pkg/points"
	"github.com/lonng/riichihand/protocol"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const undefinedPayment = "-"

func (r *runner) pointsCommand() cli.Command {
	return cli.Command{
		Name:  "points",
		Usage: "calculate the payments of a winning hand",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "han", Usage: "han count"},
			cli.IntFlag{Name: "fu", Usage: "fu count"},
			cli.IntFlag{Name: "honba", Usage: "honba (repeat) counter"},
			cli.StringFlag{Name: "mode, m", Usage: "calculation `MODE`: default, loose or unlimited"},
			cli.BoolFlag{Name: "big", Usage: "use arbitrary precision arithmetic, always on in unlimited mode"},
			cli.BoolFlag{Name: "json", Usage: "print JSON"},
		},
		Action: action(r.points),
	}
}

func (r *runner) points(c *cli.Context) error {
	if !c.IsSet("han") || !c.IsSet("fu") {
		return errors.Wrap(errutil.ErrIllegalParameter, "--han and --fu are required")
	}

	var (
		req  = protocol.PointsRequest{BigInt: c.Bool("big") || r.cfg.Points.BigInt}
		mode = r.cfg.Mode()
		err  error
	)
	for _, f := range []struct {
		name string
		dst  *int32
	}{{"han", &req.Han}, {"fu", &req.Fu}, {"honba", &req.Honba}} {
		if *f.dst, err = int32Flag(c, f.name); err != nil {
			return err
		}
	}
	if c.IsSet("mode") {
		if mode, err = points.ParseCalculationMode(c.String("mode")); err != nil {
			return err
		}
	}

	result, err := calculate(mode, req)
	if err != nil {
		return err
	}

	if r.wantJSON(c) {
		return r.writeJSON(result)
	}
	r.printPoints(result)
	return nil
}

// int32Flag reads an integer flag that has to fit the han/fu/honba range.
func int32Flag(c *cli.Context, name string) (int32, error) {
	v := c.Int(name)
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, errors.Wrapf(errutil.ErrIllegalParameter, "--%s %d out of range", name, v)
	}
	return int32(v), nil
}

// calculate scores req in mode. Unlimited scores outgrow int64 quickly, so
// they always use BigInt.
func calculate(mode points.CalculationMode, req protocol.PointsRequest) (protocol.PointsResult, error) {
	req.Mode = mode.String()
	if mode == points.ModeUnlimited {
		req.BigInt = true
	}

	if req.BigInt {
		return score[points.BigInt](mode, req)
	}
	return score[points.Int64](mode, req)
}

func score[T points.Numeric[T]](mode points.CalculationMode, req protocol.PointsRequest) (protocol.PointsResult, error) {
	p, err := points.FromCalculated[T](mode, points.NewHan(req.Han), points.NewFu(req.Fu), points.NewHonba(req.Honba))
	if err != nil {
		return protocol.PointsResult{}, err
	}
	logger.Debugf("Scored %d han %d fu in %s mode: base %s", req.Han, req.Fu, mode, p.BasePoints())
	return protocol.NewPointsResult(req, p), nil
}

func (r *runner) printPoints(p protocol.PointsResult) {
	r.printf("%d han %d fu, %d honba (%s)\n", p.Han, p.Fu, p.Honba, p.Mode)
	if p.Tier != "" {
		r.printf("tier:      %s\n", p.Tier)
	}
	r.printf("base:      %s\n", r.amount(&p.BasePoints))
	r.printf("oya tsumo: %s all\n", r.amount(p.OyaTsumo))
	r.printf("oya ron:   %s\n", r.amount(p.OyaRon))
	r.printf("ko tsumo:  %s / %s\n", r.amount(p.KoTsumoKo), r.amount(p.KoTsumoOya))
	r.printf("ko ron:    %s\n", r.amount(p.KoRon))
}

// amount groups the digits of v for the output locale.
func (r *runner) amount(v *string) string {
	if v == nil {
		return undefinedPayment
	}
	n, err := strconv.ParseInt(*v, 10, 64)
	if err != nil || r.printer == nil {
		return *v
	}
	return r.printer.Sprintf("%d", n)
}

func (r *runner) writeJSON(v interface{}) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return errutil.Mark(enc.Encode(v), errutil.ErrIO)
}
