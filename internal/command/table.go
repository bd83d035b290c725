package command

import (
	"encoding/csv"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/lonng/riichihand/internal/errutil"
	"github.com/lonng/riichihand/pkg/points"
	"github.com/lonng/riichihand/protocol"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

const defaultTableMaxHan = 13

var tableHeader = []string{"han", "fu", "ko_tsumo_1", "ko_tsumo_2", "ko_ron", "oya_ron"}

func (r *runner) tableCommand() cli.Command {
	return cli.Command{
		Name:  "table",
		Usage: "print the reference points table",
		Flags: []cli.Flag{
			cli.IntFlag{Name: "max-han", Value: defaultTableMaxHan, Usage: "last han row"},
			cli.BoolFlag{Name: "csv", Usage: "print CSV"},
			cli.BoolFlag{Name: "json", Usage: "print JSON"},
		},
		Action: action(r.table),
	}
}

func (r *runner) table(c *cli.Context) error {
	maxHan, err := int32Flag(c, "max-han")
	if err != nil {
		return err
	}
	rows, err := referenceTable(maxHan)
	if err != nil {
		return err
	}

	switch {
	case c.Bool("csv"):
		return writeTableCSV(r.out, rows)
	case r.wantJSON(c):
		return r.writeJSON(rows)
	}
	return r.writeTableText(rows)
}

// referenceTable scores every han up to maxHan against every valid fu.
func referenceTable(maxHan int32) ([]protocol.TableRow, error) {
	if maxHan < 1 {
		return nil, errors.Wrapf(errutil.ErrIllegalParameter, "max han %d", maxHan)
	}

	fus := points.ValidFu()
	rows := make([]protocol.TableRow, 0, int(maxHan)*len(fus))
	for han := int32(1); han <= maxHan; han++ {
		for _, fu := range fus {
			p, err := points.FromCalculated[points.Int64](points.ModeDefault, points.NewHan(han), fu, points.ZeroHonba)
			if err != nil {
				return nil, err
			}
			rows = append(rows, protocol.NewTableRow(han, fu.Get(), p))
		}
	}
	return rows, nil
}

func writeTableCSV(w io.Writer, rows []protocol.TableRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tableHeader); err != nil {
		return errutil.Mark(err, errutil.ErrIO)
	}

	for _, row := range rows {
		record := []string{
			strconv.FormatInt(int64(row.Han), 10),
			strconv.FormatInt(int64(row.Fu), 10),
			csvCell(row.KoTsumoKo),
			csvCell(row.KoTsumoOya),
			csvCell(row.KoRon),
			csvCell(row.OyaRon),
		}
		if err := cw.Write(record); err != nil {
			return errutil.Mark(err, errutil.ErrIO)
		}
	}

	cw.Flush()
	return errutil.Mark(cw.Error(), errutil.ErrIO)
}

func (r *runner) writeTableText(rows []protocol.TableRow) error {
	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', tabwriter.AlignRight)
	r.fprintf(tw, "han\tfu\tko tsumo\tko ron\toya tsumo\toya ron\t\n")

	for _, row := range rows {
		r.fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\t\n",
			row.Han, row.Fu,
			r.pair(row.KoTsumoKo, row.KoTsumoOya),
			r.cell(row.KoRon),
			r.cell(row.KoTsumoOya),
			r.cell(row.OyaRon))
	}
	return errutil.Mark(tw.Flush(), errutil.ErrIO)
}

// csvCell writes a missing payment as 0.
func csvCell(v *int64) string {
	if v == nil {
		return "0"
	}
	return strconv.FormatInt(*v, 10)
}

func (r *runner) cell(v *int64) string {
	if v == nil {
		return undefinedPayment
	}
	s := strconv.FormatInt(*v, 10)
	return r.amount(&s)
}

func (r *runner) pair(ko, oya *int64) string {
	if ko == nil || oya == nil {
		return undefinedPayment
	}
	return r.cell(ko) + "/" + r.cell(oya)
}
