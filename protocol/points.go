package protocol

import (
	"github.com/lonng/riichihand/pkg/points"
)

type PointsRequest struct {
	Han    int32  `json:"han"`
	Fu     int32  `json:"fu"`
	Honba  int32  `json:"honba"`
	Mode   string `json:"mode"`
	BigInt bool   `json:"bigint"`
}

// PointsResult is the printable form of a score. Payments that do not exist
// for the han/fu combination are null.
type PointsResult struct {
	Han        int32   `json:"han"`
	Fu         int32   `json:"fu"`
	Honba      int32   `json:"honba"`
	Mode       string  `json:"mode"`
	Limited    bool    `json:"limited"`
	Tier       string  `json:"tier,omitempty"`
	BasePoints string  `json:"base_points"`
	OyaTsumo   *string `json:"oya_tsumo"`
	OyaRon     *string `json:"oya_ron"`
	KoTsumoKo  *string `json:"ko_tsumo_ko"`
	KoTsumoOya *string `json:"ko_tsumo_oya"`
	KoRon      *string `json:"ko_ron"`
}

func optional[T points.Numeric[T]](v T, ok bool) *string {
	if !ok {
		return nil
	}
	s := v.String()
	return &s
}

func NewPointsResult[T points.Numeric[T]](req PointsRequest, p points.Points[T]) PointsResult {
	result := PointsResult{
		Han:        req.Han,
		Fu:         req.Fu,
		Honba:      p.Honbas().Get(),
		Mode:       req.Mode,
		Limited:    p.IsLimited(),
		BasePoints: p.BasePoints().String(),
		OyaTsumo:   optional[T](p.OyaTsumo()),
		OyaRon:     optional[T](p.OyaRon()),
		KoRon:      optional[T](p.KoRon()),
	}

	if tier := p.Tier(); tier != points.TierNone {
		result.Tier = tier.String()
	}

	if ko, oya, ok := p.KoTsumo(); ok {
		result.KoTsumoKo = optional[T](ko, true)
		result.KoTsumoOya = optional[T](oya, true)
	}
	return result
}

// TableRow is one line of the reference table. Payments that do not exist
// for the han/fu combination are null.
type TableRow struct {
	Han        int32  `json:"han"`
	Fu         int32  `json:"fu"`
	KoTsumoKo  *int64 `json:"ko_tsumo_1"`
	KoTsumoOya *int64 `json:"ko_tsumo_2"`
	KoRon      *int64 `json:"ko_ron"`
	OyaRon     *int64 `json:"oya_ron"`
}

func amount(v points.Int64) *int64 {
	n := int64(v)
	return &n
}

func NewTableRow(han, fu int32, p points.Points[points.Int64]) TableRow {
	row := TableRow{Han: han, Fu: fu}
	if ko, oya, ok := p.KoTsumo(); ok {
		row.KoTsumoKo, row.KoTsumoOya = amount(ko), amount(oya)
	}
	if v, ok := p.KoRon(); ok {
		row.KoRon = amount(v)
	}
	if v, ok := p.OyaRon(); ok {
		row.OyaRon = amount(v)
	}
	return row
}
