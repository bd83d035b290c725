package protocol

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lonng/riichihand/pkg/hand"
	"github.com/lonng/riichihand/pkg/points"
)

func str(s string) *string { return &s }

func TestNewPointsResult(t *testing.T) {
	req := PointsRequest{Han: 2, Fu: 20, Mode: "default"}
	p, err := points.FromCalculated[points.Int64](points.ModeDefault, 2, 20, 0)
	if err != nil {
		t.Fatal(err)
	}

	want := PointsResult{
		Han:        2,
		Fu:         20,
		Mode:       "default",
		BasePoints: "320",
		OyaTsumo:   str("700"),
		KoTsumoKo:  str("400"),
		KoTsumoOya: str("700"),
	}
	if diff := cmp.Diff(want, NewPointsResult(req, p)); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}

	data, err := json.Marshal(NewPointsResult(req, p))
	if err != nil {
		t.Fatal(err)
	}
	const wantJSON = `{"han":2,"fu":20,"honba":0,"mode":"default","limited":false,"base_points":"320",` +
		`"oya_tsumo":"700","oya_ron":null,"ko_tsumo_ko":"400","ko_tsumo_oya":"700","ko_ron":null}`
	if string(data) != wantJSON {
		t.Fatalf("got: %s", data)
	}
}

func TestNewPointsResultLimited(t *testing.T) {
	req := PointsRequest{Han: 5, Fu: 30, Honba: 2, Mode: "default", BigInt: true}
	p, err := points.FromCalculated[points.BigInt](points.ModeDefault, 5, 30, 2)
	if err != nil {
		t.Fatal(err)
	}

	want := PointsResult{
		Han:        5,
		Fu:         30,
		Honba:      2,
		Mode:       "default",
		Limited:    true,
		Tier:       "mangan",
		BasePoints: "2000",
		OyaTsumo:   str("4200"),
		OyaRon:     str("12600"),
		KoTsumoKo:  str("2200"),
		KoTsumoOya: str("4200"),
		KoRon:      str("8600"),
	}
	if diff := cmp.Diff(want, NewPointsResult(req, p)); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestNewTableRow(t *testing.T) {
	n := func(v int64) *int64 { return &v }

	tables := []struct {
		han, fu int32
		want    TableRow
	}{
		{1, 30, TableRow{Han: 1, Fu: 30, KoTsumoKo: n(300), KoTsumoOya: n(500), KoRon: n(1000), OyaRon: n(1500)}},
		{2, 25, TableRow{Han: 2, Fu: 25, KoRon: n(1600), OyaRon: n(2400)}},
		{1, 20, TableRow{Han: 1, Fu: 20}},
		{4, 30, TableRow{Han: 4, Fu: 30, KoTsumoKo: n(2000), KoTsumoOya: n(3900), KoRon: n(7700), OyaRon: n(11600)}},
		{13, 20, TableRow{Han: 13, Fu: 20, KoTsumoKo: n(8000), KoTsumoOya: n(16000), KoRon: n(32000), OyaRon: n(48000)}},
	}

	for i, row := range tables {
		p, err := points.FromCalculated[points.Int64](points.ModeDefault, points.Han(row.han), points.Fu(row.fu), 0)
		if err != nil {
			t.Fatalf("index: %d %v", i, err)
		}
		if diff := cmp.Diff(row.want, NewTableRow(row.han, row.fu, p)); diff != "" {
			t.Fatalf("index: %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestNewHandInfo(t *testing.T) {
	info := NewHandInfo("1m_E*", hand.MustParse("1m_E*"))

	want := HandInfo{
		Notation: "1m_E*",
		Groups: [][]TileInfo{
			{{Name: "Ii man", Suite: "Manzu", Value: 1, Placement: "Normal"}},
			{{Name: "Ton", Suite: "Honor", Value: 1, Placement: "Rotated"}},
		},
		TileCount: 2,
	}
	if diff := cmp.Diff(want, info); diff != "" {
		t.Fatalf("hand info mismatch (-want +got):\n%s", diff)
	}
}
