package hand

import (
	"errors"
	"testing"
)

func TestSuiteNames(t *testing.T) {
	suites := []Suite{Manzu, Pinzu, Souzu, Honor, Any}
	expected := []string{"Manzu", "Pinzu", "Souzu", "Honor", "Any"}

	for i, s := range suites {
		if s.String() != expected[i] {
			t.Fatalf("index: %d got: %s want: %s", i, s, expected[i])
		}
	}
}

func TestNewTile(t *testing.T) {
	valid := []Tile{
		{Manzu, 1}, {Manzu, 0}, {Manzu, 2}, {Manzu, 9},
		{Pinzu, 0}, {Pinzu, 9},
		{Souzu, 0}, {Souzu, 9},
		{Honor, 1}, {Honor, 2}, {Honor, 7},
		{Any, 0},
	}
	for i, tile := range valid {
		got, err := NewTile(tile.Suite, tile.Value)
		if err != nil || got != tile {
			t.Fatalf("index: %d got: %v %v", i, got, err)
		}
	}

	invalid := []Tile{
		{Manzu, 10}, {Pinzu, 10}, {Souzu, 10},
		{Honor, 0}, {Honor, 8},
		{Any, 1}, {Any, 5},
		{Suite(9), 1},
	}
	for i, tile := range invalid {
		_, err := NewTile(tile.Suite, tile.Value)

		var tileErr *InvalidTileError
		if !errors.As(err, &tileErr) {
			t.Fatalf("index: %d expected InvalidTileError, got %v", i, err)
		}
	}

	_, err := NewTile(Manzu, 10)
	if err.Error() != "invalid value: 10 for suite: Manzu" {
		t.Fatalf("got: %q", err.Error())
	}
}

func TestTileNames(t *testing.T) {
	expected := [38]string{
		"Akadora man", "Ii man", "Ryan man", "San man", "Suu man", "Uu man", "Rou man", "Chii man", "Paa man", "Kyuu man",
		"Akadora pin", "Ii pin", "Ryan pin", "San pin", "Suu pin", "Uu pin", "Rou pin", "Chii pin", "Paa pin", "Kyuu pin",
		"Akadora sou", "Ii sou", "Ryan sou", "San sou", "Suu sou", "Uu sou", "Rou sou", "Chii sou", "Paa sou", "Kyuu sou",
		"Ton", "Nan", "Shaa", "Pei", "Haku", "Hatsu", "Chun",
		"Any",
	}

	for i, tile := range AllTiles {
		if tile.String() != expected[i] {
			t.Fatalf("index: %d got: %s want: %s", i, tile, expected[i])
		}
	}

	if name := (Tile{Honor, 0}).Name(); name != "Honor(0)" {
		t.Fatalf("got: %s", name)
	}
}

func TestPlacementNext(t *testing.T) {
	p := Normal
	for _, want := range []Placement{Rotated, RotatedAndShifted, Normal} {
		p = p.Next()
		if p != want {
			t.Fatalf("got: %v want: %v", p, want)
		}
	}
}

func TestHandTiles(t *testing.T) {
	h := New([]Group{
		{{IiMan, Normal}, {RyanMan, Rotated}},
		{},
		{{Ton, RotatedAndShifted}},
	})

	if len(h.Groups()) != 3 {
		t.Fatalf("got %d groups", len(h.Groups()))
	}
	if n := len(h.HandTiles()); n != 3 {
		t.Fatalf("got %d hand tiles", n)
	}
	tiles := h.Tiles()
	if len(tiles) != 3 || tiles[0] != IiMan || tiles[1] != RyanMan || tiles[2] != Ton {
		t.Fatalf("got %v", tiles)
	}
	if s := h.HandTiles()[1].String(); s != "Ryan man (Rotated)" {
		t.Fatalf("got %q", s)
	}
}
