package errutil

import (
	"errors"
	"os"
	"testing"

	"github.com/lonng/riichihand/pkg/hand"
	"github.com/lonng/riichihand/pkg/points"
	"github.com/lonng/riichihand/pkg/render"
	pkgerrors "github.com/pkg/errors"
)

func TestCode(t *testing.T) {
	_, handErr := hand.Parse("123")
	_, pointsErr := points.FromCalculated[points.Int32](points.ModeDefault, 0, 30, 0)
	_, modeErr := points.ParseCalculationMode("bogus")

	tables := []struct {
		err  error
		code int
	}{
		{nil, OK},
		{errors.New("boom"), Unknown},
		{pointsErr, codeInvalidHan},
		{pkgerrors.Wrap(pointsErr, "points"), codeInvalidHan},
		{modeErr, codeUnknownMode},
		{handErr, codeParse},
		{Mark(os.ErrNotExist, ErrIO), codeIO},
		{Mark(errors.New("bad height"), ErrConfig), codeConfig},
		{pkgerrors.Wrap(&render.TileMissingError{Tile: hand.Ton}, "load"), codeRender},
		{render.ErrUnequalDimensions, codeRender},
		{ErrIllegalParameter, codeIllegalParameter},
	}

	for i, row := range tables {
		if got := Code(row.err); got != row.code {
			t.Fatalf("index: %d got: %d want: %d", i, got, row.code)
		}
	}
}

func TestMark(t *testing.T) {
	if Mark(nil, ErrIO) != nil {
		t.Fatal("expected nil")
	}

	err := Mark(os.ErrNotExist, ErrIO)
	if !errors.Is(err, ErrIO) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("chain lost: %v", err)
	}
	if errors.Is(err, ErrConfig) {
		t.Fatal("unexpected match")
	}
	if err.Error() != "io operation failed: file does not exist" {
		t.Fatalf("got %q", err.Error())
	}
}
