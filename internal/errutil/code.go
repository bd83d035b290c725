package errutil

import (
	"errors"

	"github.com/lonng/riichihand/pkg/hand"
	"github.com/lonng/riichihand/pkg/points"
	"github.com/lonng/riichihand/pkg/render"
)

// Process exit codes.
const (
	OK = iota
	Unknown
	codeIllegalParameter
	codeConfig
	codeRender
	codeIO
	codeInvalidHan
	codeInvalidFu
	codeInvalidHonbas
	codeUnknownMode
	codeParse
)

type errCode struct {
	err  error
	code int
}

// Checked in order, the first match wins.
var errs = []errCode{
	{points.ErrInvalidHan, codeInvalidHan},
	{points.ErrInvalidFu, codeInvalidFu},
	{points.ErrInvalidHonbas, codeInvalidHonbas},
	{points.ErrUnknownMode, codeUnknownMode},
	{hand.ErrInvalidCharacter, codeParse},
	{hand.ErrInvalidValue, codeParse},
	{hand.ErrUnfinishedSuite, codeParse},
	{hand.ErrPositionModifierWithNoTile, codeParse},
	{render.ErrUnequalDimensions, codeRender},
	{ErrIllegalParameter, codeIllegalParameter},
	{ErrConfig, codeConfig},
	{ErrRender, codeRender},
	{ErrIO, codeIO},
}

func Code(err error) int {
	if err == nil {
		return OK
	}

	for _, e := range errs {
		if errors.Is(err, e.err) {
			return e.code
		}
	}

	var (
		tileMissing  *render.TileMissingError
		notSupported *render.TileNotSupportedError
	)
	if errors.As(err, &tileMissing) || errors.As(err, &notSupported) {
		return codeRender
	}
	return Unknown
}
