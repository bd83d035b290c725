package points

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHan    = errors.New("invalid han")
	ErrInvalidFu     = errors.New("invalid fu")
	ErrInvalidHonbas = errors.New("invalid honbas")
	ErrUnknownMode   = errors.New("unknown calculation mode")
)

// CalculationError reports input rejected by the default calculation mode.
// Only the field matching Kind is meaningful.
type CalculationError struct {
	Kind   error
	Han    Han
	Fu     Fu
	Honbas Honba
}

func (e *CalculationError) Error() string {
	switch e.Kind {
	case ErrInvalidHan:
		return fmt.Sprintf("Han cannot be less than 1: %s", e.Han)
	case ErrInvalidFu:
		return fmt.Sprintf("Invalid fu value: %s", e.Fu)
	case ErrInvalidHonbas:
		return fmt.Sprintf("Invalid honba count: %s", e.Honbas)
	}
	return "points calculation error"
}

// Unwrap makes errors.Is(err, ErrInvalidFu) and friends work.
func (e *CalculationError) Unwrap() error {
	return e.Kind
}
