// Package points calculates the payments of a Riichi Mahjong win from its han,
// fu and honba counts.
//
// Points is generic over the numeric type holding the score. Int32 covers every
// hand that can occur under the standard rules, BigInt is needed for extreme han
// counts in unlimited (aotenjou) mode:
//
//	p, err := points.FromCalculated[points.Int32](points.ModeDefault,
//		points.NewHan(4), points.NewFu(30), points.ZeroHonba)
//	if err != nil {
//		return err
//	}
//	ron, ok := p.KoRon() // 7700, true
package points

const (
	minWinningHan = 1

	// Negative powers are evaluated in int64. Below 2^-32 every positive int32
	// fu collapses to 1, so the shift is clamped there.
	minUsablePower = -32

	tsumoHonbaPoints = 100
	ronHonbaPoints   = 300
)

var validFu = [...]Fu{20, 25, 30, 40, 50, 60, 70, 80, 90, 100, 110}

type hanFu struct {
	han Han
	fu  Fu
}

// Combinations the official table leaves empty.
var (
	noTsumo = map[hanFu]struct{}{
		{1, 20}: {},
		{1, 25}: {},
		{2, 25}: {},
	}
	noRon = map[hanFu]struct{}{
		{1, 20}: {},
		{1, 25}: {},
		{2, 20}: {},
		{3, 20}: {},
		{4, 20}: {},
	}
)

// IsValidFu reports whether fu appears in the official table.
func IsValidFu(fu Fu) bool {
	for _, v := range validFu {
		if v == fu {
			return true
		}
	}
	return false
}

// ValidFu returns the fu values accepted by the default calculation mode.
func ValidFu() []Fu {
	fus := make([]Fu, len(validFu))
	copy(fus, validFu[:])
	return fus
}

func hasTsumo(han Han, fu Fu) bool {
	_, missing := noTsumo[hanFu{han, fu}]
	return !missing
}

func hasRon(han Han, fu Fu) bool {
	_, missing := noRon[hanFu{han, fu}]
	return !missing
}

// mode is either calculated or limited.
type mode interface {
	hasTsumo() bool
	hasRon() bool
}

// calculated is a below-mangan result. The table may have no entry for a
// combination, which is different from an entry worth zero.
type calculated struct {
	tsumo bool
	ron   bool
}

func (c calculated) hasTsumo() bool { return c.tsumo }
func (c calculated) hasRon() bool   { return c.ron }

// limited is a mangan-or-above result; both payments always exist.
type limited struct{}

func (limited) hasTsumo() bool { return true }
func (limited) hasRon() bool   { return true }

// Points is an immutable scoring result. All payment queries derive from the
// base points, the honba count and the mode.
type Points[T Numeric[T]] struct {
	basePoints T
	honbas     Honba
	mode       mode
}

// FromCalculated scores a win with the given han, fu and honba.
//
// In ModeDefault the input is validated and the gaps of the official table are
// kept. ModeLoose accepts anything and ModeUnlimited additionally removes the
// mangan cap, so base points grow without bound.
func FromCalculated[T Numeric[T]](calcMode CalculationMode, han Han, fu Fu, honbas Honba) (Points[T], error) {
	if calcMode == ModeDefault {
		if han < minWinningHan {
			return Points[T]{}, &CalculationError{Kind: ErrInvalidHan, Han: han}
		}
		if !IsValidFu(fu) {
			return Points[T]{}, &CalculationError{Kind: ErrInvalidFu, Fu: fu}
		}
		if honbas < ZeroHonba {
			return Points[T]{}, &CalculationError{Kind: ErrInvalidHonbas, Honbas: honbas}
		}
	}

	if calcMode != ModeUnlimited {
		if tier, ok := TierOf(han); ok {
			return Limit[T](tier, honbas), nil
		}
	}

	base := basePoints[T](han, fu)

	var zero T
	if calcMode != ModeUnlimited && base.Cmp(zero.FromInt(ManganThreshold)) >= 0 {
		return Mangan[T](honbas), nil
	}

	tsumo := calcMode != ModeDefault || hasTsumo(han, fu)
	ron := calcMode != ModeDefault || hasRon(han, fu)
	return NewCalculated(base, tsumo, ron, honbas), nil
}

// basePoints evaluates fu * 2^(han+2). A negative exponent is a right shift
// that rounds toward +inf for positive fu and truncates otherwise.
func basePoints[T Numeric[T]](han Han, fu Fu) T {
	var zero T
	power := int64(han) + 2
	if power > 0 {
		return zero.FromInt(2).Pow(uint32(power)).Mul(fu.Get())
	}

	if power < minUsablePower {
		power = minUsablePower
	}
	divisor := int64(1) << uint(-power)
	value := int64(fu)
	if value > 0 {
		value = (value + divisor - 1) / divisor
	} else {
		value = value / divisor
	}
	return zero.FromInt(int32(value))
}

// NewLimited returns a limited (mangan or above) result with custom base points.
func NewLimited[T Numeric[T]](basePoints T, honbas Honba) Points[T] {
	return Points[T]{basePoints: basePoints, honbas: honbas, mode: limited{}}
}

// NewCalculated returns a below-mangan result. hasTsumo and hasRon tell whether
// the corresponding payments exist at all.
func NewCalculated[T Numeric[T]](basePoints T, hasTsumo, hasRon bool, honbas Honba) Points[T] {
	return Points[T]{
		basePoints: basePoints,
		honbas:     honbas,
		mode:       calculated{tsumo: hasTsumo, ron: hasRon},
	}
}

// Limit returns the limited result of a tier. TierNone yields zero base points.
func Limit[T Numeric[T]](tier Tier, honbas Honba) Points[T] {
	var zero T
	return NewLimited(zero.FromInt(tier.BasePoints()), honbas)
}

func Mangan[T Numeric[T]](honbas Honba) Points[T]    { return Limit[T](TierMangan, honbas) }
func Haneman[T Numeric[T]](honbas Honba) Points[T]   { return Limit[T](TierHaneman, honbas) }
func Baiman[T Numeric[T]](honbas Honba) Points[T]    { return Limit[T](TierBaiman, honbas) }
func Sanbaiman[T Numeric[T]](honbas Honba) Points[T] { return Limit[T](TierSanbaiman, honbas) }
func Yakuman[T Numeric[T]](honbas Honba) Points[T]   { return Limit[T](TierKazoeYakuman, honbas) }

func (p Points[T]) IsLimited() bool {
	_, ok := p.mode.(limited)
	return ok
}

// IsCalculated is the negation of IsLimited. The zero Points value is
// treated as a calculated result without payments.
func (p Points[T]) IsCalculated() bool {
	return !p.IsLimited()
}

func (p Points[T]) BasePoints() T  { return p.basePoints }
func (p Points[T]) Honbas() Honba  { return p.honbas }
func (p Points[T]) HasTsumo() bool { return p.mode != nil && p.mode.hasTsumo() }
func (p Points[T]) HasRon() bool   { return p.mode != nil && p.mode.hasRon() }

// Tier returns the tier whose base points match a limited result, TierNone for
// calculated results and for custom limited values.
func (p Points[T]) Tier() Tier {
	if !p.IsLimited() {
		return TierNone
	}
	var zero T
	for _, r := range tierRanges {
		if p.basePoints.Cmp(zero.FromInt(r.tier.BasePoints())) == 0 {
			return r.tier
		}
	}
	return TierNone
}

// OyaTsumo is what each non-dealer pays when the dealer wins by self-draw.
func (p Points[T]) OyaTsumo() (T, bool) {
	if !p.HasTsumo() {
		var zero T
		return zero, false
	}
	return RoundUpPoints(p.basePoints.Mul(2)).Add(p.tsumoHonbaPoints()), true
}

// OyaRon is what the discarder pays when the dealer wins by ron.
func (p Points[T]) OyaRon() (T, bool) {
	if !p.HasRon() {
		var zero T
		return zero, false
	}
	return RoundUpPoints(p.basePoints.Mul(6)).Add(p.ronHonbaPoints()), true
}

// KoTsumo is what the other non-dealers and the dealer pay when a non-dealer
// wins by self-draw. The dealer share always equals OyaTsumo.
func (p Points[T]) KoTsumo() (ko, oya T, ok bool) {
	if !p.HasTsumo() {
		return ko, oya, false
	}
	honba := p.tsumoHonbaPoints()
	ko = RoundUpPoints(p.basePoints).Add(honba)
	oya = RoundUpPoints(p.basePoints.Mul(2)).Add(honba)
	return ko, oya, true
}

// KoRon is what the discarder pays when a non-dealer wins by ron.
func (p Points[T]) KoRon() (T, bool) {
	if !p.HasRon() {
		var zero T
		return zero, false
	}
	return RoundUpPoints(p.basePoints.Mul(4)).Add(p.ronHonbaPoints()), true
}

func (p Points[T]) tsumoHonbaPoints() int32 {
	return p.honbas.Get() * tsumoHonbaPoints
}

func (p Points[T]) ronHonbaPoints() int32 {
	return p.honbas.Get() * ronHonbaPoints
}
