package points

// paymentUnit is the granularity every payment is rounded up to.
const paymentUnit = 100

// RoundUpTo rounds positive values up to the next multiple of divisor and
// truncates everything else toward zero.
func RoundUpTo[T Numeric[T]](value T, divisor int32) T {
	if value.Sign() > 0 {
		return value.Add(divisor - 1).Div(divisor).Mul(divisor)
	}
	return value.Div(divisor).Mul(divisor)
}

// RoundUpPoints rounds a payment to the nearest 100 points above it.
func RoundUpPoints[T Numeric[T]](value T) T {
	return RoundUpTo(value, paymentUnit)
}
