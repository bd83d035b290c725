package points

import (
	"math/big"
	"strconv"
)

// Numeric is the arithmetic a points magnitude has to provide. Every method
// returns a new value and leaves the receiver untouched, so values can be shared
// freely between Points instances and goroutines.
//
// The zero value of T must be usable as a factory through FromInt.
type Numeric[T any] interface {
	// FromInt converts a small integer into T.
	FromInt(v int32) T
	Add(v int32) T
	Mul(v int32) T
	// Div divides by v, truncating toward zero.
	Div(v int32) T
	Pow(exp uint32) T
	// Sign returns -1, 0 or +1.
	Sign() int
	Cmp(other T) int
	String() string
}

// Int32 is a fixed-width points magnitude. Arithmetic wraps on overflow, which
// never happens for han/fu values that occur in real games.
type Int32 int32

func (i Int32) FromInt(v int32) Int32 { return Int32(v) }
func (i Int32) Add(v int32) Int32     { return i + Int32(v) }
func (i Int32) Mul(v int32) Int32     { return i * Int32(v) }
func (i Int32) Div(v int32) Int32     { return i / Int32(v) }

func (i Int32) Pow(exp uint32) Int32 {
	result, base := Int32(1), i
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

func (i Int32) Sign() int {
	switch {
	case i > 0:
		return 1
	case i < 0:
		return -1
	}
	return 0
}

func (i Int32) Cmp(other Int32) int {
	switch {
	case i > other:
		return 1
	case i < other:
		return -1
	}
	return 0
}

func (i Int32) String() string { return strconv.FormatInt(int64(i), 10) }

// Int64 is a 64-bit fixed-width points magnitude.
type Int64 int64

func (i Int64) FromInt(v int32) Int64 { return Int64(v) }
func (i Int64) Add(v int32) Int64     { return i + Int64(v) }
func (i Int64) Mul(v int32) Int64     { return i * Int64(v) }
func (i Int64) Div(v int32) Int64     { return i / Int64(v) }

func (i Int64) Pow(exp uint32) Int64 {
	result, base := Int64(1), i
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

func (i Int64) Sign() int {
	switch {
	case i > 0:
		return 1
	case i < 0:
		return -1
	}
	return 0
}

func (i Int64) Cmp(other Int64) int {
	switch {
	case i > other:
		return 1
	case i < other:
		return -1
	}
	return 0
}

func (i Int64) String() string { return strconv.FormatInt(int64(i), 10) }

// BigInt is an arbitrary-precision points magnitude, needed in unlimited mode
// where base points grow past 10^50. The zero value is 0.
type BigInt struct {
	v *big.Int
}

// NewBigInt returns a BigInt holding v.
func NewBigInt(v int64) BigInt {
	return BigInt{v: big.NewInt(v)}
}

func (b BigInt) get() *big.Int {
	if b.v == nil {
		return new(big.Int)
	}
	return b.v
}

func (b BigInt) FromInt(v int32) BigInt {
	return NewBigInt(int64(v))
}

func (b BigInt) Add(v int32) BigInt {
	return BigInt{v: new(big.Int).Add(b.get(), big.NewInt(int64(v)))}
}

func (b BigInt) Mul(v int32) BigInt {
	return BigInt{v: new(big.Int).Mul(b.get(), big.NewInt(int64(v)))}
}

// Div uses Quo, not Div: big.Int.Div is Euclidean and would round negative
// values away from zero.
func (b BigInt) Div(v int32) BigInt {
	return BigInt{v: new(big.Int).Quo(b.get(), big.NewInt(int64(v)))}
}

func (b BigInt) Pow(exp uint32) BigInt {
	return BigInt{v: new(big.Int).Exp(b.get(), big.NewInt(int64(exp)), nil)}
}

func (b BigInt) Sign() int { return b.get().Sign() }

func (b BigInt) Cmp(other BigInt) int { return b.get().Cmp(other.get()) }

func (b BigInt) String() string { return b.get().String() }
