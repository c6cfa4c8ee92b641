package amount

import (
	"errors"
	"math"
	"strconv"

	"github.com/DONALDSULLENDER/namecoin-core/util"
)

// AmountUnit describes a method of converting an Amount to something other
// than the base unit of a namecoin. The value of the AmountUnit is the
// exponent component of the decadic multiple to convert from an amount in
// namecoin to an amount counted in satoshi units.
type AmountUnit int

const (
	AmountMegaNMC  AmountUnit = 6
	AmountKiloNMC  AmountUnit = 3
	AmountNMC      AmountUnit = 0
	AmountMilliNMC AmountUnit = -3
	AmountMicroNMC AmountUnit = -6
	AmountSatoshi  AmountUnit = -8
)

// String returns the unit as a string. For recognized units, the SI prefix
// is used, or "Satoshi" for the base unit. For all unrecognized units, "1eN
// NMC" is returned, where N is the AmountUnit.
func (u AmountUnit) String() string {
	switch u {
	case AmountMegaNMC:
		return "MNMC"
	case AmountKiloNMC:
		return "kNMC"
	case AmountNMC:
		return "NMC"
	case AmountMilliNMC:
		return "mNMC"
	case AmountMicroNMC:
		return "uNMC"
	case AmountSatoshi:
		return "Satoshi"
	default:
		return "1e" + strconv.FormatInt(int64(u), 10) + " NMC"
	}
}

// Amount represents the base namecoin monetary unit, known as a satoshi.
// A single Amount can represent both a negative and positive number of
// satoshi units.
type Amount int64

// MaxMoney is the maximum amount of money that can ever exist, in satoshi
// units. No valid output may carry more, and no fee computation may
// produce more.
const MaxMoney Amount = 21000000 * util.COIN

// MoneyRange reports whether the value is a well formed monetary amount.
func MoneyRange(value Amount) bool {
	return value >= 0 && value <= MaxMoney
}

// round converts a floating point number, which may or may not be
// representable as an integer, to the Amount integer type by rounding to
// the nearest whole satoshi. It is used instead of math.Round to keep the
// rounding halfway away from zero on every platform.
func round(f float64) Amount {
	if f < 0 {
		return Amount(f - 0.5)
	}
	return Amount(f + 0.5)
}

// NewAmount creates an Amount from a floating point value representing an
// amount of coins. NewAmount errors if f is NaN or +-Infinity, but does not
// check that the amount is within the total amount of coins producible.
func NewAmount(f float64) (Amount, error) {
	// The amount is only considered invalid if it cannot be represented
	// as an integer type. This may happen if f is NaN or +-Infinity.
	switch {
	case math.IsNaN(f):
		fallthrough
	case math.IsInf(f, 1):
		fallthrough
	case math.IsInf(f, -1):
		return 0, errors.New("invalid coin amount")
	}

	return round(f * util.COIN), nil
}

// ToUnit converts a monetary amount counted in coin base units to a
// floating point value representing an amount of coins.
func (a Amount) ToUnit(u AmountUnit) float64 {
	return float64(a) / math.Pow10(int(u+8))
}

// ToNMC is the equivalent of calling ToUnit with AmountNMC.
func (a Amount) ToNMC() float64 {
	return a.ToUnit(AmountNMC)
}

// Format formats a monetary amount counted in coin base units as a string
// for a given unit. The conversion will succeed for any unit, however,
// known units will be formatted with an appended label describing the
// units.
func (a Amount) Format(u AmountUnit) string {
	units := " " + u.String()
	return strconv.FormatFloat(a.ToUnit(u), 'f', -int(u+8), 64) + units
}

// String is the equivalent of calling Format with AmountNMC.
func (a Amount) String() string {
	return a.Format(AmountNMC)
}

// MulF64 multiplies an Amount by a floating point value. While this is not
// an operation that must typically be done by a full node, it is useful for
// services that build on top of namecoin, such as calculating a fee by
// multiplying by a percentage.
func (a Amount) MulF64(f float64) Amount {
	return round(float64(a) * f)
}
