package bytesize

import "fmt"

// ladder is the ascending unit sequence walked by AutoDetect.
var ladder = [...]Unit{Byte, Kilo, Mega, Giga, Tera}

// Amount is an immutable pair of a raw byte count and the unit under
// which it is displayed. The byte count is stored unscaled; the unit
// is purely a display selector.
type Amount struct {
	bytes float64
	unit  Unit
}

// New returns an Amount holding bytes and unit verbatim.
func New(bytes float64, unit Unit) Amount {
	return Amount{bytes: bytes, unit: unit}
}

// AutoDetect returns an Amount for bytes under the largest unit whose
// scaled value stays above one. Non-positive inputs are clamped to
// zero bytes; inputs beyond one tebibyte saturate at Tera.
func AutoDetect(bytes float64) Amount {
	if bytes <= 0 {
		return New(0, Byte)
	}

	v := bytes
	i := 0
	for v > 1.0 && i < len(ladder) {
		v /= 1024.0
		i++
	}
	// Inputs in (0, 1] never enter the loop.
	if i == 0 {
		return New(bytes, Byte)
	}
	return New(bytes, ladder[i-1])
}

// Bytes returns the raw, unscaled byte count.
func (a Amount) Bytes() float64 {
	return a.bytes
}

// Unit returns the unit the amount is displayed under.
func (a Amount) Unit() Unit {
	return a.unit
}

// Quantity returns the byte count divided by the unit's scale factor.
// For an amount displayed in bytes it equals Bytes.
func (a Amount) Quantity() float64 {
	return a.bytes / float64(a.unit.Scale())
}

// String renders the amount as "<quantity> <prefix>B" with exactly one
// fractional digit, e.g. "42.0 B" or "195.4 KiB".
func (a Amount) String() string {
	return fmt.Sprintf("%.1f %sB", a.Quantity(), a.unit)
}
