// Package bytesize represents quantities of bytes together with a
// binary (power-of-two, 1024-based) magnitude unit and renders them
// in IEC notation such as "195.4 KiB".
package bytesize

// Unit is one of the five binary magnitudes an Amount can be displayed
// under. The set is closed; adding a rung is a breaking change.
type Unit int

// Units in ascending scale order.
const (
	// Byte is the base unit (2^0 = 1 byte).
	Byte Unit = iota
	// Kilo is one kibibyte (2^10 = 1,024 bytes).
	Kilo
	// Mega is one mebibyte (2^20 = 1,048,576 bytes).
	Mega
	// Giga is one gibibyte (2^30 = 1,073,741,824 bytes).
	Giga
	// Tera is one tebibyte (2^40 = 1,099,511,627,776 bytes).
	Tera
)

// Scale returns the number of bytes in one step of the unit.
// Scales are powers of two up to 2^40, which a uint64 holds exactly.
func (u Unit) Scale() uint64 {
	switch u {
	case Byte:
		return 1
	case Kilo:
		return 1 << 10
	case Mega:
		return 1 << 20
	case Giga:
		return 1 << 30
	case Tera:
		return 1 << 40
	default:
		// Values outside the closed set behave as Byte.
		return 1
	}
}

// String returns the IEC prefix of the unit ("Ki", "Mi", "Gi", "Ti").
// Byte has no prefix, so an amount in bytes renders as "B", not "iB".
func (u Unit) String() string {
	switch u {
	case Kilo:
		return "Ki"
	case Mega:
		return "Mi"
	case Giga:
		return "Gi"
	case Tera:
		return "Ti"
	default:
		return ""
	}
}
