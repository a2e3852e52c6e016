package stats

import "math"

// Sat8 narrows v to uint8, saturating at 0 and 255.
func Sat8(v int64) uint8 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(v)
}

// Sat16 narrows v to uint16, saturating at 0 and 65535.
func Sat16(v int64) uint16 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}

// Percent returns v × pct / 100 using truncating integer division.
func Percent(v int64, pct uint16) int64 {
	return v * int64(pct) / 100
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int64) int64 {
	return max(lo, min(v, hi))
}

// SubFloor returns a − b, floored at zero.
func SubFloor(a, b int64) int64 {
	if b >= a {
		return 0
	}
	return a - b
}
