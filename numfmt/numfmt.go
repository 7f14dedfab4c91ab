// Package numfmt formats 32-bit integers for fixed-width character displays.
//
// Plain notation is the usual decimal form. Engineering notation always shows
// four significant digits followed by an SI prefix, so every value takes the
// same number of characters:
//
//	AppendEng(nil, 12345, 0)  // "+12.35K"
//	AppendEng(nil, -5, -3)    // "-5.000m"
//	AppendEng(nil, 0, 0)      // "+0.000 "
package numfmt

import (
	"errors"
	"strconv"
)

// EngWidth is the length of a signed engineering string.
const EngWidth = 7

// ErrRange is returned when the engineering exponent has no SI prefix.
var ErrRange = errors.New("numfmt: exponent out of range")

// prefixes holds the SI prefixes from 10^-24 to 10^24 in steps of 10^3.
const prefixes = "yzafpnum KMGTPEZY"

const minEng = -24

// AppendPlain appends the decimal form of n to dst.
func AppendPlain(dst []byte, n int32) []byte {
	return strconv.AppendInt(dst, int64(n), 10)
}

// AppendEng appends the engineering form of n*10^exp to dst, with a leading
// '+' or '-'.
func AppendEng(dst []byte, n int32, exp int) ([]byte, error) {
	sign := byte('+')
	v := uint32(n)
	if n < 0 {
		sign = '-'
		v = uint32(-int64(n))
	}
	out, err := AppendEngUnsigned(append(dst, sign), v, exp)
	if err != nil {
		return dst, err
	}
	return out, nil
}

// AppendEngUnsigned appends the engineering form of v*10^exp to dst: four
// significant digits with the decimal point placed for an exponent that is a
// multiple of three, then the SI prefix or a space for 10^0.
//
// The mantissa is rounded half up.
func AppendEngUnsigned(dst []byte, v uint32, exp int) ([]byte, error) {
	if v == 0 {
		return append(dst, "0.000 "...), nil
	}

	// Normalize to 1000 <= m <= 9999.
	m := uint64(v)
	for m >= 10000 {
		if m >= 100000 {
			m /= 10
		} else {
			m = (m + 5) / 10
		}
		exp++
	}
	for m < 1000 {
		m *= 10
		exp--
	}

	// m*10^exp, leading digit at 10^(exp+3).
	lead := exp + 3
	eng := floorDiv(lead, 3) * 3
	idx := (eng - minEng) / 3
	if idx < 0 || idx >= len(prefixes) {
		return dst, ErrRange
	}
	intDigits := lead - eng + 1

	var digits [4]byte
	for i := 3; i >= 0; i-- {
		digits[i] = byte('0' + m%10)
		m /= 10
	}
	dst = append(dst, digits[:intDigits]...)
	dst = append(dst, '.')
	dst = append(dst, digits[intDigits:]...)
	return append(dst, prefixes[idx]), nil
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
