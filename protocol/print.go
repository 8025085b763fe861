package protocol

import "math"

// Number-to-text primitives. These replace a general printf on the output
// path: each one converts a single machine value into ASCII inside a small
// fixed-size buffer on the stack and hands the bytes to the sink. None of
// them fail, none append line terminators, and out-of-range inputs saturate
// to the nearest representable output rather than growing the buffer.

// maxDigits is the conversion buffer size: enough for a full int64 in
// decimal (19 digits), a sign, and a decimal point.
const maxDigits = 21

// crlf terminates every protocol line.
var crlf = []byte{'\r', '\n'}

// PrintString writes s verbatim. No escaping is performed.
func PrintString(out Sink, s string) {
	out.Output([]byte(s))
}

// PrintLine writes s followed by a CRLF terminator.
func PrintLine(out Sink, s string) {
	out.Output([]byte(s))
	out.Output(crlf)
}

// PrintEOL writes the CRLF line terminator.
func PrintEOL(out Sink) {
	out.Output(crlf)
}

// PrintInteger writes the signed decimal representation of n: a leading '-'
// for negative values, no leading zeros, no leading '+'.
func PrintInteger(out Sink, n int32) {
	var buf [maxDigits]byte
	v := int64(n)
	neg := v < 0
	if neg {
		v = -v
	}

	// Build digits from right to left
	pos := len(buf)
	for {
		pos--
		buf[pos] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	out.Output(buf[pos:])
}

// PrintUint8 writes the unsigned decimal representation of a byte-sized
// value, with no leading zeros except for the literal value 0.
func PrintUint8(out Sink, n uint8) {
	var buf [3]byte
	v := uint32(n)

	pos := len(buf)
	for {
		pos--
		buf[pos] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	out.Output(buf[pos:])
}

// pow10 holds the scale factors for the supported decimal-place counts.
var pow10 = [...]float64{1, 10, 100, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9}

// maxScaled is the largest scaled magnitude the conversion buffer holds.
// Anything beyond it saturates to this value.
const maxScaled = int64(math.MaxInt64)

// PrintFloat writes a fixed-precision decimal representation of n with
// exactly decimals fractional digits. Rounding is half away from zero at
// the configured precision, with full carry propagation: 1.9996 at three
// decimals prints "2.000". Scientific notation is never emitted. Decimal
// place counts above 9 are clamped to 9, and magnitudes that would overflow
// the conversion buffer saturate to the largest printable value.
func PrintFloat(out Sink, n float64, decimals uint8) {
	if decimals >= uint8(len(pow10)) {
		decimals = uint8(len(pow10)) - 1
	}
	if math.IsNaN(n) {
		n = 0
	}

	neg := n < 0
	if neg {
		n = -n
	}

	// Scale so the rounded value is a plain integer; the carry from
	// rounding the last digit then propagates on its own.
	scaled := n*pow10[decimals] + 0.5
	var v int64
	if scaled >= float64(maxScaled) {
		v = maxScaled
	} else {
		v = int64(scaled)
	}

	var buf [maxDigits]byte
	pos := len(buf)

	// Fractional digits, then the point, then the integral digits.
	for i := uint8(0); i < decimals; i++ {
		pos--
		buf[pos] = byte('0' + v%10)
		v /= 10
	}
	if decimals > 0 {
		pos--
		buf[pos] = '.'
	}
	for {
		pos--
		buf[pos] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	out.Output(buf[pos:])
}

// PrintBase2 writes exactly bits characters, each '0' or '1', most
// significant bit first, representing the low bits of n. The width is an
// explicit parameter: it must match the storage size of the value being
// reported, since the protocol pads masks to their full width. Widths above
// 32 are clamped to 32.
func PrintBase2(out Sink, n uint32, bits uint8) {
	if bits == 0 {
		return
	}
	if bits > 32 {
		bits = 32
	}
	var buf [32]byte
	for i := uint8(0); i < bits; i++ {
		if n>>(bits-1-i)&1 == 1 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	out.Output(buf[:bits])
}
