package control

// Hand-rolled numeric scanning for `$` system lines. The dispatcher reads
// only simple unsigned indexes and plain decimal values, so a full
// strconv/locale-aware parse buys nothing on this path.

// maxScanUint bounds scanUint's accumulator. Setting indexes and startup
// slots are all well below it; anything larger is a malformed line, never
// a value to wrap around on.
const maxScanUint = 1 << 16

// scanUint parses an unsigned integer from s starting at pos. It returns
// the value, the position after the last digit, and whether any digit was
// consumed. Values above maxScanUint fail rather than overflow.
func scanUint(s string, pos int) (int, int, bool) {
	start := pos
	value := 0
	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		value = value*10 + int(s[pos]-'0')
		if value > maxScanUint {
			return 0, start, false
		}
		pos++
	}
	return value, pos, pos > start
}

// scanFloat parses a plain decimal number (optional sign, optional
// fraction, no exponent) from s starting at pos. It returns the value, the
// position after the number, and whether a valid number was consumed.
func scanFloat(s string, pos int) (float64, int, bool) {
	if pos >= len(s) {
		return 0, pos, false
	}

	negative := false
	if s[pos] == '-' {
		negative = true
		pos++
	} else if s[pos] == '+' {
		pos++
	}

	start := pos
	intPart := 0
	fracPart := 0.0
	fracDigits := 0

	for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
		intPart = intPart*10 + int(s[pos]-'0')
		pos++
	}

	if pos < len(s) && s[pos] == '.' {
		pos++
		fracStart := pos
		for pos < len(s) && s[pos] >= '0' && s[pos] <= '9' {
			fracPart = fracPart*10.0 + float64(s[pos]-'0')
			pos++
		}
		fracDigits = pos - fracStart
	}

	// A bare sign or a lone '.' is not a number.
	if pos == start || (pos == start+1 && s[start] == '.') {
		return 0, start, false
	}

	value := float64(intPart)
	if fracDigits > 0 {
		divisor := 1.0
		for i := 0; i < fracDigits; i++ {
			divisor *= 10.0
		}
		value += fracPart / divisor
	}

	if negative {
		value = -value
	}
	return value, pos, true
}

// toUpper converts an ASCII letter to uppercase.
func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
