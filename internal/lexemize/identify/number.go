package identify

// Number identifies a number, like 12.34 or 0b100100. A "0" followed by
// "b", "x" or "o" dispatches to the base-specific scanner; anything else
// starting with a digit is decimal. This is a pure scanner: it accepts
// literals of any magnitude, since surface syntax is independent of value
// range.
func Number(raw string, pos int) int {
	if pos < 0 || pos >= len(raw) {
		return pos
	}
	c := raw[pos]
	if c < '0' || c > '9' {
		return pos
	}
	// A digit which is the input's last character is a complete number.
	if pos+1 == len(raw) {
		return len(raw)
	}
	if c != '0' {
		return decimalNumber(raw, pos)
	}
	switch raw[pos+1] {
	case 'b':
		return radixNumber(raw, pos, isBinaryDigit, isBinaryPoison)
	case 'x':
		return radixNumber(raw, pos, isHexDigit, isHexPoison)
	case 'o':
		return radixNumber(raw, pos, isOctalDigit, isOctalPoison)
	default:
		return decimalNumber(raw, pos)
	}
}

// radixNumber scans a binary, hex or octal literal after its two-byte
// prefix. Underscores separate freely, and at least one real digit is
// required. A poison character — an out-of-base digit, or a dot — rejects
// the whole literal, rather than silently accepting the prefix of an
// erroneous one: 0b11.1 is no match, not 0b11.
func radixNumber(raw string, pos int, isDigit, isPoison func(byte) bool) int {
	hasDigit := false
	for i := pos + 2; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '_':
			// Separator, skip.
		case isDigit(c):
			hasDigit = true
		case isPoison(c):
			return pos
		default:
			// The character after the end of the literal.
			if hasDigit {
				return i
			}
			return pos
		}
	}
	if hasDigit {
		return len(raw)
	}
	return pos
}

func isBinaryDigit(c byte) bool { return c == '0' || c == '1' }
func isBinaryPoison(c byte) bool {
	return (c >= '2' && c <= '9') || c == '.'
}

func isOctalDigit(c byte) bool { return c >= '0' && c <= '7' }
func isOctalPoison(c byte) bool {
	return c == '8' || c == '9' || c == '.'
}

// Every ASCII digit is a valid hex digit, so only a dot can poison.
func isHexPoison(c byte) bool { return c == '.' }

// decimalNumber scans a decimal literal starting at a known digit: more
// digits, underscore separators, at most one dot, at most one exponent
// marker, and an optional sign directly after the exponent marker. A
// literal may not end on a dangling "e", "E", "+", "-", "e_" or "E_"; the
// posE/posS/posEU bookkeeping records where each would-be suffix ends, and
// the literal is rejected whole if scanning stops exactly there.
func decimalNumber(raw string, pos int) int {
	hasDot := false // at most one "."
	hasE := false   // at most one "e" or "E"
	posDot := 0     // helps reject numbers like "1._2"
	posE := 0       // helps reject numbers like "10E2+3" and "10E"
	posEU := 0      // helps reject numbers like "10E_"
	posS := 0       // helps reject numbers like "10E+"

	for i := pos + 1; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '_':
			// An underscore directly after the dot, like "1._2",
			// rejects the number.
			if hasDot && posDot == i {
				return pos
			}
			// Guard against a dangling underscore, like "7.5e_".
			if hasE && posE == i {
				posEU = i + 1
			}
		case hasE && posE == i && (c == '+' || c == '-'):
			// Guard against a dangling sign, like "7.5e-".
			posS = i + 1
		case !hasDot && c == '.':
			// An exponent may not contain a dot, like "1e2.3".
			if hasE {
				return pos
			}
			hasDot = true
			posDot = i + 1
		case !hasE && (c == 'e' || c == 'E'):
			hasE = true
			posE = i + 1
		case c < '0' || c > '9':
			// The character after the end of the literal.
			if i == posE || i == posS || i == posEU {
				return pos
			}
			return i
		}
	}
	if len(raw) == posE || len(raw) == posS || len(raw) == posEU {
		return pos
	}
	return len(raw)
}
